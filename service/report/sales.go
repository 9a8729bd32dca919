package report

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Summary is the manager dashboard sales report for a date range.
type Summary struct {
	From     time.Time        `json:"from"`
	To       time.Time        `json:"to"`
	Orders   int64            `json:"orders"`
	Revenue  float64          `json:"revenue"`
	ByStatus map[string]int64 `json:"by_status"`
	TopItems []TopItem        `json:"top_items"`
}

// TopItem is one best-seller row.
type TopItem struct {
	MenuItemID uint    `json:"menu_item_id" mapstructure:"menu_item_id"`
	Name       string  `json:"name" mapstructure:"name"`
	UnitsSold  int64   `json:"units_sold" mapstructure:"units_sold"`
	Revenue    float64 `json:"revenue" mapstructure:"revenue"`
}

// SalesSummary aggregates orders, revenue, status counts, and top sellers
// over [from, to). The four queries run in parallel.
func SalesSummary(db *gorm.DB, from, to time.Time, topN int) (*Summary, error) {
	if topN <= 0 {
		topN = 10
	}
	s := &Summary{From: from, To: to, ByStatus: map[string]int64{}}

	var g errgroup.Group

	g.Go(func() error {
		return db.Table("`order`").
			Where("created_at >= ? AND created_at < ?", from, to).
			Count(&s.Orders).Error
	})

	g.Go(func() error {
		var revenue *float64
		err := db.Table("payment").
			Select("SUM(amount)").
			Where("paid_at >= ? AND paid_at < ?", from, to).
			Scan(&revenue).Error
		if err != nil {
			return err
		}
		if revenue != nil {
			s.Revenue = *revenue
		}
		return nil
	})

	byStatus := make([]map[string]interface{}, 0, 3)
	g.Go(func() error {
		return db.Table("`order`").
			Select("status, COUNT(*) AS n").
			Where("created_at >= ? AND created_at < ?", from, to).
			Group("status").
			Find(&byStatus).Error
	})

	topRows := make([]map[string]interface{}, 0, topN)
	g.Go(func() error {
		return db.Table("order_item").
			Select("order_item.menu_item_id AS menu_item_id, menu_item.name AS name, SUM(order_item.qty) AS units_sold, SUM(order_item.unit_price * order_item.qty) AS revenue").
			Joins("JOIN menu_item ON menu_item.menu_item_id = order_item.menu_item_id").
			Joins("JOIN `order` ON `order`.order_id = order_item.order_id").
			Where("`order`.created_at >= ? AND `order`.created_at < ?", from, to).
			Group("order_item.menu_item_id, menu_item.name").
			Order("units_sold DESC").
			Limit(topN).
			Find(&topRows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, row := range byStatus {
		var decoded struct {
			Status string `mapstructure:"status"`
			N      int64  `mapstructure:"n"`
		}
		if err := decodeRow(row, &decoded); err != nil {
			return nil, err
		}
		s.ByStatus[decoded.Status] = decoded.N
	}

	for _, row := range topRows {
		var item TopItem
		if err := decodeRow(row, &item); err != nil {
			return nil, err
		}
		s.TopItems = append(s.TopItems, item)
	}

	return s, nil
}

// decodeRow maps a raw SQL row (driver-dependent types) onto a typed struct.
func decodeRow(row map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(row)
}
