package sales

import (
	"database/sql"

	"gorm.io/gorm"

	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
)

type OrderRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewOrderRepository(db *gorm.DB) (*OrderRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &OrderRepository{db: db, sqlDB: sqlDB}, nil
}

// FindByID returns an order with its items, item options, and joined menu
// item / option names.
func (r *OrderRepository) FindByID(orderID uint) (*salesEntity.Order, error) {
	var o salesEntity.Order
	err := r.db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.Options").
		Preload("Items.Options.Option").
		Preload("Items.Options.Option.MenuItem").
		Where("order_id = ?", orderID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindActiveQueue returns all orders not yet done, oldest first, with the
// same joins the kitchen display needs.
func (r *OrderRepository) FindActiveQueue() ([]salesEntity.Order, error) {
	var orders []salesEntity.Order
	err := r.db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.Options").
		Preload("Items.Options.Option").
		Where("status <> ?", salesEntity.StatusDone).
		Order("created_at, order_id").
		Find(&orders).Error
	return orders, err
}

// CountByStatus returns the number of orders per status.
// Uses raw SQL for minimal overhead (dashboard polls this).
func (r *OrderRepository) CountByStatus() (map[string]int64, error) {
	const query = "SELECT status, COUNT(*) FROM `order` GROUP BY status"
	rows, err := r.sqlDB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64, 3)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			continue
		}
		out[status] = n
	}
	return out, nil
}
