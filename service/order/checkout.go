package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	"github.com/amanda-debetaz/PandaExpressPOS/core/metrics"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	menuRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/menu"
)

var (
	ErrEmptyOrder     = errors.New("order has no items")
	ErrUnknownItem    = errors.New("unknown menu item")
	ErrUnknownOption  = errors.New("unknown option")
	ErrOptionMismatch = errors.New("option does not belong to menu item")
	ErrTotalMismatch  = errors.New("client total does not match server total")
)

// LineInput is one kiosk/cashier order line.
type LineInput struct {
	MenuItemID uint   `json:"menu_item_id"`
	Qty        int    `json:"qty"`
	OptionIDs  []uint `json:"option_ids,omitempty"`
}

// CheckoutInput is a paid order as submitted by a kiosk or cashier terminal.
type CheckoutInput struct {
	Source     string      `json:"source"` // kiosk | cashier
	DineOption string      `json:"dine_option"`
	Notes      *string     `json:"notes,omitempty"`
	PayMethod  string      `json:"pay_method"`
	PayAmount  *float64    `json:"pay_amount,omitempty"`
	EmployeeID uint        `json:"employee_id,omitempty"`
	Items      []LineInput `json:"items"`
}

type CheckoutResult struct {
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreatePaidOrder validates prices server-side and writes the order, its
// lines, selected options, and the payment in one transaction. The order
// lands queued; prepared stock is deducted later when the kitchen starts
// prepping it.
func CreatePaidOrder(db *gorm.DB, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	employeeID := in.EmployeeID
	if employeeID == 0 {
		employeeID = config.AppConfig.KioskEmployeeID
	}
	dineOption := salesEntity.Takeout
	if in.DineOption == salesEntity.DineIn {
		dineOption = salesEntity.DineIn
	}
	taxRate := config.AppConfig.TaxRate

	var result CheckoutResult
	err := db.Transaction(func(tx *gorm.DB) error {
		repo := menuRepo.NewMenuRepository(tx)

		itemIDs := make([]uint, 0, len(in.Items))
		optionIDs := make([]uint, 0)
		for _, line := range in.Items {
			itemIDs = append(itemIDs, line.MenuItemID)
			optionIDs = append(optionIDs, line.OptionIDs...)
		}

		items, err := repo.BatchGetItems(itemIDs)
		if err != nil {
			return err
		}
		options, err := repo.BatchGetOptions(optionIDs)
		if err != nil {
			return err
		}

		type builtLine struct {
			menuItemID uint
			qty        int
			unitPrice  float64
			optionIDs  []uint
		}

		var subtotal float64
		built := make([]builtLine, 0, len(in.Items))
		for _, line := range in.Items {
			qty := line.Qty
			if qty <= 0 {
				qty = 1
			}
			item, ok := items[line.MenuItemID]
			if !ok {
				return fmt.Errorf("%w: %d", ErrUnknownItem, line.MenuItemID)
			}

			unit := item.Price
			for _, oid := range line.OptionIDs {
				opt, ok := options[oid]
				if !ok {
					return fmt.Errorf("%w: %d", ErrUnknownOption, oid)
				}
				if err := validateOptionForItem(tx, &opt, line.MenuItemID); err != nil {
					return err
				}
				unit += opt.PriceDelta
			}

			subtotal += unit * float64(qty)
			built = append(built, builtLine{
				menuItemID: line.MenuItemID,
				qty:        qty,
				unitPrice:  round2(unit),
				optionIDs:  line.OptionIDs,
			})
		}

		tax := round2(subtotal * taxRate)
		total := round2(subtotal + tax)
		if in.PayAmount != nil && math.Abs(*in.PayAmount-total) > 0.01 {
			return fmt.Errorf("%w: client %.2f vs server %.2f", ErrTotalMismatch, *in.PayAmount, total)
		}

		o := salesEntity.Order{
			Status:     salesEntity.StatusQueued,
			DineOption: dineOption,
			EmployeeID: employeeID,
			Notes:      in.Notes,
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}

		for _, line := range built {
			oi := salesEntity.OrderItem{
				OrderID:    o.OrderID,
				MenuItemID: line.menuItemID,
				Qty:        line.qty,
				UnitPrice:  line.unitPrice,
				TaxAmount:  round2(line.unitPrice * float64(line.qty) * taxRate),
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
			for _, oid := range line.optionIDs {
				sel := salesEntity.OrderItemOption{
					OrderItemID: oi.OrderItemID,
					OptionID:    oid,
					Qty:         1,
				}
				if err := tx.Create(&sel).Error; err != nil {
					return err
				}
			}
		}

		authRef := uuid.NewString()
		payment := salesEntity.Payment{
			OrderID: o.OrderID,
			Method:  in.PayMethod,
			Amount:  total,
			PaidAt:  time.Now(),
			AuthRef: &authRef,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		result = CheckoutResult{OrderID: o.OrderID, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	source := in.Source
	if source == "" {
		source = "kiosk"
	}
	metrics.OrdersPlaced.WithLabelValues(source).Inc()
	return &result, nil
}

// validateOptionForItem checks the option is offered by one of the base
// item's option groups, or is a global modifier with no backing menu item.
func validateOptionForItem(tx *gorm.DB, opt *menuEntity.Option, menuItemID uint) error {
	var n int64
	err := tx.Model(&menuEntity.MenuItemOptionGroup{}).
		Where("menu_item_id = ? AND option_group_id = ?", menuItemID, opt.OptionGroupID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: option %d on item %d", ErrOptionMismatch, opt.OptionID, menuItemID)
	}
	return nil
}
