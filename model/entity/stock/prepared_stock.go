package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreparedStock is the durable per-menu-item counter of cooked,
// ready-to-serve servings. ServingsAvailable never goes negative at rest;
// the ledger enforces that inside its transactions.
type PreparedStock struct {
	MenuItemID        uint            `gorm:"column:menu_item_id;primaryKey" json:"menu_item_id"`
	ServingsAvailable decimal.Decimal `gorm:"column:servings_available;type:decimal(12,2);not null;default:0" json:"servings_available"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PreparedStock) TableName() string {
	return "prepared_stock"
}

// OrderConsumption marks an order whose prepared stock has been deducted.
// Its presence is the sole truth for "already consumed"; at most one row
// exists per order.
type OrderConsumption struct {
	OrderID    uint      `gorm:"column:order_id;primaryKey" json:"order_id"`
	ConsumedAt time.Time `gorm:"column:consumed_at;autoCreateTime" json:"consumed_at"`
}

func (OrderConsumption) TableName() string {
	return "order_consumption"
}
