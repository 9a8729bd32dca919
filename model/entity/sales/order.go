package sales

import (
	"time"

	"gorm.io/datatypes"

	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
)

// Kitchen status values an order moves through.
const (
	StatusQueued   = "queued"
	StatusPrepping = "prepping"
	StatusDone     = "done"
)

// ValidStatus reports whether s is a known kitchen status.
func ValidStatus(s string) bool {
	return s == StatusQueued || s == StatusPrepping || s == StatusDone
}

const (
	DineIn  = "dine_in"
	Takeout = "takeout"
)

type Order struct {
	OrderID     uint           `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id,omitempty"`
	Status      string         `gorm:"column:status;type:varchar(16);not null;default:'queued';index" json:"status"`
	DineOption  string         `gorm:"column:dine_option;type:varchar(16);not null;default:'takeout'" json:"dine_option"`
	EmployeeID  uint           `gorm:"column:employee_id;index;not null" json:"employee_id"`
	Notes       *string        `gorm:"column:notes;type:varchar(255)" json:"notes,omitempty"`
	Meta        datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	CompletedAt *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "order"
}

type OrderItem struct {
	OrderItemID    uint    `gorm:"column:order_item_id;primaryKey;autoIncrement" json:"order_item_id,omitempty"`
	OrderID        uint    `gorm:"column:order_id;index;not null" json:"order_id"`
	MenuItemID     uint    `gorm:"column:menu_item_id;index;not null" json:"menu_item_id"`
	Qty            int     `gorm:"column:qty;not null;default:1" json:"qty"`
	UnitPrice      float64 `gorm:"column:unit_price;type:decimal(12,2);not null;default:0" json:"unit_price"`
	DiscountAmount float64 `gorm:"column:discount_amount;type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TaxAmount      float64 `gorm:"column:tax_amount;type:decimal(12,2);not null;default:0" json:"tax_amount"`

	MenuItem *menuEntity.MenuItem `gorm:"foreignKey:MenuItemID;references:MenuItemID" json:"menu_item,omitempty"`
	Options  []OrderItemOption    `gorm:"foreignKey:OrderItemID;references:OrderItemID" json:"options,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_item"
}

type OrderItemOption struct {
	OrderItemID uint `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`
	OptionID    uint `gorm:"column:option_id;primaryKey" json:"option_id"`
	Qty         int  `gorm:"column:qty;not null;default:1" json:"qty"`

	Option *menuEntity.Option `gorm:"foreignKey:OptionID;references:OptionID" json:"option,omitempty"`
}

func (OrderItemOption) TableName() string {
	return "order_item_option"
}
