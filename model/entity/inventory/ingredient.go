package inventory

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Ingredient represents the inventory table (raw stock on hand).
type Ingredient struct {
	IngredientID    uint            `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id,omitempty"`
	Name            string          `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Unit            string          `gorm:"column:unit;type:varchar(16);not null" json:"unit"`
	ServingsPerUnit int             `gorm:"column:servings_per_unit;not null;default:1" json:"servings_per_unit"`
	CurrentQuantity decimal.Decimal `gorm:"column:current_quantity;type:decimal(12,4);not null;default:0" json:"current_quantity"`
	ParLevel        decimal.Decimal `gorm:"column:par_level;type:decimal(12,4);not null;default:0" json:"par_level"`
	ReorderPoint    decimal.Decimal `gorm:"column:reorder_point;type:decimal(12,4);not null;default:0" json:"reorder_point"`
	CostPerUnit     float64         `gorm:"column:cost_per_unit;type:decimal(12,4);not null;default:0" json:"cost_per_unit"`
	LeadTimeDays    int             `gorm:"column:lead_time_days;not null;default:0" json:"lead_time_days"`
	IsPerishable    uint16          `gorm:"column:is_perishable;not null;default:0" json:"is_perishable"`
	ShelfLifeDays   int             `gorm:"column:shelf_life_days;not null;default:0" json:"shelf_life_days"`
	AllergenInfo    datatypes.JSON  `gorm:"column:allergen_info" json:"allergen_info,omitempty"`
	IsActive        uint16          `gorm:"column:is_active;not null;default:1" json:"is_active"`
}

func (Ingredient) TableName() string {
	return "inventory"
}
