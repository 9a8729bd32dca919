package inventory

import "github.com/shopspring/decimal"

// RecipeLine defines how many raw units of one ingredient a single prepared
// serving of a menu item consumes.
type RecipeLine struct {
	MenuItemID         uint            `gorm:"column:menu_item_id;primaryKey" json:"menu_item_id"`
	IngredientID       uint            `gorm:"column:ingredient_id;primaryKey" json:"ingredient_id"`
	QuantityPerServing decimal.Decimal `gorm:"column:qty_per_item;type:decimal(12,4);not null" json:"qty_per_item"`
	Unit               string          `gorm:"column:unit;type:varchar(16)" json:"unit"`
}

func (RecipeLine) TableName() string {
	return "recipe"
}
