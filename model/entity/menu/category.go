package menu

// Fixed category IDs used across the POS. Entrees and sides are the
// "prepared" categories: their servings are tracked in prepared_stock.
const (
	CategoryEntree    uint = 1
	CategoryAppetizer uint = 2
	CategoryALaCarte  uint = 3
	CategorySide      uint = 4
)

// IsPreparedCategory reports whether servings of this category are cooked in
// batches and tracked as prepared stock.
func IsPreparedCategory(categoryID uint) bool {
	return categoryID == CategoryEntree || categoryID == CategorySide
}

type Category struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id,omitempty"`
	Name         string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	DisplayOrder uint16 `gorm:"column:display_order;not null;default:0" json:"display_order"`
}

func (Category) TableName() string {
	return "category"
}
