package menu

type MenuItem struct {
	MenuItemID uint    `gorm:"column:menu_item_id;primaryKey;autoIncrement" json:"menu_item_id,omitempty"`
	CategoryID uint    `gorm:"column:category_id;index;not null" json:"category_id"`
	Name       string  `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Price      float64 `gorm:"column:price;type:decimal(12,2);not null;default:0" json:"price"`
	IsActive   uint16  `gorm:"column:is_active;not null;default:1" json:"is_active"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (MenuItem) TableName() string {
	return "menu_item"
}
