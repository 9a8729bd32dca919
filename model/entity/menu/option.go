package menu

// OptionGroup bundles the selectable options of a combo item
// (e.g. "Plate: pick 2 sides + 1 entree").
type OptionGroup struct {
	OptionGroupID uint   `gorm:"column:option_group_id;primaryKey;autoIncrement" json:"option_group_id,omitempty"`
	Name          string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	MinSelect     uint16 `gorm:"column:min_select;not null;default:0" json:"min_select"`
	MaxSelect     uint16 `gorm:"column:max_select;not null;default:1" json:"max_select"`

	Options []Option `gorm:"foreignKey:OptionGroupID;references:OptionGroupID" json:"options,omitempty"`
}

func (OptionGroup) TableName() string {
	return "option_group"
}

// MenuItemOptionGroup links a base menu item to its option groups.
type MenuItemOptionGroup struct {
	MenuItemID    uint `gorm:"column:menu_item_id;primaryKey" json:"menu_item_id"`
	OptionGroupID uint `gorm:"column:option_group_id;primaryKey" json:"option_group_id"`
}

func (MenuItemOptionGroup) TableName() string {
	return "menu_item_option_group"
}

// Option is a selectable choice inside a group. MenuItemID points at the menu
// item the choice resolves to (an entree or side whose prepared stock it
// consumes); nil means a global modifier with no menu item behind it.
type Option struct {
	OptionID      uint    `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id,omitempty"`
	OptionGroupID uint    `gorm:"column:option_group_id;index;not null" json:"option_group_id"`
	Name          string  `gorm:"column:name;type:varchar(64);not null" json:"name"`
	PriceDelta    float64 `gorm:"column:price_delta;type:decimal(12,2);not null;default:0" json:"price_delta"`
	MenuItemID    *uint   `gorm:"column:menu_item_id;index" json:"menu_item_id,omitempty"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;references:MenuItemID" json:"menu_item,omitempty"`
}

func (Option) TableName() string {
	return "option"
}
