package menu

import (
	"gorm.io/gorm"

	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindByID returns a menu item by ID.
func (r *MenuRepository) FindByID(menuItemID uint) (*menuEntity.MenuItem, error) {
	var item menuEntity.MenuItem
	err := r.db.Where("menu_item_id = ?", menuItemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindActive returns all active menu items ordered by name.
func (r *MenuRepository) FindActive() ([]menuEntity.MenuItem, error) {
	var items []menuEntity.MenuItem
	err := r.db.Where("is_active = 1").Order("name").Find(&items).Error
	return items, err
}

// FindCategories returns all categories in display order.
func (r *MenuRepository) FindCategories() ([]menuEntity.Category, error) {
	var cats []menuEntity.Category
	err := r.db.Order("display_order, name").Find(&cats).Error
	return cats, err
}

// FindOptionGroupsForItem returns the option groups (with options) attached
// to a base menu item.
func (r *MenuRepository) FindOptionGroupsForItem(menuItemID uint) ([]menuEntity.OptionGroup, error) {
	var links []menuEntity.MenuItemOptionGroup
	if err := r.db.Where("menu_item_id = ?", menuItemID).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.OptionGroupID)
	}
	var groups []menuEntity.OptionGroup
	err := r.db.Preload("Options").Where("option_group_id IN ?", ids).Find(&groups).Error
	return groups, err
}

// BatchGetItems fetches menu items by ID into a map.
func (r *MenuRepository) BatchGetItems(ids []uint) (map[uint]menuEntity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []menuEntity.MenuItem
	if err := r.db.Where("menu_item_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]menuEntity.MenuItem, len(items))
	for _, it := range items {
		out[it.MenuItemID] = it
	}
	return out, nil
}

// BatchGetOptions fetches options by ID into a map, with their backing menu
// items preloaded (category classification rides on the menu item).
func (r *MenuRepository) BatchGetOptions(ids []uint) (map[uint]menuEntity.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []menuEntity.Option
	if err := r.db.Preload("MenuItem").Where("option_id IN ?", ids).Find(&opts).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]menuEntity.Option, len(opts))
	for _, o := range opts {
		out[o.OptionID] = o
	}
	return out, nil
}

// Create inserts a menu item.
func (r *MenuRepository) Create(item *menuEntity.MenuItem) error {
	return r.db.Create(item).Error
}

// Update saves changed fields of a menu item.
func (r *MenuRepository) Update(item *menuEntity.MenuItem) error {
	return r.db.Save(item).Error
}

// Deactivate soft-disables a menu item (kiosk hides it, history keeps it).
func (r *MenuRepository) Deactivate(menuItemID uint) error {
	res := r.db.Model(&menuEntity.MenuItem{}).
		Where("menu_item_id = ?", menuItemID).
		Update("is_active", 0)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
