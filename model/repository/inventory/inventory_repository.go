package inventory

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	inventoryEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/inventory"
)

type InventoryRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewInventoryRepository(db *gorm.DB) (*InventoryRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &InventoryRepository{db: db, sqlDB: sqlDB}, nil
}

// GetQuantity returns the current on-hand quantity for an ingredient.
// Uses raw SQL for minimal overhead (stock panel polls this).
func (r *InventoryRepository) GetQuantity(ingredientID uint) (decimal.Decimal, bool) {
	const query = `SELECT current_quantity FROM inventory WHERE ingredient_id = ? LIMIT 1`
	var qty sql.NullString
	if err := r.sqlDB.QueryRow(query, ingredientID).Scan(&qty); err != nil || !qty.Valid {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(qty.String)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// GetByID returns the full ingredient entity using GORM.
func (r *InventoryRepository) GetByID(ingredientID uint) (*inventoryEntity.Ingredient, error) {
	var item inventoryEntity.Ingredient
	err := r.db.Where("ingredient_id = ?", ingredientID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAllActive returns all active ingredients ordered by name.
func (r *InventoryRepository) FindAllActive() ([]inventoryEntity.Ingredient, error) {
	var items []inventoryEntity.Ingredient
	err := r.db.Where("is_active = 1").Order("name").Find(&items).Error
	return items, err
}

// FindBelowPar returns active ingredients at or below their par level.
func (r *InventoryRepository) FindBelowPar() ([]inventoryEntity.Ingredient, error) {
	var items []inventoryEntity.Ingredient
	err := r.db.Where("is_active = 1 AND current_quantity <= par_level").Order("name").Find(&items).Error
	return items, err
}

// GetRecipe returns all recipe lines for a menu item.
func (r *InventoryRepository) GetRecipe(menuItemID uint) ([]inventoryEntity.RecipeLine, error) {
	var lines []inventoryEntity.RecipeLine
	err := r.db.Where("menu_item_id = ?", menuItemID).Find(&lines).Error
	return lines, err
}

// BatchGetQuantities fetches quantities for multiple ingredients in one query.
func (r *InventoryRepository) BatchGetQuantities(ingredientIDs []uint) (map[uint]decimal.Decimal, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}

	result := make(map[uint]decimal.Decimal, len(ingredientIDs))
	rows, err := r.db.Table("inventory").
		Select("ingredient_id, current_quantity").
		Where("ingredient_id IN ?", ingredientIDs).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uint
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			continue
		}
		result[id] = qty
	}
	return result, nil
}

// AdjustQuantity adds delta (may be negative) to an ingredient's on-hand
// quantity. Manager receiving/waste adjustments; batch-cook deductions go
// through the prepared-stock ledger instead.
func (r *InventoryRepository) AdjustQuantity(ingredientID uint, delta decimal.Decimal) error {
	res := r.db.Model(&inventoryEntity.Ingredient{}).
		Where("ingredient_id = ?", ingredientID).
		Update("current_quantity", gorm.Expr("current_quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
