package stock

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventoryEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/inventory"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	stockEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/stock"
	stockRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/stock"
)

// Ledger owns the prepared-serving counters: batch-cook conversion of raw
// inventory into servings, at-most-once consumption per order, end-of-day
// discard, and the stock snapshot. It holds no in-process state; every
// public operation is a single storage transaction and correctness comes
// from row locking inside that transaction.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// StockLevel is one row of the stock panel snapshot.
type StockLevel struct {
	MenuItemID        uint            `json:"menu_item_id"`
	Name              string          `json:"name"`
	ServingsAvailable decimal.Decimal `json:"servings_available"`
}

// lockForUpdate adds a row lock on dialects that support it. SQLite (tests)
// has no FOR UPDATE; its single-writer transaction lock covers the same
// hazard there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CookBatch converts raw inventory into servings of one menu item. Needs
// per ingredient: ceil(servings * qty_per_serving / servings_per_unit).
// Either every ingredient is deducted and the counter incremented, or
// nothing changes and the error names every short ingredient. Returns the
// new servings available.
func (l *Ledger) CookBatch(menuItemID uint, servings int) (decimal.Decimal, error) {
	if servings <= 0 {
		return decimal.Zero, fmt.Errorf("%w: servings must be a positive integer, got %d", ErrInvalidInput, servings)
	}

	var newAvailable decimal.Decimal
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var item menuEntity.MenuItem
		if err := tx.Where("menu_item_id = ?", menuItemID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: menu item %d", ErrNotFound, menuItemID)
			}
			return err
		}

		var recipe []inventoryEntity.RecipeLine
		if err := tx.Where("menu_item_id = ?", menuItemID).Order("ingredient_id").Find(&recipe).Error; err != nil {
			return err
		}
		if len(recipe) == 0 {
			return fmt.Errorf("%w: menu item %q", ErrNoRecipeConfigured, item.Name)
		}

		ingredientIDs := make([]uint, 0, len(recipe))
		for _, line := range recipe {
			ingredientIDs = append(ingredientIDs, line.IngredientID)
		}

		var ingredients []inventoryEntity.Ingredient
		if err := lockForUpdate(tx).Where("ingredient_id IN ?", ingredientIDs).Find(&ingredients).Error; err != nil {
			return err
		}
		byID := make(map[uint]*inventoryEntity.Ingredient, len(ingredients))
		for i := range ingredients {
			byID[ingredients[i].IngredientID] = &ingredients[i]
		}

		servingsDec := decimal.NewFromInt(int64(servings))
		needed := make(map[uint]decimal.Decimal, len(recipe))
		var shortages []Shortage
		for _, line := range recipe {
			ing, ok := byID[line.IngredientID]
			if !ok {
				return fmt.Errorf("%w: ingredient %d", ErrNotFound, line.IngredientID)
			}
			spu := ing.ServingsPerUnit
			if spu <= 0 {
				spu = 1
			}
			units := line.QuantityPerServing.Mul(servingsDec).Div(decimal.NewFromInt(int64(spu))).Ceil()
			needed[line.IngredientID] = units
			if ing.CurrentQuantity.LessThan(units) {
				shortages = append(shortages, Shortage{
					ID:   ing.IngredientID,
					Name: ing.Name,
					Have: ing.CurrentQuantity,
					Need: units,
				})
			}
		}
		if len(shortages) > 0 {
			return &InsufficientInventoryError{MenuItemID: menuItemID, Shortages: shortages}
		}

		for _, line := range recipe {
			ing := byID[line.IngredientID]
			remaining := ing.CurrentQuantity.Sub(needed[line.IngredientID])
			if err := tx.Model(&inventoryEntity.Ingredient{}).
				Where("ingredient_id = ?", ing.IngredientID).
				Update("current_quantity", remaining).Error; err != nil {
				return err
			}
		}

		var ps stockEntity.PreparedStock
		err := lockForUpdate(tx).Where("menu_item_id = ?", menuItemID).First(&ps).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ps = stockEntity.PreparedStock{MenuItemID: menuItemID, ServingsAvailable: servingsDec}
			if err := tx.Create(&ps).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			ps.ServingsAvailable = ps.ServingsAvailable.Add(servingsDec)
			if err := tx.Model(&stockEntity.PreparedStock{}).
				Where("menu_item_id = ?", menuItemID).
				Update("servings_available", ps.ServingsAvailable).Error; err != nil {
				return err
			}
		}
		newAvailable = ps.ServingsAvailable
		return nil
	})
	if err != nil {
		return decimal.Zero, classify("CookBatch", err)
	}
	return newAvailable, nil
}

// ConsumeForOrder deducts an order's prepared servings exactly once, in its
// own transaction. Kitchen status writes that must commit together with the
// deduction use ConsumeForOrderTx instead.
func (l *Ledger) ConsumeForOrder(orderID uint) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return l.ConsumeForOrderTx(tx, orderID)
	})
	return classify("ConsumeForOrder", err)
}

// ConsumeForOrderTx runs the consumption inside the caller's transaction.
// The idempotency gate, availability check, decrements, and marker write all
// ride on tx, so a rolled-back status transition also rolls back the
// deduction.
func (l *Ledger) ConsumeForOrderTx(tx *gorm.DB, orderID uint) error {
	// The locked order row is the serialization point for concurrent
	// transitions of the same order.
	var order salesEntity.Order
	err := lockForUpdate(tx).
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.Options").
		Preload("Items.Options.Option").
		Preload("Items.Options.Option.MenuItem").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return err
	}

	var n int64
	if err := tx.Model(&stockEntity.OrderConsumption{}).Where("order_id = ?", orderID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	need := ComputeConsumption(LinesFromOrder(&order))
	if len(need) == 0 {
		return tx.Create(&stockEntity.OrderConsumption{OrderID: orderID}).Error
	}

	ids := make([]uint, 0, len(need))
	for id := range need {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var rows []stockEntity.PreparedStock
	if err := lockForUpdate(tx).Where("menu_item_id IN ?", ids).Find(&rows).Error; err != nil {
		return err
	}
	available := make(map[uint]decimal.Decimal, len(rows))
	for _, row := range rows {
		available[row.MenuItemID] = row.ServingsAvailable
	}

	var shortages []Shortage
	for _, id := range ids {
		if available[id].LessThan(need[id]) {
			shortages = append(shortages, Shortage{
				ID:   id,
				Name: l.menuItemName(tx, id),
				Have: available[id],
				Need: need[id],
			})
		}
	}
	if len(shortages) > 0 {
		return &InsufficientPreparedStockError{OrderID: orderID, Shortages: shortages}
	}

	for _, id := range ids {
		remaining := available[id].Sub(need[id])
		if err := tx.Model(&stockEntity.PreparedStock{}).
			Where("menu_item_id = ?", id).
			Update("servings_available", remaining).Error; err != nil {
			return err
		}
	}
	return tx.Create(&stockEntity.OrderConsumption{OrderID: orderID}).Error
}

// DiscardAll zeroes every prepared-serving counter (end-of-day waste
// clearing). Consumption markers stay: past orders remain consumed. Returns
// the number of counters cleared.
func (l *Ledger) DiscardAll() (int64, error) {
	res := l.db.Model(&stockEntity.PreparedStock{}).
		Where("servings_available <> 0").
		Update("servings_available", decimal.Zero)
	if res.Error != nil {
		return 0, classify("DiscardAll", res.Error)
	}
	return res.RowsAffected, nil
}

// Snapshot returns servings available per tracked menu item with display
// names, for the stock panel and menu-board color coding. Read-only.
func (l *Ledger) Snapshot() ([]StockLevel, error) {
	rows, err := stockRepo.NewStockRepository(l.db).FindAll()
	if err != nil {
		return nil, classify("Snapshot", err)
	}
	if len(rows) == 0 {
		return []StockLevel{}, nil
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.MenuItemID)
	}
	var items []menuEntity.MenuItem
	if err := l.db.Where("menu_item_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, classify("Snapshot", err)
	}
	names := make(map[uint]string, len(items))
	for _, it := range items {
		names[it.MenuItemID] = it.Name
	}

	out := make([]StockLevel, 0, len(rows))
	for _, row := range rows {
		out = append(out, StockLevel{
			MenuItemID:        row.MenuItemID,
			Name:              names[row.MenuItemID],
			ServingsAvailable: row.ServingsAvailable,
		})
	}
	return out, nil
}

func (l *Ledger) menuItemName(tx *gorm.DB, menuItemID uint) string {
	var item menuEntity.MenuItem
	if err := tx.Where("menu_item_id = ?", menuItemID).First(&item).Error; err != nil {
		return fmt.Sprintf("menu item %d", menuItemID)
	}
	return item.Name
}
