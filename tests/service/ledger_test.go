package servicetest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

// ---------- CookBatch ----------

func TestCookBatch_DeductsCeiledUnitsAndIncrementsServings(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// Orange Chicken, 10 servings:
	//   chicken: ceil(10 * 0.5 / 2)   = ceil(2.5)    -> 3 lb
	//   sauce:   ceil(10 * 0.125 / 8) = ceil(0.15625) -> 1 qt
	available, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 10)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("10")), "available = %s, want 10", available)

	assert.True(t, ingredientQuantity(t, db, f.chicken.IngredientID).Equal(dec("97")))
	assert.True(t, ingredientQuantity(t, db, f.sauce.IngredientID).Equal(dec("39")))
}

func TestCookBatch_AccumulatesAcrossBatches(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 8)
	require.NoError(t, err)
	available, err := ledger.CookBatch(f.friedRice.MenuItemID, 4)
	require.NoError(t, err)

	assert.True(t, available.Equal(dec("12")), "available = %s, want 12", available)
	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("12")))
}

func TestCookBatch_ShortageRejectsWholeBatch(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// 100 servings of Orange Chicken needs 25 lb chicken and 2 qt sauce.
	// Leave 10 lb chicken and 1 qt sauce so both run short.
	db.Model(&f.chicken).Update("current_quantity", dec("10"))
	db.Model(&f.sauce).Update("current_quantity", dec("1"))

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 100)
	var short *stockService.InsufficientInventoryError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Shortages, 2, "error must name every short ingredient")

	// Nothing was deducted, nothing was cooked.
	assert.True(t, ingredientQuantity(t, db, f.chicken.IngredientID).Equal(dec("10")))
	assert.True(t, ingredientQuantity(t, db, f.sauce.IngredientID).Equal(dec("1")))
	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).IsZero())
}

func TestCookBatch_PartialShortageStillRejectsAll(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// Sauce is plentiful, chicken is short: the batch still must not touch
	// the sauce.
	db.Model(&f.chicken).Update("current_quantity", dec("1"))

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 20)
	var short *stockService.InsufficientInventoryError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Shortages, 1)
	assert.Equal(t, f.chicken.IngredientID, short.Shortages[0].ID)

	assert.True(t, ingredientQuantity(t, db, f.sauce.IngredientID).Equal(dec("40")))
}

func TestCookBatch_RejectsNonPositiveServings(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	for _, servings := range []int{0, -3} {
		_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, servings)
		assert.ErrorIs(t, err, stockService.ErrInvalidInput, "servings=%d", servings)
	}
}

func TestCookBatch_NoRecipeConfigured(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// The rangoon has no recipe rows.
	_, err := ledger.CookBatch(f.rangoon.MenuItemID, 5)
	assert.ErrorIs(t, err, stockService.ErrNoRecipeConfigured)
}

func TestCookBatch_UnknownMenuItem(t *testing.T) {
	db := testDB(t)
	seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(424242, 5)
	assert.ErrorIs(t, err, stockService.ErrNotFound)
}

// ---------- ConsumeForOrder ----------

func TestConsume_PlateWithTwoSidesHalvesEach(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 4)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.chowMein.MenuItemID, 4)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 4)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optChowMein.OptionID, f.optOrangeChicken.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("3.5")))
	assert.True(t, preparedServings(t, db, f.chowMein.MenuItemID).Equal(dec("3.5")))
	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("3")))
}

func TestConsume_SingleSideTakesFullServing(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 4)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 4)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optOrangeChicken.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("3")))
}

func TestConsume_EntreesNeverHalved(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 4)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.beijingBeef.MenuItemID, 4)
	require.NoError(t, err)

	// Two entree picks on one plate: each one is a full serving.
	orderID := placeOrder(t, db, f.plate, 1,
		f.optOrangeChicken.OptionID, f.optBeijingBeef.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("3")))
	assert.True(t, preparedServings(t, db, f.beijingBeef.MenuItemID).Equal(dec("3")))
}

func TestConsume_BaseItemInPreparedCategory(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 6)
	require.NoError(t, err)

	// Fried Rice ordered a la carte as its own line, qty 2.
	orderID := placeOrder(t, db, f.friedRice, 2)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("4")))
}

func TestConsume_Idempotent(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 5)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.orangeChicken, 1)
	require.NoError(t, ledger.ConsumeForOrder(orderID))
	require.NoError(t, ledger.ConsumeForOrder(orderID))
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("4")),
		"repeat consumption must not deduct again")
}

func TestConsume_ShortageRejectsWholeOrder(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// Plenty of rice, no chicken cooked at all.
	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 4)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optOrangeChicken.OptionID)

	err = ledger.ConsumeForOrder(orderID)
	var short *stockService.InsufficientPreparedStockError
	require.ErrorAs(t, err, &short)
	require.Len(t, short.Shortages, 1)
	assert.Equal(t, f.orangeChicken.MenuItemID, short.Shortages[0].ID)
	assert.Equal(t, "Orange Chicken", short.Shortages[0].Name)

	// The rice stayed untouched and the order is still unconsumed.
	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("4")))

	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 2)
	require.NoError(t, err)
	require.NoError(t, ledger.ConsumeForOrder(orderID))
	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).Equal(dec("3")))
	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("1")))
}

func TestConsume_HalfPlusHalfNeedsWholeServing(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// Exactly one serving of rice covers two half-side picks across two
	// orders; a third half must be rejected, not rounded through.
	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 1)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.chowMein.MenuItemID, 2)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 4)
	require.NoError(t, err)

	first := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optChowMein.OptionID, f.optOrangeChicken.OptionID)
	second := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optChowMein.OptionID, f.optOrangeChicken.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(first))
	require.NoError(t, ledger.ConsumeForOrder(second))
	assert.True(t, preparedServings(t, db, f.friedRice.MenuItemID).IsZero())

	third := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optChowMein.OptionID, f.optOrangeChicken.OptionID)
	err = ledger.ConsumeForOrder(third)
	var short *stockService.InsufficientPreparedStockError
	require.ErrorAs(t, err, &short)
}

func TestConsume_UntrackedItemsWriteMarkerOnly(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	// Appetizer only: no prepared categories involved, but the order still
	// gets its consumed marker.
	orderID := placeOrder(t, db, f.rangoon, 3)
	require.NoError(t, ledger.ConsumeForOrder(orderID))
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	levels, err := ledger.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func TestConsume_PlainModifierOptionIgnored(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 3)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.plate, 1,
		f.optOrangeChicken.OptionID, f.optExtraSauce.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("2")))
}

func TestConsume_UnknownOrder(t *testing.T) {
	db := testDB(t)
	seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	err := ledger.ConsumeForOrder(99999)
	assert.ErrorIs(t, err, stockService.ErrNotFound)
}

// ---------- DiscardAll / Snapshot ----------

func TestDiscardAll_ZeroesCountersKeepsMarkers(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 6)
	require.NoError(t, err)
	orderID := placeOrder(t, db, f.orangeChicken, 1)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	cleared, err := ledger.DiscardAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)
	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).IsZero())

	// The discarded order stays consumed: re-consuming deducts nothing.
	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 2)
	require.NoError(t, err)
	require.NoError(t, ledger.ConsumeForOrder(orderID))
	assert.True(t, preparedServings(t, db, f.orangeChicken.MenuItemID).Equal(dec("2")))
}

func TestDiscardAll_NothingToClear(t *testing.T) {
	db := testDB(t)
	seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	cleared, err := ledger.DiscardAll()
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestSnapshot_ReflectsLedgerState(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	_, err := ledger.CookBatch(f.friedRice.MenuItemID, 8)
	require.NoError(t, err)
	_, err = ledger.CookBatch(f.orangeChicken.MenuItemID, 5)
	require.NoError(t, err)

	orderID := placeOrder(t, db, f.plate, 1,
		f.optFriedRice.OptionID, f.optOrangeChicken.OptionID)
	require.NoError(t, ledger.ConsumeForOrder(orderID))

	levels, err := ledger.Snapshot()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	byID := map[uint]string{}
	for _, lv := range levels {
		byID[lv.MenuItemID] = lv.ServingsAvailable.String()
	}
	assert.Equal(t, "7", byID[f.friedRice.MenuItemID])
	assert.Equal(t, "4", byID[f.orangeChicken.MenuItemID])

	for _, lv := range levels {
		assert.NotEmpty(t, lv.Name)
	}
}

func TestLedgerErrors_Classification(t *testing.T) {
	db := testDB(t)
	f := seedMenu(t, db)
	ledger := stockService.NewLedger(db)

	db.Model(&f.chicken).Update("current_quantity", dec("0"))
	_, err := ledger.CookBatch(f.orangeChicken.MenuItemID, 10)

	// Domain errors pass through untouched, never wrapped as storage faults.
	var transient *stockService.TransientStorageError
	assert.False(t, errors.As(err, &transient))
	var short *stockService.InsufficientInventoryError
	assert.True(t, errors.As(err, &short))
}
