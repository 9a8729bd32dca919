package servicetest

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	entity "github.com/amanda-debetaz/PandaExpressPOS/model/entity"
	inventoryEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/inventory"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	stockEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/stock"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Employee{},
		&entity.Shift{},
		&entity.ApiToken{},
		&menuEntity.Category{},
		&menuEntity.MenuItem{},
		&menuEntity.OptionGroup{},
		&menuEntity.Option{},
		&menuEntity.MenuItemOptionGroup{},
		&inventoryEntity.Ingredient{},
		&inventoryEntity.RecipeLine{},
		&salesEntity.Order{},
		&salesEntity.OrderItem{},
		&salesEntity.OrderItemOption{},
		&salesEntity.Payment{},
		&stockEntity.PreparedStock{},
		&stockEntity.OrderConsumption{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.LoadAppConfig()
	return db
}

// fixture is the seeded menu every ledger test works against.
type fixture struct {
	orangeChicken menuEntity.MenuItem // entree
	beijingBeef   menuEntity.MenuItem // entree
	friedRice     menuEntity.MenuItem // side
	chowMein      menuEntity.MenuItem // side
	rangoon       menuEntity.MenuItem // appetizer, never tracked
	plate         menuEntity.MenuItem // combo base, a la carte

	chicken inventoryEntity.Ingredient
	sauce   inventoryEntity.Ingredient
	rice    inventoryEntity.Ingredient
	noodles inventoryEntity.Ingredient

	sideGroup   menuEntity.OptionGroup
	entreeGroup menuEntity.OptionGroup

	optFriedRice     menuEntity.Option
	optChowMein      menuEntity.Option
	optOrangeChicken menuEntity.Option
	optBeijingBeef   menuEntity.Option
	optExtraSauce    menuEntity.Option // plain modifier, no menu item
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedMenu(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	for id, name := range map[uint]string{
		menuEntity.CategoryEntree:    "Entree",
		menuEntity.CategoryAppetizer: "Appetizer",
		menuEntity.CategoryALaCarte:  "A La Carte",
		menuEntity.CategorySide:      "Side",
	} {
		mustCreate(t, db, &menuEntity.Category{CategoryID: id, Name: name})
	}

	mustCreate(t, db, &entity.Employee{EmployeeID: 9999, Name: "Self-Service Kiosk", Role: "kiosk"})

	f.orangeChicken = menuEntity.MenuItem{Name: "Orange Chicken", CategoryID: menuEntity.CategoryEntree, Price: 5.20, IsActive: 1}
	f.beijingBeef = menuEntity.MenuItem{Name: "Beijing Beef", CategoryID: menuEntity.CategoryEntree, Price: 5.95, IsActive: 1}
	f.friedRice = menuEntity.MenuItem{Name: "Fried Rice", CategoryID: menuEntity.CategorySide, Price: 4.40, IsActive: 1}
	f.chowMein = menuEntity.MenuItem{Name: "Chow Mein", CategoryID: menuEntity.CategorySide, Price: 4.40, IsActive: 1}
	f.rangoon = menuEntity.MenuItem{Name: "Cream Cheese Rangoon", CategoryID: menuEntity.CategoryAppetizer, Price: 2.25, IsActive: 1}
	f.plate = menuEntity.MenuItem{Name: "Plate", CategoryID: menuEntity.CategoryALaCarte, Price: 9.80, IsActive: 1}
	for _, item := range []*menuEntity.MenuItem{&f.orangeChicken, &f.beijingBeef, &f.friedRice, &f.chowMein, &f.rangoon, &f.plate} {
		mustCreate(t, db, item)
	}

	// 2 servings per lb of chicken, 8 per quart of sauce, 4 per lb of rice
	// and noodles. Quantities are generous; shortage tests shrink them.
	f.chicken = inventoryEntity.Ingredient{Name: "Chicken Thigh", Unit: "lb", ServingsPerUnit: 2, CurrentQuantity: dec("100"), ParLevel: dec("20"), IsActive: 1}
	f.sauce = inventoryEntity.Ingredient{Name: "Orange Sauce", Unit: "qt", ServingsPerUnit: 8, CurrentQuantity: dec("40"), ParLevel: dec("10"), IsActive: 1}
	f.rice = inventoryEntity.Ingredient{Name: "White Rice", Unit: "lb", ServingsPerUnit: 4, CurrentQuantity: dec("200"), ParLevel: dec("50"), IsActive: 1}
	f.noodles = inventoryEntity.Ingredient{Name: "Chow Mein Noodles", Unit: "lb", ServingsPerUnit: 4, CurrentQuantity: dec("120"), ParLevel: dec("40"), IsActive: 1}
	for _, ing := range []*inventoryEntity.Ingredient{&f.chicken, &f.sauce, &f.rice, &f.noodles} {
		mustCreate(t, db, ing)
	}

	recipes := []inventoryEntity.RecipeLine{
		{MenuItemID: f.orangeChicken.MenuItemID, IngredientID: f.chicken.IngredientID, QuantityPerServing: dec("0.5"), Unit: "lb"},
		{MenuItemID: f.orangeChicken.MenuItemID, IngredientID: f.sauce.IngredientID, QuantityPerServing: dec("0.125"), Unit: "qt"},
		{MenuItemID: f.beijingBeef.MenuItemID, IngredientID: f.chicken.IngredientID, QuantityPerServing: dec("0.5"), Unit: "lb"},
		{MenuItemID: f.friedRice.MenuItemID, IngredientID: f.rice.IngredientID, QuantityPerServing: dec("0.25"), Unit: "lb"},
		{MenuItemID: f.chowMein.MenuItemID, IngredientID: f.noodles.IngredientID, QuantityPerServing: dec("0.25"), Unit: "lb"},
	}
	for i := range recipes {
		mustCreate(t, db, &recipes[i])
	}

	f.sideGroup = menuEntity.OptionGroup{Name: "Plate Sides", MinSelect: 1, MaxSelect: 2}
	f.entreeGroup = menuEntity.OptionGroup{Name: "Plate Entrees", MinSelect: 1, MaxSelect: 2}
	mustCreate(t, db, &f.sideGroup)
	mustCreate(t, db, &f.entreeGroup)
	mustCreate(t, db, &menuEntity.MenuItemOptionGroup{MenuItemID: f.plate.MenuItemID, OptionGroupID: f.sideGroup.OptionGroupID})
	mustCreate(t, db, &menuEntity.MenuItemOptionGroup{MenuItemID: f.plate.MenuItemID, OptionGroupID: f.entreeGroup.OptionGroupID})

	f.optFriedRice = menuEntity.Option{OptionGroupID: f.sideGroup.OptionGroupID, Name: "Fried Rice", MenuItemID: &f.friedRice.MenuItemID}
	f.optChowMein = menuEntity.Option{OptionGroupID: f.sideGroup.OptionGroupID, Name: "Chow Mein", MenuItemID: &f.chowMein.MenuItemID}
	f.optOrangeChicken = menuEntity.Option{OptionGroupID: f.entreeGroup.OptionGroupID, Name: "Orange Chicken", MenuItemID: &f.orangeChicken.MenuItemID}
	f.optBeijingBeef = menuEntity.Option{OptionGroupID: f.entreeGroup.OptionGroupID, Name: "Beijing Beef", PriceDelta: 1.25, MenuItemID: &f.beijingBeef.MenuItemID}
	f.optExtraSauce = menuEntity.Option{OptionGroupID: f.entreeGroup.OptionGroupID, Name: "Extra Sauce"}
	for _, opt := range []*menuEntity.Option{&f.optFriedRice, &f.optChowMein, &f.optOrangeChicken, &f.optBeijingBeef, &f.optExtraSauce} {
		mustCreate(t, db, opt)
	}

	return f
}

// placeOrder writes a queued order directly: one line on the base item with
// the given option selections.
func placeOrder(t *testing.T, db *gorm.DB, base menuEntity.MenuItem, qty int, optionIDs ...uint) uint {
	t.Helper()
	o := salesEntity.Order{Status: salesEntity.StatusQueued, DineOption: salesEntity.Takeout, EmployeeID: 9999}
	mustCreate(t, db, &o)
	oi := salesEntity.OrderItem{OrderID: o.OrderID, MenuItemID: base.MenuItemID, Qty: qty, UnitPrice: base.Price}
	mustCreate(t, db, &oi)
	for _, oid := range optionIDs {
		mustCreate(t, db, &salesEntity.OrderItemOption{OrderItemID: oi.OrderItemID, OptionID: oid, Qty: 1})
	}
	return o.OrderID
}

func preparedServings(t *testing.T, db *gorm.DB, menuItemID uint) decimal.Decimal {
	t.Helper()
	var ps stockEntity.PreparedStock
	err := db.Where("menu_item_id = ?", menuItemID).First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero
	}
	if err != nil {
		t.Fatalf("prepared stock for %d: %v", menuItemID, err)
	}
	return ps.ServingsAvailable
}

func ingredientQuantity(t *testing.T, db *gorm.DB, ingredientID uint) decimal.Decimal {
	t.Helper()
	var ing inventoryEntity.Ingredient
	if err := db.Where("ingredient_id = ?", ingredientID).First(&ing).Error; err != nil {
		t.Fatalf("ingredient %d: %v", ingredientID, err)
	}
	return ing.CurrentQuantity
}
