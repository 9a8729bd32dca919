package apitest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	kioskApi "github.com/amanda-debetaz/PandaExpressPOS/api/kiosk"
	kitchenApi "github.com/amanda-debetaz/PandaExpressPOS/api/kitchen"
	stockApi "github.com/amanda-debetaz/PandaExpressPOS/api/stock"
	"github.com/amanda-debetaz/PandaExpressPOS/config"
	entity "github.com/amanda-debetaz/PandaExpressPOS/model/entity"
	inventoryEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/inventory"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	stockEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/stock"
	orderService "github.com/amanda-debetaz/PandaExpressPOS/service/order"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func apiTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Employee{},
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
	// Each test gets a fresh DB; drop any menu cached by a previous one.
	orderService.InvalidateMenuCache()
	return db
}

// seed is the menu the API tests run against.
type seed struct {
	orangeChicken menuEntity.MenuItem
	friedRice     menuEntity.MenuItem
	chowMein      menuEntity.MenuItem
	rangoon       menuEntity.MenuItem
	plate         menuEntity.MenuItem

	chicken inventoryEntity.Ingredient
	rice    inventoryEntity.Ingredient

	optFriedRice     menuEntity.Option
	optChowMein      menuEntity.Option
	optOrangeChicken menuEntity.Option
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func seedData(t *testing.T, db *gorm.DB) *seed {
	t.Helper()
	s := &seed{}

	for id, name := range map[uint]string{1: "Entree", 2: "Appetizer", 3: "A La Carte", 4: "Side"} {
		if err := db.Create(&menuEntity.Category{CategoryID: id, Name: name}).Error; err != nil {
			t.Fatalf("category: %v", err)
		}
	}
	db.Create(&entity.Employee{EmployeeID: 9999, Name: "Self-Service Kiosk", Role: "kiosk"})

	s.orangeChicken = menuEntity.MenuItem{Name: "Orange Chicken", CategoryID: menuEntity.CategoryEntree, Price: 5.20, IsActive: 1}
	s.friedRice = menuEntity.MenuItem{Name: "Fried Rice", CategoryID: menuEntity.CategorySide, Price: 4.40, IsActive: 1}
	s.chowMein = menuEntity.MenuItem{Name: "Chow Mein", CategoryID: menuEntity.CategorySide, Price: 4.40, IsActive: 1}
	s.rangoon = menuEntity.MenuItem{Name: "Cream Cheese Rangoon", CategoryID: menuEntity.CategoryAppetizer, Price: 2.25, IsActive: 1}
	s.plate = menuEntity.MenuItem{Name: "Plate", CategoryID: menuEntity.CategoryALaCarte, Price: 9.80, IsActive: 1}
	for _, item := range []*menuEntity.MenuItem{&s.orangeChicken, &s.friedRice, &s.chowMein, &s.rangoon, &s.plate} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("menu item: %v", err)
		}
	}

	s.chicken = inventoryEntity.Ingredient{Name: "Chicken Thigh", Unit: "lb", ServingsPerUnit: 2, CurrentQuantity: mustDec(t, "100"), IsActive: 1}
	s.rice = inventoryEntity.Ingredient{Name: "White Rice", Unit: "lb", ServingsPerUnit: 4, CurrentQuantity: mustDec(t, "200"), IsActive: 1}
	db.Create(&s.chicken)
	db.Create(&s.rice)

	db.Create(&inventoryEntity.RecipeLine{MenuItemID: s.orangeChicken.MenuItemID, IngredientID: s.chicken.IngredientID, QuantityPerServing: mustDec(t, "0.5")})
	db.Create(&inventoryEntity.RecipeLine{MenuItemID: s.friedRice.MenuItemID, IngredientID: s.rice.IngredientID, QuantityPerServing: mustDec(t, "0.25")})
	db.Create(&inventoryEntity.RecipeLine{MenuItemID: s.chowMein.MenuItemID, IngredientID: s.rice.IngredientID, QuantityPerServing: mustDec(t, "0.25")})

	sides := menuEntity.OptionGroup{Name: "Plate Sides", MinSelect: 1, MaxSelect: 2}
	entrees := menuEntity.OptionGroup{Name: "Plate Entrees", MinSelect: 1, MaxSelect: 2}
	db.Create(&sides)
	db.Create(&entrees)
	db.Create(&menuEntity.MenuItemOptionGroup{MenuItemID: s.plate.MenuItemID, OptionGroupID: sides.OptionGroupID})
	db.Create(&menuEntity.MenuItemOptionGroup{MenuItemID: s.plate.MenuItemID, OptionGroupID: entrees.OptionGroupID})

	s.optFriedRice = menuEntity.Option{OptionGroupID: sides.OptionGroupID, Name: "Fried Rice", MenuItemID: &s.friedRice.MenuItemID}
	s.optChowMein = menuEntity.Option{OptionGroupID: sides.OptionGroupID, Name: "Chow Mein", MenuItemID: &s.chowMein.MenuItemID}
	s.optOrangeChicken = menuEntity.Option{OptionGroupID: entrees.OptionGroupID, Name: "Orange Chicken", MenuItemID: &s.orangeChicken.MenuItemID}
	for _, opt := range []*menuEntity.Option{&s.optFriedRice, &s.optChowMein, &s.optOrangeChicken} {
		db.Create(opt)
	}

	return s
}

// newServer wires the API modules behind basic auth, the way pos.go does.
// role, when set, simulates an employee token carrying that role.
func newServer(t *testing.T, db *gorm.DB, role string) *echo.Echo {
	t.Helper()
	e := echo.New()
	apiGroup := e.Group("/api")
	if role != "" {
		apiGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set("employee_role", role)
				return next(c)
			}
		})
	}
	apiGroup.Use(middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(user, pass string, c echo.Context) (bool, error) {
			return user == testUser && pass == testPass, nil
		},
		Skipper: func(c echo.Context) bool {
			path := c.Path()
			return path == "/api/menu" || path == "/api/menu/:id"
		},
	}))
	stockApi.RegisterStockRoutes(apiGroup, db)
	kioskApi.RegisterKioskRoutes(apiGroup, db)
	kitchenApi.RegisterKitchenRoutes(apiGroup, db)
	return e
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func doJSON(e *echo.Echo, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
