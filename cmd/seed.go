package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	inventoryEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/inventory"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
)

var seedFile string

// seedDoc is the YAML layout of a seed file. Recipes and option groups
// reference menu items and ingredients by name so seeds stay readable.
type seedDoc struct {
	Categories []struct {
		Name         string `yaml:"name"`
		DisplayOrder uint16 `yaml:"display_order"`
	} `yaml:"categories"`
	Ingredients []struct {
		Name            string  `yaml:"name"`
		Unit            string  `yaml:"unit"`
		ServingsPerUnit int     `yaml:"servings_per_unit"`
		Quantity        float64 `yaml:"quantity"`
		ParLevel        float64 `yaml:"par_level"`
		CostPerUnit     float64 `yaml:"cost_per_unit"`
	} `yaml:"ingredients"`
	MenuItems []struct {
		Name     string  `yaml:"name"`
		Category string  `yaml:"category"`
		Price    float64 `yaml:"price"`
		Recipe   []struct {
			Ingredient    string  `yaml:"ingredient"`
			QtyPerServing float64 `yaml:"qty_per_serving"`
			Unit          string  `yaml:"unit"`
		} `yaml:"recipe"`
	} `yaml:"menu_items"`
	OptionGroups []struct {
		Name      string   `yaml:"name"`
		MinSelect uint16   `yaml:"min_select"`
		MaxSelect uint16   `yaml:"max_select"`
		AppliesTo []string `yaml:"applies_to"`
		Options   []struct {
			Name       string  `yaml:"name"`
			PriceDelta float64 `yaml:"price_delta"`
			MenuItem   string  `yaml:"menu_item"`
		} `yaml:"options"`
	} `yaml:"option_groups"`
}

var categoryIDs = map[string]uint{
	"entree":     menuEntity.CategoryEntree,
	"appetizer":  menuEntity.CategoryAppetizer,
	"a_la_carte": menuEntity.CategoryALaCarte,
	"side":       menuEntity.CategorySide,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load menu, inventory, and recipes from a YAML seed file",
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(seedFile)
		if err != nil {
			fmt.Printf("Failed to read seed file: %v\n", err)
			os.Exit(1)
		}
		var doc seedDoc
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			fmt.Printf("Failed to parse seed file: %v\n", err)
			os.Exit(1)
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		if err := Seed(db, &doc); err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %d categories, %d ingredients, %d menu items, %d option groups.\n",
			len(doc.Categories), len(doc.Ingredients), len(doc.MenuItems), len(doc.OptionGroups))
	},
}

// Seed loads one parsed seed document in a single transaction.
func Seed(db *gorm.DB, doc *seedDoc) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, c := range doc.Categories {
			cat := menuEntity.Category{CategoryID: uint(i + 1), Name: c.Name, DisplayOrder: c.DisplayOrder}
			if err := tx.Save(&cat).Error; err != nil {
				return fmt.Errorf("category %s: %w", c.Name, err)
			}
		}

		ingredientIDs := make(map[string]uint, len(doc.Ingredients))
		for _, in := range doc.Ingredients {
			ing := inventoryEntity.Ingredient{
				Name:            in.Name,
				Unit:            in.Unit,
				ServingsPerUnit: in.ServingsPerUnit,
				CurrentQuantity: decimal.NewFromFloat(in.Quantity),
				ParLevel:        decimal.NewFromFloat(in.ParLevel),
				CostPerUnit:     in.CostPerUnit,
			}
			if ing.ServingsPerUnit <= 0 {
				ing.ServingsPerUnit = 1
			}
			if err := tx.Create(&ing).Error; err != nil {
				return fmt.Errorf("ingredient %s: %w", in.Name, err)
			}
			ingredientIDs[in.Name] = ing.IngredientID
		}

		menuItemIDs := make(map[string]uint, len(doc.MenuItems))
		for _, mi := range doc.MenuItems {
			catID, ok := categoryIDs[mi.Category]
			if !ok {
				return fmt.Errorf("menu item %s: unknown category %q", mi.Name, mi.Category)
			}
			item := menuEntity.MenuItem{Name: mi.Name, CategoryID: catID, Price: mi.Price, IsActive: 1}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("menu item %s: %w", mi.Name, err)
			}
			menuItemIDs[mi.Name] = item.MenuItemID

			for _, line := range mi.Recipe {
				ingID, ok := ingredientIDs[line.Ingredient]
				if !ok {
					return fmt.Errorf("menu item %s: unknown ingredient %q", mi.Name, line.Ingredient)
				}
				rl := inventoryEntity.RecipeLine{
					MenuItemID:         item.MenuItemID,
					IngredientID:       ingID,
					QuantityPerServing: decimal.NewFromFloat(line.QtyPerServing),
					Unit:               line.Unit,
				}
				if err := tx.Create(&rl).Error; err != nil {
					return fmt.Errorf("recipe %s/%s: %w", mi.Name, line.Ingredient, err)
				}
			}
		}

		for _, og := range doc.OptionGroups {
			group := menuEntity.OptionGroup{Name: og.Name, MinSelect: og.MinSelect, MaxSelect: og.MaxSelect}
			if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("option group %s: %w", og.Name, err)
			}
			for _, opt := range og.Options {
				option := menuEntity.Option{
					OptionGroupID: group.OptionGroupID,
					Name:          opt.Name,
					PriceDelta:    opt.PriceDelta,
				}
				if opt.MenuItem != "" {
					id, ok := menuItemIDs[opt.MenuItem]
					if !ok {
						return fmt.Errorf("option %s: unknown menu item %q", opt.Name, opt.MenuItem)
					}
					option.MenuItemID = &id
				}
				if err := tx.Create(&option).Error; err != nil {
					return fmt.Errorf("option %s: %w", opt.Name, err)
				}
			}
			for _, applies := range og.AppliesTo {
				id, ok := menuItemIDs[applies]
				if !ok {
					return fmt.Errorf("option group %s: unknown menu item %q", og.Name, applies)
				}
				link := menuEntity.MenuItemOptionGroup{MenuItemID: id, OptionGroupID: group.OptionGroupID}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("option group link %s/%s: %w", og.Name, applies, err)
				}
			}
		}
		return nil
	})
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "db/seed/menu.yaml", "Path to the YAML seed file")
	rootCmd.AddCommand(seedCmd)
}
