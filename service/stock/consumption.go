package stock

import (
	"github.com/shopspring/decimal"

	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
)

// OrderLine is the ledger's view of one order line: the base menu item, its
// category, the line quantity, and the selected options with their own
// category classification. Built from sales entities by LinesFromOrder, kept
// plain so ComputeConsumption stays storage-free.
type OrderLine struct {
	MenuItemID uint
	CategoryID uint
	Qty        int
	Options    []LineOption
}

// LineOption is a selected option resolved to the menu item it serves.
// Options with no backing menu item (plain modifiers) carry MenuItemID 0 and
// never consume prepared stock.
type LineOption struct {
	MenuItemID uint
	CategoryID uint
	Qty        int
}

var half = decimal.New(5, -1)

// ComputeConsumption turns an order's lines into servings needed per menu
// item.
//
// Rules, per line:
//   - a base item in a prepared category consumes its line quantity outright;
//   - side options share half pans: when the line selects two or more side
//     units in total, every side unit counts 0.5 servings; a single side
//     selection takes a full serving;
//   - entree options always count full servings, no matter how many are
//     picked;
//   - everything scales by the line quantity (one line may be several combos).
//
// Values are exact decimals so a 0.5 + 0.5 shortage can never be rounded
// away.
func ComputeConsumption(lines []OrderLine) map[uint]decimal.Decimal {
	need := make(map[uint]decimal.Decimal)

	add := func(menuItemID uint, servings decimal.Decimal) {
		need[menuItemID] = need[menuItemID].Add(servings)
	}

	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		lineQty := decimal.NewFromInt(int64(line.Qty))

		if menuEntity.IsPreparedCategory(line.CategoryID) {
			add(line.MenuItemID, lineQty)
		}

		totalSideUnits := 0
		for _, opt := range line.Options {
			if opt.MenuItemID != 0 && opt.CategoryID == menuEntity.CategorySide {
				totalSideUnits += opt.Qty
			}
		}

		sidePerUnit := decimal.NewFromInt(1)
		if totalSideUnits >= 2 {
			sidePerUnit = half
		}

		for _, opt := range line.Options {
			if opt.MenuItemID == 0 || opt.Qty <= 0 || !menuEntity.IsPreparedCategory(opt.CategoryID) {
				continue
			}
			optQty := decimal.NewFromInt(int64(opt.Qty))
			switch opt.CategoryID {
			case menuEntity.CategorySide:
				add(opt.MenuItemID, sidePerUnit.Mul(optQty).Mul(lineQty))
			default: // entree
				add(opt.MenuItemID, optQty.Mul(lineQty))
			}
		}
	}

	return need
}

// LinesFromOrder flattens a loaded order (items, options, joined menu items)
// into the ledger's line representation.
func LinesFromOrder(o *salesEntity.Order) []OrderLine {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, item := range o.Items {
		line := OrderLine{
			MenuItemID: item.MenuItemID,
			Qty:        item.Qty,
		}
		if item.MenuItem != nil {
			line.CategoryID = item.MenuItem.CategoryID
		}
		for _, sel := range item.Options {
			opt := LineOption{Qty: sel.Qty}
			if sel.Option != nil && sel.Option.MenuItemID != nil {
				opt.MenuItemID = *sel.Option.MenuItemID
				if sel.Option.MenuItem != nil {
					opt.CategoryID = sel.Option.MenuItem.CategoryID
				}
			}
			line.Options = append(line.Options, opt)
		}
		lines = append(lines, line)
	}
	return lines
}
