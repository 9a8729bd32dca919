package stock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by the ledger. All recoverable: the caller shows
// a message and leaves order/kitchen state untouched.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoRecipeConfigured = errors.New("no recipe configured")
	ErrNotFound           = errors.New("not found")
)

// Shortage names one item that blocked an operation, with how much is on
// hand and how much was needed.
type Shortage struct {
	ID   uint            `json:"id"`
	Name string          `json:"name"`
	Have decimal.Decimal `json:"have"`
	Need decimal.Decimal `json:"need"`
}

func (s Shortage) String() string {
	return fmt.Sprintf("%s (have %s, need %s)", s.Name, s.Have.String(), s.Need.String())
}

// InsufficientInventoryError blocks a batch-cook: raw ingredient stock is
// short. Every short ingredient is listed; nothing was deducted.
type InsufficientInventoryError struct {
	MenuItemID uint
	Shortages  []Shortage
}

func (e *InsufficientInventoryError) Error() string {
	return "insufficient inventory: " + joinShortages(e.Shortages)
}

// InsufficientPreparedStockError blocks an order consumption: prepared
// servings are short. Every short menu item is listed; nothing was deducted
// and no consumption marker was written.
type InsufficientPreparedStockError struct {
	OrderID   uint
	Shortages []Shortage
}

func (e *InsufficientPreparedStockError) Error() string {
	return "insufficient prepared stock: " + joinShortages(e.Shortages)
}

func joinShortages(shortages []Shortage) string {
	parts := make([]string, len(shortages))
	for i, s := range shortages {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// TransientStorageError wraps a storage-level failure (lost connection,
// serialization conflict, deadlock). The caller may retry the whole call;
// the ledger never retries internally.
type TransientStorageError struct {
	Op  string
	Err error
}

func (e *TransientStorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *TransientStorageError) Unwrap() error {
	return e.Err
}

// classify wraps unexpected storage errors while letting the ledger's own
// domain errors pass through untouched.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var inv *InsufficientInventoryError
	var prep *InsufficientPreparedStockError
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNoRecipeConfigured) || errors.Is(err, ErrNotFound) ||
		errors.As(err, &inv) || errors.As(err, &prep) {
		return err
	}
	return &TransientStorageError{Op: op, Err: err}
}
