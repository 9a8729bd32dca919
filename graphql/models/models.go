// Package models holds the GraphQL view types for the manager dashboard.
// Field names line up with schema.graphqls for graphql-go field resolvers.
package models

// StockLevel is one row of the prepared-stock panel.
type StockLevel struct {
	MenuItemID        int32
	Name              string
	ServingsAvailable string
}

// SalesSummary is the sales report payload.
type SalesSummary struct {
	From     string
	To       string
	Orders   int32
	Revenue  float64
	ByStatus []*StatusCount
	TopItems []*TopItem
}

// StatusCount pairs an order status with how many orders hold it.
type StatusCount struct {
	Status string
	Count  int32
}

// TopItem is one best-seller row.
type TopItem struct {
	MenuItemID int32
	Name       string
	UnitsSold  int32
	Revenue    float64
}

// QueueOrder is one kitchen display card.
type QueueOrder struct {
	OrderID    int32
	PlacedAt   string
	Status     string
	DineOption string
	Notes      *string
	Items      []*QueueLine
}

// QueueLine is one order line on a kitchen card.
type QueueLine struct {
	OrderItemID int32
	Name        string
	Qty         int32
	Options     []string
}
