package graphqlserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/graphql"
	gqlmodels "github.com/amanda-debetaz/PandaExpressPOS/graphql/models"
	"github.com/amanda-debetaz/PandaExpressPOS/graphql/registry"
	kitchenService "github.com/amanda-debetaz/PandaExpressPOS/service/kitchen"
	reportService "github.com/amanda-debetaz/PandaExpressPOS/service/report"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

// RootResolver is the root for graphql-go. Resolvers read straight from the
// services; the dashboard is read-only, all writes go through the REST API.
type RootResolver struct {
	DB *gorm.DB
}

func (r *RootResolver) StockLevels(ctx context.Context) ([]*gqlmodels.StockLevel, error) {
	levels, err := stockService.NewLedger(r.DB).Snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.StockLevel, 0, len(levels))
	for _, lv := range levels {
		out = append(out, &gqlmodels.StockLevel{
			MenuItemID:        int32(lv.MenuItemID),
			Name:              lv.Name,
			ServingsAvailable: lv.ServingsAvailable.StringFixed(2),
		})
	}
	return out, nil
}

// SalesSummaryArgs matches the salesSummary query arguments.
type SalesSummaryArgs struct {
	From string
	To   string
	Top  *int32
}

func (r *RootResolver) SalesSummary(ctx context.Context, args SalesSummaryArgs) (*gqlmodels.SalesSummary, error) {
	from, err := parseDay(args.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from: %w", err)
	}
	to, err := parseDay(args.To)
	if err != nil {
		return nil, fmt.Errorf("invalid to: %w", err)
	}
	top := 5
	if args.Top != nil && *args.Top > 0 {
		top = int(*args.Top)
	}
	sum, err := reportService.SalesSummary(r.DB, from, to, top)
	if err != nil {
		return nil, err
	}

	out := &gqlmodels.SalesSummary{
		From:    sum.From.Format(time.RFC3339),
		To:      sum.To.Format(time.RFC3339),
		Orders:  int32(sum.Orders),
		Revenue: sum.Revenue,
	}
	for status, count := range sum.ByStatus {
		out.ByStatus = append(out.ByStatus, &gqlmodels.StatusCount{Status: status, Count: int32(count)})
	}
	for _, ti := range sum.TopItems {
		out.TopItems = append(out.TopItems, &gqlmodels.TopItem{
			MenuItemID: int32(ti.MenuItemID),
			Name:       ti.Name,
			UnitsSold:  int32(ti.UnitsSold),
			Revenue:    ti.Revenue,
		})
	}
	return out, nil
}

func (r *RootResolver) KitchenQueue(ctx context.Context) ([]*gqlmodels.QueueOrder, error) {
	svc := kitchenService.NewService(r.DB, stockService.NewLedger(r.DB), nil)
	queue, err := svc.Queue()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.QueueOrder, 0, len(queue))
	for _, entry := range queue {
		card := &gqlmodels.QueueOrder{
			OrderID:    int32(entry.OrderID),
			PlacedAt:   entry.PlacedAt.Format(time.RFC3339),
			Status:     entry.Status,
			DineOption: entry.DineOption,
			Notes:      entry.Notes,
		}
		for _, item := range entry.Items {
			options := item.Options
			if options == nil {
				options = []string{}
			}
			card.Items = append(card.Items, &gqlmodels.QueueLine{
				OrderItemID: int32(item.OrderItemID),
				Name:        item.Name,
				Qty:         int32(item.Qty),
				Options:     options,
			})
		}
		out = append(out, card)
	}
	return out, nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// parseDay accepts RFC 3339 or a bare YYYY-MM-DD date.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
