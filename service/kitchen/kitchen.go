package kitchen

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/core/metrics"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	salesRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/sales"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

// Events receives kitchen notifications after a successful operation, never
// before. The websocket hub implements it; tests pass nil.
type Events interface {
	Publish(event string, payload interface{})
}

// Service drives the kitchen queue: list active orders, advance their
// status, and deduct prepared stock when an order starts prepping.
type Service struct {
	db     *gorm.DB
	ledger *stockService.Ledger
	events Events
}

func NewService(db *gorm.DB, ledger *stockService.Ledger, events Events) *Service {
	return &Service{db: db, ledger: ledger, events: events}
}

// QueueEntry is one kitchen display card.
type QueueEntry struct {
	OrderID    uint        `json:"order_id"`
	PlacedAt   time.Time   `json:"placed_at"`
	Status     string      `json:"status"`
	DineOption string      `json:"dine_option"`
	Notes      *string     `json:"notes,omitempty"`
	Items      []QueueItem `json:"items"`
}

type QueueItem struct {
	OrderItemID uint     `json:"order_item_id"`
	MenuItemID  uint     `json:"menu_item_id"`
	Name        string   `json:"name"`
	Qty         int      `json:"qty"`
	UnitPrice   float64  `json:"unit_price"`
	Options     []string `json:"options,omitempty"`
}

// Queue returns all orders not yet done, oldest first, with menu item and
// option names joined for display.
func (s *Service) Queue() ([]QueueEntry, error) {
	repo, err := salesRepo.NewOrderRepository(s.db)
	if err != nil {
		return nil, err
	}
	orders, err := repo.FindActiveQueue()
	if err != nil {
		return nil, err
	}
	metrics.KitchenQueueDepth.Set(float64(len(orders)))

	out := make([]QueueEntry, 0, len(orders))
	for _, o := range orders {
		entry := QueueEntry{
			OrderID:    o.OrderID,
			PlacedAt:   o.CreatedAt,
			Status:     o.Status,
			DineOption: o.DineOption,
			Notes:      o.Notes,
		}
		for _, item := range o.Items {
			qi := QueueItem{
				OrderItemID: item.OrderItemID,
				MenuItemID:  item.MenuItemID,
				Qty:         item.Qty,
				UnitPrice:   item.UnitPrice,
			}
			if item.MenuItem != nil {
				qi.Name = item.MenuItem.Name
			}
			for _, sel := range item.Options {
				if sel.Option != nil {
					qi.Options = append(qi.Options, sel.Option.Name)
				}
			}
			entry.Items = append(entry.Items, qi)
		}
		out = append(out, entry)
	}
	return out, nil
}

// SetStatus moves an order to a new kitchen status. Transitions into
// prepping or done deduct prepared stock in the same transaction as the
// status write; a shortage rejects the whole transition and the error
// carries the operator-facing message.
func (s *Service) SetStatus(orderID uint, status string) error {
	if !salesEntity.ValidStatus(status) {
		return fmt.Errorf("%w: status %q", stockService.ErrInvalidInput, status)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":       status,
			"completed_at": nil,
		}
		if status == salesEntity.StatusDone {
			now := time.Now()
			updates["completed_at"] = &now
		}
		res := tx.Model(&salesEntity.Order{}).Where("order_id = ?", orderID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order %d", stockService.ErrNotFound, orderID)
		}

		if status == salesEntity.StatusPrepping || status == salesEntity.StatusDone {
			return s.ledger.ConsumeForOrderTx(tx, orderID)
		}
		return nil
	})
	if err != nil {
		var short *stockService.InsufficientPreparedStockError
		if errors.As(err, &short) {
			metrics.ShortageRejections.WithLabelValues("prepared").Inc()
		}
		return err
	}

	if status != salesEntity.StatusQueued {
		metrics.OrderConsumptions.Inc()
	}
	if s.events != nil {
		s.events.Publish("kitchen.status", map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
	}
	return nil
}

// Complete is shorthand for SetStatus(orderID, done).
func (s *Service) Complete(orderID uint) error {
	return s.SetStatus(orderID, salesEntity.StatusDone)
}
