package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/pkg/api"
)

// Synchronizer applies pushed domain events to the entity cache so the
// locally cached read-models track server-side mutations without
// polling. Patch policy per event kind:
//
//   - created: invalidate the domain's lists only; the client cannot
//     know a new entity's sort/pagination position
//   - updated (incl. price/discount/stock sub-events): replace the
//     single-entity slot and the matching entry in every held list
//   - deleted: drop the entity slot and invalidate the domain's lists
//   - ticket replied/status: field-level patch with absolute values
//
// A failed patch falls back to whole-domain invalidation. Every patch
// is idempotent: replaying an event leaves the cache unchanged.
type Synchronizer struct {
	events *Service
	store  *cache.Store
	logger *slog.Logger
	subs   []*Subscription
}

// NewSynchronizer creates a synchronizer over the given event service
// and cache store
func NewSynchronizer(events *Service, store *cache.Store, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		events: events,
		store:  store,
		logger: logger,
	}
}

var syncedEvents = []string{
	api.EventProductCreated,
	api.EventProductUpdated,
	api.EventProductPriceChanged,
	api.EventProductDiscountApplied,
	api.EventProductDiscountRemoved,
	api.EventProductStockChanged,
	api.EventProductDeleted,
	api.EventCategoryCreated,
	api.EventCategoryUpdated,
	api.EventCategoryDeleted,
	api.EventOrderCreated,
	api.EventOrderUpdated,
	api.EventOrderStatusUpdated,
	api.EventOrderCancelled,
	api.EventTicketCreated,
	api.EventTicketReplied,
	api.EventTicketStatusUpdated,
}

// Start subscribes to every synced domain event. Idempotent within one
// Start/Stop cycle is not needed; callers pair Start with Stop.
func (s *Synchronizer) Start() {
	for _, event := range syncedEvents {
		event := event
		sub := s.events.Subscribe(event, func(data json.RawMessage) {
			s.Apply(event, data)
		})
		s.subs = append(s.subs, sub)
	}
}

// Stop deregisters all subscriptions
func (s *Synchronizer) Stop() {
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
}

// Apply patches the cache for one event. Recovery policy: any patch
// error invalidates the whole domain rather than dropping the update
// silently, and processing of later events continues regardless.
func (s *Synchronizer) Apply(event string, data json.RawMessage) {
	domain, known := eventDomain(event)
	if !known {
		s.logger.Debug("ignoring unknown event", "event", event)
		return
	}

	if err := s.apply(event, data); err != nil {
		s.logger.Warn("patch failed, invalidating domain",
			"event", event,
			"domain", string(domain),
			"error", err)
		s.store.InvalidateDomain(domain)
	}
}

func (s *Synchronizer) apply(event string, data json.RawMessage) error {
	switch event {
	case api.EventProductCreated:
		s.store.InvalidateLists(cache.Products)
		return nil

	case api.EventProductUpdated,
		api.EventProductPriceChanged,
		api.EventProductDiscountApplied,
		api.EventProductDiscountRemoved,
		api.EventProductStockChanged:
		return s.applyProductUpsert(event, data)

	case api.EventProductDeleted:
		var payload api.ProductDeletedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		if payload.ProductID == "" {
			return fmt.Errorf("payload missing product id")
		}
		s.store.RemoveEverywhere(cache.Products, payload.ProductID)
		return nil

	case api.EventCategoryCreated:
		s.store.InvalidateLists(cache.Categories)
		return nil

	case api.EventCategoryUpdated:
		var payload api.CategoryEventPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		if payload.Category == nil {
			return fmt.Errorf("payload missing category")
		}
		s.store.ReplaceEverywhere(cache.Categories, payload.Category.ID, payload.Category)
		return nil

	case api.EventCategoryDeleted:
		var payload api.CategoryDeletedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		if payload.CategoryID == "" {
			return fmt.Errorf("payload missing category id")
		}
		s.store.RemoveEverywhere(cache.Categories, payload.CategoryID)
		return nil

	case api.EventOrderCreated:
		s.store.InvalidateLists(cache.Orders)
		return nil

	case api.EventOrderUpdated, api.EventOrderStatusUpdated, api.EventOrderCancelled:
		// Order snapshots replace wholesale under last-write-wins, same
		// as catalog data. Fine for display; the backend stays the
		// authority on payment state.
		var payload api.OrderEventPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		if payload.Order == nil {
			return fmt.Errorf("payload missing order")
		}
		s.store.ReplaceEverywhere(cache.Orders, payload.Order.ID, payload.Order)
		return nil

	case api.EventTicketCreated:
		s.store.InvalidateLists(cache.Tickets)
		return nil

	case api.EventTicketReplied:
		var payload api.TicketRepliedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return s.patchTicket(payload.TicketID, func(t *api.SupportTicket) {
			response := payload.Response
			t.AdminResponse = &response
			t.Status = payload.Status
			setTicketUpdatedAt(t, payload.UpdatedAt)
		})

	case api.EventTicketStatusUpdated:
		var payload api.TicketStatusUpdatedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return s.patchTicket(payload.TicketID, func(t *api.SupportTicket) {
			t.Status = payload.Status
			setTicketUpdatedAt(t, payload.UpdatedAt)
		})
	}

	return nil
}

func (s *Synchronizer) applyProductUpsert(event string, data json.RawMessage) error {
	var payload api.ProductEventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	if payload.Product == nil {
		return fmt.Errorf("payload missing product snapshot")
	}

	replaced := s.store.ReplaceEverywhere(cache.Products, payload.Product.ID, payload.Product)
	s.logger.Debug("product patched",
		"event", event,
		"product_id", payload.Product.ID,
		"lists_touched", replaced)
	return nil
}

// patchTicket applies a field-level patch to the cached ticket. Only
// fields present in the push payload are set, with absolute values, so
// the rest of the ticket is never clobbered and replays are idempotent.
// A missing entity slot is not an error; the lists are invalidated
// either way so the next read picks up the change.
func (s *Synchronizer) patchTicket(id int64, mutate func(*api.SupportTicket)) error {
	key := strconv.FormatInt(id, 10)
	err := s.store.PatchEntity(cache.Tickets, key, func(v interface{}) (interface{}, error) {
		ticket, ok := v.(*api.SupportTicket)
		if !ok {
			return nil, fmt.Errorf("cached value for ticket %s has unexpected type %T", key, v)
		}
		patched := *ticket
		mutate(&patched)
		return &patched, nil
	})
	if err != nil && !errors.Is(err, cache.ErrNotCached) {
		return err
	}
	s.store.InvalidateLists(cache.Tickets)
	return nil
}

func setTicketUpdatedAt(t *api.SupportTicket, raw string) {
	if raw == "" {
		return
	}
	if parsed, err := parseEventTime(raw); err == nil {
		t.UpdatedAt = parsed
	}
}

func eventDomain(event string) (cache.Domain, bool) {
	switch event {
	case api.EventProductCreated, api.EventProductUpdated,
		api.EventProductPriceChanged, api.EventProductDiscountApplied,
		api.EventProductDiscountRemoved, api.EventProductStockChanged,
		api.EventProductDeleted:
		return cache.Products, true
	case api.EventCategoryCreated, api.EventCategoryUpdated, api.EventCategoryDeleted:
		return cache.Categories, true
	case api.EventOrderCreated, api.EventOrderUpdated,
		api.EventOrderStatusUpdated, api.EventOrderCancelled:
		return cache.Orders, true
	case api.EventTicketCreated, api.EventTicketReplied, api.EventTicketStatusUpdated:
		return cache.Tickets, true
	}
	return "", false
}
