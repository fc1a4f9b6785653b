package realtime

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/pkg/api"
)

func newTestSynchronizer() (*Synchronizer, *cache.Store) {
	logger := testLogger()
	store := cache.New(logger)
	events := New("ws://unused", logger)
	return NewSynchronizer(events, store, logger), store
}

func productPayload(t *testing.T, p *api.Product) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(api.ProductEventPayload{
		Timestamp: time.Now().Format(time.RFC3339),
		Product:   p,
	})
	require.NoError(t, err)
	return data
}

// TestSynchronizer_ProductUpdated checks that an update replaces the
// entity slot and the matching list entries
func TestSynchronizer_ProductUpdated(t *testing.T) {
	sync, store := newTestSynchronizer()

	old := &api.Product{ID: "p1", Name: "Trail Runner", Price: 89.90}
	store.SetEntity(cache.Products, "p1", old)
	store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: old}})

	updated := &api.Product{ID: "p1", Name: "Trail Runner", Price: 79.90}
	sync.Apply(api.EventProductUpdated, productPayload(t, updated))

	v, ok := store.Entity(cache.Products, "p1")
	require.True(t, ok)
	assert.Equal(t, 79.90, v.(*api.Product).Price)

	list, ok := store.List(cache.Products, "limit=20")
	require.True(t, ok)
	assert.Equal(t, 79.90, list[0].Value.(*api.Product).Price)
}

// TestSynchronizer_ProductUpdated_Idempotent checks event replay
func TestSynchronizer_ProductUpdated_Idempotent(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetList(cache.Products, "limit=20", []cache.Entry{
		{ID: "p1", Value: &api.Product{ID: "p1", Price: 89.90}},
	})

	updated := &api.Product{ID: "p1", Price: 79.90}
	payload := productPayload(t, updated)
	sync.Apply(api.EventProductUpdated, payload)
	sync.Apply(api.EventProductUpdated, payload)

	list, ok := store.List(cache.Products, "limit=20")
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, 79.90, list[0].Value.(*api.Product).Price)
}

// TestSynchronizer_PriceChanged checks that the price sub-event patches
// through the attached full snapshot
func TestSynchronizer_PriceChanged(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Products, "p1", &api.Product{ID: "p1", Price: 100})

	oldPrice, newPrice := 100.0, 80.0
	data, err := json.Marshal(api.ProductEventPayload{
		Timestamp: time.Now().Format(time.RFC3339),
		Product:   &api.Product{ID: "p1", Price: 80},
		ProductID: "p1",
		OldPrice:  &oldPrice,
		NewPrice:  &newPrice,
	})
	require.NoError(t, err)

	sync.Apply(api.EventProductPriceChanged, data)

	v, ok := store.Entity(cache.Products, "p1")
	require.True(t, ok)
	assert.Equal(t, 80.0, v.(*api.Product).Price)
}

// TestSynchronizer_ProductCreated checks that creation only drops the
// product lists
func TestSynchronizer_ProductCreated(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Products, "p1", &api.Product{ID: "p1"})
	store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: "x"}})

	sync.Apply(api.EventProductCreated, json.RawMessage(`{"product":{"id":"p2"}}`))

	_, ok := store.List(cache.Products, "limit=20")
	assert.False(t, ok, "lists cannot place the new entity, so they go")
	_, ok = store.Entity(cache.Products, "p1")
	assert.True(t, ok, "entity slots are unaffected by creation")
}

// TestSynchronizer_ProductDeleted checks removal from the entity slot
// and list invalidation
func TestSynchronizer_ProductDeleted(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Products, "p1", &api.Product{ID: "p1"})
	store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: "x"}})

	sync.Apply(api.EventProductDeleted, json.RawMessage(`{"productId":"p1"}`))

	_, ok := store.Entity(cache.Products, "p1")
	assert.False(t, ok)
	_, ok = store.List(cache.Products, "limit=20")
	assert.False(t, ok)
}

// TestSynchronizer_CategoryUpdated checks the category snapshot path
func TestSynchronizer_CategoryUpdated(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Categories, "c1", &api.Category{ID: "c1", Name: "Running"})

	data, err := json.Marshal(api.CategoryEventPayload{
		Category: &api.Category{ID: "c1", Name: "Trail Running"},
	})
	require.NoError(t, err)

	sync.Apply(api.EventCategoryUpdated, data)

	v, ok := store.Entity(cache.Categories, "c1")
	require.True(t, ok)
	assert.Equal(t, "Trail Running", v.(*api.Category).Name)
}

// TestSynchronizer_OrderStatusUpdated checks the order snapshot path
func TestSynchronizer_OrderStatusUpdated(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Orders, "o1", &api.Order{ID: "o1", Status: api.OrderStatusPending})

	data, err := json.Marshal(api.OrderEventPayload{
		Order:     &api.Order{ID: "o1", Status: api.OrderStatusShipped},
		OrderID:   "o1",
		OldStatus: api.OrderStatusPending,
		NewStatus: api.OrderStatusShipped,
	})
	require.NoError(t, err)

	sync.Apply(api.EventOrderStatusUpdated, data)

	v, ok := store.Entity(cache.Orders, "o1")
	require.True(t, ok)
	assert.Equal(t, api.OrderStatusShipped, v.(*api.Order).Status)
}

// TestSynchronizer_TicketReplied checks the field-level ticket patch:
// only the pushed fields change, the rest of the ticket survives
func TestSynchronizer_TicketReplied(t *testing.T) {
	sync, store := newTestSynchronizer()

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store.SetEntity(cache.Tickets, "7", &api.SupportTicket{
		ID:        7,
		Subject:   "Wrong size delivered",
		Message:   "I ordered 42, got 44",
		Status:    api.TicketStatusOpen,
		CreatedAt: created,
	})
	store.SetList(cache.Tickets, "", []cache.Entry{{ID: "7", Value: "stale"}})

	updatedAt := "2026-08-02T09:30:00Z"
	data, err := json.Marshal(api.TicketRepliedPayload{
		TicketID:  7,
		Response:  "A return label is on its way",
		Status:    api.TicketStatusInProgress,
		UpdatedAt: updatedAt,
	})
	require.NoError(t, err)

	sync.Apply(api.EventTicketReplied, data)

	v, ok := store.Entity(cache.Tickets, "7")
	require.True(t, ok)
	ticket := v.(*api.SupportTicket)
	require.NotNil(t, ticket.AdminResponse)
	assert.Equal(t, "A return label is on its way", *ticket.AdminResponse)
	assert.Equal(t, api.TicketStatusInProgress, ticket.Status)
	assert.Equal(t, "Wrong size delivered", ticket.Subject, "unpushed fields survive")
	assert.Equal(t, created, ticket.CreatedAt)
	assert.Equal(t, "2026-08-02T09:30:00Z", ticket.UpdatedAt.Format(time.RFC3339))

	_, ok = store.List(cache.Tickets, "")
	assert.False(t, ok, "ticket lists are invalidated after a patch")
}

// TestSynchronizer_TicketReplied_NotCached checks that patching a
// ticket the cache never saw is not an error; lists still go stale
func TestSynchronizer_TicketReplied_NotCached(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetList(cache.Tickets, "", []cache.Entry{{ID: "1", Value: "stale"}})

	data, err := json.Marshal(api.TicketRepliedPayload{
		TicketID: 99,
		Response: "reply",
		Status:   api.TicketStatusInProgress,
	})
	require.NoError(t, err)

	sync.Apply(api.EventTicketReplied, data)

	_, ok := store.List(cache.Tickets, "")
	assert.False(t, ok)
	_, ok = store.Entity(cache.Tickets, "99")
	assert.False(t, ok, "a patch never conjures an entity slot")
}

// TestSynchronizer_TicketStatusUpdated checks the status transition
// patch and its idempotence
func TestSynchronizer_TicketStatusUpdated(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Tickets, "7", &api.SupportTicket{
		ID:     7,
		Status: api.TicketStatusInProgress,
	})

	data, err := json.Marshal(api.TicketStatusUpdatedPayload{
		TicketID:  7,
		Status:    api.TicketStatusResolved,
		UpdatedAt: "2026-08-03T12:00:00Z",
	})
	require.NoError(t, err)

	sync.Apply(api.EventTicketStatusUpdated, data)
	sync.Apply(api.EventTicketStatusUpdated, data)

	v, ok := store.Entity(cache.Tickets, "7")
	require.True(t, ok)
	assert.Equal(t, api.TicketStatusResolved, v.(*api.SupportTicket).Status)
}

// TestSynchronizer_MalformedPayload checks the recovery fallback: a
// payload the patch cannot apply invalidates the whole domain
func TestSynchronizer_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload string
	}{
		{
			name:    "broken json",
			event:   api.EventProductUpdated,
			payload: `{"product": not-json`,
		},
		{
			name:    "missing product snapshot",
			event:   api.EventProductUpdated,
			payload: `{"timestamp":"2026-08-01T00:00:00Z"}`,
		},
		{
			name:    "delete without id",
			event:   api.EventProductDeleted,
			payload: `{"timestamp":"2026-08-01T00:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync, store := newTestSynchronizer()
			store.SetEntity(cache.Products, "p1", &api.Product{ID: "p1"})
			store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: "x"}})
			store.SetEntity(cache.Orders, "o1", &api.Order{ID: "o1"})

			sync.Apply(tt.event, json.RawMessage(tt.payload))

			_, ok := store.Entity(cache.Products, "p1")
			assert.False(t, ok, "the whole domain is dropped")
			_, ok = store.List(cache.Products, "limit=20")
			assert.False(t, ok)
			_, ok = store.Entity(cache.Orders, "o1")
			assert.True(t, ok, "other domains are untouched")
		})
	}
}

// TestSynchronizer_TicketPatch_WrongCachedType checks that a cached
// value of the wrong type triggers the domain fallback instead of a
// silent skip
func TestSynchronizer_TicketPatch_WrongCachedType(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Tickets, "7", "not a ticket")

	data, err := json.Marshal(api.TicketStatusUpdatedPayload{
		TicketID: 7,
		Status:   api.TicketStatusClosed,
	})
	require.NoError(t, err)

	sync.Apply(api.EventTicketStatusUpdated, data)

	_, ok := store.Entity(cache.Tickets, "7")
	assert.False(t, ok)
}

// TestSynchronizer_UnknownEvent checks that unmapped events are ignored
func TestSynchronizer_UnknownEvent(t *testing.T) {
	sync, store := newTestSynchronizer()
	store.SetEntity(cache.Products, "p1", &api.Product{ID: "p1"})

	sync.Apply("cart:updated", json.RawMessage(`{}`))

	_, ok := store.Entity(cache.Products, "p1")
	assert.True(t, ok)
}

// TestSynchronizer_StartStop checks subscription lifecycle through the
// event service
func TestSynchronizer_StartStop(t *testing.T) {
	logger := testLogger()
	store := cache.New(logger)
	events := New("ws://unused", logger)
	sync := NewSynchronizer(events, store, logger)

	store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: "x"}})

	sync.Start()
	events.dispatch(api.Event{
		Event: api.EventProductCreated,
		Data:  json.RawMessage(`{"product":{"id":"p2"}}`),
	})

	_, ok := store.List(cache.Products, "limit=20")
	assert.False(t, ok, "a dispatched event reaches the cache")

	sync.Stop()
	store.SetList(cache.Products, "limit=20", []cache.Entry{{ID: "p1", Value: "x"}})
	events.dispatch(api.Event{
		Event: api.EventProductCreated,
		Data:  json.RawMessage(`{"product":{"id":"p3"}}`),
	})

	_, ok = store.List(cache.Products, "limit=20")
	assert.True(t, ok, "a stopped synchronizer patches nothing")
}

// TestEventDomain covers the event-to-domain mapping
func TestEventDomain(t *testing.T) {
	for _, event := range syncedEvents {
		t.Run(event, func(t *testing.T) {
			_, known := eventDomain(event)
			assert.True(t, known, fmt.Sprintf("synced event %q must map to a domain", event))
		})
	}

	_, known := eventDomain("cart:updated")
	assert.False(t, known)
}
