package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sportlane/shopclient/pkg/api"
)

// DefaultConnectDelay batches rapid token changes: a connection opened
// and immediately obsoleted by a new token never actually dials.
const DefaultConnectDelay = time.Second

// HandlerFunc receives the raw payload of one pushed event
type HandlerFunc func(data json.RawMessage)

// Subscription is a disposable handle for a registered handler.
// Closing it deregisters the handler synchronously; Close is
// idempotent.
type Subscription struct {
	svc   *Service
	event string
	once  sync.Once
}

// Close deregisters the handler
func (sub *Subscription) Close() {
	sub.once.Do(func() {
		sub.svc.unsubscribe(sub)
	})
}

// Service owns the duplex connection to the backend. One connection
// exists per session, keyed by the access token: Connect tears down
// any previous connection and dials with the new token after a short
// grace period. There is no reconnection backoff; a dropped connection
// stays down until the owner calls Connect again.
type Service struct {
	url          string
	dialer       *websocket.Dialer
	logger       *slog.Logger
	connectDelay time.Duration

	mu        sync.Mutex
	subs      map[string]map[*Subscription]HandlerFunc
	conn      *websocket.Conn
	timer     *time.Timer
	connected bool
	gen       int // connection generation; stale timers and read loops exit
}

// New creates a realtime service for the given WebSocket URL
func New(url string, logger *slog.Logger) *Service {
	return &Service{
		url:          url,
		dialer:       websocket.DefaultDialer,
		logger:       logger,
		connectDelay: DefaultConnectDelay,
		subs:         make(map[string]map[*Subscription]HandlerFunc),
	}
}

// Subscribe registers a handler for a named domain event. Duplicate
// registrations each get their own handle and are all invoked.
func (s *Service) Subscribe(event string, fn HandlerFunc) *Subscription {
	sub := &Subscription{svc: s, event: event}
	s.mu.Lock()
	if s.subs[event] == nil {
		s.subs[event] = make(map[*Subscription]HandlerFunc)
	}
	s.subs[event][sub] = fn
	s.mu.Unlock()
	return sub
}

func (s *Service) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	if handlers, ok := s.subs[sub.event]; ok {
		delete(handlers, sub)
		if len(handlers) == 0 {
			delete(s.subs, sub.event)
		}
	}
	s.mu.Unlock()
}

// Connect schedules a dial with the given access token after the
// connect delay, replacing any existing or pending connection.
func (s *Service) Connect(ctx context.Context, token string) {
	s.mu.Lock()
	s.teardownLocked()
	gen := s.gen
	s.timer = time.AfterFunc(s.connectDelay, func() {
		s.dial(ctx, token, gen)
	})
	s.mu.Unlock()
}

// Close tears down the connection and removes all listeners
func (s *Service) Close() {
	s.mu.Lock()
	s.teardownLocked()
	s.subs = make(map[string]map[*Subscription]HandlerFunc)
	s.mu.Unlock()
}

// IsConnected reports whether the socket is currently up
func (s *Service) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// teardownLocked invalidates the current generation, cancels a pending
// dial and closes an open socket. Caller holds s.mu.
func (s *Service) teardownLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.connected = false
}

func (s *Service) dial(ctx context.Context, token string, gen int) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		s.logger.Warn("websocket dial failed", "url", s.url, "error", err)
		return
	}

	handshake := api.RealtimeHandshake{
		Token:      "Bearer " + token,
		ClientType: "mobile-app",
	}
	if err := conn.WriteJSON(handshake); err != nil {
		s.logger.Warn("websocket handshake failed", "error", err)
		_ = conn.Close()
		return
	}

	s.mu.Lock()
	if gen != s.gen {
		// A newer Connect/Close superseded this dial
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.conn = conn
	s.connected = true
	s.mu.Unlock()

	s.logger.Info("websocket connected", "url", s.url)
	go s.readLoop(conn, gen)
}

// readLoop delivers pushed events until the connection drops. Events
// are dispatched in delivery order; a failing handler never stops the
// loop.
func (s *Service) readLoop(conn *websocket.Conn, gen int) {
	for {
		var evt api.Event
		if err := conn.ReadJSON(&evt); err != nil {
			s.mu.Lock()
			if gen == s.gen {
				s.connected = false
				s.conn = nil
				s.logger.Warn("websocket disconnected", "error", err)
			}
			s.mu.Unlock()
			return
		}
		s.dispatch(evt)
	}
}

func (s *Service) dispatch(evt api.Event) {
	s.mu.Lock()
	handlers := make([]HandlerFunc, 0, len(s.subs[evt.Event]))
	for _, fn := range s.subs[evt.Event] {
		handlers = append(handlers, fn)
	}
	s.mu.Unlock()

	for _, fn := range handlers {
		s.invoke(evt.Event, fn, evt.Data)
	}
}

func (s *Service) invoke(event string, fn HandlerFunc, data json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event handler panicked", "event", event, "panic", r)
		}
	}()
	fn(data)
}
