// Package store owns the list of active notifications.
//
// The store is the only state shared between the toast UI and whatever
// produces notifications. It validates new notifications, hands out IDs,
// publishes a snapshot of the list on every change and treats removal of an
// unknown ID as a no-op.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/toaster/internal/domain"
)

// Store is a goroutine-safe, observable list of notifications
type Store struct {
	mu        sync.Mutex
	items     []domain.Notification
	nextID    uint64
	maxActive int
	subs      map[int]chan []domain.Notification
	nextSub   int
	closed    bool
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithMaxActive caps the number of active notifications; the oldest are
// evicted when the cap is exceeded. Zero means unlimited.
func WithMaxActive(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxActive = n
		}
	}
}

// WithClock overrides the time source used for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		subs:   make(map[int]chan []domain.Notification),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and appends a notification, returning its new ID
func (s *Store) Add(typ domain.Type, title, message string) (domain.ID, error) {
	n := domain.Notification{
		Type:    typ,
		Title:   title,
		Message: message,
	}
	if err := n.Validate(); err != nil {
		return "", &domain.StoreError{Op: "add", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = domain.ID(fmt.Sprintf("t-%d", s.nextID))
	n.CreatedAt = s.now()
	s.items = append(s.items, n)

	if s.maxActive > 0 && len(s.items) > s.maxActive {
		evicted := len(s.items) - s.maxActive
		for _, old := range s.items[:evicted] {
			s.logger.Debug("evicting notification", "id", old.ID, "max_active", s.maxActive)
		}
		s.items = append([]domain.Notification(nil), s.items[evicted:]...)
	}

	s.logger.Debug("notification added", "id", n.ID, "type", n.Type.String())
	s.publishLocked()
	return n.ID, nil
}

// Success adds a success notification
func (s *Store) Success(title, message string) (domain.ID, error) {
	return s.Add(domain.TypeSuccess, title, message)
}

// Error adds an error notification
func (s *Store) Error(title, message string) (domain.ID, error) {
	return s.Add(domain.TypeError, title, message)
}

// Info adds an info notification
func (s *Store) Info(title, message string) (domain.ID, error) {
	return s.Add(domain.TypeInfo, title, message)
}

// Warning adds a warning notification
func (s *Store) Warning(title, message string) (domain.ID, error) {
	return s.Add(domain.TypeWarning, title, message)
}

// Remove deletes the notification with the given ID. It returns false, and
// changes nothing, when the ID is not active.
func (s *Store) Remove(id domain.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID != id {
			continue
		}
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		s.logger.Debug("notification removed", "id", id)
		s.publishLocked()
		return true
	}
	return false
}

// Clear removes every notification and returns how many were active
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.items)
	if count == 0 {
		return 0
	}
	s.items = nil
	s.publishLocked()
	return count
}

// Get returns the active notification with the given ID
func (s *Store) Get(id domain.ID) (domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, &domain.StoreError{Op: "get", ID: id, Err: domain.ErrNotFound}
}

// List returns a copy of the active notifications in insertion order
func (s *Store) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of active notifications
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subscribe returns a channel that receives the current list immediately and
// again after every change. A slow reader only ever sees the latest list.
// The returned function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan []domain.Notification, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan []domain.Notification, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscription. Later subscriptions are closed at once.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Store) snapshotLocked() []domain.Notification {
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// publishLocked replaces any unread snapshot with the current one
func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		snap := s.snapshotLocked()
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
