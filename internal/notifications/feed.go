// Package notifications keeps the in-app notification list.
package notifications

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"changemakers-go/internal/model"
)

var ErrNotFound = errors.New("notification not found")

// Feed is an in-memory notification list, newest first.
type Feed struct {
	mu    sync.RWMutex
	items []model.Notification
	now   func() time.Time
}

// NewFeed returns a feed holding initial, which must already be newest
// first.
func NewFeed(initial ...model.Notification) *Feed {
	items := make([]model.Notification, len(initial))
	copy(items, initial)
	return &Feed{items: items, now: time.Now}
}

// Add stores n at the head of the feed, assigning an ID and timestamp when
// they are missing.
func (f *Feed) Add(n model.Notification) model.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = f.now().UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]model.Notification{n}, f.items...)
	return n
}

// Notify lets the feed act as a sync notifier.
func (f *Feed) Notify(n model.Notification) {
	f.Add(n)
}

func (f *Feed) List(unreadOnly bool) []model.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]model.Notification, 0, len(f.items))
	for _, n := range f.items {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (f *Feed) MarkRead(id string) (model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return f.items[i], nil
		}
	}
	return model.Notification{}, ErrNotFound
}

// MarkAllRead returns how many notifications changed state.
func (f *Feed) MarkAllRead() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	changed := 0
	for i := range f.items {
		if !f.items[i].Read {
			f.items[i].Read = true
			changed++
		}
	}
	return changed
}

func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := 0
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}
