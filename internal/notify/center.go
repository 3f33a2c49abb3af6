package notify

import (
	"context"
	"sync"
	"time"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/types"
)

// Notice is a displayed notification. The ID is assigned at display time,
// not at publish time, and is never reused.
type Notice struct {
	ID      string                 `json:"id"`
	Kind    types.NotificationKind `json:"kind"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
}

// Center collects notification events for display and retracts each notice
// after a fixed window, each on its own timer. Manual dismissal is
// idempotent: removing an absent ID is a no-op.
type Center struct {
	mu      sync.Mutex
	notices []*Notice
	timers  map[string]*time.Timer

	ttl         time.Duration
	logger      *logger.Logger
	unsubscribe bus.UnsubscribeFunc
}

func NewCenter(ttl time.Duration, log *logger.Logger) *Center {
	return &Center{
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
		logger: log,
	}
}

// Attach subscribes the center to the notification topic
func (c *Center) Attach(b *bus.Bus) {
	c.unsubscribe = b.Subscribe(events.TopicNotification, c.onNotification)
}

// Detach removes the bus subscription and stops all pending timers
func (c *Center) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}

func (c *Center) onNotification(ctx context.Context, event events.Event) {
	payload, ok := event.(events.Notification)
	if !ok {
		c.logger.Errorw("unexpected payload on notification topic", "event", event)
		return
	}
	c.display(payload)
}

func (c *Center) display(n events.Notification) {
	notice := &Notice{
		ID:      types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		Kind:    n.Kind,
		Title:   n.Title,
		Message: n.Message,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, notice)
	c.timers[notice.ID] = time.AfterFunc(c.ttl, func() {
		c.Dismiss(notice.ID)
	})
}

// Dismiss removes the notice with the given ID. It is safe to call for a
// notice that was already auto-retracted; IDs are unique so a late timer can
// never remove a different notice.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}

	for i, notice := range c.notices {
		if notice.ID == id {
			c.notices = append(c.notices[:i:i], c.notices[i+1:]...)
			return
		}
	}
}

// Notices returns a copied snapshot of the currently displayed notices in
// display order
func (c *Center) Notices() []*Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Notice, len(c.notices))
	for i, n := range c.notices {
		noticeCopy := *n
		out[i] = &noticeCopy
	}
	return out
}
