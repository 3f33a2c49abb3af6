// Package bus implements the process-wide named-topic publish/subscribe
// mechanism that decouples UI actions from the data store and the
// notification pipeline. Delivery is synchronous and in registration order;
// there is no queuing, retry, cross-process delivery or backpressure.
package bus

import (
	"context"
	"sync"

	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
)

// Handler consumes a single event. Handlers run synchronously inside Publish.
type Handler func(ctx context.Context, event events.Event)

// UnsubscribeFunc removes the handler registration it was returned for.
// Calling it more than once is a no-op.
type UnsubscribeFunc func()

type registration struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribed handlers. Construct one per process
// and pass it to every component that needs it; there is no package-level
// singleton.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[events.Topic][]registration
	logger   *logger.Logger
}

func New(log *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[events.Topic][]registration),
		logger:   log,
	}
}

// Subscribe registers handler against topic. Handlers for a topic fire in
// registration order. The returned function removes exactly this
// registration and takes effect for all future publishes; a dispatch already
// in progress completes against its snapshot of the handler list.
func (b *Bus) Subscribe(topic events.Topic, handler Handler) UnsubscribeFunc {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], registration{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.remove(topic, id)
		})
	}
}

func (b *Bus) remove(topic events.Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[topic]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[topic] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish invokes every handler currently registered for the event's topic,
// synchronously and in registration order, passing the payload unchanged.
// A topic with no subscribers is a silent no-op. A panicking handler is
// recovered and logged so one faulty subscriber cannot break delivery to
// the others.
func (b *Bus) Publish(ctx context.Context, event events.Event) {
	topic := event.EventTopic()

	b.mu.Lock()
	regs := make([]registration, len(b.handlers[topic]))
	copy(regs, b.handlers[topic])
	b.mu.Unlock()

	for _, reg := range regs {
		b.dispatch(ctx, topic, reg, event)
	}
}

func (b *Bus) dispatch(ctx context.Context, topic events.Topic, reg registration, event events.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorw("event handler panicked",
				"topic", topic,
				"handler_id", reg.id,
				"panic", r,
			)
		}
	}()
	reg.handler(ctx, event)
}

// SubscriberCount returns the number of handlers registered for topic
func (b *Bus) SubscriberCount(topic events.Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[topic])
}
