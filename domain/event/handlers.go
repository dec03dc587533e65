package event

import (
	"fmt"
	"log/slog"
	"sync"
)

// Handler Each kind of event has its own handler.
// Based on the Chain of responsibility pattern.
type Handler interface {
	Handle(event Event)
}

// Dispatcher fans an event out to every registered handler, in order.
// Registration is expected to happen at wiring time, before dispatching.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewDispatcher(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

func (d *Dispatcher) Dispatch(e Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, h := range d.handlers {
		h.Handle(e)
	}
}

// Counter tracks how many events of each type went through.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]int)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Count(t Type) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}

// CountingHandler feeds every event into a Counter.
// Useful for observability and for asserting dispatch in tests.
type CountingHandler struct {
	counter *Counter
}

func NewCountingHandler(counter *Counter) *CountingHandler {
	return &CountingHandler{counter: counter}
}

func (h *CountingHandler) Handle(e Event) {
	h.counter.Increment(e.Type)
}

// NotificationHandler logs each event the way an external notification
// layer would publish it. It is the in-process stand-in for that layer.
type NotificationHandler struct {
	log *slog.Logger
}

func NewNotificationHandler(log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{log: log}
}

func (h *NotificationHandler) Handle(e Event) {
	switch e.Type {
	case UserRegisteredType:
		p, ok := e.Payload.(UserRegistered)
		if !ok {
			h.log.Error("invalid payload", "type", e.Type)
			return
		}
		h.log.Info(fmt.Sprintf("user %s registered", p.Handle), "user_id", p.UserID.String())
	case MemberJoinedType:
		p, ok := e.Payload.(MemberJoined)
		if !ok {
			h.log.Error("invalid payload", "type", e.Type)
			return
		}
		h.log.Info("member joined", "channel_id", p.ChannelID.String(), "user_id", p.UserID.String())
	case MessagePostedType:
		p, ok := e.Payload.(MessagePosted)
		if !ok {
			h.log.Error("invalid payload", "type", e.Type)
			return
		}
		h.log.Info("message posted", "channel_id", p.ChannelID.String(), "message_id", p.MessageID.String())
	case MessagesArchivedType:
		p, ok := e.Payload.(MessagesArchived)
		if !ok {
			h.log.Error("invalid payload", "type", e.Type)
			return
		}
		h.log.Info("messages archived", "count", p.Count, "cutoff", p.Cutoff)
	}
}
