package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// Hub delivers monitor events to the tray menu.
type Hub struct {
	mu   sync.Mutex
	subs []chan Event
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe returns a channel that receives events until ctx is done, after
// which it is closed.
func (h *Hub) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs = append(h.subs, ch)
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.remove(ch)
	}()

	return ch
}

func (h *Hub) remove(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, c := range h.subs {
		if c == ch {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			close(ch)
			return
		}
	}
}

// Publish drops the event for subscribers that are behind. A nil hub drops
// everything.
func (h *Hub) Publish(name string, payload any) {
	if h == nil {
		return
	}

	b, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithField("event", name).Error("failed to encode event")
		return
	}
	ev := Event{Name: name, Data: b}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			logrus.WithField("event", name).Trace("subscriber is behind, event dropped")
		}
	}
}
