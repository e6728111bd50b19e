package biz

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxQueuedEvents bounds the per-player backlog; a client that never polls
// loses its oldest pushes instead of growing the queue.
const maxQueuedEvents = 256

// Event is one queued push for a polling client.
type Event struct {
	ID      string    `json:"id"`
	Seq     int64     `json:"seq"`
	Cmd     string    `json:"cmd"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

type eventQueue struct {
	seq    int64
	events []Event
}

// eventHub buffers outbound pushes per player for the HTTP poll transport.
type eventHub struct {
	mu     sync.Mutex
	queues map[int64]*eventQueue
}

func newEventHub() *eventHub {
	return &eventHub{queues: make(map[int64]*eventQueue)}
}

func (h *eventHub) push(uid int64, cmd string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	q := h.queues[uid]
	if q == nil {
		q = &eventQueue{}
		h.queues[uid] = q
	}
	q.seq++
	q.events = append(q.events, Event{
		ID:      uuid.NewString(),
		Seq:     q.seq,
		Cmd:     cmd,
		Payload: payload,
		At:      time.Now(),
	})
	if len(q.events) > maxQueuedEvents {
		q.events = q.events[len(q.events)-maxQueuedEvents:]
	}
}

// fetch returns events with Seq > since, newest last. The queue is kept so a
// client can re-poll after a dropped response.
func (h *eventHub) fetch(uid, since int64) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	q := h.queues[uid]
	if q == nil {
		return nil
	}
	for i, ev := range q.events {
		if ev.Seq > since {
			out := make([]Event, len(q.events)-i)
			copy(out, q.events[i:])
			return out
		}
	}
	return nil
}

func (h *eventHub) drop(uid int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.queues, uid)
}
