// Package events lets presentation code follow state changes of an owner.
// Only the kind of change travels; listeners read fresh state from the services.
package events

import (
	"sync"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSchedule   Kind = "schedule"
	KindStreaks    Kind = "streaks"
	KindActivities Kind = "activities"
)

type Change struct {
	Owner uuid.UUID
	Kind  Kind
}

// Hub is an in-process per-owner pub-sub. Publish never blocks; a listener
// with a full buffer misses the change.
type Hub struct {
	mu        sync.Mutex
	next      int
	listeners map[uuid.UUID]map[int]chan Change
	buffer    int
}

// NewHub creates a hub whose listener channels hold buffer pending changes.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		listeners: make(map[uuid.UUID]map[int]chan Change),
		buffer:    buffer,
	}
}

func (h *Hub) Publish(owner uuid.UUID, kind Kind) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.listeners[owner] {
		select {
		case ch <- Change{Owner: owner, Kind: kind}:
		default:
		}
	}
}

// Listen returns a channel of owner's changes and a func that closes it.
func (h *Hub) Listen(owner uuid.UUID) (<-chan Change, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Change, h.buffer)
	if h.listeners[owner] == nil {
		h.listeners[owner] = make(map[int]chan Change)
	}
	h.listeners[owner][id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners[owner], id)
			if len(h.listeners[owner]) == 0 {
				delete(h.listeners, owner)
			}
			close(ch)
		})
	}
}
