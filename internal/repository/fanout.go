package repository

import (
	"sync"

	"github.com/google/uuid"
)

type subscriber struct {
	table string
	owner uuid.UUID
	ch    chan ChangeEvent
}

// fanout routes change events to subscribers by (table, owner). Each subscriber
// holds at most one pending event: receivers refetch whole tables, so a pending
// event already covers any that arrive after it.
type fanout struct {
	mu   sync.Mutex
	next int
	subs map[int]*subscriber
}

func (f *fanout) Subscribe(table string, owner uuid.UUID) (<-chan ChangeEvent, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(map[int]*subscriber)
	}
	id := f.next
	f.next++
	sub := &subscriber{table: table, owner: owner, ch: make(chan ChangeEvent, 1)}
	f.subs[id] = sub
	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(sub.ch)
		})
	}
}

// dispatch delivers evt without blocking and returns the number of matching subscribers.
func (f *fanout) dispatch(evt ChangeEvent) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := 0
	for _, sub := range f.subs {
		if sub.table != evt.Table || sub.owner != evt.Owner {
			continue
		}
		matched++
		select {
		case sub.ch <- evt:
		default:
		}
	}
	return matched
}

// broadcast sends an op event to every subscriber for its own table and owner.
func (f *fanout) broadcast(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		select {
		case sub.ch <- ChangeEvent{Table: sub.table, Owner: sub.owner, Op: op}:
		default:
		}
	}
}

func (f *fanout) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
