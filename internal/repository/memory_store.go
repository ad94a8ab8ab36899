package repository

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/pkg/entity"
)

// MemoryStore keeps every table in process memory and notifies its own
// subscribers on each mutation. Used by the memory driver and in tests.
type MemoryStore struct {
	fanout
	mu         sync.Mutex
	users      map[uuid.UUID]entity.User
	blocks     []entity.ScheduleBlock
	streaks    map[streakKey]entity.Streak
	activities []entity.Activity
}

type streakKey struct {
	owner      uuid.UUID
	streakType string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]entity.User),
		streaks: make(map[streakKey]entity.Streak),
	}
}

// Users exposes the users table of the store.
func (m *MemoryStore) Users() UsersRepositoryI { return memoryUsers{m} }

// Schedule exposes the schedule_blocks table of the store.
func (m *MemoryStore) Schedule() ScheduleRepositoryI { return memorySchedule{m} }

// Streaks exposes the streaks table of the store.
func (m *MemoryStore) Streaks() StreaksRepositoryI { return memoryStreaks{m} }

// Activities exposes the activities table of the store.
func (m *MemoryStore) Activities() ActivitiesRepositoryI { return memoryActivities{m} }

func (m *MemoryStore) notify(table string, owner uuid.UUID, op string) {
	m.dispatch(ChangeEvent{Table: table, Owner: owner, Op: op})
}

type memoryUsers struct{ m *MemoryStore }

func (r memoryUsers) Create(_ context.Context, user *entity.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Name == user.Name {
			return errorvalues.ErrUserExists
		}
	}
	user.ID = uuid.New()
	r.m.users[user.ID] = *user
	return nil
}

func (r memoryUsers) FindByName(_ context.Context, name string) (*entity.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (r memoryUsers) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &u, nil
}

func (r memoryUsers) Delete(_ context.Context, uid uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(r.m.users, uid)
	return nil
}

type memorySchedule struct{ m *MemoryStore }

func (r memorySchedule) ListByDate(_ context.Context, owner uuid.UUID, date time.Time) ([]entity.ScheduleBlock, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.listLocked(owner, date), nil
}

func (r memorySchedule) listLocked(owner uuid.UUID, date time.Time) []entity.ScheduleBlock {
	blocks := make([]entity.ScheduleBlock, 0, 8)
	for _, b := range r.m.blocks {
		if b.Owner == owner && entity.SameDay(b.ScheduledDate, date) {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func (r memorySchedule) SeedIfEmpty(_ context.Context, owner uuid.UUID, date time.Time, blocks []entity.ScheduleBlock) (bool, error) {
	r.m.mu.Lock()
	if len(r.listLocked(owner, date)) > 0 {
		r.m.mu.Unlock()
		return false, nil
	}
	for _, b := range blocks {
		b.ID = uuid.New()
		b.Owner = owner
		b.ScheduledDate = date
		r.m.blocks = append(r.m.blocks, b)
	}
	r.m.mu.Unlock()
	r.m.notify(TableScheduleBlocks, owner, "INSERT")
	return true, nil
}

func (r memorySchedule) Create(_ context.Context, block *entity.ScheduleBlock) (*entity.ScheduleBlock, error) {
	stored := *block
	stored.ID = uuid.New()
	r.m.mu.Lock()
	r.m.blocks = append(r.m.blocks, stored)
	r.m.mu.Unlock()
	r.m.notify(TableScheduleBlocks, stored.Owner, "INSERT")
	return &stored, nil
}

func (r memorySchedule) UpdateStatus(_ context.Context, id, owner uuid.UUID, status entity.BlockStatus, from []entity.BlockStatus) (*entity.ScheduleBlock, error) {
	r.m.mu.Lock()
	idx := slices.IndexFunc(r.m.blocks, func(b entity.ScheduleBlock) bool {
		return b.ID == id && b.Owner == owner
	})
	if idx < 0 {
		r.m.mu.Unlock()
		return nil, errorvalues.ErrBlockNotFound
	}
	if !slices.Contains(from, r.m.blocks[idx].Status) {
		r.m.mu.Unlock()
		return nil, errorvalues.ErrInvalidTransition
	}
	r.m.blocks[idx].Status = status
	updated := r.m.blocks[idx]
	r.m.mu.Unlock()
	r.m.notify(TableScheduleBlocks, owner, "UPDATE")
	return &updated, nil
}

func (r memorySchedule) ResetStatuses(_ context.Context, owner uuid.UUID, date time.Time) error {
	r.m.mu.Lock()
	for i, b := range r.m.blocks {
		if b.Owner == owner && entity.SameDay(b.ScheduledDate, date) {
			r.m.blocks[i].Status = entity.StatusUpcoming
		}
	}
	r.m.mu.Unlock()
	r.m.notify(TableScheduleBlocks, owner, "UPDATE")
	return nil
}

type memoryStreaks struct{ m *MemoryStore }

func (r memoryStreaks) RecordCompletion(_ context.Context, owner uuid.UUID, streakType string, today time.Time) (*entity.Streak, error) {
	key := streakKey{owner: owner, streakType: streakType}
	r.m.mu.Lock()
	s, ok := r.m.streaks[key]
	if !ok {
		s = entity.Streak{ID: uuid.New(), Owner: owner, StreakType: streakType}
	}
	next, changed := s.Advance(today)
	r.m.streaks[key] = next
	r.m.mu.Unlock()
	if changed {
		r.m.notify(TableStreaks, owner, "UPDATE")
	}
	return &next, nil
}

func (r memoryStreaks) ListByOwner(_ context.Context, owner uuid.UUID) ([]entity.Streak, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	streaks := make([]entity.Streak, 0, 2)
	for key, s := range r.m.streaks {
		if key.owner == owner {
			streaks = append(streaks, s)
		}
	}
	sort.Slice(streaks, func(i, j int) bool { return streaks[i].StreakType < streaks[j].StreakType })
	return streaks, nil
}

func (r memoryStreaks) ResetAll(_ context.Context, owner uuid.UUID) error {
	r.m.mu.Lock()
	for key, s := range r.m.streaks {
		if key.owner == owner {
			s.CurrentStreak, s.LongestStreak, s.LastActivityDate = 0, 0, nil
			r.m.streaks[key] = s
		}
	}
	r.m.mu.Unlock()
	r.m.notify(TableStreaks, owner, "UPDATE")
	return nil
}

type memoryActivities struct{ m *MemoryStore }

func (r memoryActivities) Create(_ context.Context, activity *entity.Activity) (*entity.Activity, error) {
	stored := *activity
	stored.ID = uuid.New()
	if stored.CompletedAt.IsZero() {
		stored.CompletedAt = time.Now()
	}
	if stored.Date.IsZero() {
		stored.Date = entity.Date(stored.CompletedAt)
	}
	r.m.mu.Lock()
	r.m.activities = append(r.m.activities, stored)
	r.m.mu.Unlock()
	r.m.notify(TableActivities, stored.Owner, "INSERT")
	return &stored, nil
}

func (r memoryActivities) ListRange(_ context.Context, owner uuid.UUID, from, to time.Time) ([]entity.Activity, error) {
	from, to = entity.Date(from), entity.Date(to)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	activities := make([]entity.Activity, 0, 16)
	for _, a := range r.m.activities {
		day := entity.Date(a.Date)
		if a.Owner == owner && !day.Before(from) && !day.After(to) {
			activities = append(activities, a)
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CompletedAt.After(activities[j].CompletedAt)
	})
	return activities, nil
}

func (r memoryActivities) DeleteAll(_ context.Context, owner uuid.UUID) error {
	r.m.mu.Lock()
	r.m.activities = slices.DeleteFunc(r.m.activities, func(a entity.Activity) bool {
		return a.Owner == owner
	})
	r.m.mu.Unlock()
	r.m.notify(TableActivities, owner, "DELETE")
	return nil
}
