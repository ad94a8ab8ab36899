package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
)

// StreakService is the streak ledger: per-owner counters advanced by completions.
// The counting rule itself lives in the store; this side only caches rows.
type StreakService struct {
	repo     repository.StreaksRepositoryI
	clock    Clock
	notifier Notifier

	mu    sync.RWMutex
	cache map[uuid.UUID][]entity.Streak
}

func NewStreakService(repo repository.StreaksRepositoryI, clock Clock, notifier Notifier) *StreakService {
	if repo == nil || clock == nil {
		log.Fatal("on streak service provided nil dependencies")
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &StreakService{
		repo:     repo,
		clock:    clock,
		notifier: notifier,
		cache:    make(map[uuid.UUID][]entity.Streak),
	}
}

// StreakTypeFor maps a block type to the streak its completion advances.
func StreakTypeFor(t entity.BlockType) string {
	if t == entity.BlockHealth {
		return entity.StreakExercise
	}
	return entity.StreakDailyCompletion
}

// RecordCompletion advances streakType for today. The cached set is patched only
// when owner is already cached; a partial set would hide the other types.
func (ss *StreakService) RecordCompletion(ctx context.Context, owner uuid.UUID, streakType string) (*entity.Streak, error) {
	streak, err := ss.repo.RecordCompletion(ctx, owner, streakType, ss.clock.Today())
	if err != nil {
		return nil, err
	}
	ss.mu.Lock()
	if cached, ok := ss.cache[owner]; ok {
		ss.cache[owner] = withStreak(cached, *streak)
	}
	ss.mu.Unlock()
	ss.notifier.Publish(owner, events.KindStreaks)
	return streak, nil
}

// Streaks fetches every streak of owner and replaces the cached set.
func (ss *StreakService) Streaks(ctx context.Context, owner uuid.UUID) ([]entity.Streak, error) {
	streaks, err := ss.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	ss.mu.Lock()
	ss.cache[owner] = streaks
	ss.mu.Unlock()
	ss.notifier.Publish(owner, events.KindStreaks)
	return clone(streaks), nil
}

func (ss *StreakService) Refresh(ctx context.Context, owner uuid.UUID) error {
	_, err := ss.Streaks(ctx, owner)
	return err
}

// CurrentStreak reads streakType from the cache, loading owner's streaks on a miss.
// A type with no row yet reads as a zero streak.
func (ss *StreakService) CurrentStreak(ctx context.Context, owner uuid.UUID, streakType string) (*entity.Streak, error) {
	ss.mu.RLock()
	streaks, cached := ss.cache[owner]
	streak, ok := findStreak(streaks, streakType)
	ss.mu.RUnlock()
	if !cached {
		streaks, err := ss.Streaks(ctx, owner)
		if err != nil {
			return nil, err
		}
		streak, ok = findStreak(streaks, streakType)
	}
	if !ok {
		return &entity.Streak{Owner: owner, StreakType: streakType}, nil
	}
	return &streak, nil
}

// Cached returns owner's cached streaks without touching the store.
func (ss *StreakService) Cached(owner uuid.UUID) ([]entity.Streak, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	streaks, ok := ss.cache[owner]
	return clone(streaks), ok
}

func (ss *StreakService) Reset(ctx context.Context, owner uuid.UUID) error {
	if err := ss.repo.ResetAll(ctx, owner); err != nil {
		return err
	}
	ss.mu.Lock()
	if cached, ok := ss.cache[owner]; ok {
		zeroed := clone(cached)
		for i := range zeroed {
			zeroed[i].CurrentStreak, zeroed[i].LongestStreak, zeroed[i].LastActivityDate = 0, 0, nil
		}
		ss.cache[owner] = zeroed
	}
	ss.mu.Unlock()
	ss.notifier.Publish(owner, events.KindStreaks)
	return nil
}

func (ss *StreakService) Evict(owner uuid.UUID) {
	ss.mu.Lock()
	delete(ss.cache, owner)
	ss.mu.Unlock()
}

// withStreak returns a copy of streaks with streak replacing the row of its type.
// Cached slices are never written in place.
func withStreak(streaks []entity.Streak, streak entity.Streak) []entity.Streak {
	out := make([]entity.Streak, 0, len(streaks)+1)
	replaced := false
	for _, s := range streaks {
		if s.StreakType == streak.StreakType {
			s, replaced = streak, true
		}
		out = append(out, s)
	}
	if !replaced {
		out = append(out, streak)
	}
	return out
}

func findStreak(streaks []entity.Streak, streakType string) (entity.Streak, bool) {
	for _, s := range streaks {
		if s.StreakType == streakType {
			return s, true
		}
	}
	return entity.Streak{}, false
}

type nopNotifier struct{}

func (nopNotifier) Publish(uuid.UUID, events.Kind) {}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
