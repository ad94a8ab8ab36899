package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/internal/repository/mocks"
	"github.com/limbo/healthydev/internal/service"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakTypeFor(t *testing.T) {
	assert.Equal(t, entity.StreakExercise, service.StreakTypeFor(entity.BlockHealth))
	for _, bt := range []entity.BlockType{entity.BlockMorning, entity.BlockWork, entity.BlockEvening} {
		assert.Equal(t, entity.StreakDailyCompletion, service.StreakTypeFor(bt))
	}
	assert.Equal(t, entity.ActivityExercise, service.ActivityTypeFor(entity.BlockHealth))
	assert.Equal(t, entity.ActivityWork, service.ActivityTypeFor(entity.BlockWork))
	assert.Equal(t, entity.ActivityStudy, service.ActivityTypeFor(entity.BlockMorning))
	assert.Equal(t, entity.ActivityStudy, service.ActivityTypeFor(entity.BlockEvening))
}

func TestCurrentStreak(t *testing.T) {
	store := repository.NewMemoryStore()
	clock := newTestClock(testNow)
	hub := events.NewHub(8)
	ss := service.NewStreakService(store.Streaks(), clock, hub)
	owner := uuid.New()
	ctx := context.Background()
	changes, stop := hub.Listen(owner)
	defer stop()

	missing, err := ss.CurrentStreak(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	assert.Equal(t, entity.Streak{Owner: owner, StreakType: entity.StreakExercise}, *missing)
	assert.Equal(t, events.Change{Owner: owner, Kind: events.KindStreaks}, <-changes)

	_, err = ss.RecordCompletion(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	_, err = ss.RecordCompletion(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	streak, err := ss.CurrentStreak(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)

	clock.AddDays(1)
	_, err = ss.RecordCompletion(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	cached, ok := ss.Cached(owner)
	require.True(t, ok)
	require.Len(t, cached, 1)
	assert.Equal(t, 2, cached[0].CurrentStreak)
	assert.Equal(t, 2, cached[0].LongestStreak)

	require.NoError(t, ss.Reset(ctx, owner))
	streak, err = ss.CurrentStreak(ctx, owner, entity.StreakExercise)
	require.NoError(t, err)
	assert.Zero(t, streak.CurrentStreak)
	assert.Zero(t, streak.LongestStreak)
	assert.Nil(t, streak.LastActivityDate)

	ss.Evict(owner)
	_, ok = ss.Cached(owner)
	assert.False(t, ok)
}

func TestColdCompletionKeepsOtherStreakTypes(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	yesterday := e.clock.Today().AddDate(0, 0, -1)
	_, err := e.store.Streaks().RecordCompletion(ctx, e.owner, entity.StreakExercise, yesterday)
	require.NoError(t, err)

	e.complete(t, "Work/Study Block")
	_, ok := e.streaks.Cached(e.owner)
	assert.False(t, ok)

	exercise, err := e.streaks.CurrentStreak(ctx, e.owner, entity.StreakExercise)
	require.NoError(t, err)
	assert.Equal(t, 1, exercise.CurrentStreak)
	daily, err := e.streaks.CurrentStreak(ctx, e.owner, entity.StreakDailyCompletion)
	require.NoError(t, err)
	assert.Equal(t, 1, daily.CurrentStreak)

	cached, ok := e.streaks.Cached(e.owner)
	require.True(t, ok)
	assert.Len(t, cached, 2)
}

func TestStreakCacheConcurrentAccess(t *testing.T) {
	store := repository.NewMemoryStore()
	clock := newTestClock(testNow)
	ss := service.NewStreakService(store.Streaks(), clock, events.NewHub(8))
	owner := uuid.New()
	ctx := context.Background()
	_, err := ss.Streaks(ctx, owner)
	require.NoError(t, err)

	streakTypes := []string{entity.StreakExercise, entity.StreakDailyCompletion}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := ss.RecordCompletion(ctx, owner, streakTypes[(i+j)%2]); err != nil {
					t.Error(err)
					return
				}
				if j%10 == 0 {
					if err := ss.Reset(ctx, owner); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				streak, err := ss.CurrentStreak(ctx, owner, streakTypes[(i+j)%2])
				if err != nil {
					t.Error(err)
					return
				}
				if streak.CurrentStreak < 0 || streak.CurrentStreak > 1 {
					t.Errorf("unexpected streak %d", streak.CurrentStreak)
				}
				if cached, _ := ss.Cached(owner); len(cached) > len(streakTypes) {
					t.Errorf("unexpected cached set %v", cached)
				}
			}
		}(i)
	}
	wg.Wait()

	for _, streakType := range streakTypes {
		_, err = ss.RecordCompletion(ctx, owner, streakType)
		require.NoError(t, err)
	}
	cached, ok := ss.Cached(owner)
	require.True(t, ok)
	assert.Len(t, cached, len(streakTypes))
	for _, s := range cached {
		assert.Equal(t, 1, s.CurrentStreak)
	}
}

func TestStreakStoreFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStreaksRepositoryI(ctrl)
	clock := newTestClock(testNow)
	ss := service.NewStreakService(repo, clock, nil)
	owner := uuid.New()
	ctx := context.Background()
	last := clock.Today().AddDate(0, 0, -1)
	stored := []entity.Streak{{ID: uuid.New(), Owner: owner, StreakType: entity.StreakDailyCompletion,
		CurrentStreak: 4, LongestStreak: 9, LastActivityDate: &last}}

	repo.EXPECT().ListByOwner(gomock.Any(), owner).Return(stored, nil)
	streaks, err := ss.Streaks(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, stored, streaks)

	repo.EXPECT().RecordCompletion(gomock.Any(), owner, entity.StreakDailyCompletion, clock.Today()).
		Return(nil, errorvalues.NewStoreError("recording completion", errors.New("timeout")))
	_, err = ss.RecordCompletion(ctx, owner, entity.StreakDailyCompletion)
	assert.ErrorIs(t, err, errorvalues.ErrTransientStore)

	repo.EXPECT().ResetAll(gomock.Any(), owner).Return(errorvalues.NewStoreError("resetting streaks", errors.New("timeout")))
	assert.ErrorIs(t, ss.Reset(ctx, owner), errorvalues.ErrTransientStore)

	streak, err := ss.CurrentStreak(ctx, owner, entity.StreakDailyCompletion)
	require.NoError(t, err)
	assert.Equal(t, stored[0], *streak)
}
