package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
)

const (
	DefaultActivityWindowDays = 365
	weekDays                  = 7
)

// ActivityService is the append-only activity log together with its projections.
type ActivityService struct {
	repo       repository.ActivitiesRepositoryI
	clock      Clock
	notifier   Notifier
	publisher  ActivityPublisher
	logger     *slog.Logger
	windowDays int

	mu    sync.RWMutex
	cache map[uuid.UUID][]entity.Activity
}

type ActivityServiceOption func(*ActivityService)

// WithPublisher forwards every appended activity to p. Publishing failures are only logged.
func WithPublisher(p ActivityPublisher) ActivityServiceOption {
	return func(as *ActivityService) { as.publisher = p }
}

// WithWindowDays sets how many trailing days a refresh fetches into the cache.
func WithWindowDays(days int) ActivityServiceOption {
	return func(as *ActivityService) {
		if days > 0 {
			as.windowDays = days
		}
	}
}

func NewActivityService(repo repository.ActivitiesRepositoryI, clock Clock, notifier Notifier, logger *slog.Logger, opts ...ActivityServiceOption) *ActivityService {
	if repo == nil || clock == nil {
		log.Fatal("on activity service provided nil dependencies")
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	as := &ActivityService{
		repo:       repo,
		clock:      clock,
		notifier:   notifier,
		logger:     logger,
		windowDays: DefaultActivityWindowDays,
		cache:      make(map[uuid.UUID][]entity.Activity),
	}
	for _, opt := range opts {
		opt(as)
	}
	return as
}

// Append inserts one activity. There is no deduplication.
func (as *ActivityService) Append(ctx context.Context, owner uuid.UUID, req *AppendActivityRequest) (*entity.Activity, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	completedAt := req.CompletedAt
	if completedAt.IsZero() {
		completedAt = as.clock.Now()
	}
	stored, err := as.repo.Create(ctx, &entity.Activity{
		Owner:           owner,
		ActivityType:    req.ActivityType,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		CompletedAt:     completedAt,
		Date:            entity.Date(completedAt),
		Metadata:        req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	as.mu.Lock()
	if cached, ok := as.cache[owner]; ok {
		as.cache[owner] = append([]entity.Activity{*stored}, cached...)
	}
	as.mu.Unlock()
	as.notifier.Publish(owner, events.KindActivities)

	if as.publisher != nil {
		if err := as.publisher.PublishActivity(ctx, *stored); err != nil {
			as.logger.Warn("publishing activity failed",
				slog.String("owner", owner.String()),
				slog.String("activity_id", stored.ID.String()),
				slog.String("error", err.Error()))
		}
	}
	return stored, nil
}

// QueryRange lists activities dated within [from, to], most recent first.
func (as *ActivityService) QueryRange(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]entity.Activity, error) {
	from, to = entity.Date(from), entity.Date(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", errorvalues.ErrValidation,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	return as.repo.ListRange(ctx, owner, from, to)
}

func (as *ActivityService) ActivitiesForDate(ctx context.Context, owner uuid.UUID, date time.Time) ([]entity.Activity, error) {
	return as.QueryRange(ctx, owner, date, date)
}

// Heatmap returns one entry per calendar day of the trailing days ending today, oldest first.
func (as *ActivityService) Heatmap(ctx context.Context, owner uuid.UUID, days int) ([]entity.HeatmapDay, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be positive", errorvalues.ErrValidation)
	}
	today := as.clock.Today()
	activities, err := as.repo.ListRange(ctx, owner, today.AddDate(0, 0, -(days-1)), today)
	if err != nil {
		return nil, err
	}
	return BuildHeatmap(activities, today, days), nil
}

func (as *ActivityService) WeeklyStats(ctx context.Context, owner uuid.UUID) (*entity.WeeklyStats, error) {
	today := as.clock.Today()
	activities, err := as.repo.ListRange(ctx, owner, today.AddDate(0, 0, -(weekDays-1)), today)
	if err != nil {
		return nil, err
	}
	stats := BuildWeeklyStats(activities, today)
	return &stats, nil
}

// Refresh refetches the activity window of owner and replaces the cached copy.
func (as *ActivityService) Refresh(ctx context.Context, owner uuid.UUID) error {
	today := as.clock.Today()
	activities, err := as.repo.ListRange(ctx, owner, today.AddDate(0, 0, -(as.windowDays-1)), today)
	if err != nil {
		return err
	}
	as.mu.Lock()
	as.cache[owner] = activities
	as.mu.Unlock()
	as.notifier.Publish(owner, events.KindActivities)
	return nil
}

// Activities returns the cached window of owner. False when nothing was fetched yet.
func (as *ActivityService) Activities(owner uuid.UUID) ([]entity.Activity, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	activities, ok := as.cache[owner]
	return clone(activities), ok
}

// DeleteAll removes the whole log of owner.
func (as *ActivityService) DeleteAll(ctx context.Context, owner uuid.UUID) error {
	if err := as.repo.DeleteAll(ctx, owner); err != nil {
		return err
	}
	as.mu.Lock()
	if _, ok := as.cache[owner]; ok {
		as.cache[owner] = []entity.Activity{}
	}
	as.mu.Unlock()
	as.notifier.Publish(owner, events.KindActivities)
	return nil
}

func (as *ActivityService) Evict(owner uuid.UUID) {
	as.mu.Lock()
	delete(as.cache, owner)
	as.mu.Unlock()
}

// HeatmapLevel buckets a day's activity count into 0..4.
func HeatmapLevel(count int) int {
	return min(count/2, 4)
}

// BuildHeatmap counts activities per day for the days ending at today.
// Input order does not matter; days without activities are emitted with zero count.
func BuildHeatmap(activities []entity.Activity, today time.Time, days int) []entity.HeatmapDay {
	if days < 1 {
		return nil
	}
	counts := countByDay(activities)
	today = entity.Date(today)
	heatmap := make([]entity.HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := counts[day].count
		heatmap = append(heatmap, entity.HeatmapDay{
			Date:  day,
			Count: count,
			Level: HeatmapLevel(count),
		})
	}
	return heatmap
}

// BuildWeeklyStats summarizes the seven days ending at today.
func BuildWeeklyStats(activities []entity.Activity, today time.Time) entity.WeeklyStats {
	today = entity.Date(today)
	first := today.AddDate(0, 0, -(weekDays - 1))
	counts := countByDay(activities)
	stats := entity.WeeklyStats{
		Days:   make([]entity.DailyTotal, 0, weekDays),
		ByType: make(map[string]int),
	}
	for i := 0; i < weekDays; i++ {
		day := first.AddDate(0, 0, i)
		total := counts[day]
		stats.Days = append(stats.Days, entity.DailyTotal{Date: day, Count: total.count, Minutes: total.minutes})
		stats.TotalCount += total.count
		stats.TotalMinutes += total.minutes
	}
	for _, a := range activities {
		day := entity.Date(a.Date)
		if day.Before(first) || day.After(today) {
			continue
		}
		stats.ByType[a.ActivityType]++
	}
	return stats
}

type dayTotal struct {
	count   int
	minutes int
}

func countByDay(activities []entity.Activity) map[time.Time]dayTotal {
	totals := make(map[time.Time]dayTotal, len(activities))
	for _, a := range activities {
		day := entity.Date(a.Date)
		t := totals[day]
		t.count++
		t.minutes += a.DurationMinutes
		totals[day] = t
	}
	return totals
}
