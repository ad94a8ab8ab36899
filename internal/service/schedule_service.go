package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/observability"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
)

// allowedSources lists, per target status, the statuses a block may move from.
var allowedSources = map[entity.BlockStatus][]entity.BlockStatus{
	entity.StatusCurrent:   {entity.StatusUpcoming},
	entity.StatusCompleted: {entity.StatusCurrent},
	entity.StatusSkipped:   {entity.StatusUpcoming, entity.StatusCurrent},
}

// TransitionResult is a committed transition. Notices hold failed side effects
// of a completion; the status change stands regardless.
type TransitionResult struct {
	Block   entity.ScheduleBlock
	Notices []error
}

// Err joins the notices into a partial failure, or returns nil.
func (r *TransitionResult) Err() error {
	if r == nil || len(r.Notices) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", errorvalues.ErrPartialFailure, errors.Join(r.Notices...))
}

type todayBlocks struct {
	date   time.Time
	blocks []entity.ScheduleBlock
}

// ScheduleService owns each owner's blocks for today and fires completion side effects.
type ScheduleService struct {
	repo       repository.ScheduleRepositoryI
	streaks    StreakRecorder
	activities ActivityRecorder
	clock      Clock
	notifier   Notifier
	logger     *slog.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID]todayBlocks
}

func NewScheduleService(
	repo repository.ScheduleRepositoryI,
	streaks StreakRecorder,
	activities ActivityRecorder,
	clock Clock,
	notifier Notifier,
	logger *slog.Logger,
) *ScheduleService {
	if repo == nil || streaks == nil || activities == nil || clock == nil {
		log.Fatal("on schedule service provided nil dependencies")
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{
		repo:       repo,
		streaks:    streaks,
		activities: activities,
		clock:      clock,
		notifier:   notifier,
		logger:     logger,
		cache:      make(map[uuid.UUID]todayBlocks),
	}
}

func (ss *ScheduleService) LoadToday(ctx context.Context, owner uuid.UUID) ([]entity.ScheduleBlock, error) {
	today := ss.clock.Today()
	blocks, err := ss.repo.ListByDate(ctx, owner, today)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		seeded, err := ss.repo.SeedIfEmpty(ctx, owner, today, DefaultSchedule())
		if err != nil {
			return nil, err
		}
		if seeded {
			observability.RecordSeed()
			ss.logger.Info("seeded default schedule",
				slog.String("owner", owner.String()),
				slog.String("date", today.Format(time.DateOnly)))
		}
		if blocks, err = ss.repo.ListByDate(ctx, owner, today); err != nil {
			return nil, err
		}
	}
	ss.reportDuplicates(owner, today, blocks)

	ss.mu.Lock()
	ss.cache[owner] = todayBlocks{date: today, blocks: blocks}
	ss.mu.Unlock()
	ss.notifier.Publish(owner, events.KindSchedule)
	return clone(blocks), nil
}

// Refresh reloads today's blocks of owner into the cache.
func (ss *ScheduleService) Refresh(ctx context.Context, owner uuid.UUID) error {
	_, err := ss.LoadToday(ctx, owner)
	return err
}

func (ss *ScheduleService) Blocks(owner uuid.UUID) ([]entity.ScheduleBlock, bool) {
	today := ss.clock.Today()
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	entry, ok := ss.cache[owner]
	if !ok || !entity.SameDay(entry.date, today) {
		return nil, false
	}
	return clone(entry.blocks), true
}

func (ss *ScheduleService) Transition(ctx context.Context, owner, blockID uuid.UUID, status entity.BlockStatus) (*TransitionResult, error) {
	from, ok := allowedSources[status]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a transition target", errorvalues.ErrValidation, status)
	}
	block, err := ss.repo.UpdateStatus(ctx, blockID, owner, status, from)
	if err != nil {
		return nil, err
	}
	observability.RecordTransition(string(status))
	ss.patch(owner, func(blocks []entity.ScheduleBlock) {
		for i := range blocks {
			if blocks[i].ID == block.ID {
				blocks[i] = *block
			}
		}
	})
	ss.notifier.Publish(owner, events.KindSchedule)

	result := &TransitionResult{Block: *block}
	if status == entity.StatusCompleted {
		result.Notices = ss.completionEffects(ctx, owner, block)
	}
	return result, nil
}

// completionEffects advances the streak and then logs the activity. Each effect
// is attempted independently; failures come back as notices.
func (ss *ScheduleService) completionEffects(ctx context.Context, owner uuid.UUID, block *entity.ScheduleBlock) []error {
	var notices []error
	logger := ss.logger.With(slog.String("owner", owner.String()), slog.String("block_id", block.ID.String()))

	if _, err := ss.streaks.RecordCompletion(ctx, owner, StreakTypeFor(block.Type)); err != nil {
		observability.RecordSideEffectFailure("streak")
		logger.Warn("streak update after completion failed", slog.String("error", err.Error()))
		notices = append(notices, fmt.Errorf("streak update: %w", err))
	}
	_, err := ss.activities.Append(ctx, owner, &AppendActivityRequest{
		ActivityType:    ActivityTypeFor(block.Type),
		Title:           block.Title,
		DurationMinutes: CompletionDurationMinutes,
		CompletedAt:     ss.clock.Now(),
	})
	if err != nil {
		observability.RecordSideEffectFailure("activity")
		logger.Warn("activity logging after completion failed", slog.String("error", err.Error()))
		notices = append(notices, fmt.Errorf("activity logging: %w", err))
	}
	return notices
}

func (ss *ScheduleService) AddCustomBlock(ctx context.Context, owner uuid.UUID, req *CreateBlockRequest) (*entity.ScheduleBlock, error) {
	in := *req
	in.Title = strings.TrimSpace(in.Title)
	in.TimeRange = strings.TrimSpace(in.TimeRange)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = entity.BlockWork
	}
	if in.Status == "" {
		in.Status = entity.StatusUpcoming
	}
	today := ss.clock.Today()
	stored, err := ss.repo.Create(ctx, &entity.ScheduleBlock{
		Owner:         owner,
		Title:         in.Title,
		Description:   in.Description,
		TimeRange:     in.TimeRange,
		Type:          in.Type,
		Status:        in.Status,
		ScheduledDate: today,
	})
	if err != nil {
		return nil, err
	}
	ss.mu.Lock()
	if entry, ok := ss.cache[owner]; ok && entity.SameDay(entry.date, today) {
		entry.blocks = append(entry.blocks, *stored)
		ss.cache[owner] = entry
	}
	ss.mu.Unlock()
	ss.notifier.Publish(owner, events.KindSchedule)
	return stored, nil
}

// Progress counts today's completed blocks against all of today's blocks.
func (ss *ScheduleService) Progress(ctx context.Context, owner uuid.UUID) (*entity.Progress, error) {
	blocks, err := ss.LoadToday(ctx, owner)
	if err != nil {
		return nil, err
	}
	progress := &entity.Progress{Total: len(blocks)}
	for _, b := range blocks {
		if b.Status == entity.StatusCompleted {
			progress.Completed++
		}
	}
	return progress, nil
}

// ResetAll zeroes the streaks, reverts today's blocks to upcoming and deletes the
// activity log of owner. The steps are independent; applied ones are not undone.
func (ss *ScheduleService) ResetAll(ctx context.Context, owner uuid.UUID, confirmed bool) error {
	if !confirmed {
		return errorvalues.ErrResetNotConfirmed
	}
	today := ss.clock.Today()
	failed := make(map[errorvalues.ResetStep]error)

	if err := ss.streaks.Reset(ctx, owner); err != nil {
		failed[errorvalues.ResetStreaks] = err
	}
	if err := ss.repo.ResetStatuses(ctx, owner, today); err != nil {
		failed[errorvalues.ResetBlocks] = err
	} else {
		ss.patch(owner, func(blocks []entity.ScheduleBlock) {
			for i := range blocks {
				blocks[i].Status = entity.StatusUpcoming
			}
		})
		ss.notifier.Publish(owner, events.KindSchedule)
	}
	if err := ss.activities.DeleteAll(ctx, owner); err != nil {
		failed[errorvalues.ResetActivities] = err
	}

	if len(failed) > 0 {
		resetErr := &errorvalues.ResetError{Steps: failed}
		ss.logger.Error("reset partially failed",
			slog.String("owner", owner.String()),
			slog.String("error", resetErr.Error()))
		return resetErr
	}
	ss.logger.Info("progress reset", slog.String("owner", owner.String()))
	return nil
}

func (ss *ScheduleService) Evict(owner uuid.UUID) {
	ss.mu.Lock()
	delete(ss.cache, owner)
	ss.mu.Unlock()
}

// patch edits owner's cached blocks in place when they belong to today.
func (ss *ScheduleService) patch(owner uuid.UUID, edit func([]entity.ScheduleBlock)) {
	today := ss.clock.Today()
	ss.mu.Lock()
	defer ss.mu.Unlock()
	entry, ok := ss.cache[owner]
	if !ok || !entity.SameDay(entry.date, today) {
		return
	}
	edit(entry.blocks)
}

func (ss *ScheduleService) reportDuplicates(owner uuid.UUID, date time.Time, blocks []entity.ScheduleBlock) {
	seen := make(map[string]int, len(blocks))
	duplicates := 0
	for _, b := range blocks {
		key := b.Title + "\x00" + b.TimeRange
		if seen[key]++; seen[key] > 1 {
			duplicates++
		}
	}
	if duplicates == 0 {
		return
	}
	observability.RecordDuplicateBlocks()
	ss.logger.Warn("duplicate schedule blocks",
		slog.String("owner", owner.String()),
		slog.String("date", date.Format(time.DateOnly)),
		slog.Int("duplicates", duplicates))
}
