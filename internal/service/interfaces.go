package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// CreateBlockRequest describes a user-created block. Empty Type means work,
// empty Status means upcoming.
type CreateBlockRequest struct {
	Title       string             `validate:"notblank,max=200"`
	Description string             `validate:"max=2000"`
	TimeRange   string             `validate:"notblank,max=100"`
	Type        entity.BlockType   `validate:"omitempty,block_type"`
	Status      entity.BlockStatus `validate:"omitempty,block_status"`
}

type AppendActivityRequest struct {
	ActivityType    string `validate:"notblank,max=50"`
	Title           string `validate:"notblank,max=200"`
	DurationMinutes int    `validate:"gte=0,lte=1440"`
	// Zero means now
	CompletedAt time.Time
	Metadata    map[string]any
}

// Notifier receives the kind of state an owner's cache just replaced or patched.
type Notifier interface {
	Publish(owner uuid.UUID, kind events.Kind)
}

// StreakRecorder is the part of the streak ledger the schedule engine drives.
type StreakRecorder interface {
	RecordCompletion(ctx context.Context, owner uuid.UUID, streakType string) (*entity.Streak, error)
	Reset(ctx context.Context, owner uuid.UUID) error
}

// ActivityRecorder is the part of the activity log the schedule engine drives.
type ActivityRecorder interface {
	Append(ctx context.Context, owner uuid.UUID, req *AppendActivityRequest) (*entity.Activity, error)
	DeleteAll(ctx context.Context, owner uuid.UUID) error
}

type ActivityPublisher interface {
	PublishActivity(ctx context.Context, activity entity.Activity) error
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ScheduleServiceI interface {
	// Fetches today's blocks, seeding the default schedule on an empty day
	LoadToday(ctx context.Context, owner uuid.UUID) ([]entity.ScheduleBlock, error)
	// Cached blocks of today. False when nothing is cached for today
	Blocks(owner uuid.UUID) ([]entity.ScheduleBlock, bool)
	Transition(ctx context.Context, owner, blockID uuid.UUID, status entity.BlockStatus) (*TransitionResult, error)
	AddCustomBlock(ctx context.Context, owner uuid.UUID, req *CreateBlockRequest) (*entity.ScheduleBlock, error)
	Progress(ctx context.Context, owner uuid.UUID) (*entity.Progress, error)
	// Destructive. Refuses to run unless confirmed is true
	ResetAll(ctx context.Context, owner uuid.UUID, confirmed bool) error
}

type StreakServiceI interface {
	Streaks(ctx context.Context, owner uuid.UUID) ([]entity.Streak, error)
	CurrentStreak(ctx context.Context, owner uuid.UUID, streakType string) (*entity.Streak, error)
	Cached(owner uuid.UUID) ([]entity.Streak, bool)
}

type ActivityServiceI interface {
	Append(ctx context.Context, owner uuid.UUID, req *AppendActivityRequest) (*entity.Activity, error)
	QueryRange(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]entity.Activity, error)
	ActivitiesForDate(ctx context.Context, owner uuid.UUID, date time.Time) ([]entity.Activity, error)
	Heatmap(ctx context.Context, owner uuid.UUID, days int) ([]entity.HeatmapDay, error)
	WeeklyStats(ctx context.Context, owner uuid.UUID) (*entity.WeeklyStats, error)
	// Cached activities of the refetch window
	Activities(owner uuid.UUID) ([]entity.Activity, bool)
}
