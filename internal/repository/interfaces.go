package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/healthydev/pkg/entity"
)

// Table names carried by change events.
const (
	TableScheduleBlocks = "schedule_blocks"
	TableStreaks        = "streaks"
	TableActivities     = "activities"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ScheduleRepositoryI interface {
	// Lists blocks of owner scheduled on date in insertion order
	ListByDate(ctx context.Context, owner uuid.UUID, date time.Time) ([]entity.ScheduleBlock, error)
	// Inserts blocks for (owner, date) only if none exist yet. Reports whether rows were inserted
	SeedIfEmpty(ctx context.Context, owner uuid.UUID, date time.Time, blocks []entity.ScheduleBlock) (bool, error)
	// Inserts single block and returns stored record with generated id
	Create(ctx context.Context, block *entity.ScheduleBlock) (*entity.ScheduleBlock, error)
	// Moves block (id, owner) to status if its current status is one of from. Returns updated row
	UpdateStatus(ctx context.Context, id, owner uuid.UUID, status entity.BlockStatus, from []entity.BlockStatus) (*entity.ScheduleBlock, error)
	// Sets every block of owner on date back to upcoming
	ResetStatuses(ctx context.Context, owner uuid.UUID, date time.Time) error
}

type StreaksRepositoryI interface {
	// Atomically creates or advances (owner, streakType) for a completion on today
	RecordCompletion(ctx context.Context, owner uuid.UUID, streakType string, today time.Time) (*entity.Streak, error)
	// Lists all streak rows of owner
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]entity.Streak, error)
	// Zeroes every streak row of owner
	ResetAll(ctx context.Context, owner uuid.UUID) error
}

type ActivitiesRepositoryI interface {
	// Appends activity, filling id, completed_at and date when empty
	Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error)
	// Lists activities of owner with date in [from, to], most recent first
	ListRange(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]entity.Activity, error)
	// Deletes every activity of owner
	DeleteAll(ctx context.Context, owner uuid.UUID) error
}

type ChangeEvent struct {
	Table string    `json:"table"`
	Owner uuid.UUID `json:"owner"`
	Op    string    `json:"op"`
}

type ChangeFeedI interface {
	// Subscribes to changes of table rows owned by owner. The returned func unsubscribes
	Subscribe(table string, owner uuid.UUID) (<-chan ChangeEvent, func())
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
