package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerID   = uuid.New()
	today     = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	blockCols = []string{"id", "owner", "scheduled_date", "title", "description", "time_range", "type", "status"}
)

func blockRow(rows *pgxmock.Rows, b entity.ScheduleBlock) *pgxmock.Rows {
	return rows.AddRow(b.ID, b.Owner, b.ScheduledDate, b.Title, b.Description, b.TimeRange, string(b.Type), string(b.Status))
}

func TestListBlocksByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewScheduleRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, owner, scheduled_date, title, description, time_range, type, status FROM schedule_blocks WHERE owner = $1 AND scheduled_date = $2 ORDER BY seq;`)
	first := entity.ScheduleBlock{ID: uuid.New(), Owner: ownerID, ScheduledDate: today, Title: "Morning Routine",
		Description: "Wake up", TimeRange: "4:00 - 6:30 AM", Type: entity.BlockMorning, Status: entity.StatusUpcoming}
	second := entity.ScheduleBlock{ID: uuid.New(), Owner: ownerID, ScheduledDate: today, Title: "Work/Study Block",
		Description: "Focus", TimeRange: "9:00 AM - 12:00 PM", Type: entity.BlockWork, Status: entity.StatusCurrent}
	t.Run("listed in insertion order", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, today).
			WillReturnRows(blockRow(blockRow(pgxmock.NewRows(blockCols), first), second))
		blocks, err := repo.ListByDate(ctx, ownerID, today)
		assert.NoError(t, err)
		assert.Equal(t, []entity.ScheduleBlock{first, second}, blocks)
	})
	t.Run("empty day", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ownerID, today).WillReturnRows(pgxmock.NewRows(blockCols))
		blocks, err := repo.ListByDate(ctx, ownerID, today)
		assert.NoError(t, err)
		assert.Empty(t, blocks)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ownerID, today).WillReturnError(errors.New("db error"))
		_, err := repo.ListByDate(ctx, ownerID, today)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedIfEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewScheduleRepoWithConn(mock)
	ctx := context.Background()
	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1));`)
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schedule_blocks WHERE owner = $1 AND scheduled_date = $2);`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO schedule_blocks (owner, scheduled_date, title, description, time_range, type, status)`)
	lockKey := "schedule_seed/" + ownerID.String() + "/2026-10-15"
	blocks := []entity.ScheduleBlock{
		{Title: "Morning Routine", Description: "Wake up", TimeRange: "4:00 - 6:30 AM", Type: entity.BlockMorning, Status: entity.StatusUpcoming},
		{Title: "Work/Study Block", Description: "Focus", TimeRange: "9:00 AM - 12:00 PM", Type: entity.BlockWork, Status: entity.StatusCurrent},
	}
	insertArgs := []any{ownerID, today,
		[]string{"Morning Routine", "Work/Study Block"},
		[]string{"Wake up", "Focus"},
		[]string{"4:00 - 6:30 AM", "9:00 AM - 12:00 PM"},
		[]string{"morning", "work"},
		[]string{"upcoming", "current"},
	}
	t.Run("seeded empty day", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(existsQuery).WithArgs(ownerID, today).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(insertQuery).WithArgs(insertArgs...).WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()
		seeded, err := repo.SeedIfEmpty(ctx, ownerID, today, blocks)
		assert.NoError(t, err)
		assert.True(t, seeded)
	})
	t.Run("already seeded by another session", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(existsQuery).WithArgs(ownerID, today).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectCommit()
		seeded, err := repo.SeedIfEmpty(ctx, ownerID, today, blocks)
		assert.NoError(t, err)
		assert.False(t, seeded)
	})
	t.Run("unknown owner", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(existsQuery).WithArgs(ownerID, today).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(insertQuery).WithArgs(insertArgs...).WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.SeedIfEmpty(ctx, ownerID, today, blocks)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("lock error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(lockKey).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.SeedIfEmpty(ctx, ownerID, today, blocks)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.SeedIfEmpty(ctx, ownerID, today, blocks)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewScheduleRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO schedule_blocks (owner, scheduled_date, title, description, time_range, type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`)
	block := entity.ScheduleBlock{Owner: ownerID, ScheduledDate: today, Title: "Reading", Description: "",
		TimeRange: "9:00 PM", Type: entity.BlockEvening, Status: entity.StatusUpcoming}
	args := []any{ownerID, today, "Reading", "", "9:00 PM", "evening", "upcoming"}
	bid := uuid.New()
	testCases := []struct {
		Desc  string
		Error error
		Prep  func()
	}{
		{
			Desc: "created",
			Prep: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(bid))
			},
		},
		{
			Desc:  "unknown owner",
			Error: errorvalues.ErrUserNotFound,
			Prep: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "check violation",
			Error: errorvalues.ErrValidation,
			Prep: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23514"})
			},
		},
		{
			Desc:  "db error",
			Error: errorvalues.ErrTransientStore,
			Prep: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.Prep()
			stored, err := repo.Create(ctx, &block)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			expected := block
			expected.ID = bid
			assert.Equal(t, expected, *stored)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlockStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewScheduleRepoWithConn(mock)
	ctx := context.Background()
	updateQuery := regexp.QuoteMeta(`UPDATE schedule_blocks SET status = $1 WHERE id = $2 AND owner = $3 AND status = ANY($4)`)
	statusQuery := regexp.QuoteMeta(`SELECT status FROM schedule_blocks WHERE id = $1 AND owner = $2;`)
	block := entity.ScheduleBlock{ID: uuid.New(), Owner: ownerID, ScheduledDate: today, Title: "Work/Study Block",
		Description: "Focus", TimeRange: "9:00 AM - 12:00 PM", Type: entity.BlockWork, Status: entity.StatusCompleted}
	from := []entity.BlockStatus{entity.StatusCurrent}
	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs("completed", block.ID, ownerID, []string{"current"}).
			WillReturnRows(blockRow(pgxmock.NewRows(blockCols), block))
		updated, err := repo.UpdateStatus(ctx, block.ID, ownerID, entity.StatusCompleted, from)
		assert.NoError(t, err)
		assert.Equal(t, block, *updated)
	})
	t.Run("not allowed from current status", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs("completed", block.ID, ownerID, []string{"current"}).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(statusQuery).
			WithArgs(block.ID, ownerID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("skipped"))
		_, err := repo.UpdateStatus(ctx, block.ID, ownerID, entity.StatusCompleted, from)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("missing or owned by someone else", func(t *testing.T) {
		stranger := uuid.New()
		mock.ExpectQuery(updateQuery).
			WithArgs("completed", block.ID, stranger, []string{"current"}).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(statusQuery).
			WithArgs(block.ID, stranger).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.UpdateStatus(ctx, block.ID, stranger, entity.StatusCompleted, from)
		assert.ErrorIs(t, err, errorvalues.ErrBlockNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs("completed", block.ID, ownerID, []string{"current"}).
			WillReturnError(errors.New("db error"))
		_, err := repo.UpdateStatus(ctx, block.ID, ownerID, entity.StatusCompleted, from)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetStatuses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewScheduleRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE schedule_blocks SET status = 'upcoming' WHERE owner = $1 AND scheduled_date = $2;`)
	t.Run("reset", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(ownerID, today).WillReturnResult(pgxmock.NewResult("UPDATE", 7))
		assert.NoError(t, repo.ResetStatuses(ctx, ownerID, today))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(ownerID, today).WillReturnError(errors.New("db error"))
		assert.ErrorIs(t, repo.ResetStatuses(ctx, ownerID, today), errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
