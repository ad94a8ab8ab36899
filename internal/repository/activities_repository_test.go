package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO activities (owner, activity_type, title, duration_minutes, completed_at, date, metadata)`)
	completed := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	activity := entity.Activity{Owner: ownerID, ActivityType: entity.ActivityWork, Title: "Work/Study Block",
		DurationMinutes: 60, CompletedAt: completed}
	aid := uuid.New()
	t.Run("created with derived date", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, "work", "Work/Study Block", 60, completed, today, []byte(`{}`)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(aid))
		stored, err := repo.Create(ctx, &activity)
		require.NoError(t, err)
		assert.Equal(t, aid, stored.ID)
		assert.Equal(t, today, stored.Date)
		assert.Equal(t, map[string]any{}, stored.Metadata)
		assert.Nil(t, activity.Metadata)
	})
	t.Run("metadata encoded", func(t *testing.T) {
		withMeta := activity
		withMeta.Metadata = map[string]any{"source": "timer"}
		mock.ExpectQuery(query).
			WithArgs(ownerID, "work", "Work/Study Block", 60, completed, today, []byte(`{"source":"timer"}`)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(aid))
		_, err := repo.Create(ctx, &withMeta)
		assert.NoError(t, err)
	})
	t.Run("unknown owner", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, "work", "Work/Study Block", 60, completed, today, []byte(`{}`)).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &activity)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, "work", "Work/Study Block", 60, completed, today, []byte(`{}`)).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &activity)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, owner, activity_type, title, duration_minutes, completed_at, date, metadata
		FROM activities WHERE owner = $1 AND date >= $2 AND date <= $3 ORDER BY completed_at DESC;`)
	cols := []string{"id", "owner", "activity_type", "title", "duration_minutes", "completed_at", "date", "metadata"}
	from := today.AddDate(0, 0, -6)
	latest := entity.Activity{ID: uuid.New(), Owner: ownerID, ActivityType: entity.ActivityExercise, Title: "Exercise & Freshening",
		DurationMinutes: 60, CompletedAt: today.Add(6 * time.Hour), Date: today, Metadata: map[string]any{"source": "timer"}}
	older := entity.Activity{ID: uuid.New(), Owner: ownerID, ActivityType: entity.ActivityStudy, Title: "Interview Prep",
		DurationMinutes: 60, CompletedAt: from.Add(22 * time.Hour), Date: from}
	t.Run("listed", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, from, today).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(latest.ID, latest.Owner, latest.ActivityType, latest.Title, latest.DurationMinutes,
					latest.CompletedAt, latest.Date, []byte(`{"source":"timer"}`)).
				AddRow(older.ID, older.Owner, older.ActivityType, older.Title, older.DurationMinutes,
					older.CompletedAt, older.Date, []byte(nil)))
		activities, err := repo.ListRange(ctx, ownerID, from, today)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Activity{latest, older}, activities)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ownerID, from, today).WillReturnError(errors.New("db error"))
		_, err := repo.ListRange(ctx, ownerID, from, today)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteActivities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM activities WHERE owner = $1;`)
	mock.ExpectExec(query).WithArgs(ownerID).WillReturnResult(pgxmock.NewResult("DELETE", 12))
	assert.NoError(t, repo.DeleteAll(ctx, ownerID))
	mock.ExpectExec(query).WithArgs(ownerID).WillReturnError(errors.New("db error"))
	assert.ErrorIs(t, repo.DeleteAll(ctx, ownerID), errorvalues.ErrTransientStore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
