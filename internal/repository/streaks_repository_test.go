package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var streakCols = []string{"id", "owner", "streak_type", "current_streak", "longest_streak", "last_activity_date"}

func TestRecordCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStreaksRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, owner, streak_type, current_streak, longest_streak, last_activity_date FROM update_streak($1, $2, $3);`)
	day := today
	streak := entity.Streak{ID: uuid.New(), Owner: ownerID, StreakType: entity.StreakExercise,
		CurrentStreak: 3, LongestStreak: 5, LastActivityDate: &day}
	t.Run("advanced", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, entity.StreakExercise, today).
			WillReturnRows(pgxmock.NewRows(streakCols).AddRow(streak.ID, streak.Owner, streak.StreakType,
				streak.CurrentStreak, streak.LongestStreak, streak.LastActivityDate))
		res, err := repo.RecordCompletion(ctx, ownerID, entity.StreakExercise, today)
		assert.NoError(t, err)
		assert.Equal(t, streak, *res)
	})
	t.Run("unknown owner", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, entity.StreakExercise, today).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.RecordCompletion(ctx, ownerID, entity.StreakExercise, today)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID, entity.StreakExercise, today).
			WillReturnError(errors.New("db error"))
		_, err := repo.RecordCompletion(ctx, ownerID, entity.StreakExercise, today)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStreaks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStreaksRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, owner, streak_type, current_streak, longest_streak, last_activity_date FROM streaks WHERE owner = $1 ORDER BY streak_type;`)
	day := today
	daily := entity.Streak{ID: uuid.New(), Owner: ownerID, StreakType: entity.StreakDailyCompletion,
		CurrentStreak: 2, LongestStreak: 2, LastActivityDate: &day}
	exercise := entity.Streak{ID: uuid.New(), Owner: ownerID, StreakType: entity.StreakExercise}
	t.Run("listed", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(streakCols).
				AddRow(daily.ID, daily.Owner, daily.StreakType, daily.CurrentStreak, daily.LongestStreak, daily.LastActivityDate).
				AddRow(exercise.ID, exercise.Owner, exercise.StreakType, 0, 0, exercise.LastActivityDate))
		streaks, err := repo.ListByOwner(ctx, ownerID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Streak{daily, exercise}, streaks)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ownerID).WillReturnError(errors.New("db error"))
		_, err := repo.ListByOwner(ctx, ownerID)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetStreaks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStreaksRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE streaks SET current_streak = 0, longest_streak = 0, last_activity_date = NULL WHERE owner = $1;`)
	mock.ExpectExec(query).WithArgs(ownerID).WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	assert.NoError(t, repo.ResetAll(ctx, ownerID))
	mock.ExpectExec(query).WithArgs(ownerID).WillReturnError(errors.New("db error"))
	assert.ErrorIs(t, repo.ResetAll(ctx, ownerID), errorvalues.ErrTransientStore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
