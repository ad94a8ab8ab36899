package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

const streakColumns = `id, owner, streak_type, current_streak, longest_streak, last_activity_date`

func scanStreak(row pgx.Row) (entity.Streak, error) {
	var s entity.Streak
	err := row.Scan(&s.ID, &s.Owner, &s.StreakType, &s.CurrentStreak, &s.LongestStreak, &s.LastActivityDate)
	return s, err
}

// RecordCompletion delegates to the update_streak database function; the upsert
// and the day arithmetic run as one statement under the row lock.
func (sr *StreaksRepository) RecordCompletion(ctx context.Context, owner uuid.UUID, streakType string, today time.Time) (*entity.Streak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM update_streak($1, $2, $3);`, owner, streakType, today)
	s, err := scanStreak(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errorvalues.NewStoreError("updating streak", err)
	}
	return &s, nil
}

func (sr *StreaksRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]entity.Streak, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+streakColumns+` FROM streaks WHERE owner = $1 ORDER BY streak_type;`, owner)
	if err != nil {
		return nil, errorvalues.NewStoreError("listing streaks", err)
	}
	defer rows.Close()
	streaks := make([]entity.Streak, 0, 2)
	for rows.Next() {
		s, err := scanStreak(rows)
		if err != nil {
			return nil, errorvalues.NewStoreError("scanning streak", err)
		}
		streaks = append(streaks, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStoreError("iterating streaks", err)
	}
	return streaks, nil
}

func (sr *StreaksRepository) ResetAll(ctx context.Context, owner uuid.UUID) error {
	_, err := sr.conn.Exec(ctx, `UPDATE streaks SET current_streak = 0, longest_streak = 0, last_activity_date = NULL WHERE owner = $1;`, owner)
	if err != nil {
		return errorvalues.NewStoreError("resetting streaks", err)
	}
	return nil
}
