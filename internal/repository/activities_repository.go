package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	mustPing(conn, "activitiesRepo")
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error) {
	stored := *activity
	if stored.CompletedAt.IsZero() {
		stored.CompletedAt = time.Now()
	}
	if stored.Date.IsZero() {
		stored.Date = entity.Date(stored.CompletedAt)
	}
	if stored.Metadata == nil {
		stored.Metadata = map[string]any{}
	}
	metadata, err := sonic.Marshal(stored.Metadata)
	if err != nil {
		return nil, errors.New("encoding activity metadata error: " + err.Error())
	}
	err = ar.conn.QueryRow(ctx, `INSERT INTO activities (owner, activity_type, title, duration_minutes, completed_at, date, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		stored.Owner, stored.ActivityType, stored.Title, stored.DurationMinutes, stored.CompletedAt, stored.Date, metadata,
	).Scan(&stored.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errorvalues.NewStoreError("creating activity", err)
	}
	return &stored, nil
}

func (ar *ActivitiesRepository) ListRange(ctx context.Context, owner uuid.UUID, from, to time.Time) ([]entity.Activity, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, owner, activity_type, title, duration_minutes, completed_at, date, metadata
		FROM activities WHERE owner = $1 AND date >= $2 AND date <= $3 ORDER BY completed_at DESC;`,
		owner, from, to,
	)
	if err != nil {
		return nil, errorvalues.NewStoreError("listing activities", err)
	}
	defer rows.Close()
	activities := make([]entity.Activity, 0, 16)
	for rows.Next() {
		var (
			a        entity.Activity
			metadata []byte
		)
		err = rows.Scan(&a.ID, &a.Owner, &a.ActivityType, &a.Title, &a.DurationMinutes, &a.CompletedAt, &a.Date, &metadata)
		if err != nil {
			return nil, errorvalues.NewStoreError("scanning activity", err)
		}
		if len(metadata) > 0 {
			if err = sonic.Unmarshal(metadata, &a.Metadata); err != nil {
				return nil, errors.New("decoding activity metadata error: " + err.Error())
			}
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStoreError("iterating activities", err)
	}
	return activities, nil
}

func (ar *ActivitiesRepository) DeleteAll(ctx context.Context, owner uuid.UUID) error {
	_, err := ar.conn.Exec(ctx, `DELETE FROM activities WHERE owner = $1;`, owner)
	if err != nil {
		return errorvalues.NewStoreError("deleting activities", err)
	}
	return nil
}
