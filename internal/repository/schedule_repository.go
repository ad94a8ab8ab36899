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

type ScheduleRepository struct {
	conn PgConnection
}

func NewScheduleRepoWithConn(conn PgConnection) *ScheduleRepository {
	mustPing(conn, "scheduleRepo")
	return &ScheduleRepository{
		conn: conn,
	}
}

const blockColumns = `id, owner, scheduled_date, title, description, time_range, type, status`

func scanBlock(row pgx.Row) (entity.ScheduleBlock, error) {
	var (
		b            entity.ScheduleBlock
		kind, status string
	)
	err := row.Scan(&b.ID, &b.Owner, &b.ScheduledDate, &b.Title, &b.Description, &b.TimeRange, &kind, &status)
	b.Type = entity.BlockType(kind)
	b.Status = entity.BlockStatus(status)
	return b, err
}

func (sr *ScheduleRepository) ListByDate(ctx context.Context, owner uuid.UUID, date time.Time) ([]entity.ScheduleBlock, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+blockColumns+` FROM schedule_blocks WHERE owner = $1 AND scheduled_date = $2 ORDER BY seq;`,
		owner, date,
	)
	if err != nil {
		return nil, errorvalues.NewStoreError("listing schedule blocks", err)
	}
	defer rows.Close()
	blocks := make([]entity.ScheduleBlock, 0, 8)
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, errorvalues.NewStoreError("scanning schedule block", err)
		}
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStoreError("iterating schedule blocks", err)
	}
	return blocks, nil
}

// SeedIfEmpty serializes seeders of the same (owner, date) on an advisory lock,
// so the existence check and the insert observe each other.
func (sr *ScheduleRepository) SeedIfEmpty(ctx context.Context, owner uuid.UUID, date time.Time, blocks []entity.ScheduleBlock) (seeded bool, err error) {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return false, errorvalues.NewStoreError("starting seed transaction", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, seedLockKey(owner, date)); err != nil {
		return false, errorvalues.NewStoreError("locking seed", err)
	}
	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schedule_blocks WHERE owner = $1 AND scheduled_date = $2);`, owner, date).Scan(&exists)
	if err != nil {
		return false, errorvalues.NewStoreError("checking existing schedule", err)
	}
	if exists {
		if err = tx.Commit(ctx); err != nil {
			return false, errorvalues.NewStoreError("committing seed", err)
		}
		return false, nil
	}
	n := len(blocks)
	titles, descs, ranges, kinds, statuses := make([]string, n), make([]string, n), make([]string, n), make([]string, n), make([]string, n)
	for i, b := range blocks {
		titles[i], descs[i], ranges[i] = b.Title, b.Description, b.TimeRange
		kinds[i], statuses[i] = string(b.Type), string(b.Status)
	}
	_, err = tx.Exec(ctx, `INSERT INTO schedule_blocks (owner, scheduled_date, title, description, time_range, type, status)
		SELECT $1, $2, t.title, t.description, t.time_range, t.type, t.status
		FROM unnest($3::text[], $4::text[], $5::text[], $6::text[], $7::text[]) WITH ORDINALITY AS t(title, description, time_range, type, status, ord)
		ORDER BY t.ord;`,
		owner, date, titles, descs, ranges, kinds, statuses,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return false, errorvalues.ErrUserNotFound
		}
		return false, errorvalues.NewStoreError("inserting default schedule", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return false, errorvalues.NewStoreError("committing seed", err)
	}
	return true, nil
}

func seedLockKey(owner uuid.UUID, date time.Time) string {
	return "schedule_seed/" + owner.String() + "/" + date.Format(time.DateOnly)
}

func (sr *ScheduleRepository) Create(ctx context.Context, block *entity.ScheduleBlock) (*entity.ScheduleBlock, error) {
	stored := *block
	err := sr.conn.QueryRow(ctx, `INSERT INTO schedule_blocks (owner, scheduled_date, title, description, time_range, type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		block.Owner, block.ScheduledDate, block.Title, block.Description, block.TimeRange, string(block.Type), string(block.Status),
	).Scan(&stored.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			// Check violation
			case "23514":
				return nil, errorvalues.ErrValidation
			}
		}
		return nil, errorvalues.NewStoreError("creating schedule block", err)
	}
	return &stored, nil
}

func (sr *ScheduleRepository) UpdateStatus(ctx context.Context, id, owner uuid.UUID, status entity.BlockStatus, from []entity.BlockStatus) (*entity.ScheduleBlock, error) {
	sources := make([]string, len(from))
	for i, s := range from {
		sources[i] = string(s)
	}
	row := sr.conn.QueryRow(ctx, `UPDATE schedule_blocks SET status = $1 WHERE id = $2 AND owner = $3 AND status = ANY($4)
		RETURNING `+blockColumns+`;`,
		string(status), id, owner, sources,
	)
	b, err := scanBlock(row)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errorvalues.NewStoreError("updating block status", err)
	}
	var current string
	err = sr.conn.QueryRow(ctx, `SELECT status FROM schedule_blocks WHERE id = $1 AND owner = $2;`, id, owner).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBlockNotFound
		}
		return nil, errorvalues.NewStoreError("reading block status", err)
	}
	return nil, errorvalues.ErrInvalidTransition
}

func (sr *ScheduleRepository) ResetStatuses(ctx context.Context, owner uuid.UUID, date time.Time) error {
	_, err := sr.conn.Exec(ctx, `UPDATE schedule_blocks SET status = 'upcoming' WHERE owner = $1 AND scheduled_date = $2;`, owner, date)
	if err != nil {
		return errorvalues.NewStoreError("resetting block statuses", err)
	}
	return nil
}
