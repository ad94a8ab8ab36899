package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChangeChannel is the NOTIFY channel written by the table triggers.
const ChangeChannel = "healthydev_changes"

// OpResync is sent to every subscriber after the listener reconnects, since
// notifications raised while it was down are lost.
const OpResync = "RESYNC"

// PgChangeFeed listens on ChangeChannel over a dedicated pooled connection and
// fans notifications out to subscribers.
type PgChangeFeed struct {
	fanout
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPgChangeFeed(pool *pgxpool.Pool, logger *slog.Logger) *PgChangeFeed {
	if logger == nil {
		logger = slog.Default()
	}
	return &PgChangeFeed{
		pool:   pool,
		logger: logger.With(slog.String("component", "changefeed")),
	}
}

// Run blocks until ctx is done, reconnecting with exponential backoff.
func (f *PgChangeFeed) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0
	bo.MaxInterval = 30 * time.Second
	connected := false
	err := backoff.Retry(func() error {
		err := f.listen(ctx, func() {
			bo.Reset()
			if connected {
				f.broadcast(OpResync)
			}
			connected = true
		})
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		f.logger.Warn("change feed connection lost", slog.String("error", err.Error()))
		return err
	}, backoff.WithContext(bo, ctx))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (f *PgChangeFeed) listen(ctx context.Context, onListening func()) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return errors.New("acquiring listener connection error: " + err.Error())
	}
	defer func() {
		conn.Exec(context.Background(), "UNLISTEN *")
		conn.Release()
	}()
	if _, err = conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return errors.New("listen error: " + err.Error())
	}
	f.logger.Info("listening for changes", slog.String("channel", ChangeChannel))
	onListening()
	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return errors.New("waiting for notification error: " + err.Error())
		}
		f.handle(n.Payload)
	}
}

func (f *PgChangeFeed) handle(payload string) {
	var evt ChangeEvent
	if err := sonic.UnmarshalString(payload, &evt); err != nil {
		f.logger.Warn("dropping malformed change notification", slog.String("payload", payload), slog.String("error", err.Error()))
		return
	}
	f.dispatch(evt)
}
