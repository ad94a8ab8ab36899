package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/pkg/httputil"
)

const keepAliveInterval = 30 * time.Second

// sessionIdentity reports uid as signed in until the token expires.
// Changes is closed on expiry.
type sessionIdentity struct {
	uid     uuid.UUID
	expired chan struct{}
	once    sync.Once
	timer   *time.Timer
}

func newSessionIdentity(uid uuid.UUID, expiresAt time.Time, hasExpiry bool) *sessionIdentity {
	si := &sessionIdentity{uid: uid, expired: make(chan struct{})}
	if hasExpiry {
		si.timer = time.AfterFunc(time.Until(expiresAt), si.expire)
	}
	return si
}

func (si *sessionIdentity) CurrentUser() (uuid.UUID, bool) {
	select {
	case <-si.expired:
		return uuid.Nil, false
	default:
		return si.uid, true
	}
}

func (si *sessionIdentity) Changes() <-chan struct{} {
	return si.expired
}

func (si *sessionIdentity) expire() {
	si.once.Do(func() { close(si.expired) })
}

func (si *sessionIdentity) stop() {
	if si.timer != nil {
		si.timer.Stop()
	}
}

// Events streams the caller's schedule, streaks and activities as they change.
// While at least one stream of an owner is open, remote changes made by other
// clients are reconciled into the served state.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("events error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stream, err := httputil.NewEventStream(w)
	if err != nil {
		logger.Error("events error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}
	changes, stopListening := s.changes.Listen(uid)
	defer stopListening()

	expiresAt, hasExpiry := GetTokenExpiry(r)
	identity := newSessionIdentity(uid, expiresAt, hasExpiry)
	defer identity.stop()

	ctx, cancel := context.WithCancel(r.Context())
	followed := make(chan struct{})
	go func() {
		defer close(followed)
		s.reconciler.Follow(ctx, identity)
	}()
	defer func() {
		cancel()
		<-followed
	}()
	logger.Info("event stream opened")

	for _, kind := range []events.Kind{events.KindSchedule, events.KindStreaks, events.KindActivities} {
		if err = s.sendSnapshot(stream, uid, kind); err != nil {
			logger.Warn("event stream write failed", slog.String("error", err.Error()))
			return
		}
	}
	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("event stream closed")
			return
		case <-identity.Changes():
			stream.Send("session_expired", map[string]any{"uid": uid.String()})
			logger.Info("event stream closed: token expired")
			return
		case <-keepAlive.C:
			err = stream.Send("ping", map[string]any{"at": time.Now().UTC()})
		case change, ok := <-changes:
			if !ok {
				return
			}
			err = s.sendSnapshot(stream, uid, change.Kind)
		}
		if err != nil {
			logger.Warn("event stream write failed", slog.String("error", err.Error()))
			return
		}
	}
}

// sendSnapshot writes the cached state of kind. Nothing is written while the
// state has not been loaded yet.
func (s *Server) sendSnapshot(stream *httputil.EventStream, uid uuid.UUID, kind events.Kind) error {
	var (
		data any
		ok   bool
	)
	switch kind {
	case events.KindSchedule:
		data, ok = s.scheduleService.Blocks(uid)
	case events.KindStreaks:
		data, ok = s.streakService.Cached(uid)
	case events.KindActivities:
		data, ok = s.activityService.Activities(uid)
	}
	if !ok {
		return nil
	}
	return stream.Send(string(kind), data)
}
