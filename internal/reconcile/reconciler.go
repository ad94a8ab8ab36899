// Package reconcile keeps owner caches converged with the store: every change
// notification for an owner's table triggers a full refetch of that table.
package reconcile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/observability"
	"github.com/limbo/healthydev/internal/repository"
)

// Refresher is an owner cache that can be refetched wholesale and dropped.
type Refresher interface {
	Refresh(ctx context.Context, owner uuid.UUID) error
	Evict(owner uuid.UUID)
}

// IdentityProvider yields the owner currently signed in. Changes fires whenever
// that may have changed and is closed when the provider goes away.
type IdentityProvider interface {
	CurrentUser() (uuid.UUID, bool)
	Changes() <-chan struct{}
}

type attachment struct {
	refs   int
	cancel context.CancelFunc
	unsubs []func()
	wg     sync.WaitGroup
}

type Reconciler struct {
	feed       repository.ChangeFeedI
	refreshers map[string]Refresher
	logger     *slog.Logger

	mu     sync.Mutex
	owners map[uuid.UUID]*attachment
}

func New(feed repository.ChangeFeedI, schedule, streaks, activities Refresher, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		feed: feed,
		refreshers: map[string]Refresher{
			repository.TableScheduleBlocks: schedule,
			repository.TableStreaks:        streaks,
			repository.TableActivities:     activities,
		},
		logger: logger.With(slog.String("component", "reconciler")),
		owners: make(map[uuid.UUID]*attachment),
	}
}

// Attach subscribes to owner's tables and fetches them once. Attachments are
// counted: the subscription ends and the caches are evicted when the last
// returned detach func runs.
func (r *Reconciler) Attach(ctx context.Context, owner uuid.UUID) func() {
	r.mu.Lock()
	a, ok := r.owners[owner]
	if ok {
		a.refs++
		r.mu.Unlock()
		return r.detacher(owner, a)
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	a = &attachment{refs: 1, cancel: cancel}
	for table, refresher := range r.refreshers {
		events, unsub := r.feed.Subscribe(table, owner)
		a.unsubs = append(a.unsubs, unsub)
		a.wg.Add(1)
		go r.follow(loopCtx, &a.wg, table, owner, refresher, events)
	}
	r.owners[owner] = a
	observability.SetActiveOwners(len(r.owners))
	r.mu.Unlock()

	r.logger.Info("attached owner", slog.String("owner", owner.String()))
	for table, refresher := range r.refreshers {
		r.refetch(ctx, table, owner, refresher)
	}
	return r.detacher(owner, a)
}

func (r *Reconciler) detacher(owner uuid.UUID, a *attachment) func() {
	var once sync.Once
	return func() {
		once.Do(func() { r.detach(owner, a) })
	}
}

func (r *Reconciler) detach(owner uuid.UUID, a *attachment) {
	r.mu.Lock()
	a.refs--
	if a.refs > 0 {
		r.mu.Unlock()
		return
	}
	delete(r.owners, owner)
	observability.SetActiveOwners(len(r.owners))
	a.cancel()
	for _, unsub := range a.unsubs {
		unsub()
	}
	r.mu.Unlock()

	a.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, reattached := r.owners[owner]; !reattached {
		for _, refresher := range r.refreshers {
			refresher.Evict(owner)
		}
	}
	r.logger.Info("detached owner", slog.String("owner", owner.String()))
}

func (r *Reconciler) follow(ctx context.Context, wg *sync.WaitGroup, table string, owner uuid.UUID, refresher Refresher, events <-chan repository.ChangeEvent) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			r.refetch(ctx, table, owner, refresher)
		}
	}
}

func (r *Reconciler) refetch(ctx context.Context, table string, owner uuid.UUID, refresher Refresher) {
	err := refresher.Refresh(ctx, owner)
	observability.RecordRefetch(table, err)
	if err != nil && ctx.Err() == nil {
		r.logger.Warn("refetch failed",
			slog.String("table", table),
			slog.String("owner", owner.String()),
			slog.String("error", err.Error()))
	}
}

// Attached reports whether owner currently has a live subscription.
func (r *Reconciler) Attached(owner uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.owners[owner]
	return ok
}

// Follow keeps exactly the signed-in owner of idp attached until ctx is done
// or idp closes its change channel.
func (r *Reconciler) Follow(ctx context.Context, idp IdentityProvider) {
	var (
		current uuid.UUID
		detach  func()
	)
	release := func() {
		if detach != nil {
			detach()
			detach, current = nil, uuid.Nil
		}
	}
	resync := func() {
		owner, ok := idp.CurrentUser()
		if ok && detach != nil && owner == current {
			return
		}
		release()
		if ok {
			detach, current = r.Attach(ctx, owner), owner
		}
	}

	defer release()
	resync()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-idp.Changes():
			if !ok {
				return
			}
			resync()
		}
	}
}
