package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshWorker reloads the input snapshot on a cron schedule and publishes
// the recomputed derived set. Overlapping runs are skipped rather than
// queued; a run that loses the publish race simply discards its result.
type RefreshWorker struct {
	snapshots *SnapshotService
	dashboard *DashboardService
	schedule  string
	cron      *cron.Cron

	// onRefresh, when set, observes each completed refresh (for metrics).
	onRefresh func(duration time.Duration, published bool)
}

// NewRefreshWorker creates a worker with a standard 5-field cron schedule,
// e.g. "*/5 * * * *".
func NewRefreshWorker(snapshots *SnapshotService, dashboard *DashboardService, schedule string) *RefreshWorker {
	return &RefreshWorker{
		snapshots: snapshots,
		dashboard: dashboard,
		schedule:  schedule,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

// OnRefresh registers a completion observer. Call before Start.
func (w *RefreshWorker) OnRefresh(fn func(duration time.Duration, published bool)) {
	w.onRefresh = fn
}

// Start runs one refresh immediately so the API has data, then begins the
// scheduled loop. The initial refresh error is returned; scheduled refresh
// errors are logged and retried on the next tick.
func (w *RefreshWorker) Start(ctx context.Context) error {
	if err := w.RefreshOnce(ctx); err != nil {
		return err
	}

	_, err := w.cron.AddFunc(w.schedule, func() {
		if err := w.RefreshOnce(ctx); err != nil {
			log.Printf("refresh-worker: refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("refresh-worker: starting (schedule=%q)", w.schedule)
	w.cron.Start()
	return nil
}

// Stop halts the schedule and waits for any running refresh to finish.
func (w *RefreshWorker) Stop() {
	<-w.cron.Stop().Done()
	log.Println("refresh-worker: stopped")
}

// RefreshOnce loads a snapshot, recomputes every derived structure, and
// publishes the result unless a newer snapshot won the race meanwhile.
func (w *RefreshWorker) RefreshOnce(ctx context.Context) error {
	start := time.Now()

	snap, err := w.snapshots.Load(ctx)
	if err != nil {
		return err
	}

	derived := w.dashboard.Compute(snap)
	published := w.dashboard.Swap(derived)

	elapsed := time.Since(start)
	if published {
		log.Printf("refresh-worker: refresh complete: %d creators, %d videos, version=%s (%s)",
			len(snap.Creators), len(snap.Videos), derived.Version, elapsed.Round(time.Millisecond))
	} else {
		log.Printf("refresh-worker: stale refresh discarded (version=%s)", derived.Version)
	}

	if w.onRefresh != nil {
		w.onRefresh(elapsed, published)
	}
	return nil
}
