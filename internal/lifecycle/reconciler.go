package lifecycle

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is the spacing between reconciliation passes.
const DefaultInterval = 60 * time.Second

// ReconcilerConfig tunes a Reconciler. The zero value gives the default
// interval and the wall clock.
type ReconcilerConfig struct {
	Interval time.Duration
	Now      func() time.Time
	// OnChange runs after an offer's active flag is flipped in the store,
	// so view projections can be recomputed.
	OnChange func()
}

// Reconciler periodically sweeps the store and deactivates offers whose
// validity window closed while they were still active. Deactivation requests
// within a pass are independent and unordered; a failed request leaves the
// offer flagged in the store and the next tick retries it. Deactivation is
// idempotent on the backend, so a newer pass overlapping an older one's
// in-flight requests is harmless.
type Reconciler struct {
	store    *Store
	source   Source
	interval time.Duration
	now      func() time.Time
	onChange func()

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewReconciler(store *Store, source Source, cfg ReconcilerConfig) *Reconciler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Reconciler{
		store:    store,
		source:   source,
		interval: cfg.Interval,
		now:      cfg.Now,
		onChange: cfg.OnChange,
	}
}

// Start launches the reconciliation loop: one pass immediately, then one per
// interval until Stop is called or ctx is cancelled. Calling Start on a
// running reconciler is a no-op.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run(ctx, stop)
}

func (r *Reconciler) run(ctx context.Context, stop <-chan struct{}) {
	defer r.wg.Done()

	r.Pass(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Pass(ctx)
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the loop and waits for in-flight deactivation requests. It is
// idempotent.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	r.mu.Unlock()
	r.wg.Wait()
}

// Pass evaluates every offer in the store once and fires one deactivation
// request per expired offer, without waiting for siblings. It returns the
// number of requests issued.
func (r *Reconciler) Pass(ctx context.Context) int {
	now := r.now()
	issued := 0
	for _, o := range r.store.All() {
		if !IsExpired(o, now) {
			continue
		}
		issued++
		id := o.ID.String()
		name := o.Name
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			if _, err := r.source.Deactivate(ctx, id); err != nil {
				// Local state stays untouched; the offer is still
				// active and expired, so the next tick retries.
				log.Printf("lifecycle: deactivate offer %s (%q): %v", id, name, err)
				return
			}
			if r.store.SetActive(id, false) && r.onChange != nil {
				r.onChange()
			}
		}()
	}
	return issued
}
