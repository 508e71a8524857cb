package lifecycle

import (
	"context"
	"time"
)

// EngineConfig tunes an Engine.
type EngineConfig struct {
	Interval time.Duration
	Window   time.Duration
	Now      func() time.Time
	OnChange func()
	OnError  func(error)
}

// Engine owns one store, one reconciler, and one search stream, tied together
// with a single Start/Stop pair. Stop is idempotent; forgetting to call it
// leaks the reconciler's timer and keeps background requests running.
type Engine struct {
	Store      *Store
	Reconciler *Reconciler
	Searcher   *Searcher

	source   Source
	onChange func()
}

func NewEngine(source Source, cfg EngineConfig) *Engine {
	store := NewStore()
	rec := NewReconciler(store, source, ReconcilerConfig{
		Interval: cfg.Interval,
		Now:      cfg.Now,
		OnChange: cfg.OnChange,
	})
	searcher := NewSearcher(store, source, SearcherConfig{
		Window:    cfg.Window,
		OnChange:  cfg.OnChange,
		OnError:   cfg.OnError,
		Reconcile: func(ctx context.Context) { rec.Pass(ctx) },
	})
	return &Engine{
		Store:      store,
		Reconciler: rec,
		Searcher:   searcher,
		source:     source,
		onChange:   cfg.OnChange,
	}
}

// Refresh replaces the working set from the source. On failure the store is
// emptied and the error returned; there is no automatic retry.
func (e *Engine) Refresh(ctx context.Context) error {
	offers, err := e.source.List(ctx)
	if err != nil {
		e.Store.Clear()
		if e.onChange != nil {
			e.onChange()
		}
		return err
	}
	e.Store.Replace(offers)
	if e.onChange != nil {
		e.onChange()
	}
	return nil
}

// Start loads the working set and launches the reconciler and the search
// stream. A failed initial refresh still starts both; the next search or
// manual refresh repopulates the store.
func (e *Engine) Start(ctx context.Context) error {
	err := e.Refresh(ctx)
	e.Reconciler.Start(ctx)
	e.Searcher.Start(ctx)
	return err
}

// Stop tears both loops down and waits for in-flight requests. Idempotent.
func (e *Engine) Stop() {
	e.Searcher.Stop()
	e.Reconciler.Stop()
}
