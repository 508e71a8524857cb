package lifecycle

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// DefaultDebounceWindow is how long a burst of queries must go quiet before
// one is dispatched.
const DefaultDebounceWindow = 300 * time.Millisecond

// SearcherConfig tunes a Searcher. The zero value gives the default window.
type SearcherConfig struct {
	Window time.Duration
	// OnChange runs after the store has been replaced with a response.
	OnChange func()
	// OnError receives list/search failures after the store is emptied.
	OnError func(error)
	// Reconcile runs an immediate reconciliation pass after a successful
	// replace, so fresh results never show stale expired offers.
	Reconcile func(context.Context)
}

// Searcher turns a raw query stream into a debounced, de-duplicated request
// stream against the source. Only the latest in-flight request wins: a newer
// query's response supersedes an older one, and the store is replaced
// wholesale with the winner.
type Searcher struct {
	store     *Store
	source    Source
	window    time.Duration
	onChange  func()
	onError   func(error)
	reconcile func(context.Context)

	queries chan string
	gen     uint64

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewSearcher(store *Store, source Source, cfg SearcherConfig) *Searcher {
	if cfg.Window <= 0 {
		cfg.Window = DefaultDebounceWindow
	}
	return &Searcher{
		store:     store,
		source:    source,
		window:    cfg.Window,
		onChange:  cfg.OnChange,
		onError:   cfg.OnError,
		reconcile: cfg.Reconcile,
		queries:   make(chan string, 64),
	}
}

// Submit feeds one raw query into the stream. Blank input means "fetch all
// offers". Queries submitted before Start or after Stop are absorbed by the
// channel buffer and dropped.
func (s *Searcher) Submit(query string) {
	select {
	case s.queries <- query:
	default:
		// Buffer full: shed the oldest queued query, the newest must win.
		select {
		case <-s.queries:
		default:
		}
		select {
		case s.queries <- query:
		default:
		}
	}
}

// Start launches the debounce loop. Calling Start on a running searcher is a
// no-op.
func (s *Searcher) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx, stop)
}

// Stop halts the loop and waits for any in-flight request. Idempotent.
func (s *Searcher) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Searcher) run(ctx context.Context, stop <-chan struct{}) {
	defer s.wg.Done()

	var (
		timer          *time.Timer
		timerC         <-chan time.Time
		pending        string
		havePending    bool
		dispatched     bool
		lastDispatched string
	)
	for {
		select {
		case q := <-s.queries:
			pending, havePending = q, true
			if timer == nil {
				timer = time.NewTimer(s.window)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(s.window)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			if !havePending {
				continue
			}
			havePending = false
			term := strings.TrimSpace(pending)
			if dispatched && term == lastDispatched {
				continue
			}
			dispatched = true
			lastDispatched = term
			s.dispatch(ctx, term)
		case <-stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (s *Searcher) dispatch(ctx context.Context, term string) {
	gen := atomic.AddUint64(&s.gen, 1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var (
			offers []*offer.Offer
			err    error
		)
		if term == "" {
			offers, err = s.source.List(ctx)
		} else {
			offers, err = s.source.Search(ctx, term)
		}

		if atomic.LoadUint64(&s.gen) != gen {
			// A newer query went out; this response lost.
			return
		}
		if err != nil {
			s.store.Clear()
			if s.onChange != nil {
				s.onChange()
			}
			if s.onError != nil {
				s.onError(err)
			}
			return
		}
		s.store.Replace(offers)
		if s.onChange != nil {
			s.onChange()
		}
		if s.reconcile != nil {
			s.reconcile(ctx)
		}
	}()
}
