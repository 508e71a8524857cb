package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// fakeSource records calls and serves canned responses. Search calls can be
// made to block on a per-term gate so tests can order overlapping requests.
type fakeSource struct {
	mu sync.Mutex

	listOffers   []*offer.Offer
	listErr      error
	searchOffers map[string][]*offer.Offer
	searchErr    error
	gates        map[string]chan struct{}

	deactivateErr map[string]error

	listCalls   int
	searchCalls []string
	deactivated []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		searchOffers:  make(map[string][]*offer.Offer),
		gates:         make(map[string]chan struct{}),
		deactivateErr: make(map[string]error),
	}
}

func (f *fakeSource) List(ctx context.Context) ([]*offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.listOffers, f.listErr
}

func (f *fakeSource) Search(ctx context.Context, term string) ([]*offer.Offer, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, term)
	gate := f.gates[term]
	offers := f.searchOffers[term]
	err := f.searchErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return offers, err
}

func (f *fakeSource) Deactivate(ctx context.Context, id string) (*offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deactivateErr[id]; err != nil {
		return nil, err
	}
	f.deactivated = append(f.deactivated, id)
	return nil, nil
}

func (f *fakeSource) deactivations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deactivated...)
}

func (f *fakeSource) searched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchCalls...)
}

func (f *fakeSource) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func newOffer(name string, active bool, validFrom, validTo *time.Time) *offer.Offer {
	return &offer.Offer{
		ID:        uuid.New(),
		Name:      name,
		Active:    active,
		ValidFrom: validFrom,
		ValidTo:   validTo,
	}
}

func tp(t time.Time) *time.Time { return &t }

func names(offers []*offer.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.Name)
	}
	return out
}
