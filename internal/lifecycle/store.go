package lifecycle

import (
	"sync"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// Store owns the canonical in-memory working set of offers for the lifetime
// of its host. Insertion order is preserved so filtered views render in store
// order. Safe for concurrent use; stored entries are never mutated in place,
// so snapshots handed out by All remain stable.
type Store struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*offer.Offer
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*offer.Offer)}
}

// Replace swaps the whole working set, as after a refresh or a search
// response. The caller must not mutate the given offers afterwards.
func (s *Store) Replace(offers []*offer.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.byID = make(map[string]*offer.Offer, len(offers))
	for _, o := range offers {
		id := o.ID.String()
		if _, seen := s.byID[id]; !seen {
			s.order = append(s.order, id)
		}
		s.byID[id] = o
	}
}

// Upsert inserts or overwrites a single offer, appending newcomers at the end.
func (s *Store) Upsert(o *offer.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := o.ID.String()
	if _, seen := s.byID[id]; !seen {
		s.order = append(s.order, id)
	}
	s.byID[id] = o
}

// Remove drops an offer from the working set. Only explicit deletion removes
// an offer; expiration never does.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetActive flips the active flag of one offer, replacing the stored entry
// with a copy so existing snapshots stay untouched. Reports whether the offer
// was present.
func (s *Store) SetActive(id string, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return false
	}
	cp := *o
	cp.Active = active
	s.byID[id] = &cp
	return true
}

// Get returns the offer with the given id, if present.
func (s *Store) Get(id string) (*offer.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id]
	return o, ok
}

// All returns a snapshot of the working set in store order.
func (s *Store) All() []*offer.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	offers := make([]*offer.Offer, 0, len(s.order))
	for _, id := range s.order {
		offers = append(offers, s.byID[id])
	}
	return offers
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Clear empties the working set, as after an authentication failure.
func (s *Store) Clear() {
	s.Replace(nil)
}
