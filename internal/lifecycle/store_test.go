package lifecycle

import (
	"testing"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplacePreservesOrder(t *testing.T) {
	s := NewStore()
	a := newOffer("a", true, nil, nil)
	b := newOffer("b", false, nil, nil)
	c := newOffer("c", true, nil, nil)

	s.Replace([]*offer.Offer{a, b, c})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, names(all))
	assert.Equal(t, 3, s.Len())
}

func TestStoreSetActiveKeepsSnapshotsStable(t *testing.T) {
	s := NewStore()
	a := newOffer("a", true, nil, nil)
	s.Replace([]*offer.Offer{a})

	before := s.All()
	require.True(t, before[0].Active)

	ok := s.SetActive(a.ID.String(), false)
	require.True(t, ok)

	// The earlier snapshot must not change under the reader's feet.
	assert.True(t, before[0].Active)

	after, found := s.Get(a.ID.String())
	require.True(t, found)
	assert.False(t, after.Active)
}

func TestStoreSetActiveUnknownID(t *testing.T) {
	s := NewStore()
	assert.False(t, s.SetActive("missing", false))
}

func TestStoreUpsertAndRemove(t *testing.T) {
	s := NewStore()
	a := newOffer("a", true, nil, nil)
	b := newOffer("b", true, nil, nil)
	s.Replace([]*offer.Offer{a, b})

	c := newOffer("c", true, nil, nil)
	s.Upsert(c)
	assert.Equal(t, []string{"a", "b", "c"}, names(s.All()))

	// Upserting an existing id overwrites in place, keeping its position.
	a2 := *a
	a2.Name = "a2"
	s.Upsert(&a2)
	assert.Equal(t, []string{"a2", "b", "c"}, names(s.All()))

	s.Remove(b.ID.String())
	assert.Equal(t, []string{"a2", "c"}, names(s.All()))

	s.Clear()
	assert.Equal(t, 0, s.Len())
}
