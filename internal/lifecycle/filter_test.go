package lifecycle

import (
	"testing"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
)

func TestVisibleOffers(t *testing.T) {
	offers := []*offer.Offer{
		newOffer("active-1", true, nil, nil),
		newOffer("inactive", false, nil, nil),
		newOffer("active-2", true, nil, nil),
	}

	t.Run("admin-level roles see everything", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleAdmin, user.RoleSupervisorCocina, user.RoleSupervisorVentas} {
			assert.Equal(t, names(offers), names(VisibleOffers(offers, role)), "role %s", role)
		}
	})

	t.Run("unprivileged roles see active only, in store order", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleCliente, user.RoleRepartidor} {
			assert.Equal(t, []string{"active-1", "active-2"}, names(VisibleOffers(offers, role)), "role %s", role)
		}
	})

	t.Run("cliente view is a subset of the admin view", func(t *testing.T) {
		adminSeen := make(map[string]bool)
		for _, o := range VisibleOffers(offers, user.RoleAdmin) {
			adminSeen[o.ID.String()] = true
		}
		for _, o := range VisibleOffers(offers, user.RoleCliente) {
			assert.True(t, adminSeen[o.ID.String()])
			assert.True(t, o.Active)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, VisibleOffers(nil, user.RoleCliente))
	})
}
