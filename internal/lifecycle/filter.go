package lifecycle

import (
	"github.com/lacarta/lacarta-backend/internal/modules/offer"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
)

// VisibleOffers projects the working set into the subset the given role may
// see: admin-level roles see everything, everyone else only active offers.
// Store order is preserved. The projection is recomputed on every call —
// caching it across store mutations would expose stale rows to the wrong
// role.
func VisibleOffers(offers []*offer.Offer, role user.Role) []*offer.Offer {
	if role.AdminLevel() {
		return offers
	}
	visible := make([]*offer.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Active {
			visible = append(visible, o)
		}
	}
	return visible
}
