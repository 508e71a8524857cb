package lifecycle

import (
	"fmt"
	"time"

	"github.com/lacarta/lacarta-backend/internal/modules/offer"
)

// NearExpirationWindow is how close to its closing date an offer must be to
// count as near expiration.
const NearExpirationWindow = 24 * time.Hour

// Sentinel values returned by RemainingTime.
const (
	RemainingNA      = "N/A"
	RemainingExpired = "Expirada"
)

// IsExpired reports whether the offer is still marked active past the end of
// its validity window. Inactive offers are never expired: expiration flips an
// offer exactly once.
func IsExpired(o *offer.Offer, now time.Time) bool {
	return o.Active && o.ValidTo != nil && now.After(*o.ValidTo)
}

// IsVigente reports whether now falls inside the offer's validity window.
// Vigencia is purely date-based and independent of the active flag, so an
// offer can be previewed before activation.
func IsVigente(o *offer.Offer, now time.Time) bool {
	if o.ValidFrom == nil || o.ValidTo == nil {
		return false
	}
	return !now.Before(*o.ValidFrom) && !now.After(*o.ValidTo)
}

// IsNearExpiration reports whether an active offer closes within
// NearExpirationWindow.
func IsNearExpiration(o *offer.Offer, now time.Time) bool {
	if !o.Active || o.ValidTo == nil {
		return false
	}
	left := o.ValidTo.Sub(now)
	return left > 0 && left <= NearExpirationWindow
}

// RemainingTime renders how long the offer has left as a human-readable
// duration: "Nd Nh" while days remain, then "Nh Nm", then "Nm". Inactive
// offers and offers without a closing date report "N/A"; a closed window
// reports "Expirada".
func RemainingTime(o *offer.Offer, now time.Time) string {
	if !o.Active || o.ValidTo == nil {
		return RemainingNA
	}
	ms := o.ValidTo.Sub(now).Milliseconds()
	if ms <= 0 {
		return RemainingExpired
	}
	days := ms / 86_400_000
	hours := (ms % 86_400_000) / 3_600_000
	minutes := (ms % 3_600_000) / 60_000
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
