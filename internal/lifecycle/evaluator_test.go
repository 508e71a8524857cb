package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		validTo *time.Time
		want    bool
	}{
		{"active past window", true, tp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), true},
		{"inactive past window", false, tp(now.Add(-time.Hour)), false},
		{"active inside window", true, tp(now.Add(time.Hour)), false},
		{"active exactly at close", true, tp(now), false},
		{"active without close date", true, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOffer("o", tt.active, nil, tt.validTo)
			assert.Equal(t, tt.want, IsExpired(o, now))
		})
	}
}

func TestIsVigenteIsDateOnly(t *testing.T) {
	from := tp(now.Add(-time.Hour))
	to := tp(now.Add(time.Hour))

	// Vigencia ignores the active flag: an offer can be previewed before
	// activation.
	assert.True(t, IsVigente(newOffer("on", true, from, to), now))
	assert.True(t, IsVigente(newOffer("off", false, from, to), now))

	assert.True(t, IsVigente(newOffer("edge", true, tp(now), tp(now)), now))
	assert.False(t, IsVigente(newOffer("future", true, tp(now.Add(time.Minute)), to), now))
	assert.False(t, IsVigente(newOffer("past", true, from, tp(now.Add(-time.Minute))), now))
	assert.False(t, IsVigente(newOffer("no window", true, nil, nil), now))
}

func TestIsNearExpiration(t *testing.T) {
	assert.True(t, IsNearExpiration(newOffer("5h", true, nil, tp(now.Add(5*time.Hour))), now))
	assert.True(t, IsNearExpiration(newOffer("24h", true, nil, tp(now.Add(24*time.Hour))), now))
	assert.False(t, IsNearExpiration(newOffer("25h", true, nil, tp(now.Add(25*time.Hour))), now))
	assert.False(t, IsNearExpiration(newOffer("closed", true, nil, tp(now)), now))
	assert.False(t, IsNearExpiration(newOffer("inactive", false, nil, tp(now.Add(time.Hour))), now))
	assert.False(t, IsNearExpiration(newOffer("no close", true, nil, nil), now))
}

func TestRemainingTime(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		validTo *time.Time
		want    string
	}{
		{"inactive", false, tp(now.Add(5 * time.Hour)), RemainingNA},
		{"no close date", true, nil, RemainingNA},
		{"already closed", true, tp(now.Add(-24 * time.Hour)), RemainingExpired},
		{"closes exactly now", true, tp(now), RemainingExpired},
		{"days left", true, tp(now.Add(49 * time.Hour)), "2d 1h"},
		{"hours left", true, tp(now.Add(5 * time.Hour)), "5h 0m"},
		{"hours and minutes", true, tp(now.Add(90 * time.Minute)), "1h 30m"},
		{"minutes only", true, tp(now.Add(45 * time.Minute)), "45m"},
		{"under a minute floors to zero", true, tp(now.Add(30 * time.Second)), "0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOffer("o", tt.active, nil, tt.validTo)
			assert.Equal(t, tt.want, RemainingTime(o, now))
		})
	}
}

// Remaining time only ever counts down, and once an offer reports Expirada it
// stays that way.
func TestRemainingTimeMonotonic(t *testing.T) {
	o := newOffer("o", true, nil, tp(now.Add(48*time.Hour)))

	samples := []struct {
		at   time.Time
		want string
	}{
		{now, "2d 0h"},
		{now.Add(12 * time.Hour), "1d 12h"},
		{now.Add(36 * time.Hour), "12h 0m"},
		{now.Add(47*time.Hour + 30*time.Minute), "30m"},
		{now.Add(48 * time.Hour), RemainingExpired},
		{now.Add(72 * time.Hour), RemainingExpired},
	}
	for _, s := range samples {
		assert.Equal(t, s.want, RemainingTime(o, s.at), "at %v", s.at)
	}
}
