package entity

import (
	"github.com/paulmach/orb"
)

// DeliveryAddress is the destination the user typed in, plus whatever the
// geocoding service managed to resolve for it. Resolution is best-effort:
// Resolved stays nil when geocoding fails, and a nil point only disables the
// map preview (it never blocks order creation).
type DeliveryAddress struct {
	RawText      string     // The address exactly as entered, e.g. "Astana, Qabanbay Batyr 53".
	Resolved     *orb.Point // Geocoded lon/lat, nil if the address never resolved.
	DistanceHint string     // Human-readable distance from the branch, display only.
	TimeHint     string     // Human-readable travel time estimate, display only.
}

// HasCoordinates reports whether geocoding produced a usable point.
func (a DeliveryAddress) HasCoordinates() bool {
	return a.Resolved != nil
}
