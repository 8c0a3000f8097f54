// Package ephemeris normalizes access to an ephemeris provider: julian
// day conversion, body positions, and house computations.
package ephemeris

import "github.com/quixand/astro-transits/internal/model"

// BodyState is the raw six-value result of one provider body
// computation.
type BodyState struct {
	Longitude      float64
	Latitude       float64
	Distance       float64
	LongitudeSpeed float64
	LatitudeSpeed  float64
	DistanceSpeed  float64
}

// Provider is the external ephemeris capability. Implementations hold
// process-wide topocentric state: SetTopocentric must be called before
// Houses, and interleaved callers computing houses for different
// locations must serialize the pair. The Facade is the only caller in
// this codebase and guards the sequence with a mutex.
//
// Providers are treated as deterministic; failures are never retried.
type Provider interface {
	// Body computes the state of one body at a julian day.
	Body(julianDay float64, body model.Body) (BodyState, error)

	// SetTopocentric sets the observer location used by Houses.
	SetTopocentric(latitude, longitude, altitude float64)

	// Houses computes the twelve cusps and four angles for a julian
	// day and geographic location.
	Houses(julianDay, latitude, longitude float64, system model.HouseSystem) ([12]float64, model.Angles, error)
}
