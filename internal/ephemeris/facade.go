package ephemeris

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/model"
)

// Facade wraps a Provider and returns normalized model records. It owns
// the provider's topocentric state: the SetTopocentric/Houses pair is
// serialized under a mutex so interleaved house computations for
// different locations cannot corrupt each other.
//
// No caching happens here: every query goes back to the provider.
type Facade struct {
	provider Provider
	mu       sync.Mutex
}

// NewFacade creates a facade over the given provider.
func NewFacade(provider Provider) *Facade {
	return &Facade{provider: provider}
}

// PositionAt computes a single body's position at a julian day.
func (f *Facade) PositionAt(ctx context.Context, julianDay float64, body model.Body) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}

	state, err := f.provider.Body(julianDay, body)
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: %s at jd %v: %v", common.ErrEphemeris, body, julianDay, err)
	}

	return model.Position{
		Body:           body,
		Longitude:      normalizeLongitude(state.Longitude),
		Latitude:       state.Latitude,
		Distance:       state.Distance,
		LongitudeSpeed: state.LongitudeSpeed,
		LatitudeSpeed:  state.LatitudeSpeed,
		DistanceSpeed:  state.DistanceSpeed,
		JulianDay:      julianDay,
	}, nil
}

// PositionsAt computes all ten bodies at a julian day, one provider
// call per body, in the fixed Sun-through-Pluto order. The first
// provider failure aborts the whole set.
func (f *Facade) PositionsAt(ctx context.Context, julianDay float64) (*model.PositionSet, error) {
	set := model.NewPositionSet(len(model.Bodies))
	for _, body := range model.Bodies {
		pos, err := f.PositionAt(ctx, julianDay, body)
		if err != nil {
			return nil, err
		}
		set.Add(pos)
	}
	return set, nil
}

// HousesAt computes the house cusps and angles for a julian day and
// geographic location. The provider's location state is set immediately
// before the house call, under the facade mutex.
func (f *Facade) HousesAt(ctx context.Context, julianDay, latitude, longitude float64, system model.HouseSystem) (model.HouseSet, error) {
	if err := ctx.Err(); err != nil {
		return model.HouseSet{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.provider.SetTopocentric(latitude, longitude, 0)
	cusps, angles, err := f.provider.Houses(julianDay, latitude, longitude, system)
	if err != nil {
		return model.HouseSet{}, fmt.Errorf("%w: houses at jd %v: %v", common.ErrEphemeris, julianDay, err)
	}

	return model.HouseSet{Cusps: cusps, Angles: angles}, nil
}

// normalizeLongitude maps any longitude into [0,360).
func normalizeLongitude(l float64) float64 {
	l = math.Mod(l, 360)
	if l < 0 {
		l += 360
	}
	return l
}
