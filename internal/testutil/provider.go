// Package testutil provides deterministic test doubles and database
// helpers shared by package tests.
package testutil

import (
	"fmt"
	"sync"

	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
)

// BodyMotion describes synthetic linear motion for one body: its
// longitude at the epoch julian day plus a constant daily rate.
type BodyMotion struct {
	Epoch     float64
	Longitude float64
	Rate      float64
}

// LinearProvider is a deterministic ephemeris stub. Each configured
// body moves linearly; unconfigured bodies fail, which makes accidental
// extra provider calls visible in tests.
type LinearProvider struct {
	mu      sync.Mutex
	motions map[model.Body]BodyMotion
	houses  model.HouseSet
	err     error

	bodyCalls  int
	houseCalls int
	topoCalls  []model.Coordinates
}

// NewLinearProvider creates an empty provider stub.
func NewLinearProvider() *LinearProvider {
	return &LinearProvider{motions: make(map[model.Body]BodyMotion)}
}

// SetMotion configures linear motion for a body.
func (p *LinearProvider) SetMotion(body model.Body, m BodyMotion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.motions[body] = m
}

// SetHouses configures the fixed house set returned by Houses.
func (p *LinearProvider) SetHouses(h model.HouseSet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.houses = h
}

// FailWith makes every subsequent provider call return err.
func (p *LinearProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Body returns the linearly extrapolated state of a configured body.
func (p *LinearProvider) Body(julianDay float64, body model.Body) (ephemeris.BodyState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.bodyCalls++
	if p.err != nil {
		return ephemeris.BodyState{}, p.err
	}

	m, ok := p.motions[body]
	if !ok {
		return ephemeris.BodyState{}, fmt.Errorf("no motion configured for %s", body)
	}

	return ephemeris.BodyState{
		Longitude:      m.Longitude + m.Rate*(julianDay-m.Epoch),
		Distance:       1,
		LongitudeSpeed: m.Rate,
	}, nil
}

// SetTopocentric records the observer location.
func (p *LinearProvider) SetTopocentric(latitude, longitude, _ float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topoCalls = append(p.topoCalls, model.Coordinates{Latitude: latitude, Longitude: longitude})
}

// Houses returns the configured house set.
func (p *LinearProvider) Houses(_, _, _ float64, _ model.HouseSystem) ([12]float64, model.Angles, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.houseCalls++
	if p.err != nil {
		return [12]float64{}, model.Angles{}, p.err
	}
	return p.houses.Cusps, p.houses.Angles, nil
}

// BodyCalls returns how many body computations were requested.
func (p *LinearProvider) BodyCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bodyCalls
}

// HouseCalls returns how many house computations were requested.
func (p *LinearProvider) HouseCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.houseCalls
}

// TopocentricCalls returns the recorded observer locations in call order.
func (p *LinearProvider) TopocentricCalls() []model.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Coordinates, len(p.topoCalls))
	copy(out, p.topoCalls)
	return out
}
