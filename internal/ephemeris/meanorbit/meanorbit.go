// Package meanorbit is a built-in, low-precision ephemeris provider.
// Body longitudes follow linear mean motion from the J2000 epoch and
// houses use an equal division from an ascendant derived from local
// sidereal time. It exists so the CLI works out of the box; accuracy is
// on the order of degrees and real work should plug in a proper
// ephemeris binding behind the Provider interface.
package meanorbit

import (
	"fmt"
	"math"
	"sync"

	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
)

const j2000 = 2451545.0

// meanElement is a body's ecliptic longitude at J2000 and its mean
// daily motion in degrees.
type meanElement struct {
	longitude float64
	rate      float64
}

var elements = map[model.Body]meanElement{
	model.Sun:     {280.460, 0.98564736},
	model.Moon:    {218.316, 13.17639648},
	model.Mercury: {252.251, 4.09233445},
	model.Venus:   {181.980, 1.60213034},
	model.Mars:    {355.433, 0.52403840},
	model.Jupiter: {34.351, 0.08308529},
	model.Saturn:  {50.077, 0.03344414},
	model.Uranus:  {314.055, 0.01172834},
	model.Neptune: {304.349, 0.00598103},
	model.Pluto:   {238.929, 0.00396},
}

// Provider implements ephemeris.Provider with mean linear motion.
type Provider struct {
	mu       sync.Mutex
	observer model.Coordinates
}

// New creates a mean-orbit provider.
func New() *Provider {
	return &Provider{}
}

// Body returns the linearly extrapolated mean position of a body.
func (p *Provider) Body(julianDay float64, body model.Body) (ephemeris.BodyState, error) {
	el, ok := elements[body]
	if !ok {
		return ephemeris.BodyState{}, fmt.Errorf("unsupported body: %s", body)
	}

	return ephemeris.BodyState{
		Longitude:      normalize(el.longitude + el.rate*(julianDay-j2000)),
		Distance:       1,
		LongitudeSpeed: el.rate,
	}, nil
}

// SetTopocentric records the observer location.
func (p *Provider) SetTopocentric(latitude, longitude, _ float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = model.Coordinates{Latitude: latitude, Longitude: longitude}
}

// Houses computes an equal-house division from the ascendant at the
// given instant and place. The house system code is accepted for
// interface compatibility; this provider always divides equally.
func (p *Provider) Houses(julianDay, latitude, longitude float64, _ model.HouseSystem) ([12]float64, model.Angles, error) {
	if latitude <= -90 || latitude >= 90 {
		return [12]float64{}, model.Angles{}, fmt.Errorf("latitude %v outside (-90,90)", latitude)
	}

	eps := obliquity(julianDay)
	ramc := normalize(gmst(julianDay) + longitude)

	asc := ascendant(ramc, latitude, eps)
	mc := midheaven(ramc, eps)
	vertex := ascendant(normalize(ramc+180), 90-latitude, eps)

	var cusps [12]float64
	for i := range cusps {
		cusps[i] = normalize(asc + float64(i)*30)
	}

	return cusps, model.Angles{
		Ascendant: asc,
		Midheaven: mc,
		ARMC:      ramc,
		Vertex:    vertex,
	}, nil
}

// gmst returns Greenwich mean sidereal time in degrees.
func gmst(julianDay float64) float64 {
	return normalize(280.46061837 + 360.98564736629*(julianDay-j2000))
}

// obliquity returns the mean obliquity of the ecliptic in degrees.
func obliquity(julianDay float64) float64 {
	t := (julianDay - j2000) / 36525
	return 23.43929111 - 0.0130042*t
}

// ascendant returns the ecliptic longitude rising at the eastern
// horizon for the given RAMC, latitude and obliquity, all in degrees.
func ascendant(ramc, latitude, eps float64) float64 {
	ramcR := rad(ramc)
	epsR := rad(eps)
	latR := rad(latitude)

	y := -math.Cos(ramcR)
	x := math.Sin(ramcR)*math.Cos(epsR) + math.Tan(latR)*math.Sin(epsR)

	return normalize(deg(math.Atan2(y, x)) + 180)
}

// midheaven returns the ecliptic longitude of the meridian.
func midheaven(ramc, eps float64) float64 {
	ramcR := rad(ramc)
	epsR := rad(eps)
	return normalize(deg(math.Atan2(math.Sin(ramcR), math.Cos(ramcR)*math.Cos(epsR))))
}

func normalize(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

func rad(degrees float64) float64 { return degrees * math.Pi / 180 }

func deg(radians float64) float64 { return radians * 180 / math.Pi }
