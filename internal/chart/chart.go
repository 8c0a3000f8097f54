// Package chart orchestrates geocoding and ephemeris access into
// complete natal charts.
package chart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, name string) (model.Coordinates, error)
}

// Calculator builds natal charts from a place name and civil moment.
type Calculator struct {
	geocoder    Geocoder
	facade      *ephemeris.Facade
	houseSystem model.HouseSystem
}

// NewCalculator creates a calculator with the given collaborators.
func NewCalculator(geocoder Geocoder, facade *ephemeris.Facade, houseSystem model.HouseSystem) *Calculator {
	return &Calculator{
		geocoder:    geocoder,
		facade:      facade,
		houseSystem: houseSystem,
	}
}

// Calculate geocodes the location, converts the civil moment to a
// julian day, and computes houses and all body positions. Geocoder and
// provider failures propagate unchanged; nothing is retried.
func (c *Calculator) Calculate(ctx context.Context, locationName string, when time.Time, utcOffset float64) (*model.Chart, error) {
	coords, err := c.geocoder.Resolve(ctx, locationName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", locationName, err)
	}

	jd, err := ephemeris.JulianDay(when, utcOffset)
	if err != nil {
		return nil, err
	}

	houses, err := c.facade.HousesAt(ctx, jd, coords.Latitude, coords.Longitude, c.houseSystem)
	if err != nil {
		return nil, err
	}

	positions, err := c.facade.PositionsAt(ctx, jd)
	if err != nil {
		return nil, err
	}

	slog.Info("Calculated chart",
		"location", locationName,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"julian_day", jd)

	return &model.Chart{
		LocationName: locationName,
		Location:     coords,
		Moment:       model.Moment{When: when, UTCOffset: utcOffset, JulianDay: jd},
		HouseSystem:  c.houseSystem,
		Houses:       houses,
		Positions:    positions,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
