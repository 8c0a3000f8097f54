package chart

import (
	"context"
	"log/slog"

	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
)

// HousesForPositions computes a house set for every position in the
// collection, each at its own julian day; the geographic location is
// fixed across entries. A position carrying no julian day is skipped
// with a warning and reported in the second return value; the batch
// continues.
func HousesForPositions(ctx context.Context, facade *ephemeris.Facade, set *model.PositionSet, coords model.Coordinates, system model.HouseSystem) ([]model.BodyHouses, []model.Body, error) {
	results := make([]model.BodyHouses, 0, set.Len())
	var skipped []model.Body

	for _, pos := range set.Entries() {
		if pos.JulianDay == 0 {
			slog.Warn("No julian day for position, skipping", "body", pos.Body)
			skipped = append(skipped, pos.Body)
			continue
		}

		houses, err := facade.HousesAt(ctx, pos.JulianDay, coords.Latitude, coords.Longitude, system)
		if err != nil {
			return nil, nil, err
		}

		results = append(results, model.BodyHouses{Body: pos.Body, Houses: houses})
	}

	return results, skipped, nil
}
