package transit

import (
	"context"
	"log/slog"
	"time"

	"github.com/quixand/astro-transits/internal/aspect"
	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
)

// Snapshot computes every transiting position at the query instant and
// all aspects they form to the natal set.
func Snapshot(ctx context.Context, facade *ephemeris.Facade, natal *model.PositionSet, at time.Time, utcOffset float64) (*model.TransitReport, error) {
	jd, err := ephemeris.JulianDay(at, utcOffset)
	if err != nil {
		return nil, err
	}

	positions, err := facade.PositionsAt(ctx, jd)
	if err != nil {
		return nil, err
	}

	matches := aspect.Find(natal, positions, nil)
	slog.Debug("Computed transit snapshot", "at", at, "aspects", len(matches))

	return &model.TransitReport{
		Moment:    model.Moment{When: at, UTCOffset: utcOffset, JulianDay: jd},
		Positions: positions,
		Aspects:   matches,
	}, nil
}
