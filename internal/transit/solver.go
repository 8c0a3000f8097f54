// Package transit computes transiting aspects against natal positions
// and solves for the instant an aspect becomes exact.
package transit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/quixand/astro-transits/internal/aspect"
	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/zodiac"
)

// Search constants. These are part of the behavioral contract: the
// coarse scan can alias past a fast-moving body's exact moment between
// two hourly samples, and callers depend on that miss being reported as
// not-found rather than the grid being tightened.
const (
	coarseStep     = time.Hour
	fineStep       = time.Minute
	fineHalfWindow = time.Hour
	triggerOrb     = 0.1 // degrees; roughly six arc-minutes
)

// Solver finds the instant a named aspect between a natal body and a
// transiting body is exact, using a coarse-to-fine grid search. It is
// fully synchronous; a caller deadline on ctx bounds the whole run.
type Solver struct {
	facade *ephemeris.Facade

	// Progress, when set, is called once per coarse step with the
	// number of steps completed and the step total.
	Progress func(done, total int)
}

// NewSolver creates a solver over the given ephemeris facade.
func NewSolver(facade *ephemeris.Facade) *Solver {
	return &Solver{facade: facade}
}

// FindExactTime scans [window.Start, window.End] at one-hour steps for
// the transiting body's orb against the natal body's longitude dropping
// below the trigger threshold, then scans one minute at a time across
// the two hours around the trigger and returns the minimum-orb
// timestamp. The result reflects only the first trigger. Exhausting the
// window without a trigger returns found=false, which is a normal
// outcome, not an error.
func (s *Solver) FindExactTime(ctx context.Context, natal *model.PositionSet, window model.TimeWindow, natalBody, transitBody model.Body, aspectName string) (time.Time, bool, error) {
	asp, err := aspect.ByName(aspectName)
	if err != nil {
		return time.Time{}, false, err
	}

	natalPos, ok := natal.Get(natalBody)
	if !ok {
		return time.Time{}, false, fmt.Errorf("natal set has no position for %s", natalBody)
	}

	slog.Debug("Starting exact aspect search",
		"natal_body", natalBody,
		"transit_body", transitBody,
		"aspect", aspectName,
		"start", window.Start,
		"end", window.End)

	total := coarseSteps(window)
	done := 0

	for t := window.Start; !t.After(window.End); t = t.Add(coarseStep) {
		select {
		case <-ctx.Done():
			return time.Time{}, false, ctx.Err()
		default:
		}

		orb, err := s.orbAt(ctx, t, window.UTCOffset, natalPos, transitBody, asp)
		if err != nil {
			return time.Time{}, false, err
		}

		done++
		if s.Progress != nil {
			s.Progress(done, total)
		}

		if orb < triggerOrb {
			slog.Debug("Coarse scan triggered", "at", t, "orb", orb)
			return s.refine(ctx, t, window.UTCOffset, natalPos, transitBody, asp)
		}
	}

	slog.Debug("Exact aspect search exhausted window",
		"natal_body", natalBody,
		"transit_body", transitBody,
		"aspect", aspectName)
	return time.Time{}, false, nil
}

// refine scans the two hours around the trigger at one-minute steps and
// returns the timestamp with the minimum observed orb.
func (s *Solver) refine(ctx context.Context, trigger time.Time, utcOffset float64, natalPos model.Position, transitBody model.Body, asp model.Aspect) (time.Time, bool, error) {
	var best time.Time
	bestOrb := math.Inf(1)

	end := trigger.Add(fineHalfWindow)
	for t := trigger.Add(-fineHalfWindow); !t.After(end); t = t.Add(fineStep) {
		orb, err := s.orbAt(ctx, t, utcOffset, natalPos, transitBody, asp)
		if err != nil {
			return time.Time{}, false, err
		}
		if orb < bestOrb {
			bestOrb = orb
			best = t
		}
	}

	slog.Debug("Fine scan complete", "best", best, "orb", bestOrb)
	return best, true, nil
}

// orbAt computes the transiting body's orb against the natal longitude
// at a civil instant.
func (s *Solver) orbAt(ctx context.Context, t time.Time, utcOffset float64, natalPos model.Position, transitBody model.Body, asp model.Aspect) (float64, error) {
	jd, err := ephemeris.JulianDay(t, utcOffset)
	if err != nil {
		return 0, err
	}

	pos, err := s.facade.PositionAt(ctx, jd, transitBody)
	if err != nil {
		return 0, err
	}

	return zodiac.Orb(natalPos.Longitude, pos.Longitude, asp.Angle), nil
}

// coarseSteps returns how many hourly samples the window holds,
// endpoints inclusive.
func coarseSteps(window model.TimeWindow) int {
	if window.End.Before(window.Start) {
		return 0
	}
	return int(window.End.Sub(window.Start)/coarseStep) + 1
}
