package transit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/testutil"
	"github.com/quixand/astro-transits/internal/transit"
)

func natalSun(longitude float64) *model.PositionSet {
	set := model.NewPositionSet(1)
	set.Add(model.Position{Body: model.Sun, Longitude: longitude, LongitudeSpeed: 1})
	return set
}

func mustJulianDay(t *testing.T, at time.Time, offset float64) float64 {
	t.Helper()
	jd, err := ephemeris.JulianDay(at, offset)
	if err != nil {
		t.Fatalf("julian day conversion failed: %v", err)
	}
	return jd
}

func TestFindExactTimeLinearCrossing(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jd0 := mustJulianDay(t, start, 0)

	// Mars moves 24 degrees per day (1 per hour) and conjuncts the
	// natal Sun at exactly start + 62.4 minutes.
	crossing := start.Add(time.Duration(62.4 * float64(time.Minute)))
	provider := testutil.NewLinearProvider()
	provider.SetMotion(model.Mars, testutil.BodyMotion{
		Epoch:     jd0,
		Longitude: 10.0 - 24.0*(62.4/1440.0),
		Rate:      24.0,
	})

	solver := transit.NewSolver(ephemeris.NewFacade(provider))
	window := model.TimeWindow{Start: start, End: start.Add(48 * time.Hour)}

	got, found, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Mars, "conjunction")
	if err != nil {
		t.Fatalf("FindExactTime failed: %v", err)
	}
	if !found {
		t.Fatal("expected the crossing to be found")
	}

	diff := got.Sub(crossing)
	if diff < 0 {
		diff = -diff
	}
	if diff > time.Minute {
		t.Errorf("found %v, want within 1 minute of %v", got, crossing)
	}
}

func TestFindExactTimeNotFound(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jd0 := mustJulianDay(t, start, 0)

	// Stationary body 90 degrees away never approaches the conjunction.
	provider := testutil.NewLinearProvider()
	provider.SetMotion(model.Mars, testutil.BodyMotion{Epoch: jd0, Longitude: 100, Rate: 0})

	solver := transit.NewSolver(ephemeris.NewFacade(provider))
	window := model.TimeWindow{Start: start, End: start.Add(24 * time.Hour)}

	got, found, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Mars, "conjunction")
	if err != nil {
		t.Fatalf("window exhaustion must not be an error, got %v", err)
	}
	if found {
		t.Errorf("expected not found, got %v", got)
	}
}

func TestFindExactTimeAliasingMiss(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jd0 := mustJulianDay(t, start, 0)

	// The crossing falls exactly between two hourly samples, each half
	// a degree away — never under the 0.1 degree trigger. The contract
	// is to miss it.
	provider := testutil.NewLinearProvider()
	provider.SetMotion(model.Moon, testutil.BodyMotion{
		Epoch:     jd0,
		Longitude: 10.0 - 24.0*(30.0/1440.0),
		Rate:      24.0,
	})

	solver := transit.NewSolver(ephemeris.NewFacade(provider))
	window := model.TimeWindow{Start: start, End: start.Add(6 * time.Hour)}

	_, found, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Moon, "conjunction")
	if err != nil {
		t.Fatalf("FindExactTime failed: %v", err)
	}
	if found {
		t.Error("sub-hour crossing between samples should alias to not found")
	}
}

func TestFindExactTimeUnknownAspect(t *testing.T) {
	solver := transit.NewSolver(ephemeris.NewFacade(testutil.NewLinearProvider()))
	window := model.TimeWindow{
		Start: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}

	_, _, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Mars, "novile")
	if err == nil {
		t.Error("expected error for unknown aspect")
	}
}

func TestFindExactTimeProviderFailure(t *testing.T) {
	provider := testutil.NewLinearProvider()
	provider.FailWith(errors.New("outside ephemeris coverage"))

	solver := transit.NewSolver(ephemeris.NewFacade(provider))
	window := model.TimeWindow{
		Start: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}

	_, _, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Mars, "conjunction")
	if !errors.Is(err, common.ErrEphemeris) {
		t.Errorf("expected ErrEphemeris, got %v", err)
	}
}

func TestFindExactTimeProgress(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jd0 := mustJulianDay(t, start, 0)

	provider := testutil.NewLinearProvider()
	provider.SetMotion(model.Mars, testutil.BodyMotion{Epoch: jd0, Longitude: 200, Rate: 0})

	solver := transit.NewSolver(ephemeris.NewFacade(provider))
	var steps int
	solver.Progress = func(done, total int) {
		steps = done
		if total != 25 {
			t.Errorf("total = %d, want 25 hourly samples over 24h inclusive", total)
		}
	}

	window := model.TimeWindow{Start: start, End: start.Add(24 * time.Hour)}
	if _, _, err := solver.FindExactTime(context.Background(), natalSun(10.0), window, model.Sun, model.Mars, "conjunction"); err != nil {
		t.Fatalf("FindExactTime failed: %v", err)
	}
	if steps != 25 {
		t.Errorf("progress reported %d steps, want 25", steps)
	}
}

func TestSnapshotOpposition(t *testing.T) {
	at := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	jd := mustJulianDay(t, at, 0)

	provider := testutil.NewLinearProvider()
	for i, body := range model.Bodies {
		provider.SetMotion(body, testutil.BodyMotion{Epoch: jd, Longitude: 190 + float64(i)*37, Rate: 1})
	}

	facade := ephemeris.NewFacade(provider)
	report, err := transit.Snapshot(context.Background(), facade, natalSun(10.0), at, 0)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if report.Positions.Len() != 10 {
		t.Errorf("expected 10 transiting positions, got %d", report.Positions.Len())
	}
	if report.Moment.JulianDay != jd {
		t.Errorf("moment julian day = %v, want %v", report.Moment.JulianDay, jd)
	}

	var foundOpposition bool
	for _, m := range report.Aspects {
		if m.Body1 == model.Sun && m.Body2 == model.Sun && m.Aspect == "opposition" {
			foundOpposition = true
			if m.Orb > 1e-9 {
				t.Errorf("opposition orb = %v, want 0", m.Orb)
			}
		}
	}
	if !foundOpposition {
		t.Errorf("transiting Sun at 190 should oppose natal Sun at 10; aspects: %+v", report.Aspects)
	}
}
