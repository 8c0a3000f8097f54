package meanorbit

import (
	"math"
	"testing"

	"github.com/quixand/astro-transits/internal/model"
)

func TestBodySunAtEpoch(t *testing.T) {
	p := New()
	state, err := p.Body(2451545.0, model.Sun)
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	if math.Abs(state.Longitude-280.460) > 1e-9 {
		t.Errorf("Sun longitude at J2000 = %v, want 280.460", state.Longitude)
	}
	if state.LongitudeSpeed <= 0 {
		t.Errorf("mean motion speed = %v, want positive", state.LongitudeSpeed)
	}
}

func TestBodyLinearMotion(t *testing.T) {
	p := New()
	a, err := p.Body(2451545.0, model.Mars)
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}
	b, err := p.Body(2451546.0, model.Mars)
	if err != nil {
		t.Fatalf("Body failed: %v", err)
	}

	moved := b.Longitude - a.Longitude
	if moved < 0 {
		moved += 360
	}
	if math.Abs(moved-a.LongitudeSpeed) > 1e-9 {
		t.Errorf("daily motion = %v, want %v", moved, a.LongitudeSpeed)
	}
}

func TestBodyAllSupported(t *testing.T) {
	p := New()
	for _, body := range model.Bodies {
		state, err := p.Body(2460000.0, body)
		if err != nil {
			t.Fatalf("Body(%s) failed: %v", body, err)
		}
		if state.Longitude < 0 || state.Longitude >= 360 {
			t.Errorf("%s longitude %v outside [0,360)", body, state.Longitude)
		}
	}
}

func TestBodyUnsupported(t *testing.T) {
	p := New()
	if _, err := p.Body(2451545.0, model.Body(42)); err == nil {
		t.Error("expected error for unsupported body")
	}
}

func TestHousesEqualDivision(t *testing.T) {
	p := New()
	cusps, angles, err := p.Houses(2451545.0, 40.7128, -74.0060, model.Placidus)
	if err != nil {
		t.Fatalf("Houses failed: %v", err)
	}

	if cusps[0] != angles.Ascendant {
		t.Errorf("first cusp %v != ascendant %v", cusps[0], angles.Ascendant)
	}
	for i := 1; i < 12; i++ {
		gap := cusps[i] - cusps[i-1]
		if gap < 0 {
			gap += 360
		}
		if math.Abs(gap-30) > 1e-9 {
			t.Errorf("cusp gap %d-%d = %v, want 30", i, i+1, gap)
		}
	}
	for i, c := range cusps {
		if c < 0 || c >= 360 {
			t.Errorf("cusp %d = %v outside [0,360)", i+1, c)
		}
	}
}

func TestHousesDeterministic(t *testing.T) {
	p := New()
	c1, a1, err := p.Houses(2451545.5, 51.5, 0, model.Equal)
	if err != nil {
		t.Fatalf("Houses failed: %v", err)
	}
	c2, a2, err := p.Houses(2451545.5, 51.5, 0, model.Equal)
	if err != nil {
		t.Fatalf("Houses failed: %v", err)
	}
	if c1 != c2 || a1 != a2 {
		t.Error("identical inputs produced different house sets")
	}
}

func TestHousesPolarLatitudeRejected(t *testing.T) {
	p := New()
	if _, _, err := p.Houses(2451545.0, 90, 0, model.Placidus); err == nil {
		t.Error("expected error at the pole")
	}
}
