package model

import "testing"

func TestPositionRetrograde(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  bool
	}{
		{name: "negative speed is retrograde", speed: -0.5, want: true},
		{name: "zero speed is not retrograde", speed: 0, want: false},
		{name: "positive speed is not retrograde", speed: 0.5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Position{Body: Mercury, LongitudeSpeed: tt.speed}
			if got := p.Retrograde(); got != tt.want {
				t.Errorf("Retrograde() with speed %v = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestPositionSetOrder(t *testing.T) {
	set := NewPositionSet(3)
	set.Add(Position{Body: Moon, Longitude: 100})
	set.Add(Position{Body: Sun, Longitude: 10})
	set.Add(Position{Body: Mars, Longitude: 200})

	entries := set.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantOrder := []Body{Moon, Sun, Mars}
	for i, want := range wantOrder {
		if entries[i].Body != want {
			t.Errorf("entry %d = %v, want %v", i, entries[i].Body, want)
		}
	}
}

func TestPositionSetReplace(t *testing.T) {
	set := NewPositionSet(2)
	set.Add(Position{Body: Sun, Longitude: 10})
	set.Add(Position{Body: Moon, Longitude: 20})
	set.Add(Position{Body: Sun, Longitude: 15})

	if set.Len() != 2 {
		t.Fatalf("expected replace to keep length 2, got %d", set.Len())
	}
	got, ok := set.Get(Sun)
	if !ok {
		t.Fatal("Sun missing after replace")
	}
	if got.Longitude != 15 {
		t.Errorf("Sun longitude = %v, want 15", got.Longitude)
	}
	if set.Entries()[0].Body != Sun {
		t.Errorf("replace moved Sun from slot 0")
	}
}

func TestPositionSetGetMissing(t *testing.T) {
	set := NewPositionSet(1)
	if _, ok := set.Get(Pluto); ok {
		t.Error("Get on empty set reported a position")
	}
}
