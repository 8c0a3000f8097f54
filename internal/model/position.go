package model

// Position is a single body's state at one instant, as reported by the
// ephemeris provider. Longitude is normalized to [0,360). Immutable once
// produced.
type Position struct {
	Body          Body
	Longitude     float64
	Latitude      float64
	Distance      float64
	LongitudeSpeed float64
	LatitudeSpeed  float64
	DistanceSpeed  float64
	JulianDay     float64
}

// Retrograde reports apparent backward motion: strictly negative
// longitude speed. A stationary body is not retrograde.
func (p Position) Retrograde() bool {
	return p.LongitudeSpeed < 0
}

// PositionSet is an ordered collection of positions. Iteration order is
// insertion order; aspect matching depends on it, so it is preserved
// through storage round-trips.
type PositionSet struct {
	entries []Position
	byBody  map[Body]int
}

// NewPositionSet creates an empty set with room for n entries.
func NewPositionSet(n int) *PositionSet {
	return &PositionSet{
		entries: make([]Position, 0, n),
		byBody:  make(map[Body]int, n),
	}
}

// Add appends a position, replacing any previous entry for the same body
// in place (order is kept from the first insertion).
func (s *PositionSet) Add(p Position) {
	if i, ok := s.byBody[p.Body]; ok {
		s.entries[i] = p
		return
	}
	s.byBody[p.Body] = len(s.entries)
	s.entries = append(s.entries, p)
}

// Get returns the position for a body, if present.
func (s *PositionSet) Get(body Body) (Position, bool) {
	if s == nil {
		return Position{}, false
	}
	i, ok := s.byBody[body]
	if !ok {
		return Position{}, false
	}
	return s.entries[i], true
}

// Entries returns the positions in insertion order. The returned slice
// is a copy and safe to retain.
func (s *PositionSet) Entries() []Position {
	if s == nil {
		return nil
	}
	out := make([]Position, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of positions in the set.
func (s *PositionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
