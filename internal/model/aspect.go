package model

// Aspect is a named angular relationship with its exact angle and the
// orb tolerance within which it is considered in effect.
type Aspect struct {
	Name  string
	Angle float64
	Orb   float64
}

// AspectMatch records one qualifying aspect between a body from the
// first position set and a body from the second. Body1 always comes
// from the first set passed to the matcher (natal, for transits), Body2
// from the second (transiting). Produced once, never mutated.
type AspectMatch struct {
	Body1           Body
	Body2           Body
	Aspect          string
	ExactAngle      float64
	Orb             float64
	Body1Retrograde bool
	Body2Retrograde bool
}
