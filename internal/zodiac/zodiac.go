// Package zodiac provides angular geometry for the tropical zodiac:
// sign decomposition, degree formatting, and circular orb distance.
package zodiac

import (
	"fmt"
	"math"
)

// Sign is one of the twelve zodiac signs.
type Sign string

// The twelve signs in zodiacal order, starting at 0° Aries.
var Signs = [12]Sign{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf decomposes an ecliptic longitude into its sign and the degree
// within that sign. Longitudes at or past 360 wrap around.
func SignOf(longitude float64) (Sign, float64) {
	idx := int(longitude/30) % 12
	if idx < 0 {
		idx += 12
	}
	return Signs[idx], math.Mod(longitude, 30)
}

// FormatDegree renders a decimal degree as degrees, minutes and
// seconds. Every component is truncated, never rounded; downstream
// consumers compare these strings, so the truncation must not change.
func FormatDegree(degree float64) string {
	degrees := int(degree)
	minutes := int((degree - float64(degrees)) * 60)
	seconds := int(((degree-float64(degrees))*60 - float64(minutes)) * 60)

	return fmt.Sprintf("%d°%d'%d\"", degrees, minutes, seconds)
}

// Orb returns how far the angular separation of a and b deviates from a
// target aspect angle. The separation is the shortest way around the
// circle, so the result is symmetric in a and b and never negative.
func Orb(a, b, target float64) float64 {
	diff := math.Abs(a - b)
	dist := math.Min(diff, 360-diff)
	return math.Abs(dist - target)
}
