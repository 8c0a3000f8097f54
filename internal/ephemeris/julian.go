package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/quixand/astro-transits/internal/common"
)

// Calendar bounds accepted by the julian day conversion. The range
// mirrors the coverage of common ephemeris data files.
const (
	minYear = -4712
	maxYear = 9999
)

// JulianDayCivil converts Gregorian calendar components and a
// fractional UT hour to a julian day using the standard astronomical
// formula. Components outside the supported range fail with
// ErrInvalidDate.
func JulianDayCivil(year, month, day int, hour float64) (float64, error) {
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("%w: year %d", common.ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", common.ErrInvalidDate, month)
	}
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: day %d", common.ErrInvalidDate, day)
	}

	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hour/24.0

	return jd, nil
}

// JulianDay converts a civil datetime with a numeric UTC offset in
// hours (positive east of UTC) to a julian day. The offset is
// subtracted from the civil hour; no timezone database is consulted.
func JulianDay(t time.Time, utcOffset float64) (float64, error) {
	hour := float64(t.Hour()) - utcOffset +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0

	return JulianDayCivil(t.Year(), int(t.Month()), t.Day(), hour)
}
