package model

import "time"

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Moment is a civil instant plus the numeric UTC offset it was given
// with and the julian day it converts to. Callers supply the offset
// directly; no timezone database resolution happens anywhere.
type Moment struct {
	When      time.Time
	UTCOffset float64
	JulianDay float64
}

// TimeWindow bounds a solver search: [Start, End] in civil time, with
// the UTC offset applied during julian day conversion.
type TimeWindow struct {
	Start     time.Time
	End       time.Time
	UTCOffset float64
}

// Chart is a complete natal chart: where, when, the house set for that
// place and time, and every body position.
type Chart struct {
	Name         string
	LocationName string
	Location     Coordinates
	Moment       Moment
	HouseSystem  HouseSystem
	Houses       HouseSet
	Positions    *PositionSet
	CreatedAt    time.Time
}

// TransitReport holds the transiting positions at a query instant and
// all aspects they form against a natal position set.
type TransitReport struct {
	Moment    Moment
	Positions *PositionSet
	Aspects   []AspectMatch
}
