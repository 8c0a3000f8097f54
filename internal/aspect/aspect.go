// Package aspect holds the fixed aspect catalog and finds qualifying
// aspects between position sets.
package aspect

import (
	"fmt"

	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/zodiac"
)

// Catalog lists every recognized aspect in declaration order. The
// matcher iterates it in this order, and match output order depends on
// it, so the order is part of the contract. Constant for the process
// lifetime.
var Catalog = []model.Aspect{
	{Name: "conjunction", Angle: 0, Orb: 8},
	{Name: "opposition", Angle: 180, Orb: 8},
	{Name: "trine", Angle: 120, Orb: 8},
	{Name: "square", Angle: 90, Orb: 8},
	{Name: "sextile", Angle: 60, Orb: 6},
	{Name: "quincunx", Angle: 150, Orb: 3},
	{Name: "semisextile", Angle: 30, Orb: 3},
	{Name: "semisquare", Angle: 45, Orb: 2},
	{Name: "sesquisquare", Angle: 135, Orb: 2},
}

// ByName resolves an aspect from the catalog.
func ByName(name string) (model.Aspect, error) {
	for _, a := range Catalog {
		if a.Name == name {
			return a, nil
		}
	}
	return model.Aspect{}, fmt.Errorf("unknown aspect: %q", name)
}

// Find reports every qualifying aspect between the two sets. It walks
// the full cross product — setA entries, then setB entries, then the
// catalog, in those orders — and keeps a match when the orb is within
// the aspect's tolerance (and maxOrb, when given). A body pair can
// appear under several aspects; nothing is deduplicated.
func Find(setA, setB *model.PositionSet, maxOrb *float64) []model.AspectMatch {
	var matches []model.AspectMatch

	for _, p1 := range setA.Entries() {
		for _, p2 := range setB.Entries() {
			for _, a := range Catalog {
				orb := zodiac.Orb(p1.Longitude, p2.Longitude, a.Angle)

				if maxOrb != nil && orb > *maxOrb {
					continue
				}
				if orb > a.Orb {
					continue
				}

				matches = append(matches, model.AspectMatch{
					Body1:           p1.Body,
					Body2:           p2.Body,
					Aspect:          a.Name,
					ExactAngle:      a.Angle,
					Orb:             orb,
					Body1Retrograde: p1.Retrograde(),
					Body2Retrograde: p2.Retrograde(),
				})
			}
		}
	}

	return matches
}
