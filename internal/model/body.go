// Package model defines the core astrological records shared across the application.
package model

import (
	"fmt"
	"strings"
)

// Body identifies one of the ten classical and modern planets.
// The numeric values match the Swiss Ephemeris body codes, so a
// provider backed by a real ephemeris can pass them through directly.
type Body int

// The fixed body set, in traditional order.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// Bodies lists every supported body in computation order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var bodyNames = map[Body]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mercury: "Mercury",
	Venus:   "Venus",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
	Pluto:   "Pluto",
}

// String returns the display name of the body.
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// Valid reports whether b is one of the supported bodies.
func (b Body) Valid() bool {
	_, ok := bodyNames[b]
	return ok
}

// ParseBody resolves a case-insensitive body name.
func ParseBody(name string) (Body, error) {
	for body, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return body, nil
		}
	}
	return 0, fmt.Errorf("unknown body: %q", name)
}
