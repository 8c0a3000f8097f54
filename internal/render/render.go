// Package render formats charts and transit reports as styled text for
// the terminal. It is a presentation adapter; nothing in the core
// depends on it.
package render

import (
	"fmt"
	"strings"

	"github.com/quixand/astro-transits/internal/cli"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/zodiac"
)

// FormatChart renders a complete natal chart.
func FormatChart(chart *model.Chart) string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("Birth Chart"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Location:   %s (%.4f, %.4f)\n",
		chart.LocationName, chart.Location.Latitude, chart.Location.Longitude))
	b.WriteString(fmt.Sprintf("Time:       %s (UTC%+g)\n",
		chart.Moment.When.Format("2006-01-02 15:04"), chart.Moment.UTCOffset))
	b.WriteString(fmt.Sprintf("Julian Day: %.6f\n", chart.Moment.JulianDay))
	b.WriteString("\n")

	asc := chart.Houses.Ascendant()
	ascSign, ascDeg := zodiac.SignOf(asc)
	b.WriteString(cli.SubtitleStyle.Render("Ascendant (Rising Sign)"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s (%s %s)\n\n",
		zodiac.FormatDegree(asc), ascSign, zodiac.FormatDegree(ascDeg)))

	b.WriteString(formatPositions(chart.Positions))
	b.WriteString("\n")
	b.WriteString(formatHouseSet(chart.Houses))

	return b.String()
}

// FormatTransitReport renders transiting positions and their aspects to
// the natal chart.
func FormatTransitReport(report *model.TransitReport) string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(
		fmt.Sprintf("Transit Report for %s", report.Moment.When.Format("2006-01-02 15:04"))))
	b.WriteString("\n")

	b.WriteString(cli.SubtitleStyle.Render("Transiting Planets"))
	b.WriteString("\n")
	b.WriteString(formatPositionRows(report.Positions))
	b.WriteString("\n")

	b.WriteString(cli.SubtitleStyle.Render("Aspects to Natal Planets"))
	b.WriteString("\n")
	if len(report.Aspects) == 0 {
		b.WriteString(cli.SubtleStyle.Render("none within orb"))
		b.WriteString("\n")
		return b.String()
	}

	for _, m := range report.Aspects {
		line := fmt.Sprintf("%-8s %-13s %-8s (orb: %.2f°)",
			m.Body1, m.Aspect, m.Body2, m.Orb)
		if m.Body1Retrograde {
			line += " " + cli.RetrogradeStyle.Render("R₁")
		}
		if m.Body2Retrograde {
			line += " " + cli.RetrogradeStyle.Render("R₂")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatBodyHouses renders the per-body house sets from the batch
// pipeline.
func FormatBodyHouses(results []model.BodyHouses, skipped []model.Body) string {
	var b strings.Builder

	for _, r := range results {
		b.WriteString(cli.SubtitleStyle.Render(fmt.Sprintf("Houses for %s", r.Body)))
		b.WriteString("\n")
		b.WriteString(formatHouseSet(r.Houses))
		b.WriteString("\n")
	}

	if len(skipped) > 0 {
		names := make([]string, len(skipped))
		for i, body := range skipped {
			names[i] = body.String()
		}
		b.WriteString(cli.WarningStyle.Render(
			fmt.Sprintf("skipped (no julian day): %s", strings.Join(names, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}

func formatPositions(set *model.PositionSet) string {
	var b strings.Builder
	b.WriteString(cli.SubtitleStyle.Render("Planetary Positions"))
	b.WriteString("\n")
	b.WriteString(formatPositionRows(set))
	return b.String()
}

func formatPositionRows(set *model.PositionSet) string {
	var b strings.Builder
	for _, pos := range set.Entries() {
		sign, deg := zodiac.SignOf(pos.Longitude)
		row := fmt.Sprintf("%-8s %-12s (%s %s)",
			pos.Body, zodiac.FormatDegree(pos.Longitude), sign, zodiac.FormatDegree(deg))
		if pos.Retrograde() {
			row += " " + cli.RetrogradeStyle.Render("R")
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func formatHouseSet(houses model.HouseSet) string {
	var b strings.Builder

	b.WriteString(cli.SubtitleStyle.Render("House Cusps"))
	b.WriteString("\n")
	for i, cusp := range houses.Cusps {
		sign, deg := zodiac.SignOf(cusp)
		b.WriteString(fmt.Sprintf("house %-2d %-12s (%s %s)\n",
			i+1, zodiac.FormatDegree(cusp), sign, zodiac.FormatDegree(deg)))
	}

	b.WriteString(cli.SubtitleStyle.Render("Angles"))
	b.WriteString("\n")
	angles := []struct {
		name  string
		value float64
	}{
		{"ascendant", houses.Angles.Ascendant},
		{"midheaven", houses.Angles.Midheaven},
		{"armc", houses.Angles.ARMC},
		{"vertex", houses.Angles.Vertex},
	}
	for _, a := range angles {
		sign, deg := zodiac.SignOf(a.value)
		b.WriteString(fmt.Sprintf("%-10s %-12s (%s %s)\n",
			a.name, zodiac.FormatDegree(a.value), sign, zodiac.FormatDegree(deg)))
	}

	return b.String()
}
