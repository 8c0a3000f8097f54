package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/service"
)

const momentFormat = time.RFC3339

// SaveChart stores a named chart and its positions atomically,
// replacing any existing chart of the same name.
func (s *SQLiteStorage) SaveChart(ctx context.Context, chart *model.Chart) error {
	if chart == nil {
		return fmt.Errorf("chart must not be nil")
	}
	if chart.Name == "" {
		return fmt.Errorf("chart name must not be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO charts
		(name, location_name, latitude, longitude, moment, utc_offset, julian_day,
		 house_system, ascendant, midheaven, armc, vertex, cusps, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		chart.Name,
		chart.LocationName,
		chart.Location.Latitude,
		chart.Location.Longitude,
		chart.Moment.When.Format(momentFormat),
		chart.Moment.UTCOffset,
		chart.Moment.JulianDay,
		string(rune(chart.HouseSystem)),
		chart.Houses.Angles.Ascendant,
		chart.Houses.Angles.Midheaven,
		chart.Houses.Angles.ARMC,
		chart.Houses.Angles.Vertex,
		encodeCusps(chart.Houses.Cusps),
		chart.CreatedAt.Format(momentFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM chart_positions WHERE chart_name = ?`, chart.Name); err != nil {
		return fmt.Errorf("failed to clear chart positions: %w", err)
	}

	for i, pos := range chart.Positions.Entries() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chart_positions
			(chart_name, position, body, longitude, latitude, distance,
			 longitude_speed, latitude_speed, distance_speed, julian_day)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			chart.Name, i, int(pos.Body),
			pos.Longitude, pos.Latitude, pos.Distance,
			pos.LongitudeSpeed, pos.LatitudeSpeed, pos.DistanceSpeed,
			pos.JulianDay,
		)
		if err != nil {
			return fmt.Errorf("failed to save position for %s: %w", pos.Body, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chart: %w", err)
	}
	return nil
}

// GetChart loads a chart by name, including its positions in their
// original insertion order.
func (s *SQLiteStorage) GetChart(ctx context.Context, name string) (*model.Chart, error) {
	var (
		chart        model.Chart
		momentStr    string
		createdStr   string
		houseSysStr  string
		cuspsEncoded string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT name, location_name, latitude, longitude, moment, utc_offset,
		       julian_day, house_system, ascendant, midheaven, armc, vertex,
		       cusps, created_at
		FROM charts WHERE name = ?`, name).Scan(
		&chart.Name,
		&chart.LocationName,
		&chart.Location.Latitude,
		&chart.Location.Longitude,
		&momentStr,
		&chart.Moment.UTCOffset,
		&chart.Moment.JulianDay,
		&houseSysStr,
		&chart.Houses.Angles.Ascendant,
		&chart.Houses.Angles.Midheaven,
		&chart.Houses.Angles.ARMC,
		&chart.Houses.Angles.Vertex,
		&cuspsEncoded,
		&createdStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", common.ErrChartNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	if chart.Moment.When, err = time.Parse(momentFormat, momentStr); err != nil {
		return nil, fmt.Errorf("invalid stored moment %q: %w", momentStr, err)
	}
	if chart.CreatedAt, err = time.Parse(momentFormat, createdStr); err != nil {
		return nil, fmt.Errorf("invalid stored created_at %q: %w", createdStr, err)
	}
	if len(houseSysStr) != 1 {
		return nil, fmt.Errorf("invalid stored house system %q", houseSysStr)
	}
	chart.HouseSystem = model.HouseSystem(houseSysStr[0])
	if chart.Houses.Cusps, err = decodeCusps(cuspsEncoded); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT body, longitude, latitude, distance,
		       longitude_speed, latitude_speed, distance_speed, julian_day
		FROM chart_positions WHERE chart_name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart positions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	positions := model.NewPositionSet(10)
	for rows.Next() {
		var pos model.Position
		var body int
		if err := rows.Scan(&body, &pos.Longitude, &pos.Latitude, &pos.Distance,
			&pos.LongitudeSpeed, &pos.LatitudeSpeed, &pos.DistanceSpeed, &pos.JulianDay); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		pos.Body = model.Body(body)
		positions.Add(pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}
	chart.Positions = positions

	return &chart, nil
}

// ListCharts returns summaries of all saved charts, newest first.
func (s *SQLiteStorage) ListCharts(ctx context.Context) ([]service.ChartSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, location_name, moment, utc_offset, julian_day
		FROM charts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []service.ChartSummary
	for rows.Next() {
		var summary service.ChartSummary
		var momentStr string
		if err := rows.Scan(&summary.Name, &summary.LocationName, &momentStr,
			&summary.Moment.UTCOffset, &summary.Moment.JulianDay); err != nil {
			return nil, fmt.Errorf("failed to scan chart summary: %w", err)
		}
		if summary.Moment.When, err = time.Parse(momentFormat, momentStr); err != nil {
			return nil, fmt.Errorf("invalid stored moment %q: %w", momentStr, err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate charts: %w", err)
	}

	return summaries, nil
}

// DeleteChart removes a chart and its positions.
func (s *SQLiteStorage) DeleteChart(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chart_positions WHERE chart_name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete chart positions: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM charts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete chart: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", common.ErrChartNotFound, name)
	}

	return tx.Commit()
}

// encodeCusps packs the twelve cusps into a comma-separated string.
func encodeCusps(cusps [12]float64) string {
	parts := make([]string, len(cusps))
	for i, c := range cusps {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// decodeCusps parses a stored cusp string back into the fixed array.
func decodeCusps(encoded string) ([12]float64, error) {
	var cusps [12]float64
	parts := strings.Split(encoded, ",")
	if len(parts) != 12 {
		return cusps, fmt.Errorf("expected 12 cusps, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return cusps, fmt.Errorf("invalid cusp %q: %w", p, err)
		}
		cusps[i] = v
	}
	return cusps, nil
}
