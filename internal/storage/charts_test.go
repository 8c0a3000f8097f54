package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/model"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testChart(name string) *model.Chart {
	positions := model.NewPositionSet(10)
	for i, body := range model.Bodies {
		positions.Add(model.Position{
			Body:           body,
			Longitude:      float64(i) * 36.5,
			Latitude:       float64(i) * 0.1,
			Distance:       1 + float64(i)*0.5,
			LongitudeSpeed: 1 - float64(i)*0.3,
			JulianDay:      2447893.0,
		})
	}

	return &model.Chart{
		Name:         name,
		LocationName: "New York, USA",
		Location:     model.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
		Moment: model.Moment{
			When:      time.Date(1990, 1, 1, 12, 0, 0, 0, time.UTC),
			UTCOffset: -5,
			JulianDay: 2447893.0,
		},
		HouseSystem: model.Placidus,
		Houses: model.HouseSet{
			Cusps:  [12]float64{100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70},
			Angles: model.Angles{Ascendant: 100, Midheaven: 10, ARMC: 8.5, Vertex: 250},
		},
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Positions: positions,
	}
}

func TestSaveAndGetChart(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	original := testChart("natal")
	require.NoError(t, s.SaveChart(ctx, original))

	loaded, err := s.GetChart(ctx, "natal")
	require.NoError(t, err)

	assert.Equal(t, original.Name, loaded.Name)
	assert.Equal(t, original.LocationName, loaded.LocationName)
	assert.Equal(t, original.Location, loaded.Location)
	assert.Equal(t, original.Moment.UTCOffset, loaded.Moment.UTCOffset)
	assert.Equal(t, original.Moment.JulianDay, loaded.Moment.JulianDay)
	assert.True(t, original.Moment.When.Equal(loaded.Moment.When))
	assert.Equal(t, original.HouseSystem, loaded.HouseSystem)
	assert.Equal(t, original.Houses, loaded.Houses)

	// Position order and values must survive the round trip.
	want := original.Positions.Entries()
	got := loaded.Positions.Entries()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "position %d", i)
	}
}

func TestGetChartNotFound(t *testing.T) {
	s := setupStorage(t)

	_, err := s.GetChart(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrChartNotFound)
}

func TestSaveChartReplaces(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveChart(ctx, testChart("natal")))

	updated := testChart("natal")
	updated.LocationName = "London, UK"
	require.NoError(t, s.SaveChart(ctx, updated))

	loaded, err := s.GetChart(ctx, "natal")
	require.NoError(t, err)
	assert.Equal(t, "London, UK", loaded.LocationName)
	assert.Equal(t, 10, loaded.Positions.Len())

	charts, err := s.ListCharts(ctx)
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

func TestListCharts(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveChart(ctx, testChart("first")))
	require.NoError(t, s.SaveChart(ctx, testChart("second")))

	charts, err := s.ListCharts(ctx)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	names := []string{charts[0].Name, charts[1].Name}
	assert.Contains(t, names, "first")
	assert.Contains(t, names, "second")
}

func TestDeleteChart(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveChart(ctx, testChart("natal")))
	require.NoError(t, s.DeleteChart(ctx, "natal"))

	_, err := s.GetChart(ctx, "natal")
	assert.ErrorIs(t, err, common.ErrChartNotFound)

	err = s.DeleteChart(ctx, "natal")
	assert.ErrorIs(t, err, common.ErrChartNotFound)
}

func TestSaveChartValidation(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	assert.Error(t, s.SaveChart(ctx, nil))

	unnamed := testChart("")
	assert.Error(t, s.SaveChart(ctx, unnamed))
}
