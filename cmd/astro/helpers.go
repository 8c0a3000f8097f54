package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/config"
	"github.com/quixand/astro-transits/internal/ephemeris"
	"github.com/quixand/astro-transits/internal/ephemeris/meanorbit"
	"github.com/quixand/astro-transits/internal/geocoder"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/service"
	"github.com/quixand/astro-transits/internal/storage"
)

// momentLayouts are the accepted input formats for --time flags.
var momentLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newFacade wires the ephemeris facade over the built-in provider.
func newFacade() *ephemeris.Facade {
	return ephemeris.NewFacade(meanorbit.New())
}

// newGeocoder builds the Nominatim client from configuration.
func newGeocoder() *geocoder.Client {
	userAgent := viper.GetString("geocoder.user_agent")
	if userAgent == "" {
		userAgent = "astro-transits"
	}

	opts := []geocoder.Option{}
	if baseURL := viper.GetString("geocoder.url"); baseURL != "" {
		opts = append(opts, geocoder.WithBaseURL(baseURL))
	}
	if timeout := viper.GetDuration("geocoder.timeout"); timeout > 0 {
		opts = append(opts, geocoder.WithTimeout(timeout))
	}

	return geocoder.NewClient(userAgent, opts...)
}

// parseMoment parses a civil time flag in one of the accepted layouts.
func parseMoment(value string) (time.Time, error) {
	for _, layout := range momentLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (expected e.g. 2006-01-02 15:04)", value)
}

// configuredHouseSystem reads the house system from config, defaulting
// to Placidus.
func configuredHouseSystem() (model.HouseSystem, error) {
	code := viper.GetString("chart.house_system")
	if code == "" {
		return model.Placidus, nil
	}
	hs, err := model.ParseHouseSystem(code)
	if err != nil {
		return 0, fmt.Errorf("%w: chart.house_system: %v", common.ErrInvalidConfig, err)
	}
	return hs, nil
}
