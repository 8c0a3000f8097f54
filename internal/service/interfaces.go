// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/quixand/astro-transits/internal/model"
)

// ChartSummary is the listing view of a saved chart.
type ChartSummary struct {
	Name         string
	LocationName string
	Moment       model.Moment
}

// Storage defines the contract for natal chart persistence.
type Storage interface {
	// Chart operations
	SaveChart(ctx context.Context, chart *model.Chart) error
	GetChart(ctx context.Context, name string) (*model.Chart, error)
	ListCharts(ctx context.Context) ([]ChartSummary, error)
	DeleteChart(ctx context.Context, name string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
