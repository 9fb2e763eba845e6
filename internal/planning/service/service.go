// Package service provides business logic for planning-application searches.
package service

import (
	"context"
	"fmt"
	"time"

	"retrofit_analysis_backend/internal/planning/client"
	"retrofit_analysis_backend/internal/planning/transport"
	"retrofit_analysis_backend/platform/logger"
)

// Service handles planning-application searches around a property.
// Results are always fetched fresh: planning histories change daily and the
// analysis contract promises freshly fetched data per request.
type Service struct {
	client       *client.Client
	log          *logger.Logger
	radiusMeters int
	yearsBack    int
	now          func() time.Time
}

// New creates a new planning search service.
func New(client *client.Client, radiusMeters, yearsBack int, log *logger.Logger) *Service {
	return &Service{
		client:       client,
		log:          log,
		radiusMeters: radiusMeters,
		yearsBack:    yearsBack,
		now:          time.Now,
	}
}

// SearchNearby returns planning applications within the configured radius
// of the given point, limited to the configured look-back window.
func (s *Service) SearchNearby(ctx context.Context, latitude, longitude float64) ([]transport.PlanningRecord, error) {
	today := s.now().UTC()
	dateTo := today.Format("2006-01-02")
	dateFrom := today.AddDate(-s.yearsBack, 0, 0).Format("2006-01-02")

	records, err := s.client.SearchByLocation(ctx, client.SearchQuery{
		Latitude:     latitude,
		Longitude:    longitude,
		RadiusMeters: s.radiusMeters,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("planning search: %w", err)
	}

	s.log.Debug("planning search complete",
		"lat", latitude, "lng", longitude,
		"radius_m", s.radiusMeters, "found", len(records))

	return records, nil
}
