// Package client provides the HTTP client for the IBex planning-application API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"retrofit_analysis_backend/internal/planning/transport"
	"retrofit_analysis_backend/platform/logger"
)

const (
	searchPath         = "/search"
	defaultHTTPTimeout = 30 * time.Second
	searchPageSize     = 1000
	wgs84SRID          = 4326
)

// Client is the HTTP client for the IBex planning data API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	log        *logger.Logger
}

// New creates a new IBex API client.
func New(apiKey, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// SearchQuery describes a radius search around a point.
type SearchQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	DateFrom     string // ISO date, optional
	DateTo       string // ISO date, optional
}

type searchInput struct {
	SRID          int       `json:"srid"`
	Coordinates   []float64 `json:"coordinates"` // [lng, lat]
	Radius        int       `json:"radius"`
	Page          int       `json:"page"`
	PageSize      int       `json:"page_size"`
	DateFrom      string    `json:"date_from,omitempty"`
	DateTo        string    `json:"date_to,omitempty"`
	DateRangeType string    `json:"date_range_type,omitempty"`
}

type searchPayload struct {
	Input      searchInput         `json:"input"`
	Extensions map[string]bool     `json:"extensions"`
	Filters    map[string][]string `json:"filters,omitempty"`
}

// apiApplication is the raw application record from the IBex search response.
type apiApplication struct {
	PlanningReference  string  `json:"planning_reference"`
	Proposal           string  `json:"proposal"`
	NormalisedDecision string  `json:"normalised_decision"`
	ApplicationDate    string  `json:"application_date"`
	DecidedDate        *string `json:"decided_date"`
	EPCRating          string  `json:"epc_rating"`
	CentrePoint        *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"centre_point"`
}

// SearchByLocation fetches planning applications within a radius of a point.
// An empty result is legitimate and returns an empty slice, not an error.
func (c *Client) SearchByLocation(ctx context.Context, query SearchQuery) ([]transport.PlanningRecord, error) {
	payload := searchPayload{
		Input: searchInput{
			SRID:        wgs84SRID,
			Coordinates: []float64{query.Longitude, query.Latitude},
			Radius:      query.RadiusMeters,
			Page:        1,
			PageSize:    searchPageSize,
		},
		Extensions: map[string]bool{
			"centre_point": true,
			"heading":      true,
			"project_type": true,
		},
	}
	if query.DateFrom != "" {
		payload.Input.DateFrom = query.DateFrom
	}
	if query.DateTo != "" {
		payload.Input.DateTo = query.DateTo
	}
	if query.DateFrom != "" || query.DateTo != "" {
		payload.Input.DateRangeType = "validated"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("ibex", 0, err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized:
		c.log.UpstreamError("ibex", resp.StatusCode, nil)
		return nil, fmt.Errorf("unauthorized: invalid API key")
	default:
		c.log.UpstreamError("ibex", resp.StatusCode, nil)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var apiApps []apiApplication
	if err := json.NewDecoder(resp.Body).Decode(&apiApps); err != nil {
		c.log.Error("ibex decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]transport.PlanningRecord, 0, len(apiApps))
	for _, app := range apiApps {
		records = append(records, app.toTransport())
	}

	return records, nil
}

func (a *apiApplication) toTransport() transport.PlanningRecord {
	record := transport.PlanningRecord{
		Reference: a.PlanningReference,
		Proposal:  a.Proposal,
		Decision:  normalizeDecision(a.NormalisedDecision),
		EPCBand:   strings.ToUpper(strings.TrimSpace(a.EPCRating)),
	}

	if submitted, ok := parseAPIDate(a.ApplicationDate); ok {
		record.SubmissionDate = submitted
	}
	if a.DecidedDate != nil {
		if decided, ok := parseAPIDate(*a.DecidedDate); ok {
			record.DecisionDate = &decided
		}
	}
	if a.CentrePoint != nil {
		record.Location = &transport.Location{
			Latitude:  a.CentrePoint.Latitude,
			Longitude: a.CentrePoint.Longitude,
		}
	}

	return record
}

// normalizeDecision maps free-form upstream decision labels onto the
// normalized Decision enum.
func normalizeDecision(raw string) transport.Decision {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return transport.DecisionUnknown
	case strings.Contains(value, "approv"), strings.Contains(value, "grant"), strings.Contains(value, "permit"):
		return transport.DecisionApproved
	case strings.Contains(value, "refus"), strings.Contains(value, "reject"), strings.Contains(value, "dismiss"):
		return transport.DecisionRefused
	case strings.Contains(value, "pending"), strings.Contains(value, "undecided"), strings.Contains(value, "awaiting"):
		return transport.DecisionPending
	default:
		return transport.DecisionUnknown
	}
}

// parseAPIDate accepts the timestamp formats the API is known to emit.
func parseAPIDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
