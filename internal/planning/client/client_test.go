package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retrofit_analysis_backend/internal/planning/transport"
	"retrofit_analysis_backend/platform/logger"
)

func TestSearchByLocation_BuildsExpectedPayload(t *testing.T) {
	var captured searchPayload
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if r.URL.Path != "/search" {
			t.Errorf("expected /search, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := New("test-key", server.URL, logger.New("test"))
	records, err := c.SearchByLocation(context.Background(), SearchQuery{
		Latitude:     51.5,
		Longitude:    -0.12,
		RadiusMeters: 500,
		DateFrom:     "2021-08-26",
		DateTo:       "2026-08-26",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}

	if authHeader != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", authHeader)
	}
	if captured.Input.SRID != 4326 {
		t.Fatalf("expected SRID 4326, got %d", captured.Input.SRID)
	}
	// Coordinates go lng-first on the wire.
	if len(captured.Input.Coordinates) != 2 || captured.Input.Coordinates[0] != -0.12 || captured.Input.Coordinates[1] != 51.5 {
		t.Fatalf("expected [lng, lat], got %v", captured.Input.Coordinates)
	}
	if captured.Input.Radius != 500 {
		t.Fatalf("expected radius 500, got %d", captured.Input.Radius)
	}
	if captured.Input.DateRangeType != "validated" {
		t.Fatalf("expected validated date range, got %q", captured.Input.DateRangeType)
	}
}

func TestSearchByLocation_MapsApplications(t *testing.T) {
	decided := "2024-03-15"
	response := []apiApplication{
		{
			PlanningReference:  "24/00123/FUL",
			Proposal:           "Installation of solar panels",
			NormalisedDecision: "Application Granted",
			ApplicationDate:    "2024-01-10",
			DecidedDate:        &decided,
			EPCRating:          "c",
		},
		{
			PlanningReference:  "24/00456/HSE",
			Proposal:           "Air source heat pump",
			NormalisedDecision: "Awaiting Decision",
			ApplicationDate:    "2024-05-01",
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	c := New("key", server.URL, logger.New("test"))
	records, err := c.SearchByLocation(context.Background(), SearchQuery{Latitude: 51.5, Longitude: -0.12, RadiusMeters: 500})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Decision != transport.DecisionApproved {
		t.Fatalf("expected approved, got %s", first.Decision)
	}
	if first.DecisionDate == nil || first.DecisionDate.Format("2006-01-02") != "2024-03-15" {
		t.Fatalf("expected decision date 2024-03-15, got %v", first.DecisionDate)
	}
	if first.EPCBand != "C" {
		t.Fatalf("expected normalized band C, got %q", first.EPCBand)
	}
	if days, ok := first.DecisionDays(); !ok || days != 65 {
		t.Fatalf("expected 65 decision days, got %f (ok=%v)", days, ok)
	}

	second := records[1]
	if second.Decision != transport.DecisionPending {
		t.Fatalf("expected pending, got %s", second.Decision)
	}
	if second.DecisionDate != nil {
		t.Fatal("expected no decision date for pending application")
	}
}

func TestSearchByLocation_UpstreamErrorStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New("key", server.URL, logger.New("test"))
	_, err := c.SearchByLocation(context.Background(), SearchQuery{Latitude: 51.5, Longitude: -0.12, RadiusMeters: 500})
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestNormalizeDecision(t *testing.T) {
	cases := []struct {
		raw  string
		want transport.Decision
	}{
		{"Application Granted", transport.DecisionApproved},
		{"APPROVED with conditions", transport.DecisionApproved},
		{"Permitted Development", transport.DecisionApproved},
		{"Refused", transport.DecisionRefused},
		{"Application Rejected", transport.DecisionRefused},
		{"Appeal Dismissed", transport.DecisionRefused},
		{"Pending Consideration", transport.DecisionPending},
		{"Awaiting Decision", transport.DecisionPending},
		{"Withdrawn", transport.DecisionUnknown},
		{"", transport.DecisionUnknown},
	}

	for _, tc := range cases {
		if got := normalizeDecision(tc.raw); got != tc.want {
			t.Fatalf("normalizeDecision(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseAPIDate(t *testing.T) {
	if _, ok := parseAPIDate(""); ok {
		t.Fatal("expected empty date to fail")
	}
	if _, ok := parseAPIDate("not-a-date"); ok {
		t.Fatal("expected garbage to fail")
	}
	if parsed, ok := parseAPIDate("2024-01-10"); !ok || parsed.Year() != 2024 {
		t.Fatalf("expected date-only parse, got %v (ok=%v)", parsed, ok)
	}
	if parsed, ok := parseAPIDate("2024-01-10T12:30:00Z"); !ok || parsed.Day() != 10 {
		t.Fatalf("expected RFC3339 parse, got %v (ok=%v)", parsed, ok)
	}
}
