package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retrofit_analysis_backend/internal/planning/client"
	"retrofit_analysis_backend/platform/logger"
)

func TestSearchNearby_AppliesLookBackWindow(t *testing.T) {
	var captured struct {
		Input struct {
			Radius   int    `json:"radius"`
			DateFrom string `json:"date_from"`
			DateTo   string `json:"date_to"`
		} `json:"input"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	log := logger.New("test")
	svc := New(client.New("key", server.URL, log), 500, 5, log)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	}

	records, err := svc.SearchNearby(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d", len(records))
	}

	if captured.Input.Radius != 500 {
		t.Fatalf("expected radius 500, got %d", captured.Input.Radius)
	}
	if captured.Input.DateTo != "2026-08-26" {
		t.Fatalf("expected date_to 2026-08-26, got %q", captured.Input.DateTo)
	}
	if captured.Input.DateFrom != "2021-08-26" {
		t.Fatalf("expected date_from 2021-08-26, got %q", captured.Input.DateFrom)
	}
}

func TestSearchNearby_WrapsClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	log := logger.New("test")
	svc := New(client.New("key", server.URL, log), 500, 5, log)

	_, err := svc.SearchNearby(context.Background(), 51.5, -0.12)
	if err == nil {
		t.Fatal("expected error for failing upstream")
	}
}
