package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"retrofit_analysis_backend/internal/epc/client"
	"retrofit_analysis_backend/platform/logger"
)

func newCountingServer(t *testing.T, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGetByAddress_SecondLookupHitsCache(t *testing.T) {
	server, calls := newCountingServer(t, `{"rows":[{"current-energy-rating":"C","total-floor-area":"95"}]}`)
	svc := New(client.New("cred", server.URL, logger.New("test")), logger.New("test"))

	first, err := svc.GetByAddress(context.Background(), "10 Example Street, SW1A 1AA")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if first == nil || first.CurrentBand != "C" {
		t.Fatalf("expected band C record, got %+v", first)
	}

	second, err := svc.GetByAddress(context.Background(), "10 Example Street, SW1A 1AA")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if second == nil || second.CurrentBand != "C" {
		t.Fatalf("expected cached band C record, got %+v", second)
	}

	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}
}

func TestGetByAddress_CacheKeyNormalizesWhitespaceAndCase(t *testing.T) {
	server, calls := newCountingServer(t, `{"rows":[{"current-energy-rating":"B"}]}`)
	svc := New(client.New("cred", server.URL, logger.New("test")), logger.New("test"))

	if _, err := svc.GetByAddress(context.Background(), "10 Example Street"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if _, err := svc.GetByAddress(context.Background(), "  10   EXAMPLE   street "); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if calls.Load() != 1 {
		t.Fatalf("expected normalized addresses to share a cache entry, got %d calls", calls.Load())
	}
}

func TestGetByAddress_CachesMissingCertificate(t *testing.T) {
	server, calls := newCountingServer(t, `{"rows":[]}`)
	svc := New(client.New("cred", server.URL, logger.New("test")), logger.New("test"))

	for i := 0; i < 2; i++ {
		record, err := svc.GetByAddress(context.Background(), "1 Nowhere Lane")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if record != nil {
			t.Fatalf("expected nil record, got %+v", record)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected the nil result to be cached, got %d calls", calls.Load())
	}
}

func TestClearCache_ForcesRefetch(t *testing.T) {
	server, calls := newCountingServer(t, `{"rows":[{"current-energy-rating":"D"}]}`)
	svc := New(client.New("cred", server.URL, logger.New("test")), logger.New("test"))

	if _, err := svc.GetByAddress(context.Background(), "10 Example Street"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	svc.ClearCache()
	if _, err := svc.GetByAddress(context.Background(), "10 Example Street"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if calls.Load() != 2 {
		t.Fatalf("expected refetch after clear, got %d calls", calls.Load())
	}
}
