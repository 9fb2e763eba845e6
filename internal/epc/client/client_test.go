package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"retrofit_analysis_backend/platform/logger"
)

func TestSearchByAddress_ParsesStringValuedRows(t *testing.T) {
	var authHeader, query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows":[{
			"current-energy-rating": "d",
			"total-floor-area": "104.5",
			"co2-emissions-current": "3.8",
			"energy-consumption-current": "245",
			"property-type": "House",
			"built-form": "Semi-Detached",
			"address": "10 Example Street",
			"postcode": "SW1A 1AA",
			"lodgement-date": "2022-06-01"
		}]}`))
	}))
	defer server.Close()

	c := New("encoded-cred", server.URL, logger.New("test"))
	record, err := c.SearchByAddress(context.Background(), "10 Example Street, SW1A 1AA")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if record == nil {
		t.Fatal("expected a record")
	}

	if authHeader != "Basic encoded-cred" {
		t.Fatalf("expected basic auth, got %q", authHeader)
	}
	if query != "address=10+Example+Street%2C+SW1A+1AA&size=1" {
		t.Fatalf("unexpected query: %q", query)
	}
	if record.CurrentBand != "D" {
		t.Fatalf("expected normalized band D, got %q", record.CurrentBand)
	}
	if record.FloorAreaM2 == nil || *record.FloorAreaM2 != 104.5 {
		t.Fatalf("expected floor area 104.5, got %v", record.FloorAreaM2)
	}
	if record.CO2EmissionsT == nil || *record.CO2EmissionsT != 3.8 {
		t.Fatalf("expected CO2 3.8, got %v", record.CO2EmissionsT)
	}
}

func TestSearchByAddress_NoCertificateIsNilNotError(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := New("cred", server.URL, logger.New("test"))
		record, err := c.SearchByAddress(context.Background(), "1 Nowhere Lane")
		server.Close()

		if err != nil {
			t.Fatalf("status %d: expected nil error, got %v", status, err)
		}
		if record != nil {
			t.Fatalf("status %d: expected nil record, got %+v", status, record)
		}
	}
}

func TestSearchByAddress_EmptyRowsIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows":[]}`))
	}))
	defer server.Close()

	c := New("cred", server.URL, logger.New("test"))
	record, err := c.SearchByAddress(context.Background(), "1 Nowhere Lane")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record, got %+v", record)
	}
}

func TestParseOptionalFloat(t *testing.T) {
	if v := parseOptionalFloat(""); v != nil {
		t.Fatalf("expected nil for empty, got %v", *v)
	}
	if v := parseOptionalFloat("INVALID!"); v != nil {
		t.Fatalf("expected nil for garbage, got %v", *v)
	}
	if v := parseOptionalFloat(" 88.2 "); v == nil || *v != 88.2 {
		t.Fatalf("expected 88.2, got %v", v)
	}
}
