// Package client provides the HTTP client for the EPC open-data register.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"retrofit_analysis_backend/internal/epc/transport"
	"retrofit_analysis_backend/platform/logger"
)

const defaultHTTPTimeout = 10 * time.Second

// Client is the HTTP client for the EPC register search API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	log        *logger.Logger
}

// New creates a new EPC register client. The API key is the pre-encoded
// basic-auth credential issued by the register.
func New(apiKey, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
		log:        log,
	}
}

// apiRow is a raw certificate row from the register. Every value comes back
// as a string, including the numeric ones.
type apiRow struct {
	CurrentEnergyRating      string `json:"current-energy-rating"`
	TotalFloorArea           string `json:"total-floor-area"`
	CO2EmissionsCurrent      string `json:"co2-emissions-current"`
	EnergyConsumptionCurrent string `json:"energy-consumption-current"`
	PropertyType             string `json:"property-type"`
	BuiltForm                string `json:"built-form"`
	Address                  string `json:"address"`
	Postcode                 string `json:"postcode"`
	LodgementDate            string `json:"lodgement-date"`
}

type searchResponse struct {
	Rows []apiRow `json:"rows"`
}

// SearchByAddress fetches the most recent certificate matching an address.
// Returns nil when no certificate exists: that is an expected outcome, not
// an error.
func (c *Client) SearchByAddress(ctx context.Context, address string) (*transport.EpcRecord, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("size", "1")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("epc-register", 0, err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusNoContent, http.StatusNotFound:
		// No certificate for this address - not an error
		c.log.Debug("epc register no record", "address", address)
		return nil, nil
	case http.StatusUnauthorized:
		c.log.UpstreamError("epc-register", resp.StatusCode, nil)
		return nil, fmt.Errorf("unauthorized: invalid API key")
	default:
		c.log.UpstreamError("epc-register", resp.StatusCode, nil)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("epc register decode failed", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Rows) == 0 {
		return nil, nil
	}

	record := payload.Rows[0].toTransport()
	return &record, nil
}

func (r *apiRow) toTransport() transport.EpcRecord {
	return transport.EpcRecord{
		CurrentBand:       strings.ToUpper(strings.TrimSpace(r.CurrentEnergyRating)),
		Address:           r.Address,
		Postcode:          r.Postcode,
		FloorAreaM2:       parseOptionalFloat(r.TotalFloorArea),
		CO2EmissionsT:     parseOptionalFloat(r.CO2EmissionsCurrent),
		EnergyConsumption: parseOptionalFloat(r.EnergyConsumptionCurrent),
		PropertyType:      r.PropertyType,
		BuiltForm:         r.BuiltForm,
		LodgementDate:     r.LodgementDate,
	}
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
