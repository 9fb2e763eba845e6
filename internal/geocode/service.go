package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"retrofit_analysis_backend/platform/apperr"
	"retrofit_analysis_backend/platform/logger"
)

const postcodesIOURL = "https://api.postcodes.io/postcodes"

// Service resolves UK postcodes to coordinates via the postcodes.io API.
type Service struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger
}

func NewService(log *logger.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: postcodesIOURL,
		log:     log,
	}
}

// Resolve geocodes a free-text postcode to coordinates.
// Returns apperr.KindNotFound when the postcode does not exist.
func (s *Service) Resolve(ctx context.Context, postcode string) (Coordinates, error) {
	result, err := s.lookup(ctx, postcode)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Latitude: result.Latitude, Longitude: result.Longitude}, nil
}

// Lookup returns the full normalized lookup payload for the HTTP endpoint.
func (s *Service) Lookup(ctx context.Context, postcode string) (LookupResponse, error) {
	result, err := s.lookup(ctx, postcode)
	if err != nil {
		return LookupResponse{}, err
	}
	return LookupResponse{
		Postcode:  result.Postcode,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		District:  result.AdminDistrict,
	}, nil
}

func (s *Service) lookup(ctx context.Context, postcode string) (postcodesIOResult, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(postcode), " ", "")
	if cleaned == "" {
		return postcodesIOResult{}, apperr.Validation("postcode is required")
	}

	reqURL := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(cleaned))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return postcodesIOResult{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("postcodes.io", 0, err)
		return postcodesIOResult{}, apperr.Wrap(apperr.KindUnavailable, "geocoding service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return postcodesIOResult{}, apperr.NotFound("address not found: " + postcode)
	}
	if resp.StatusCode != http.StatusOK {
		s.log.UpstreamError("postcodes.io", resp.StatusCode, nil)
		return postcodesIOResult{}, apperr.Unavailable(fmt.Sprintf("geocoding upstream error: %d", resp.StatusCode))
	}

	var payload postcodesIOResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.log.Error("failed to decode postcodes.io payload", "error", err)
		return postcodesIOResult{}, apperr.Wrap(apperr.KindUnavailable, "geocoding response malformed", err)
	}
	if payload.Result == nil {
		return postcodesIOResult{}, apperr.NotFound("address not found: " + postcode)
	}

	return *payload.Result, nil
}
