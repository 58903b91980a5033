// Package geocode resolves street addresses to coordinates via the Google
// Geocoding API. Callers treat failures as non-fatal and fall back to
// manually supplied coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/molcom/timeclock-backend/internal/config"
)

// ErrNoResults is returned when the API answers successfully but finds no
// location for the address.
var ErrNoResults = fmt.Errorf("geocode: no results")

// Provider fetches coordinates from the Google Geocoding API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the geocode configuration.
func NewProvider(cfg config.GeocodeConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "geocode"),
	}
}

// Enabled reports whether an API key is configured. Without a key callers
// should keep manual coordinates.
func (p *Provider) Enabled() bool {
	return p.apiKey != ""
}

// Geocode resolves an address to (latitude, longitude).
func (p *Provider) Geocode(ctx context.Context, address string) (float64, float64, error) {
	reqURL := fmt.Sprintf("%s?address=%s&key=%s", p.baseURL, url.QueryEscape(address), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "geocode request failed", slog.String("error", err.Error()))
		return 0, 0, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: read body: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, 0, fmt.Errorf("geocode: decode json: %w", err)
	}

	if parsed.Status != "OK" || len(parsed.Results) == 0 {
		p.log.DebugContext(ctx, "geocode returned no results",
			slog.String("status", parsed.Status))
		return 0, 0, ErrNoResults
	}

	loc := parsed.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
