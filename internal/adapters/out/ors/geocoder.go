package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocoder resolves localities through GET /geocode/search.
type Geocoder struct {
	client client
}

var _ ports.Geocoder = (*Geocoder)(nil)

// NewGeocoder creates a geocoder. A nil session gets an http.Client with cfg.Timeout.
func NewGeocoder(cfg Config, session *http.Client) *Geocoder {
	return &Geocoder{client: newClient(cfg, session, "geocoder")}
}

// Geocode returns the highest-ranked candidate. Zero candidates yield
// ports.ErrLocalityNotFound; values that are not numbers or fall outside the
// valid range yield an error wrapping kernel.ErrCoordinateIsInvalid.
func (g *Geocoder) Geocode(ctx context.Context, locality kernel.Locality) (kernel.Coordinate, error) {
	if err := locality.Validate(); err != nil {
		return kernel.Coordinate{}, err
	}

	req, err := g.client.newRequest(ctx, http.MethodGet, g.client.cfg.BaseURL+"/geocode/search", nil)
	if err != nil {
		return kernel.Coordinate{}, err
	}

	q := req.URL.Query()
	q.Set("text", locality.Query())
	q.Set("size", "1")
	if g.client.cfg.Country != "" {
		q.Set("boundary.country", g.client.cfg.Country)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.do(req)
	if err != nil {
		return kernel.Coordinate{}, err
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.Coordinate{}, g.client.unavailable(fmt.Errorf("decode geocode response: %w", err))
	}

	if len(decoded.Features) == 0 {
		return kernel.Coordinate{}, fmt.Errorf("%w: %s", ports.ErrLocalityNotFound, locality)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return kernel.Coordinate{}, fmt.Errorf("%w: expected [lon, lat], got %d values",
			kernel.ErrCoordinateIsInvalid, len(coords))
	}

	lon, err := parseOrdinate(coords[0])
	if err != nil {
		return kernel.Coordinate{}, err
	}
	lat, err := parseOrdinate(coords[1])
	if err != nil {
		return kernel.Coordinate{}, err
	}

	// GeoJSON order is [lon, lat]
	return kernel.NewCoordinate(lat, lon)
}

// parseOrdinate accepts only a JSON number. Strings, null and other values
// are reported as invalid coordinates rather than as a broken response.
func parseOrdinate(raw json.RawMessage) (float64, error) {
	var v float64
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &v) != nil {
		return 0, fmt.Errorf("%w: %s is not a number", kernel.ErrCoordinateIsInvalid, raw)
	}
	return v, nil
}
