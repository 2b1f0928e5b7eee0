package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Sources      []int       `json:"sources"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Units        string      `json:"units"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
}

// Router asks POST /v2/matrix/{profile} for the road distance between two points.
type Router struct {
	client client
}

var _ ports.Router = (*Router)(nil)

func NewRouter(cfg Config, session *http.Client) *Router {
	return &Router{client: newClient(cfg, session, "routing")}
}

// RouteMeters returns the road distance in meters. A missing route is
// reported as upstream unavailable.
func (r *Router) RouteMeters(ctx context.Context, from, to kernel.Coordinate) (float64, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	payload, err := json.Marshal(matrixRequest{
		Locations: [][]float64{
			{from.Lon(), from.Lat()},
			{to.Lon(), to.Lat()},
		},
		Sources:      []int{0},
		Destinations: []int{1},
		Metrics:      []string{"distance"},
		Units:        "m",
	})
	if err != nil {
		return 0, fmt.Errorf("marshal matrix request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", r.client.cfg.BaseURL, r.client.cfg.Profile)
	req, err := r.client.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}

	resp, err := r.client.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return 0, r.client.unavailable(fmt.Errorf("decode matrix response: %w", err))
	}

	if len(mr.Distances) != 1 || len(mr.Distances[0]) != 1 {
		return 0, r.client.unavailable(fmt.Errorf("expected a 1x1 matrix, got %d rows", len(mr.Distances)))
	}

	meters := mr.Distances[0][0]
	if meters == nil {
		return 0, r.client.unavailable(fmt.Errorf("no route between %s and %s", from, to))
	}

	return *meters, nil
}
