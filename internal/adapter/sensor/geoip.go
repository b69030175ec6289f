package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

// GeoIP resolves the position through an HTTP IP-geolocation endpoint.
// Any lookup failure maps to entity.ErrLocationDenied so callers can tell
// "no capability" from "capability refused", the same split a browser
// geolocation prompt gives.
type GeoIP struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

func NewGeoIP(endpoint string, timeout time.Duration, logger *zap.Logger) port.LocationSensor {
	return &GeoIP{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (g *GeoIP) Current(ctx context.Context) (entity.Coordinates, error) {
	if g.endpoint == "" {
		return entity.Coordinates{}, entity.ErrLocationUnsupported
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint, nil)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: %v", entity.ErrLocationDenied, err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.logger.Warn("GeoIP lookup failed", zap.String("endpoint", g.endpoint), zap.Error(err))
		return entity.Coordinates{}, fmt.Errorf("%w: %v", entity.ErrLocationDenied, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warn("GeoIP lookup rejected", zap.Int("status", resp.StatusCode))
		return entity.Coordinates{}, fmt.Errorf("%w: lookup returned %d", entity.ErrLocationDenied, resp.StatusCode)
	}

	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: bad lookup response: %v", entity.ErrLocationDenied, err)
	}
	return entity.Coordinates{Latitude: payload.Latitude, Longitude: payload.Longitude}, nil
}
