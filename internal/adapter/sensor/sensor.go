// Package sensor provides the location sensor implementations. A process
// without any configured sensor behaves like a browser without geolocation:
// acquisition fails with entity.ErrLocationUnsupported.
package sensor

import (
	"context"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

// Unsupported is the sensor used when no location capability is configured.
type Unsupported struct{}

func NewUnsupported() port.LocationSensor {
	return Unsupported{}
}

func (Unsupported) Current(context.Context) (entity.Coordinates, error) {
	return entity.Coordinates{}, entity.ErrLocationUnsupported
}

// Static resolves to a fixed position from configuration.
type Static struct {
	coords entity.Coordinates
}

func NewStatic(latitude, longitude float64) port.LocationSensor {
	return &Static{coords: entity.Coordinates{Latitude: latitude, Longitude: longitude}}
}

func (s *Static) Current(context.Context) (entity.Coordinates, error) {
	return s.coords, nil
}
