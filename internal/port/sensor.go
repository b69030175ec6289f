package port

import (
	"context"

	"github.com/sneha3498/infosysproject/internal/entity"
)

// LocationSensor acquires the device position. One invocation produces
// exactly one fix or an error; there is no automatic retry and no timeout
// beyond the context's. Failures are entity.ErrLocationUnsupported when the
// capability is absent and entity.ErrLocationDenied when acquisition failed.
type LocationSensor interface {
	Current(ctx context.Context) (entity.Coordinates, error)
}
