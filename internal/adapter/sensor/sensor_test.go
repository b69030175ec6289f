package sensor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
)

func TestUnsupported(t *testing.T) {
	_, err := NewUnsupported().Current(context.Background())
	assert.ErrorIs(t, err, entity.ErrLocationUnsupported)
}

func TestStatic(t *testing.T) {
	coords, err := NewStatic(40.0, -74.0).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Latitude: 40.0, Longitude: -74.0}, coords)
}

func TestGeoIP_ResolvesCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude":40.0,"longitude":-74.0}`))
	}))
	defer srv.Close()

	coords, err := NewGeoIP(srv.URL, time.Second, zap.NewNop()).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Latitude: 40.0, Longitude: -74.0}, coords)
}

func TestGeoIP_LookupFailureIsDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewGeoIP(srv.URL, time.Second, zap.NewNop()).Current(context.Background())
	assert.ErrorIs(t, err, entity.ErrLocationDenied)
}

func TestGeoIP_NoEndpointIsUnsupported(t *testing.T) {
	_, err := NewGeoIP("", time.Second, zap.NewNop()).Current(context.Background())
	assert.ErrorIs(t, err, entity.ErrLocationUnsupported)
}
