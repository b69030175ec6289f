// Package search orchestrates the nearby-provider search: geolocation
// acquisition, category selection, and the remote query.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

// State of the flow. Category selection is tracked separately because the
// user can pick a category at any point regardless of location progress.
type State string

const (
	StateIdle             State = "idle"
	StateLocationPending  State = "location_pending"
	StateLocationResolved State = "location_resolved"
	StateSearching        State = "searching"
	StateResults          State = "results"
	StateSearchFailed     State = "search_failed"
)

// Location status messages surfaced to the user.
const (
	statusFetching    = "Fetching location..."
	statusUnsupported = "Geolocation not supported."
	statusDenied      = "Location access denied."
	statusDetected    = "Location detected!"
)

var (
	// ErrNoLocation rejects a search submitted before a coordinate fix.
	ErrNoLocation = fmt.Errorf("%w: enable location first", entity.ErrValidation)
	// ErrNoCategory rejects a search submitted without a category.
	ErrNoCategory = fmt.Errorf("%w: select a category first", entity.ErrValidation)
	// ErrSuperseded marks a response discarded because a newer search was
	// dispatched while this one was in flight.
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// Flow is the provider search state machine. Responses are not guaranteed
// to resolve in dispatch order, so every dispatch takes a monotonically
// increasing sequence number and only the response matching the newest
// dispatch is applied; anything older is discarded on arrival.
type Flow struct {
	sensor port.LocationSensor
	api    port.SearchAPI
	logger *zap.Logger

	mu             sync.Mutex
	state          State
	coords         *entity.Coordinates
	locationStatus string
	categoryID     string
	results        []entity.SearchResult
	lastErr        error
	dispatched     uint64
}

func NewFlow(sensor port.LocationSensor, api port.SearchAPI, logger *zap.Logger) *Flow {
	return &Flow{
		sensor: sensor,
		api:    api,
		logger: logger,
		state:  StateIdle,
	}
}

// AcquireLocation requests one coordinate fix. Called automatically on view
// entry; may be re-invoked after a failure. Unsupported and denied sensors
// drop the flow back to idle with a user-visible status.
func (f *Flow) AcquireLocation(ctx context.Context) error {
	f.mu.Lock()
	f.state = StateLocationPending
	f.locationStatus = statusFetching
	f.mu.Unlock()

	coords, err := f.sensor.Current(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateIdle
		switch {
		case errors.Is(err, entity.ErrLocationUnsupported):
			f.locationStatus = statusUnsupported
		case errors.Is(err, entity.ErrLocationDenied):
			f.locationStatus = statusDenied
		default:
			f.locationStatus = statusDenied
		}
		f.logger.Warn("Location acquisition failed", zap.Error(err))
		return fmt.Errorf("search.Flow.AcquireLocation: %w", err)
	}

	f.coords = &coords
	f.state = StateLocationResolved
	f.locationStatus = statusDetected
	f.logger.Debug("Location resolved",
		zap.Float64("lat", coords.Latitude), zap.Float64("lng", coords.Longitude))
	return nil
}

// SetCoordinates supplies a position manually, e.g. typed into the
// marketplace filter, unblocking search when no sensor is available.
func (f *Flow) SetCoordinates(coords entity.Coordinates) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coords = &coords
	if f.state == StateIdle || f.state == StateLocationPending {
		f.state = StateLocationResolved
	}
	f.locationStatus = statusDetected
}

// SelectCategory records the chosen category. Valid in any state.
func (f *Flow) SelectCategory(categoryID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categoryID = categoryID
}

// SubmitSearch dispatches the query and applies the response atomically.
// The guard is an explicit precondition check: without both a coordinate
// fix and a category the submission is rejected before any network call.
// On remote failure the previous result set stays visible. Re-entrant from
// any terminal state.
func (f *Flow) SubmitSearch(ctx context.Context) ([]entity.SearchResult, error) {
	f.mu.Lock()
	if f.coords == nil {
		f.mu.Unlock()
		return nil, ErrNoLocation
	}
	if f.categoryID == "" {
		f.mu.Unlock()
		return nil, ErrNoCategory
	}
	query := entity.SearchQuery{Coordinates: *f.coords, CategoryID: f.categoryID}
	f.dispatched++
	seq := f.dispatched
	f.state = StateSearching
	f.mu.Unlock()

	results, err := f.api.SearchNearby(ctx, query)

	f.mu.Lock()
	defer f.mu.Unlock()

	// A newer search was dispatched while this one was in flight; its
	// outcome owns the flow now. Drop this response entirely.
	if seq != f.dispatched {
		f.logger.Debug("Discarding stale search response",
			zap.Uint64("seq", seq), zap.Uint64("latest", f.dispatched))
		return nil, ErrSuperseded
	}

	if err != nil {
		f.state = StateSearchFailed
		f.lastErr = err
		f.logger.Error("Search failed", zap.String("category_id", query.CategoryID), zap.Error(err))
		return nil, fmt.Errorf("search.Flow.SubmitSearch: %w", err)
	}

	f.results = results
	f.state = StateResults
	f.lastErr = nil
	f.logger.Info("Search completed",
		zap.String("category_id", query.CategoryID), zap.Int("results", len(results)))
	return append([]entity.SearchResult(nil), results...), nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) LocationStatus() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locationStatus
}

func (f *Flow) Coordinates() *entity.Coordinates {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.coords == nil {
		return nil
	}
	coords := *f.coords
	return &coords
}

func (f *Flow) CategoryID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categoryID
}

// Results returns the current result set. The slice is a copy; the flow
// replaces its collection wholesale on every successful search.
func (f *Flow) Results() []entity.SearchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.SearchResult(nil), f.results...)
}

// LastError reports the most recent search failure, nil after a success.
func (f *Flow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}
