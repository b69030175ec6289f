package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/usecase/category"
)

type MockListingAPI struct{ mock.Mock }

func (m *MockListingAPI) ListingsByProvider(ctx context.Context, providerID int64) ([]entity.Listing, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Listing), args.Error(1)
}

func (m *MockListingAPI) ListingByID(ctx context.Context, listingID int64) (*entity.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingAPI) CreateListing(ctx context.Context, providerID int64, draft entity.ListingDraft) (*entity.Listing, error) {
	args := m.Called(ctx, providerID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingAPI) UpdateListing(ctx context.Context, listingID int64, draft entity.ListingDraft) (*entity.Listing, error) {
	args := m.Called(ctx, listingID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingAPI) DeleteListing(ctx context.Context, listingID int64) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

type MockCategoryAPI struct{ mock.Mock }

func (m *MockCategoryAPI) Categories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func newManager(api *MockListingAPI, categories *MockCategoryAPI) *Manager {
	dir := category.NewDirectory(categories, zap.NewNop())
	return NewManager(api, dir, zap.NewNop())
}

func TestLoad_ReplacesCollectionWholesale(t *testing.T) {
	api := new(MockListingAPI)
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "1", Title: "AC Repair"}}, nil)

	m := newManager(api, new(MockCategoryAPI))
	assert.NoError(t, m.Load(context.Background(), "5"))
	assert.Len(t, m.Listings(), 1)
	assert.False(t, m.LoadFailed())
}

func TestLoad_FailureEmptiesCollectionAndRaisesFlag(t *testing.T) {
	api := new(MockListingAPI)
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "1"}}, nil).Once()
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return(nil, errors.New("backend down")).Once()

	m := newManager(api, new(MockCategoryAPI))
	assert.NoError(t, m.Load(context.Background(), "5"))
	assert.Error(t, m.Load(context.Background(), "5"))
	assert.Empty(t, m.Listings())
	assert.True(t, m.LoadFailed())
}

func TestLoad_NonNumericProviderFailsFast(t *testing.T) {
	api := new(MockListingAPI)
	m := newManager(api, new(MockCategoryAPI))

	err := m.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, entity.ErrValidation)
	api.AssertNotCalled(t, "ListingsByProvider", mock.Anything, mock.Anything)
}

func TestCreate_MissingProviderFailsWithoutNetworkCall(t *testing.T) {
	api := new(MockListingAPI)
	m := newManager(api, new(MockCategoryAPI))

	_, err := m.Create(context.Background(), "", entity.ListingDraft{
		Title: "AC Repair", Description: "Split units", Price: 500, CategoryID: "1",
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
	api.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_CategoryRequiredOnlyWhenAvailable(t *testing.T) {
	draft := entity.ListingDraft{Title: "AC Repair", Description: "Split units", Price: 500}

	api := new(MockListingAPI)
	categories := new(MockCategoryAPI)
	categories.On("Categories", mock.Anything).
		Return([]entity.Category{{ID: "1", Name: "Plumbing"}}, nil).Once()

	m := newManager(api, categories)
	_, err := m.Create(context.Background(), "5", draft)
	assert.ErrorIs(t, err, entity.ErrValidation)
	api.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything)

	// With the directory unavailable the set degrades to empty and the
	// category requirement is waived.
	categories.On("Categories", mock.Anything).Return(nil, errors.New("backend down")).Once()
	api.On("CreateListing", mock.Anything, int64(5), draft).
		Return(&entity.Listing{ID: "9", Title: draft.Title}, nil)

	created, err := m.Create(context.Background(), "5", draft)
	assert.NoError(t, err)
	assert.Equal(t, "9", created.ID)
}

func TestCreate_RequiredFields(t *testing.T) {
	api := new(MockListingAPI)
	m := newManager(api, new(MockCategoryAPI))

	for _, draft := range []entity.ListingDraft{
		{Description: "d", Price: 10, CategoryID: "1"},
		{Title: "t", Price: 10, CategoryID: "1"},
		{Title: "t", Description: "d", CategoryID: "1"},
	} {
		_, err := m.Create(context.Background(), "5", draft)
		assert.ErrorIs(t, err, entity.ErrValidation)
	}
	api.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_RemovesEntryOnlyOnSuccess(t *testing.T) {
	api := new(MockListingAPI)
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "1"}, {ID: "2"}}, nil)
	api.On("DeleteListing", mock.Anything, int64(1)).Return(nil)
	api.On("DeleteListing", mock.Anything, int64(2)).Return(errors.New("backend down"))

	m := newManager(api, new(MockCategoryAPI))
	assert.NoError(t, m.Load(context.Background(), "5"))

	assert.NoError(t, m.Delete(context.Background(), "1"))
	assert.Equal(t, []entity.Listing{{ID: "2"}}, m.Listings())

	assert.Error(t, m.Delete(context.Background(), "2"))
	assert.Equal(t, []entity.Listing{{ID: "2"}}, m.Listings())
}

func TestDelete_ThenReloadDoesNotResurrect(t *testing.T) {
	api := new(MockListingAPI)
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "1"}, {ID: "2"}}, nil).Once()
	api.On("DeleteListing", mock.Anything, int64(1)).Return(nil)
	// Reload simulates the backend having confirmed the delete.
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "2"}}, nil).Once()

	m := newManager(api, new(MockCategoryAPI))
	assert.NoError(t, m.Load(context.Background(), "5"))
	assert.NoError(t, m.Delete(context.Background(), "1"))
	assert.NoError(t, m.Load(context.Background(), "5"))
	assert.Equal(t, []entity.Listing{{ID: "2"}}, m.Listings())
}

func TestToggleDisabled_RoundTripWithoutNetwork(t *testing.T) {
	api := new(MockListingAPI)
	api.On("ListingsByProvider", mock.Anything, int64(5)).
		Return([]entity.Listing{{ID: "1", Title: "AC Repair"}}, nil)

	m := newManager(api, new(MockCategoryAPI))
	assert.NoError(t, m.Load(context.Background(), "5"))

	disabled, err := m.ToggleDisabled("1")
	assert.NoError(t, err)
	assert.True(t, disabled)

	disabled, err = m.ToggleDisabled("1")
	assert.NoError(t, err)
	assert.False(t, disabled)
	assert.False(t, m.Listings()[0].Disabled)

	api.AssertNumberOfCalls(t, "ListingsByProvider", 1)
	api.AssertNotCalled(t, "UpdateListing", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleDisabled_UnknownListing(t *testing.T) {
	m := newManager(new(MockListingAPI), new(MockCategoryAPI))
	_, err := m.ToggleDisabled("99")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGet_NonNumericIDFailsFast(t *testing.T) {
	api := new(MockListingAPI)
	m := newManager(api, new(MockCategoryAPI))

	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrValidation)
	api.AssertNotCalled(t, "ListingByID", mock.Anything, mock.Anything)
}
