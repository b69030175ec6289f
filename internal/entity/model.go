package entity

import "time"

// Category is server-owned reference data; the client never mutates the set.
type Category struct {
	ID          string
	Name        string
	Description string
}

// Coordinates is a device location fix. Produced at most once per search
// session; it is not re-polled.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// SearchQuery is a nearby-provider search. Both fields are preconditions:
// a query with missing coordinates or category must never reach the backend.
type SearchQuery struct {
	Coordinates Coordinates
	CategoryID  string
}

// Listing is a bookable service offering owned by exactly one provider.
// Disabled is client-local only; see the listing manager's ToggleDisabled.
type Listing struct {
	ID          string
	ProviderID  string
	CategoryID  string
	Title       string
	Description string
	Price       float64
	ImageURL    string
	Approved    bool
	Disabled    bool
	CreatedAt   time.Time
}

// SearchResult is one entry of a search response. It lives only until the
// next search replaces the whole result set.
type SearchResult struct {
	ID          string
	CategoryID  string
	Title       string
	Description string
	Price       float64
	ImageURL    string
	Distance    *float64
}

// User is the profile record behind /user/{id}.
type User struct {
	ID                 string
	Email              string
	UserName           string
	Role               Role
	ImageURL           string
	Number             int64
	PermanentLatitude  *float64
	PermanentLongitude *float64
	PermanentAddress   string
	CreatedAt          time.Time
}
