package entity

import "io"

// ImageUpload is a file attached to a multipart submission.
type ImageUpload struct {
	FileName string
	Content  io.Reader
}

// ListingDraft carries the editable fields of a listing for create and
// update. Update is a full replace of these fields.
type ListingDraft struct {
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Image       *ImageUpload
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	UserName string
	Email    string
	Number   int64
	Image    *ImageUpload
}

// LocationUpdate sets a user's permanent location.
type LocationUpdate struct {
	Latitude  float64
	Longitude float64
	Address   string
}
