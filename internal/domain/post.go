package domain

import "time"

// Post is a single board entry. ID is assigned by the store and never
// changes for the lifetime of the record; posts are never updated in
// place.
type Post struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	PostedBy       string    `json:"postedBy,omitempty"`
	TrackingCookie string    `json:"trackingCookie,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
