package secretboard

import (
	"time"
)

const (
	EventPostCreated string = "post.created"
	EventPostDeleted string = "post.deleted"
)

// Event is the wire format published on the board event channel and
// forwarded to realtime subscribers.
type Event struct {
	Type     string    `json:"type"`
	PostID   uint      `json:"postID"`
	PostedBy string    `json:"postedBy,omitempty"`
	Occurred time.Time `json:"occurred"`
}
