package domain

const (
	RequesterCtxKey  = "board-requester"
	TrackingIDCtxKey = "board-trackingId"
)

const (
	// RequesterHeader carries the identity resolved by the fronting
	// auth proxy.
	RequesterHeader = "X-Forwarded-User"

	// TrackingCookieKey is the attribution cookie key.
	TrackingCookieKey = "tracking_id"
)
