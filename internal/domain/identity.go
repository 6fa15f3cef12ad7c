package domain

import "context"

type Role int

const (
	RoleAnonymous Role = iota
	RoleNamed
	RoleAdmin
)

// Identity is the requester as resolved by the fronting auth proxy.
// It is trusted input: this core performs no authentication of its own.
type Identity struct {
	Role Role
	Name string
}

func Anonymous() Identity { return Identity{Role: RoleAnonymous} }

func Named(name string) Identity { return Identity{Role: RoleNamed, Name: name} }

func Admin(name string) Identity { return Identity{Role: RoleAdmin, Name: name} }

// CanDelete reports whether the identity may delete a post authored by
// postedBy. A post belongs to its author; admins may delete anything.
func (i Identity) CanDelete(postedBy string) bool {
	if i.Role == RoleAdmin {
		return true
	}
	return i.Role == RoleNamed && i.Name == postedBy
}

// PostedBy is the value recorded on posts created by this identity.
// Anonymous requesters leave it empty.
func (i Identity) PostedBy() string {
	return i.Name
}

func (i Identity) String() string {
	if i.Role == RoleAnonymous {
		return "anonymous"
	}
	return i.Name
}

// RequesterFromContext returns the identity stored by the identity
// middleware, or Anonymous when none was resolved.
func RequesterFromContext(ctx context.Context) Identity {
	if requester, ok := ctx.Value(RequesterCtxKey).(Identity); ok {
		return requester
	}
	return Anonymous()
}

// TrackingIDFromContext returns the tracking identifier stored by the
// tracking middleware.
func TrackingIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(TrackingIDCtxKey).(string); ok {
		return id
	}
	return ""
}
