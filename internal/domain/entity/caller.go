package entity

import "github.com/google/uuid"

// Caller identifies who is asking for an analysis.
// An anonymous caller has no UserID and is tracked by network address only.
type Caller struct {
	UserID  uuid.UUID
	Address string
}

// AnonymousCaller builds a caller without a user identity.
func AnonymousCaller(address string) Caller {
	return Caller{Address: address}
}

// AuthenticatedCaller builds a caller bound to a user.
func AuthenticatedCaller(userID uuid.UUID, address string) Caller {
	return Caller{UserID: userID, Address: address}
}

// IsAuthenticated reports whether the caller carries a user identity.
func (c Caller) IsAuthenticated() bool {
	return c.UserID != uuid.Nil
}
