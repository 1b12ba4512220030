package entity

import "time"

// IdentityKind tells whether a quota identity is a user or an anonymous address.
type IdentityKind string

const (
	// IdentityUser keys counters by user ID.
	IdentityUser IdentityKind = "user"
	// IdentityAddress keys counters by a one-way hash of the caller address.
	IdentityAddress IdentityKind = "address"
)

// QuotaIdentity is the subject a usage counter is kept for.
type QuotaIdentity struct {
	Kind  IdentityKind
	Value string
}

// String returns kind:value, safe to log since Value is never a raw address.
func (q QuotaIdentity) String() string {
	return string(q.Kind) + ":" + q.Value
}

// UsageKey addresses a single counter row.
type UsageKey struct {
	Identity QuotaIdentity
	// Day is the calendar date at 00:00 UTC, regardless of the quota time zone.
	Day time.Time
}

// UsageCounter is the number of successful house-blend analyses for a key.
type UsageCounter struct {
	Key       UsageKey
	Count     int
	UpdatedAt time.Time
}

// UsageSnapshot is the caller-facing view of a counter.
type UsageSnapshot struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resets_at"`
}

// NewUsageSnapshot derives Remaining from used and limit, never below zero.
func NewUsageSnapshot(used, limit int, resetsAt time.Time) UsageSnapshot {
	if limit < 0 {
		limit = 0
	}

	return UsageSnapshot{
		Used:      used,
		Limit:     limit,
		Remaining: max(limit-used, 0),
		ResetsAt:  resetsAt,
	}
}
