package models

import "time"

// TTLPolicy controls automatic eviction of journal evidence.
type TTLPolicy string

const (
	TTL24h   TTLPolicy = "24h"
	TTL48h   TTLPolicy = "48h"
	TTLNever TTLPolicy = "never"
)

// Duration returns the policy's eviction window. ok is false for TTLNever
// (and for unknown values, which are treated as "never" rather than silently
// wiping evidence).
func (p TTLPolicy) Duration() (d time.Duration, ok bool) {
	switch p {
	case TTL24h:
		return 24 * time.Hour, true
	case TTL48h:
		return 48 * time.Hour, true
	default:
		return 0, false
	}
}

// Valid reports whether p is one of the supported policies.
func (p TTLPolicy) Valid() bool {
	return p == TTL24h || p == TTL48h || p == TTLNever
}
