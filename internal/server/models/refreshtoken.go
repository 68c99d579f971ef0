package models

import "time"

// RefreshToken is a row in the outstanding set. Token is the signed string
// itself; Email is the identity it was issued to at issuance time.
type RefreshToken struct {
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
