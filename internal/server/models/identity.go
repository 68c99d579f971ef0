// Package models defines the server-side data model: registered identities
// and the outstanding refresh tokens tracked for revocation.
package models

// Identity is a registered user's credential and profile record.
// Email is the unique key and is immutable after registration.
// PasswordHash is the bcrypt hash of the password; the plaintext is never
// stored, and the hash must never be rendered to the wire.
type Identity struct {
	Name           string
	Email          string
	PasswordHash   string
	ProfilePicture string
}

// Clone returns a copy of the identity so callers cannot mutate store state
// through a returned pointer.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
