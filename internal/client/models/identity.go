// Package models holds the client-side data types exchanged with the
// backend and cached in the local session state.
package models

// Identity is the signed-in user as the backend reports it. The password
// hash never reaches the client.
type Identity struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}
