package httpapi

import "github.com/akorlov/mapmark/internal/server/models"

// userPayload is the wire projection of an Identity. The password hash is
// excluded from the type entirely, so it can never leak through rendering.
type userPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

func toUserPayload(identity *models.Identity) userPayload {
	return userPayload{
		Name:           identity.Name,
		Email:          identity.Email,
		ProfilePicture: identity.ProfilePicture,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type updateProfileRequest struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

type authResponse struct {
	User         userPayload `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type userResponse struct {
	User userPayload `json:"user"`
}
