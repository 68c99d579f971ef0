package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL)
}

func TestLogin_Success(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":         map[string]string{"name": "Ada", "email": req.Email},
			"accessToken":  "access",
			"refreshToken": "refresh",
		})
	})

	res, err := c.Login(context.Background(), "ada@example.com", []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.User.Name)
	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Login failed"})
	})

	_, err := c.Login(context.Background(), "ada@example.com", []byte("wrong"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_Duplicate(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
	})

	_, err := c.Register(context.Background(), "Ada", "ada@example.com", []byte("secret1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRefresh_RevokedToken(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Refresh(context.Background(), "revoked")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRefresh_Success(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var req tokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh", req.Token)
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "renewed"})
	})

	access, err := c.Refresh(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "renewed", access)
}

func TestRevoke_NoContent(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Revoke(context.Background(), "refresh"))
}

func TestUpdateProfile_NotFound(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api.update-profile", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User not found"})
	})

	_, err := c.UpdateProfile(context.Background(), "ghost@example.com", "Ghost", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpload_Success(t *testing.T) {
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "map.geojson", fh.Filename)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"fileName": fh.Filename,
			"filePath": "uploads/abc123",
		})
	})

	stored, err := c.Upload(context.Background(), "map.geojson", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, "map.geojson", stored.FileName)
	assert.Equal(t, "uploads/abc123", stored.FilePath)
}

func TestSetAccessToken_AddsBearerHeader(t *testing.T) {
	var got string
	c := fakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "renewed"})
	})

	c.SetAccessToken("tok")
	_, err := c.Refresh(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got)
}

func TestServerDown_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewHTTPClient(srv.URL)

	_, err := c.Login(context.Background(), "ada@example.com", []byte("secret1"))
	assert.ErrorIs(t, err, ErrUnavailable)
}
