package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/akorlov/mapmark/internal/client/models"
)

// requestTimeout bounds every request to the backend.
const requestTimeout = 10 * time.Second

// HTTPClient talks JSON over HTTP to the mapmark backend. It is safe for
// concurrent use; the access token may be swapped while requests are in
// flight.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SetAccessToken sets the bearer token attached to subsequent requests.
// An empty token removes the header.
func (c *HTTPClient) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
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
	User         *models.Identity `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type userResponse struct {
	User *models.Identity `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// doJSON posts body as JSON to path and decodes a successful response into
// out (when out is non-nil). Transport failures map to ErrUnavailable;
// non-2xx statuses map to the package sentinel errors.
func (c *HTTPClient) doJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusErr(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) authorize(req *http.Request) {
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// statusErr converts an error response into a sentinel error, keeping the
// server's message where no sentinel fits.
func statusErr(resp *http.Response) error {
	var msg messageResponse
	_ = json.NewDecoder(resp.Body).Decode(&msg)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrNotFound
	}
	if msg.Message == "User already exists" {
		return ErrAlreadyExists
	}
	if msg.Message != "" {
		return errors.New(msg.Message)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (*AuthResult, error) {
	var out authResponse
	err := c.doJSON(ctx, "/api/register", registerRequest{Name: name, Email: email, Password: string(password)}, &out)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: out.User, AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	var out authResponse
	err := c.doJSON(ctx, "/api/login", loginRequest{Email: email, Password: string(password)}, &out)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: out.User, AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out tokenResponse
	if err := c.doJSON(ctx, "/api/token", tokenRequest{Token: refreshToken}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Revoke(ctx context.Context, refreshToken string) error {
	return c.doJSON(ctx, "/api/logout", tokenRequest{Token: refreshToken}, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error) {
	var out userResponse
	err := c.doJSON(ctx, "/api.update-profile", updateProfileRequest{Email: email, Name: name, ProfilePicture: profilePicture}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *HTTPClient) Upload(ctx context.Context, fileName string, content io.Reader) (*models.StoredFile, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, statusErr(resp)
	}

	var stored models.StoredFile
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
