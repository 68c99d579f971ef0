// Package httpapi exposes the session lifecycle over JSON/HTTP. Routes and
// status codes follow the public API contract: /api/register, /api/login,
// /api/token, /api/logout, /api.update-profile (sic), /api/upload.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/logging"
	"github.com/akorlov/mapmark/internal/server/services"
	"github.com/akorlov/mapmark/internal/server/uploads"
)

const (
	maxJSONBytes   = 1 << 20  // request bodies
	maxUploadBytes = 32 << 20 // multipart uploads
)

// Handler wires the HTTP endpoints to the session service and upload storage.
type Handler struct {
	logger   logging.Logger
	sessions *services.SessionService
	storage  uploads.Storage
}

// NewHandler constructs a Handler.
func NewHandler(logger logging.Logger, sessions *services.SessionService, storage uploads.Storage) *Handler {
	return &Handler{logger: logger, sessions: sessions, storage: storage}
}

// Register wires the API routes onto the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/register", h.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/login", h.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/token", h.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", h.handleLogout).Methods(http.MethodPost)
	// The dot is part of the published path; clients depend on it.
	r.HandleFunc("/api.update-profile", h.handleUpdateProfile).Methods(http.MethodPost)
	r.HandleFunc("/api/upload", h.handleUpload).Methods(http.MethodPost)
}

// NewRouter builds the full router: routes plus the CORS middleware for the
// single allowed client origin.
func NewRouter(h *Handler, clientOrigin string) http.Handler {
	r := mux.NewRouter()
	h.Register(r)
	return corsMiddleware(clientOrigin, r)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	h.logger.Info(ctx, "registration request", "email", req.Email)

	result, err := h.sessions.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Error(ctx, "registration failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.logger.Info(ctx, "registered", "email", req.Email)
	writeJSON(w, http.StatusCreated, authResponse{
		User:         toUserPayload(result.Identity),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	h.logger.Info(ctx, "login attempt", "email", req.Email)

	result, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Login failed")
			return
		}
		h.logger.Error(ctx, "login failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.logger.Info(ctx, "login successful", "email", req.Email)
	writeJSON(w, http.StatusOK, authResponse{
		User:         toUserPayload(result.Identity),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	accessToken, err := h.sessions.Refresh(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoToken):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, common.ErrTokenRevoked),
			errors.Is(err, common.ErrTokenExpired),
			errors.Is(err, common.ErrInvalidToken):
			w.WriteHeader(http.StatusForbidden)
		default:
			h.logger.Error(ctx, "token refresh failed", "error", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.sessions.Revoke(r.Context(), req.Token); err != nil {
		h.logger.Error(r.Context(), "logout failed", "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	h.logger.Info(ctx, "profile update attempt", "email", req.Email)

	identity, err := h.sessions.UpdateProfile(ctx, req.Email, req.Name, req.ProfilePicture)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error(ctx, "profile update failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: toUserPayload(identity)})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	stored, err := h.storage.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error(r.Context(), "upload failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stored)
}
