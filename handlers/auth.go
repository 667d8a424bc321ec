// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi "ince" (thin) olmalı:
//  1. Request body'yi parse et (JSON → struct)
//  2. Service katmanını çağır
//  3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/baran/kimlik/models"
	"github.com/baran/kimlik/pkg"
	"github.com/baran/kimlik/services"
)

// AuthHandler, register/login endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler, constructor.
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// POST /register
// Body: { "username": "...", "password": "..." }
// 201 + {id, username, created_at} | 409 username alınmış | 400 geçersiz input
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// PasswordHash json:"-" ile zaten dışarıda — response'ta sadece
	// id/username/created_at görünür.
	pkg.JSON(w, http.StatusCreated, user)
}

// Login godoc
// POST /login
// Body: { "username": "...", "password": "..." }
// 200 + {token} | 401 generic "invalid username or password"
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"token": token})
}
