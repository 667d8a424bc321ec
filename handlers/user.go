package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/baran/kimlik/middleware"
	"github.com/baran/kimlik/pkg"
	"github.com/baran/kimlik/services"
)

// UserHandler, kullanıcı CRUD endpoint'lerini yöneten struct.
// Bu endpoint'ler route tablosunda auth middleware ile sarılıdır.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler, constructor.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get godoc
// GET /api/users/{id} (protected)
// 200 + {id, username, created_at} | 404
// password_hash response'a dahil edilmez (models.User json:"-").
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// Delete godoc
// DELETE /api/users/{id} (protected)
// 200 | 404
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	// Kim sildi? Middleware'ın context'e koyduğu doğrulanmış kimlik —
	// token tekrar parse edilmez.
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		log.Printf("[users] user %d deleted by %s", id, claims.Username())
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// parseID, path'teki {id} parametresini int64'e çevirir.
// Sayısal olmayan id → 400 (404 değil: "/api/users/abc" bir kayıt adayı bile değil).
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, pkg.ErrBadRequest
	}
	return id, nil
}
