package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lakeviewsainik/hostel-gobackend/internal/services"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

// AdminHandler serves the admin profile endpoint.
type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// GetCredentials handles GET /api/admin/credentials. The response is the
// seeded admin profile; the password never leaves the store.
func (h *AdminHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	admin, err := h.service.Profile(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Admin record not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to fetch admin record", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// RequireAdmin wraps a handler with the HTTP Basic credential check. The
// pair must match the configured admin credentials exactly; anything else
// gets a 401 with a Basic challenge and the wrapped handler never runs.
func RequireAdmin(admins *services.AdminService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !admins.Authenticate(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="hostel admin"`)
			http.Error(w, "Incorrect username or password", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
