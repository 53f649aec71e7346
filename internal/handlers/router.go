package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lakeviewsainik/hostel-gobackend/internal/services"
)

// NewHandler builds the full HTTP stack: routes under /api, the health and
// metrics endpoints, request logging and metrics, and the outermost CORS
// wrapper. Mutating resident routes and the admin profile route require
// Basic auth; listing and reading residents do not.
func NewHandler(residents *ResidentHandler, admin *AdminHandler, admins *services.AdminService, origins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(loggingMiddleware, metricsMiddleware)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return RequireAdmin(admins, next)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/residents", residents.ListResidents).Methods("GET")
	api.HandleFunc("/residents", auth(residents.CreateResident)).Methods("POST")
	api.HandleFunc("/residents/{residentID}", residents.GetResident).Methods("GET")
	api.HandleFunc("/residents/{residentID}", auth(residents.UpdateResident)).Methods("PUT")
	api.HandleFunc("/residents/{residentID}", auth(residents.DeleteResident)).Methods("DELETE")
	api.HandleFunc("/residents/{residentID}/bills", auth(residents.UpsertBill)).Methods("POST")
	api.HandleFunc("/admin/credentials", auth(admin.GetCredentials)).Methods("GET")

	return corsMiddleware(origins)(router)
}
