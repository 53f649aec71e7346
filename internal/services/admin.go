package services

import (
	"context"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

// AdminService validates admin credentials and serves the admin profile.
// The credential pair is fixed at construction; the store only holds the
// seeded profile record.
type AdminService struct {
	store    storage.AdminStore
	username string
	password string
}

func NewAdminService(store storage.AdminStore, username, password string) *AdminService {
	return &AdminService{store: store, username: username, password: password}
}

// Authenticate reports whether the presented pair matches the configured
// admin credentials. Plain case-sensitive equality, no hashing.
func (s *AdminService) Authenticate(username, password string) bool {
	return username == s.username && password == s.password
}

// Profile returns the seeded admin record. The password field is tagged out
// of the JSON encoding, so the response carries only non-secret fields.
func (s *AdminService) Profile(ctx context.Context) (*models.Admin, error) {
	return s.store.Get(ctx)
}
