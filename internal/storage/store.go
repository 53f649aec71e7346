// Package storage defines the persistence interfaces for residents and the
// admin record. The abstraction keeps the service layer independent of the
// backing document store.
package storage

import (
	"context"
	"errors"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
)

// ErrNotFound is returned when the referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// ResidentStore is the document collection holding residents, keyed by the
// resident id. Bills live inside the resident document as an ordered array
// and are always read and written through the owning resident.
type ResidentStore interface {
	// List returns up to limit residents, fully materialized.
	List(ctx context.Context, limit int64) ([]models.Resident, error)

	// Get returns the resident with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.Resident, error)

	// Insert persists a new resident document.
	Insert(ctx context.Context, r *models.Resident) error

	// InsertMany persists a batch of residents (startup seeding).
	InsertMany(ctx context.Context, residents []models.Resident) error

	// UpdateFields applies a field-level patch to the resident with the
	// given id, or returns ErrNotFound.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error

	// SetBills overwrites the resident's whole bill array in one write,
	// or returns ErrNotFound.
	SetBills(ctx context.Context, id string, bills []models.Bill) error

	// Delete removes the resident with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the number of resident documents.
	Count(ctx context.Context) (int64, error)
}

// AdminStore holds the single admin credential document.
type AdminStore interface {
	// Get returns the admin record, or ErrNotFound when none is seeded.
	Get(ctx context.Context) (*models.Admin, error)

	// Insert persists the admin record.
	Insert(ctx context.Context, a *models.Admin) error

	// Count returns the number of admin documents.
	Count(ctx context.Context) (int64, error)
}
