// Package memory implements the storage interfaces in process memory.
// It backs the test suite and is handy for local development without a
// running MongoDB.
package memory

import (
	"context"
	"sync"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

var (
	_ storage.ResidentStore = (*ResidentStore)(nil)
	_ storage.AdminStore    = (*AdminStore)(nil)
)

// ResidentStore keeps residents in a map, preserving insertion order for
// listing the way a fresh collection scan would.
type ResidentStore struct {
	mu        sync.RWMutex
	residents map[string]models.Resident
	order     []string
}

func NewResidentStore() *ResidentStore {
	return &ResidentStore{residents: make(map[string]models.Resident)}
}

func (s *ResidentStore) List(_ context.Context, limit int64) ([]models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	residents := []models.Resident{}
	for _, id := range s.order {
		if int64(len(residents)) == limit {
			break
		}
		residents = append(residents, copyResident(s.residents[id]))
	}
	return residents, nil
}

func (s *ResidentStore) Get(_ context.Context, id string) (*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.residents[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	r = copyResident(r)
	return &r, nil
}

func (s *ResidentStore) Insert(_ context.Context, r *models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.residents[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.residents[r.ID] = copyResident(*r)
	return nil
}

func (s *ResidentStore) InsertMany(ctx context.Context, residents []models.Resident) error {
	for i := range residents {
		if err := s.Insert(ctx, &residents[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ResidentStore) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.residents[id]
	if !ok {
		return storage.ErrNotFound
	}
	for name, value := range fields {
		switch name {
		case "name":
			r.Name = value.(string)
		case "room":
			r.Room = value.(string)
		case "phone":
			r.Phone = value.(string)
		case "email":
			r.Email = value.(string)
		case "bills":
			r.Bills = append([]models.Bill(nil), value.([]models.Bill)...)
		}
	}
	s.residents[id] = r
	return nil
}

func (s *ResidentStore) SetBills(ctx context.Context, id string, bills []models.Bill) error {
	return s.UpdateFields(ctx, id, map[string]any{"bills": bills})
}

func (s *ResidentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.residents[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.residents, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *ResidentStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.residents)), nil
}

func copyResident(r models.Resident) models.Resident {
	r.Bills = append([]models.Bill(nil), r.Bills...)
	return r
}

// AdminStore keeps the single admin record.
type AdminStore struct {
	mu    sync.RWMutex
	admin *models.Admin
}

func NewAdminStore() *AdminStore {
	return &AdminStore{}
}

func (s *AdminStore) Get(_ context.Context) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.admin == nil {
		return nil, storage.ErrNotFound
	}
	admin := *s.admin
	return &admin, nil
}

func (s *AdminStore) Insert(_ context.Context, a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := *a
	s.admin = &admin
	return nil
}

func (s *AdminStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.admin == nil {
		return 0, nil
	}
	return 1, nil
}
