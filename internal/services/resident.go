package services

import (
	"context"
	"sync"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage"
)

// listLimit caps the resident listing; there is no pagination.
const listLimit = 100

// ResidentService implements resident CRUD and the bill upsert on top of a
// ResidentStore.
type ResidentService struct {
	store storage.ResidentStore

	// Bill upserts read, merge, and write back the whole bill array; the
	// store cannot do that atomically, so upserts for the same resident
	// are serialized here.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewResidentService(store storage.ResidentStore) *ResidentService {
	return &ResidentService{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *ResidentService) ListResidents(ctx context.Context) ([]models.Resident, error) {
	return s.store.List(ctx, listLimit)
}

func (s *ResidentService) GetResident(ctx context.Context, id string) (*models.Resident, error) {
	return s.store.Get(ctx, id)
}

// CreateResident validates the request, assigns an id and join date, and
// persists the new resident.
func (s *ResidentService) CreateResident(ctx context.Context, create models.ResidentCreate) (*models.Resident, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}

	resident := models.NewResident(create)
	if err := s.store.Insert(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

// UpdateResident applies a field-level patch and returns the post-update
// resident. Fields absent from the patch keep their stored values.
func (s *ResidentService) UpdateResident(ctx context.Context, id string, update models.ResidentUpdate) (*models.Resident, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if fields := update.Fields(); len(fields) > 0 {
		if err := s.store.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.store.Get(ctx, id)
}

func (s *ResidentService) DeleteResident(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// UpsertBill inserts or replaces the resident's bill for the incoming
// (month, year), moves it to the front of the bill list, and writes the
// whole list back in a single field update. Returns the updated resident.
func (s *ResidentService) UpsertBill(ctx context.Context, id string, bill models.Bill) (*models.Resident, error) {
	if err := bill.Validate(); err != nil {
		return nil, err
	}

	lock := s.residentLock(id)
	lock.Lock()
	defer lock.Unlock()

	resident, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resident.Bills = models.MergeBill(resident.Bills, bill)
	if err := s.store.SetBills(ctx, id, resident.Bills); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *ResidentService) residentLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
