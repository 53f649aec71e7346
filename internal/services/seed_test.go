package services

import (
	"context"
	"testing"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
	"github.com/lakeviewsainik/hostel-gobackend/internal/storage/memory"
)

func TestSeedSampleDataOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := NewResidentService(memory.NewResidentStore())

	if err := svc.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData failed: %v", err)
	}

	residents, err := svc.ListResidents(ctx)
	if err != nil {
		t.Fatalf("ListResidents failed: %v", err)
	}
	if len(residents) != 3 {
		t.Fatalf("expected 3 sample residents, got %d", len(residents))
	}

	rahul, err := svc.GetResident(ctx, "1")
	if err != nil {
		t.Fatalf("GetResident failed: %v", err)
	}
	if rahul.Name != "Rahul Kumar" || len(rahul.Bills) != 2 {
		t.Errorf("unexpected sample resident: %+v", rahul)
	}
	// Settled October bill carries its full total; open November bill zero.
	if rahul.Bills[0].Month != "November" || rahul.Bills[0].PaidAmount != 0 {
		t.Errorf("unexpected first bill: %+v", rahul.Bills[0])
	}
	if rahul.Bills[1].PaidAmount != 9400 || rahul.Bills[1].PaidDate == nil {
		t.Errorf("unexpected settled bill: %+v", rahul.Bills[1])
	}
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewResidentStore()
	svc := NewResidentService(store)

	if err := svc.SeedSampleData(ctx); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.SeedSampleData(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if count, _ := store.Count(ctx); count != 3 {
		t.Errorf("seeding must not duplicate data, count %d", count)
	}
}

func TestSeedSampleDataSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewResidentStore()
	svc := NewResidentService(store)

	existing := models.Resident{ID: "existing", Name: "Keep Me", Room: "1", Phone: "1", Bills: []models.Bill{}}
	if err := store.Insert(ctx, &existing); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := svc.SeedSampleData(ctx); err != nil {
		t.Fatalf("SeedSampleData failed: %v", err)
	}
	if count, _ := store.Count(ctx); count != 1 {
		t.Errorf("seeding must not touch a non-empty store, count %d", count)
	}
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAdminStore()
	svc := NewAdminService(store, "admin", "admin123")

	if err := svc.SeedAdmin(ctx); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}

	admin, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if admin.Username != "admin" || admin.Password != "admin123" {
		t.Errorf("unexpected seeded admin: %+v", admin)
	}

	if err := svc.SeedAdmin(ctx); err != nil {
		t.Fatalf("second SeedAdmin failed: %v", err)
	}
	if count, _ := store.Count(ctx); count != 1 {
		t.Errorf("admin seeding must be idempotent, count %d", count)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewAdminService(memory.NewAdminStore(), "admin", "admin123")

	if !svc.Authenticate("admin", "admin123") {
		t.Error("exact credentials must authenticate")
	}
	if svc.Authenticate("admin", "wrong") {
		t.Error("wrong password must not authenticate")
	}
	if svc.Authenticate("Admin", "admin123") {
		t.Error("username comparison must be case-sensitive")
	}
	if svc.Authenticate("", "") {
		t.Error("empty credentials must not authenticate")
	}
}
