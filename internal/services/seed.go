package services

import (
	"context"
	"log/slog"

	"github.com/lakeviewsainik/hostel-gobackend/internal/models"
)

// SeedSampleData populates an empty residents collection with the fixed
// sample set. It acts only when the collection count is exactly zero and
// never touches existing data.
func (s *ResidentService) SeedSampleData(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding sample resident data", "residents", len(sampleResidents))
	return s.store.InsertMany(ctx, sampleResidents)
}

// SeedAdmin inserts the admin record from the configured credentials when
// the admin collection is empty.
func (s *AdminService) SeedAdmin(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding admin credentials", "username", s.username)
	return s.store.Insert(ctx, &models.Admin{
		Username: s.username,
		Password: s.password,
		Name:     "Admin",
		Email:    "admin@lakeviewsainik.com",
	})
}

func date(s string) *string { return &s }

// sampleResidents is the first-startup data set. Settled bills carry their
// full written-out total as paidAmount; open bills carry zero.
var sampleResidents = []models.Resident{
	{
		ID:       "1",
		Name:     "Rahul Kumar",
		Room:     "101",
		Phone:    "9876543210",
		Email:    "rahul@example.com",
		JoinDate: "2024-01-01",
		Bills: []models.Bill{
			{
				Month:       "November",
				Year:        2024,
				Rent:        5000,
				Electricity: 800,
				Food:        3500,
				Other:       200,
				PaidAmount:  0,
				DueDate:     "2024-11-05",
			},
			{
				Month:       "October",
				Year:        2024,
				Rent:        5000,
				Electricity: 750,
				Food:        3500,
				Other:       150,
				PaidAmount:  9400,
				DueDate:     "2024-10-05",
				PaidDate:    date("2024-10-03"),
			},
		},
	},
	{
		ID:       "2",
		Name:     "Priya Sharma",
		Room:     "102",
		Phone:    "9876543211",
		Email:    "priya@example.com",
		JoinDate: "2024-02-15",
		Bills: []models.Bill{
			{
				Month:       "November",
				Year:        2024,
				Rent:        5000,
				Electricity: 650,
				Food:        3500,
				Other:       0,
				PaidAmount:  0,
				DueDate:     "2024-11-05",
			},
			{
				Month:       "October",
				Year:        2024,
				Rent:        5000,
				Electricity: 700,
				Food:        3500,
				Other:       100,
				PaidAmount:  9300,
				DueDate:     "2024-10-05",
				PaidDate:    date("2024-10-02"),
			},
		},
	},
	{
		ID:       "3",
		Name:     "Amit Patel",
		Room:     "103",
		Phone:    "9876543212",
		Email:    "amit@example.com",
		JoinDate: "2024-01-20",
		Bills: []models.Bill{
			{
				Month:       "November",
				Year:        2024,
				Rent:        5000,
				Electricity: 900,
				Food:        3500,
				Other:       500,
				PaidAmount:  0,
				DueDate:     "2024-11-05",
			},
		},
	},
}
