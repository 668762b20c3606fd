package domain

import "time"

// Stats aggregate counters for the admin panel.
type Stats struct {
	TotalPets     int64
	TotalBookings int64
	Revenue       float64
}

// BookingExportRow is a denormalized booking row for CSV export.
type BookingExportRow struct {
	BookingID      int64
	OwnerName      string
	PetName        string
	KennelCode     *string
	StartDate      time.Time
	EndDate        time.Time
	FoodName       *string
	FoodQuantity   int
	FeedingPerDay  int
	Services       string
	EstimatedPrice float64
	CreatedAt      time.Time
}

// ClientRow is an owner joined with one of their pets (nil pet fields for
// owners without pets).
type ClientRow struct {
	OwnerID int64
	Name    string
	Phone   *string
	PetID   *int64
	PetName *string
}
