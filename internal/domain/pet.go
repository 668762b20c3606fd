package domain

import "time"

// Pet represents a registered pet. Immutable after registration.
type Pet struct {
	ID               int64
	OwnerID          int64
	Name             string
	Species          string
	Breed            string
	Color            string
	Age              *int
	WeightKg         *float64
	LengthCm         *float64
	MicrochipID      string
	VaccinationNotes string
	SpecialNeeds     string
	PhotoFileID      *string
	CreatedAt        time.Time
}
