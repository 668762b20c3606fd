package domain

import "time"

// Booking represents a committed kennel stay.
//
// Invariant: for a given kennel no two bookings' closed [StartDate, EndDate]
// intervals may overlap. The invariant is enforced by the create_booking
// usecase inside a serializable transaction; bookings are never updated or
// deleted afterwards.
type Booking struct {
	ID             int64
	PetID          int64
	KennelID       int64
	FoodID         *int64
	StartDate      time.Time
	EndDate        time.Time
	FoodQuantity   int
	FeedingPerDay  int
	Services       string
	EstimatedPrice float64
	CreatedAt      time.Time
}

// Overlaps reports whether the booking's closed date interval overlaps
// the candidate closed interval [start, end].
func (b *Booking) Overlaps(start, end time.Time) bool {
	return RangesOverlap(b.StartDate, b.EndDate, start, end)
}

// StayDays returns the inclusive number of days of the stay.
func (b *Booking) StayDays() int {
	return DaysBetween(b.StartDate, b.EndDate)
}
