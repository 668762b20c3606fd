package domain

// Kennel represents a physical boarding unit. Reference data, read-only.
// Only active kennels are offered for new bookings.
type Kennel struct {
	ID         int64
	Code       string
	Size       string
	DailyPrice float64
	IsActive   bool
}
