package domain

// Food represents a food option offered during booking. Reference data, read-only.
type Food struct {
	ID        int64
	Name      string
	UnitPrice float64
}
