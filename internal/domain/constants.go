package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Extra service surcharges, flat per stay
const (
	GroomingSurcharge = 5.0
	WalkingSurcharge  = 2.0
)

// Service keywords recognized in the free-text services field
const (
	serviceKeywordGroom = "groom"
	serviceKeywordWalk  = "walk"
)
