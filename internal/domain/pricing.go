package domain

import (
	"math"
	"strings"
	"time"
)

// Price computes the estimated total for a stay:
//
//	dailyRate × inclusive stay days + foodUnitPrice × foodQuantity + service surcharges
//
// The services text is scanned case-insensitively for recognized keywords;
// each matching keyword adds its flat surcharge, unrecognized text adds
// nothing. The result is rounded to currency precision (2 decimals).
// Pure and deterministic, no I/O.
func Price(dailyRate float64, start, end time.Time, foodUnitPrice float64, foodQuantity int, services string) float64 {
	kennelTotal := dailyRate * float64(DaysBetween(start, end))
	foodTotal := foodUnitPrice * float64(foodQuantity)
	return Round2(kennelTotal + foodTotal + ServiceSurcharge(services))
}

// ServiceSurcharge returns the additive surcharge for the free-text services
// selection. Surcharges are independent of each other.
func ServiceSurcharge(services string) float64 {
	s := strings.ToLower(services)
	var total float64
	if strings.Contains(s, serviceKeywordGroom) {
		total += GroomingSurcharge
	}
	if strings.Contains(s, serviceKeywordWalk) {
		total += WalkingSurcharge
	}
	return total
}

// Round2 rounds an amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts an amount to the payment provider's minor currency
// units (cents).
func MinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}
