package store

import "time"

// Supplier lead times by order size. Small orders ship next day; larger
// orders take progressively longer.
var deliveryTiers = []struct {
	maxUnits int
	days     int
}{
	{10, 1},
	{100, 4},
	{1000, 7},
}

const deliveryDaysLargeOrder = 14

// SupplierDeliveryDate estimates the delivery date for an order of the
// given size starting from startDate (ISO-8601). An empty or malformed
// start date falls back to now.
func SupplierDeliveryDate(startDate string, quantity int, now func() time.Time) string {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		start = now()
	}

	days := deliveryDaysLargeOrder
	for _, tier := range deliveryTiers {
		if quantity <= tier.maxUnits {
			days = tier.days
			break
		}
	}

	return start.AddDate(0, 0, days).Format("2006-01-02")
}
