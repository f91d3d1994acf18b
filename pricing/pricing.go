// Package pricing computes per-entry and order-level totals. All amounts are
// minor currency units; functions here are pure.
package pricing

import (
	"math"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

const (
	// DeliveryCharge applies iff the order is a delivery order.
	DeliveryCharge int64 = 400
	// PackingCharge is reserved; always zero for now.
	PackingCharge int64 = 0
)

var sizeMultipliers = map[models.Size]float64{
	models.SizeRegular: 1.0,
	models.SizeMedium:  1.3,
	models.SizeLarge:   1.6,
}

// SizeMultiplier returns the multiplier for a portion size. Unknown sizes
// fall back to Regular.
func SizeMultiplier(size models.Size) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return sizeMultipliers[models.SizeRegular]
}

// SizePrice is the unit price at the given size, rounded half-up to the
// nearest minor unit.
func SizePrice(basePrice int64, size models.Size) int64 {
	return int64(math.Floor(float64(basePrice)*SizeMultiplier(size) + 0.5))
}

// EntryTotal computes the line total for one cart entry:
// (sized unit price + side-dish surcharge + sum of add-on surcharges) × quantity.
func EntryTotal(entry models.CartEntry) int64 {
	unit := SizePrice(entry.UnitBasePrice, entry.Size)
	if entry.SideDish != nil {
		unit += entry.SideDish.Surcharge
	}
	for _, addOn := range entry.AddOns {
		unit += addOn.Surcharge
	}
	return unit * int64(entry.Quantity)
}

// Subtotal sums the stored entry totals.
func Subtotal(entries []models.CartEntry) int64 {
	var subtotal int64
	for _, entry := range entries {
		subtotal += entry.TotalPrice
	}
	return subtotal
}

// OrderTotals derives the order-level charge breakdown for the current
// basket and service type.
func OrderTotals(entries []models.CartEntry, serviceType models.ServiceType) models.OrderTotals {
	totals := models.OrderTotals{
		Subtotal:      Subtotal(entries),
		PackingCharge: PackingCharge,
	}
	if serviceType == models.ServiceTypeDelivery {
		totals.DeliveryCharge = DeliveryCharge
	}
	totals.Total = totals.Subtotal + totals.DeliveryCharge + totals.PackingCharge
	return totals
}
