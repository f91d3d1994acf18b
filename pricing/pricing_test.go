package pricing

import (
	"testing"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

func TestSizePrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int64
		size      models.Size
		want      int64
	}{
		{"regular keeps base", 1000, models.SizeRegular, 1000},
		{"medium multiplies by 1.3", 1000, models.SizeMedium, 1300},
		{"large multiplies by 1.6", 1000, models.SizeLarge, 1600},
		{"rounds half up", 999, models.SizeMedium, 1299},
		{"rounds half up at boundary", 250, models.SizeMedium, 325},
		{"unknown size falls back to regular", 1000, models.Size("Huge"), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizePrice(tt.basePrice, tt.size); got != tt.want {
				t.Errorf("SizePrice(%d, %q) = %d, want %d", tt.basePrice, tt.size, got, tt.want)
			}
		})
	}
}

func TestEntryTotal(t *testing.T) {
	tests := []struct {
		name  string
		entry models.CartEntry
		want  int64
	}{
		{
			name: "large with add-on times two",
			entry: models.CartEntry{
				UnitBasePrice: 1000,
				Size:          models.SizeLarge,
				AddOns:        []models.OptionChoice{{Name: "Spicy Gravy", Surcharge: 150}},
				Quantity:      2,
			},
			want: 3500,
		},
		{
			name: "side dish applied per unit",
			entry: models.CartEntry{
				UnitBasePrice: 800,
				Size:          models.SizeRegular,
				SideDish:      &models.OptionChoice{Name: "Vegetable Raita", Surcharge: 150},
				Quantity:      3,
			},
			want: 2850,
		},
		{
			name: "plain regular single item",
			entry: models.CartEntry{
				UnitBasePrice: 650,
				Size:          models.SizeRegular,
				Quantity:      1,
			},
			want: 650,
		},
		{
			name: "everything together",
			entry: models.CartEntry{
				UnitBasePrice: 1000,
				Size:          models.SizeMedium,
				SideDish:      &models.OptionChoice{Name: "Mango Pickle", Surcharge: 100},
				AddOns: []models.OptionChoice{
					{Name: "Extra Boiled Egg", Surcharge: 150},
					{Name: "Chilipast", Surcharge: 50},
				},
				Quantity: 2,
			},
			want: 3200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntryTotal(tt.entry); got != tt.want {
				t.Errorf("EntryTotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrderTotals(t *testing.T) {
	entries := []models.CartEntry{
		{TotalPrice: 3500},
		{TotalPrice: 650},
	}

	t.Run("delivery adds the delivery charge", func(t *testing.T) {
		totals := OrderTotals(entries, models.ServiceTypeDelivery)
		if totals.Subtotal != 4150 {
			t.Errorf("Subtotal = %d, want 4150", totals.Subtotal)
		}
		if totals.DeliveryCharge != 400 {
			t.Errorf("DeliveryCharge = %d, want 400", totals.DeliveryCharge)
		}
		if totals.Total != 4550 {
			t.Errorf("Total = %d, want 4550", totals.Total)
		}
	})

	t.Run("takeaway carries no delivery charge", func(t *testing.T) {
		totals := OrderTotals(entries, models.ServiceTypeTakeaway)
		if totals.DeliveryCharge != 0 {
			t.Errorf("DeliveryCharge = %d, want 0", totals.DeliveryCharge)
		}
		if totals.Total != 4150 {
			t.Errorf("Total = %d, want 4150", totals.Total)
		}
	})

	t.Run("empty basket", func(t *testing.T) {
		totals := OrderTotals(nil, models.ServiceTypeDelivery)
		if totals.Subtotal != 0 {
			t.Errorf("Subtotal = %d, want 0", totals.Subtotal)
		}
		if totals.Total != 400 {
			t.Errorf("Total = %d, want 400", totals.Total)
		}
	})

	t.Run("total is always the sum of its parts", func(t *testing.T) {
		totals := OrderTotals(entries, models.ServiceTypeDelivery)
		if totals.Total != totals.Subtotal+totals.DeliveryCharge+totals.PackingCharge {
			t.Errorf("Total %d != subtotal %d + delivery %d + packing %d",
				totals.Total, totals.Subtotal, totals.DeliveryCharge, totals.PackingCharge)
		}
	})
}
