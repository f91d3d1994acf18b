package cart

import (
	"testing"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

func TestAddEntryComputesTotal(t *testing.T) {
	store := NewStore()

	entry, err := store.AddEntry(EntryInput{
		ProductID:     "p-1",
		Name:          "Chicken Biryani",
		UnitBasePrice: 1000,
		Size:          models.SizeLarge,
		AddOns:        []models.OptionChoice{{Name: "Spicy Gravy", Surcharge: 150}},
		Quantity:      2,
	})
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}

	if entry.EntryID == "" {
		t.Error("expected a generated entry id")
	}
	if entry.TotalPrice != 3500 {
		t.Errorf("TotalPrice = %d, want 3500", entry.TotalPrice)
	}
	if store.Subtotal() != 3500 {
		t.Errorf("Subtotal() = %d, want 3500", store.Subtotal())
	}
}

func TestAddEntryRejectsZeroQuantity(t *testing.T) {
	store := NewStore()

	if _, err := store.AddEntry(EntryInput{ProductID: "p-1", Quantity: 0}); err != ErrInvalidQuantity {
		t.Errorf("AddEntry() error = %v, want ErrInvalidQuantity", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestAddEntryDefaultsToRegular(t *testing.T) {
	store := NewStore()

	entry, err := store.AddEntry(EntryInput{ProductID: "p-1", UnitBasePrice: 650, Quantity: 1})
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}
	if entry.Size != models.SizeRegular {
		t.Errorf("Size = %q, want Regular", entry.Size)
	}
	if entry.TotalPrice != 650 {
		t.Errorf("TotalPrice = %d, want 650", entry.TotalPrice)
	}
}

func TestRemoveEntryIsIdempotent(t *testing.T) {
	store := NewStore()

	first, _ := store.AddEntry(EntryInput{ProductID: "p-1", UnitBasePrice: 500, Quantity: 1})
	store.AddEntry(EntryInput{ProductID: "p-2", UnitBasePrice: 700, Quantity: 1})

	store.RemoveEntry(first.EntryID)
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}

	// Second removal of the same id must leave the cart unchanged.
	store.RemoveEntry(first.EntryID)
	if store.Len() != 1 {
		t.Errorf("Len() after repeated removal = %d, want 1", store.Len())
	}
	if store.Subtotal() != 700 {
		t.Errorf("Subtotal() = %d, want 700", store.Subtotal())
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.AddEntry(EntryInput{ProductID: "p-1", UnitBasePrice: 500, Quantity: 1})

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if store.Subtotal() != 0 {
		t.Errorf("Subtotal() = %d, want 0", store.Subtotal())
	}
}

func TestServiceTypeGatesDeliveryCharge(t *testing.T) {
	store := NewStore()
	store.AddEntry(EntryInput{ProductID: "p-1", UnitBasePrice: 1000, Quantity: 1})

	// Default is delivery.
	if totals := store.Totals(); totals.DeliveryCharge != 400 {
		t.Errorf("DeliveryCharge = %d, want 400", totals.DeliveryCharge)
	}

	if err := store.SetServiceType(models.ServiceTypeTakeaway); err != nil {
		t.Fatalf("SetServiceType() error = %v", err)
	}
	if totals := store.Totals(); totals.DeliveryCharge != 0 {
		t.Errorf("DeliveryCharge = %d, want 0", totals.DeliveryCharge)
	}

	if err := store.SetServiceType(models.ServiceType("drone")); err != ErrInvalidServiceType {
		t.Errorf("SetServiceType() error = %v, want ErrInvalidServiceType", err)
	}
}

func TestSnapshotIsInternallyConsistent(t *testing.T) {
	store := NewStore()
	store.AddEntry(EntryInput{ProductID: "p-1", UnitBasePrice: 1000, Quantity: 2})
	store.AddEntry(EntryInput{ProductID: "p-2", UnitBasePrice: 500, Quantity: 1})

	snapshot := store.Snapshot()

	var subtotal int64
	for _, entry := range snapshot.Entries {
		subtotal += entry.TotalPrice
	}
	if snapshot.Totals.Subtotal != subtotal {
		t.Errorf("Totals.Subtotal = %d, want %d from the snapshotted entries", snapshot.Totals.Subtotal, subtotal)
	}
	if snapshot.ServiceType != models.ServiceTypeDelivery {
		t.Errorf("ServiceType = %q, want delivery", snapshot.ServiceType)
	}

	// Mutations after the snapshot must not reach it.
	store.Clear()
	if len(snapshot.Entries) != 2 {
		t.Errorf("snapshot lost entries after Clear: %d", len(snapshot.Entries))
	}
	if snapshot.Totals.Total != subtotal+400 {
		t.Errorf("Totals.Total = %d, want %d", snapshot.Totals.Total, subtotal+400)
	}
}

func TestManagerHandsOutOneCartPerSession(t *testing.T) {
	manager := NewManager()

	a := manager.Cart("session-a")
	b := manager.Cart("session-b")
	if a == b {
		t.Fatal("expected distinct carts for distinct sessions")
	}
	if manager.Cart("session-a") != a {
		t.Error("expected the same cart on repeat lookups")
	}

	manager.Drop("session-a")
	if manager.Cart("session-a") == a {
		t.Error("expected a fresh cart after Drop")
	}
}
