package models

import "time"

type ServiceType string

const (
	ServiceTypeDelivery ServiceType = "delivery"
	ServiceTypeTakeaway ServiceType = "takeaway"
)

func (s ServiceType) Valid() bool {
	return s == ServiceTypeDelivery || s == ServiceTypeTakeaway
}

type Size string

const (
	SizeRegular Size = "Regular"
	SizeMedium  Size = "Medium"
	SizeLarge   Size = "Large"
)

// OptionChoice is a named product option (side dish or add-on) with its
// surcharge in minor currency units.
type OptionChoice struct {
	Name      string `json:"name"`
	Surcharge int64  `json:"surcharge"`
}

// CartEntry is one configured product line in the basket. Entries are
// immutable once added; editing means removing and re-adding.
type CartEntry struct {
	EntryID       string         `json:"entryId"`
	ProductID     string         `json:"productId"`
	Name          string         `json:"name"`
	UnitBasePrice int64          `json:"unitBasePrice"`
	Size          Size           `json:"size"`
	SideDish      *OptionChoice  `json:"sideDish,omitempty"`
	AddOns        []OptionChoice `json:"addOns,omitempty"`
	Quantity      int            `json:"quantity"`
	TotalPrice    int64          `json:"totalPrice"`
	AddedAt       time.Time      `json:"addedAt"`
}

// DefaultSideDishes is offered when a product carries no side-dish options
// of its own.
var DefaultSideDishes = []OptionChoice{
	{Name: "Vegetable Raita", Surcharge: 150},
	{Name: "Mango Pickle", Surcharge: 100},
	{Name: "Mixed Pickle", Surcharge: 100},
}
