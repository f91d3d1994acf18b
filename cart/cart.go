// Package cart holds the per-session basket: the ordered list of configured
// entries plus the selected service type. Carts are not persisted; a session
// that ends loses its basket.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NAdun-bit/rasa-storefront-api/models"
	"github.com/NAdun-bit/rasa-storefront-api/pricing"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidServiceType = errors.New("service type must be delivery or takeaway")
)

// EntryInput is a confirmed product customization ready to become a cart entry.
type EntryInput struct {
	ProductID     string                `json:"productId"`
	Name          string                `json:"name"`
	UnitBasePrice int64                 `json:"unitBasePrice"`
	Size          models.Size           `json:"size"`
	SideDish      *models.OptionChoice  `json:"sideDish,omitempty"`
	AddOns        []models.OptionChoice `json:"addOns,omitempty"`
	Quantity      int                   `json:"quantity"`
}

type Store struct {
	mu          sync.Mutex
	entries     []models.CartEntry
	serviceType models.ServiceType
}

func NewStore() *Store {
	return &Store{serviceType: models.ServiceTypeDelivery}
}

// AddEntry appends a new entry with a fresh identifier and its total
// recomputed from the input. The entry is immutable afterwards.
func (s *Store) AddEntry(input EntryInput) (models.CartEntry, error) {
	if input.Quantity < 1 {
		return models.CartEntry{}, ErrInvalidQuantity
	}

	size := input.Size
	if size == "" {
		size = models.SizeRegular
	}

	entry := models.CartEntry{
		EntryID:       uuid.NewString(),
		ProductID:     input.ProductID,
		Name:          input.Name,
		UnitBasePrice: input.UnitBasePrice,
		Size:          size,
		SideDish:      input.SideDish,
		AddOns:        input.AddOns,
		Quantity:      input.Quantity,
		AddedAt:       time.Now(),
	}
	entry.TotalPrice = pricing.EntryTotal(entry)

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry, nil
}

// RemoveEntry drops the entry with the given id. Removing an absent id is a
// no-op, so repeated removals are safe.
func (s *Store) RemoveEntry(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.EntryID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the basket. Called after a confirmed order submission.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// Entries returns a copy of the current basket in insertion order.
func (s *Store) Entries() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.CartEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Subtotal(s.entries)
}

// Totals computes the order-level breakdown for the current basket and
// service type.
func (s *Store) Totals() models.OrderTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.OrderTotals(s.entries, s.serviceType)
}

// Snapshot captures entries, service type and totals under one lock so a
// concurrent mutation cannot make them disagree.
type Snapshot struct {
	Entries     []models.CartEntry
	ServiceType models.ServiceType
	Totals      models.OrderTotals
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.CartEntry, len(s.entries))
	copy(entries, s.entries)
	return Snapshot{
		Entries:     entries,
		ServiceType: s.serviceType,
		Totals:      pricing.OrderTotals(s.entries, s.serviceType),
	}
}

func (s *Store) ServiceType() models.ServiceType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serviceType
}

// SetServiceType switches between delivery and takeaway. Downstream charge
// recomputation happens on the next Totals call.
func (s *Store) SetServiceType(t models.ServiceType) error {
	if !t.Valid() {
		return ErrInvalidServiceType
	}
	s.mu.Lock()
	s.serviceType = t
	s.mu.Unlock()
	return nil
}

// Manager hands out one cart per session.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Cart returns the session's basket, creating it on first use.
func (m *Manager) Cart(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore()
		m.stores[sessionID] = store
	}
	return store
}

// Drop discards a session's basket, e.g. on logout.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
