// Package orders turns a basket, draft and payment selection into a durable
// order: remote creation first, then the local history and the session
// mirror. Nothing local is mutated until the remote call has succeeded.
package orders

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// RemoteCreator is the slice of the order service a submission needs.
type RemoteCreator interface {
	CreateOrder(ctx context.Context, payload models.RemoteOrderPayload) (models.RemoteOrderRecord, error)
}

// Mirror persists the order history per session, most-recent-first.
type Mirror interface {
	PrependOrder(ctx context.Context, sessionID string, order models.SubmittedOrder) error
}

// EventSink receives best-effort lifecycle notifications.
type EventSink interface {
	OrderSubmitted(order models.SubmittedOrder)
}

// SubmitRequest is everything a submission snapshot needs. Entries and
// totals are captured by the caller before the remote call.
type SubmitRequest struct {
	SessionID     string
	Entries       []models.CartEntry
	Totals        models.OrderTotals
	ServiceType   models.ServiceType
	PaymentMethod models.PaymentMethod
	Draft         models.OrderDraft
	Profile       models.UserProfile
	AuthToken     string
	LocationAddr  string
}

type Submission struct {
	remote RemoteCreator
	mirror Mirror
	events EventSink

	mu     sync.Mutex
	recent map[string][]models.SubmittedOrder
}

// NewSubmission wires the submission pipeline. events may be nil.
func NewSubmission(remote RemoteCreator, mirror Mirror, events EventSink) *Submission {
	return &Submission{
		remote: remote,
		mirror: mirror,
		events: events,
		recent: make(map[string][]models.SubmittedOrder),
	}
}

// Submit creates the order remotely and only then records it locally. On
// any remote failure the error is returned with no local state touched, so
// the caller can keep the basket and draft for a retry.
func (s *Submission) Submit(ctx context.Context, req SubmitRequest) (models.SubmittedOrder, error) {
	order := BuildLocalOrder(req, time.Now())
	payload := BuildRemotePayload(order, req)

	record, err := s.remote.CreateOrder(ctx, payload)
	if err != nil {
		return models.SubmittedOrder{}, err
	}

	// The backend id is authoritative; the client id stays as a
	// correlation token.
	if record.OrderID != "" {
		order.BackendID = record.OrderID
	}

	s.mu.Lock()
	s.recent[req.SessionID] = append([]models.SubmittedOrder{order}, s.recent[req.SessionID]...)
	s.mu.Unlock()

	if err := s.mirror.PrependOrder(ctx, req.SessionID, order); err != nil {
		// The order exists remotely and in memory; a failed mirror write
		// only costs restart durability.
		log.Printf("failed to mirror order %s: %v", order.OrderID, err)
	}

	if s.events != nil {
		s.events.OrderSubmitted(order)
	}

	return order, nil
}

// Recent returns the session's in-memory order list, most-recent-first.
// Orders never cross session boundaries.
func (s *Submission) Recent(sessionID string) []models.SubmittedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.SubmittedOrder, len(s.recent[sessionID]))
	copy(orders, s.recent[sessionID])
	return orders
}

// BuildLocalOrder synthesizes the frontend order record. Pure construction;
// no side effects.
func BuildLocalOrder(req SubmitRequest, now time.Time) models.SubmittedOrder {
	userName := req.Profile.Name
	if userName == "" {
		userName = "Guest"
	}
	email := req.Profile.Email
	if email == "" {
		email = req.Draft.Email
	}
	address := req.Draft.DeliveryAddress
	if address == "" {
		address = req.Profile.Address
	}

	return models.SubmittedOrder{
		OrderID:         newOrderID(now),
		UserID:          resolveUserID(req.Profile, req.AuthToken),
		Items:           req.Entries,
		Subtotal:        req.Totals.Subtotal,
		DeliveryCharge:  req.Totals.DeliveryCharge,
		PackingCharge:   req.Totals.PackingCharge,
		Total:           req.Totals.Total,
		OrderType:       req.ServiceType,
		PaymentMethod:   req.PaymentMethod,
		Status:          "confirmed",
		Timestamp:       now,
		UserName:        userName,
		UserEmail:       email,
		UserPhone:       strings.TrimSpace(req.Draft.Mobile),
		DeliveryAddress: address,
	}
}

// BuildRemotePayload normalizes the order for the order-creation endpoint.
func BuildRemotePayload(order models.SubmittedOrder, req SubmitRequest) models.RemoteOrderPayload {
	itemIDs := make([]string, 0, len(req.Entries))
	for _, entry := range req.Entries {
		itemIDs = append(itemIDs, entry.ProductID)
	}

	deliveryType := models.DeliveryTypePickup
	if req.ServiceType == models.ServiceTypeDelivery {
		deliveryType = models.DeliveryTypeDelivery
	}

	// Cash settles on arrival; everything else is treated as paid.
	paymentStatus := models.PaymentStatusCompleted
	if req.PaymentMethod == models.PaymentMethodCash {
		paymentStatus = models.PaymentStatusPending
	}

	address := req.Draft.DeliveryAddress
	if address == "" {
		address = req.LocationAddr
	}
	if address == "" {
		address = "Not specified"
	}

	return models.RemoteOrderPayload{
		CustomerID:      order.UserID,
		OrderItemsID:    strings.Join(itemIDs, ","),
		PhoneNumber:     strings.TrimSpace(req.Draft.Mobile),
		DeliveryAddress: address,
		DeliveryType:    deliveryType,
		PaymentStatus:   paymentStatus,
		Time:            order.Timestamp,
		TotalPrice:      order.Total,
		DeliveryStatus:  models.DeliveryStatusConfirmed,
	}
}

func newOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

func resolveUserID(profile models.UserProfile, authToken string) string {
	if id := profile.Identifier(); id != "" {
		return id
	}
	if len(authToken) >= 8 {
		return "USER-" + authToken[:8]
	}
	return "USER-" + authToken
}
