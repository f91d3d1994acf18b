// Package checkout drives the Cart → Details → Payment → Confirmed flow.
// Transitions are strictly forward except the explicit back actions, which
// never discard entered data.
package checkout

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

type Step string

const (
	StepCart      Step = "cart"
	StepDetails   Step = "details"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

var (
	ErrLoginRequired      = errors.New("login required before checkout")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrWrongStep          = errors.New("operation not allowed at this step")
	ErrSubmissionInFlight = errors.New("a submission is already being processed")
)

// ValidationError carries every violated field at once, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Flow is one session's checkout state machine.
type Flow struct {
	mu            sync.Mutex
	step          Step
	draft         models.OrderDraft
	paymentMethod models.PaymentMethod
	card          models.CardDetails
	processing    bool
}

func NewFlow() *Flow {
	return &Flow{step: StepCart, paymentMethod: models.PaymentMethodCard}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Draft returns the entered details, preserved across back navigation.
func (f *Flow) Draft() models.OrderDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Flow) PaymentSelection() (models.PaymentMethod, models.CardDetails) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paymentMethod, f.card
}

// BeginDetails is the Cart→Details gate: the session must be authenticated
// and the basket non-empty.
func (f *Flow) BeginDetails(authenticated bool, cartSize int) error {
	if !authenticated {
		return ErrLoginRequired
	}
	if cartSize == 0 {
		return ErrEmptyCart
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepCart && f.step != StepDetails {
		return ErrWrongStep
	}
	f.step = StepDetails
	return nil
}

// SubmitDetails validates the whole draft at once and, when clean, stores
// it and advances to Payment.
func (f *Flow) SubmitDetails(draft models.OrderDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepDetails {
		return ErrWrongStep
	}

	if fields := ValidateDraft(draft); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	f.draft = draft
	f.step = StepPayment
	return nil
}

// Back navigates one step towards the cart, keeping entered data.
func (f *Flow) Back() Step {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPayment:
		f.step = StepDetails
	case StepDetails:
		f.step = StepCart
	}
	return f.step
}

// BeginSubmission is the Payment→Confirmed gate. It re-checks that the
// basket is still non-empty, validates the selected payment method and
// claims the single in-flight submission slot; callers must pair it with
// FinishSubmission.
func (f *Flow) BeginSubmission(method models.PaymentMethod, card models.CardDetails, cartSize int) error {
	if cartSize == 0 {
		return ErrEmptyCart
	}
	if !method.Valid() {
		return &ValidationError{Fields: map[string]string{"paymentMethod": "Select a payment method"}}
	}
	if method == models.PaymentMethodCard {
		if fields := ValidateCard(card); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return ErrWrongStep
	}
	if f.processing {
		return ErrSubmissionInFlight
	}
	f.processing = true
	f.paymentMethod = method
	f.card = card
	return nil
}

// FinishSubmission releases the in-flight slot. On success the flow reaches
// its terminal state and the draft is cleared; on failure everything stays
// for a user-initiated retry.
func (f *Flow) FinishSubmission(success bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.processing = false
	if success {
		f.step = StepConfirmed
		f.draft = models.OrderDraft{}
		f.card = models.CardDetails{}
	}
}

func (f *Flow) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

// Manager hands out one checkout flow per session.
type Manager struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func NewManager() *Manager {
	return &Manager{flows: make(map[string]*Flow)}
}

func (m *Manager) Flow(sessionID string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow, ok := m.flows[sessionID]
	if !ok {
		flow = NewFlow()
		m.flows[sessionID] = flow
	}
	return flow
}

// Reset discards the session's flow, e.g. after a confirmed order.
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	delete(m.flows, sessionID)
	m.mu.Unlock()
}
