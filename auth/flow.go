// Package auth runs the phone → OTP → profile login flow that gates
// checkout, and issues local guest tokens for anonymous continuation.
package auth

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/NAdun-bit/rasa-storefront-api/models"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

type Step string

const (
	StepPhone   Step = "phone"
	StepOTP     Step = "otp"
	StepProfile Step = "profile"
	StepSuccess Step = "success"
)

// resendWindow is how long the resend countdown runs. The timer is
// cosmetic; resending is not enforced server-side.
const resendWindow = 5 * time.Minute

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a local field problem; it never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError means the OTP or token was rejected by the user service.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// RemoteAuth is the slice of the user service the flow needs.
type RemoteAuth interface {
	SendOTP(ctx context.Context, phoneNumber string) (string, error)
	VerifyOTP(ctx context.Context, phoneNumber, otp string) (string, error)
	GetProfile(ctx context.Context, token string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, profile models.UserProfile) error
}

// Flow is one session's login state machine.
type Flow struct {
	mu          sync.Mutex
	step        Step
	phoneNumber string
	token       string
	resendAt    time.Time

	remote   RemoteAuth
	sessions *session.Sessions
	now      func() time.Time
}

func NewFlow(remote RemoteAuth, sessions *session.Sessions) *Flow {
	return &Flow{
		step:     StepPhone,
		remote:   remote,
		sessions: sessions,
		now:      time.Now,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// ResendRemaining reports the visible countdown until resend, zero once
// elapsed or before any OTP was sent.
func (f *Flow) ResendRemaining() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.resendAt.IsZero() {
		return 0
	}
	remaining := f.resendAt.Sub(f.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SubmitPhone validates the number, asks the user service to send a code
// and advances to the OTP step. The state does not move on failure.
func (f *Flow) SubmitPhone(ctx context.Context, phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return &ValidationError{Message: "Please enter a phone number"}
	}
	if len(phoneNumber) < 10 {
		return &ValidationError{Message: "Please enter a valid phone number"}
	}

	if _, err := f.remote.SendOTP(ctx, phoneNumber); err != nil {
		return err
	}

	f.mu.Lock()
	f.phoneNumber = phoneNumber
	f.step = StepOTP
	f.resendAt = f.now().Add(resendWindow)
	f.mu.Unlock()
	return nil
}

// VerifyCode exchanges the 6-digit code for a token, persists the session,
// and decides whether the profile form can be skipped. On a rejected code
// the flow stays at the OTP step and the code can be re-entered.
func (f *Flow) VerifyCode(ctx context.Context, sessionID, code string) (Step, error) {
	f.mu.Lock()
	if f.step != StepOTP {
		f.mu.Unlock()
		return "", &ValidationError{Message: "No verification in progress"}
	}
	phoneNumber := f.phoneNumber
	f.mu.Unlock()

	if len(code) != 6 || !isDigits(code) {
		return StepOTP, &ValidationError{Message: "Please enter all 6 digits"}
	}

	token, err := f.remote.VerifyOTP(ctx, phoneNumber, code)
	if err != nil {
		return StepOTP, &AuthError{Message: "Invalid or expired OTP", Err: err}
	}

	if err := f.sessions.SaveAuth(ctx, sessionID, token, phoneNumber); err != nil {
		return StepOTP, err
	}

	f.mu.Lock()
	f.token = token
	f.mu.Unlock()

	// Profile completeness decides the next step; a failed fetch degrades
	// to showing the form rather than blocking login.
	next := StepProfile
	profile, err := f.remote.GetProfile(ctx, token)
	if err == nil {
		// The token is already persisted; a failed cache write only costs
		// a refetch, but it must be visible.
		if id := profile.Identifier(); id != "" {
			if err := f.sessions.SaveUserID(ctx, sessionID, id); err != nil {
				log.Printf("failed to cache user id for session %s: %v", sessionID, err)
			}
		}
		if err := f.sessions.SaveUserData(ctx, sessionID, profile); err != nil {
			log.Printf("failed to cache profile for session %s: %v", sessionID, err)
		}
		if profile.Complete() {
			next = StepSuccess
		}
	}

	f.mu.Lock()
	f.step = next
	f.mu.Unlock()
	return next, nil
}

// ProfileForm is the new-user detail form.
type ProfileForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Location string `json:"location"`
}

func (form ProfileForm) validate() error {
	if strings.TrimSpace(form.Name) == "" {
		return &ValidationError{Message: "Please enter your name"}
	}
	if strings.TrimSpace(form.Email) == "" {
		return &ValidationError{Message: "Please enter your email"}
	}
	if !emailPattern.MatchString(form.Email) {
		return &ValidationError{Message: "Please enter a valid email address"}
	}
	if strings.TrimSpace(form.Address) == "" {
		return &ValidationError{Message: "Please enter your address"}
	}
	if strings.TrimSpace(form.Location) == "" {
		return &ValidationError{Message: "Please enter your city or town"}
	}
	return nil
}

// SubmitProfile persists the profile remotely, then caches it and finishes
// the flow. Field errors surface without advancing.
func (f *Flow) SubmitProfile(ctx context.Context, sessionID string, form ProfileForm) error {
	f.mu.Lock()
	if f.step != StepProfile {
		f.mu.Unlock()
		return &ValidationError{Message: fmt.Sprintf("Cannot submit profile at step %s", f.step)}
	}
	token := f.token
	f.mu.Unlock()

	if err := form.validate(); err != nil {
		return err
	}

	profile := models.UserProfile{
		Name:     form.Name,
		Email:    form.Email,
		Address:  form.Address,
		Location: form.Location,
	}
	if err := f.remote.UpdateProfile(ctx, token, profile); err != nil {
		return err
	}

	if err := f.sessions.SaveUserData(ctx, sessionID, profile); err != nil {
		log.Printf("failed to cache profile for session %s: %v", sessionID, err)
	}

	f.mu.Lock()
	f.step = StepSuccess
	f.mu.Unlock()
	return nil
}

// Skip bypasses validation for the current step only. Skipped data is
// re-collected downstream where checkout needs it.
func (f *Flow) Skip() Step {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPhone, StepOTP:
		f.step = StepSuccess
	case StepProfile:
		f.step = StepSuccess
	}
	return f.step
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Manager hands out one login flow per session.
type Manager struct {
	mu    sync.Mutex
	flows map[string]*Flow

	remote   RemoteAuth
	sessions *session.Sessions
}

func NewManager(remote RemoteAuth, sessions *session.Sessions) *Manager {
	return &Manager{
		flows:    make(map[string]*Flow),
		remote:   remote,
		sessions: sessions,
	}
}

func (m *Manager) Flow(sessionID string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow, ok := m.flows[sessionID]
	if !ok {
		flow = NewFlow(m.remote, m.sessions)
		m.flows[sessionID] = flow
	}
	return flow
}

func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.flows, sessionID)
	m.mu.Unlock()
}
