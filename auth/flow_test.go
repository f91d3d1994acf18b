package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NAdun-bit/rasa-storefront-api/models"
	"github.com/NAdun-bit/rasa-storefront-api/session"
)

type mapStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMapStore() *mapStore { return &mapStore{values: make(map[string]string)} }

func (m *mapStore) Get(_ context.Context, sessionID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[sessionID+":"+key], nil
}

func (m *mapStore) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[sessionID+":"+key] = value
	return nil
}

func (m *mapStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, sessionID+":"+key)
	}
	return nil
}

type fakeRemote struct {
	sendErr    error
	verifyErr  error
	token      string
	profile    models.UserProfile
	profileErr error
	updateErr  error

	sentTo   string
	verified string
	updated  *models.UserProfile
}

func (f *fakeRemote) SendOTP(_ context.Context, phoneNumber string) (string, error) {
	f.sentTo = phoneNumber
	return "OTP sent", f.sendErr
}

func (f *fakeRemote) VerifyOTP(_ context.Context, phoneNumber, otp string) (string, error) {
	f.verified = otp
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.token, nil
}

func (f *fakeRemote) GetProfile(_ context.Context, token string) (models.UserProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeRemote) UpdateProfile(_ context.Context, token string, profile models.UserProfile) error {
	f.updated = &profile
	return f.updateErr
}

func newTestFlow(remote *fakeRemote) (*Flow, *session.Sessions) {
	sessions := session.NewSessions(newMapStore())
	return NewFlow(remote, sessions), sessions
}

func TestSubmitPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"empty", "  ", "Please enter a phone number"},
		{"too short", "07712345", "Please enter a valid phone number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeRemote{}
			flow, _ := newTestFlow(remote)

			err := flow.SubmitPhone(context.Background(), tt.phone)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("SubmitPhone() error = %v, want *ValidationError", err)
			}
			if validationErr.Message != tt.want {
				t.Errorf("message = %q, want %q", validationErr.Message, tt.want)
			}
			if remote.sentTo != "" {
				t.Error("validation failure must not reach the network")
			}
			if flow.Step() != StepPhone {
				t.Errorf("Step() = %q, want phone", flow.Step())
			}
		})
	}
}

func TestSubmitPhoneSendFailureDoesNotAdvance(t *testing.T) {
	remote := &fakeRemote{sendErr: errors.New("service unavailable")}
	flow, _ := newTestFlow(remote)

	if err := flow.SubmitPhone(context.Background(), "0771234567"); err == nil {
		t.Fatal("expected the send error to surface")
	}
	if flow.Step() != StepPhone {
		t.Errorf("Step() = %q, want phone", flow.Step())
	}
}

func TestSubmitPhoneStartsCountdown(t *testing.T) {
	remote := &fakeRemote{}
	flow, _ := newTestFlow(remote)
	base := time.Now()
	flow.now = func() time.Time { return base }

	if err := flow.SubmitPhone(context.Background(), "0771234567"); err != nil {
		t.Fatalf("SubmitPhone() error = %v", err)
	}
	if flow.Step() != StepOTP {
		t.Fatalf("Step() = %q, want otp", flow.Step())
	}
	if got := flow.ResendRemaining(); got != 5*time.Minute {
		t.Errorf("ResendRemaining() = %v, want 5m", got)
	}

	flow.now = func() time.Time { return base.Add(6 * time.Minute) }
	if got := flow.ResendRemaining(); got != 0 {
		t.Errorf("ResendRemaining() after window = %v, want 0", got)
	}
}

func TestVerifyCodeRejectsMalformedCode(t *testing.T) {
	remote := &fakeRemote{token: "tok"}
	flow, _ := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")

	for _, code := range []string{"12345", "1234567", "12a456", ""} {
		if _, err := flow.VerifyCode(context.Background(), "s-1", code); err == nil {
			t.Errorf("VerifyCode(%q) accepted a malformed code", code)
		}
	}
	if remote.verified != "" {
		t.Error("malformed codes must not reach the network")
	}
}

func TestVerifyCodeRejectedStaysAtOTP(t *testing.T) {
	remote := &fakeRemote{verifyErr: errors.New("401")}
	flow, _ := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")

	step, err := flow.VerifyCode(context.Background(), "s-1", "123456")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("VerifyCode() error = %v, want *AuthError", err)
	}
	if step != StepOTP || flow.Step() != StepOTP {
		t.Errorf("flow advanced past otp on a rejected code")
	}
}

func TestVerifyCodeCompleteProfileSkipsForm(t *testing.T) {
	remote := &fakeRemote{
		token: "tok-abc",
		profile: models.UserProfile{
			ID: "u-42", Name: "Amal", Email: "amal@example.com",
			Address: "12 Galle Rd", Location: "Colombo",
		},
	}
	flow, sessions := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")

	step, err := flow.VerifyCode(context.Background(), "s-1", "123456")
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}
	if step != StepSuccess {
		t.Errorf("step = %q, want success for a complete profile", step)
	}

	ctx := context.Background()
	if token, _ := sessions.AuthToken(ctx, "s-1"); token != "tok-abc" {
		t.Errorf("persisted token = %q, want tok-abc", token)
	}
	if userID, _ := sessions.UserID(ctx, "s-1"); userID != "u-42" {
		t.Errorf("persisted userId = %q, want u-42", userID)
	}
}

type flakyStore struct {
	*mapStore
	failKeys map[string]bool
}

func (f *flakyStore) Set(ctx context.Context, sessionID, key, value string) error {
	if f.failKeys[key] {
		return errors.New("store write failed")
	}
	return f.mapStore.Set(ctx, sessionID, key, value)
}

func TestVerifyCodeSurvivesFailedCacheWrites(t *testing.T) {
	remote := &fakeRemote{
		token: "tok-abc",
		profile: models.UserProfile{
			ID: "u-42", Name: "Amal", Email: "amal@example.com",
			Address: "12 Galle Rd", Location: "Colombo",
		},
	}
	store := &flakyStore{
		mapStore: newMapStore(),
		failKeys: map[string]bool{session.KeyUserID: true, session.KeyUserData: true},
	}
	sessions := session.NewSessions(store)
	flow := NewFlow(remote, sessions)
	flow.SubmitPhone(context.Background(), "0771234567")

	step, err := flow.VerifyCode(context.Background(), "s-1", "123456")
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}
	if step != StepSuccess {
		t.Errorf("step = %q, want success despite failed cache writes", step)
	}
	if token, _ := sessions.AuthToken(context.Background(), "s-1"); token != "tok-abc" {
		t.Errorf("persisted token = %q, want tok-abc", token)
	}
}

func TestVerifyCodeIncompleteProfileShowsForm(t *testing.T) {
	remote := &fakeRemote{
		token:   "tok-abc",
		profile: models.UserProfile{Name: "Amal"},
	}
	flow, _ := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")

	step, err := flow.VerifyCode(context.Background(), "s-1", "123456")
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}
	if step != StepProfile {
		t.Errorf("step = %q, want profile", step)
	}
}

func TestVerifyCodeProfileFetchFailureDegradesToForm(t *testing.T) {
	remote := &fakeRemote{token: "tok-abc", profileErr: errors.New("boom")}
	flow, _ := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")

	step, err := flow.VerifyCode(context.Background(), "s-1", "123456")
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}
	if step != StepProfile {
		t.Errorf("step = %q, want profile when the fetch fails", step)
	}
}

func TestSubmitProfile(t *testing.T) {
	remote := &fakeRemote{token: "tok-abc", profileErr: errors.New("new user")}
	flow, sessions := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")
	flow.VerifyCode(context.Background(), "s-1", "123456")

	t.Run("field errors do not advance", func(t *testing.T) {
		err := flow.SubmitProfile(context.Background(), "s-1", ProfileForm{
			Name: "Amal", Email: "not-an-email", Address: "a", Location: "b",
		})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if flow.Step() != StepProfile {
			t.Errorf("Step() = %q, want profile", flow.Step())
		}
	})

	t.Run("valid form persists and finishes", func(t *testing.T) {
		err := flow.SubmitProfile(context.Background(), "s-1", ProfileForm{
			Name: "Amal", Email: "amal@example.com", Address: "12 Galle Rd", Location: "Colombo",
		})
		if err != nil {
			t.Fatalf("SubmitProfile() error = %v", err)
		}
		if flow.Step() != StepSuccess {
			t.Errorf("Step() = %q, want success", flow.Step())
		}
		if remote.updated == nil || remote.updated.Name != "Amal" {
			t.Error("profile was not written remotely")
		}
		if profile, _ := sessions.UserData(context.Background(), "s-1"); profile.Email != "amal@example.com" {
			t.Errorf("cached profile = %+v, want the submitted one", profile)
		}
	})
}

func TestSubmitProfileRemoteFailureDoesNotAdvance(t *testing.T) {
	remote := &fakeRemote{token: "tok", profileErr: errors.New("new user"), updateErr: errors.New("503")}
	flow, _ := newTestFlow(remote)
	flow.SubmitPhone(context.Background(), "0771234567")
	flow.VerifyCode(context.Background(), "s-1", "123456")

	err := flow.SubmitProfile(context.Background(), "s-1", ProfileForm{
		Name: "Amal", Email: "amal@example.com", Address: "12 Galle Rd", Location: "Colombo",
	})
	if err == nil {
		t.Fatal("expected the remote failure to surface")
	}
	if flow.Step() != StepProfile {
		t.Errorf("Step() = %q, want profile", flow.Step())
	}
}

func TestSkipBypassesCurrentStepOnly(t *testing.T) {
	remote := &fakeRemote{}
	flow, _ := newTestFlow(remote)

	if step := flow.Skip(); step != StepSuccess {
		t.Errorf("Skip() from phone = %q, want success", step)
	}
}

func TestGuestTokenRoundTrip(t *testing.T) {
	guestID := NewGuestID()
	token, err := IssueGuestToken("secret", guestID)
	if err != nil {
		t.Fatalf("IssueGuestToken() error = %v", err)
	}

	parsed, ok := ParseGuestToken("secret", token)
	if !ok {
		t.Fatal("ParseGuestToken() rejected our own token")
	}
	if parsed != guestID {
		t.Errorf("session id = %q, want %q", parsed, guestID)
	}

	if _, ok := ParseGuestToken("other-secret", token); ok {
		t.Error("token verified under the wrong secret")
	}
	if _, ok := ParseGuestToken("secret", "opaque-remote-token"); ok {
		t.Error("opaque token parsed as a guest token")
	}
}
