package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NAdun-bit/rasa-storefront-api/config"
	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// AuthService is the client for the remote user service: OTP issuance and
// verification, bearer-authenticated profile reads/writes and order history.
type AuthService struct {
	baseURL string
	client  *http.Client
}

func NewAuthService(cfg config.RemoteConfig) *AuthService {
	return &AuthService{
		baseURL: cfg.UserBaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// SendOTP asks the user service to text a code to the given number and
// returns the service's acknowledgement message.
func (s *AuthService) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	body, err := doRequest(ctx, s.client, http.MethodPost, s.baseURL+"/sendotp", "",
		map[string]string{"phoneNumber": phoneNumber})
	if err != nil {
		return "", err
	}

	if !body.IsJSON() {
		return body.Text, nil
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.JSON, &resp); err != nil {
		return "", nil
	}
	return resp.Message, nil
}

// VerifyOTP exchanges phone+code for a bearer token. A plain-text 2xx body
// is treated as the token itself.
func (s *AuthService) VerifyOTP(ctx context.Context, phoneNumber, otp string) (string, error) {
	body, err := doRequest(ctx, s.client, http.MethodPost, s.baseURL+"/verifyotp", "",
		map[string]string{"phoneNumber": phoneNumber, "otp": otp})
	if err != nil {
		return "", err
	}

	if !body.IsJSON() {
		return body.Text, nil
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body.JSON, &resp); err != nil {
		return "", nil
	}
	return resp.Token, nil
}

type profileWire struct {
	ID          flexString `json:"id"`
	UserID      flexString `json:"userId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Location    string     `json:"location"`
	PhoneNumber flexString `json:"phoneNumber"`
}

// GetProfile fetches the caller's profile.
func (s *AuthService) GetProfile(ctx context.Context, token string) (models.UserProfile, error) {
	body, err := doRequest(ctx, s.client, http.MethodGet, s.baseURL+"/profile", token, nil)
	if err != nil {
		return models.UserProfile{}, err
	}

	var wire profileWire
	if body.IsJSON() {
		if err := json.Unmarshal(body.JSON, &wire); err != nil {
			return models.UserProfile{}, nil
		}
	}
	return models.UserProfile{
		ID:          string(wire.ID),
		UserID:      string(wire.UserID),
		Name:        wire.Name,
		Email:       wire.Email,
		Address:     wire.Address,
		Location:    wire.Location,
		PhoneNumber: string(wire.PhoneNumber),
	}, nil
}

// UpdateProfile writes the profile remotely. Write-then-confirm: callers
// must not cache the new profile until this returns nil.
func (s *AuthService) UpdateProfile(ctx context.Context, token string, profile models.UserProfile) error {
	_, err := doRequest(ctx, s.client, http.MethodPut, s.baseURL+"/update", token, map[string]string{
		"name":     profile.Name,
		"email":    profile.Email,
		"address":  profile.Address,
		"location": profile.Location,
	})
	return err
}

// GetUserOrders returns the caller's order history, tolerating both a bare
// list and an {orders: [...]} wrapper. Text bodies degrade to an empty list.
func (s *AuthService) GetUserOrders(ctx context.Context, token string) ([]models.RemoteOrderRecord, error) {
	body, err := doRequest(ctx, s.client, http.MethodGet, s.baseURL+"/orders", token, nil)
	if err != nil {
		return nil, err
	}

	if !body.IsJSON() {
		return nil, nil
	}

	var wires []orderRecordWire
	if err := json.Unmarshal(body.JSON, &wires); err == nil {
		return wireRecords(wires), nil
	}

	var wrapped struct {
		Orders []orderRecordWire `json:"orders"`
	}
	if err := json.Unmarshal(body.JSON, &wrapped); err != nil {
		return nil, nil
	}
	return wireRecords(wrapped.Orders), nil
}

func wireRecords(wires []orderRecordWire) []models.RemoteOrderRecord {
	records := make([]models.RemoteOrderRecord, 0, len(wires))
	for _, wire := range wires {
		records = append(records, wire.record())
	}
	return records
}
