package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerifyOTPJSONToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verifyotp" {
			t.Errorf("path = %s, want /verifyotp", r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["otp"] != "123456" {
			t.Errorf("otp = %q, want 123456", req["otp"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-abc"}`))
	}))
	defer server.Close()

	svc := NewAuthService(testRemoteConfig("", server.URL, ""))
	token, err := svc.VerifyOTP(context.Background(), "0771234567", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("token = %q, want tok-abc", token)
	}
}

func TestVerifyOTPPlainTextBodyIsTheToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("raw-token-value"))
	}))
	defer server.Close()

	svc := NewAuthService(testRemoteConfig("", server.URL, ""))
	token, err := svc.VerifyOTP(context.Background(), "0771234567", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if token != "raw-token-value" {
		t.Errorf("token = %q, want text body", token)
	}
}

func TestGetProfileSendsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "name":"Amal","email":"amal@example.com","address":"12 Galle Rd","location":"Colombo"}`))
	}))
	defer server.Close()

	svc := NewAuthService(testRemoteConfig("", server.URL, ""))
	profile, err := svc.GetProfile(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Identifier() != "42" {
		t.Errorf("Identifier() = %q, want 42", profile.Identifier())
	}
	if !profile.Complete() {
		t.Errorf("Complete() = false for full profile %+v", profile)
	}
}

func TestGetUserOrdersToleratesShapes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantCount   int
	}{
		{"bare list", "application/json", `[{"orderId":"o-1"}]`, 1},
		{"wrapped list", "application/json", `{"orders":[{"orderId":"o-1"},{"orderId":"o-2"}]}`, 2},
		{"plain text degrades to empty", "text/plain", "no orders yet", 0},
		{"unexpected shape degrades to empty", "application/json", `{"weird":true}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := NewAuthService(testRemoteConfig("", server.URL, ""))
			records, err := svc.GetUserOrders(context.Background(), "tok")
			if err != nil {
				t.Fatalf("GetUserOrders() error = %v", err)
			}
			if len(records) != tt.wantCount {
				t.Errorf("len(records) = %d, want %d", len(records), tt.wantCount)
			}
		})
	}
}

func TestSendOTPTextAcknowledgement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OTP sent"))
	}))
	defer server.Close()

	svc := NewAuthService(testRemoteConfig("", server.URL, ""))
	message, err := svc.SendOTP(context.Background(), "0771234567")
	if err != nil {
		t.Fatalf("SendOTP() error = %v", err)
	}
	if message != "OTP sent" {
		t.Errorf("message = %q, want acknowledgement", message)
	}
}
