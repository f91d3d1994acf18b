package checkout

import (
	"regexp"
	"strings"

	"github.com/NAdun-bit/rasa-storefront-api/models"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// ValidateDraft checks the details form and returns every violation keyed
// by field name, empty when the draft is clean.
func ValidateDraft(draft models.OrderDraft) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(draft.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(draft.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if message := validatePhoneNumber(draft.Mobile); message != "" {
		fields["mobile"] = message
	}
	if strings.TrimSpace(draft.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(draft.Email) {
		fields["email"] = "Email is invalid"
	}
	if strings.TrimSpace(draft.DeliveryAddress) == "" {
		fields["deliveryAddress"] = "Delivery address is required"
	}
	if !draft.AgreeToTerms {
		fields["agreeToTerms"] = "You must agree to terms"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validatePhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "Phone number is required"
	}
	if len(phone) < 9 {
		return "Phone number must be at least 9 digits"
	}
	if len(phone) > 10 {
		return "Phone number must not exceed 10 digits"
	}
	if !digitsPattern.MatchString(phone) {
		return "Phone number must contain only digits"
	}
	return ""
}

// ValidateCard format-checks card fields. This is not a payment gateway;
// nothing beyond shape is verified.
func ValidateCard(card models.CardDetails) map[string]string {
	fields := make(map[string]string)

	if len(card.CardNumber) != 16 || !digitsPattern.MatchString(card.CardNumber) {
		fields["cardNumber"] = "Card number must be 16 digits"
	}
	if strings.TrimSpace(card.CardholderName) == "" {
		fields["cardholderName"] = "Please enter cardholder name"
	}
	if strings.TrimSpace(card.ExpiryDate) == "" {
		fields["expiryDate"] = "Please select expiry date"
	}
	if len(card.CVC) != 3 || !digitsPattern.MatchString(card.CVC) {
		fields["cvc"] = "CVC must be 3 digits"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
