package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodWallet || m == PaymentMethodCash
}

// Wire enums used by the remote order-creation service.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	DeliveryTypePickup   DeliveryType = "PICKUP"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

const DeliveryStatusConfirmed = "CONFIRMED"

// OrderDraft is the in-progress checkout contact/address form. All fields
// must validate before the flow may advance to payment.
type OrderDraft struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	DeliveryAddress string `json:"deliveryAddress"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// CardDetails carries card fields for format checking only; no gateway
// integration happens here.
type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVC            string `json:"cvc"`
}

type OrderTotals struct {
	Subtotal       int64 `json:"subtotal"`
	DeliveryCharge int64 `json:"deliveryCharge"`
	PackingCharge  int64 `json:"packingCharge"`
	Total          int64 `json:"total"`
}

// SubmittedOrder is the locally synthesized order record. OrderID is a
// client-generated correlation token; BackendID is the authoritative
// identifier once the remote service has accepted the order.
type SubmittedOrder struct {
	OrderID         string        `json:"orderId"`
	BackendID       string        `json:"backendId,omitempty"`
	UserID          string        `json:"userId"`
	Items           []CartEntry   `json:"items"`
	Subtotal        int64         `json:"subtotal"`
	DeliveryCharge  int64         `json:"deliveryCharge"`
	PackingCharge   int64         `json:"packingCharge"`
	Total           int64         `json:"total"`
	OrderType       ServiceType   `json:"orderType"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          string        `json:"status"`
	Timestamp       time.Time     `json:"timestamp"`
	UserName        string        `json:"userName"`
	UserEmail       string        `json:"userEmail,omitempty"`
	UserPhone       string        `json:"userPhone,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
}

// RemoteOrderPayload is the normalized request body for the remote
// order-creation endpoint. Field names follow its contract exactly.
type RemoteOrderPayload struct {
	CustomerID      string        `json:"customerId"`
	OrderItemsID    string        `json:"orderItemsId"`
	PhoneNumber     string        `json:"phoneNumber"`
	DeliveryAddress string        `json:"deliveryAddress"`
	DeliveryType    DeliveryType  `json:"deliveryType"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Time            time.Time     `json:"time"`
	TotalPrice      int64         `json:"totalPrice"`
	DeliveryStatus  string        `json:"deliveryStatus"`
}

// RemoteOrderRecord is what the order service answers with. Plain-text
// bodies from the same endpoint are tolerated and arrive as Message only.
type RemoteOrderRecord struct {
	OrderID     string `json:"orderId"`
	CustomerID  string `json:"customerId"`
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message,omitempty"`
}
