package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NAdun-bit/rasa-storefront-api/config"
	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// OrderAPI is the client for the remote order-creation service.
type OrderAPI struct {
	baseURL string
	client  *http.Client
}

func NewOrderAPI(cfg config.RemoteConfig) *OrderAPI {
	return &OrderAPI{
		baseURL: cfg.OrderBaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// orderRecordWire absorbs loose typing from the order service before it is
// handed out as a models.RemoteOrderRecord.
type orderRecordWire struct {
	OrderID     flexString `json:"orderId"`
	CustomerID  flexString `json:"customerId"`
	UserID      flexString `json:"userId"`
	PhoneNumber flexString `json:"phoneNumber"`
	Message     string     `json:"message"`
}

func (w orderRecordWire) record() models.RemoteOrderRecord {
	return models.RemoteOrderRecord{
		OrderID:     string(w.OrderID),
		CustomerID:  string(w.CustomerID),
		UserID:      string(w.UserID),
		PhoneNumber: string(w.PhoneNumber),
		Message:     w.Message,
	}
}

// CreateOrder posts the normalized payload. A plain-text 2xx body is
// tolerated and wrapped as a message-only record.
func (a *OrderAPI) CreateOrder(ctx context.Context, payload models.RemoteOrderPayload) (models.RemoteOrderRecord, error) {
	body, err := doRequest(ctx, a.client, http.MethodPost, a.baseURL+"/", "", payload)
	if err != nil {
		return models.RemoteOrderRecord{}, err
	}

	if !body.IsJSON() {
		return models.RemoteOrderRecord{Message: body.Text}, nil
	}

	var wire orderRecordWire
	if err := json.Unmarshal(body.JSON, &wire); err != nil {
		return models.RemoteOrderRecord{Message: string(body.JSON)}, nil
	}
	return wire.record(), nil
}

// GetOrder fetches a single order by its backend identifier.
func (a *OrderAPI) GetOrder(ctx context.Context, orderID string) (models.RemoteOrderRecord, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/"+orderID, "", nil)
	if err != nil {
		return models.RemoteOrderRecord{}, err
	}

	if !body.IsJSON() {
		return models.RemoteOrderRecord{Message: body.Text}, nil
	}

	var wire orderRecordWire
	if err := json.Unmarshal(body.JSON, &wire); err != nil {
		return models.RemoteOrderRecord{Message: string(body.JSON)}, nil
	}
	return wire.record(), nil
}

// ListOrders fetches every order the service knows about.
func (a *OrderAPI) ListOrders(ctx context.Context) ([]models.RemoteOrderRecord, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/", "", nil)
	if err != nil {
		return nil, err
	}

	if !body.IsJSON() {
		return nil, nil
	}

	var wires []orderRecordWire
	if err := json.Unmarshal(body.JSON, &wires); err != nil {
		return nil, nil
	}

	records := make([]models.RemoteOrderRecord, 0, len(wires))
	for _, wire := range wires {
		records = append(records, wire.record())
	}
	return records, nil
}
