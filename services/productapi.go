package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NAdun-bit/rasa-storefront-api/config"
	"github.com/NAdun-bit/rasa-storefront-api/models"
)

// ProductAPI is the client for the remote product catalog.
type ProductAPI struct {
	baseURL string
	client  *http.Client
}

func NewProductAPI(cfg config.RemoteConfig) *ProductAPI {
	return &ProductAPI{
		baseURL: cfg.ProductBaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// productWire absorbs the catalog's loose typing: price and discount arrive
// as either numbers or strings.
type productWire struct {
	ProductID          flexString             `json:"productId"`
	ProductName        string                 `json:"productName"`
	ProductDescription string                 `json:"productDescription"`
	ProductPrice       flexInt64              `json:"productPrice"`
	ProductDiscount    flexInt64              `json:"productDiscount"`
	ProductPromotion   bool                   `json:"productPromotion"`
	ProductVegType     bool                   `json:"productVegType"`
	ProductCategory    string                 `json:"productCategory"`
	ProductImg1        string                 `json:"productImg1"`
	ProductImg2        string                 `json:"productImg2"`
	ProductImg3        string                 `json:"productImg3"`
	ProductOptions     []productOptionWire    `json:"productOptions"`
}

type productOptionWire struct {
	Option string    `json:"option"`
	Price  flexInt64 `json:"price"`
}

func (w productWire) product() models.Product {
	options := make([]models.ProductOption, 0, len(w.ProductOptions))
	for _, opt := range w.ProductOptions {
		options = append(options, models.ProductOption{Option: opt.Option, Price: int64(opt.Price)})
	}
	return models.Product{
		ProductID:          string(w.ProductID),
		ProductName:        w.ProductName,
		ProductDescription: w.ProductDescription,
		ProductPrice:       int64(w.ProductPrice),
		ProductDiscount:    int64(w.ProductDiscount),
		ProductPromotion:   w.ProductPromotion,
		ProductVegType:     w.ProductVegType,
		ProductCategory:    w.ProductCategory,
		ProductImg1:        w.ProductImg1,
		ProductImg2:        w.ProductImg2,
		ProductImg3:        w.ProductImg3,
		ProductOptions:     options,
	}
}

// GetAllProducts fetches the full catalog.
func (a *ProductAPI) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/", "", nil)
	if err != nil {
		return nil, err
	}

	if !body.IsJSON() {
		return nil, nil
	}

	var wires []productWire
	if err := json.Unmarshal(body.JSON, &wires); err != nil {
		return nil, nil
	}

	products := make([]models.Product, 0, len(wires))
	for _, wire := range wires {
		products = append(products, wire.product())
	}
	return products, nil
}

// GetProduct fetches one catalog item with its options.
func (a *ProductAPI) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/"+productID, "", nil)
	if err != nil {
		return models.Product{}, err
	}

	var wire productWire
	if body.IsJSON() {
		if err := json.Unmarshal(body.JSON, &wire); err != nil {
			return models.Product{}, nil
		}
	}
	return wire.product(), nil
}

var (
	sideDishKeywords = []string{"side", "dish", "raita", "pickle"}
	addOnKeywords    = []string{"add", "egg", "gravy", "papadum", "extra"}
)

// ClassifyOptions splits a product's raw options into side dishes and
// add-ons by keyword. Products with no side-dish options get the default
// side-dish table.
func ClassifyOptions(options []models.ProductOption) (sideDishes, addOns []models.OptionChoice) {
	for _, opt := range options {
		lower := strings.ToLower(opt.Option)
		if matchesAny(lower, sideDishKeywords) {
			sideDishes = append(sideDishes, models.OptionChoice{Name: opt.Option, Surcharge: opt.Price})
		}
		if matchesAny(lower, addOnKeywords) {
			addOns = append(addOns, models.OptionChoice{Name: opt.Option, Surcharge: opt.Price})
		}
	}
	if len(sideDishes) == 0 {
		sideDishes = append(sideDishes, models.DefaultSideDishes...)
	}
	return sideDishes, addOns
}

func matchesAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
