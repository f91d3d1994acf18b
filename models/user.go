package models

// UserProfile mirrors the remote user service's profile resource. A profile
// may diverge from the locally cached copy until the next fetch overwrites it.
type UserProfile struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Identifier prefers the id field, falling back to userId.
func (p UserProfile) Identifier() string {
	if p.ID != "" {
		return p.ID
	}
	return p.UserID
}

// Complete reports whether every field required to skip the profile form is
// present.
func (p UserProfile) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Address != "" && p.Location != ""
}

// Product is a catalog item from the remote product service. Price and
// discount may arrive as strings and are coerced at the transport boundary.
type Product struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	ProductPrice       int64           `json:"productPrice"`
	ProductDiscount    int64           `json:"productDiscount"`
	ProductPromotion   bool            `json:"productPromotion"`
	ProductVegType     bool            `json:"productVegType"`
	ProductCategory    string          `json:"productCategory"`
	ProductImg1        string          `json:"productImg1,omitempty"`
	ProductImg2        string          `json:"productImg2,omitempty"`
	ProductImg3        string          `json:"productImg3,omitempty"`
	ProductOptions     []ProductOption `json:"productOptions,omitempty"`
}

// ProductOption is a raw option row from the catalog; the storefront
// classifies it as a side dish or add-on by keyword.
type ProductOption struct {
	Option string `json:"option"`
	Price  int64  `json:"price"`
}
