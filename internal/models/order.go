package models

// OrderLine is one cart line shaped for the payment-session request.
// Price is the effective unit price; Image, when present, is an absolute URL.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// OrderPayload is derived from the cart at submission time, never stored.
// The JSON shape matches the payment-session service contract; the computed
// totals ride along for display and logging only.
type OrderPayload struct {
	Items         []OrderLine  `json:"items"`
	CustomerEmail string       `json:"customerEmail"`
	ShippingInfo  ShippingInfo `json:"shippingInfo"`

	Subtotal float64 `json:"-"`
	Shipping float64 `json:"-"`
	Total    float64 `json:"-"`
}
