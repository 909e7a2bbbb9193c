package models

// ShippingInfo holds the checkout form fields. It arrives raw from the
// client and only counts as valid once it has passed through
// checkout.ValidateShipping. It is built fresh per checkout attempt and
// never persisted.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}
