package models

// CartLine is one product-quantity pairing in a cart. The product is a
// snapshot taken when the line was added. Quantity is always >= 1; a line
// whose quantity would drop to zero is removed instead of stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the effective unit price times the quantity.
func (l CartLine) LineTotal() float64 {
	return l.Product.EffectivePrice() * float64(l.Quantity)
}
