package models

// Product is a catalog record. The catalog owns it; cart and checkout treat
// it as read-only.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Badge       string   `json:"badge,omitempty"`
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
// Every place a price is totaled uses this rule.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
