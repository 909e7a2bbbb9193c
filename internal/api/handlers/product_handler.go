package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aarohi-store/storefront/internal/catalog"
	"github.com/aarohi-store/storefront/internal/models"
	"github.com/aarohi-store/storefront/pkg/currency"
)

type ProductHandler struct {
	catalog *catalog.Service
	symbol  string
}

func NewProductHandler(c *catalog.Service, symbol string) *ProductHandler {
	return &ProductHandler{catalog: c, symbol: symbol}
}

type productView struct {
	models.Product
	PriceDisplay string `json:"priceDisplay"`
}

func (h *ProductHandler) view(p models.Product) productView {
	return productView{
		Product:      p,
		PriceDisplay: currency.FormatPrice(h.symbol, p.EffectivePrice()),
	}
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", "")
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, h.view(p))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": views})
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", "")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, h.view(*p))
}
