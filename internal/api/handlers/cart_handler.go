package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aarohi-store/storefront/internal/api/middleware"
	"github.com/aarohi-store/storefront/internal/cart"
	"github.com/aarohi-store/storefront/internal/catalog"
	"github.com/aarohi-store/storefront/internal/models"
	"github.com/aarohi-store/storefront/pkg/currency"
)

type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
	symbol  string
}

func NewCartHandler(carts *cart.Manager, c *catalog.Service, symbol string) *CartHandler {
	return &CartHandler{carts: carts, catalog: c, symbol: symbol}
}

// --- Request / Response DTOs ---

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineView struct {
	Product          models.Product `json:"product"`
	Quantity         int            `json:"quantity"`
	LineTotal        float64        `json:"lineTotal"`
	LineTotalDisplay string         `json:"lineTotalDisplay"`
}

type cartView struct {
	Items        []cartLineView `json:"items"`
	ItemCount    int            `json:"itemCount"`
	Total        float64        `json:"total"`
	TotalDisplay string         `json:"totalDisplay"`
}

func (h *CartHandler) view(store *cart.Store) cartView {
	lines := store.Lines()
	items := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartLineView{
			Product:          line.Product,
			Quantity:         line.Quantity,
			LineTotal:        line.LineTotal(),
			LineTotalDisplay: currency.FormatPrice(h.symbol, line.LineTotal()),
		})
	}
	total := store.Total()
	return cartView{
		Items:        items,
		ItemCount:    store.ItemCount(),
		Total:        total,
		TotalDisplay: currency.FormatPrice(h.symbol, total),
	}
}

func (h *CartHandler) store(r *http.Request) *cart.Store {
	return h.carts.Get(r.Context(), middleware.SessionID(r.Context()))
}

// Get handles GET /cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view(h.store(r)))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "")
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id_required", "")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", "")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}

	store := h.store(r)
	if err := store.AddItem(*p, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrOutOfStock) {
			writeError(w, http.StatusConflict, "out_of_stock", "This product is currently out of stock.")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	writeJSON(w, http.StatusOK, h.view(store))
}

// UpdateItem handles PUT /cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "")
		return
	}

	store := h.store(r)
	store.SetQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, h.view(store))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.view(store))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.Clear()
	writeJSON(w, http.StatusOK, h.view(store))
}
