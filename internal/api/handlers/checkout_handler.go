package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aarohi-store/storefront/internal/api/middleware"
	"github.com/aarohi-store/storefront/internal/cart"
	"github.com/aarohi-store/storefront/internal/checkout"
	"github.com/aarohi-store/storefront/internal/models"
	"github.com/aarohi-store/storefront/pkg/currency"
)

type CheckoutHandler struct {
	carts    *cart.Manager
	checkout *checkout.Service
	symbol   string
}

func NewCheckoutHandler(carts *cart.Manager, svc *checkout.Service, symbol string) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, checkout: svc, symbol: symbol}
}

type summaryResponse struct {
	Subtotal        float64 `json:"subtotal"`
	Shipping        float64 `json:"shipping"`
	Total           float64 `json:"total"`
	SubtotalDisplay string  `json:"subtotalDisplay"`
	ShippingDisplay string  `json:"shippingDisplay"`
	TotalDisplay    string  `json:"totalDisplay"`
}

type submitResponse struct {
	URL string `json:"url"`
}

// Summary handles GET /checkout/summary — the order summary panel.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), middleware.SessionID(r.Context()))
	totals := h.checkout.Quote(store)

	shippingDisplay := currency.FormatPrice(h.symbol, totals.Shipping)
	if totals.Shipping == 0 {
		shippingDisplay = "FREE"
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		SubtotalDisplay: currency.FormatPrice(h.symbol, totals.Subtotal),
		ShippingDisplay: shippingDisplay,
		TotalDisplay:    currency.FormatPrice(h.symbol, totals.Total),
	})
}

// Submit handles POST /checkout. On success the response carries the
// payment page URL the client must navigate to.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "")
		return
	}

	sessionID := middleware.SessionID(r.Context())
	store := h.carts.Get(r.Context(), sessionID)

	url, err := h.checkout.Submit(r.Context(), sessionID, store, form)
	if err != nil {
		var vErr *checkout.ValidationError
		var svcErr *checkout.ServiceError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "empty_cart", "Please add items to your cart before checkout.")
		case errors.Is(err, checkout.ErrCheckoutInFlight):
			writeError(w, http.StatusConflict, "checkout_in_flight", "A checkout is already being processed.")
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation_failed",
				Errors: vErr.Fields,
			})
		case errors.As(err, &svcErr):
			writeError(w, http.StatusBadGateway, "checkout_failed", "Something went wrong. Please try again.")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{URL: url})
}
