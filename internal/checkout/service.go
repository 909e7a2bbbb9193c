package checkout

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/aarohi-store/storefront/internal/cart"
	"github.com/aarohi-store/storefront/internal/models"
)

// PaymentClient creates a payment session for an order and returns the URL
// the shopper must be redirected to. Implemented by internal/payment.
type PaymentClient interface {
	CreateSession(ctx context.Context, payload models.OrderPayload) (string, error)
}

// Config holds the pricing policy and the origin image paths are resolved
// against. Threshold and fee are injected, never hardwired.
type Config struct {
	FreeShippingThreshold float64
	FlatShippingFee       float64
	PublicOrigin          string
}

// Totals is the computed order summary.
type Totals struct {
	Subtotal float64
	Shipping float64
	Total    float64
}

// Service orchestrates a checkout attempt. It is the only component in the
// core that performs I/O: one payment-session call per attempt.
type Service struct {
	payments PaymentClient
	cfg      Config

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(payments PaymentClient, cfg Config) *Service {
	return &Service{
		payments: payments,
		cfg:      cfg,
		inFlight: make(map[string]struct{}),
	}
}

// Quote computes subtotal, shipping, and total for the cart as it stands.
// Shipping is waived when the subtotal exceeds the free-shipping threshold.
func (s *Service) Quote(store *cart.Store) Totals {
	return s.totalsFor(store.Lines())
}

// Submit runs one checkout attempt: guard against duplicates, reject empty
// carts before any network call, validate the form, build the payload, and
// create the payment session. On success the cart is cleared and the
// redirect URL returned; on any failure cart and form are left untouched.
func (s *Service) Submit(ctx context.Context, sessionID string, store *cart.Store, form models.ShippingInfo) (string, error) {
	if !s.begin(sessionID) {
		return "", ErrCheckoutInFlight
	}
	defer s.end(sessionID)

	lines := store.Lines()
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	info, fieldErrs := ValidateShipping(form)
	if fieldErrs != nil {
		return "", &ValidationError{Fields: fieldErrs}
	}

	payload := s.buildPayload(lines, info)
	slog.InfoContext(ctx, "submitting checkout",
		"session_id", sessionID,
		"items", len(payload.Items),
		"subtotal", payload.Subtotal,
		"shipping", payload.Shipping,
		"total", payload.Total,
	)

	url, err := s.payments.CreateSession(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "checkout submission failed", "session_id", sessionID, "error", err)
		return "", &ServiceError{Err: err}
	}

	store.Clear()
	slog.InfoContext(ctx, "checkout session created", "session_id", sessionID, "redirect_url", url)
	return url, nil
}

func (s *Service) buildPayload(lines []models.CartLine, info models.ShippingInfo) models.OrderPayload {
	items := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		item := models.OrderLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.EffectivePrice(),
			Quantity:  line.Quantity,
		}
		if len(line.Product.Images) > 0 {
			item.Image = resolveImageURL(s.cfg.PublicOrigin, line.Product.Images[0])
		}
		items = append(items, item)
	}

	totals := s.totalsFor(lines)
	return models.OrderPayload{
		Items:         items,
		CustomerEmail: info.Email,
		ShippingInfo:  info,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
	}
}

func (s *Service) totalsFor(lines []models.CartLine) Totals {
	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.LineTotal()
	}
	subtotal = roundCents(subtotal)

	shipping := s.cfg.FlatShippingFee
	if subtotal > s.cfg.FreeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    roundCents(subtotal + shipping),
	}
}

// begin marks the session as having a submission in flight. It returns false
// when one is already running.
func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}

// resolveImageURL makes a catalog image reference absolute against the
// deployment origin. Already-absolute references pass through unchanged.
func resolveImageURL(origin, image string) string {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return strings.TrimSuffix(origin, "/") + image
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
