package cart

import (
	"errors"
	"sync"

	"github.com/aarohi-store/storefront/internal/models"
)

// ErrOutOfStock is returned by AddItem when the product cannot be added.
// The caller decides how to surface it; the store never drops the request
// silently.
var ErrOutOfStock = errors.New("product is out of stock")

// EventKind identifies which mutation produced a cart Event.
type EventKind string

const (
	EventItemAdded   EventKind = "item_added"
	EventItemUpdated EventKind = "item_updated"
	EventItemRemoved EventKind = "item_removed"
	EventCleared     EventKind = "cleared"
)

// Event is published to observers after every mutating operation so
// dependent layers (badges, snapshot persistence) stay consistent without
// owning cart state.
type Event struct {
	Kind      EventKind
	ProductID string
	ItemCount int
}

// Observer receives cart change events. Observers must treat the cart as
// read-only.
type Observer func(Event)

// Store owns one session's cart: a product-id keyed set of lines plus the
// insertion order used for display. The original app serialized mutations on
// the browser event loop; behind an HTTP server the mutex plays that role.
type Store struct {
	mu        sync.Mutex
	lines     map[string]*models.CartLine
	order     []string
	observers []Observer
}

func NewStore() *Store {
	return &Store{
		lines: make(map[string]*models.CartLine),
	}
}

// Subscribe registers an observer for subsequent cart changes.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// AddItem merges qty into the existing line for the product, or appends a
// new line. Quantities below one are treated as one. Out-of-stock products
// are rejected.
func (s *Store) AddItem(p models.Product, qty int) error {
	if !p.InStock {
		return ErrOutOfStock
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	if line, ok := s.lines[p.ID]; ok {
		line.Quantity += qty
	} else {
		s.lines[p.ID] = &models.CartLine{Product: p, Quantity: qty}
		s.order = append(s.order, p.ID)
	}
	ev := Event{Kind: EventItemAdded, ProductID: p.ID, ItemCount: s.itemCountLocked()}
	obs := s.observers
	s.mu.Unlock()

	notify(obs, ev)
	return nil
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line; an unknown product id is a no-op.
func (s *Store) SetQuantity(productID string, qty int) {
	s.mu.Lock()
	line, ok := s.lines[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	kind := EventItemUpdated
	if qty <= 0 {
		s.removeLocked(productID)
		kind = EventItemRemoved
	} else {
		line.Quantity = qty
	}
	ev := Event{Kind: kind, ProductID: productID, ItemCount: s.itemCountLocked()}
	obs := s.observers
	s.mu.Unlock()

	notify(obs, ev)
}

// RemoveItem removes the line for the product if present; no-op otherwise.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	if _, ok := s.lines[productID]; !ok {
		s.mu.Unlock()
		return
	}
	s.removeLocked(productID)
	ev := Event{Kind: EventItemRemoved, ProductID: productID, ItemCount: s.itemCountLocked()}
	obs := s.observers
	s.mu.Unlock()

	notify(obs, ev)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = make(map[string]*models.CartLine)
	s.order = nil
	ev := Event{Kind: EventCleared, ItemCount: 0}
	obs := s.observers
	s.mu.Unlock()

	notify(obs, ev)
}

// ItemCount is the sum of all line quantities (badge count).
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

// Total sums the effective unit price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.LineTotal()
	}
	return total
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.lines[id])
	}
	return out
}

// restore seeds the store from a snapshot without notifying observers.
// Lines with a non-positive quantity are skipped rather than stored.
func (s *Store) restore(lines []models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if _, ok := s.lines[line.Product.ID]; ok {
			continue
		}
		l := line
		s.lines[l.Product.ID] = &l
		s.order = append(s.order, l.Product.ID)
	}
}

func (s *Store) removeLocked(productID string) {
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) itemCountLocked() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// notify runs outside the store lock so observers may read the cart.
func notify(observers []Observer, ev Event) {
	for _, fn := range observers {
		fn(ev)
	}
}
