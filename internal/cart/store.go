package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps the live cart of each operator, keyed by user id. It replaces
// the ambient app-wide cart singleton of the UI with an explicitly owned
// session object so tests can construct isolated carts.
//
// The mutex guards the registry map only. Each cart is owned by a single
// operator session; the HTTP layer must not mutate one cart from two
// in-flight requests (caller discipline, see checkout).
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID]*Cart)}
}

// Get returns the operator's cart, creating an empty one on first use.
func (s *Store) Get(operatorID uuid.UUID) *Cart {
	s.mu.RLock()
	c, ok := s.carts[operatorID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[operatorID]; ok {
		return c
	}
	c = New()
	s.carts[operatorID] = c
	return c
}

// Drop removes the operator's cart from the registry entirely, e.g. on
// logout. Checkout does not drop — it clears the cart in place so the
// operator keeps ringing up customers against the same session.
func (s *Store) Drop(operatorID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, operatorID)
}
