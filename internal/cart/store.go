package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
	"github.com/tiendartesanal/tienda-cli/internal/state"
)

// Store wraps the pure Cart snapshot with durable persistence. Each mutation
// computes the next snapshot, writes it, and only then replaces the current
// one, so a failed write leaves the observable cart unchanged.
type Store struct {
	state   *state.Store
	current Cart
}

// NewStore rehydrates the cart from durable storage. A missing or corrupt
// snapshot yields the empty cart.
func NewStore(st *state.Store) *Store {
	s := &Store{state: st}

	data, err := st.Get(state.CartKey)
	if err != nil {
		if !errors.Is(err, state.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("failed to load cart, starting empty")
		}
		return s
	}

	var snap Cart
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn().Err(err).Msg("corrupt cart snapshot, starting empty")
		return s
	}

	s.current = snap
	return s
}

// Current returns the current snapshot.
func (s *Store) Current() Cart {
	return s.current
}

// Items returns the current line items.
func (s *Store) Items() []LineItem {
	return s.current.Items
}

// Add merges the product into the cart and persists the new snapshot.
func (s *Store) Add(producto models.Producto, cantidad int) (Cart, error) {
	next, err := s.current.Add(producto, cantidad)
	if err != nil {
		return s.current, err
	}
	return s.commit(next)
}

// Remove deletes the line for the product id and persists the new snapshot.
func (s *Store) Remove(id int64) (Cart, error) {
	return s.commit(s.current.Remove(id))
}

// UpdateQuantity overwrites a line's quantity and persists the new snapshot.
func (s *Store) UpdateQuantity(id int64, cantidad int) (Cart, error) {
	next, err := s.current.UpdateQuantity(id, cantidad)
	if err != nil {
		return s.current, err
	}
	return s.commit(next)
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear() (Cart, error) {
	return s.commit(s.current.Clear())
}

func (s *Store) commit(next Cart) (Cart, error) {
	data, err := json.Marshal(next)
	if err != nil {
		return s.current, fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.state.Put(state.CartKey, data); err != nil {
		return s.current, err
	}

	s.current = next
	return next, nil
}
