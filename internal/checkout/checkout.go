// Package checkout implements the cart-to-order flow: a single best-effort
// round trip with no optimistic update, no retry, and no partial orders.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/cart"
	"github.com/tiendartesanal/tienda-cli/internal/models"
	"github.com/tiendartesanal/tienda-cli/internal/session"
)

var (
	// ErrEmptyCart is returned when checking out an empty cart. No request
	// is sent.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotAuthenticated is returned when no user is logged in. No request
	// is sent.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// OrderCreator is the slice of the API client checkout needs.
type OrderCreator interface {
	CreatePedido(ctx context.Context, pedido models.OrderCreate) (*models.Order, error)
}

// Process submits the cart as an order for the authenticated user. Unit
// prices are omitted from the request; the backend resolves them
// authoritatively. On success the cart is cleared and the created order
// returned. On failure the cart is left untouched.
func Process(ctx context.Context, orders OrderCreator, sess session.Session, carrito *cart.Store) (*models.Order, error) {
	items := carrito.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	// A session persisted before the profile resolved carries no user id,
	// and the backend requires one on the order.
	if !sess.IsAuthenticated() || sess.User.ID == 0 {
		return nil, ErrNotAuthenticated
	}

	pedido := models.OrderCreate{
		IDUsuario: sess.User.ID,
		Items:     make([]models.OrderItemCreate, 0, len(items)),
	}
	for _, item := range items {
		pedido.Items = append(pedido.Items, models.OrderItemCreate{
			IDProducto: item.ID,
			Cantidad:   item.Cantidad,
		})
	}

	order, err := orders.CreatePedido(ctx, pedido)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if _, err := carrito.Clear(); err != nil {
		// The order exists on the backend; a failed local clear is only a
		// stale snapshot, not a failed checkout.
		log.Warn().Err(err).Int64("orderID", order.ID).Msg("order created but cart not cleared")
	}

	log.Info().Int64("orderID", order.ID).Float64("montoTotal", order.MontoTotal).Msg("checkout complete")

	return order, nil
}
