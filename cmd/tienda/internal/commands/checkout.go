package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/checkout"
)

// CheckoutCmd submits the cart as an order.
type CheckoutCmd struct {
	List bool `help:"List recent orders after checkout" default:"true"`
}

func (c *CheckoutCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	order, err := checkout.Process(ctx, app.client, app.session.Current(), app.cart)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			return fmt.Errorf("your cart is empty, nothing to check out")
		case errors.Is(err, checkout.ErrNotAuthenticated):
			return fmt.Errorf("log in first with `tienda auth login`")
		default:
			log.Error().Err(err).Msg("checkout failed")
			return fmt.Errorf("could not place the order, your cart is unchanged")
		}
	}

	fmt.Printf("Order #%d placed, total $%.2f (%s)\n", order.ID, order.MontoTotal, estadoLabel(order.Estado))

	// Jump to the order history, like the storefront did after checkout.
	if c.List {
		list := OrdersListCmd{}
		if err := list.Run(ctx, globals); err != nil {
			fmt.Printf("Failed to list orders: %v\n", err)
		}
	}

	return nil
}
