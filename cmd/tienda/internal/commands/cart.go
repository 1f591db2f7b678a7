package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/cart"
)

// CartCmd groups cart commands. Every mutation is persisted before the
// command returns, so the cart survives between invocations.
type CartCmd struct {
	Show   CartShowCmd   `cmd:"" default:"1" help:"Show the cart"`
	Add    CartAddCmd    `cmd:"" help:"Add a product to the cart"`
	Remove CartRemoveCmd `cmd:"" help:"Remove a product from the cart"`
	Update CartUpdateCmd `cmd:"" help:"Set the quantity of a cart line"`
	Clear  CartClearCmd  `cmd:"" help:"Empty the cart"`
}

type CartShowCmd struct{}

func (c *CartShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	printCart(app.cart.Current())
	return nil
}

type CartAddCmd struct {
	ID       int64 `arg:"" help:"Product id"`
	Cantidad int   `help:"Quantity to add" short:"n" default:"1"`
}

func (c *CartAddCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	// The cart line carries the product attributes, so resolve them from
	// the catalog first.
	producto, err := app.client.GetProducto(ctx, c.ID)
	if err != nil {
		log.Error().Err(err).Int64("id", c.ID).Msg("failed to get product")
		return fmt.Errorf("could not load product %d", c.ID)
	}

	snap, err := app.cart.Add(*producto, c.Cantidad)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return fmt.Errorf("quantity must be at least 1")
		}
		return err
	}

	fmt.Printf("Added %d x %s\n", c.Cantidad, producto.Nombre)
	printCart(snap)
	return nil
}

type CartRemoveCmd struct {
	ID int64 `arg:"" help:"Product id"`
}

func (c *CartRemoveCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	snap, err := app.cart.Remove(c.ID)
	if err != nil {
		return err
	}

	printCart(snap)
	return nil
}

type CartUpdateCmd struct {
	ID       int64 `arg:"" help:"Product id"`
	Cantidad int   `arg:"" help:"New quantity"`
}

func (c *CartUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	snap, err := app.cart.UpdateQuantity(c.ID, c.Cantidad)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return fmt.Errorf("quantity must be at least 1; use `tienda cart remove %d` to drop the line", c.ID)
		}
		return err
	}

	printCart(snap)
	return nil
}

type CartClearCmd struct{}

func (c *CartClearCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if _, err := app.cart.Clear(); err != nil {
		return err
	}

	fmt.Println("Cart cleared.")
	return nil
}

func printCart(snap cart.Cart) {
	if len(snap.Items) == 0 {
		fmt.Println("Your cart is empty. Browse the catalog with `tienda products list`.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tCANTIDAD\tSUBTOTAL")
	for _, item := range snap.Items {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t$%.2f\n",
			item.ID, item.Nombre, item.Precio, item.Cantidad, item.Precio*float64(item.Cantidad))
	}
	w.Flush()

	fmt.Printf("\n%d items, total $%.2f\n", snap.TotalItems(), snap.TotalPrice())
}
