package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// AdminCmd is the management console: product CRUD, order management, and
// the pending-payments board. Authorization is the backend's problem; these
// commands only issue the calls.
type AdminCmd struct {
	Products AdminProductsCmd `cmd:"" help:"Manage catalog products"`
	Orders   AdminOrdersCmd   `cmd:"" help:"Manage orders"`
	Payments AdminPaymentsCmd `cmd:"" help:"Manage payments"`
}

type AdminProductsCmd struct {
	Create AdminProductCreateCmd `cmd:"" help:"Create a product"`
	Update AdminProductUpdateCmd `cmd:"" help:"Update a product"`
	Delete AdminProductDeleteCmd `cmd:"" help:"Delete a product"`
}

type AdminProductCreateCmd struct {
	Nombre      string  `arg:"" help:"Product name"`
	Precio      float64 `help:"Unit price" required:""`
	Categoria   string  `help:"Category" required:""`
	Descripcion string  `help:"Description" default:""`
	Image       string  `help:"Image URL" default:""`
	Inactive    bool    `help:"Create as inactive" default:"false"`
}

func (a *AdminProductCreateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	create := models.ProductoCreate{
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		Precio:      a.Precio,
		Categoria:   a.Categoria,
	}
	if a.Image != "" {
		create.Image = &a.Image
	}
	if a.Inactive {
		active := false
		create.IsActive = &active
	}

	producto, err := app.client.CreateProducto(ctx, create)
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		return fmt.Errorf("could not create the product")
	}

	fmt.Printf("Created product %s (id %d)\n", producto.Nombre, producto.ID)
	return nil
}

type AdminProductUpdateCmd struct {
	ID          int64    `arg:"" help:"Product id"`
	Nombre      *string  `help:"Product name"`
	Precio      *float64 `help:"Unit price"`
	Categoria   *string  `help:"Category"`
	Descripcion *string  `help:"Description"`
	Image       *string  `help:"Image URL"`
	Active      *bool    `help:"Active flag"`
}

func (a *AdminProductUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	update := models.ProductoUpdate{
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		Precio:      a.Precio,
		Categoria:   a.Categoria,
		Image:       a.Image,
		IsActive:    a.Active,
	}

	producto, err := app.client.UpdateProducto(ctx, a.ID, update)
	if err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("failed to update product")
		return fmt.Errorf("could not update product %d", a.ID)
	}

	fmt.Printf("Updated product %s (id %d)\n", producto.Nombre, producto.ID)
	return nil
}

type AdminProductDeleteCmd struct {
	ID int64 `arg:"" help:"Product id"`
}

func (a *AdminProductDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := app.client.DeleteProducto(ctx, a.ID); err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("failed to delete product")
		return fmt.Errorf("could not delete product %d", a.ID)
	}

	fmt.Printf("Deleted product %d\n", a.ID)
	return nil
}

type AdminOrdersCmd struct {
	Cancel AdminOrderCancelCmd `cmd:"" help:"Cancel a pending order"`
	Delete AdminOrderDeleteCmd `cmd:"" help:"Delete an order"`
}

type AdminOrderCancelCmd struct {
	ID int64 `arg:"" help:"Order id"`
}

func (a *AdminOrderCancelCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	estado := "cancelled"
	pedido, err := app.client.UpdatePedido(ctx, a.ID, models.OrderUpdate{Estado: &estado})
	if err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("failed to cancel order")
		return fmt.Errorf("could not cancel order %d", a.ID)
	}

	fmt.Printf("Order #%d is now %s\n", pedido.ID, estadoLabel(pedido.Estado))
	return nil
}

type AdminOrderDeleteCmd struct {
	ID int64 `arg:"" help:"Order id"`
}

func (a *AdminOrderDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := app.client.DeletePedido(ctx, a.ID); err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("failed to delete order")
		return fmt.Errorf("could not delete order %d", a.ID)
	}

	fmt.Printf("Deleted order %d\n", a.ID)
	return nil
}

type AdminPaymentsCmd struct {
	Pending AdminPaymentsPendingCmd `cmd:"" default:"1" help:"List pending payments"`
	Delete  AdminPaymentDeleteCmd   `cmd:"" help:"Delete a payment"`
}

type AdminPaymentsPendingCmd struct{}

func (a *AdminPaymentsPendingCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pagos, err := app.client.ListPagos(ctx, "pending")
	if err != nil {
		log.Error().Err(err).Msg("failed to list pending payments")
		return fmt.Errorf("could not load pending payments")
	}

	if len(pagos) == 0 {
		fmt.Println("No pending payments.")
		return nil
	}

	printPayments(pagos)
	fmt.Println("\nSettle one with `tienda payments pay <id> --metodo <metodo>`.")
	return nil
}

type AdminPaymentDeleteCmd struct {
	ID int64 `arg:"" help:"Payment id"`
}

func (a *AdminPaymentDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := app.client.DeletePago(ctx, a.ID); err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("failed to delete payment")
		return fmt.Errorf("could not delete payment %d", a.ID)
	}

	fmt.Printf("Deleted payment %d\n", a.ID)
	return nil
}
