package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
)

// OrdersCmd groups order history commands.
type OrdersCmd struct {
	List OrdersListCmd `cmd:"" default:"1" help:"List orders"`
	Show OrdersShowCmd `cmd:"" help:"Show one order with its lines"`
}

type OrdersListCmd struct{}

func (o *OrdersListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pedidos, err := app.client.ListPedidos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		return fmt.Errorf("could not load your orders, please try again")
	}

	if len(pedidos) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tESTADO\tLINEAS\tTOTAL")
	for _, pedido := range pedidos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t$%.2f\n",
			pedido.ID, pedido.FechaCreacion, estadoLabel(pedido.Estado), len(pedido.Items), pedido.MontoTotal)
	}
	return w.Flush()
}

type OrdersShowCmd struct {
	ID int64 `arg:"" help:"Order id"`
}

func (o *OrdersShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pedido, err := app.client.GetPedido(ctx, o.ID)
	if err != nil {
		log.Error().Err(err).Int64("id", o.ID).Msg("failed to get order")
		return fmt.Errorf("could not load order %d", o.ID)
	}

	fmt.Printf("Order #%d, %s, total $%.2f\n", pedido.ID, estadoLabel(pedido.Estado), pedido.MontoTotal)
	fmt.Printf("Created %s\n\n", pedido.FechaCreacion)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCTO\tCANTIDAD\tPRECIO UNITARIO\tSUBTOTAL")
	for _, item := range pedido.Items {
		fmt.Fprintf(w, "%d\t%d\t$%.2f\t$%.2f\n",
			item.IDProducto, item.Cantidad, item.PrecioUnitario, item.PrecioUnitario*float64(item.Cantidad))
	}
	return w.Flush()
}
