package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// PaymentsCmd groups payment history and settlement commands.
type PaymentsCmd struct {
	List PaymentsListCmd `cmd:"" default:"1" help:"List payments"`
	Show PaymentsShowCmd `cmd:"" help:"Show one payment"`
	Pay  PaymentsPayCmd  `cmd:"" help:"Settle a pending payment"`
}

type PaymentsListCmd struct {
	Estado string `help:"Filter by estado (pending, processing, completed, failed)" default:""`
}

func (p *PaymentsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pagos, err := app.client.ListPagos(ctx, p.Estado)
	if err != nil {
		log.Error().Err(err).Msg("failed to list payments")
		return fmt.Errorf("could not load your payments, please try again")
	}

	if len(pagos) == 0 {
		fmt.Println("No payments found.")
		return nil
	}

	printPayments(pagos)
	return nil
}

type PaymentsShowCmd struct {
	ID int64 `arg:"" help:"Payment id"`
}

func (p *PaymentsShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pago, err := app.client.GetPago(ctx, p.ID)
	if err != nil {
		log.Error().Err(err).Int64("id", p.ID).Msg("failed to get payment")
		return fmt.Errorf("could not load payment %d", p.ID)
	}

	fmt.Printf("Payment #%d, %s, $%.2f %s\n", pago.ID, estadoLabel(pago.Estado), pago.Monto, pago.Moneda)
	fmt.Printf("  Pedido:  #%d\n", pago.IDPedido)
	if pago.MetodoPago != nil {
		fmt.Printf("  Metodo:  %s\n", *pago.MetodoPago)
	}
	if pago.FechaPago != nil {
		fmt.Printf("  Pagado:  %s\n", *pago.FechaPago)
	}
	fmt.Printf("  Creado:  %s\n", pago.FechaCreacion)
	return nil
}

type PaymentsPayCmd struct {
	ID     int64  `arg:"" help:"Payment id"`
	Metodo string `help:"Payment method" enum:"paypal,nequi,credit_card,simulado" default:"paypal"`
}

func (p *PaymentsPayCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	pago, err := app.client.GetPago(ctx, p.ID)
	if err != nil {
		log.Error().Err(err).Int64("id", p.ID).Msg("failed to get payment")
		return fmt.Errorf("could not load payment %d", p.ID)
	}

	// Settlement sends the amount back with the chosen method, as the
	// storefront's payment modal did.
	updated, err := app.client.UpdatePago(ctx, pago.ID, models.PaymentUpdate{
		Monto:      &pago.Monto,
		MetodoPago: &p.Metodo,
	})
	if err != nil {
		log.Error().Err(err).Int64("id", p.ID).Msg("failed to settle payment")
		return fmt.Errorf("could not process the payment, please try again")
	}

	fmt.Printf("Payment #%d is now %s\n", updated.ID, estadoLabel(updated.Estado))
	return nil
}

func printPayments(pagos []models.Payment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPEDIDO\tFECHA\tESTADO\tMETODO\tMONTO")
	for _, pago := range pagos {
		metodo := "-"
		if pago.MetodoPago != nil && *pago.MetodoPago != "" {
			metodo = *pago.MetodoPago
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t$%.2f %s\n",
			pago.ID, pago.IDPedido, pago.FechaCreacion, estadoLabel(pago.Estado), metodo, pago.Monto, pago.Moneda)
	}
	w.Flush()
}
