package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/tiendartesanal/tienda-cli/cmd/tienda/internal/commands"
	"github.com/tiendartesanal/tienda-cli/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Auth     commands.AuthCmd     `cmd:"" help:"Account and session"`
		Products commands.ProductsCmd `cmd:"" help:"Browse the catalog"`
		Cart     commands.CartCmd     `cmd:"" help:"Manage the shopping cart"`
		Checkout commands.CheckoutCmd `cmd:"" help:"Place an order from the cart"`
		Orders   commands.OrdersCmd   `cmd:"" help:"Order history"`
		Payments commands.PaymentsCmd `cmd:"" help:"Payment history"`
		Admin    commands.AdminCmd    `cmd:"" help:"Management console"`
		Config   string               `help:"Path to config file" type:"path"`
		Debug    bool                 `help:"Enable debug mode."`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	logger.Setup(cli.Debug)

	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Config: cli.Config, Version: version})
	cmd.FatalIfErrorf(err)
}
