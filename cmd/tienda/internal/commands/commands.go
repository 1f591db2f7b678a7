package commands

import (
	"strings"

	"github.com/tiendartesanal/tienda-cli/internal/api"
	"github.com/tiendartesanal/tienda-cli/internal/cart"
	"github.com/tiendartesanal/tienda-cli/internal/config"
	"github.com/tiendartesanal/tienda-cli/internal/session"
	"github.com/tiendartesanal/tienda-cli/internal/state"
)

type Globals struct {
	Debug   bool
	Config  string
	Version string
}

// app bundles the stores and the backend client a command needs. Stores are
// explicit objects wired here and passed down, never package-level state.
type app struct {
	cfg     *config.Config
	session *session.Store
	cart    *cart.Store
	client  *api.Client
}

func newApp(globals *Globals) (*app, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}

	st, err := state.NewStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(st)

	return &app{
		cfg:     cfg,
		session: sessions,
		cart:    cart.NewStore(st),
		client: api.NewClient(api.Config{
			BaseURL:  cfg.APIGatewayURL,
			CacheDir: cfg.CacheDir,
		}, sessions),
	}, nil
}

// estadoLabel renders backend order/payment states the way the storefront
// displayed them. Unknown states pass through unchanged.
func estadoLabel(estado string) string {
	switch strings.ToLower(estado) {
	case "pending":
		return "Pendiente"
	case "processing":
		return "En Proceso"
	case "completed":
		return "Completado"
	case "cancelled":
		return "Cancelado"
	case "failed":
		return "Fallido"
	default:
		return estado
	}
}
