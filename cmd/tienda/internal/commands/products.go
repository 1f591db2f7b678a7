package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// ProductsCmd groups catalog browsing commands.
type ProductsCmd struct {
	List ProductsListCmd `cmd:"" help:"List catalog products"`
	Show ProductsShowCmd `cmd:"" help:"Show one product"`
}

type ProductsListCmd struct {
	Categoria string `help:"Filter by category" default:""`
	All       bool   `help:"Include inactive products" default:"false"`
}

func (p *ProductsListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	productos, err := app.client.ListProductos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		return fmt.Errorf("could not load the catalog, please try again")
	}

	filtered := make([]models.Producto, 0, len(productos))
	for _, producto := range productos {
		if !p.All && !producto.IsActive {
			continue
		}
		if p.Categoria != "" && !strings.EqualFold(producto.Categoria, p.Categoria) {
			continue
		}
		filtered = append(filtered, producto)
	}

	if len(filtered) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORIA\tPRECIO\tACTIVO")
	for _, producto := range filtered {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%t\n",
			producto.ID, producto.Nombre, producto.Categoria, producto.Precio, producto.IsActive)
	}
	return w.Flush()
}

type ProductsShowCmd struct {
	ID int64 `arg:"" help:"Product id"`
}

func (p *ProductsShowCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	producto, err := app.client.GetProducto(ctx, p.ID)
	if err != nil {
		log.Error().Err(err).Int64("id", p.ID).Msg("failed to get product")
		return fmt.Errorf("could not load product %d", p.ID)
	}

	fmt.Printf("%s (id %d)\n", producto.Nombre, producto.ID)
	fmt.Printf("  Categoria: %s\n", producto.Categoria)
	fmt.Printf("  Precio:    $%.2f\n", producto.Precio)
	fmt.Printf("  Activo:    %t\n", producto.IsActive)
	if producto.Descripcion != "" {
		fmt.Printf("  %s\n", producto.Descripcion)
	}
	if producto.Image != nil && *producto.Image != "" {
		fmt.Printf("  Imagen:    %s\n", *producto.Image)
	}
	return nil
}
