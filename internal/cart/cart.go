// Package cart implements the shopping cart: a pure snapshot value with
// merge-by-product semantics, and a Store that persists every new snapshot
// to durable storage.
package cart

import (
	"errors"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// ErrInvalidQuantity is returned for quantities below 1. The web client
// silently accepted them; rejecting keeps a zero-quantity line from ever
// reaching the persisted snapshot.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// LineItem pairs one product with a quantity.
type LineItem struct {
	models.Producto
	Cantidad int `json:"cantidad"`
}

// Cart is the complete cart state at one point in time. Items keep insertion
// order and hold at most one line per product id. Cart is a value: every
// mutation returns a new snapshot and leaves the receiver untouched.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges cantidad into an existing line for the product, or appends a
// new line. Never duplicates a product row.
func (c Cart) Add(producto models.Producto, cantidad int) (Cart, error) {
	if cantidad < 1 {
		return c, ErrInvalidQuantity
	}

	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID == producto.ID {
			next.Items[i].Cantidad += cantidad
			return next, nil
		}
	}

	next.Items = append(next.Items, LineItem{Producto: producto, Cantidad: cantidad})
	return next, nil
}

// Remove deletes the line for the product id. Removing an absent id is a
// no-op.
func (c Cart) Remove(id int64) Cart {
	next := Cart{Items: make([]LineItem, 0, len(c.Items))}
	for _, item := range c.Items {
		if item.ID != id {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

// UpdateQuantity overwrites the quantity of the matching line. An absent id
// is a no-op; it never creates a new line.
func (c Cart) UpdateQuantity(id int64, cantidad int) (Cart, error) {
	if cantidad < 1 {
		return c, ErrInvalidQuantity
	}

	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID == id {
			next.Items[i].Cantidad = cantidad
			break
		}
	}
	return next, nil
}

// Clear returns the empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// TotalItems returns the sum of all quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Cantidad
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all lines.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Precio * float64(item.Cantidad)
	}
	return total
}

func (c Cart) clone() Cart {
	next := Cart{Items: make([]LineItem, len(c.Items))}
	copy(next.Items, c.Items)
	return next
}
