package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

func producto(id int64, nombre string, precio float64) models.Producto {
	return models.Producto{ID: id, Nombre: nombre, Precio: precio, Categoria: "ceramica", IsActive: true}
}

func TestCart_Add(t *testing.T) {
	t.Run("distinct products become distinct lines", func(t *testing.T) {
		c := Cart{}

		c, err := c.Add(producto(1, "taza", 1000), 2)
		require.NoError(t, err)
		c, err = c.Add(producto(2, "plato", 500), 1)
		require.NoError(t, err)

		assert.Len(t, c.Items, 2)
		assert.Equal(t, 3, c.TotalItems())
	})

	t.Run("same product merges quantities, never duplicates", func(t *testing.T) {
		c := Cart{}

		c, err := c.Add(producto(1, "taza", 1000), 2)
		require.NoError(t, err)
		c, err = c.Add(producto(1, "taza", 1000), 3)
		require.NoError(t, err)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Cantidad)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		c := Cart{}

		_, err := c.Add(producto(1, "taza", 1000), 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = c.Add(producto(1, "taza", 1000), -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("returns a new snapshot, receiver unchanged", func(t *testing.T) {
		c := Cart{}

		next, err := c.Add(producto(1, "taza", 1000), 1)
		require.NoError(t, err)

		assert.Empty(t, c.Items)
		assert.Len(t, next.Items, 1)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("removes the matching line", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)
		c, _ = c.Add(producto(2, "plato", 500), 1)

		c = c.Remove(1)

		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(2), c.Items[0].ID)
	})

	t.Run("removing twice is a no-op the second time", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)

		c = c.Remove(1)
		again := c.Remove(1)

		assert.Equal(t, c, again)
		assert.Empty(t, again.Items)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("overwrites the quantity", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)

		c, err := c.UpdateQuantity(1, 7)
		require.NoError(t, err)

		assert.Equal(t, 7, c.Items[0].Cantidad)
	})

	t.Run("absent id leaves the cart unchanged", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)

		next, err := c.UpdateQuantity(99, 5)
		require.NoError(t, err)

		assert.Equal(t, c.Items, next.Items)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)

		_, err := c.UpdateQuantity(1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestCart_Totals(t *testing.T) {
	t.Run("empty cart totals are zero", func(t *testing.T) {
		c := Cart{}
		assert.Equal(t, 0, c.TotalItems())
		assert.Equal(t, 0.0, c.TotalPrice())
	})

	t.Run("derived totals across lines", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)
		c, _ = c.Add(producto(2, "plato", 500), 1)

		assert.Equal(t, 3, c.TotalItems())
		assert.Equal(t, 2500.0, c.TotalPrice())
	})

	t.Run("clear always yields zero totals", func(t *testing.T) {
		c := Cart{}
		c, _ = c.Add(producto(1, "taza", 1000), 2)

		c = c.Clear()

		assert.Equal(t, 0, c.TotalItems())
		assert.Equal(t, 0.0, c.TotalPrice())
	})
}
