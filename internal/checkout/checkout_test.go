package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendartesanal/tienda-cli/internal/cart"
	"github.com/tiendartesanal/tienda-cli/internal/models"
	"github.com/tiendartesanal/tienda-cli/internal/session"
	"github.com/tiendartesanal/tienda-cli/internal/state"
)

type fakeOrders struct {
	calls   int
	created models.OrderCreate
	order   *models.Order
	err     error
}

func (f *fakeOrders) CreatePedido(ctx context.Context, pedido models.OrderCreate) (*models.Order, error) {
	f.calls++
	f.created = pedido
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func newCartStore(t *testing.T) *cart.Store {
	t.Helper()
	st, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	return cart.NewStore(st)
}

func authenticated() session.Session {
	return session.Session{
		User:  &models.User{ID: 7, Username: "marta", Email: "marta@example.com"},
		Token: "tok1",
	}
}

func TestProcess(t *testing.T) {
	t.Run("empty cart never calls the backend", func(t *testing.T) {
		orders := &fakeOrders{}
		carrito := newCartStore(t)

		_, err := Process(context.Background(), orders, authenticated(), carrito)

		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Zero(t, orders.calls)
	})

	t.Run("unauthenticated session never calls the backend", func(t *testing.T) {
		orders := &fakeOrders{}
		carrito := newCartStore(t)
		_, err := carrito.Add(models.Producto{ID: 1, Nombre: "taza", Precio: 1000}, 2)
		require.NoError(t, err)

		_, err = Process(context.Background(), orders, session.Session{}, carrito)

		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.Zero(t, orders.calls)
	})

	t.Run("session without a resolved user id never calls the backend", func(t *testing.T) {
		orders := &fakeOrders{order: &models.Order{ID: 42}}
		carrito := newCartStore(t)
		_, err := carrito.Add(models.Producto{ID: 1, Nombre: "taza", Precio: 1000}, 2)
		require.NoError(t, err)

		// A login whose profile fetch never completed has a user record
		// but no backend id.
		sess := session.Session{
			User:  &models.User{Username: "marta", Email: "marta@example.com"},
			Token: "tok1",
		}

		_, err = Process(context.Background(), orders, sess, carrito)

		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.Zero(t, orders.calls)
		assert.Equal(t, 2, carrito.Current().TotalItems())
	})

	t.Run("builds the request from cart lines without prices", func(t *testing.T) {
		orders := &fakeOrders{order: &models.Order{ID: 42, Estado: "pending"}}
		carrito := newCartStore(t)
		_, err := carrito.Add(models.Producto{ID: 1, Nombre: "taza", Precio: 1000}, 2)
		require.NoError(t, err)
		_, err = carrito.Add(models.Producto{ID: 2, Nombre: "plato", Precio: 500}, 1)
		require.NoError(t, err)

		order, err := Process(context.Background(), orders, authenticated(), carrito)
		require.NoError(t, err)

		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, int64(7), orders.created.IDUsuario)
		assert.Equal(t, []models.OrderItemCreate{
			{IDProducto: 1, Cantidad: 2},
			{IDProducto: 2, Cantidad: 1},
		}, orders.created.Items)
	})

	t.Run("success clears the cart", func(t *testing.T) {
		orders := &fakeOrders{order: &models.Order{ID: 42}}
		carrito := newCartStore(t)
		_, err := carrito.Add(models.Producto{ID: 1, Nombre: "taza", Precio: 1000}, 2)
		require.NoError(t, err)

		_, err = Process(context.Background(), orders, authenticated(), carrito)
		require.NoError(t, err)

		assert.Equal(t, 0, carrito.Current().TotalItems())
	})

	t.Run("failure leaves the cart untouched", func(t *testing.T) {
		orders := &fakeOrders{err: errors.New("backend down")}
		carrito := newCartStore(t)
		_, err := carrito.Add(models.Producto{ID: 1, Nombre: "taza", Precio: 1000}, 2)
		require.NoError(t, err)

		_, err = Process(context.Background(), orders, authenticated(), carrito)

		require.Error(t, err)
		assert.Equal(t, 2, carrito.Current().TotalItems())
	})
}
