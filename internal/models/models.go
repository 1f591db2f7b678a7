// Package models holds the wire types exchanged with the tienda backend.
// Field names and JSON tags mirror the REST contract verbatim; the backend
// is the source of truth for all of them.
package models

// Producto represents a catalog product as returned by /api/v1/productos/.
type Producto struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Categoria   string  `json:"categoria"`
	Image       *string `json:"image"`
	IsActive    bool    `json:"is_active"`
}

// ProductoCreate is the payload for creating a product.
type ProductoCreate struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Categoria   string  `json:"categoria"`
	Image       *string `json:"image,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductoUpdate is a partial update; nil fields are left untouched by the
// backend.
type ProductoUpdate struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Descripcion *string  `json:"descripcion,omitempty"`
	Precio      *float64 `json:"precio,omitempty"`
	Categoria   *string  `json:"categoria,omitempty"`
	Image       *string  `json:"image,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// OrderItem is a line of an existing order, with the unit price the backend
// resolved at creation time.
type OrderItem struct {
	ID             int64   `json:"id"`
	IDPedido       int64   `json:"id_pedido"`
	IDProducto     int64   `json:"id_producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// OrderItemCreate is a line of an order-creation request. Unit prices are
// intentionally absent: the backend resolves them authoritatively.
type OrderItemCreate struct {
	IDProducto int64 `json:"id_producto"`
	Cantidad   int   `json:"cantidad"`
}

// Order represents a pedido as returned by /api/v1/pedidos/.
type Order struct {
	ID            int64       `json:"id"`
	IDUsuario     int64       `json:"id_usuario"`
	MontoTotal    float64     `json:"monto_total"`
	Estado        string      `json:"estado"`
	FechaCreacion string      `json:"fecha_creacion"`
	Activo        bool        `json:"activo"`
	Items         []OrderItem `json:"items"`
}

// OrderCreate is the payload for creating an order.
type OrderCreate struct {
	IDUsuario int64             `json:"id_usuario"`
	Estado    *string           `json:"estado,omitempty"`
	Activo    *bool             `json:"activo,omitempty"`
	Items     []OrderItemCreate `json:"items"`
}

// OrderUpdate is a partial update of an order.
type OrderUpdate struct {
	IDUsuario *int64  `json:"id_usuario,omitempty"`
	Estado    *string `json:"estado,omitempty"`
	Activo    *bool   `json:"activo,omitempty"`
}

// Payment represents a pago as returned by /api/v1/pagos/.
type Payment struct {
	ID                 int64   `json:"id"`
	IDUsuario          int64   `json:"id_usuario"`
	IDPedido           int64   `json:"id_pedido"`
	Monto              float64 `json:"monto"`
	Moneda             string  `json:"moneda"`
	Estado             string  `json:"estado"`
	MetodoPago         *string `json:"metodo_pago"`
	FechaPago          *string `json:"fecha_pago"`
	FechaCreacion      string  `json:"fecha_creacion"`
	FechaActualizacion *string `json:"fecha_actualizacion"`
	Activo             bool    `json:"activo"`
}

// PaymentCreate is the payload for creating a payment.
type PaymentCreate struct {
	IDUsuario  int64   `json:"id_usuario"`
	IDPedido   int64   `json:"id_pedido"`
	Monto      float64 `json:"monto"`
	Moneda     *string `json:"moneda,omitempty"`
	Estado     *string `json:"estado,omitempty"`
	MetodoPago *string `json:"metodo_pago,omitempty"`
	Activo     *bool   `json:"activo,omitempty"`
}

// PaymentUpdate is a partial update of a payment. Settling a pending payment
// sends monto plus metodo_pago.
type PaymentUpdate struct {
	IDUsuario  *int64   `json:"id_usuario,omitempty"`
	IDPedido   *int64   `json:"id_pedido,omitempty"`
	Monto      *float64 `json:"monto,omitempty"`
	Moneda     *string  `json:"moneda,omitempty"`
	Estado     *string  `json:"estado,omitempty"`
	MetodoPago *string  `json:"metodo_pago,omitempty"`
	Activo     *bool    `json:"activo,omitempty"`
}

// UserRegister is the payload for /api/v1/auth/register.
type UserRegister struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// User is the authenticated profile returned by /api/v1/auth/me.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
