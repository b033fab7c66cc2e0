package dto

import "time"

// SubmitOrderRequest entrada para crear o actualizar la orden de compra de un
// mes. Mes admite cualquier capitalización y el alias heredado DEC; se
// normaliza antes de validar. Recibido es opcional y por defecto 0. El estado
// no se acepta del caller: siempre se deriva en el servidor.
type SubmitOrderRequest struct {
	Mes          string `json:"mes" validate:"required"`
	Anio         int    `json:"anio" validate:"required"`
	Cantidad     int    `json:"cantidad"`
	FechaEntrega string `json:"fecha_entrega" validate:"required"` // AAAA-MM-DD
	Recibido     *int   `json:"recibido"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ProductoCodigo string    `json:"producto_codigo"`
	Mes            string    `json:"mes"`
	Anio           int       `json:"anio"`
	MesAnio        string    `json:"mes_anio"`
	Cantidad       int       `json:"cantidad"`
	Recibido       int       `json:"recibido"`
	Estado         string    `json:"estado"`
	FechaEntrega   time.Time `json:"fecha_entrega"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PurchaseOrderListResponse lista de órdenes de un producto.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
}

// OutstandingOrderDTO es la forma reducida que consume el motor de pronóstico:
// solo mes, año, cantidades y estado de las órdenes abiertas.
type OutstandingOrderDTO struct {
	Mes      string `json:"mes"`
	Anio     int    `json:"anio"`
	Cantidad int    `json:"cantidad"`
	Recibido int    `json:"recibido"`
	Estado   string `json:"estado"`
}
