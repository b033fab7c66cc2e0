package dto

import "time"

// CreateProductRequest entrada para crear un producto. Consumos es el
// histórico mensual: mapa "MES AAAA" → unidades consumidas.
type CreateProductRequest struct {
	Codigo      string         `json:"codigo" validate:"required,min=1,max=50"`
	Descripcion string         `json:"descripcion" validate:"required,min=1,max=200"`
	UnidCaja    int            `json:"unid_caja" validate:"required,min=1"`
	StockTotal  int            `json:"stock_total" validate:"min=0"`
	Consumos    map[string]int `json:"consumos" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto. El código es
// inmutable.
type UpdateProductRequest struct {
	Descripcion *string        `json:"descripcion" validate:"omitempty,min=1,max=200"`
	UnidCaja    *int           `json:"unid_caja" validate:"omitempty,min=1"`
	StockTotal  *int           `json:"stock_total" validate:"omitempty,min=0"`
	Consumos    map[string]int `json:"consumos"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Codigo      string         `json:"codigo"`
	Descripcion string         `json:"descripcion"`
	UnidCaja    int            `json:"unid_caja"`
	StockTotal  int            `json:"stock_total"`
	Consumos    map[string]int `json:"consumos"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
