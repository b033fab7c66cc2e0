package dto

import "time"

// AlertResponse salida de una alerta de stock.
type AlertResponse struct {
	ID             string    `json:"id"`
	ProductoCodigo string    `json:"producto_codigo"`
	Message        string    `json:"message"`
	Severity       string    `json:"severity"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
