package entity

import "time"

// Severidades de alerta.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert es una alerta de stock generada al evaluar una proyección de consumo.
type Alert struct {
	ID             string
	ProductoCodigo string
	Message        string
	Severity       string
	Read           bool
	CreatedAt      time.Time
}
