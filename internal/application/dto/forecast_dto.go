package dto

import "encoding/json"

// ForecastResponse salida del pronóstico de un producto. Prediction es la
// proyección tal cual la devuelve el motor externo; el backend no la
// interpreta más allá de los campos de alerta.
type ForecastResponse struct {
	Product    ProductResponse `json:"product"`
	Prediction json.RawMessage `json:"prediction"`
}
