package forecast

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mpilco/inventario-api/internal/application/dto"
)

// ErrEngine marca los fallos del motor externo (script ausente, timeout,
// salida inválida) para que el handler los distinga de los errores de dominio.
var ErrEngine = errors.New("fallo del motor de pronóstico")

// IsEngineError reporta si err proviene del motor de pronóstico.
func IsEngineError(err error) bool {
	return errors.Is(err, ErrEngine)
}

// Input es el contrato de entrada del motor de pronóstico: el producto con su
// histórico de consumos y las órdenes de compra abiertas en forma reducida.
type Input struct {
	Codigo     string                    `json:"codigo"`
	StockTotal int                       `json:"stock_total"`
	UnidCaja   int                       `json:"unid_caja"`
	Consumos   map[string]int            `json:"consumos"`
	Ordenes    []dto.OutstandingOrderDTO `json:"ordenes_abiertas"`
}

// Proyeccion es la porción de cada proyección mensual que el backend sí
// interpreta, para poder disparar alertas de stock. El resto del contenido
// viaja opaco en Result.Raw.
type Proyeccion struct {
	Mes             string          `json:"mes"`
	ConsumoEstimado decimal.Decimal `json:"consumo_estimado"`
	StockProyectado decimal.Decimal `json:"stock_actual_proyectado"`
	StockMinimo     decimal.Decimal `json:"stock_minimo_requerido"`
	CajasAPedir     int             `json:"cajas_a_pedir"`
	AlertaStock     bool            `json:"alerta_stock"`
}

// Result es la salida del motor: el JSON completo tal cual lo produjo más las
// proyecciones parseadas.
type Result struct {
	Raw          json.RawMessage
	Proyecciones []Proyeccion
}

// Engine es el puerto hacia el motor de pronóstico externo. El backend no
// interpreta la proyección más allá de los campos de Proyeccion.
type Engine interface {
	Predict(ctx context.Context, in Input) (*Result, error)
}
