package entity

import (
	"fmt"
	"time"
)

// Estados del ciclo de vida de una orden de compra. Pendiente, parcial y
// completado se derivan de las cantidades; cancelado es una transición
// explícita y terminal.
const (
	EstadoPendiente  = "pendiente"
	EstadoParcial    = "parcial"
	EstadoCompletado = "completado"
	EstadoCancelado  = "cancelado"
)

// PurchaseOrder representa una orden de compra mensual de un producto.
// La clave natural es (ProductoCodigo, Mes, Anio): existe a lo sumo una orden
// no eliminada por producto y mes. DeletedAt implementa borrado lógico: el
// registro se conserva pero queda fuera de las consultas por defecto.
type PurchaseOrder struct {
	ProductoCodigo string
	Mes            string // token canónico de 3 letras: ENE..DIC
	Anio           int
	Cantidad       int // cajas pedidas
	Recibido       int // cajas recibidas, nunca mayor que Cantidad
	Estado         string
	FechaEntrega   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// MesAnio devuelve la etiqueta "MES-AAAA" usada por el motor de pronóstico.
func (po *PurchaseOrder) MesAnio() string {
	return fmt.Sprintf("%s-%d", po.Mes, po.Anio)
}

// Pendiente indica si la orden sigue abierta (pendiente o parcial).
func (po *PurchaseOrder) Pendiente() bool {
	return po.Estado == EstadoPendiente || po.Estado == EstadoParcial
}
