package entity

import "time"

// Product representa un producto del catálogo. Codigo es la clave natural que
// referencian las órdenes de compra. Consumos guarda el histórico mensual de
// consumo como mapa "MES AAAA" → unidades (ej. "ENE 2024": 100), persistido
// en JSONB.
type Product struct {
	Codigo      string
	Descripcion string
	UnidCaja    int // unidades por caja, usado para convertir cajas pedidas a unidades
	StockTotal  int
	Consumos    map[string]int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
