package repository

import (
	"context"

	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para las órdenes
// de compra, con la clave natural (producto, mes, año).
//
// Todas las lecturas excluyen por defecto los registros con borrado lógico.
type PurchaseOrderRepository interface {
	// Upsert inserta o actualiza atómicamente la orden identificada por su
	// clave natural. Devuelve created=true si el registro no existía. La clave
	// natural es inmutable: en una actualización solo cambian cantidad, fecha
	// de entrega, recibido y estado. Dos escritores concurrentes sobre la
	// misma clave serializan en la base: el segundo observa y actualiza el
	// registro del primero.
	Upsert(ctx context.Context, po *entity.PurchaseOrder) (created bool, err error)

	// FindByKey devuelve la orden no eliminada para la clave, o nil si no hay.
	FindByKey(ctx context.Context, codigo, mes string, anio int) (*entity.PurchaseOrder, error)

	// ListByProduct lista las órdenes de un producto, opcionalmente filtradas
	// por estado. Sin estados devuelve todas las no eliminadas.
	ListByProduct(ctx context.Context, codigo string, estados ...string) ([]*entity.PurchaseOrder, error)

	// UpdateEstado fija el estado de una orden (transición explícita, ej.
	// cancelado). Devuelve la orden actualizada o nil si no existe.
	UpdateEstado(ctx context.Context, codigo, mes string, anio int, estado string) (*entity.PurchaseOrder, error)

	// SoftDelete marca la orden como eliminada conservando el registro.
	// Devuelve false si la clave no existe.
	SoftDelete(ctx context.Context, codigo, mes string, anio int) (bool, error)
}
