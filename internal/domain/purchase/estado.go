package purchase

import (
	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// Límites de negocio para una orden de compra.
const (
	AnioMinimo     = 2020
	CantidadMaxima = 100000
)

// DeriveEstado calcula el estado de una orden a partir de las cantidades
// pedida y recibida. Es una función pura; el caller debe haber validado antes
// 0 <= recibido <= cantidad (ver ValidateCantidades), aquí no se recorta ni
// corrige. Cancelado nunca se deriva: es una transición explícita.
func DeriveEstado(cantidad, recibido int) string {
	switch {
	case recibido == cantidad:
		return entity.EstadoCompletado
	case recibido == 0:
		return entity.EstadoPendiente
	default:
		return entity.EstadoParcial
	}
}

// ValidateAnio valida el año de la orden.
func ValidateAnio(anio int) error {
	if anio < AnioMinimo {
		return domain.NewValidationError("anio", "debe ser mayor o igual a 2020")
	}
	return nil
}

// ValidateCantidades valida las cantidades pedida y recibida. Recibir más de
// lo pedido es un error de validación, nunca un recorte silencioso.
func ValidateCantidades(cantidad, recibido int) error {
	if cantidad < 0 || cantidad > CantidadMaxima {
		return domain.NewValidationError("cantidad", "debe estar entre 0 y 100000")
	}
	if recibido < 0 {
		return domain.NewValidationError("recibido", "no puede ser negativo")
	}
	if recibido > cantidad {
		return domain.NewValidationError("recibido", "no puede superar la cantidad pedida")
	}
	return nil
}
