package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	// ErrConflict señala una violación de unicidad que sobrevivió al upsert
	// atómico sobre (producto, mes, año). No debería ocurrir: si aparece es un
	// defecto de coordinación y se loguea como error interno, no como error
	// del usuario.
	ErrConflict = errors.New("conflicto de unicidad en la orden de compra")
	// ErrOrdenCancelada: una orden cancelada es terminal y no admite nuevas
	// actualizaciones de cantidades.
	ErrOrdenCancelada = errors.New("la orden de compra está cancelada")
)

// ValidationError indica una entrada rechazada por las reglas de la orden de
// compra. Identifica el campo ofensivo para que el caller pueda corregirlo.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación de %s: %s", e.Campo, e.Mensaje)
}

// NewValidationError construye un error de validación para un campo.
func NewValidationError(campo, mensaje string) *ValidationError {
	return &ValidationError{Campo: campo, Mensaje: mensaje}
}

// IsValidation indica si err (o alguno de su cadena) es un error de validación.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
