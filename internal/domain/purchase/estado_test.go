package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/entity"
	"github.com/mpilco/inventario-api/internal/domain/purchase"
)

// ──────────────────────────────────────────────────────────────────────────────
// DeriveEstado: pendiente sii recibido=0 y cantidad>0; completado sii
// recibido=cantidad (incluido el caso ambos cero, igual que el hook original
// de guardado); parcial en el resto.
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveEstado(t *testing.T) {
	cases := []struct {
		name               string
		cantidad, recibido int
		want               string
	}{
		{"nada recibido queda pendiente", 10, 0, entity.EstadoPendiente},
		{"recibido parcial", 10, 5, entity.EstadoParcial},
		{"recibido una sola caja", 10, 1, entity.EstadoParcial},
		{"recibido casi todo", 10, 9, entity.EstadoParcial},
		{"recibido todo completa", 10, 10, entity.EstadoCompletado},
		{"orden de cero cajas cuenta como completada", 0, 0, entity.EstadoCompletado},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, purchase.DeriveEstado(tc.cantidad, tc.recibido))
		})
	}
}

// La derivación recorre todo el rango válido sin producir nunca cancelado:
// cancelado solo puede fijarse por la transición explícita.
func TestDeriveEstado_NuncaCancelado(t *testing.T) {
	for cantidad := 0; cantidad <= 50; cantidad++ {
		for recibido := 0; recibido <= cantidad; recibido++ {
			estado := purchase.DeriveEstado(cantidad, recibido)
			require.NotEqual(t, entity.EstadoCancelado, estado)
			switch {
			case recibido == cantidad:
				require.Equal(t, entity.EstadoCompletado, estado)
			case recibido == 0:
				require.Equal(t, entity.EstadoPendiente, estado)
			default:
				require.Equal(t, entity.EstadoParcial, estado)
			}
		}
	}
}

func TestValidateCantidades(t *testing.T) {
	assert.NoError(t, purchase.ValidateCantidades(0, 0))
	assert.NoError(t, purchase.ValidateCantidades(100000, 100000))
	assert.NoError(t, purchase.ValidateCantidades(10, 3))

	// Recibir más de lo pedido se rechaza, nunca se recorta.
	err := purchase.ValidateCantidades(10, 11)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	assert.Error(t, purchase.ValidateCantidades(-1, 0))
	assert.Error(t, purchase.ValidateCantidades(100001, 0))
	assert.Error(t, purchase.ValidateCantidades(10, -1))
}

func TestValidateAnio(t *testing.T) {
	assert.NoError(t, purchase.ValidateAnio(2020))
	assert.NoError(t, purchase.ValidateAnio(2026))

	err := purchase.ValidateAnio(2019)
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "anio", ve.Campo, "el error debe mencionar el campo anio")
}
