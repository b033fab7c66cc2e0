package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpilco/inventario-api/internal/domain"
	"github.com/mpilco/inventario-api/internal/domain/purchase"
)

func TestNormalizeMes_Canonicos(t *testing.T) {
	for _, mes := range purchase.Meses() {
		got, err := purchase.NormalizeMes(mes)
		require.NoError(t, err)
		assert.Equal(t, mes, got)
	}
}

func TestNormalizeMes_Normalizacion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ene", "ENE"},
		{"Ene", "ENE"},
		{" feb ", "FEB"},
		{"MARZO", "MAR"},   // se trunca a 3 letras
		{"agosto", "AGO"},
		{"dic", "DIC"},
		{"dec", "DIC"},     // alias heredado de planillas en inglés
		{"DEC", "DIC"},
		{"December", "DIC"},
	}
	for _, tc := range cases {
		got, err := purchase.NormalizeMes(tc.in)
		require.NoError(t, err, "entrada %q", tc.in)
		assert.Equal(t, tc.want, got, "entrada %q", tc.in)
	}
}

func TestNormalizeMes_Invalidos(t *testing.T) {
	for _, in := range []string{"", "XYZ", "13", "JANUARY", "zz"} {
		_, err := purchase.NormalizeMes(in)
		require.Error(t, err, "entrada %q", in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "mes", ve.Campo)
	}
}
