package purchase

import (
	"strings"

	"github.com/mpilco/inventario-api/internal/domain"
)

// Meses devuelve los 12 tokens canónicos de mes en orden calendario.
func Meses() []string {
	return []string{"ENE", "FEB", "MAR", "ABR", "MAY", "JUN", "JUL", "AGO", "SEP", "OCT", "NOV", "DIC"}
}

var mesesValidos = map[string]struct{}{
	"ENE": {}, "FEB": {}, "MAR": {}, "ABR": {}, "MAY": {}, "JUN": {},
	"JUL": {}, "AGO": {}, "SEP": {}, "OCT": {}, "NOV": {}, "DIC": {},
}

// aliasMes mapea tokens heredados a su forma canónica. Los datos históricos
// importados de planillas en inglés traen "DEC" para diciembre.
var aliasMes = map[string]string{
	"DEC": "DIC",
}

// NormalizeMes lleva un mes arbitrario a su token canónico de 3 letras:
// mayúsculas, truncado a 3 runas y resuelto contra la tabla de alias.
// Devuelve ValidationError si el resultado no es uno de los 12 tokens.
func NormalizeMes(mes string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(mes))
	if len([]rune(m)) > 3 {
		m = string([]rune(m)[:3])
	}
	if canon, ok := aliasMes[m]; ok {
		m = canon
	}
	if _, ok := mesesValidos[m]; !ok {
		return "", domain.NewValidationError("mes", "debe ser uno de ENE, FEB, MAR, ABR, MAY, JUN, JUL, AGO, SEP, OCT, NOV, DIC")
	}
	return m, nil
}
