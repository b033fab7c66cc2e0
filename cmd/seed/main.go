// seed genera un script SQL para poblar el catálogo de productos a partir de
// un CSV exportado desde la planilla de inventario (separado por ';',
// codificado en Windows-1252, con una columna de consumo por mes).
//
// Formato esperado: codigo;descripcion;unid_caja;stock_total;MES AAAA;MES AAAA;...
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/005_seed_products.sql
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type producto struct {
	codigo      string
	descripcion string
	unidCaja    int
	stockTotal  int
	consumos    map[string]int
}

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports de la planilla vienen en Windows-1252, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	// La cabecera define las columnas de consumo ("ENE 2024", "FEB 2024", ...).
	header := rows[0]
	if len(header) < 4 {
		fmt.Fprintln(os.Stderr, "Cabecera incompleta: se esperan al menos codigo;descripcion;unid_caja;stock_total")
		os.Exit(1)
	}
	meses := make([]string, 0, len(header)-4)
	for _, h := range header[4:] {
		meses = append(meses, strings.ToUpper(strings.TrimSpace(h)))
	}

	var productos []producto
	for i, row := range rows[1:] {
		if len(row) < 4 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		unidCaja, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: unid_caja inválido %q\n", i+2, row[2])
			os.Exit(1)
		}
		stockTotal, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: stock_total inválido %q\n", i+2, row[3])
			os.Exit(1)
		}
		p := producto{
			codigo:      strings.TrimSpace(row[0]),
			descripcion: strings.TrimSpace(row[1]),
			unidCaja:    unidCaja,
			stockTotal:  stockTotal,
			consumos:    make(map[string]int, len(meses)),
		}
		for j, mes := range meses {
			col := 4 + j
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Fila %d: consumo inválido %q en %s\n", i+2, row[col], mes)
				os.Exit(1)
			}
			p.consumos[mes] = n
		}
		productos = append(productos, p)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "005_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos con histórico de consumos\n")
	out.WriteString("-- Generado desde productos.csv\n\n")
	for _, p := range productos {
		consumosJSON, err := json.Marshal(p.consumos)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Serializar consumos de %s: %v\n", p.codigo, err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "INSERT INTO products (codigo, descripcion, unid_caja, stock_total, consumos)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', %d, %d, '%s')\n",
			escapeSQL(p.codigo), escapeSQL(p.descripcion), p.unidCaja, p.stockTotal, escapeSQL(string(consumosJSON)))
		out.WriteString("ON CONFLICT (codigo) DO UPDATE SET descripcion = EXCLUDED.descripcion, unid_caja = EXCLUDED.unid_caja, stock_total = EXCLUDED.stock_total, consumos = EXCLUDED.consumos;\n")
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(productos))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
