// Package pdf implementa la generación del reporte PDF de órdenes de compra
// de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Descripción + código  │  Stock + unidades por caja  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Año | Cantidad | Recibido | Estado | Entrega   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cajas pedidas / recibidas / unidades equivalentes  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/mpilco/inventario-api/internal/application/report"
	"github.com/mpilco/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ report.OrdersPDFGenerator = (*MarotoOrdersReport)(nil)

// MarotoOrdersReport implementa report.OrdersPDFGenerator usando Maroto v2.
type MarotoOrdersReport struct{}

// NewMarotoOrdersReport construye el generador.
func NewMarotoOrdersReport() *MarotoOrdersReport { return &MarotoOrdersReport{} }

// GenerateOrdersReport genera el PDF y devuelve sus bytes.
func (g *MarotoOrdersReport) GenerateOrdersReport(
	_ context.Context,
	product *entity.Product,
	orders []*entity.PurchaseOrder,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de órdenes de compra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(product, orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: descripción + código (izq) y stock + unidades por caja (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(product.Descripcion, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+product.Codigo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ÓRDENES DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Stock: %d unidades", product.StockTotal), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New(fmt.Sprintf("%d unid/caja", product.UnidCaja), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de órdenes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mes", 2, align.Left),
		h("Año", 1, align.Center),
		h("Cantidad", 2, align.Right),
		h("Recibido", 2, align.Right),
		h("Estado", 3, align.Left),
		h("Entrega", 2, align.Right),
	)
}

// tableRows: una fila por orden.
func tableRows(orders []*entity.PurchaseOrder) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, po := range orders {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(po.Mes, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", po.Anio), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", po.Cantidad), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", po.Recibido), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(po.Estado, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(po.FechaEntrega.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// totalsRow: totales de cajas pedidas, recibidas y unidades equivalentes.
func totalsRow(product *entity.Product, orders []*entity.PurchaseOrder) core.Row {
	var pedidas, recibidas int
	for _, po := range orders {
		if po.Estado == entity.EstadoCancelado {
			continue
		}
		pedidas += po.Cantidad
		recibidas += po.Recibido
	}
	unidades := decimal.NewFromInt(int64(pedidas)).Mul(decimal.NewFromInt(int64(product.UnidCaja)))

	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total pedido: %d cajas (%s unidades)   |   Total recibido: %d cajas",
				pedidas, unidades.StringFixed(0), recibidas,
			), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
