// Package pdf genera la exportación PDF del catálogo (superficie admin).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de exportación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada categoría:                                        │
//	│    CATEGORÍA                                                │
//	│    TABLA: Título | Precio | Rating | Reseñas                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/storefront-api/internal/application/usecase"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	storeName string
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator(storeName string) *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{storeName: storeName}
}

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
// Espera los productos ya ordenados por categoría y título.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	currentCategory := ""
	for _, p := range products {
		if p.Category != currentCategory {
			currentCategory = p.Category
			m.AddRows(categoryRow(currentCategory))
			m.AddRows(tableHeaderRow())
		}
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y fecha de exportación (der).
func headerRow(storeName string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de productos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Exportado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// categoryRow: encabezado de sección por categoría.
func categoryRow(category string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(category, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 7, align.Left),
		h("Precio", 2, align.Right),
		h("Rating", 1, align.Center),
		h("Reseñas", 2, align.Right),
	)
}

// productRow: una fila por producto.
func productRow(p *entity.Product) core.Row {
	rating := "—"
	if p.RatingRate != nil {
		rating = p.RatingRate.StringFixed(1)
	}
	count := "—"
	if p.RatingCount != nil {
		count = fmt.Sprintf("%d", *p.RatingCount)
	}
	return row.New(6).Add(
		col.New(7).Add(text.New(
			p.Title,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"$"+p.Price.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			rating,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			count,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// footerRow: total de productos exportados.
func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d productos", total), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
		),
	)
}
