package delivery

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
)

const documentContentType = "text/plain; charset=utf-8"

// documentTemplate lays out the inventory as a plain-text table, one
// block per product. Continuation lines for multi-price products are
// indented so they read as part of the same row.
var documentTemplate = template.Must(template.New("inventory").Parse(
	`INVENTARIO - {{.CompanyName}} (NIT {{.NIT}})
Dirección: {{.Address}}
Teléfono: {{.Phone}}
Generado: {{.GeneratedAt}}

CÓDIGO          NOMBRE                          CATEGORÍAS
{{range .Rows}}{{printf "%-15s" .Code}} {{printf "%-31s" .Name}} {{.Categories}}
  Descripción: {{.Description}}
  Precios:     {{.Prices}}
{{end}}Total de productos: {{len .Rows}}
`))

type documentRow struct {
	Code        string
	Name        string
	Description string
	Categories  string
	Prices      string
}

type documentData struct {
	CompanyName string
	NIT         string
	Address     string
	Phone       string
	GeneratedAt string
	Rows        []documentRow
}

// renderDocument produces the inventory document for a company. Empty
// fields render as "-" so every row keeps the same shape.
func renderDocument(company *catalog.Company, products []catalog.Product, now time.Time) ([]byte, error) {
	data := documentData{
		CompanyName: company.Name,
		NIT:         company.NIT,
		Address:     orDash(company.Address),
		Phone:       orDash(company.Phone),
		GeneratedAt: now.Format("2006-01-02 15:04:05 MST"),
		Rows:        make([]documentRow, 0, len(products)),
	}

	for _, p := range products {
		data.Rows = append(data.Rows, documentRow{
			Code:        p.Code,
			Name:        p.Name,
			Description: orDash(p.Description),
			Categories:  joinCategories(p.Categories),
			Prices:      joinPrices(p.Prices),
		})
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func joinCategories(categories []catalog.Category) string {
	if len(categories) == 0 {
		return "-"
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func joinPrices(prices []catalog.Price) string {
	if len(prices) == 0 {
		return "-"
	}
	lines := make([]string, len(prices))
	for i, p := range prices {
		lines[i] = p.Currency + " " + p.Amount.String()
	}
	// Continuation lines align under the first price.
	return strings.Join(lines, "\n               ")
}
