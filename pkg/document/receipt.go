package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// textWidth is the column width of plain-text receipts.
const textWidth = 40

// ReceiptText renders a fixed-width plain-text receipt suitable for copying
// into a message or printing on any monospace surface.
func (r *Renderer) ReceiptText(rc *Receipt) string {
	var sb strings.Builder

	sb.WriteString(center(r.shop.Name) + "\n")
	if r.shop.Address != "" {
		sb.WriteString(center(r.shop.Address) + "\n")
	}
	if r.shop.Phone != "" {
		sb.WriteString(center(r.shop.Phone) + "\n")
	}
	if r.shop.TaxID != "" {
		sb.WriteString(center("CNPJ: "+r.shop.TaxID) + "\n")
	}
	sb.WriteString(divider() + "\n")

	sb.WriteString(keyValue("Venda:", orDash(rc.SaleNo)) + "\n")
	sb.WriteString(keyValue("Data:", FormatDate(rc.IssuedAt)) + "\n")
	sb.WriteString(keyValue("Cliente:", orDash(rc.Customer)) + "\n")
	sb.WriteString(keyValue("Pagamento:", orDash(rc.PaymentMethod)) + "\n")
	sb.WriteString(divider() + "\n")

	for _, item := range rc.Items {
		left := fmt.Sprintf("%s x%d", item.Name, item.Quantity)
		sb.WriteString(keyValue(left, FormatBRL(item.TotalCents)) + "\n")
	}
	sb.WriteString(divider() + "\n")

	sb.WriteString(keyValue("Subtotal:", FormatBRL(rc.GrossCents)) + "\n")
	if rc.DiscountCents > 0 {
		sb.WriteString(keyValue("Desconto:", FormatBRL(rc.DiscountCents)) + "\n")
	}
	sb.WriteString(keyValue("TOTAL:", FormatBRL(rc.NetCents)) + "\n")
	sb.WriteString(divider() + "\n")

	if rc.Notes != "" {
		sb.WriteString(rc.Notes + "\n")
		sb.WriteString(divider() + "\n")
	}
	sb.WriteString(center("Obrigado pela preferencia!") + "\n")

	return sb.String()
}

func divider() string {
	return strings.Repeat("-", textWidth)
}

func center(s string) string {
	if len(s) >= textWidth {
		return s
	}
	pad := (textWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func keyValue(key, value string) string {
	spaces := textWidth - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	return key + strings.Repeat(" ", spaces) + value
}

// receiptView is the template model with money already formatted.
type receiptView struct {
	Shop          ShopInfo
	SaleNo        string
	IssuedAt      string
	Customer      string
	PaymentMethod string
	Notes         string
	Items         []receiptItemView
	Gross         string
	Discount      string
	HasDiscount   bool
	Net           string
}

type receiptItemView struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<div class="receipt">
  <header>
    <h1>{{.Shop.Name}}</h1>
    {{if .Shop.Address}}<p>{{.Shop.Address}}</p>{{end}}
    {{if .Shop.Phone}}<p>{{.Shop.Phone}}</p>{{end}}
    {{if .Shop.TaxID}}<p>CNPJ: {{.Shop.TaxID}}</p>{{end}}
  </header>
  <p>Venda <strong>{{.SaleNo}}</strong> em {{.IssuedAt}}</p>
  <p>Cliente: {{.Customer}} &middot; Pagamento: {{.PaymentMethod}}</p>
  <table>
    <thead>
      <tr><th>Item</th><th>Qtd</th><th>Unit.</th><th>Total</th></tr>
    </thead>
    <tbody>
      {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td><td>{{.Total}}</td></tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr><td colspan="3">Subtotal</td><td>{{.Gross}}</td></tr>
      {{if .HasDiscount}}<tr><td colspan="3">Desconto</td><td>{{.Discount}}</td></tr>
      {{end}}<tr class="total"><td colspan="3">TOTAL</td><td>{{.Net}}</td></tr>
    </tfoot>
  </table>
  {{if .Notes}}<p class="notes">{{.Notes}}</p>{{end}}
  <footer>Obrigado pela preferencia!</footer>
</div>
`))

// ReceiptHTML renders the receipt as an HTML fragment for the browser print
// dialog or PDF conversion.
func (r *Renderer) ReceiptHTML(rc *Receipt) (string, error) {
	view := receiptView{
		Shop:          r.shop,
		SaleNo:        orDash(rc.SaleNo),
		IssuedAt:      FormatDate(rc.IssuedAt),
		Customer:      orDash(rc.Customer),
		PaymentMethod: orDash(rc.PaymentMethod),
		Notes:         rc.Notes,
		Gross:         FormatBRL(rc.GrossCents),
		Discount:      FormatBRL(rc.DiscountCents),
		HasDiscount:   rc.DiscountCents > 0,
		Net:           FormatBRL(rc.NetCents),
	}
	for _, item := range rc.Items {
		view.Items = append(view.Items, receiptItemView{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: FormatBRL(item.UnitPriceCents),
			Total:     FormatBRL(item.TotalCents),
		})
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("document: failed to render receipt: %w", err)
	}
	return buf.String(), nil
}
