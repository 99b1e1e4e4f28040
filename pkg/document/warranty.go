package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// WarrantyText renders a plain-text warranty certificate.
func (r *Renderer) WarrantyText(w *Warranty) string {
	terms := w.Terms
	if strings.TrimSpace(terms) == "" {
		terms = DefaultWarrantyTerms
	}

	var sb strings.Builder
	sb.WriteString(center("CERTIFICADO DE GARANTIA") + "\n")
	sb.WriteString(center(r.shop.Name) + "\n")
	if r.shop.Address != "" {
		sb.WriteString(center(r.shop.Address) + "\n")
	}
	if r.shop.Phone != "" {
		sb.WriteString(center(r.shop.Phone) + "\n")
	}
	sb.WriteString(divider() + "\n")

	sb.WriteString(keyValue("Protocolo:", orDash(w.Protocol)) + "\n")
	sb.WriteString(keyValue("Emissao:", FormatDate(w.IssuedAt)) + "\n")
	sb.WriteString(keyValue("Cliente:", orDash(w.Customer)) + "\n")
	sb.WriteString(keyValue("Aparelho:", orDash(w.Device)) + "\n")
	sb.WriteString(divider() + "\n")

	sb.WriteString("Servico executado:\n")
	sb.WriteString(orDash(w.Service) + "\n")
	sb.WriteString(divider() + "\n")

	sb.WriteString(keyValue("Valor:", FormatBRL(w.AmountCents)) + "\n")
	sb.WriteString(keyValue("Garantia:", fmt.Sprintf("%d dias", w.PeriodDays)) + "\n")
	sb.WriteString(keyValue("Tecnico:", orDash(w.Technician)) + "\n")
	sb.WriteString(divider() + "\n")

	sb.WriteString(terms + "\n")
	sb.WriteString(divider() + "\n")

	sb.WriteString("\n\n" + center("_______________________________") + "\n")
	sb.WriteString(center(r.shop.Name) + "\n")
	sb.WriteString("\n\n" + center("_______________________________") + "\n")
	sb.WriteString(center(orDash(w.Customer)) + "\n")

	return sb.String()
}

type warrantyView struct {
	Shop       ShopInfo
	Protocol   string
	IssuedAt   string
	Customer   string
	Device     string
	Service    string
	Amount     string
	PeriodDays int
	Technician string
	Terms      string
}

var warrantyTmpl = template.Must(template.New("warranty").Parse(`<div class="warranty">
  <header>
    <h1>Certificado de Garantia</h1>
    <h2>{{.Shop.Name}}</h2>
    {{if .Shop.Address}}<p>{{.Shop.Address}}</p>{{end}}
    {{if .Shop.Phone}}<p>{{.Shop.Phone}}</p>{{end}}
    {{if .Shop.TaxID}}<p>CNPJ: {{.Shop.TaxID}}</p>{{end}}
  </header>
  <section class="ident">
    <p>Protocolo: <strong>{{.Protocol}}</strong> &middot; Emissao: {{.IssuedAt}}</p>
    <p>Cliente: {{.Customer}}</p>
    <p>Aparelho: {{.Device}}</p>
  </section>
  <section class="service">
    <h3>Servico executado</h3>
    <p>{{.Service}}</p>
  </section>
  <section class="coverage">
    <p>Valor: {{.Amount}} &middot; Garantia: {{.PeriodDays}} dias &middot; Tecnico: {{.Technician}}</p>
  </section>
  <section class="terms">
    <h3>Condicoes gerais</h3>
    <p>{{.Terms}}</p>
  </section>
  <section class="signatures">
    <div class="signature"><span></span><p>{{.Shop.Name}}</p></div>
    <div class="signature"><span></span><p>{{.Customer}}</p></div>
  </section>
</div>
`))

// WarrantyHTML renders the warranty certificate as an HTML fragment.
func (r *Renderer) WarrantyHTML(w *Warranty) (string, error) {
	terms := w.Terms
	if strings.TrimSpace(terms) == "" {
		terms = DefaultWarrantyTerms
	}

	view := warrantyView{
		Shop:       r.shop,
		Protocol:   orDash(w.Protocol),
		IssuedAt:   FormatDate(w.IssuedAt),
		Customer:   orDash(w.Customer),
		Device:     orDash(w.Device),
		Service:    orDash(w.Service),
		Amount:     FormatBRL(w.AmountCents),
		PeriodDays: w.PeriodDays,
		Technician: orDash(w.Technician),
		Terms:      terms,
	}

	var buf bytes.Buffer
	if err := warrantyTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("document: failed to render warranty: %w", err)
	}
	return buf.String(), nil
}
