package document

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShopInfo identifies the store on printed documents. Passed in at
// construction time so rendering never reads ambient globals.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

// ReceiptItem is one line on a receipt.
type ReceiptItem struct {
	Name           string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// Receipt is a value object composed from a finalized sale at render time.
// IssuedAt is caller-supplied so rendering stays deterministic.
type Receipt struct {
	SaleNo        string
	IssuedAt      time.Time
	Cashier       string
	Customer      string
	PaymentMethod string
	Notes         string
	Items         []ReceiptItem
	GrossCents    int64
	DiscountCents int64
	NetCents      int64
}

// Warranty is a value object for a warranty certificate.
type Warranty struct {
	Protocol    string
	IssuedAt    time.Time
	Customer    string
	Device      string
	Service     string
	AmountCents int64
	PeriodDays  int
	Technician  string
	Terms       string
}

// DefaultWarrantyTerms is printed when a warranty record carries no custom terms.
const DefaultWarrantyTerms = "A garantia cobre exclusivamente o servico descrito e as pecas " +
	"substituidas. Nao cobre danos por mau uso, quedas, contato com liquidos ou " +
	"intervencao de terceiros. A apresentacao deste documento e obrigatoria para " +
	"acionamento da garantia."

// Renderer renders receipts and warranty certificates for one shop.
type Renderer struct {
	shop ShopInfo
}

// NewRenderer creates a renderer bound to the given shop identity.
func NewRenderer(shop ShopInfo) *Renderer {
	return &Renderer{shop: shop}
}

// FormatBRL formats an amount in cents as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(cents int64) string {
	s := decimal.New(cents, -2).StringFixed(2) // "1234.56", "-12.00"
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate formats a timestamp the way documents display it.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// orDash substitutes "-" for missing optional fields.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// WhatsAppLink builds a messaging deep link with pre-filled text.
// Non-digit characters are stripped from the phone number.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}
