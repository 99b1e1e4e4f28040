package enum

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentPix   PaymentMethod = "pix"
	PaymentOther PaymentMethod = "other"
)

// IsValid reports whether m is one of the recognized payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix, PaymentOther:
		return true
	}
	return false
}

// CoercePaymentMethod maps an arbitrary input to a recognized payment
// method, falling back to "other" for anything unknown.
func CoercePaymentMethod(s string) PaymentMethod {
	m := PaymentMethod(s)
	if m.IsValid() {
		return m
	}
	return PaymentOther
}

// Label returns the customer-facing name used on documents.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentCard:
		return "Cartao"
	case PaymentPix:
		return "PIX"
	default:
		return "Outro"
	}
}
