package pix

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field widths of the copy-and-paste payload. The payload uses EMV-style
// field identifiers but fixed-width values, which is what the store's QR
// bridge and the mobile banking apps it was tested against accept.
const (
	amountWidth = 6
	nameWidth   = 25
	cityWidth   = 15
	labelWidth  = 25
)

// Config holds the payee identity embedded in every payload.
type Config struct {
	Key          string // PIX key: CPF/CNPJ, phone, email or random key
	MerchantName string
	MerchantCity string
}

// Builder produces PIX copy-and-paste payloads for a fixed payee.
type Builder struct {
	cfg Config
}

// NewBuilder creates a payload builder for the given payee configuration.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Payload builds the instant-payment text payload for the given amount and
// reference label. Deterministic: same input, same string.
func (b *Builder) Payload(amountCents int64, label string) string {
	amount := decimal.New(amountCents, -2).StringFixed(2)
	if len(amount) < amountWidth {
		amount = strings.Repeat("0", amountWidth-len(amount)) + amount
	}

	var sb strings.Builder
	sb.WriteString("000201")                     // payload format indicator
	sb.WriteString("0014br.gov.bcb.pix")         // arrangement GUI
	sb.WriteString("01" + b.cfg.Key)             // payee key
	sb.WriteString("52040000")                   // merchant category code
	sb.WriteString("5303986")                    // currency: BRL
	sb.WriteString("54" + amount)                // transaction amount
	sb.WriteString("5802BR")                     // country
	sb.WriteString("59" + fixedField(b.cfg.MerchantName, nameWidth))
	sb.WriteString("60" + fixedField(b.cfg.MerchantCity, cityWidth))
	sb.WriteString("62" + fixedField(label, labelWidth))
	sb.WriteString("6304") // CRC field header, CRC covers everything before it

	payload := sb.String()
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

// fixedField upper-cases s and pads or truncates it to width characters.
func fixedField(s string, width int) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// crc16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over s.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
