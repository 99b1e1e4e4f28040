package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	return NewRenderer(ShopInfo{
		Name:    "AssisTech Celulares",
		Address: "Rua das Flores, 123 - Centro",
		Phone:   "(11) 99999-0000",
		TaxID:   "12.345.678/0001-90",
	})
}

func sampleReceipt() *Receipt {
	return &Receipt{
		SaleNo:        "VND-20260314-0007",
		IssuedAt:      time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC),
		Cashier:       "Ana Lima",
		Customer:      "Carlos Pereira",
		PaymentMethod: "PIX",
		Items: []ReceiptItem{
			{Name: "USB cable", Quantity: 2, UnitPriceCents: 1500, TotalCents: 3000},
			{Name: "Screen film", Quantity: 1, UnitPriceCents: 2500, TotalCents: 2500},
		},
		GrossCents:    5500,
		DiscountCents: 500,
		NetCents:      5000,
	}
}

func TestReceiptText_Idempotent(t *testing.T) {
	r := testRenderer()
	rc := sampleReceipt()

	first := r.ReceiptText(rc)
	second := r.ReceiptText(rc)

	assert.Equal(t, first, second)
}

func TestReceiptText_Content(t *testing.T) {
	text := testRenderer().ReceiptText(sampleReceipt())

	assert.Contains(t, text, "AssisTech Celulares")
	assert.Contains(t, text, "VND-20260314-0007")
	assert.Contains(t, text, "14/03/2026 15:30")
	assert.Contains(t, text, "Carlos Pereira")
	assert.Contains(t, text, "USB cable x2")
	assert.Contains(t, text, "R$ 30,00")
	assert.Contains(t, text, "Desconto:")
	assert.Contains(t, text, "R$ 50,00")
	assert.Contains(t, text, "Obrigado pela preferencia!")
}

func TestReceiptText_MissingOptionalFieldsShowDash(t *testing.T) {
	rc := sampleReceipt()
	rc.Customer = ""

	text := testRenderer().ReceiptText(rc)

	assert.Contains(t, text, "Cliente:")
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Cliente:") {
			assert.True(t, strings.HasSuffix(line, "-"))
		}
	}
}

func TestReceiptText_DiscountLineOmittedWhenZero(t *testing.T) {
	rc := sampleReceipt()
	rc.DiscountCents = 0
	rc.NetCents = rc.GrossCents

	text := testRenderer().ReceiptText(rc)

	assert.NotContains(t, text, "Desconto:")
}

func TestReceiptHTML_Content(t *testing.T) {
	html, err := testRenderer().ReceiptHTML(sampleReceipt())

	require.NoError(t, err)
	assert.Contains(t, html, "<strong>VND-20260314-0007</strong>")
	assert.Contains(t, html, "Carlos Pereira")
	assert.Contains(t, html, "R$ 50,00")
	assert.Contains(t, html, "Desconto")
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{50, "R$ 0,50"},
		{5500, "R$ 55,00"},
		{123456, "R$ 1.234,56"},
		{123456789, "R$ 1.234.567,89"},
		{-1200, "-R$ 12,00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.cents))
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+55 (11) 99999-0000", "Venda VND-0001\nTOTAL: R$ 50,00")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999990000?text="))
	assert.NotContains(t, link, "\n")
	assert.Contains(t, link, "VND-0001")
}
