package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/pkg/document"
	"github.com/dmelo/assistech-api/pkg/metrics"
	"github.com/dmelo/assistech-api/pkg/pix"
	"github.com/dmelo/assistech-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	saleService *SaleService
	shop        document.ShopInfo
	pixBuilder  *pix.Builder
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	saleService *SaleService,
	shop document.ShopInfo,
	pixBuilder *pix.Builder,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		saleService: saleService,
		shop:        shop,
		pixBuilder:  pixBuilder,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*document.Receipt, error) {
	receipt := &document.Receipt{
		SaleNo:        "TESTE-001",
		IssuedAt:      time.Now(),
		Cashier:       "Sistema",
		PaymentMethod: enum.PaymentCash.Label(),
		Items: []document.ReceiptItem{
			{Name: "Item de teste 1", Quantity: 1, UnitPriceCents: 1000, TotalCents: 1000},
			{Name: "Item de teste 2", Quantity: 2, UnitPriceCents: 500, TotalCents: 1000},
		},
		GrossCents: 2000,
		NetCents:   2000,
	}

	data := s.FormatReceipt(receipt, enum.PaymentCash)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleReceipt fetches a sale (with items) and prints its receipt. PIX
// sales get a scannable payment code at the bottom of the slip.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*document.Receipt, error) {
	sale, err := s.saleService.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.saleService.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	data := s.FormatReceipt(receipt, sale.PaymentMethod)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	metrics.ReceiptsPrinted.Inc()
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *document.Receipt, method enum.PaymentMethod) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.shop.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if s.shop.Address != "" {
		doc.Text(s.shop.Address)
	}
	if s.shop.Phone != "" {
		doc.Text(s.shop.Phone)
	}
	if s.shop.TaxID != "" {
		doc.TextF("CNPJ: %s", s.shop.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Sale info
	doc.KeyValue("Venda:", r.SaleNo).
		KeyValue("Data:", document.FormatDate(r.IssuedAt))

	if r.Cashier != "" {
		doc.KeyValue("Atendente:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Pagamento:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, document.FormatBRL(item.TotalCents))
		if item.Quantity > 1 {
			doc.TextF("  @ %s cada", document.FormatBRL(item.UnitPriceCents))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", document.FormatBRL(r.GrossCents))
	if r.DiscountCents > 0 {
		doc.KeyValue("Desconto:", "-"+document.FormatBRL(r.DiscountCents))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", document.FormatBRL(r.NetCents)).
		SetBold(false)

	doc.Separator('-')

	// PIX payment code
	if method == enum.PaymentPix && s.pixBuilder != nil {
		payload := s.pixBuilder.Payload(r.NetCents, r.SaleNo)
		doc.SetAlign(printer.AlignCenter).
			Text("Pague com PIX:").
			QRCode(payload, 4).
			SetAlign(printer.AlignLeft)
		doc.Separator('-')
	}

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Obrigado pela preferencia!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
