package handler

import (
	"github.com/dmelo/assistech-api/internal/application/service"
	"github.com/dmelo/assistech-api/internal/presentation/http/dto/response"
	"github.com/dmelo/assistech-api/pkg/pix"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles instant payment (PIX) HTTP requests
type PaymentHandler struct {
	builder     *pix.Builder
	qrEncoder   pix.ImageEncoder
	saleService *service.SaleService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(builder *pix.Builder, qrEncoder pix.ImageEncoder, saleService *service.SaleService) *PaymentHandler {
	return &PaymentHandler{
		builder:     builder,
		qrEncoder:   qrEncoder,
		saleService: saleService,
	}
}

// BuildPayload handles building a PIX payload for an arbitrary amount
func (h *PaymentHandler) BuildPayload(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
		Label  string  `json:"label"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payload := h.builder.Payload(utils.ToCents(req.Amount), req.Label)

	qrDataURI, err := h.qrEncoder.DataURI(payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment payload built successfully", gin.H{
		"payload": payload,
		"qr_code": qrDataURI,
	})
}

// SalePayload handles building a PIX payload for an existing sale
func (h *PaymentHandler) SalePayload(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := h.builder.Payload(sale.NetTotal, sale.SaleNo)

	qrDataURI, err := h.qrEncoder.DataURI(payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment payload built successfully", gin.H{
		"sale_no": sale.SaleNo,
		"payload": payload,
		"qr_code": qrDataURI,
	})
}
