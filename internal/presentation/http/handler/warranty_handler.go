package handler

import (
	"strconv"

	"github.com/dmelo/assistech-api/internal/application/service"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/dmelo/assistech-api/internal/presentation/http/dto/response"
	"github.com/dmelo/assistech-api/pkg/document"
	"github.com/dmelo/assistech-api/pkg/email"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WarrantyHandler handles warranty certificate HTTP requests
type WarrantyHandler struct {
	warrantyService *service.WarrantyService
	renderer        *document.Renderer
	emailService    *email.EmailService
}

// NewWarrantyHandler creates a new warranty handler
func NewWarrantyHandler(warrantyService *service.WarrantyService, renderer *document.Renderer, emailService *email.EmailService) *WarrantyHandler {
	return &WarrantyHandler{warrantyService: warrantyService, renderer: renderer, emailService: emailService}
}

// Issue handles issuing a warranty certificate for a finished repair
func (h *WarrantyHandler) Issue(c *gin.Context) {
	var req struct {
		ServiceOrderID uuid.UUID `json:"service_order_id" binding:"required"`
		PeriodDays     int       `json:"period_days"`
		Terms          *string   `json:"terms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.warrantyService.IssueWarranty(c.Request.Context(), &service.IssueWarrantyInput{
		ServiceOrderID: req.ServiceOrderID,
		PeriodDays:     req.PeriodDays,
		Terms:          req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Warranty issued successfully", record)
}

// Get handles getting a single warranty record
func (h *WarrantyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warranty ID")
		return
	}

	record, err := h.warrantyService.GetWarranty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warranty retrieved successfully", record)
}

// List handles listing warranty records
func (h *WarrantyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.WarrantyFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	result, err := h.warrantyService.ListWarranties(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Warranties retrieved successfully", result)
}

// Certificate returns the rendered warranty certificate. format=html returns
// the printable HTML page; anything else returns the plain text inside the
// JSON envelope.
func (h *WarrantyHandler) Certificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warranty ID")
		return
	}

	cert, err := h.warrantyService.BuildCertificate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "html" {
		html, err := h.renderer.WarrantyHTML(cert)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Data(200, "text/html; charset=utf-8", []byte(html))
		return
	}

	response.OK(c, "Certificate rendered successfully", gin.H{
		"protocol": cert.Protocol,
		"text":     h.renderer.WarrantyText(cert),
	})
}

// EmailCertificate sends the HTML certificate to the given address
func (h *WarrantyHandler) EmailCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warranty ID")
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if !h.emailService.IsConfigured() {
		response.BadRequest(c, "Email is not configured")
		return
	}

	cert, err := h.warrantyService.BuildCertificate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	html, err := h.renderer.WarrantyHTML(cert)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.emailService.SendWarranty(req.Email, cert.Protocol, html); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Certificate emailed successfully", nil)
}
