package handler

import (
	"strconv"

	"github.com/dmelo/assistech-api/internal/application/service"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/dmelo/assistech-api/internal/presentation/http/dto/response"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceOrderHandler handles repair order HTTP requests
type ServiceOrderHandler struct {
	orderService *service.ServiceOrderService
}

// NewServiceOrderHandler creates a new service order handler
func NewServiceOrderHandler(orderService *service.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderService: orderService}
}

// Create handles registering a device for repair
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID     uuid.UUID `json:"customer_id" binding:"required"`
		Device         string    `json:"device" binding:"required"`
		IMEI           *string   `json:"imei"`
		ReportedDefect string    `json:"reported_defect" binding:"required"`
		TechnicianName *string   `json:"technician_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateServiceOrder(c.Request.Context(), &service.CreateServiceOrderInput{
		UserID:         *userID,
		CustomerID:     req.CustomerID,
		Device:         req.Device,
		IMEI:           req.IMEI,
		ReportedDefect: req.ReportedDefect,
		TechnicianName: req.TechnicianName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service order created successfully", order)
}

// Get handles getting a single service order
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service order ID")
		return
	}

	order, err := h.orderService.GetServiceOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service order retrieved successfully", order)
}

// Update handles bench updates to an open service order
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service order ID")
		return
	}

	var req struct {
		Diagnosis      *string  `json:"diagnosis"`
		TechnicianName *string  `json:"technician_name"`
		LaborCost      *float64 `json:"labor_cost"`
		PartsCost      *float64 `json:"parts_cost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateServiceOrder(c.Request.Context(), id, &service.UpdateServiceOrderInput{
		Diagnosis:      req.Diagnosis,
		TechnicianName: req.TechnicianName,
		LaborCost:      req.LaborCost,
		PartsCost:      req.PartsCost,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service order updated successfully", order)
}

// UpdateStatus handles moving a service order through the workflow
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service order ID")
		return
	}

	var req struct {
		Status *int `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, enum.ServiceOrderStatus(*req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service order status updated successfully", order)
}

// List handles listing service orders
func (h *ServiceOrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ServiceOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.ServiceOrderStatus(statusInt)
			params.Status = &status
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	result, err := h.orderService.ListServiceOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Service orders retrieved successfully", result)
}
