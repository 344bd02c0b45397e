package handler

import (
	orderingapp "github.com/DavidGarzon9580/lite-thinking/internal/application/ordering"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
	adminGuard   []gin.HandlerFunc
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService, adminGuard ...gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		adminGuard:   adminGuard,
	}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/:id", h.GetByID)
	rg.GET("/companies/:nit/orders", h.ListByCompany)

	protected := rg.Group("", h.adminGuard...)
	protected.POST("/orders", h.Create)
}

// Create places an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID retrieves an order with its items
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByCompany retrieves all orders placed against a company
func (h *OrderHandler) ListByCompany(c *gin.Context) {
	resp, err := h.orderService.ListByCompany(c.Request.Context(), c.Param("nit"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
