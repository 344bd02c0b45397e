package handler

import (
	"fmt"

	deliveryapp "github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles inventory document endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *deliveryapp.InventoryService
	adminGuard       []gin.HandlerFunc
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *deliveryapp.InventoryService, adminGuard ...gin.HandlerFunc) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		adminGuard:       adminGuard,
	}
}

// RegisterRoutes registers inventory routes on the API group. The
// direct download is a read; only delivery needs the admin role.
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies/:nit/inventory", h.Download)

	protected := rg.Group("", h.adminGuard...)
	protected.POST("/companies/:nit/inventory/deliver", h.Deliver)
}

// DeliverRequest carries the recipient for an inventory delivery
type DeliverRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Download renders the inventory document and returns it directly
func (h *InventoryHandler) Download(c *gin.Context) {
	doc, err := h.inventoryService.Render(c.Request.Context(), c.Param("nit"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(200, doc.ContentType, doc.Content)
}

// Deliver emails the inventory document to the given recipient,
// archiving a backup copy when a storage backend is configured
func (h *InventoryHandler) Deliver(c *gin.Context) {
	var req DeliverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.inventoryService.Deliver(c.Request.Context(), c.Param("nit"), req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
