package handler

import (
	catalogapp "github.com/DavidGarzon9580/lite-thinking/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *catalogapp.CompanyService
	adminGuard     []gin.HandlerFunc
}

// NewCompanyHandler creates a new CompanyHandler. adminGuard protects
// the mutating routes.
func NewCompanyHandler(companyService *catalogapp.CompanyService, adminGuard ...gin.HandlerFunc) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		adminGuard:     adminGuard,
	}
}

// RegisterRoutes registers company routes on the API group
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies", h.List)
	rg.GET("/companies/:nit", h.GetByNIT)

	protected := rg.Group("", h.adminGuard...)
	protected.POST("/companies", h.Create)
	protected.PUT("/companies/:nit", h.Update)
	protected.DELETE("/companies/:nit", h.Delete)
}

// Create registers a new company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByNIT retrieves a company
func (h *CompanyHandler) GetByNIT(c *gin.Context) {
	resp, err := h.companyService.GetByNIT(c.Request.Context(), c.Param("nit"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List retrieves all companies
func (h *CompanyHandler) List(c *gin.Context) {
	resp, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update modifies a company's mutable fields
func (h *CompanyHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Update(c.Request.Context(), c.Param("nit"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a company and its catalog
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyService.Delete(c.Request.Context(), c.Param("nit")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
