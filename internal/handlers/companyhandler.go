package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/repository"
)

type CompanyHandler struct {
	Companies *repository.CompanyRepository
}

// NewCompanyHandler creates the handler with dependencies
func NewCompanyHandler(companies *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// CreateCompany is the POST /companies endpoint (admin only).
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	company, err := h.Companies.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// ListCompanies is the GET /companies endpoint. Supports the name,
// minEmployees and maxEmployees query filters; anything else is a 400.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	if !requireKnownQuery(c, "name", "minEmployees", "maxEmployees") {
		return
	}

	var filter dtos.CompanyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	companies, err := h.Companies.FindAll(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// GetCompany is the GET /companies/:handle endpoint.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.Companies.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// UpdateCompany is the PATCH /companies/:handle endpoint (admin only).
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	company, err := h.Companies.Update(c.Request.Context(), c.Param("handle"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DeleteCompany is the DELETE /companies/:handle endpoint (admin only).
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.Companies.Remove(c.Request.Context(), handle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
