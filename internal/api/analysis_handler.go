package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/utils"
)

//go:generate mockery --name AnalysisService --output ../mocks
type AnalysisService interface {
	Scan(ctx context.Context, org *domain.Organization, req dto.ScanRequest) (dto.AnalysisResponse, error)
	Fix(ctx context.Context, org *domain.Organization, req dto.FixRequest) (dto.AnalysisResponse, error)
}

type AnalysisHandler struct {
	*BaseHandler
	service AnalysisService
}

func NewAnalysisHandler(service AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Scan godoc
// @Summary Scan text for bias
// @Description Analyze text for bias across the supported categories
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body dto.ScanRequest true "Text to analyze"
// @Security BearerAuth
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 429 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Router /v1/scan [post]
func (h *AnalysisHandler) Scan(c *gin.Context) {
	org, ok := h.organization(c)
	if !ok {
		return
	}

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Scan(h.RequestCtx(c), org, req)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Fix godoc
// @Summary Fix biased text
// @Description Rewrite text with detected bias removed
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body dto.FixRequest true "Text to fix"
// @Security BearerAuth
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 429 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Router /v1/fix [post]
func (h *AnalysisHandler) Fix(c *gin.Context) {
	org, ok := h.organization(c)
	if !ok {
		return
	}

	var req dto.FixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Fix(h.RequestCtx(c), org, req)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// organization pulls the record the auth middleware stored on the context.
func (h *AnalysisHandler) organization(c *gin.Context) (*domain.Organization, bool) {
	org, err := utils.GetOrganizationFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Missing or invalid Authorization header"})
		return nil, false
	}
	return org, true
}
