package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelproof/biasradar-api/internal/api/dto"
)

//go:generate mockery --name OrganizationService --output ../mocks
type OrganizationService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.OrganizationResponse, error)
	Revoke(ctx context.Context, email string) (dto.OrganizationResponse, error)
	SetPlan(ctx context.Context, email string, isPaid bool) (dto.OrganizationResponse, error)
	List(ctx context.Context) ([]dto.OrganizationResponse, error)
}

type OrganizationHandler struct {
	*BaseHandler
	service OrganizationService
}

func NewOrganizationHandler(service OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Register godoc
// @Summary Register a new organization
// @Description Provision an organization and mint its API key
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Organization to register"
// @Param X-Admin-Passcode header string true "Admin passcode"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /v1/register [post]
func (h *OrganizationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Name and email are required"})
		return
	}

	org, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success:      true,
		Organization: org,
	})
}

// Revoke godoc
// @Summary Revoke an organization's API key
// @Description Permanently delete the organization; the key becomes invalid immediately
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.RevokeRequest true "Organization to revoke"
// @Param X-Admin-Passcode header string true "Admin passcode"
// @Success 200 {object} dto.RevokeResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/revoke [post]
func (h *OrganizationHandler) Revoke(c *gin.Context) {
	var req dto.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Email is required"})
		return
	}

	org, err := h.service.Revoke(h.RequestCtx(c), req.Email)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevokeResponse{
		Success: true,
		Message: fmt.Sprintf("API key for %s (%s) has been revoked", org.Name, org.Email),
	})
}

// Upgrade godoc
// @Summary Change an organization's plan
// @Description Flip the paid flag; usage counters are untouched
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.UpgradeRequest true "Plan change"
// @Param X-Admin-Passcode header string true "Admin passcode"
// @Success 200 {object} dto.UpgradeResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/upgrade [patch]
func (h *OrganizationHandler) Upgrade(c *gin.Context) {
	var req dto.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPaid == nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Email and is_paid (boolean) are required"})
		return
	}

	org, err := h.service.SetPlan(h.RequestCtx(c), req.Email, *req.IsPaid)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpgradeResponse{
		Success:      true,
		Organization: org,
	})
}

// ListOrganizations godoc
// @Summary List all organizations
// @Description Get all organizations newest first, with API keys masked
// @Tags admin
// @Produce json
// @Param X-Admin-Passcode header string true "Admin passcode"
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /admin/organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListOrganizationsResponse{
		Success:       true,
		Organizations: orgs,
	})
}
