package api

import (
	"github.com/gin-gonic/gin"

	"github.com/modelproof/biasradar-api/internal/middleware"
)

type Server struct {
	organization *OrganizationHandler
	analysis     *AnalysisHandler
	auth         *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

func NewServer(
	organizationService OrganizationService,
	analysisService AnalysisService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		organization: NewOrganizationHandler(organizationService),
		analysis:     NewAnalysisHandler(analysisService),
		auth:         auth,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit())

	{
		v1 := api.Group("/v1")
		{
			// Tenant-facing analysis endpoints, bearer-key protected. The
			// auth middleware runs the window reset and quota check before
			// the handler sees the request.
			v1.POST("/scan", s.auth.APIKeyAuth(), s.analysis.Scan)
			v1.POST("/fix", s.auth.APIKeyAuth(), s.analysis.Fix)

			// Admin operations, passcode protected. AdminAuth runs before
			// body binding so Forbidden wins over BadRequest.
			v1.POST("/register", s.auth.AdminAuth(), s.organization.Register)
			v1.POST("/revoke", s.auth.AdminAuth(), s.organization.Revoke)
			v1.PATCH("/upgrade", s.auth.AdminAuth(), s.organization.Upgrade)
		}

		admin := api.Group("/admin", s.auth.AdminAuth())
		{
			admin.GET("/organizations", s.organization.ListOrganizations)
		}
	}
}
