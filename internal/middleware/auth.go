package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/service"
	"github.com/modelproof/biasradar-api/internal/utils"
)

type AuthMiddleware struct {
	auth   *service.AuthService
	quota  *service.QuotaService
	config *config.Config
}

func NewAuthMiddleware(auth *service.AuthService, quota *service.QuotaService, config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		quota:  quota,
		config: config,
	}
}

// APIKeyAuth authenticates the bearer credential and runs the quota check.
// The authenticated organization lands in the request context with its
// counter already current for the active window.
func (m *AuthMiddleware) APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Missing or invalid Authorization header"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Missing or invalid Authorization header"})
			return
		}

		org, err := m.auth.Authenticate(c.Request.Context(), bearerToken[1])
		if err != nil {
			abortWithError(c, err)
			return
		}

		if err := m.quota.Check(org); err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(string(utils.OrganizationKey), org)
		c.Next()
	}
}

// AdminAuth gates the tenant-management operations behind the shared
// passcode. It runs before any body validation so a bad passcode always
// reads as Forbidden, whatever the body looks like.
func (m *AuthMiddleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		passcode := c.GetHeader("X-Admin-Passcode")
		if subtle.ConstantTimeCompare([]byte(passcode), []byte(m.config.AdminPasscode)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Forbidden - Invalid or missing X-Admin-Passcode header"})
			return
		}
		c.Next()
	}
}

// abortWithError renders a service error and stops the chain.
func abortWithError(c *gin.Context, err error) {
	e, ok := service.AsError(err)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
		return
	}

	body := dto.Error{Error: e.Message}
	if e.Kind == service.KindQuotaExceeded {
		body.Error = "Rate limit exceeded"
		body.Message = e.Message
		body.RequestsMade = e.RequestsMade
		body.Limit = e.Limit
	}

	c.AbortWithStatusJSON(service.HTTPStatus(e.Kind), body)
}
