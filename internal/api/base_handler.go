package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/service"
	"github.com/modelproof/biasradar-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// WriteError renders a service error as the standard error body. Errors
// outside the taxonomy never leak detail to the caller.
func (h *BaseHandler) WriteError(c *gin.Context, err error) {
	e, ok := service.AsError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
		return
	}

	body := dto.Error{Error: e.Message}
	switch e.Kind {
	case service.KindQuotaExceeded:
		body.Error = "Rate limit exceeded"
		body.Message = e.Message
		body.RequestsMade = e.RequestsMade
		body.Limit = e.Limit
	case service.KindUpstream:
		body.Details = e.Detail
	}

	c.JSON(service.HTTPStatus(e.Kind), body)
}
