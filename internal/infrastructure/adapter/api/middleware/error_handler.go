package middleware

import (
	"net/http"

	domainerr "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns a standard
// error response instead of dropping the connection
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":     err,
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.CodeInternalServer,
					Message: "internal server error",
				})
			}
		}()

		c.Next()
	}
}
