package routes

import (
	"net/http"

	domainerr "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/dto"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/handler"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, pointHandler *handler.PointHandler) {
	pointRoutes := router.Group("/point")
	{
		// GET /point/:id
		pointRoutes.GET("/:id", pointHandler.GetPoint)

		// GET /point/:id/histories
		pointRoutes.GET("/:id/histories", pointHandler.GetHistories)

		// PATCH /point/:id/charge
		pointRoutes.PATCH("/:id/charge", pointHandler.Charge)

		// PATCH /point/:id/use
		pointRoutes.PATCH("/:id/use", pointHandler.Use)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.CodeNotFound,
			Message: "resource not found",
		})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
