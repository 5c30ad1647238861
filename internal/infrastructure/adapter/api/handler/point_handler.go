package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/usecase"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// PointHandler handles the point wallet HTTP endpoints
type PointHandler struct {
	pointUseCase usecase.PointUseCase
	logger       coreport.Logger
}

// NewPointHandler creates a new point handler instance
func NewPointHandler(pointUseCase usecase.PointUseCase, logger coreport.Logger) *PointHandler {
	return &PointHandler{
		pointUseCase: pointUseCase,
		logger:       logger,
	}
}

// GetPoint handles GET /point/:id
func (h *PointHandler) GetPoint(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	point, err := h.pointUseCase.GetPoint(c.Request.Context(), userID)
	if err != nil {
		h.respondDomainError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserPointResponse(point))
}

// GetHistories handles GET /point/:id/histories
func (h *PointHandler) GetHistories(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	histories, err := h.pointUseCase.GetHistories(c.Request.Context(), userID)
	if err != nil {
		h.respondDomainError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointHistoryResponses(histories))
}

// Charge handles PATCH /point/:id/charge
func (h *PointHandler) Charge(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}
	amount, ok := h.parseAmount(c)
	if !ok {
		return
	}

	point, err := h.pointUseCase.Charge(c.Request.Context(), userID, amount)
	if err != nil {
		h.respondDomainError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserPointResponse(point))
}

// Use handles PATCH /point/:id/use
func (h *PointHandler) Use(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}
	amount, ok := h.parseAmount(c)
	if !ok {
		return
	}

	point, err := h.pointUseCase.Use(c.Request.Context(), userID, amount)
	if err != nil {
		h.respondDomainError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserPointResponse(point))
}

// parseUserID extracts the user ID path parameter. A non-integer id is a
// malformed request; sign and range rules belong to the domain layer.
func (h *PointHandler) parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMalformedRequest,
			Message: "invalid user id in path",
		})
		return 0, false
	}
	return userID, true
}

// parseAmount reads the request body, which is a bare decimal integer
func (h *PointHandler) parseAmount(c *gin.Context) (int64, bool) {
	var amount int64
	if err := c.ShouldBindJSON(&amount); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMalformedRequest,
			Message: "request body must be an integer amount",
		})
		return 0, false
	}
	return amount, true
}

// respondDomainError converts a domain failure into the error response.
// Rule violations surface as server errors; each failure is logged once here.
func (h *PointHandler) respondDomainError(c *gin.Context, userID int64, err error) {
	h.logger.Error("Point operation failed", map[string]any{
		"user_id": userID,
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
		"error":   err.Error(),
	})

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
