package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
	pointUseCase "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/usecase/point"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/dto"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/handler"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/routes"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/logger"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/memtable"
	timeProvider "github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/time"
)

// newTestRouter wires the full stack on in-memory tables
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tp := timeProvider.NewRealTimeProvider()
	noopLogger := logger.NewNoopLogger()
	service := pointUseCase.NewService(
		memtable.NewUserPointTable(tp),
		memtable.NewPointHistoryTable(),
		noopLogger,
	)

	router := gin.New()
	routes.SetupMiddlewares(router, noopLogger)
	routes.SetupRoutes(router, handler.NewPointHandler(service, noopLogger))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPointHandler_Charge(t *testing.T) {
	t.Run("should charge points and return the new balance", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPatch, "/point/1/charge", "5000")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.UserPointResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(5000), resp.Point)
		assert.Positive(t, resp.UpdateMillis)
	})

	t.Run("should return a server error when the charge limit is exceeded", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPatch, "/point/1/charge", "1500000")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInvalidArgument, resp.Code)
	})

	t.Run("should return a bad request for a non-integer body", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPatch, "/point/1/charge", `"lots"`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeMalformedRequest, resp.Code)
	})

	t.Run("should return a bad request for a non-integer path id", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPatch, "/point/abc/charge", "1000")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPointHandler_Use(t *testing.T) {
	t.Run("should use points and return the new balance", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPatch, "/point/2/charge", "10000")

		w := doRequest(router, http.MethodPatch, "/point/2/use", "500")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.UserPointResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(9500), resp.Point)
	})

	t.Run("should return a server error on insufficient balance", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPatch, "/point/3/use", "3000")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInsufficientBalance, resp.Code)
	})
}

func TestPointHandler_GetPoint(t *testing.T) {
	t.Run("should return zero balance for an unseen user", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodGet, "/point/9", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.UserPointResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(9), resp.ID)
		assert.Equal(t, int64(0), resp.Point)
	})

	t.Run("should return a server error for a non-positive id", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodGet, "/point/0", "")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInvalidArgument, resp.Code)
	})
}

func TestPointHandler_GetHistories(t *testing.T) {
	t.Run("should return an empty array for an unseen user", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodGet, "/point/9/histories", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("should return entries in commit order with wire field names", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPatch, "/point/1/charge", "1000")
		doRequest(router, http.MethodPatch, "/point/1/use", "500")

		w := doRequest(router, http.MethodGet, "/point/1/histories", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "CHARGE", resp[0]["type"])
		assert.Equal(t, "USE", resp[1]["type"])
		assert.Equal(t, float64(1), resp[0]["userId"])
		assert.Contains(t, resp[0], "updateMillis")
		assert.Contains(t, resp[0], "amount")
	})
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/wallet/1", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.CodeNotFound, resp.Code)
}
