package handler

import (
	"log/slog"
	"net/http"

	"iriscan/internal/delivery/http/middleware"
	"iriscan/internal/delivery/http/response"
	"iriscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler holds dependencies for history-related handlers
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// List handles retrieving the scan history, newest first
func (h *HistoryHandler) List(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	records, err := h.historyUC.List(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Scan history retrieved successfully")
}

// Clear handles irreversibly deleting the identity's scan history
func (h *HistoryHandler) Clear(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	if err := h.historyUC.Clear(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "History cleared"}, "Scan history cleared successfully")
}

// Sync handles replaying locally buffered records against the remote store
func (h *HistoryHandler) Sync(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	if err := h.historyUC.FlushPending(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pending records synced"}, "Scan history synced successfully")
}
