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

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// EntitlementHandler holds dependencies for entitlement-related handlers
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// VerifyPurchaseRequest represents the request body for purchase verification
type VerifyPurchaseRequest struct {
	PurchaseToken string `json:"purchase_token" validate:"required"`
	ProductID     string `json:"product_id" validate:"required"`
}

// Snapshot handles retrieving the current entitlement after the lazy weekly reset
func (h *EntitlementHandler) Snapshot(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	entitlement, err := h.entitlementUC.Snapshot(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entitlement, "Entitlement retrieved successfully")
}

// VerifyPurchase handles verifying a subscription purchase and applying the claim
func (h *EntitlementHandler) VerifyPurchase(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	var req VerifyPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entitlement, err := h.entitlementUC.VerifyPurchase(c.Request().Context(), identity, req.PurchaseToken, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entitlement, "Purchase verified successfully")
}

// Sync handles replaying queued entitlement writes against the remote mirror
func (h *EntitlementHandler) Sync(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_IDENTITY", "Missing or invalid identity")
	}

	if err := h.entitlementUC.FlushPending(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entitlement synced"}, "Entitlement synced successfully")
}
