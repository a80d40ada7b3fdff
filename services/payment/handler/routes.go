package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/transferflow/internal/pkg/middleware"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/payment/handler/http"
)

// Handler coordinates all protocol handlers for the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment routes behind JWT authentication. resendLimit, when
// set, throttles OTP resends.
func (h *Handler) RegisterRoutes(e *echo.Echo, resendLimit echo.MiddlewareFunc) {
	protected := e.Group("/payments", middleware.JWTAuth(h.cfg.JWT))
	protected.GET("/accounts", h.paymentHandler.ListPayerAccounts)

	sessions := protected.Group("/sessions")
	sessions.POST("", h.paymentHandler.StartSession)
	sessions.GET("/:id", h.paymentHandler.GetSession)
	sessions.DELETE("/:id", h.paymentHandler.DiscardSession)
	sessions.PUT("/:id/payer", h.paymentHandler.SelectPayerAccount)
	sessions.PATCH("/:id/fields", h.paymentHandler.UpdateField)
	sessions.POST("/:id/codes/reload", h.paymentHandler.ReloadCodes)
	sessions.POST("/:id/submit", h.paymentHandler.Submit)
	sessions.POST("/:id/otp", h.paymentHandler.EnterOTP)
	sessions.POST("/:id/cancel", h.paymentHandler.Cancel)

	var resendMW []echo.MiddlewareFunc
	if resendLimit != nil {
		resendMW = append(resendMW, resendLimit)
	}
	sessions.POST("/:id/otp/resend", h.paymentHandler.ResendOTP, resendMW...)
}
