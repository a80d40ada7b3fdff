package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	pkgctx "github.com/piresc/transferflow/internal/pkg/context"
	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/middleware"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/utils"
	"github.com/piresc/transferflow/services/payment"
	"github.com/piresc/transferflow/services/payment/flow"
)

// FlowErrorDetails is the body detail of a rejected flow operation
type FlowErrorDetails struct {
	Error   models.ErrorRecord  `json:"error"`
	Reason  flow.Reason         `json:"reason"`
	Session *models.SessionView `json:"session,omitempty"`
}

// PaymentHandler handles HTTP requests for payment sessions
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	validate  *validator.Validate
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		validate:  validator.New(),
	}
}

// StartSession opens a new payment attempt
func (h *PaymentHandler) StartSession(c echo.Context) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	view, err := h.paymentUC.StartSession(c.Request().Context(), user)
	if err != nil {
		return h.respondError(c, view, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment session started", view)
}

// GetSession returns the current state of a payment attempt
func (h *PaymentHandler) GetSession(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		view, err := h.paymentUC.GetSession(c.Request().Context(), user, id)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Payment session retrieved", view)
	})
}

// DiscardSession abandons a payment attempt
func (h *PaymentHandler) DiscardSession(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		if err := h.paymentUC.DiscardSession(c.Request().Context(), user, id); err != nil {
			return h.respondError(c, nil, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Payment session discarded", nil)
	})
}

// ListPayerAccounts returns the accounts the caller may debit
func (h *PaymentHandler) ListPayerAccounts(c echo.Context) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	accounts, err := h.paymentUC.ListPayerAccounts(c.Request().Context(), user)
	if err != nil {
		return h.respondError(c, nil, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payer accounts retrieved", accounts)
}

// SelectPayerAccount chooses the account to debit
func (h *PaymentHandler) SelectPayerAccount(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		var req models.SelectPayerRequest
		if ok, err := h.bind(c, &req); !ok {
			return err
		}
		view, err := h.paymentUC.SelectPayerAccount(c.Request().Context(), user, id, req.AccountID)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Payer account selected", view)
	})
}

// UpdateField edits one form field
func (h *PaymentHandler) UpdateField(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		var req models.UpdateFieldRequest
		if ok, err := h.bind(c, &req); !ok {
			return err
		}
		view, err := h.paymentUC.UpdateField(c.Request().Context(), user, id, req.Field, req.Value)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Field updated", view)
	})
}

// ReloadCodes retries loading payment codes
func (h *PaymentHandler) ReloadCodes(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		view, err := h.paymentUC.ReloadCodes(c.Request().Context(), user, id)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusAccepted, "Reloading payment codes", view)
	})
}

// Submit sends the form for OTP confirmation
func (h *PaymentHandler) Submit(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		view, err := h.paymentUC.Submit(c.Request().Context(), user, id)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", view)
	})
}

// EnterOTP passes the digits typed so far
func (h *PaymentHandler) EnterOTP(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		var req models.OTPEntryRequest
		if ok, err := h.bind(c, &req); !ok {
			return err
		}
		view, err := h.paymentUC.EnterOTP(c.Request().Context(), user, id, req.Value)
		if err != nil {
			return h.respondError(c, view, err)
		}
		message := "Code updated"
		if view.State == models.FlowStateSuccess {
			message = "Payment confirmed"
		}
		return utils.SuccessResponse(c, http.StatusOK, message, view)
	})
}

// ResendOTP issues a new verification code
func (h *PaymentHandler) ResendOTP(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		view, err := h.paymentUC.ResendOTP(c.Request().Context(), user, id)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Verification code resent", view)
	})
}

// Cancel returns from OTP confirmation to the form
func (h *PaymentHandler) Cancel(c echo.Context) error {
	return h.withSession(c, func(user models.AuthUser, id uuid.UUID) error {
		view, err := h.paymentUC.Cancel(c.Request().Context(), user, id)
		if err != nil {
			return h.respondError(c, view, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Confirmation cancelled", view)
	})
}

func (h *PaymentHandler) withSession(c echo.Context, fn func(user models.AuthUser, id uuid.UUID) error) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}
	pkgctx.SetSessionID(c, id.String())
	return fn(user, id)
}

// bind decodes and validates the request body. When it reports false the 400 response has
// been written and its write error is returned.
func (h *PaymentHandler) bind(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		logger.Warn("Invalid request payload", logger.Err(err), logger.String("path", c.Path()))
		return false, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return false, utils.BadRequestResponse(c, err.Error())
	}
	return true, nil
}

func (h *PaymentHandler) respondError(c echo.Context, view *models.SessionView, err error) error {
	switch {
	case errors.Is(err, payment.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "Payment session not found")
	case errors.Is(err, payment.ErrSessionForbidden):
		return utils.ForbiddenResponse(c, "Payment session belongs to another user")
	case errors.Is(err, payment.ErrAccountNotFound):
		return utils.NotFoundResponse(c, "Payer account not found")
	}

	if fe, ok := flow.AsError(err); ok {
		return utils.UnprocessableEntityResponse(c, fe.Title, FlowErrorDetails{
			Error:   fe.Record(),
			Reason:  fe.Reason,
			Session: view,
		})
	}

	logger.ErrorCtx(c.Request().Context(), "Payment request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to process payment request")
}
