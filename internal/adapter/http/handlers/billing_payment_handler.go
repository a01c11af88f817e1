package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "fukuro_studio/internal/adapter/http/dto/request"
	response "fukuro_studio/internal/adapter/http/dto/response"
	"fukuro_studio/internal/usecase"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for payments on delivery.

type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, log *zap.Logger) *BillingPaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// CreatePaymentByQuoteID godoc
// @Summary  Charge an accepted quote
// @Description The amount is always the stored quote total. The body is a Mercado Pago
// @Description payment request, bare or wrapped in {"mp_payload": ...}.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    quote_id path string true "Quote id"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /payments/{quote_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	h.log.Info("[payment][handler] create start", zap.String("quote_id", quoteID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			h.log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.String("quote_id", quoteID), zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			h.log.Warn("[payment][handler] invalid payload", zap.String("quote_id", quoteID), zap.Error(err))
			abortWithError(c, h.log, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.CreateForQuote(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("quote_id", quoteID), zap.Error(err))
		abortWithError(c, h.log, mapBillingPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] create success", zap.String("quote_id", quoteID), zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByQuoteID returns the latest payment for a quote.
func (h *BillingPaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		abortWithError(c, h.log, mapBillingPaymentError(err))
		return
	}

	if len(payments) == 0 {
		abortWithError(c, h.log, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var wrapped request.BillingPaymentCreateRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			if s := strings.TrimSpace(string(wrapped.MPPayload)); s == "" || s == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payments are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
