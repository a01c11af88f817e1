package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fukuro_studio/internal/adapter/http/handlers/mocks"
	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBillingPaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, true, nil)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateForQuote(gomock.Any(), "q-1", json.RawMessage("{}")).Return(entities.BillingPayment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateForQuote(gomock.Any(), "q-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		now := time.Now().UTC()
		uc.EXPECT().CreateForQuote(gomock.Any(), "q-1", gomock.Any()).Return(entities.BillingPayment{ID: "pay-1", QuoteID: "q-1", Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, usecase.ErrInvalidPaymentQuoteID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.BillingPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, false, nil)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		old := entities.BillingPayment{ID: "old", QuoteID: "q-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		latest := entities.BillingPayment{ID: "latest", QuoteID: "q-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.BillingPayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":"x"}`))
	if err != nil || string(payload) != `"x"` {
		t.Fatalf("expected wrapped string payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"payment_method_id":"pix"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid(payload) {
		t.Fatalf("expected valid payload")
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapBillingPaymentError(t *testing.T) {

	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrQuoteNotAccepted, http.StatusConflict},
		{usecase.ErrBillingPaymentNotFound, http.StatusNotFound},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{&entities.ErrExternalService{Service: "mercadopago", Err: errors.New("timeout")}, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapBillingPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
