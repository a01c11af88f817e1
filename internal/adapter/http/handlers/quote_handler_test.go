package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"fukuro_studio/internal/adapter/http/handlers/mocks"
	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const quoteForm = `{
	"client_name": "Ana",
	"client_email": "ana@example.com",
	"project_name": "Spot Radio",
	"audio": {"quantity": 1, "duration": "1:30"},
	"delivery_date": "2025-01-06",
	"terms_accepted": true
}`

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, time.UTC, nil)

	r := gin.New()
	r.POST("/v1/quotes/preview", h.PreviewQuote)
	r.POST("/v1/quotes", h.SubmitQuote)
	r.GET("/v1/quotes", h.ListQuotes)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.GET("/v1/quotes/:id/receipt", h.GetReceipt)
	r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)
	r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)
	r.PATCH("/v1/quotes/:id/cancel", h.CancelQuote)
	return r, uc
}

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:        "q-1",
		ProjectID: "p-1",
		Status:    entities.QuoteStatusPending,
		Source:    entities.QuoteSourceForm,
		Request: entities.QuoteRequest{
			ClientName:  "Ana",
			ClientEmail: "ana@example.com",
			ProjectName: "Spot Radio",
			Audio:       &entities.ServiceRequest{Kind: entities.ServiceAudio, Quantity: 1, PerItemDuration: entities.Duration{Minutes: 1, Seconds: 30}},
		},
		Breakdown: entities.QuoteBreakdown{AudioFee: 2200, BaseFee: 2000, Subtotal: 4200, Total: 4200},
	}
}

func TestQuoteHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		if w := performJSON(r, http.MethodPost, "/v1/quotes/preview", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad delivery date", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := performJSON(r, http.MethodPost, "/v1/quotes/preview", `{"delivery_date":"mañana"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_QUOTE_INPUT" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req entities.QuoteRequest) (entities.QuoteBreakdown, error) {
			if req.Audio == nil || req.Audio.PerItemDuration != (entities.Duration{Minutes: 1, Seconds: 30}) {
				t.Fatalf("durations not parsed: %+v", req.Audio)
			}
			return entities.QuoteBreakdown{Total: 4200}, nil
		})

		w := performJSON(r, http.MethodPost, "/v1/quotes/preview", quoteForm)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["total"] != 4200.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase returns mapped error", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrTermsNotAccepted)

		w := performJSON(r, http.MethodPost, "/v1/quotes", quoteForm)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "TERMS_NOT_ACCEPTED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.SubmitQuoteCommand) (entities.Quote, error) {
			if !cmd.TermsAccepted || cmd.Source != entities.QuoteSourceForm {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return sampleQuote(), nil
		})

		w := performJSON(r, http.MethodPost, "/v1/quotes", quoteForm)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "q-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list by project", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListByProject(gomock.Any(), "p-1").Return([]entities.Quote{sampleQuote()}, nil)

		w := performJSON(r, http.MethodGet, "/v1/quotes?project_id=p-1", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"q-1"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list all failure", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		if w := performJSON(r, http.MethodGet, "/v1/quotes", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		if w := performJSON(r, http.MethodGet, "/v1/quotes/missing", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("receipt as text", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(sampleQuote(), nil)

		w := performJSON(r, http.MethodGet, "/v1/quotes/q-1/receipt?format=text", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Spot Radio") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := sampleQuote()
		q.Status = entities.QuoteStatusAccepted
		uc.EXPECT().Accept(gomock.Any(), "q-1").Return(q, nil)

		w := performJSON(r, http.MethodPatch, "/v1/quotes/q-1/accept", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "accepted" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reject conflict", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrInvalidQuoteTransition)

		if w := performJSON(r, http.MethodPatch, "/v1/quotes/q-1/reject", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		if w := performJSON(r, http.MethodPatch, "/v1/quotes/q-9/cancel", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrMissingClientName, http.StatusBadRequest},
		{usecase.ErrInvalidClientEmail, http.StatusBadRequest},
		{usecase.ErrNoServiceSelected, http.StatusBadRequest},
		{usecase.ErrProjectNotFound, http.StatusNotFound},
		{usecase.ErrInvalidQuoteTransition, http.StatusConflict},
		{&entities.ErrExternalService{Service: "dynamodb", Err: errors.New("x")}, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}

	if msg := mapQuoteError(usecase.ErrMissingClientName).Message; msg != "Client name is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}
