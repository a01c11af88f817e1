package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	request "fukuro_studio/internal/adapter/http/dto/request"
	response "fukuro_studio/internal/adapter/http/dto/response"
	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/pricing"
	"fukuro_studio/internal/usecase"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes: live preview, submission and
// the studio's review of submitted quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	loc     *time.Location
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, loc *time.Location, log *zap.Logger) *QuoteHandler {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, loc: loc, log: log}
}

// PreviewQuote godoc
// @Summary  Price a quote form without saving it
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "Quote form"
// @Success  200 {object} response.BreakdownResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	req, ok := h.bindQuote(c)
	if !ok {
		return
	}

	breakdown, err := h.usecase.Preview(c.Request.Context(), req.entity)
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// SubmitQuote godoc
// @Summary  Submit the quote form
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "Quote form"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	req, ok := h.bindQuote(c)
	if !ok {
		return
	}

	quote, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitQuoteCommand{
		Request:       req.entity,
		TermsAccepted: req.payload.TermsAccepted,
		Source:        entities.QuoteSourceForm,
	})
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes returns every quote, or the quotes of ?project_id= when given.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var (
		quotes []entities.Quote
		err    error
	)
	if projectID := c.Query("project_id"); projectID != "" {
		quotes, err = h.usecase.ListByProject(c.Request.Context(), projectID)
	} else {
		quotes, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetReceipt returns the plain-text summary; ?format=text writes it as text/plain.
func (h *QuoteHandler) GetReceipt(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}

	receipt := pricing.FormatReceipt(quote)
	if c.Query("format") == "text" {
		c.String(http.StatusOK, receipt)
		return
	}
	c.JSON(http.StatusOK, response.ReceiptResponse{QuoteID: quote.ID, Receipt: receipt})
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Accept)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Cancel)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

type boundQuote struct {
	payload request.QuoteRequest
	entity  entities.QuoteRequest
}

func (h *QuoteHandler) bindQuote(c *gin.Context) (boundQuote, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidQuotePayload)
		return boundQuote{}, false
	}
	entity, err := payload.ToEntity(h.loc)
	if err != nil {
		abortWithError(c, h.log, mapQuoteError(err))
		return boundQuote{}, false
	}
	return boundQuote{payload: payload, entity: entity}, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidRequest
	case errors.Is(err, request.ErrInvalidDeliveryDate),
		errors.Is(err, usecase.ErrMissingClientName),
		errors.Is(err, usecase.ErrInvalidClientEmail),
		errors.Is(err, usecase.ErrMissingProjectName),
		errors.Is(err, usecase.ErrMissingDeliveryDate),
		errors.Is(err, usecase.ErrNoServiceSelected):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", capitalize(err.Error()), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Terms must be accepted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainErrorSimple("QUOTE_STATUS_CONFLICT", "Quote is no longer pending", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
