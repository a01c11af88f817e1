package handlers

import (
	"errors"
	"net/http"

	request "fukuro_studio/internal/adapter/http/dto/request"
	response "fukuro_studio/internal/adapter/http/dto/response"
	"fukuro_studio/internal/usecase"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler serves the conversational quote intake.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
	log     *zap.Logger
}

func NewIntakeHandler(uc usecase.IIntakeUseCase, log *zap.Logger) *IntakeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntakeHandler{usecase: uc, log: log}
}

// StartSession godoc
// @Summary  Open a chat intake session
// @Tags     intake
// @Produce  json
// @Success  201 {object} response.IntakeSessionResponse
// @Router   /intake/sessions [post]
func (h *IntakeHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		abortWithError(c, h.log, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromIntakeSession(s))
}

func (h *IntakeHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

// PostMessage godoc
// @Summary  Send one chat message
// @Description Extracts quote details from the message, merges them into the session
// @Description and prices the quote as soon as nothing is missing.
// @Tags     intake
// @Accept   json
// @Produce  json
// @Param    id   path string true "Session id"
// @Param    body body request.IntakeMessageRequest true "Message"
// @Success  200 {object} response.IntakeSessionResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /intake/sessions/{id}/messages [post]
func (h *IntakeHandler) PostMessage(c *gin.Context) {
	var payload request.IntakeMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}

	s, err := h.usecase.ProcessTurn(c.Request.Context(), c.Param("id"), payload.Text)
	if err != nil {
		abortWithError(c, h.log, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) ResetSession(c *gin.Context) {
	s, err := h.usecase.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) SubmitSession(c *gin.Context) {
	var payload request.IntakeSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}

	q, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), usecase.SubmitIntakeCommand{
		ProjectName:   payload.ProjectName,
		ClientName:    payload.ClientName,
		ClientEmail:   payload.ClientEmail,
		DeliveryDate:  payload.DeliveryDate,
		TermsAccepted: payload.TermsAccepted,
	})
	if err != nil {
		abortWithError(c, h.log, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrEmptyMessage):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrIntakeSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Intake session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntakeSessionClosed):
		return pkg.NewDomainErrorSimple("SESSION_PRICED", "The quote is already priced; reset the session to change it", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntakeSessionNotPriced):
		return pkg.NewDomainErrorSimple("SESSION_NOT_PRICED", "The quote is not complete yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntakeAlreadySubmitted):
		return pkg.NewDomainErrorSimple("SESSION_SUBMITTED", "This quote was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainError("EXTRACTION_FAILED", "We could not read that message, please try again", err, http.StatusBadGateway)
	default:
		return mapQuoteError(err)
	}
}
