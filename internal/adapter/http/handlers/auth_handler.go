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

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{usecase: uc, log: log}
}

// Login godoc
// @Summary  Studio admin login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		abortWithError(c, h.log, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAccessToken(token))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Admin login is not configured", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
