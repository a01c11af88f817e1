package handlers

import (
	"errors"
	"net/http"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// abortWithError writes the error envelope and logs server-side failures with
// their cause.
func abortWithError(c *gin.Context, log *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && log != nil {
		log.Error("[http][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err))
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError handles failures shared by every resource.
func mapCommonError(err error) *pkg.AppError {
	var ext *entities.ErrExternalService
	if errors.As(err, &ext) {
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "An external service is unavailable, try again", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, http.StatusInternalServerError)
}
