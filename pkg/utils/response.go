// pkg/utils/response.go
package utils

import (
	"net/http"

	"donation-backend/internal/models"
	apperrors "donation-backend/pkg/errors"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// SendJSONResponse sends a JSON response with the given status code
func SendJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// SendErrorResponse maps an error to an HTTP error response. AppErrors keep
// their status code and message; anything else is logged and surfaced as a
// generic 500 without leaking internal detail.
func SendErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		SendJSONResponse(w, r, appErr.StatusCode, models.ErrorResponse{Error: appErr.Message})
		return
	}

	zap.L().Error("unhandled error", zap.Error(err), zap.String("path", r.URL.Path))
	SendJSONResponse(w, r, http.StatusInternalServerError, models.ErrorResponse{
		Error: "internal server error",
	})
}

// DecodeJSONBody decodes a JSON request body into dst
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return apperrors.NewAppError(apperrors.ErrBadRequest, http.StatusBadRequest, "invalid JSON format")
	}
	return nil
}
