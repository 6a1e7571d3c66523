package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/keerthi6166/insurance-backend/apperr"
)

// errorBody is the JSON envelope every failure is reported in.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}

// ErrorTranslator is the single boundary where faults become HTTP responses.
// Handlers attach faults with c.Error and never write failure bodies
// themselves. Unclassified faults map to 500 with a generic message; their
// details are logged but never sent to the caller.
func ErrorTranslator(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		switch {
		case errors.Is(err, apperr.ErrValidation):
			logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("validation error")
			c.JSON(http.StatusBadRequest, errorBody{StatusCode: http.StatusBadRequest, Error: err.Error()})
		case errors.Is(err, apperr.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
			logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("resource not found")
			c.JSON(http.StatusNotFound, errorBody{StatusCode: http.StatusNotFound, Error: err.Error()})
		case errors.Is(err, apperr.ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey):
			logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("natural key conflict")
			c.JSON(http.StatusConflict, errorBody{StatusCode: http.StatusConflict, Error: err.Error()})
		default:
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
			c.JSON(http.StatusInternalServerError, errorBody{
				StatusCode: http.StatusInternalServerError,
				Error:      "An internal server error occurred.",
			})
		}
	}
}
