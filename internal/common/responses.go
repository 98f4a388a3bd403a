package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/amikaross/rails-engine/internal/logger"
)

// ErrorResponse is the error envelope; Errors is a string for query errors
// and a list of strings otherwise
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

// DataResponse is the success envelope
type DataResponse struct {
	Data any `json:"data"`
}

// NoMatchingObject is returned by show-mode searches without a match
func NoMatchingObject() DataResponse {
	return DataResponse{Data: struct{}{}}
}

// ErrorStatus maps an error onto its HTTP status and envelope
func ErrorStatus(err error) (int, ErrorResponse) {
	var (
		notFound *NotFoundError
		invalid  *InvalidQueryError
		missing  *MissingAttributesError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Message: MessageNotFound, Errors: []string{notFound.Error()}}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, ErrorResponse{Message: MessageInvalidQuery, Errors: invalid.Reason}
	case errors.As(err, &missing):
		return http.StatusBadRequest, ErrorResponse{Message: MessageMissingAttributes, Errors: missing.Messages}
	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return httpErr.Code, ErrorResponse{Message: message, Errors: []string{}}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: MessageInternal, Errors: []string{}}
	}
}

// HTTPErrorHandler is installed as echo's error handler so every handler
// can simply return its error
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := ErrorStatus(err)
	log := logger.FromEcho(c)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err), zap.String("path", c.Path()))
	} else {
		log.Debug("Request rejected", zap.Int("status", status), zap.Error(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		log.Error("Failed to write error response", zap.Error(writeErr))
	}
}
