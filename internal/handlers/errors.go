package handlers

import (
	"errors"
	"log"
	"net/http"

	"supplytrack/internal/common"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler returns the central echo error handler. Every error that
// escapes a handler is mapped here onto the uniform JSON envelope; store
// detail is only exposed when dev is true.
func NewErrorHandler(dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			validationErr *common.ValidationError
			notFoundErr   *common.NotFoundError
			httpErr       *echo.HTTPError
		)

		switch {
		case errors.As(err, &validationErr):
			_ = c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Validation error",
				"errors":  validationErr.Messages,
			})
		case errors.As(err, &notFoundErr):
			_ = c.JSON(http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": notFoundErr.Error(),
			})
		case errors.As(err, &httpErr):
			if httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed {
				_ = c.JSON(http.StatusNotFound, map[string]interface{}{
					"success": false,
					"message": "Endpoint not found",
				})
				return
			}
			_ = c.JSON(httpErr.Code, map[string]interface{}{
				"success": false,
				"message": httpErr.Message,
			})
		default:
			// StoreError, TimeoutError, deadline expiry and anything
			// unexpected all end up as an opaque 500.
			log.Printf("request failed: %v", err)
			body := map[string]interface{}{
				"success": false,
				"message": "Internal server error",
			}
			if dev {
				body["error"] = err.Error()
			}
			_ = c.JSON(http.StatusInternalServerError, body)
		}
	}
}
