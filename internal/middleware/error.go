package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns errors pushed with c.Error into JSON error responses
// and recovers panics as 500s.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithFields(logrus.Fields{
					"panic":      rec,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString(RequestIDKey),
				}).Error("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := Classify(err)
		entry := logger.WithError(err).WithFields(logrus.Fields{
			"status":     status,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		})
		switch {
		case service.IsUpstream(err):
			entry.Error("payment provider request failed")
		case service.IsSignature(err):
			entry.Warn("webhook signature rejected")
		case service.IsValidation(err):
			entry.Info("request rejected")
		default:
			entry.Error("request failed")
		}

		c.JSON(status, ErrorResponse{Error: message})
	}
}

// Classify maps an error onto the HTTP status and client-facing message.
func Classify(err error) (int, string) {
	var (
		validation *service.ValidationError
		upstream   *service.UpstreamError
		signature  *service.SignatureError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.As(err, &signature):
		return http.StatusBadRequest, "Webhook Error: " + signature.Err.Error()
	case errors.As(err, &upstream):
		return http.StatusInternalServerError, upstream.Err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
