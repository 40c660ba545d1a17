package middleware

import (
	deliveryctx "dealroom/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID for log correlation.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle reuses the caller-supplied X-Request-Id when present, otherwise
// assigns a fresh one, and echoes it back on the response.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
		if requestID == "" {
			requestID = deliveryctx.GetRequestID(c)
		}

		deliveryctx.SetRequestID(c, requestID)
		c.SetRequest(c.Request().WithContext(
			deliveryctx.WithRequestID(c.Request().Context(), requestID),
		))
		c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

		return next(c)
	}
}
