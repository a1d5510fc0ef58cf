package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RequestID assigns a UUID to requests that arrive without an X-Request-ID
// and echoes it back in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				req.Header.Set(echo.HeaderXRequestID, requestID)
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(c)
		}
	}
}

// RateLimit limits each client IP to rps requests per second. A zero rps
// disables limiting.
func RateLimit(rps float64, log zerolog.Logger) echo.MiddlewareFunc {
	burst := int(rps * 2)
	if burst < 1 {
		burst = 1
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(
			echomw.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(rps),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			},
		),
		Skipper: func(c echo.Context) bool {
			return rps <= 0 || c.Path() == "/healthz"
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			log.Warn().
				Str("ip", identifier).
				Str("path", c.Request().URL.Path).
				Err(err).
				Msg("rate limit exceeded")
			return c.String(http.StatusTooManyRequests, "Too many requests")
		},
	})
}

// HandleErrors hands handler errors to echo's HTTPErrorHandler in place,
// so middleware wrapping it sees the final status code.
func HandleErrors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

// Standard returns the net/http middleware stack wrapped for echo, followed
// by HandleErrors.
func Standard(log zerolog.Logger) []echo.MiddlewareFunc {
	stack := Chain(
		PanicRecovery(log),
		RequestLogger(log),
		CORS,
		SecurityHeaders,
	)
	return []echo.MiddlewareFunc{
		echo.WrapMiddleware(stack),
		HandleErrors(),
	}
}
