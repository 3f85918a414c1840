package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
	"github.com/retailnet/pos-admin/internal/pkg/metrics"
)

// LoginThrottle rejects clients that exhausted their failed logins and counts
// each new failure. Successful logins are not counted. Limiter outages fail
// open.
func LoginThrottle(limiter ports.LoginLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			blocked, err := limiter.Blocked(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("client", key).Msg("login limiter unavailable")
			}
			if blocked {
				metrics.LoginThrottledTotal.Inc()
				return domain.ErrTooManyAttempts
			}

			err = next(c)
			if errors.Is(err, domain.ErrInvalidCredentials) {
				if rerr := limiter.RecordFailure(ctx, key); rerr != nil {
					log.Warn().Err(rerr).Str("client", key).Msg("record login failure")
				}
			}
			return err
		}
	}
}
