package middlewares

import (
	"time"

	"github.com/labstack/echo/v5"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with its outcome and duration.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			entry := logrus.WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
				"took":   time.Since(start).String(),
			})
			if err != nil {
				entry.WithError(err).Warn("Request failed")
				return err
			}
			entry.Info("Request served")
			return nil
		}
	}
}
