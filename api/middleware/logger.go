package middleware

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// SetupLoggerMiddleware logs every request through the shared gecho logger,
// keeping access lines in the same format as the service logs.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	return gecho.Handlers.CreateLoggingMiddleware(mw.logger)
}
