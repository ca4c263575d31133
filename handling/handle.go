package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs an unexpected failure and answers with the generic 500
// envelope. The caller skip points the log line at the handler that failed,
// not at this helper.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
	return nil
}
