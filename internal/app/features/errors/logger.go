package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error rendering so
// handlers report failures in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	e.render(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs err and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	e.render(w, r, http.StatusBadRequest, "Invalid request", userMsg, backURL)
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_generic", pageData{
		Title:   title,
		Message: msg,
		BackURL: backURL,
	})
}
