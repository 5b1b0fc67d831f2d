package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/RupeshSangoju/new-rephrase/internal/logging"
)

// Recover turns a panic in a handler into a plain 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logging.GetLogger().WithFields(logrus.Fields{
				"request_id": RequestIDFromContext(r.Context()),
				"panic":      rec,
				"stack":      string(debug.Stack()),
			}).Error("handler panic")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
