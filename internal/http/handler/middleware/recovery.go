package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

const recoveredBody = `{"error":"unexpected error occurred"}`

type RecoveryMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoveryMiddleware(logger *zap.SugaredLogger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logs: logger,
	}
}

func (m *RecoveryMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logs.Errorw("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(recoveredBody))
		}()

		next.ServeHTTP(w, r)
	})
}
