package middleware

import (
	"net/http"

	"inkwell/internal/adapters/http/response"
	"inkwell/internal/logger"
)

func Recover(writer response.ResponseWriter, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("http: handler panic", "path", r.URL.Path, "panic", rec)
					writer.WriteError(w, http.StatusInternalServerError, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
