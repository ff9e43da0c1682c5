package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest"
)

// Timeout bounds a request. The deadline also reaches the outbound Asaas
// calls through the request context.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body := timeoutBody()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			// TimeoutHandler writes the body as text/plain unless told otherwise.
			w.Header().Set("Content-Type", "application/json")
			http.TimeoutHandler(next, timeout, body).ServeHTTP(w, r)
		})
	}
}

func timeoutBody() string {
	svcErr := application.NewTimeoutError(context.DeadlineExceeded)
	b, _ := json.Marshal(rest.ErrorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
	})
	return string(b)
}
