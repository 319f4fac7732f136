package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrRequestTimeout - причина (context.Cause) отмены по общему дедлайну запроса.
var ErrRequestTimeout = errors.New("request timeout")

// Timeout ограничивает весь запрос к шлюзу: сборку портфолио вместе со всеми
// вызовами апстрима. Уже заданный дедлайн не сдвигается; d <= 0 отключает мидлвар.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeoutCause(ctx, d, ErrRequestTimeout)
				defer cancel()
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
