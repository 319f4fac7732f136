// transport - цепочка http.RoundTripper для исходящих вызовов в profile API:
// metadata -> timeout -> logging.
package transport

import (
	"context"
	"net/http"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	CtxAuthToken CtxKey = "auth_token"
	ctxAnonymous CtxKey = "anonymous"
)

// RoundTripperFunc - адаптер функции к http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Middleware оборачивает RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain применяет обёртки в порядке перечисления: первая - самая внешняя.
func Chain(rt http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}

	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}

	return rt
}

// Anonymous помечает контекст: Authorization не отправляется, даже если
// токен в контексте есть. Публичные чтения портфолио идут без токена.
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxAnonymous, true)
}

// WithAuthToken кладёт bearer-токен в контекст.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxAuthToken, token)
}

// AuthToken достаёт токен из контекста.
func AuthToken(ctx context.Context) string {
	tok, _ := ctx.Value(CtxAuthToken).(string)
	return tok
}

// WithMetadata добавляет в исходящий запрос заголовки:
//   - X-Request-Id (если есть в контексте),
//   - Authorization: Bearer <token> (если есть в контексте и запрос не анонимный),
//   - User-Agent (если передан параметром).
//
// Исходный запрос не меняется: RoundTripper обязан работать с клоном.
func WithMetadata(userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			ctx := r.Context()
			r = r.Clone(ctx)

			if rid, _ := ctx.Value(CtxRequestID).(string); rid != "" {
				r.Header.Set("X-Request-Id", rid)
			}
			if anon, _ := ctx.Value(ctxAnonymous).(bool); !anon {
				if tok := AuthToken(ctx); tok != "" {
					r.Header.Set("Authorization", "Bearer "+tok)
				}
			}
			if userAgent != "" {
				r.Header.Set("User-Agent", userAgent)
			}

			return next.RoundTrip(r)
		})
	}
}
