package middleware

import (
	"net/http"
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/clients/transport"
)

// AuthBearer извлекает Bearer-токен из Authorization и кладёт "сырой" токен
// в контекст (transport.WithAuthToken). Проверку токена делает апстрим.
func AuthBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearer(r.Header.Get("Authorization")); ok {
				r = r.WithContext(transport.WithAuthToken(r.Context(), token))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearer - схема сравнивается без учёта регистра (RFC 7235).
func bearer(auth string) (string, bool) {
	const prefix = "bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}
