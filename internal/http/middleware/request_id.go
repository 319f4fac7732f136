package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-portfolio/internal/clients/transport"
)

const (
	headerRequestID = "X-Request-Id"
	maxRequestIDLen = 128
)

// RequestID гарантирует X-Request-Id у каждого запроса. Входящий id берётся,
// если он печатный ASCII не длиннее maxRequestIDLen, иначе выдаётся новый UUID.
// id попадает в заголовки запроса и ответа и в контекст по transport.CtxRequestID,
// откуда его забирает клиент profile API.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validRequestID(id) {
				id = uuid.NewString()
				// errors.WriteError и Logging читают id из заголовка запроса.
				r.Header.Set(headerRequestID, id)
			}
			w.Header().Set(headerRequestID, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), transport.CtxRequestID, id)))
		})
	}
}

// validRequestID: без управляющих символов, чтобы id можно было писать в лог как есть.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
