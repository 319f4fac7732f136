package transport

import (
	"net/http"
	"time"
)

// Observer - приёмник латентности исходящих вызовов (см. metrics.Metrics).
type Observer interface {
	UpstreamRequest(method string, code int, d time.Duration)
}

// WithMetrics отдаёт в obs метод, HTTP-код (0 при транспортной ошибке) и длительность.
func WithMetrics(obs Observer) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if obs == nil {
			return next
		}

		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			code := 0
			if resp != nil {
				code = resp.StatusCode
			}
			obs.UpstreamRequest(r.Method, code, time.Since(start))

			return resp, err
		})
	}
}
