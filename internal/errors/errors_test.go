package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-portfolio/internal/normalize"
	"github.com/pribylovaa/go-portfolio/internal/service"
)

func wrap(err error) error { return fmt.Errorf("service/op: %w", err) }

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"unavailable", wrap(service.ErrUnavailable), http.StatusNotFound, "portfolio_unavailable"},
		{"invalid_argument", wrap(service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"unauth", wrap(service.ErrUnauthenticated), http.StatusUnauthorized, "unauthenticated"},
		{"upstream", wrap(service.ErrUpstream), http.StatusBadGateway, "bad_gateway"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", wrap(service.ErrInternal), http.StatusInternalServerError, "internal"},
		{"unknown", stderrors.New("x"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Невалидный id навыка отдаёт своё сообщение, остальные детали не утекают.
func TestToHTTP_InvalidSkillID_Message(t *testing.T) {
	err := fmt.Errorf("op: %w: %w", service.ErrInvalidArgument, fmt.Errorf("%w: %q", normalize.ErrInvalidSkillID, "abc"))

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, gotStatus)
	require.Equal(t, "skill id must be a valid number", resp.Error.Message)
}

func TestToHTTP_UnavailableHidesCause(t *testing.T) {
	_, resp := ToHTTP(fmt.Errorf("fetch: %w (http 403): This portfolio is private", service.ErrUnavailable))
	require.Equal(t, "portfolio is not available", resp.Error.Message)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_SetsRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/portfolios/x", nil)
	r.Header.Set("X-Request-Id", "rid-1")
	w := httptest.NewRecorder()

	WriteError(w, r, wrap(service.ErrUnavailable))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, APIError{Code: "portfolio_unavailable", Message: "portfolio is not available", RequestID: "rid-1"}, resp.Error)
}
