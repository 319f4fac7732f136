package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-portfolio/internal/errors"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

// portfolioResponse - ответ для отрисованной страницы. Недоступное портфолио
// отдаётся ошибкой 404 portfolio_unavailable, loading существует только на клиенте.
type portfolioResponse struct {
	State     models.ViewState  `json:"state"`
	Portfolio *models.Portfolio `json:"portfolio"`
}

func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	// При непустом RawPath chi маршрутизирует по нему, и сегмент остаётся экранированным.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(username)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument("username"))
			return
		}
		username = unescaped
	}

	p, err := h.Service.Portfolio(r.Context(), username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, portfolioResponse{State: models.StateRendered, Portfolio: p})
}
