// handlers - REST-эндпойнты шлюза поверх сервисного слоя.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/service"
)

// maxBodyBytes - лимит тела входящих запросов.
const maxBodyBytes = 64 << 10

// Portfolios - то, что хендлерам нужно от сервисного слоя.
type Portfolios interface {
	Portfolio(ctx context.Context, username string) (*models.Portfolio, error)
	Catalog(ctx context.Context) ([]models.CatalogSkill, error)
	AddSkill(ctx context.Context, in models.AddSkillInput) (*models.Skill, error)
}

// Handlers агрегирует зависимости.
type Handlers struct {
	Service Portfolios
}

func New(s Portfolios) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля и хвост после объекта.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after json object")
	}

	return nil
}

// errInvalidArgument - локальная ошибка парсинга -> 400.
func errInvalidArgument(reason string) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidArgument, reason)
}
