// service содержит бизнес-логику шлюза портфолио:
// - параллельная загрузка ресурсов портфолио из profile API;
// - пайплайн нормализация -> сборка секций с кэшированием результата;
// - привязка навыка к профилю с приведением и валидацией id.
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/go-portfolio/internal/cache"
	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/config"
	"github.com/pribylovaa/go-portfolio/internal/metrics"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

var (
	// ErrInvalidArgument - некорректные входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable - портфолио нельзя показать: нет пользователя, приватное или профиль не загрузился.
	ErrUnavailable = errors.New("portfolio unavailable")
	// ErrUnauthenticated - нет токена для операции записи.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUpstream - апстрим отверг запрос или не ответил.
	ErrUpstream = errors.New("upstream failure")
	// ErrInternal - внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// ProfileAPI - то, что сервису нужно от клиента profile API.
type ProfileAPI interface {
	PublicProfile(ctx context.Context, username string) (*profileapi.ProfileRecord, error)
	PublicProjects(ctx context.Context, username string) ([]profileapi.ProjectRecord, error)
	PublicSkills(ctx context.Context, username string) ([]profileapi.SkillRecord, error)
	PublicEducation(ctx context.Context, username string) ([]profileapi.EducationRecord, error)
	PublicExperience(ctx context.Context, username string) ([]profileapi.ExperienceRecord, error)
	PublicSocialLinks(ctx context.Context, username string) ([]profileapi.SocialLinkRecord, error)
	PublicSections(ctx context.Context, username string) ([]profileapi.SectionRecord, error)
	SkillCatalog(ctx context.Context) ([]profileapi.CatalogRecord, error)
	AddUserSkill(ctx context.Context, in models.UserSkillWrite) (*profileapi.SkillRecord, error)
}

// Service - описывает бизнес-логику шлюза.
type Service struct {
	cfg      *config.Config
	api      ProfileAPI
	cache    cache.Store
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// New создает новый экземпляр Service. store и m могут быть nil.
func New(api ProfileAPI, store cache.Store, m *metrics.Metrics, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return &Service{
		cfg:      cfg,
		api:      api,
		cache:    store,
		metrics:  m,
		validate: validator.New(),
	}
}
