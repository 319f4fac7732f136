package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
	"github.com/pribylovaa/go-portfolio/pkg/log"
)

// Имена ресурсов в логах и метриках.
const (
	ResourceProfile     = "profile"
	ResourceProjects    = "projects"
	ResourceSkills      = "skills"
	ResourceEducation   = "education"
	ResourceExperience  = "experience"
	ResourceSocialLinks = "social_links"
	ResourceSections    = "sections"
	ResourceCatalog     = "catalog"
)

var (
	errNoProfile = errors.New("empty profile response")
	errPrivate   = errors.New("profile is not public")
)

// Bundle - сырые коллекции одного портфолио. Срезы никогда не nil.
type Bundle struct {
	Profile     *profileapi.ProfileRecord
	Projects    []profileapi.ProjectRecord
	Skills      []profileapi.SkillRecord
	Education   []profileapi.EducationRecord
	Experience  []profileapi.ExperienceRecord
	SocialLinks []profileapi.SocialLinkRecord
	Sections    []profileapi.SectionRecord
	Catalog     []models.CatalogSkill

	// CatalogFailed - каталог не загрузился, имена навыков деградировали.
	CatalogFailed bool
}

// Fetch загружает семь ресурсов портфолио параллельно (и каталог навыков).
//
// Поведение:
//   - ошибка профиля любого рода (404, 403, транспорт, settings.is_public=false)
//     -> ErrUnavailable, остальное отбрасывается;
//   - ошибка любого другого ресурса -> пустой список, Warn в лог и счётчик ошибок;
//   - ровно один запрос на ресурс, без ретраев;
//   - отмена родительского контекста возвращается как есть (context.Canceled/DeadlineExceeded).
func (s *Service) Fetch(ctx context.Context, username string) (*Bundle, error) {
	const op = "service/fetch/Fetch"

	name, err := checkUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx).With("op", op, "username", name)

	var b Bundle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.api.PublicProfile(gctx, name)
		s.metrics.FetchResult(ResourceProfile, err)
		if err != nil {
			return err
		}
		if p == nil {
			return errNoProfile
		}
		// Без settings апстрим уже закрыл приватный профиль ответом 403.
		if st := normalize.Settings(p.Settings); st != nil && !st.IsPublic {
			return errPrivate
		}

		b.Profile = p
		return nil
	})

	g.Go(optional(gctx, s, lg, ResourceProjects, &b.Projects, func(ctx context.Context) ([]profileapi.ProjectRecord, error) {
		return s.api.PublicProjects(ctx, name)
	}))
	g.Go(optional(gctx, s, lg, ResourceSkills, &b.Skills, func(ctx context.Context) ([]profileapi.SkillRecord, error) {
		return s.api.PublicSkills(ctx, name)
	}))
	g.Go(optional(gctx, s, lg, ResourceEducation, &b.Education, func(ctx context.Context) ([]profileapi.EducationRecord, error) {
		return s.api.PublicEducation(ctx, name)
	}))
	g.Go(optional(gctx, s, lg, ResourceExperience, &b.Experience, func(ctx context.Context) ([]profileapi.ExperienceRecord, error) {
		return s.api.PublicExperience(ctx, name)
	}))
	g.Go(optional(gctx, s, lg, ResourceSocialLinks, &b.SocialLinks, func(ctx context.Context) ([]profileapi.SocialLinkRecord, error) {
		return s.api.PublicSocialLinks(ctx, name)
	}))
	g.Go(optional(gctx, s, lg, ResourceSections, &b.Sections, func(ctx context.Context) ([]profileapi.SectionRecord, error) {
		return s.api.PublicSections(ctx, name)
	}))

	g.Go(func() error {
		b.Catalog, b.CatalogFailed = s.catalogOrEmpty(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}

		lg.Info("portfolio_unavailable", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	return &b, nil
}

// optional - загрузка необязательного ресурса: ошибка заменяется пустым списком.
// Ошибки, вызванные отменой группы (упал профиль), не логируются и не считаются.
func optional[T any](ctx context.Context, s *Service, lg *slog.Logger, resource string, dst *[]T, call func(context.Context) ([]T, error)) func() error {
	return func() error {
		v, err := call(ctx)
		if err != nil {
			v = nil
			if ctx.Err() == nil {
				s.metrics.FetchResult(resource, err)
				lg.Warn("upstream_fetch_failed",
					slog.String("resource", resource),
					slog.String("err", err.Error()),
				)
			}
		} else {
			s.metrics.FetchResult(resource, nil)
		}

		if v == nil {
			v = []T{}
		}

		*dst = v
		return nil
	}
}

// checkUsername: пустое имя и "."/".." недопустимы - последние схлопнулись бы в пути апстрима.
func checkUsername(username string) (string, error) {
	name := strings.TrimSpace(username)

	switch name {
	case "", ".", "..":
		return "", fmt.Errorf("%w: username %q", ErrInvalidArgument, username)
	}

	return name, nil
}
