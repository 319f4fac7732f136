package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/go-portfolio/internal/cache"
	"github.com/pribylovaa/go-portfolio/internal/clients/profileapi"
	"github.com/pribylovaa/go-portfolio/internal/clients/transport"
	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
	"github.com/pribylovaa/go-portfolio/pkg/log"
)

const cacheKindCatalog = "catalog"

// Catalog возвращает нормализованный каталог навыков (с кэшем).
func (s *Service) Catalog(ctx context.Context) ([]models.CatalogSkill, error) {
	const op = "service/skills/Catalog"

	c, err := s.loadCatalog(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}

		log.From(ctx).Error("upstream error on SkillCatalog", slog.String("op", op), slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
	}

	return c, nil
}

// catalogOrEmpty - каталог для разрешения имён навыков; без него имена
// деградируют до "Skill ID: <id>", поэтому ошибка не фатальна.
// Второе значение - true, если каталог подменён пустым из-за ошибки.
func (s *Service) catalogOrEmpty(ctx context.Context) ([]models.CatalogSkill, bool) {
	c, err := s.loadCatalog(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.From(ctx).Warn("upstream_fetch_failed",
				slog.String("resource", ResourceCatalog),
				slog.String("err", err.Error()),
			)
		}

		return []models.CatalogSkill{}, true
	}

	return c, false
}

// loadCatalog - кэш, затем апстрим. Ошибку апстрима не логирует: это делает вызывающий.
func (s *Service) loadCatalog(ctx context.Context) ([]models.CatalogSkill, error) {
	ttl := s.cfg.Cache.CatalogTTL
	useCache := s.cache != nil && ttl > 0

	if useCache {
		c, ok, err := cache.GetJSON[[]models.CatalogSkill](ctx, s.cache, cache.CatalogKey)
		if err != nil {
			log.From(ctx).Warn("cache_get_failed", slog.String("key", cache.CatalogKey), slog.String("err", err.Error()))
		}
		s.metrics.CacheLookup(cacheKindCatalog, ok)

		if ok {
			return c, nil
		}
	}

	recs, err := s.api.SkillCatalog(ctx)
	s.metrics.FetchResult(ResourceCatalog, err)
	if err != nil {
		return nil, err
	}

	c := normalize.Catalog(recs)

	if useCache {
		if err := cache.SetJSON(ctx, s.cache, cache.CatalogKey, c, ttl); err != nil {
			log.From(ctx).Warn("cache_set_failed", slog.String("key", cache.CatalogKey), slog.String("err", err.Error()))
		}
	}

	return c, nil
}

// AddSkill привязывает навык к профилю владельца токена из контекста.
//
// Валидация (без обращения к апстриму при ошибке):
//   - токен обязателен -> иначе ErrUnauthenticated;
//   - SkillRef приводится к положительному id (число, строка из цифр или
//     подпись каталога "Name (Category)") -> иначе ErrInvalidArgument;
//   - proficiency в [1,5] (0 - значение по умолчанию 3), years_experience в [0,80].
//
// Ошибки апстрима: 401 -> ErrUnauthenticated, прочие ответы -> ErrUpstream.
func (s *Service) AddSkill(ctx context.Context, in models.AddSkillInput) (*models.Skill, error) {
	const op = "service/skills/AddSkill"

	lg := log.From(ctx).With("op", op, "skill_ref", in.SkillRef)

	if transport.AuthToken(ctx) == "" {
		lg.Warn("unauthenticated: missing token")

		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	var catalog []models.CatalogSkill
	if needsCatalog(in.SkillRef) {
		catalog, _ = s.catalogOrEmpty(ctx)
	}

	id, err := normalize.CoerceSkillID(in.SkillRef, catalog)
	if err != nil {
		lg.Warn("invalid argument: skill id", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	write := models.UserSkillWrite{
		SkillID:         id,
		Proficiency:     in.Proficiency,
		YearsExperience: in.YearsExperience,
	}
	if write.Proficiency == 0 {
		write.Proficiency = normalize.DefaultProficiency
	}

	if err := s.validate.Struct(write); err != nil {
		lg.Warn("invalid argument: skill write", slog.String("err", validationMessage(err)))

		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, validationMessage(err))
	}

	rec, err := s.api.AddUserSkill(ctx, write)
	if err != nil {
		var se *profileapi.StatusError
		switch {
		case ctx.Err() != nil:
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case errors.Is(err, profileapi.ErrUnauthenticated):
			lg.Warn("upstream rejected token")

			return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
		case errors.As(err, &se):
			lg.Warn("upstream rejected skill write", slog.Int("status", se.Code), slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w: %s", op, ErrUpstream, se.Message)
		default:
			lg.Error("upstream error on AddUserSkill", slog.String("err", err.Error()))

			return nil, fmt.Errorf("%s: %w", op, ErrUpstream)
		}
	}

	if catalog == nil {
		catalog, _ = s.catalogOrEmpty(ctx)
	}

	// Апстрим может вернуть неполную запись: добиваем тем, что отправили.
	if rec == nil {
		rec = &profileapi.SkillRecord{}
	}
	if !rec.SkillID.Set && !rec.SkillIDSnake.Set {
		rec.SkillID = profileapi.FlexInt{Value: id, Set: true}
	}
	if !rec.Proficiency.Set {
		rec.Proficiency = profileapi.FlexInt{Value: int64(write.Proficiency), Set: true}
	}
	if !rec.YearsExp.Set && !rec.YearsExpSnake.Set {
		rec.YearsExp = profileapi.FlexFloat{Value: write.YearsExperience, Set: true}
	}

	skill := normalize.ResolveSkill(*rec, catalog)
	lg.Info("skill_added", slog.Int64("skill_id", skill.SkillID))

	return &skill, nil
}

// needsCatalog - ссылка на навык не является записью числа и требует поиска в каталоге.
func needsCatalog(ref string) bool {
	v := strings.TrimSpace(ref)
	return v != "" && strings.Trim(v, "0123456789") != ""
}

// validationMessage - "field: tag" по каждой нарушенной проверке.
func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}

	parts := make([]string, 0, len(ves))
	for _, fe := range ves {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}

	return strings.Join(parts, "; ")
}
