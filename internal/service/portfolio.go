package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-portfolio/internal/assembler"
	"github.com/pribylovaa/go-portfolio/internal/cache"
	"github.com/pribylovaa/go-portfolio/internal/models"
	"github.com/pribylovaa/go-portfolio/internal/normalize"
	"github.com/pribylovaa/go-portfolio/pkg/log"
)

const cacheKindPortfolio = "portfolio"

// Portfolio возвращает собранную публичную страницу пользователя.
//
// Поведение:
//   - пустой username -> ErrInvalidArgument;
//   - свежая запись кэша отдаётся без обращения к апстриму;
//   - профиль не загрузился -> ErrUnavailable;
//   - иначе страница собирается всегда, даже из пустых коллекций.
func (s *Service) Portfolio(ctx context.Context, username string) (*models.Portfolio, error) {
	const op = "service/portfolio/Portfolio"

	start := time.Now()

	name, err := checkUsername(username)
	if err != nil {
		log.From(ctx).Warn("invalid argument: username", slog.String("op", op))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Апстрим различает регистр username, поэтому ключ - имя как есть.
	key := cache.PortfolioKey(name)
	if p, ok := s.cachedPortfolio(ctx, key); ok {
		return p, nil
	}

	b, err := s.Fetch(ctx, name)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			s.metrics.Assembled(string(models.StateUnavailable), time.Since(start))
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := Build(b)
	s.metrics.Assembled(string(models.StateRendered), time.Since(start))

	// Страницу с деградировавшими именами навыков не кэшируем.
	if ttl := s.cfg.Cache.PortfolioTTL; s.cache != nil && ttl > 0 && !b.CatalogFailed {
		if err := cache.SetJSON(ctx, s.cache, key, p, ttl); err != nil {
			log.From(ctx).Warn("cache_set_failed",
				slog.String("op", op),
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}

	return &p, nil
}

// Build нормализует сырые коллекции и собирает страницу. Чистая функция.
func Build(b *Bundle) models.Portfolio {
	var profile models.Profile
	if b.Profile != nil {
		profile = normalize.Profile(*b.Profile)
	}

	return assembler.Portfolio(profile, assembler.Input{
		Sections:    normalize.Sections(b.Sections),
		Skills:      normalize.Skills(b.Skills, b.Catalog),
		Projects:    normalize.Projects(b.Projects),
		Education:   normalize.Education(b.Education),
		Experience:  normalize.Experience(b.Experience),
		SocialLinks: normalize.SocialLinks(b.SocialLinks),
	})
}

func (s *Service) cachedPortfolio(ctx context.Context, key string) (*models.Portfolio, bool) {
	if s.cache == nil || s.cfg.Cache.PortfolioTTL <= 0 {
		return nil, false
	}

	p, ok, err := cache.GetJSON[models.Portfolio](ctx, s.cache, key)
	if err != nil {
		log.From(ctx).Warn("cache_get_failed", slog.String("key", key), slog.String("err", err.Error()))
	}
	s.metrics.CacheLookup(cacheKindPortfolio, ok)

	if !ok {
		return nil, false
	}

	return &p, true
}
