// profileapi - REST-клиент внешнего profile API: публичные чтения портфолио,
// каталог навыков и привязка навыка к профилю.
package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-portfolio/internal/clients/transport"
	"github.com/pribylovaa/go-portfolio/internal/config"
	"github.com/pribylovaa/go-portfolio/internal/models"
)

var (
	// ErrNotFound - 404: пользователя нет.
	ErrNotFound = errors.New("not found")
	// ErrForbidden - 403: портфолио приватное.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated - 401 на авторизованных вызовах.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrBadRequest - 400: апстрим отверг тело запроса.
	ErrBadRequest = errors.New("bad request")
	// ErrUpstream - прочие неуспешные ответы и битый JSON.
	ErrUpstream = errors.New("upstream error")
)

// maxBody - ограничение на размер читаемого ответа.
const maxBody = 4 << 20

// Client - клиент profile API. Безопасен для конкурентного использования.
type Client struct {
	base *url.URL
	http *http.Client
}

// New создаёт клиент с переданным http.Client (nil - http.DefaultClient).
func New(baseURL string, hc *http.Client) (*Client, error) {
	const op = "clients/profileapi/New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s: unsupported scheme %q", op, u.Scheme)
	}

	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{base: u, http: hc}, nil
}

// NewFromConfig собирает клиент с цепочкой metadata -> timeout -> metrics -> logging.
func NewFromConfig(cfg config.Config, log *slog.Logger, obs transport.Observer) (*Client, error) {
	rt := transport.Chain(http.DefaultTransport,
		transport.WithMetadata(cfg.Upstream.UserAgent),
		transport.WithTimeout(cfg.Timeouts.Upstream),
		transport.WithMetrics(obs),
		transport.WithLogging(log),
	)

	return New(cfg.Upstream.BaseURL, &http.Client{Transport: rt})
}

func (c *Client) PublicProfile(ctx context.Context, username string) (*ProfileRecord, error) {
	var out ProfileRecord
	if err := c.get(transport.Anonymous(ctx), portfolioPath(username, ""), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) PublicProjects(ctx context.Context, username string) ([]ProjectRecord, error) {
	var out []ProjectRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "projects"), &out)
	return out, err
}

func (c *Client) PublicSkills(ctx context.Context, username string) ([]SkillRecord, error) {
	var out []SkillRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "skills"), &out)
	return out, err
}

func (c *Client) PublicEducation(ctx context.Context, username string) ([]EducationRecord, error) {
	var out []EducationRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "education"), &out)
	return out, err
}

func (c *Client) PublicExperience(ctx context.Context, username string) ([]ExperienceRecord, error) {
	var out []ExperienceRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "experience"), &out)
	return out, err
}

func (c *Client) PublicSocialLinks(ctx context.Context, username string) ([]SocialLinkRecord, error) {
	var out []SocialLinkRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "social-links"), &out)
	return out, err
}

func (c *Client) PublicSections(ctx context.Context, username string) ([]SectionRecord, error) {
	var out []SectionRecord
	err := c.get(transport.Anonymous(ctx), portfolioPath(username, "sections"), &out)
	return out, err
}

// SkillCatalog - общий каталог навыков; токен не нужен.
func (c *Client) SkillCatalog(ctx context.Context) ([]CatalogRecord, error) {
	var out []CatalogRecord
	err := c.get(transport.Anonymous(ctx), []string{"skills"}, &out)
	return out, err
}

// AddUserSkill привязывает навык к профилю владельца токена из контекста.
func (c *Client) AddUserSkill(ctx context.Context, in models.UserSkillWrite) (*SkillRecord, error) {
	const op = "clients/profileapi/AddUserSkill"

	if transport.AuthToken(ctx) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", op, err)
	}

	var out SkillRecord
	if err := c.do(ctx, http.MethodPost, []string{"profile", "skills"}, bytes.NewReader(body), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// portfolioPath - сегменты уже экранированы: JoinPath трактует их как escaped path.
func portfolioPath(username, resource string) []string {
	segs := []string{"portfolios", url.PathEscape(username)}
	if resource != "" {
		segs = append(segs, resource)
	}

	return segs
}

func (c *Client) get(ctx context.Context, segs []string, out any) error {
	return c.do(ctx, http.MethodGet, segs, nil, out)
}

func (c *Client) do(ctx context.Context, method string, segs []string, body io.Reader, out any) error {
	u := c.base.JoinPath(segs...)
	op := "clients/profileapi " + method + " " + u.Path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w", op, statusError(resp.StatusCode, raw))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode: %w: %v", op, ErrUpstream, err)
	}

	return nil
}

// StatusError - неуспешный HTTP-ответ апстрима. Kind - одна из Err*-ошибок пакета.
type StatusError struct {
	Code    int
	Message string
	Kind    error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (http %d)", e.Kind, e.Code)
	}

	return fmt.Sprintf("%v (http %d): %s", e.Kind, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error { return e.Kind }

func statusError(code int, body []byte) error {
	var kind error
	switch code {
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusUnauthorized:
		kind = ErrUnauthenticated
	case http.StatusBadRequest:
		kind = ErrBadRequest
	default:
		kind = ErrUpstream
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}

	return &StatusError{Code: code, Message: msg, Kind: kind}
}
