// view - состояние публичной страницы портфолио на стороне клиента:
// loading -> rendered | unavailable. Каждая навигация получает поколение;
// результат применяется, только если его поколение всё ещё текущее.
package view

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pribylovaa/go-portfolio/internal/models"
)

// UnavailableMessage - единое сообщение для отсутствующего, приватного и не загрузившегося портфолио.
const UnavailableMessage = "This portfolio doesn't exist or is not public."

// Loader - источник собранной страницы (service.Service).
type Loader interface {
	Portfolio(ctx context.Context, username string) (*models.Portfolio, error)
}

// Snapshot - то, что сейчас показывает страница.
type Snapshot struct {
	Username  string
	State     models.ViewState
	Portfolio *models.Portfolio
	Message   string
}

// View - конечный автомат страницы. Безопасен для конкурентного использования.
type View struct {
	loader   Loader
	log      *slog.Logger
	onChange func(Snapshot)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot
}

// New создаёт View. onChange (может быть nil) вызывается под блокировкой
// при каждой смене состояния, поэтому должен быть быстрым и не трогать View.
func New(loader Loader, log *slog.Logger, onChange func(Snapshot)) *View {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &View{
		loader:   loader,
		log:      log,
		onChange: onChange,
		snap:     Snapshot{State: models.StateLoading},
	}
}

// Navigate переводит страницу в loading для username, отменяет предыдущую
// загрузку и запускает новую. Канал закрывается, когда загрузка завершилась
// (применена или отброшена как устаревшая).
func (v *View) Navigate(ctx context.Context, username string) <-chan struct{} {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}

	v.gen++
	gen := v.gen

	lctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.setLocked(Snapshot{Username: username, State: models.StateLoading})
	v.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		p, err := v.loader.Portfolio(lctx, username)
		v.apply(gen, username, p, err)
	}()

	return done
}

// State - текущий снимок.
func (v *View) State() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snap
}

// Close отменяет загрузку в полёте; её результат будет отброшен.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.gen++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *View) apply(gen uint64, username string, p *models.Portfolio, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		v.log.Debug("stale_result_discarded", slog.String("username", username))
		return
	}

	v.cancel = nil

	if err != nil || p == nil {
		if err != nil {
			v.log.Info("portfolio_unavailable", slog.String("username", username), slog.String("err", err.Error()))
		}

		v.setLocked(Snapshot{Username: username, State: models.StateUnavailable, Message: UnavailableMessage})
		return
	}

	v.setLocked(Snapshot{Username: username, State: models.StateRendered, Portfolio: p})
}

func (v *View) setLocked(s Snapshot) {
	v.snap = s
	if v.onChange != nil {
		v.onChange(s)
	}
}
