package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pribylovaa/go-portfolio/internal/models"
)

// Тесты автомата страницы.
//
// Покрытие:
//  - loading -> rendered и loading -> unavailable;
//  - поздний результат для устаревшего username отбрасывается (медленный A после B);
//  - новая навигация отменяет контекст предыдущей загрузки;
//  - Close отбрасывает результат загрузки в полёте;
//  - onChange видит каждую смену состояния в порядке применения.

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	p   *models.Portfolio
	err error
}

// gatedLoader отдаёт результат для username только после release(username).
type gatedLoader struct {
	mu    sync.Mutex
	gates map[string]chan result
	ctxs  map[string]context.Context
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{gates: map[string]chan result{}, ctxs: map[string]context.Context{}}
}

func (l *gatedLoader) gate(username string) chan result {
	l.mu.Lock()
	defer l.mu.Unlock()

	g, ok := l.gates[username]
	if !ok {
		g = make(chan result, 1)
		l.gates[username] = g
	}
	return g
}

func (l *gatedLoader) Portfolio(ctx context.Context, username string) (*models.Portfolio, error) {
	l.mu.Lock()
	l.ctxs[username] = ctx
	l.mu.Unlock()

	r := <-l.gate(username)
	return r.p, r.err
}

func (l *gatedLoader) release(username string, p *models.Portfolio, err error) {
	l.gate(username) <- result{p: p, err: err}
}

func (l *gatedLoader) ctx(username string) context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctxs[username]
}

func page(username string) *models.Portfolio {
	return &models.Portfolio{Profile: models.Profile{Username: username}}
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("load did not settle")
	}
}

func TestView_LoadingThenRendered(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	done := v.Navigate(context.Background(), "alice")
	require.Equal(t, Snapshot{Username: "alice", State: models.StateLoading}, v.State())

	l.release("alice", page("alice"), nil)
	wait(t, done)

	s := v.State()
	require.Equal(t, models.StateRendered, s.State)
	require.Equal(t, "alice", s.Portfolio.Profile.Username)
	require.Empty(t, s.Message)
}

func TestView_ErrorIsUnavailable(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	done := v.Navigate(context.Background(), "ghost")
	l.release("ghost", nil, errors.New("not found"))
	wait(t, done)

	s := v.State()
	require.Equal(t, models.StateUnavailable, s.State)
	require.Equal(t, UnavailableMessage, s.Message)
	require.Nil(t, s.Portfolio)
}

// Медленный ответ для A приходит после перехода на B и не перетирает B.
func TestView_StaleResultDiscarded(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	doneA := v.Navigate(context.Background(), "a")
	doneB := v.Navigate(context.Background(), "b")

	l.release("b", page("b"), nil)
	wait(t, doneB)
	require.Equal(t, "b", v.State().Portfolio.Profile.Username)

	l.release("a", page("a"), nil)
	wait(t, doneA)

	s := v.State()
	require.Equal(t, "b", s.Username)
	require.Equal(t, models.StateRendered, s.State)
	require.Equal(t, "b", s.Portfolio.Profile.Username)
}

// Устаревший результат отбрасывается и тогда, когда текущая загрузка ещё идёт.
func TestView_StaleResultWhileCurrentLoading(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	doneA := v.Navigate(context.Background(), "a")
	doneB := v.Navigate(context.Background(), "b")

	l.release("a", nil, errors.New("late failure"))
	wait(t, doneA)
	require.Equal(t, Snapshot{Username: "b", State: models.StateLoading}, v.State())

	l.release("b", page("b"), nil)
	wait(t, doneB)
	require.Equal(t, models.StateRendered, v.State().State)
}

func TestView_NavigateCancelsPrevious(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	doneA := v.Navigate(context.Background(), "a")
	require.Eventually(t, func() bool { return l.ctx("a") != nil }, time.Second, 5*time.Millisecond)

	doneB := v.Navigate(context.Background(), "b")

	select {
	case <-l.ctx("a").Done():
	case <-time.After(time.Second):
		t.Fatal("previous load was not canceled")
	}

	l.release("a", nil, context.Canceled)
	l.release("b", page("b"), nil)
	wait(t, doneA)
	wait(t, doneB)
	require.Equal(t, "b", v.State().Username)
}

func TestView_CloseDiscardsInFlight(t *testing.T) {
	l := newGatedLoader()
	v := New(l, nil, nil)

	done := v.Navigate(context.Background(), "a")
	v.Close()

	l.release("a", page("a"), nil)
	wait(t, done)
	require.Equal(t, models.StateLoading, v.State().State)
}

func TestView_OnChangeSequence(t *testing.T) {
	l := newGatedLoader()

	var (
		mu     sync.Mutex
		states []models.ViewState
	)
	v := New(l, nil, func(s Snapshot) {
		mu.Lock()
		states = append(states, s.State)
		mu.Unlock()
	})

	done := v.Navigate(context.Background(), "a")
	l.release("a", page("a"), nil)
	wait(t, done)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []models.ViewState{models.StateLoading, models.StateRendered}, states)
}
