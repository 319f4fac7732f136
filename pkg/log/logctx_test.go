package log

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты pkg/log.
//
// Покрытие:
//  - From без логгера в контексте -> slog.Default();
//  - Into/From round-trip;
//  - устойчивость к «мусорным» значениям и *slog.Logger(nil);
//  - With: атрибуты попадают в записи, родительский контекст не меняется;
//  - Into не трогает отмену/дедлайн.
//
// Тесты меняют slog.Default(), поэтому без t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// attrHandler запоминает атрибуты, пришедшие через With, и сообщения записей.
type attrHandler struct {
	base []slog.Attr
	msgs *[]string
}

func (h *attrHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *attrHandler) Handle(_ context.Context, r slog.Record) error {
	*h.msgs = append(*h.msgs, r.Message)
	return nil
}

func (h *attrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrHandler{base: append(append([]slog.Attr(nil), h.base...), attrs...), msgs: h.msgs}
}

func (h *attrHandler) WithGroup(string) slog.Handler { return h }

func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

func TestIntoAndFrom_RoundTrip(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
	require.Equal(t, def, From(context.Background()))
}

func TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

func TestWith_EnrichesChildOnly(t *testing.T) {
	var msgs []string
	h := &attrHandler{msgs: &msgs}
	parent := Into(context.Background(), slog.New(h))

	child, l := With(parent, "username", "alice")
	require.Equal(t, l, From(child))
	require.NotEqual(t, From(parent), From(child))

	l.Info("probe")
	require.Equal(t, []string{"probe"}, msgs)

	ch, ok := From(child).Handler().(*attrHandler)
	require.True(t, ok)
	require.Len(t, ch.base, 1)
	require.Equal(t, "username", ch.base[0].Key)

	ph, ok := From(parent).Handler().(*attrHandler)
	require.True(t, ok)
	require.Empty(t, ph.base)
}

func TestInto_PreservesCancellationAndDeadline(t *testing.T) {
	parentDL, cancelDL := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancelDL()

	child := Into(parentDL, newSilent())

	cdl, ok := child.Deadline()
	require.True(t, ok)
	pdl, _ := parentDL.Deadline()
	require.WithinDuration(t, pdl, cdl, time.Millisecond)

	parentCancel, cancel := context.WithCancel(context.Background())
	child2 := Into(parentCancel, newSilent())
	cancel()
	select {
	case <-child2.Done():
		require.ErrorIs(t, child2.Err(), context.Canceled)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Ожидали отмену у дочернего контекста")
	}
}
