package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/renameio/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"unitconv/internal/convert"
	"unitconv/internal/unit"
)

const (
	waitFor = 5 * time.Second
	tick    = 10 * time.Millisecond
)

func scaleConfig(factor string) string {
	return `
units:
  - name: Metre
    aliases: [m]
  - name: Centimetre
    aliases: [cm]
conversions_scale:
  - {from: Metre, to: Centimetre, factor: ` + factor + `}
`
}

func writeConfig(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
}

func convertOrFail(t *testing.T, c *convert.Converter, v float64, from, to string) float64 {
	t.Helper()

	got, err := c.Convert(v, from, to)
	require.NoError(t, err)

	return got
}

func TestNewLoadsInitialConverter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	h, err := New(path)
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, path, h.Path())
	assert.InDelta(t, 250.0, convertOrFail(t, h.Current(), 2.5, "m", "cm"), 1e-12)
}

func TestNewFailsOnInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("0"))

	h, err := New(path)
	assert.Nil(t, h)
	require.Error(t, err)

	_, err = New(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReloadKeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	h, err := New(path)
	require.NoError(t, err)

	before := h.Current()

	writeConfig(t, path, scaleConfig("100")+"  - {from: Metre, to: Inch, factor: 39.37}\n")
	err = h.Reload()
	require.ErrorIs(t, err, unit.ErrUnknownUnit)
	assert.Same(t, before, h.Current())

	writeConfig(t, path, scaleConfig("1000"))
	require.NoError(t, h.Reload())
	assert.NotSame(t, before, h.Current())
	assert.InDelta(t, 1000.0, convertOrFail(t, h.Current(), 1, "m", "cm"), 1e-12)
}

func TestWatchSwapsConverter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	updates := make(chan *convert.Converter, 4)
	core, logs := observer.New(zap.InfoLevel)

	h, err := New(path,
		WithDebounce(20*time.Millisecond),
		WithListener(updates),
		WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Start(context.Background()))
	// A second Start is a no-op.
	require.NoError(t, h.Start(context.Background()))

	writeConfig(t, path, scaleConfig("1000"))

	var next *convert.Converter
	select {
	case next = <-updates:
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for reload")
	}

	assert.Same(t, next, h.Current())
	assert.InDelta(t, 1000.0, convertOrFail(t, h.Current(), 1, "m", "cm"), 1e-12)
	assert.Positive(t, logs.FilterField(zap.String("event", "config.reload_success")).Len())
}

func TestWatchIgnoresInvalidUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	core, logs := observer.New(zap.InfoLevel)

	h, err := New(path, WithDebounce(20*time.Millisecond), WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer h.Close()

	before := h.Current()
	require.NoError(t, h.Start(context.Background()))

	writeConfig(t, path, "units: [")

	require.Eventually(t, func() bool {
		return logs.FilterField(zap.String("event", "config.reload_failed")).Len() > 0
	}, waitFor, tick)

	assert.Same(t, before, h.Current())
	assert.InDelta(t, 100.0, convertOrFail(t, h.Current(), 1, "m", "cm"), 1e-12)
}

func TestWatchSeesAtomicReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	h, err := New(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Start(context.Background()))
	require.NoError(t, renameio.WriteFile(path, []byte(scaleConfig("10")), 0o600))

	require.Eventually(t, func() bool {
		got, err := h.Current().Convert(1, "m", "cm")
		return err == nil && got == 10
	}, waitFor, tick)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	core, logs := observer.New(zap.DebugLevel)

	h, err := New(path, WithDebounce(10*time.Millisecond), WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Start(context.Background()))
	writeConfig(t, filepath.Join(dir, "other.yaml"), "not: relevant")

	assert.Never(t, func() bool {
		return logs.FilterField(zap.String("event", "config.file_changed")).Len() > 0
	}, 200*time.Millisecond, tick)
}

func TestCloseStopsWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	h, err := New(path)
	require.NoError(t, err)
	require.NoError(t, h.Start(context.Background()))

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Start(context.Background()), ErrClosed)
}

func TestContextCancelStopsWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	core, logs := observer.New(zap.InfoLevel)

	h, err := New(path, WithLogger(zap.New(core)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.Start(ctx))
	cancel()

	require.Eventually(t, func() bool {
		return logs.FilterField(zap.String("event", "config.watcher_stopped")).Len() > 0
	}, waitFor, tick)

	require.NoError(t, h.Close())
}

func TestCloseWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeConfig(t, path, scaleConfig("100"))

	h, err := New(path)
	require.NoError(t, err)
	assert.NoError(t, h.Close())
}
