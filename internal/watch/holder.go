package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"unitconv/internal/convert"
	xlog "unitconv/internal/log"
)

// DefaultDebounce is how long the holder waits after the last file event
// before reloading.
const DefaultDebounce = 250 * time.Millisecond

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("holder is closed")

// Holder holds the current converter and reloads it when the config file
// changes. It is safe for concurrent use.
type Holder struct {
	path     string
	current  atomic.Pointer[convert.Converter]
	logger   *zap.Logger
	debounce time.Duration
	convOpts []convert.Option

	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	listeners []chan<- *convert.Converter
	closed    bool
	done      chan struct{}
}

// Option configures a Holder.
type Option func(*Holder)

// WithLogger sets the holder's logger. It is also passed to every
// converter the holder builds.
func WithLogger(l *zap.Logger) Option {
	return func(h *Holder) {
		h.logger = xlog.OrNop(l)
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(h *Holder) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// WithListener registers ch to receive every converter swapped in by a
// successful reload. Sends never block; a full channel misses the update.
func WithListener(ch chan<- *convert.Converter) Option {
	return func(h *Holder) {
		h.listeners = append(h.listeners, ch)
	}
}

// New loads the config at path and returns a holder for it. The watcher is
// not started until Start is called.
func New(path string, opts ...Option) (*Holder, error) {
	h := &Holder{
		path:     filepath.Clean(path),
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.logger = h.logger.With(zap.String("component", "watch"))
	h.convOpts = []convert.Option{convert.WithLogger(h.logger)}

	c, err := convert.Load(h.path, h.convOpts...)
	if err != nil {
		return nil, err
	}

	h.current.Store(c)

	return h, nil
}

// Current returns the converter in use.
func (h *Holder) Current() *convert.Converter {
	return h.current.Load()
}

// Path returns the watched config file.
func (h *Holder) Path() string {
	return h.path
}

// Reload rebuilds the converter from the config file. On failure the
// current converter is kept and the error is returned.
func (h *Holder) Reload() error {
	h.logger.Info("reloading configuration", zap.String("event", "config.reload_start"))

	c, err := convert.Load(h.path, h.convOpts...)
	if err != nil {
		h.logger.Error("configuration reload failed, keeping previous converter",
			zap.String("event", "config.reload_failed"),
			zap.Error(err))

		return fmt.Errorf("reload %s: %w", h.path, err)
	}

	h.current.Store(c)
	h.notify(c)

	h.logger.Info("configuration reloaded",
		zap.String("event", "config.reload_success"),
		zap.Int("units", c.Registry().Len()),
		zap.Int("edges", c.Graph().EdgeCount()))

	return nil
}

// Start begins watching the config file. The watch stops when ctx is done
// or Close is called.
//
// The parent directory is watched rather than the file so that editors and
// atomic writers that replace the file by rename keep being observed.
func (h *Holder) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(h.path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", h.path, err)
	}

	h.watcher = w
	h.done = make(chan struct{})

	h.logger.Info("watching config file",
		zap.String("event", "config.watcher_started"),
		zap.String("path", h.path),
		zap.Duration("debounce", h.debounce))

	go h.loop(ctx, w, h.done)

	return nil
}

// Close stops the watcher and waits for its goroutine to exit. It is safe
// to call more than once.
func (h *Holder) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}

	h.closed = true
	w, done := h.watcher, h.done
	h.mu.Unlock()

	if w == nil {
		return nil
	}

	err := w.Close()
	<-done

	return err
}

func (h *Holder) loop(ctx context.Context, w *fsnotify.Watcher, done chan<- struct{}) {
	defer close(done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
		errs  = w.Errors
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("config watcher stopped", zap.String("event", "config.watcher_stopped"))
			_ = w.Close()

			return

		case event, ok := <-w.Events:
			if !ok {
				h.logger.Info("config watcher stopped", zap.String("event", "config.watcher_stopped"))
				return
			}

			if !h.relevant(event) {
				continue
			}

			h.logger.Debug("config file changed",
				zap.String("event", "config.file_changed"),
				zap.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil
			_ = h.Reload()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			h.logger.Error("config watcher error",
				zap.String("event", "config.watcher_error"),
				zap.Error(err))
		}
	}
}

func (h *Holder) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != h.path {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (h *Holder) notify(c *convert.Converter) {
	for _, ch := range h.listeners {
		select {
		case ch <- c:
		default:
			h.logger.Warn("listener not ready, update skipped", zap.String("event", "config.listener_skip"))
		}
	}
}
