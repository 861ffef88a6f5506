// Package settings persists a settings value of any JSON-encodable type in a
// file and notifies subscribers when it changes.
package settings

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ib-77/ex/internal/logging"
	"github.com/ib-77/ex/pkg/ex"
	"github.com/ib-77/ex/pkg/ex/solo"
	"github.com/ib-77/ex/pkg/filename"
)

type Option func(*options)

type options struct {
	logger *logging.Logger
}

func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Provider holds the current settings value. It is not safe for concurrent
// use.
type Provider[T any] struct {
	value   T
	log     *logging.Logger
	changed []func()
	saving  []func()
}

// NewProvider starts with defaults as the current value.
func NewProvider[T any](defaults T, opts ...Option) *Provider[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.New()
	}

	return &Provider[T]{
		value: defaults,
		log:   o.logger.With(logging.String("settings", typeName[T]())),
	}
}

// Value returns a pointer to the current value. Changes made through it are
// picked up by the next Save but do not fire OnChanged.
func (p *Provider[T]) Value() *T {
	return &p.value
}

// Set replaces the current value and fires OnChanged.
func (p *Provider[T]) Set(v T) {
	p.value = v
	p.notify("changed", p.changed)
}

func (p *Provider[T]) OnChanged(fn func()) {
	p.changed = append(p.changed, fn)
}

func (p *Provider[T]) OnSaving(fn func()) {
	p.saving = append(p.saving, fn)
}

// Load reads the value stored in fileName. Success(true) means the value was
// replaced. A missing or empty file is not an error: the result is
// Success(false) and the current value is kept.
func (p *Provider[T]) Load(fileName ex.Result[*filename.FileName]) ex.Result[bool] {
	start := time.Now()
	loaded := solo.Bind(fileName, func(fn *filename.FileName) ex.Result[T] {
		return DeserializeFromFile[T](ex.Success(fn))
	})

	if loaded.IsFailure() {
		if errors.Is(loaded.Err(), fs.ErrNotExist) || errors.Is(loaded.Err(), ErrNothingStored) {
			p.log.Debug("no stored settings, keeping current value",
				logging.Bool("exists", errors.Is(loaded.Err(), ErrNothingStored)),
				logging.Error(loaded.Err()))
			return ex.Success(false)
		}

		p.log.Warn("could not load settings", logging.Error(loaded.Err()))
		return ex.FailFrom[T, bool](loaded)
	}

	p.Set(loaded.Value())
	fn := fileName.Value()
	p.log.Debug("settings loaded",
		logging.String("path", fn.Path),
		logging.Time("opened_at", fn.OpenedAt),
		logging.Duration("took", time.Since(start)))
	return ex.Success(true)
}

// Save fires OnSaving and writes the current value to fileName.
func (p *Provider[T]) Save(fileName ex.Result[*filename.FileName]) ex.Result[bool] {
	p.notify("saving", p.saving)
	start := time.Now()

	saved := solo.Bind(fileName, func(fn *filename.FileName) ex.Result[bool] {
		return SerializeToFile(p.value, ex.Success(fn))
	})

	solo.MatchDo(saved,
		func(bool) {
			p.log.Debug("settings saved",
				logging.String("path", fileName.Value().Path),
				logging.Duration("took", time.Since(start)))
		},
		func(err error) {
			p.log.Warn("could not save settings", logging.Error(err))
		})

	return saved
}

func (p *Provider[T]) notify(event string, handlers []func()) {
	for i, h := range handlers {
		if res := ex.Do(h); res.IsFailure() {
			p.log.Warn("settings handler panicked",
				logging.String("event", event),
				logging.Int("handler", i),
				logging.Error(res.Err()))
		}
	}
}
