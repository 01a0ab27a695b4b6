package chartview

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// An Invalidator is told when a committed viewport change requires the host
// view to redraw.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to an [Invalidator].
type InvalidatorFunc func()

func (fn InvalidatorFunc) Invalidate() { fn() }

type config struct {
	log        logrus.FieldLogger
	scaleX     [2]float64
	scaleY     [2]float64
	dragOffset Vec2
	offsets    OffsetCalculator
	view       Invalidator
}

func newConfig(opts []Option) config {
	cfg := config{
		scaleX:  [2]float64{1, math.MaxFloat64},
		scaleY:  [2]float64{1, math.MaxFloat64},
		offsets: FixedOffsets{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = discardLogger()
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// An Option configures a [Viewport] or a [Chart].
type Option func(*config)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) { cfg.log = l }
}

// WithScaleLimitsX sets the minimum and maximum horizontal zoom. See
// [Viewport.SetMinMaxScaleX].
func WithScaleLimitsX(minScale, maxScale float64) Option {
	return func(cfg *config) { cfg.scaleX = [2]float64{minScale, maxScale} }
}

// WithScaleLimitsY sets the minimum and maximum vertical zoom. See
// [Viewport.SetMinMaxScaleY].
func WithScaleLimitsY(minScale, maxScale float64) Option {
	return func(cfg *config) { cfg.scaleY = [2]float64{minScale, maxScale} }
}

// WithDragOffset sets how many pixels content may be dragged past the content
// rect's edges.
func WithDragOffset(x, y float64) Option {
	return func(cfg *config) { cfg.dragOffset = Vec(x, y) }
}

// WithOffsets sets the strategy a [Chart] uses to lay out its content rect.
func WithOffsets(calc OffsetCalculator) Option {
	return func(cfg *config) { cfg.offsets = calc }
}

// WithInvalidator sets the view a [Chart] invalidates after committing
// viewport changes.
func WithInvalidator(view Invalidator) Option {
	return func(cfg *config) { cfg.view = view }
}
