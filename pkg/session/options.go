package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

type config struct {
	logger *log.Logger
	newID  func() string
	engine *layout.Engine
	now    func() time.Time
}

// Option customises a Builder or Responder.
type Option func(*config)

// WithLogger sets the logger used for rejections and saves.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator overrides how template and response ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(c *config) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithEngine sets the layout engine handed out by Builder.Engine.
func WithEngine(engine *layout.Engine) Option {
	return func(c *config) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: log.Default(),
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.engine == nil {
		cfg.engine = layout.New()
	}
	return cfg
}
