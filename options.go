package stitch

import "github.com/rs/zerolog"

const (
	defaultInitialCapacity   = 1024
	defaultArchetypeCapacity = 8
)

type options struct {
	logger            zerolog.Logger
	events            *EventBus
	initialCapacity   int
	archetypeCapacity int
}

func defaultOptions() options {
	return options{
		logger:            zerolog.Nop(),
		initialCapacity:   defaultInitialCapacity,
		archetypeCapacity: defaultArchetypeCapacity,
	}
}

// Option configures a World at construction.
type Option func(*options)

// WithInitialCapacity pre-sizes the entity table. It is a performance hint;
// the table grows on demand.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithArchetypeCapacity sets how many rows a new archetype allocates the
// first time an entity moves into it. Later growth doubles.
func WithArchetypeCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.archetypeCapacity = n
		}
	}
}

// WithLogger sets the logger used for archetype creation, growth and
// maintenance events. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithEventBus makes the World publish lifecycle events on bus instead of a
// private one.
func WithEventBus(bus *EventBus) Option {
	return func(o *options) {
		o.events = bus
	}
}
