package stitch

import (
	"io"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the environment-provided tuning knobs of a World. Zero values
// keep the defaults.
//
// ENV:
//
//	STITCH_INITIAL_CAPACITY=100000
//	STITCH_ARCHETYPE_CAPACITY=64
//	STITCH_LOG_LEVEL=debug
type Config struct {
	LogLevel          string `config:"STITCH_LOG_LEVEL"`
	InitialCapacity   int    `config:"STITCH_INITIAL_CAPACITY"`
	ArchetypeCapacity int    `config:"STITCH_ARCHETYPE_CAPACITY"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to load config from environment")
	}
	return cfg, nil
}

// Options converts cfg into World options. When a log level is set, log
// events are written to out as JSON.
func (cfg Config) Options(out io.Writer) ([]Option, error) {
	opts := []Option{
		WithInitialCapacity(cfg.InitialCapacity),
		WithArchetypeCapacity(cfg.ArchetypeCapacity),
	}
	if cfg.LogLevel == "" {
		return opts, nil
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Str("module", "stitch").Logger()
	return append(opts, WithLogger(logger)), nil
}
