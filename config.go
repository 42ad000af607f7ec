package orrery

import (
	"os"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunable defaults the driver is seeded with. Unlike
// a config loader that panics when no config file is found, LoadConfig
// falls back to documented defaults and only reports the failure to
// the caller: this engine is meant to be embedded, not run as a single
// research script.
type Config struct {
	Framerate             float64
	DefaultMethod         Method
	DefaultThreads        int
	GravitationalConstant float64
	LogLevel              string
	EpochStart            time.Time
}

// DefaultConfig returns the engine's documented defaults.
func DefaultConfig() Config {
	return Config{
		Framerate:             60,
		DefaultMethod:         Symplectic(4),
		DefaultThreads:        runtime.NumCPU(),
		GravitationalConstant: G,
		LogLevel:              "info",
		EpochStart:            time.Now().UTC(),
	}
}

// LoadConfig reads a config file (toml/yaml/json, resolved by viper)
// from the path named by the ORRERY_CONFIG environment variable, if
// set, layering it over DefaultConfig(). A missing or malformed file
// is not fatal: defaults are used and loadedFromFile is false so the
// caller can log the fallback.
func LoadConfig() (cfg Config, loadedFromFile bool) {
	cfg = DefaultConfig()

	confPath := os.Getenv("ORRERY_CONFIG")
	if confPath == "" {
		return cfg, false
	}

	v := viper.New()
	v.SetConfigFile(confPath)
	v.SetDefault("framerate", cfg.Framerate)
	v.SetDefault("threads", cfg.DefaultThreads)
	v.SetDefault("gravitational_constant", cfg.GravitationalConstant)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return cfg, false
	}

	cfg.Framerate = v.GetFloat64("framerate")
	cfg.DefaultThreads = v.GetInt("threads")
	cfg.GravitationalConstant = v.GetFloat64("gravitational_constant")
	cfg.LogLevel = v.GetString("log_level")
	switch {
	case v.IsSet("symplectic_order"):
		cfg.DefaultMethod = Symplectic(uint8(v.GetInt("symplectic_order")))
	case v.GetBool("rk4"):
		cfg.DefaultMethod = RK4
	}
	return cfg, true
}
