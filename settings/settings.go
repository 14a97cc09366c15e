package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/jumpsim/session"
	"github.com/oomph-ac/jumpsim/simulation"
	"github.com/pelletier/go-toml"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for a simulator run.
type Settings struct {
	Simulation struct {
		// FloatMode rounds positions and velocities to single precision after every change.
		FloatMode bool
		// DuckedHitboxOnly tests explosions against the ducked hull even for standing players.
		DuckedHitboxOnly bool
	}
	Log struct {
		// Level is a logrus level name.
		Level string
		// Debug lists the debug modes to enable: movement, ducking, rockets or knockback.
		Debug []string
	}
	Output struct {
		Dir      string
		Format   string
		Compress bool
		// Chart also writes an HTML chart next to every trajectory.
		Chart bool
	}
	Sentry struct {
		// DSN enables error reporting to Sentry when set.
		DSN         string
		Environment string
	}
	Worker struct {
		// Parallelism is the amount of scenarios run at once. Zero means one per CPU.
		Parallelism int
	}
}

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Simulation.FloatMode = true
	s.Log.Level = logrus.InfoLevel.String()
	s.Log.Debug = []string{}
	s.Output.Dir = "out"
	s.Output.Format = string(session.FormatJSON)
	s.Sentry.Environment = "development"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := Marshal(Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %v", err)
	}
	return nil
}

// Marshal encodes s as TOML.
func Marshal(s Settings) ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed encoding settings: %v", err)
	}
	return data, nil
}

// Load will load the settings from your settings file. If the file does not exist, the default
// settings are written to it and returned.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	s := Default()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return s, s.Validate()
}

// Validate checks that every value can be used.
func (s Settings) Validate() error {
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if _, err := s.DebugModes(); err != nil {
		return err
	}
	if _, err := session.ParseFormat(s.Output.Format); err != nil {
		return err
	}
	if s.Worker.Parallelism < 0 {
		return fmt.Errorf("worker parallelism must not be negative, got %d", s.Worker.Parallelism)
	}
	return nil
}

// DebugModes parses the debug modes listed in the settings, ignoring duplicates.
func (s Settings) DebugModes() ([]simulation.DebugMode, error) {
	modes := make([]simulation.DebugMode, 0, len(s.Log.Debug))
	for _, name := range lo.Uniq(lo.Map(s.Log.Debug, func(n string, _ int) string {
		return strings.ToLower(strings.TrimSpace(n))
	})) {
		m, err := simulation.ParseDebugMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// Logger returns a logrus logger at the configured level, raised to debug when any debug mode is
// enabled.
func (s Settings) Logger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	if lvl, err := logrus.ParseLevel(s.Log.Level); err == nil {
		log.Level = lvl
	}
	if len(s.Log.Debug) > 0 && log.Level < logrus.DebugLevel {
		log.Level = logrus.DebugLevel
	}
	return log
}

// Format returns the output format. Invalid names fall back to JSON.
func (s Settings) Format() session.Format {
	f, err := session.ParseFormat(s.Output.Format)
	if err != nil {
		return session.FormatJSON
	}
	return f
}

// NewSimulation creates a Simulation using these settings that logs to log.
func (s Settings) NewSimulation(log *logrus.Logger) (*simulation.Simulation, error) {
	modes, err := s.DebugModes()
	if err != nil {
		return nil, err
	}
	return simulation.New(simulation.Options{
		FloatMode:        s.Simulation.FloatMode,
		DuckedHitboxOnly: s.Simulation.DuckedHitboxOnly,
		Log:              log,
		Debug:            modes,
	}), nil
}
