package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/game"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil
	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	File       string `json:"file"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
}

type Config struct {
	Mode          string    `json:"mode"`
	Difficulty    string    `json:"difficulty"`
	Columns       int       `json:"columns"`
	Rows          int       `json:"rows"`
	Mines         int       `json:"mines"`
	QuestionMarks bool      `json:"question_marks"`
	Seed          uint64    `json:"seed"` // 0 picks a random seed
	Timeout       Duration  `json:"timeout"`
	Log           LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:          "production",
		Difficulty:    string(game.Medium),
		QuestionMarks: true,
		Timeout:       Duration{time.Minute},
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":           c.Mode,
		"difficulty":     c.Difficulty,
		"columns":        c.Columns,
		"rows":           c.Rows,
		"mines":          c.Mines,
		"question_marks": c.QuestionMarks,
		"seed":           c.Seed,
		"timeout":        c.Timeout.Duration.String(),
		"log_file":       c.Log.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// GameOptions resolves the configured difficulty into session options.
func (c Config) GameOptions() (game.Options, error) {
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return game.Options{}, err
	}
	opts := game.Options{
		Difficulty:    d,
		Columns:       c.Columns,
		Rows:          c.Rows,
		Mines:         c.Mines,
		QuestionMarks: c.QuestionMarks,
	}
	if _, _, _, err := opts.Params(); err != nil {
		return game.Options{}, err
	}
	return opts, nil
}

func (c Config) Validate() error {
	if c.Mode != "production" && c.Mode != "development" {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	opts, err := c.GameOptions()
	if err != nil {
		return err
	}
	if opts.Difficulty == game.Custom {
		if c.Columns <= 0 || c.Rows <= 0 {
			return fmt.Errorf("custom field size %dx%d must be positive", c.Columns, c.Rows)
		}
		if c.Mines < 0 || c.Mines >= c.Columns*c.Rows {
			return fmt.Errorf("custom mine count %d must be within [0, %d)", c.Mines, c.Columns*c.Rows)
		}
	}
	if c.Timeout.Duration < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}

// ReadConfig overlays the JSON file at path onto config.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// ApplyEnv overrides config values from MINEFIELD_* environment variables.
func ApplyEnv(config *Config) error {
	if mode, ok := os.LookupEnv("MINEFIELD_MODE"); ok {
		config.Mode = mode
	}

	if difficulty, ok := os.LookupEnv("MINEFIELD_DIFFICULTY"); ok {
		config.Difficulty = difficulty
	}

	if seedStr, ok := os.LookupEnv("MINEFIELD_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to parse MINEFIELD_SEED: %w", err)
		}
		config.Seed = seed
	}

	if logFile, ok := os.LookupEnv("MINEFIELD_LOG_FILE"); ok {
		config.Log.File = logFile
	}

	return nil
}

// Load builds the effective configuration: defaults, then the file at path
// (skipped when empty), then the environment.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return config, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&config); err != nil {
		return config, err
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
