package glucose

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/limaJavier/glucose/internal/engine"
	"github.com/mitchellh/mapstructure"
)

// Config selects the engine behind instances created after Configure.
type Config struct {
	// Solver names the engine: "gini" (default) or "gophersat".
	Solver string `mapstructure:"solver"`
	// PollMilliseconds is how often a bounded gini solve is polled for
	// completion. Zero keeps the default of 50.
	PollMilliseconds int `mapstructure:"poll_ms"`
}

var validSolvers = []string{"gini", "gophersat"}

var (
	configMu sync.Mutex
	config   = Config{Solver: "gini", PollMilliseconds: 50}
)

// Configure replaces the package configuration. Instances already
// created keep their engine.
func Configure(c Config) error {
	if c.Solver == "" {
		c.Solver = "gini"
	}
	if c.PollMilliseconds <= 0 {
		c.PollMilliseconds = 50
	}
	if !slices.Contains(validSolvers, c.Solver) {
		return fmt.Errorf("%q is not a valid solver", c.Solver)
	}

	configMu.Lock()
	defer configMu.Unlock()
	config = c
	return nil
}

// LoadConfig reads a json configuration file and applies it through
// Configure.
func LoadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	var c Config
	if err := mapstructure.Decode(inputJson, &c); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}

	if err := Configure(c); err != nil {
		return Config{}, err
	}
	return currentConfig(), nil
}

func currentConfig() Config {
	configMu.Lock()
	defer configMu.Unlock()
	return config
}

func currentEngine() engine.Engine {
	c := currentConfig()
	switch c.Solver {
	case "gophersat":
		return engine.NewGophersat()
	default:
		return engine.NewGiniPoll(time.Duration(c.PollMilliseconds) * time.Millisecond)
	}
}
