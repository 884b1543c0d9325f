package glucose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureRejectsUnknownSolver(t *testing.T) {
	assert.Error(t, Configure(Config{Solver: "chaff"}))
}

func TestConfigureDefaults(t *testing.T) {
	t.Cleanup(func() { _ = Configure(Config{}) })

	assert.NoError(t, Configure(Config{}))
	c := currentConfig()
	assert.Equal(t, "gini", c.Solver)
	assert.Equal(t, 50, c.PollMilliseconds)
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { _ = Configure(Config{}) })

	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"solver": "gophersat", "poll_ms": 10}`), 0666))

	c, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "gophersat", c.Solver)
	assert.Equal(t, 10, c.PollMilliseconds)

	assert.Equal(t, "gophersat", currentEngine().Name())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
