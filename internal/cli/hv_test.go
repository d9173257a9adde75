package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labctl/internal/app"
	"labctl/internal/infra/config"
)

// newTestContainer builds a container with mock-friendly defaults. Tests
// override the ports they exercise.
func newTestContainer() *app.Container {
	return &app.Container{
		ConfigLoader: config.NewLoader(),
		Logger:       slog.New(slog.DiscardHandler),
	}
}

func executeCommand(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestHvFacts(t *testing.T) {
	t.Run("defaults to the embedded config", func(t *testing.T) {
		out, err := executeCommand(t, newTestContainer(), "hv", "facts")
		require.NoError(t, err)
		assert.Contains(t, out, `"Host"`)
		assert.Contains(t, out, "localhost")
	})

	t.Run("reads the given config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lab.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"HyperV": {"Host": "lab1"}}`), 0o600))

		out, err := executeCommand(t, newTestContainer(), "hv", "facts", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, `"Host"`)
		assert.Contains(t, out, "lab1")
	})

	t.Run("fails on a malformed config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lab.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o600))

		_, err := executeCommand(t, newTestContainer(), "hv", "facts", "--config", path)
		require.Error(t, err)
	})
}

func TestHvDeploy(t *testing.T) {
	t.Run("announces the configured host", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lab.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"HyperV": {"Host": "lab1"}}`), 0o600))

		out, err := executeCommand(t, newTestContainer(), "hv", "deploy", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Deploying Hyper-V host: lab1")
	})

	t.Run("yaml config works the same", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lab.yaml")
		require.NoError(t, os.WriteFile(path, []byte("HyperV:\n  Host: lab2\n"), 0o600))

		out, err := executeCommand(t, newTestContainer(), "hv", "deploy", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Deploying Hyper-V host: lab2")
	})
}
