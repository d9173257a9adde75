package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labctl/internal/domain"
)

func TestUpdate_TabCycling(t *testing.T) {
	m := New(Inputs{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	assert.Equal(t, tabLog, result.active)

	for range tabTitles[1:] {
		updated, _ = result.Update(tea.KeyMsg{Type: tea.KeyTab})
		result = updated.(*Model)
	}
	assert.Equal(t, tabScripts, result.active, "tab should wrap around")

	updated, _ = result.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	result = updated.(*Model)
	assert.Equal(t, tabRecommendedConfig, result.active, "shift+tab should wrap backwards")
}

func TestUpdate_Quit(t *testing.T) {
	m := New(Inputs{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_ShowsActiveTab(t *testing.T) {
	m := New(Inputs{})
	assert.Equal(t, "Loading...", m.View(), "view before the first resize")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	result := updated.(*Model)
	view := result.View()
	assert.Contains(t, view, "labctl dashboard")
	assert.Contains(t, view, "Scripts")
}

func TestScriptRows(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_configure.ps1", "0001_deploy.ps1", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("# script"), 0o644))
	}

	rows := scriptRows(dir)
	require.Len(t, rows, 2)
	assert.Equal(t, "0001", rows[0][0])
	assert.Equal(t, "0001_deploy.ps1", rows[0][1])
	assert.Equal(t, "0002_configure.ps1", rows[1][1])
}

func TestReadConfig(t *testing.T) {
	t.Run("re-indents json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

		out := readConfig(path, false)
		assert.Equal(t, "{\n  \"a\": 1\n}", out)
	})

	t.Run("missing default falls back to embedded config", func(t *testing.T) {
		out := readConfig(filepath.Join(t.TempDir(), "missing.json"), true)
		assert.Contains(t, out, "HyperV")
	})

	t.Run("missing recommended reports the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.json")
		assert.Equal(t, "Not found: "+path, readConfig(path, false))
	})
}

func TestResolveInputs(t *testing.T) {
	resolver := &staticResolver{paths: map[string]string{
		"pwsh/runner_scripts": "/repo/pwsh/runner_scripts",
	}}

	in := ResolveInputs(resolver, "/repo", "/logs")
	assert.Equal(t, "/repo/pwsh/runner_scripts", in.ScriptDir)
	assert.Equal(t, filepath.Join("/logs", "lab.log"), in.LogPath)
	assert.Equal(t,
		filepath.Join("/repo", "configs", "config_files", "default-config.json"),
		in.DefaultConfig, "unresolved names fall back under the repo root")
}

type staticResolver struct {
	paths map[string]string
}

func (r *staticResolver) Resolve(name string) (string, bool) {
	path, ok := r.paths[name]
	return path, ok
}

var _ domain.PathResolver = (*staticResolver)(nil)
