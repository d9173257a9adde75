// Package tui provides the labctl terminal dashboard: runner scripts,
// the lab log, and the deployment configs in one tabbed view.
package tui

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"labctl/internal/domain"
	"labctl/internal/infra/config"
	"labctl/internal/infra/logging"
)

// Tab indices of the dashboard panes.
const (
	tabScripts = iota
	tabLog
	tabDefaultConfig
	tabRecommendedConfig
)

var tabTitles = []string{"Scripts", "Log", "Default Config", "Recommended Config"}

// Inputs carries everything the dashboard displays. The caller resolves
// the paths through the path index before constructing the model.
type Inputs struct {
	ScriptDir         string // Directory of ????_*.ps1 runner scripts
	LogPath           string // lab.log location
	DefaultConfig     string // Path to default-config.json
	RecommendedConfig string // Path to recommended-config.json
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	keys   KeyMap
	styles Styles

	scripts     table.Model
	logView     viewport.Model
	defaultView viewport.Model
	recView     viewport.Model

	active int
	width  int
	height int
	ready  bool
}

// New creates the dashboard model, loading all pane content up front.
func New(in Inputs) *Model {
	scripts := table.New(
		table.WithColumns([]table.Column{
			{Title: "Prefix", Width: 8},
			{Title: "Script", Width: 48},
		}),
		table.WithRows(scriptRows(in.ScriptDir)),
		table.WithFocused(true),
	)

	m := &Model{
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		scripts:     scripts,
		logView:     viewport.New(0, 0),
		defaultView: viewport.New(0, 0),
		recView:     viewport.New(0, 0),
	}
	m.logView.SetContent(readLog(in.LogPath))
	m.defaultView.SetContent(readConfig(in.DefaultConfig, true))
	m.recView.SetContent(readConfig(in.RecommendedConfig, false))
	return m
}

// scriptRows lists runner scripts named like 0001_deploy.ps1, sorted by name.
func scriptRows(dir string) []table.Row {
	matches, _ := filepath.Glob(filepath.Join(dir, "????_*.ps1"))
	sort.Strings(matches)

	rows := make([]table.Row, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		rows = append(rows, table.Row{name[:4], name})
	}
	return rows
}

func readLog(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // path derives from LAB_LOG_DIR
	if err != nil {
		return "No log yet at " + path
	}
	return string(data)
}

// readConfig reads a config file for display. JSON content is re-indented
// when valid; the embedded default is the fallback when the repo has no
// default config of its own.
func readConfig(path string, fallbackDefault bool) string {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the path index
	if err != nil {
		if fallbackDefault {
			return config.DefaultConfigText()
		}
		return "Not found: " + path
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var buf bytes.Buffer
		if json.Indent(&buf, data, "", "  ") == nil {
			return buf.String()
		}
	}
	return string(data)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.active = (m.active + 1) % len(tabTitles)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.active = (m.active + len(tabTitles) - 1) % len(tabTitles)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case tabScripts:
		m.scripts, cmd = m.scripts.Update(msg)
	case tabLog:
		m.logView, cmd = m.logView.Update(msg)
	case tabDefaultConfig:
		m.defaultView, cmd = m.defaultView.Update(msg)
	case tabRecommendedConfig:
		m.recView, cmd = m.recView.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize() {
	paneHeight := m.height - 5 // header, tabs, footer, pane border
	if paneHeight < 1 {
		paneHeight = 1
	}
	paneWidth := m.width - 4
	if paneWidth < 1 {
		paneWidth = 1
	}

	m.scripts.SetHeight(paneHeight)
	for _, v := range []*viewport.Model{&m.logView, &m.defaultView, &m.recView} {
		v.Width = paneWidth
		v.Height = paneHeight
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		style := m.styles.TabInactive
		if i == m.active {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(title))
	}

	var pane string
	switch m.active {
	case tabScripts:
		pane = m.scripts.View()
	case tabLog:
		pane = m.logView.View()
	case tabDefaultConfig:
		pane = m.defaultView.View()
	case tabRecommendedConfig:
		pane = m.recView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("labctl dashboard"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.styles.Pane.Render(pane),
		m.styles.Footer.Render("tab: switch pane • ↑/↓: scroll • q: quit"),
	)
}

// ResolveInputs builds the dashboard inputs from the path index, falling
// back to conventional locations under the repo root.
func ResolveInputs(resolver domain.PathResolver, repoRoot, logDir string) Inputs {
	resolve := func(name, fallback string) string {
		if path, ok := resolver.Resolve(name); ok {
			return path
		}
		return filepath.Join(repoRoot, filepath.FromSlash(fallback))
	}

	if logDir == "" {
		logDir, _ = os.Getwd()
	}

	return Inputs{
		ScriptDir:         resolve("pwsh/runner_scripts", "pwsh/runner_scripts"),
		LogPath:           filepath.Join(logDir, logging.LogFileName),
		DefaultConfig:     resolve("configs/config_files/default-config.json", "configs/config_files/default-config.json"),
		RecommendedConfig: resolve("configs/config_files/recommended-config.json", "configs/config_files/recommended-config.json"),
	}
}
