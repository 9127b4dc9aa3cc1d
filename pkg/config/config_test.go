package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/textmenu/pkg/menu"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
menu:
  prompt: "Choose:"
  separator-width: 40
log-level: debug
metrics-port: 9090
action-delay: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, "Choose:", cfg.Menu.Prompt)
	assert.Equal(t, menu.DefaultTitle, cfg.Menu.Title)
	assert.Equal(t, 40, cfg.Menu.SeparatorWidth)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.MetricsPort)
	assert.Equal(t, 250*time.Millisecond, cfg.ActionDelay)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":   "menu: [",
		"width":    "menu:\n  separator-width: -1",
		"port":     "metrics-port: 70000",
		"delay":    "action-delay: -1s",
		"bad type": "metrics-port: many",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  title: TOOLS\n"), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TOOLS", cfg.Menu.Title)
	assert.Equal(t, menu.DefaultPrompt, cfg.Menu.Prompt)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Menu.Title = "TOOLS"
	cfg.Menu.SeparatorWidth = 20
	cfg.Menu.Prompt = ">"

	m := menu.New(nil, cfg.Options()...)

	assert.Equal(t, ">", m.Prompt())
	out := m.Render()
	assert.Contains(t, out, strings.Repeat("=", 20)+"\n")
	assert.Contains(t, out, "\n       TOOLS\n")
}
