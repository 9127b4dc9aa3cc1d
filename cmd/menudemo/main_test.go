package main

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/textmenu/pkg/config"
	"github.com/mchmarny/textmenu/pkg/menu"
	"github.com/mchmarny/textmenu/pkg/metric"
)

func labels(m *menu.Menu) []string {
	var l []string
	for _, item := range m.Items() {
		l = append(l, item.Label())
	}
	return l
}

func TestBuildMenus(t *testing.T) {
	cfg := config.Default()
	root := buildMenus(nil, &bytes.Buffer{}, cfg, metric.NewSelectionCounter(prometheus.NewRegistry()))

	assert.Equal(t, []string{
		"Another sub-menu",
		"Menu Item 'B'",
		"Menu Item 'A'",
		"A sub-menu of multiple options",
		menu.ExitLabel,
	}, labels(root))

	tree := root.Tree()
	require.Len(t, tree.Items, 5)
	assert.Equal(t, menu.KindSubMenu, tree.Items[3].Kind)
	require.Len(t, tree.Items[3].Items, 5)
	assert.Equal(t, "Menu Item 'F'", tree.Items[3].Items[0].Label)
	assert.Equal(t, menu.BackLabel, tree.Items[3].Items[4].Label)
}

func restoreDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func zero[T any]() *T {
	var v T
	return &v
}

func TestRun(t *testing.T) {
	restoreDefaultLogger(t)

	var out bytes.Buffer
	// enter sub-menu one, run F, back, run A, garbage, exit
	in := bufio.NewReader(strings.NewReader("4\n1\n5\n3\nnope\n5\n"))

	opts := Options{
		Config:      filepath.Join(t.TempDir(), "missing.yaml"),
		LogLevel:    "error",
		MetricsPort: zero[int](),
		ActionDelay: zero[time.Duration](),
	}

	require.NoError(t, run(context.Background(), opts, in, &out))

	s := out.String()
	assert.Contains(t, s, "Entered menuItemF()")
	assert.Contains(t, s, "Entered menuItemA()")
	assert.NotContains(t, s, "Entered menuItemB()")
	assert.Equal(t, 1, strings.Count(s, menu.InvalidSelectionMessage))
	assert.True(t, strings.HasSuffix(s, "\n~ Application Ended ~\n"))
}

func TestRunEndOfInput(t *testing.T) {
	restoreDefaultLogger(t)

	var out bytes.Buffer
	opts := Options{
		Config:      filepath.Join(t.TempDir(), "missing.yaml"),
		LogLevel:    "error",
		ActionDelay: zero[time.Duration](),
	}

	require.NoError(t, run(context.Background(), opts, bufio.NewReader(strings.NewReader("1\n")), &out))
	assert.Contains(t, out.String(), "1) Menu Item 'G'")
	assert.Contains(t, out.String(), "~ Application Ended ~")
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics-port: -2\n"), 0o600))

	err := run(context.Background(), Options{Config: path}, bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	port := 9000
	delay := time.Second

	applyOverrides(&cfg, Options{LogLevel: "debug", MetricsPort: &port, ActionDelay: &delay})

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9000, cfg.MetricsPort)
	assert.Equal(t, time.Second, cfg.ActionDelay)
}
