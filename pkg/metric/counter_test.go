package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewSelectionCounter(reg)

	c.Increment("root", "action")
	c.Increment("root", "action")
	c.Increment("tools", "invalid")

	counter, ok := c.(*Counter)
	require.True(t, ok)
	assert.Equal(t, SelectionCounterName, counter.Name)
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.vec.WithLabelValues("root", "action")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.vec.WithLabelValues("tools", "invalid")))
}

func TestSelectionCounterDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewSelectionCounter(reg)

	assert.Panics(t, func() { NewSelectionCounter(reg) })
}

func TestGetHandlerForRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewSelectionCounter(reg).Increment("root", "exit")

	rec := httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `menu_selections_total{menu="root",outcome="exit"} 1`)
}
