package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// SelectionCounterName is the name of the menu selection counter.
	SelectionCounterName = "menu_selections_total"

	// LabelMenu is the label carrying the menu name.
	LabelMenu = "menu"

	// LabelOutcome is the label carrying the dispatch outcome.
	LabelOutcome = "outcome"
)

// IncrementalCounter counts events by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series for val, given in label order.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewSelectionCounter registers the menu selection counter, labelled by
// menu name and outcome, with reg.
func NewSelectionCounter(reg prometheus.Registerer) IncrementalCounter {
	return NewCounterWithRegistry(reg, SelectionCounterName,
		"Number of menu selections by menu and outcome.",
		LabelMenu, LabelOutcome)
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
