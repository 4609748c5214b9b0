// Package metrics counts toast lifecycle events on a private Prometheus
// registry. Nothing is exported over the network; the registry is gathered
// once on exit to print a summary.
package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/riordanpawley/toaster/internal/domain"
)

const namespace = "toaster"

// Metrics holds the toast lifecycle collectors
type Metrics struct {
	Shown     *prometheus.CounterVec
	Paused    *prometheus.CounterVec
	Expired   *prometheus.CounterVec
	Dismissed *prometheus.CounterVec
	Active    prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	byType := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"type"})
	}

	m := &Metrics{
		Shown:     byType("toasts_shown_total", "Total number of toasts mounted"),
		Paused:    byType("toasts_paused_total", "Total number of times a countdown was paused by hover"),
		Expired:   byType("toasts_expired_total", "Total number of toasts removed by timeout"),
		Dismissed: byType("toasts_dismissed_total", "Total number of toasts removed by the user"),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "toasts_active",
			Help:      "Number of toasts currently mounted",
		}),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.Shown,
		m.Paused,
		m.Expired,
		m.Dismissed,
		m.Active,
	)
	return m
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ToastShown records a mounted toast
func (m *Metrics) ToastShown(t domain.Type) {
	if m == nil {
		return
	}
	m.Shown.WithLabelValues(t.String()).Inc()
	m.Active.Inc()
}

// ToastPaused records a hover pause
func (m *Metrics) ToastPaused(t domain.Type) {
	if m == nil {
		return
	}
	m.Paused.WithLabelValues(t.String()).Inc()
}

// ToastExpired records a timeout removal
func (m *Metrics) ToastExpired(t domain.Type) {
	if m == nil {
		return
	}
	m.Expired.WithLabelValues(t.String()).Inc()
}

// ToastDismissed records a user removal
func (m *Metrics) ToastDismissed(t domain.Type) {
	if m == nil {
		return
	}
	m.Dismissed.WithLabelValues(t.String()).Inc()
}

// ToastUnmounted records a toast leaving the screen
func (m *Metrics) ToastUnmounted(domain.Type) {
	if m == nil {
		return
	}
	m.Active.Dec()
}

// WriteSummary gathers the registry and writes one line per series, e.g.
//
//	toaster_toasts_shown_total{type="info"} 3
func (m *Metrics) WriteSummary(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}

			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			var value float64
			switch {
			case metric.GetCounter() != nil:
				value = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				value = metric.GetGauge().GetValue()
			}

			if _, err := fmt.Fprintf(w, "%s %g\n", name, value); err != nil {
				return err
			}
		}
	}
	return nil
}
