package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riordanpawley/toaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Lifecycle(t *testing.T) {
	m := New()

	m.ToastShown(domain.TypeInfo)
	m.ToastShown(domain.TypeInfo)
	m.ToastShown(domain.TypeError)
	m.ToastPaused(domain.TypeInfo)
	m.ToastExpired(domain.TypeInfo)
	m.ToastUnmounted(domain.TypeInfo)
	m.ToastDismissed(domain.TypeError)
	m.ToastUnmounted(domain.TypeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Shown.WithLabelValues("info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Shown.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Paused.WithLabelValues("info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Expired.WithLabelValues("info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dismissed.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Active))
}

func TestMetrics_PrivateRegistry(t *testing.T) {
	// Two instances must not collide on registration
	a, b := New(), New()
	a.ToastShown(domain.TypeSuccess)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Shown.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Shown.WithLabelValues("success")))

	count, err := testutil.GatherAndCount(a.Registry(), "toaster_toasts_shown_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ToastShown(domain.TypeInfo)
		m.ToastPaused(domain.TypeInfo)
		m.ToastExpired(domain.TypeInfo)
		m.ToastDismissed(domain.TypeInfo)
		m.ToastUnmounted(domain.TypeInfo)
	})

	var buf bytes.Buffer
	require.NoError(t, m.WriteSummary(&buf))
	assert.Empty(t, buf.String())
}

func TestWriteSummary(t *testing.T) {
	m := New()
	m.ToastShown(domain.TypeWarning)
	m.ToastDismissed(domain.TypeWarning)

	var buf bytes.Buffer
	require.NoError(t, m.WriteSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, `toaster_toasts_shown_total{type="warning"} 1`)
	assert.Contains(t, out, `toaster_toasts_dismissed_total{type="warning"} 1`)
	assert.Contains(t, out, "toaster_toasts_active 1")
	assert.NotContains(t, out, "toaster_toasts_expired_total", "untouched vectors have no series")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSummary_WriteError(t *testing.T) {
	m := New()
	assert.ErrorContains(t, m.WriteSummary(failWriter{}), "disk full")
}
