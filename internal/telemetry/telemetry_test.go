package telemetry_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trialign/internal/telemetry"
)

func TestMetrics_Counters(t *testing.T) {
	m := telemetry.NewMetrics()
	m.Done(telemetry.OutcomeOK)
	m.Done(telemetry.OutcomeOK)
	m.Done(telemetry.OutcomeInvalid)
	m.ObserveFill(4, 1000, 3*time.Millisecond)
	m.ObserveFill(1, 64, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Alignments.WithLabelValues(telemetry.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Alignments.WithLabelValues(telemetry.OutcomeInvalid)))
	assert.Equal(t, 64.0, testutil.ToFloat64(m.Cells))
	assert.Equal(t, 2, testutil.CollectAndCount(m.FillSeconds))
}

// TestMetrics_Independent: two runs never share state.
func TestMetrics_Independent(t *testing.T) {
	a, b := telemetry.NewMetrics(), telemetry.NewMetrics()
	a.Done(telemetry.OutcomeOK)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Alignments.WithLabelValues(telemetry.OutcomeOK)))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := telemetry.NewMetrics()
	m.Done(telemetry.OutcomeTooLarge)
	m.Columns.Set(7)

	path := filepath.Join(t.TempDir(), "trialign.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `trialign_alignments_total{outcome="too_large"} 1`)
	assert.Contains(t, text, "trialign_alignment_columns 7")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := telemetry.NewLogger(&buf, "warn", "json")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "run_id", "abc")
	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"run_id":"abc"`)

	buf.Reset()
	log, err = telemetry.NewLogger(&buf, "DEBUG", "text")
	require.NoError(t, err)
	log.Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")

	_, err = telemetry.NewLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = telemetry.NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
