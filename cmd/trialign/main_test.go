package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trialign/fasta"
	"github.com/katalvlaran/trialign/internal/output"
)

// writeInputs stores one FASTA file per sequence and returns their paths.
func writeInputs(t *testing.T, seqs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(seqs))
	for r, s := range seqs {
		paths[r] = filepath.Join(dir, "seq"+string(rune('1'+r))+".fa")
		body := ">s" + string(rune('1'+r)) + "\n" + strings.ToLower(s) + "\n"
		require.NoError(t, os.WriteFile(paths[r], []byte(body), 0o600))
	}

	return paths
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errb.String(), err
}

func TestRoot_Text(t *testing.T) {
	paths := writeInputs(t, "GATTACA", "GATCA", "GTTACA")
	out, _, err := execute(t, append([]string{"--verify"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "Score: -3\nGATTACA\n-G-ATCA\nGTTACA-\n", out)
}

func TestRoot_WrongArgCount(t *testing.T) {
	paths := writeInputs(t, "A", "C")
	stdout, stderr, err := execute(t, paths...)
	require.Error(t, err)
	assert.Contains(t, stdout+stderr, "Usage:")
	assert.Contains(t, err.Error(), "accepts 3 arg(s), received 2")
}

func TestRoot_BadSymbol(t *testing.T) {
	paths := writeInputs(t, "ACGT", "ACNT", "ACGT")
	stdout, stderr, err := execute(t, paths...)
	require.ErrorIs(t, err, fasta.ErrBadSymbol)
	assert.Contains(t, stderr, "alignment failed")
	assert.Contains(t, stderr, "line 2, column 3")
	assert.NotContains(t, stdout+stderr, "Usage:")
}

// TestRoot_JSONAndMetrics checks the run id is shared by the JSON document,
// and the metrics file records the run.
func TestRoot_JSONAndMetrics(t *testing.T) {
	paths := writeInputs(t, "AC", "AC", "AC")
	prom := filepath.Join(t.TempDir(), "trialign.prom")
	args := append([]string{"--format", "json", "--workers", "2", "--log-level", "info",
		"--log-format", "json", "--metrics-textfile", prom}, paths...)
	out, stderr, err := execute(t, args...)
	require.NoError(t, err)

	var doc output.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 0, doc.Score)
	assert.Equal(t, [3]string{"s1", "s2", "s3"}, doc.Names)
	assert.Equal(t, []string{"match", "match"}, doc.Columns)
	require.NotEmpty(t, doc.RunID)
	assert.Contains(t, stderr, `"run_id":"`+doc.RunID+`"`)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `trialign_alignments_total{outcome="ok"} 1`)
	assert.Contains(t, string(data), `trialign_fill_duration_seconds_count{mode="wavefront"} 1`)
}

// TestRoot_ConfigOverride loads a YAML file and lets --gap win over it.
func TestRoot_ConfigOverride(t *testing.T) {
	paths := writeInputs(t, "A", "A", "")
	cfgPath := filepath.Join(t.TempDir(), "trialign.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("gap_penalty: 7\n"), 0o600))

	out, _, err := execute(t, append([]string{"--config", cfgPath}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "Score: -7\nA\nA\n-\n", out)

	out, _, err = execute(t, append([]string{"--config", cfgPath, "--gap", "2"}, paths...)...)
	require.NoError(t, err)
	assert.Equal(t, "Score: -2\nA\nA\n-\n", out)
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

// TestRoot_OutputFailureCountedOnce: a run whose output cannot be written is
// recorded as a single failed alignment.
func TestRoot_OutputFailureCountedOnce(t *testing.T) {
	paths := writeInputs(t, "AC", "AC", "AC")
	prom := filepath.Join(t.TempDir(), "trialign.prom")

	var errb bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(failWriter{})
	cmd.SetErr(&errb)
	cmd.SetArgs(append([]string{"--metrics-textfile", prom}, paths...))
	require.Error(t, cmd.Execute())

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `trialign_alignments_total{outcome="error"} 1`)
	assert.NotContains(t, string(data), `outcome="ok"`)
}

func TestRoot_InvalidSettings(t *testing.T) {
	paths := writeInputs(t, "A", "C", "G")

	_, _, err := execute(t, append([]string{"--gap", "-1"}, paths...)...)
	assert.Error(t, err)

	_, _, err = execute(t, append([]string{"--format", "xml"}, paths...)...)
	assert.ErrorIs(t, err, output.ErrUnknownFormat)

	_, _, err = execute(t, append([]string{"--max-cells", "4"}, paths...)...)
	assert.Error(t, err)

	_, _, err = execute(t, "-", "-", paths[2])
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "gap_penalty: 4")
	assert.Contains(t, out, "substitution:")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "error", outcome(os.ErrNotExist))
}
