package nutrition

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// logRecorder captures zerolog output as JSON lines so tests can assert on
// what the engine logged.
type logRecorder struct {
	buf bytes.Buffer
}

func newLogRecorder() (*logRecorder, zerolog.Logger) {
	r := &logRecorder{}
	return r, zerolog.New(&r.buf).Level(zerolog.DebugLevel)
}

// records decodes every captured line.
func (r *logRecorder) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(r.buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

// atLevel returns the captured records with the given level.
func (r *logRecorder) atLevel(t *testing.T, level string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, rec := range r.records(t) {
		if rec["level"] == level {
			out = append(out, rec)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// maleMetric is the reference input used across tests.
func maleMetric() BiometricInput {
	return NewBiometricInput(30, 70, LegacyNumber(175), Male, Metric)
}
