package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestWriteTextfile(t *testing.T) {
	PopulateEntries.WithLabelValues("metrics-test", OutcomeAdded).Inc()

	path := filepath.Join(t.TempDir(), "zipassets.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "zipassets_registry_populate_entries_total")
	assert.Contains(t, string(data), `registry="metrics-test"`)
}
