package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEventWithoutPublicKeyIsNoOp(t *testing.T) {
	PublicKey = ""
	Init(false)
	// No network call should be attempted; absence of a panic/hang is the
	// assertion here.
	ReportEvent(BuildStarted)
}

func TestReportEventRespectsDisableMetrics(t *testing.T) {
	PublicKey = "phc_test_key"
	defer func() { PublicKey = "" }()
	Init(true)
	ReportEventWithProperties(QueryExecuted, map[string]interface{}{"op": "find"})
	// enableMetrics is false, so ReportEventWithProperties must return
	// before constructing a posthog client; no assertion beyond no-panic
	// is possible without a network double.
}

func TestLoadEnvFileCreatesAnonymousUUID(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	LoadEnvFile()

	envPath := filepath.Join(home, ".ucn", ".env")
	data, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "uuid=")
}

func TestLoadEnvFileIsIdempotent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	LoadEnvFile()
	envPath := filepath.Join(home, ".ucn", ".env")
	first, err := os.ReadFile(envPath)
	require.NoError(t, err)

	LoadEnvFile()
	second, err := os.ReadFile(envPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSetVersionStored(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("")
	assert.Equal(t, "1.2.3", appVersion)
}
