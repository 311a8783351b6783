// Package analytics implements ucn's opt-out usage telemetry, grounded on
// the teacher's analytics package: a posthog-go event sink gated by a
// locally-persisted anonymous uuid and a disable flag.
package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	posthog "github.com/posthog/posthog-go"
)

const (
	BuildStarted   = "ucn:build_started"
	BuildCompleted = "ucn:build_completed"
	BuildFailed    = "ucn:build_failed"

	QueryExecuted = "ucn:query_executed"
	QueryFailed   = "ucn:query_failed"

	MCPServerStarted   = "ucn:mcp_server_started"
	MCPServerStopped   = "ucn:mcp_server_stopped"
	MCPToolCall        = "ucn:mcp_tool_call"
	MCPClientConnected = "ucn:mcp_client_connected"
)

var (
	PublicKey     string
	enableMetrics bool
	appVersion    string
)

// Init enables or disables telemetry for the process lifetime.
func Init(disableMetrics bool) {
	enableMetrics = !disableMetrics
}

// SetVersion records the running binary's version for event properties.
func SetVersion(version string) {
	appVersion = version
}

func envFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ucn", ".env"), nil
}

func createEnvFile() {
	envFile, err := envFilePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ucn: could not locate home directory:", err)
		return
	}
	if _, err := os.Stat(envFile); !os.IsNotExist(err) {
		return
	}
	if err := os.MkdirAll(filepath.Dir(envFile), os.ModePerm); err != nil {
		fmt.Fprintln(os.Stderr, "ucn: could not create config directory:", err)
		return
	}
	env := map[string]string{"uuid": uuid.New().String()}
	if err := godotenv.Write(env, envFile); err != nil {
		fmt.Fprintln(os.Stderr, "ucn: could not write telemetry id:", err)
	}
}

// LoadEnvFile creates (if absent) and loads the anonymous telemetry id from
// ~/.ucn/.env.
func LoadEnvFile() {
	createEnvFile()
	envFile, err := envFilePath()
	if err != nil {
		return
	}
	_ = godotenv.Load(envFile)
}

// ReportEvent reports event with no extra properties.
func ReportEvent(event string) {
	ReportEventWithProperties(event, nil)
}

// ReportEventWithProperties sends event plus properties to PostHog.
// Properties must never contain PII: no file paths, source snippets, or
// symbol names.
func ReportEventWithProperties(event string, properties map[string]interface{}) {
	if !enableMetrics || PublicKey == "" {
		return
	}

	disableGeoIP := false
	client, err := posthog.NewWithConfig(PublicKey, posthog.Config{
		Endpoint:     "https://us.i.posthog.com",
		DisableGeoIP: &disableGeoIP,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer client.Close()

	capture := posthog.Capture{
		DistinctId: os.Getenv("uuid"),
		Event:      event,
	}

	props := posthog.NewProperties()
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("go_version", runtime.Version())
	if appVersion != "" {
		props.Set("ucn_version", appVersion)
	}
	for k, v := range properties {
		props.Set(k, v)
	}
	capture.Properties = props

	if err := client.Enqueue(capture); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
