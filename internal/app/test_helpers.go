package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/choicegen/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. The listing
// is captured in the returned bytes.Buffer and logs in the SafeBuffer.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *bytes.Buffer, *SafeBuffer, error) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	if appConfig.LogFormat == "" {
		appConfig.LogFormat = "text"
	}
	testApp, err := NewApp(out, logBuffer, appConfig, loader)

	t.Cleanup(func() {
		if os.Getenv("CHOICEGEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer, err
}
