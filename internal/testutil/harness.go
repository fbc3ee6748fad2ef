package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/yamlite/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles materializes the given relative-path/content pairs under a
// fresh temporary directory and returns its root. Subdirectories are
// created as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return tmpDir
}

// HarnessResult holds the outcomes of a conversion test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunConversion provides a standardized harness for end-to-end conversion
// tests using a default background context.
func RunConversion(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunConversionWithContext(context.Background(), t, files, cfg)
}

// RunConversionWithContext writes the given files into a temporary
// directory, points the app at them, and captures the rendered output
// and logs. cfg.InputPath is interpreted relative to the temporary
// directory; when empty, the directory itself is the input.
func RunConversionWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := WriteFiles(t, files)
	if cfg.InputPath == "" {
		cfg.InputPath = tmpDir
	} else {
		cfg.InputPath = filepath.Join(tmpDir, cfg.InputPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	runErr := app.New(outBuffer, logBuffer, validated).Run(ctx)

	if os.Getenv("YAMLITE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
