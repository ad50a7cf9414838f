package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/visgallery/internal/app"
	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/hcl_adapter"
	"github.com/vk/visgallery/internal/yaml_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// WriteFiles writes files, keyed by relative path, below a fresh temporary
// directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

// Loader returns the catalog loader the CLI uses.
func Loader() config.Loader {
	return config.MultiLoader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
}

// HarnessResult holds the outcome of starting an app in a test.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// StartApp lays out files (paths such as "catalog/main.hcl" and
// "views/bpm-3.html") in a temporary directory and constructs an app over
// them. A startup panic is returned as Err.
func StartApp(t *testing.T, files map[string]string, basePath string) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{
		CatalogPath:    filepath.Join(root, "catalog"),
		ViewsPath:      filepath.Join(root, "views"),
		ThumbnailsPath: filepath.Join(root, "thumbnails"),
		BasePath:       basePath,
		LogLevel:       "debug",
		LogFormat:      "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(context.Background(), logBuffer, cfg, Loader(), nil)
	}()

	if os.Getenv("VISGALLERY_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}
	return &HarnessResult{LogOutput: logBuffer.String(), App: testApp}
}
