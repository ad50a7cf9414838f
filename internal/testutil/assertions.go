package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStartupFailed checks that the app refused to start and that the
// error mentions every given fragment.
func AssertStartupFailed(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()

	require.Error(t, result.Err, "app.NewApp() should have panicked, but it did not")
	require.Nil(t, result.App)
	for _, f := range fragments {
		require.True(t, strings.Contains(result.Err.Error(), f), "expected startup error to mention %q, got: %v", f, result.Err)
	}
}
