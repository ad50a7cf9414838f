package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/visgallery/internal/cli"
	"github.com/vk/visgallery/internal/testutil"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An unterminated block fails in the HCL parser inside app.NewApp().
	invalidHCL := `
		visualization {
			title = "Weather in Boulder"
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	args := []string{"-views", tempDir, filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to load catalog"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_BadFlag(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"-log-level", "loud", "catalog"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Check(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, testutil.SampleFiles())
	out := &bytes.Buffer{}

	err := run(context.Background(), out, []string{
		"-check",
		"-log-level", "error",
		"-base-path", "/",
		"-views", filepath.Join(root, "views"),
		filepath.Join(root, "catalog"),
	})

	require.NoError(t, err)
	require.Contains(t, out.String(), "catalog ok: 3 visualizations, 2 routes, 1 external")
	require.Contains(t, out.String(), "/bpm-3")
	require.Contains(t, out.String(), "(bpm3)")
}

func TestRun_CheckFailsOnOrphanView(t *testing.T) {
	t.Parallel()

	files := testutil.SampleFiles()
	files["views/covid.html"] = "orphan"
	root := testutil.WriteFiles(t, files)

	err := run(context.Background(), &bytes.Buffer{}, []string{
		"-check",
		"-base-path", "/",
		"-views", filepath.Join(root, "views"),
		filepath.Join(root, "catalog"),
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "catalog reconciliation failed")
	require.Contains(t, err.Error(), "covid: view module has no visualization")
}
