package navprobe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	testCases := []struct {
		raw        string
		wantOrigin string
		wantPath   string
	}{
		{"http://localhost:8080", "http://localhost:8080", "/socket.io"},
		{"http://localhost:8080/", "http://localhost:8080", "/socket.io"},
		{"https://jpecht.com/vis/", "https://jpecht.com", "/vis/socket.io"},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			origin, path, err := Endpoint(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.wantOrigin, origin)
			require.Equal(t, tc.wantPath, path)
		})
	}

	_, _, err := Endpoint("/vis")
	require.ErrorContains(t, err, "must be absolute")
}

func TestRun_RequiresTarget(t *testing.T) {
	_, err := Run(context.Background(), Options{URL: "http://localhost:8080"})
	require.Error(t, err)
}

func TestReplySummary(t *testing.T) {
	require.Equal(t, "render /bpm-3 (4 bytes)", (&Reply{Event: "render", Payload: map[string]any{"path": "/bpm-3", "html": "<h1>"}}).Summary())
	require.Equal(t, "redirect //jpecht.com/x", (&Reply{Event: "redirect", Payload: map[string]any{"url": "//jpecht.com/x"}}).Summary())
	require.Equal(t, "not found /nope", (&Reply{Event: "not_found", Payload: map[string]any{"path": "/nope"}}).Summary())
	require.Equal(t, "nav_error boom", (&Reply{Event: "nav_error", Payload: map[string]any{"error": "boom"}}).Summary())
}
