package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceURL_PassesURLsThrough(t *testing.T) {
	for _, raw := range []string{
		"file:///tmp/out/report.html",
		"http://localhost:8000/report.html",
	} {
		got, err := surfaceURL(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
}

func TestSurfaceURL_ConvertsLocalPath(t *testing.T) {
	got, err := surfaceURL(filepath.Join("out", "report.html"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "file://"), "expected a file URL, got %s", got)
	assert.True(t, filepath.IsAbs(strings.TrimPrefix(got, "file://")), "expected an absolute path in %s", got)
	assert.True(t, strings.HasSuffix(got, "report.html"))
}

func TestDefaultServiceURL(t *testing.T) {
	t.Setenv("SERVICE_URL", "")
	assert.Equal(t, "http://localhost:8000", defaultServiceURL())

	t.Setenv("SERVICE_URL", "http://analysis.internal:9000")
	assert.Equal(t, "http://analysis.internal:9000", defaultServiceURL())
}
