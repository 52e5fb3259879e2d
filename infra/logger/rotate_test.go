package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "alloc.log")
	w, err := NewRotatingWriter(RotateOptions{Path: path, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)

	l := NewZerologLogger("session", Options{Format: "json", Out: w})
	l.Infof("written to file")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"component":"session"`)
}

func TestRotatingWriterRequiresPath(t *testing.T) {
	_, err := NewRotatingWriter(RotateOptions{})
	require.Error(t, err)
}
