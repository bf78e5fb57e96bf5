package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "vault.db", want: "vault.db"},
		{dsn: "file:data/vault.db?_busy_timeout=5000", want: "data/vault.db"},
		{dsn: ":memory:", want: ""},
		{dsn: "file::memory:?cache=shared", want: ""},
		{dsn: "file:vault?mode=memory", want: ""},
		{dsn: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, dbFilePath(tt.dsn))
		})
	}
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vault.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// existing files are left untouched
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
