package envloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.env", "# shared settings\nPOSTGRES_USER=app\nPOSTGRES_PASSWORD=\"s3cret\"\nexport REGION=eu-west-1\n")
	writeFile(t, dir, "local.env", "POSTGRES_PASSWORD=override\n")

	env, err := NewFileLoader(dir).Load(context.Background(), "base.env", "local.env")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"POSTGRES_USER":     "app",
		"POSTGRES_PASSWORD": "override",
		"REGION":            "eu-west-1",
	}, env)
}

func TestFileLoader_AbsolutePathIgnoresBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.env", "A=1\n")

	env, err := NewFileLoader("/nonexistent").Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "1", env["A"])
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := NewFileLoader(t.TempDir()).Load(context.Background(), "missing.env")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestFileLoader_NoFiles(t *testing.T) {
	env, err := NewFileLoader("").Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestFileLoader_AcceptsDottedKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.env", "com.example.flag=on\n")

	env, err := NewFileLoader(dir).Load(context.Background(), "app.env")

	require.NoError(t, err)
	assert.Equal(t, "on", env["com.example.flag"])
}
