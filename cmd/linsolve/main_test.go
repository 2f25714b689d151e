package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_Success exercises the happy path on a small system and checks the
// report format plus exit code 0.
func TestRun_Success(t *testing.T) {
	var out, errBuf bytes.Buffer

	code := run([]string{"-s", "8"}, &out, &errBuf)

	require.Equal(t, exitOK, code)
	require.Contains(t, out.String(), "Size: 8 rows")
	require.Contains(t, out.String(), "Time: ")
	require.Contains(t, out.String(), "Correct solution found.")
	require.Empty(t, errBuf.String())
}

// TestRun_NonPositiveSize checks that -s 0 warns and falls back to the
// default dimension instead of failing.
func TestRun_NonPositiveSize(t *testing.T) {
	if testing.Short() {
		t.Skip("solves the full 1024-row default system")
	}
	var out, errBuf bytes.Buffer

	code := run([]string{"-s", "0", "-tol", "1e-6"}, &out, &errBuf)

	require.Equal(t, exitOK, code)
	require.Contains(t, out.String(), "-s is non-positive... using 1024")
	require.Contains(t, out.String(), "Size: 1024 rows")
}

// TestRun_ConfigFile verifies YAML config loading and that explicit flags
// win over config values.
func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 6\ntolerance: 1e-8\n"), 0o600))

	var out, errBuf bytes.Buffer
	code := run([]string{"-config", path}, &out, &errBuf)
	require.Equal(t, exitOK, code)
	require.Contains(t, out.String(), "Size: 6 rows") // size came from config

	// An explicit -s overrides the config's size.
	out.Reset()
	errBuf.Reset()
	code = run([]string{"-config", path, "-s", "4"}, &out, &errBuf)
	require.Equal(t, exitOK, code)
	require.Contains(t, out.String(), "Size: 4 rows")
}

// TestRun_ConfigErrors maps unreadable or malformed configs to exit 1.
func TestRun_ConfigErrors(t *testing.T) {
	var out, errBuf bytes.Buffer

	code := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out, &errBuf)
	require.Equal(t, exitConfig, code)
	require.Contains(t, errBuf.String(), "read config")

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("size: [not an int\n"), 0o600))

	out.Reset()
	errBuf.Reset()
	code = run([]string{"-config", bad}, &out, &errBuf)
	require.Equal(t, exitConfig, code)
	require.Contains(t, errBuf.String(), "parse config")
}

// TestLoadConfig_PartialKeys ensures absent keys stay nil so defaults apply.
func TestLoadConfig_PartialKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 12\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Size)
	require.Equal(t, 12, *cfg.Size)
	require.Nil(t, cfg.Tolerance) // absent, CLI default wins
}
