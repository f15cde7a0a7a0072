package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idwire/ident"
	"idwire/internal/cli"
	"idwire/internal/decl"
)

func run(t *testing.T, cfg *cli.Config) (string, string, error) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	var stdout, stderr bytes.Buffer
	err := cli.Run(t.Context(), cfg, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRunManifest(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, &cli.Config{Command: cli.CmdManifest})
	require.NoError(t, err)

	f, err := decl.Parse([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "idwire/ident", f.Package)
	require.Len(t, f.Rules, 4)
	assert.Equal(t, "uint64", f.Find(ident.PeerIDRule).Wire)
	assert.Equal(t, "int32", f.Find(ident.CounterRule).Wire)

	path := filepath.Join(t.TempDir(), "ident.yaml")

	stdout, stderr, err := run(t, &cli.Config{Command: cli.CmdManifest, Output: path, LogFormat: "json"})
	require.NoError(t, err)
	assert.Empty(t, stdout)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
	assert.Equal(t, "manifest written", entry["msg"])
	assert.Equal(t, path, entry["path"])

	written, err := decl.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, written)
}

func TestRunDump(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, &cli.Config{Command: cli.CmdDump})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "Counter")
	assert.Contains(t, lines[1], "ident.Counter")
	assert.Contains(t, lines[1], "int32")
	assert.Contains(t, lines[4], "SubscriptionID")
}

func TestRunGen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, stderr, err := run(t, &cli.Config{Command: cli.CmdGen, OutDir: dir, PackageName: "shim"})
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated")

	content, err := os.ReadFile(filepath.Join(dir, "idwire_boundary.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package shim")
	assert.Contains(t, string(content), "func LowerSubscriptionID(in ident.SubscriptionID) (out uint32) {")
}

func TestRunCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go tool")
	}

	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	_, _, err := run(t, &cli.Config{Command: cli.CmdManifest, Output: good})
	require.NoError(t, err)

	stdout, _, err := run(t, &cli.Config{Command: cli.CmdCheck, DeclPath: good})
	require.NoError(t, err)
	assert.Empty(t, stdout)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
package: idwire/ident
kinds:
  PeerID: uint32
  Lamport: uint32
  Counter: int32
`), 0o644))

	stdout, _, err = run(t, &cli.Config{Command: cli.CmdCheck, DeclPath: bad})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, stdout, "[PeerID] wire: [kind_mismatch]")
	assert.Contains(t, stdout, "[SubscriptionID]")

	_, _, err = run(t, &cli.Config{Command: cli.CmdCheck, DeclPath: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}

func TestRunGenFromDeclarations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	declPath := filepath.Join(dir, "ident.yaml")
	require.NoError(t, os.WriteFile(declPath, []byte(`
version: "1"
package: idwire/ident
rules:
  - type: PeerID
    wire: uint64
    disabled: true
  - type: Lamport
    wire: uint32
    disabled: true
  - type: Counter
    wire: int32
    disabled: true
  - type: SubscriptionID
    wire: uint32
    doc: Handle of a registered event subscription.
`), 0o644))

	outDir := filepath.Join(dir, "shim")

	_, _, err := run(t, &cli.Config{Command: cli.CmdGen, DeclPath: declPath, OutDir: outDir, PackageName: "shim"})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "idwire_boundary.go"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "func LiftSubscriptionID(in uint32) (out ident.SubscriptionID) {")
	assert.Contains(t, string(content), "// Handle of a registered event subscription.")
	assert.NotContains(t, string(content), "PeerID")
	assert.NotContains(t, string(content), "Lamport")
	assert.NotContains(t, string(content), "LiftCounter")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte(`
version: "1"
package: idwire/ident
kinds:
  Epoch: uint32
`), 0o644))

	_, _, err = run(t, &cli.Config{Command: cli.CmdGen, DeclPath: unknown, OutDir: outDir, PackageName: "shim"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Epoch")
}

func TestMainExitCodes(t *testing.T) {
	assert.Equal(t, 2, cli.Main(t.Context(), []string{"frobnicate"}))
	assert.Equal(t, 0, cli.Main(t.Context(), []string{"-h"}))
}
