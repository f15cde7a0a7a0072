package gen_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"idwire/examples/engine"
	"idwire/ident"
	"idwire/internal/gen"
	"idwire/wire"
)

// TestBoundaryExample regenerates examples/boundary and runs its tests, so the
// checked in file always matches what the generator produces.
func TestBoundaryExample(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	outDir := filepath.Join(repoRoot, "examples", "boundary")

	table, err := ident.Register(wire.NewBuilder()).
		Add(wire.NewChecked[engine.ContainerType, uint8]("ContainerType")).
		Build()
	require.NoError(t, err)

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = outDir

	files, err := gen.NewGenerator(cfg).Generate(table, "idwire/examples/boundary")
	require.NoError(t, err)
	require.NoError(t, gen.WriteFiles(files, outDir))

	cmd := exec.CommandContext(t.Context(), "go", "test", "./examples/boundary", "-count=1")
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	require.NoError(t, err, "go test failed:\n%s", string(b))
}
