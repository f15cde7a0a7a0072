package decl

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idwire/ident"
)

func identFile() *File {
	return &File{
		Version: "1",
		Package: "idwire/ident",
		Rules: []Rule{
			{Type: "Lamport", Wire: "uint32"},
			{Type: "PeerID", Wire: "uint64"},
			{Type: "Counter", Wire: "int32", Doc: "per-peer operation counter"},
			{Type: "SubscriptionID", Wire: "uint32"},
		},
	}
}

func TestParse(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "ident.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(identFile(), f); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, f.Kinds)
	assert.Equal(t, "Counter", f.Rules[2].RuleName())
}

func TestParseHCL(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "ident.hcl"))
	require.NoError(t, err)

	if diff := cmp.Diff(identFile(), f); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMinimal(t *testing.T) {
	yaml := `
package: idwire/ident
rules:
  - type: PeerID
    wire: uint64
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version) // Default version
	require.Len(t, f.Rules, 1)
	assert.Equal(t, "PeerID", f.Rules[0].Type)
	assert.Equal(t, "uint64", f.Rules[0].Wire)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("rules: [this is: not valid"))
	require.Error(t, err)

	_, err = Parse([]byte("rules: just a string"))
	require.Error(t, err)

	_, err = ParseHCL("decl.hcl", []byte(`version = "1"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")

	_, err = ParseHCL("decl.hcl", []byte(`rule { wire = "uint32" }`))
	require.Error(t, err)

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	want := identFile()
	want.Rules = append(want.Rules, Rule{
		Type:     "idwire/examples/engine.ContainerType",
		Name:     "ContainerType",
		Wire:     "uint8",
		Checked:  true,
		Disabled: true,
	})

	path := filepath.Join(t.TempDir(), "idwire.yaml")
	require.NoError(t, WriteFile(want, path))

	got, err := LoadFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalOmitsDefaults(t *testing.T) {
	data, err := Marshal(&File{
		Version: "1",
		Package: "idwire/ident",
		Rules:   []Rule{{Type: "PeerID", Wire: "uint64"}},
	})
	require.NoError(t, err)

	assert.Equal(t, `version: "1"
package: idwire/ident
rules:
    - type: PeerID
      wire: uint64
`, string(data))
}

func TestFromTable(t *testing.T) {
	table, err := ident.NewTable()
	require.NoError(t, err)

	got := FromTable("idwire/ident", table)

	want := &File{
		Version: "1",
		Package: "idwire/ident",
		Rules: []Rule{
			{Type: "Counter", Wire: "int32"},
			{Type: "Lamport", Wire: "uint32"},
			{Type: "PeerID", Wire: "uint64"},
			{Type: "SubscriptionID", Wire: "uint32"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromTable() mismatch (-want +got):\n%s", diff)
	}

	other := FromTable("idwire/other", table)
	assert.Equal(t, "idwire/ident.Counter", other.Rules[0].Type)

	empty := FromTable("idwire/ident", nil)
	assert.Equal(t, "idwire/ident", empty.Package)
	assert.Empty(t, empty.Rules)
	assert.Equal(t, "Counter", other.Rules[0].RuleName())
}

func TestFilePackages(t *testing.T) {
	f := &File{
		Package: "idwire/ident",
		Rules: []Rule{
			{Type: "PeerID"},
			{Type: "idwire/examples/engine.ContainerType"},
			{Type: "idwire/ident.Lamport"},
			{Type: "idwire/examples/engine.Timestamp"},
		},
	}

	assert.Equal(t, []string{"idwire/ident", "idwire/examples/engine"}, f.Packages())
}
