package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"idwire/internal/common"
	"idwire/primitive"
	"idwire/wire"
)

// DefaultFilename is the name of the generated boundary file.
const DefaultFilename = "idwire_boundary.go"

var wirePkgPath = reflect.TypeFor[wire.Table]().PkgPath()

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is where the unformatted sidecar goes when formatting fails.
	OutputDir string
	// Filename of the generated file.
	Filename string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// PackageNames maps import paths to their declared package names. Paths
	// not listed get common.PkgName's guess.
	PackageNames map[string]string
	// Docs maps rule names to text appended to their Lift/Lower comments.
	Docs map[string]string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "boundary",
		OutputDir:        "./boundary",
		Filename:         DefaultFilename,
		GenerateComments: true,
	}
}

// Generator generates the boundary shim from a wire table.
type Generator struct {
	config GeneratorConfig

	// contextPkgPath is the import path of the generated package. Types
	// declared there are written without a qualifier.
	contextPkgPath string

	imports map[string]importSpec
	aliases map[string]string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "idwire_boundary.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits the boundary file for every rule of t. pkgPath is the import
// path the file will live in, or "" when it is outside the module.
//
// When the source does not format, the unformatted file is returned together
// with the error.
func (g *Generator) Generate(t *wire.Table, pkgPath string) ([]GeneratedFile, error) {
	if t == nil {
		return nil, fmt.Errorf("generating %s: table is nil", g.config.Filename)
	}

	g.contextPkgPath = pkgPath
	g.imports = make(map[string]importSpec)
	g.aliases = make(map[string]string)

	data := &templateData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
	}

	rules := t.Rules()

	// checked bodies spell fmt and wire unqualified, so they claim the names first
	for _, c := range rules {
		if c.Fallible() {
			g.addImport("fmt")
			g.addImport(wirePkgPath)

			break
		}
	}

	for _, c := range rules {
		r, err := g.buildRule(c)
		if err != nil {
			return nil, fmt.Errorf("generating rule %s: %w", c.Name(), err)
		}

		data.Rules = append(data.Rules, *r)
	}

	for _, imp := range g.imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	var buf bytes.Buffer
	if err := boundaryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return []GeneratedFile{{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("formatting code: %w", err)
	}

	return []GeneratedFile{{
		Filename: g.config.Filename,
		Content:  formatted,
	}}, nil
}

func (g *Generator) buildRule(c wire.Converter) (*ruleData, error) {
	name := c.Name()
	if !token.IsIdentifier(name) || !common.IsExportedName(name) {
		return nil, fmt.Errorf("rule name %q is not an exported Go identifier", name)
	}

	domain := c.Domain()
	domainRef := g.typeRef(domain)
	wireRef := c.WireType().Name()

	r := &ruleData{
		Name:       name,
		Doc:        commentLines(g.config.Docs[name]),
		DomainID:   domain.PkgPath() + "." + domain.Name(),
		DomainType: domainRef,
		WireType:   wireRef,
		Fallible:   c.Fallible(),
	}

	invalidErr := ""
	if r.Fallible {
		invalidErr = g.addImport(wirePkgPath) + ".ErrInvalidWireValue"
	}

	var err error

	r.LiftBody, err = primitive.Generate(c.WireType(), domain, "in", "out", primitive.Options{
		DstType:    domainRef,
		FuncName:   "Lift" + name,
		InvalidErr: invalidErr,
	})
	if err != nil {
		return nil, fmt.Errorf("lift: %w", err)
	}

	r.LowerBody, err = primitive.Generate(domain, c.WireType(), "in", "out", primitive.Options{
		DstType:  wireRef,
		FuncName: "Lower" + name,
	})
	if err != nil {
		return nil, fmt.Errorf("lower: %w", err)
	}

	return r, nil
}

// typeRef returns how rtype is spelled in the generated file.
func (g *Generator) typeRef(rtype reflect.Type) string {
	pkgPath := rtype.PkgPath()
	if pkgPath == "" || pkgPath == g.contextPkgPath {
		return rtype.Name()
	}

	return g.addImport(pkgPath) + "." + rtype.Name()
}

// addImport records pkgPath and returns the name it is referred to by. Two
// packages with the same name get numbered aliases. The alias is written out
// whenever it differs from the last path element, so the file compiles
// whatever the package declares itself as.
func (g *Generator) addImport(pkgPath string) string {
	if imp, ok := g.imports[pkgPath]; ok {
		return imp.Name()
	}

	name := g.pkgName(pkgPath)

	alias := name
	for n := 2; ; n++ {
		if _, taken := g.aliases[alias]; !taken {
			break
		}

		alias = name + strconv.Itoa(n)
	}

	g.aliases[alias] = pkgPath

	imp := importSpec{Path: pkgPath}
	if alias != common.PkgAlias(pkgPath) {
		imp.Alias = alias
	}

	g.imports[pkgPath] = imp

	return alias
}

func (g *Generator) pkgName(pkgPath string) string {
	if name, ok := g.config.PackageNames[pkgPath]; ok && token.IsIdentifier(name) {
		return name
	}

	return common.PkgName(pkgPath)
}

// commentLines splits doc into lines for a // comment block.
func commentLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	return strings.Split(doc, "\n")
}
