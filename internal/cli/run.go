package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"text/tabwriter"

	"idwire/ident"
	"idwire/internal/analyze"
	"idwire/internal/decl"
	"idwire/internal/gen"
	"idwire/wire"
)

var identPkgPath = reflect.TypeFor[ident.PeerID]().PkgPath()

// App runs commands against one wire table.
type App struct {
	out    io.Writer
	logger *slog.Logger
	table  *wire.Table
}

// NewApp creates an App writing command output to out.
func NewApp(out io.Writer, logger *slog.Logger, table *wire.Table) *App {
	return &App{out: out, logger: logger, table: table}
}

// Run builds the identifier table and executes cfg.Command.
func Run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	table, err := ident.NewTable()
	if err != nil {
		return fmt.Errorf("building identifier table: %w", err)
	}

	logger.Debug("identifier table built", "rules", table.Len())

	return NewApp(stdout, logger, table).Run(ctx, cfg)
}

// Run executes cfg.Command.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	a.logger.Debug("running command", "command", cfg.Command)

	switch cfg.Command {
	case CmdManifest:
		return a.manifest(cfg.Output)
	case CmdCheck:
		return a.check(ctx, cfg.DeclPath, cfg.Patterns)
	case CmdGen:
		return a.generate(ctx, cfg)
	case CmdDump:
		return a.dump()
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}
}

func (a *App) manifest(path string) error {
	f := decl.FromTable(identPkgPath, a.table)

	if path != "" {
		if err := decl.WriteFile(f, path); err != nil {
			return err
		}

		a.logger.Info("manifest written", "path", path, "rules", len(f.Rules))

		return nil
	}

	data, err := decl.Marshal(f)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)

	return err
}

func (a *App) check(ctx context.Context, path string, patterns []string) error {
	f, err := decl.LoadFile(path)
	if err != nil {
		return err
	}

	if len(patterns) == 0 {
		patterns = f.Packages()
	}

	a.logger.Debug("loading packages", "patterns", patterns)

	analyzer := analyze.NewAnalyzer()
	analyzer.Context = ctx

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return err
	}

	res := decl.Validate(f, graph)
	res.Merge(*decl.Compare(f, a.table))

	for _, d := range res.All() {
		fmt.Fprintln(a.out, d.String())
	}

	a.logger.Info("declarations checked", "path", path,
		"errors", len(res.Errors), "warnings", len(res.Warnings), "infos", len(res.Infos))

	if res.HasErrors() {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%s: %d error(s)", path, len(res.Errors))}
	}

	return nil
}

func (a *App) generate(ctx context.Context, cfg *Config) error {
	genCfg := gen.DefaultGeneratorConfig()
	genCfg.PackageName = cfg.PackageName
	genCfg.OutputDir = cfg.OutDir

	table := a.table

	if cfg.DeclPath != "" {
		f, err := decl.LoadFile(cfg.DeclPath)
		if err != nil {
			return err
		}

		table, genCfg.Docs, err = selectDeclared(table, f)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.DeclPath, err)
		}

		a.logger.Debug("rules selected by declarations", "path", cfg.DeclPath, "rules", table.Len())
	}

	genCfg.PackageNames = a.packageNames(ctx, table)

	files, err := gen.NewGenerator(genCfg).Generate(table, cfg.ImportPath)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, cfg.OutDir); err != nil {
		return err
	}

	for _, f := range files {
		a.logger.Info("generated", "file", f.Filename, "dir", cfg.OutDir)
	}

	return nil
}

// selectDeclared narrows t to the enabled rules of f and collects their docs.
func selectDeclared(t *wire.Table, f *decl.File) (*wire.Table, map[string]string, error) {
	enabled := f.Enabled()

	names := make([]string, 0, len(enabled))
	docs := make(map[string]string, len(enabled))

	for _, r := range enabled {
		names = append(names, r.RuleName())

		if r.Doc != "" {
			docs[r.RuleName()] = r.Doc
		}
	}

	sub, err := t.Select(names...)
	if err != nil {
		return nil, nil, err
	}

	return sub, docs, nil
}

// packageNames loads the packages of the domain types to learn their
// declared names. Failing to load is not fatal: the generator then guesses
// and aliases the import.
func (a *App) packageNames(ctx context.Context, t *wire.Table) map[string]string {
	seen := map[string]struct{}{}

	var paths []string

	for _, c := range t.Rules() {
		p := c.Domain().PkgPath()
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		return nil
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Context = ctx

	graph, err := analyzer.LoadPackages(paths...)
	if err != nil {
		a.logger.Debug("package names unavailable, guessing from import paths", "error", err)
		return nil
	}

	names := make(map[string]string, len(graph.Packages))
	for p, info := range graph.Packages {
		names[p] = info.Name
	}

	return names
}

func (a *App) dump() error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tDOMAIN\tWIRE\tCHECKED")

	for _, c := range a.table.Rules() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", c.Name(), c.Domain(), c.Wire().GoName(), c.Fallible())
	}

	return w.Flush()
}

// Main parses args, runs the command and returns the process exit code.
func Main(ctx context.Context, args []string) int {
	cfg, exit, err := Parse(args, os.Stderr)
	if err == nil && !exit {
		err = Run(ctx, cfg, os.Stdout, os.Stderr)
	}

	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
