package cli

import (
	"fmt"
	"strings"
)

// Command names.
const (
	CmdManifest = "manifest"
	CmdCheck    = "check"
	CmdGen      = "gen"
	CmdDump     = "dump"
)

// Config is the parsed command line.
type Config struct {
	Command   string
	LogLevel  string
	LogFormat string

	// Output is the manifest destination; empty means stdout.
	Output string

	// DeclPath is the declaration file to check, or for gen the file whose
	// enabled rules are generated.
	DeclPath string
	// Patterns are the packages loaded for check. Defaults to the packages
	// the declaration file names.
	Patterns []string

	// OutDir, PackageName and ImportPath configure gen.
	OutDir      string
	PackageName string
	ImportPath  string
}

// Validate checks the values flags cannot constrain on their own.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	switch c.Command {
	case CmdCheck:
		if c.DeclPath == "" {
			return fmt.Errorf("%s: -decl is required", c.Command)
		}
	case CmdGen:
		if c.OutDir == "" || c.PackageName == "" {
			return fmt.Errorf("%s: -out and -package must not be empty", c.Command)
		}
	}

	return nil
}

// patternList collects a repeatable flag.
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}
