package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

const usage = `
idwire - wire conversion rules for the engine's identifier types.

Usage:
  idwire [options] <command> [command options]

Commands:
  manifest   write the declaration manifest of the built-in table
  check      validate a declaration file against the code and the table
  gen        write the Go boundary shim
  dump       print the registered rules

Options:
`

// Parse processes command-line arguments. It returns the populated Config, a
// boolean reporting whether the program should exit cleanly (help was
// printed), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("idwire", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	cfg := &Config{}
	flagSet.StringVar(&cfg.LogLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, usageError(err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.Command = flagSet.Arg(0)

	cmdFlags := flag.NewFlagSet("idwire "+cfg.Command, flag.ContinueOnError)
	cmdFlags.SetOutput(output)

	switch cfg.Command {
	case CmdManifest:
		cmdFlags.StringVar(&cfg.Output, "o", "", "Write the manifest to this file instead of stdout.")
	case CmdCheck:
		cmdFlags.StringVar(&cfg.DeclPath, "decl", "", "Declaration file (.yaml, .yml or .hcl).")
		cmdFlags.Var((*patternList)(&cfg.Patterns), "pkg", "Package pattern to load (repeatable).")
	case CmdGen:
		cmdFlags.StringVar(&cfg.OutDir, "out", "./boundary", "Output directory.")
		cmdFlags.StringVar(&cfg.PackageName, "package", "boundary", "Name of the generated package.")
		cmdFlags.StringVar(&cfg.ImportPath, "import", "", "Import path of the output package, if it is in this module.")
		cmdFlags.StringVar(&cfg.DeclPath, "decl", "", "Only generate the enabled rules of this declaration file.")
	case CmdDump:
	default:
		flagSet.Usage()
		return nil, false, usageError(fmt.Errorf("unknown command %q", cfg.Command))
	}

	if err := cmdFlags.Parse(flagSet.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, usageError(err)
	}

	if cmdFlags.NArg() > 0 {
		return nil, false, usageError(fmt.Errorf("%s: unexpected arguments %q", cfg.Command, cmdFlags.Args()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError(err)
	}

	return cfg, false, nil
}
