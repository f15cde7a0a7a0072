package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNotGenerated is returned by WriteFiles when the target exists and was
// not written by a generator.
var ErrNotGenerated = errors.New("existing file is not generated code")

// generatedHeader is the marker go/build and linters recognise.
var generatedHeader = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// WriteFiles writes all generated files to outputDir, creating it if needed.
// Hand-written files are never overwritten.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := checkOverwrite(outputPath); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func checkOverwrite(path string) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(existing)) == 0 || generatedHeader.Match(existing) {
		return nil
	}

	return ErrNotGenerated
}
