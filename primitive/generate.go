package primitive

import (
	"bytes"
	"fmt"
	"reflect"
	"text/template"
)

var validatorType = reflect.TypeOf((*interface{ IsValid() bool })(nil)).Elem()

// Options tune the statements produced by Generate.
type Options struct {
	// DstType is the Go expression used to convert into dst, e.g. "ident.PeerID".
	// Defaults to the bare name of the dst type.
	DstType string
	// FuncName prefixes error messages of checked conversions.
	FuncName string
	// InvalidErr is the error expression wrapped by checked conversions.
	InvalidErr string
}

// IsChecked reports whether conversions into rtype must validate the value,
// which is the case for integer types implementing IsValid() bool.
func IsChecked(rtype reflect.Type) bool {
	return rtype != nil && rtype.Implements(validatorType)
}

// Generate returns the Go statements that assign src (of type src) to dst (of
// type dst). Only lossless pairs are supported; a dst with an IsValid method
// gets a validating body that returns an error, so the enclosing function
// must return (T, error).
func Generate(src, dst reflect.Type, srcName, dstName string, opts Options) ([]string, error) {
	srcKind := FromReflectType(src)
	dstKind := FromReflectType(dst)
	pair := ConversionPair{srcKind, dstKind}

	if !IsBijective(srcKind, dstKind) {
		return nil, fmt.Errorf("%s -> %s is not a lossless conversion (%s -> %s)", src, dst, srcKind, dstKind)
	}

	lines := templates[pair]
	if IsChecked(dst) {
		lines = checkedTemplates[pair]
	}

	dstType := opts.DstType
	if dstType == "" {
		dstType = dst.Name()
	}

	invalidErr := opts.InvalidErr
	if invalidErr == "" {
		invalidErr = "errors.ErrUnsupported"
	}

	res := make([]string, len(lines))
	for i, line := range lines {
		tmpl, err := template.New("line").Parse(line)
		if err != nil {
			panic(err)
		}

		var buf bytes.Buffer
		err = tmpl.Execute(&buf, map[string]any{
			"src":        srcName,
			"dst":        dstName,
			"srcType":    src.Name(),
			"dstType":    dstType,
			"funcName":   opts.FuncName,
			"invalidErr": invalidErr,
		})
		if err != nil {
			panic(err)
		}

		res[i] = buf.String()
	}

	return res, nil
}
