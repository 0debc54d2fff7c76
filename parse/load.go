package parse

import (
	"os"

	"github.com/signadot/yamlmerge/ir"
)

// Load parses a source given either as a file path or as YAML text.
//
// If fileOrText names an existing regular file, the file's contents are
// parsed; otherwise fileOrText itself is parsed as YAML. This is ambiguous
// by nature: text which happens to equal the name of an existing file is
// always read as that file. Callers holding text which must never be
// mistaken for a path should use Parse.
//
// A file which exists but cannot be read yields an *IOError. Invalid YAML
// yields a *ParseError. In both cases nothing is returned.
func Load(fileOrText string, opts ...ParseOption) ([]*ir.Node, error) {
	data, path, err := resolve(fileOrText)
	if err != nil {
		return nil, err
	}
	if path != "" {
		opts = append([]ParseOption{ParseSource(path)}, opts...)
	}
	return Parse(data, opts...)
}

func resolve(fileOrText string) (data []byte, path string, err error) {
	fi, err := os.Stat(fileOrText)
	if err != nil || !fi.Mode().IsRegular() {
		return []byte(fileOrText), "", nil
	}
	data, err = os.ReadFile(fileOrText)
	if err != nil {
		return nil, "", &IOError{Path: fileOrText, Err: err}
	}
	return data, fileOrText, nil
}
