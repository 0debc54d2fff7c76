package parse

import "github.com/goccy/go-yaml"

type parseOpts struct {
	source     string
	references []string
}

func (o *parseOpts) decodeOptions() []yaml.DecodeOption {
	res := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if len(o.references) != 0 {
		res = append(res, yaml.ReferenceFiles(o.references...))
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseSource names the input in errors, typically its file path.
func ParseSource(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}

// ParseReferences makes the anchors defined in the given YAML files
// available to aliases in the parsed text.
func ParseReferences(files ...string) ParseOption {
	return func(o *parseOpts) {
		o.references = append(o.references, files...)
	}
}
