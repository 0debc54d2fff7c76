package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is one segment of a kinded path, linked to the rest of the path
// through Next.
type KPath struct {
	Field    *string // Object field name
	FieldAll bool    // Object field wildcard .*
	Index    *int    // Array index
	IndexAll bool    // Array wildcard [*]
	Next     *KPath  // Next segment, nil for the leaf
}

// String returns the kinded path text, quoting fields where needed.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteField(*x.Field))
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// HasWildcard reports whether any segment of p is a wildcard.
func (p *KPath) HasWildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

// NeedsQuote reports whether field must be quoted in a kinded path.
func NeedsQuote(field string) bool {
	return field == "" || field == "*" || strings.ContainsAny(field, ".[]'\"")
}

// QuoteField returns field as it appears in a kinded path.
func QuoteField(field string) string {
	if !NeedsQuote(field) {
		return field
	}
	return strconv.Quote(field)
}

// Parse parses a kinded path. The empty path denotes the root and parses
// to nil.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

func parseKFrag(frag string, parent *KPath, first bool) error {
	switch frag[0] {
	case '.':
		if first {
			return errors.New("leading '.'")
		}
		frag = frag[1:]
		if frag == "" {
			return errors.New("expected field after '.'")
		}
		if frag[0] == '*' && (len(frag) == 1 || frag[1] == '.' || frag[1] == '[') {
			parent.FieldAll = true
			return parseNext(frag[1:], parent)
		}
		return parseField(frag, parent)
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return errors.New("expected '[' <index> ']'")
		}
		is := frag[1:i]
		if is == "*" {
			parent.IndexAll = true
		} else {
			u64, err := strconv.ParseUint(is, 10, 31)
			if err != nil {
				return fmt.Errorf("invalid array index %q", is)
			}
			index := int(u64)
			parent.Index = &index
		}
		return parseNext(frag[i+1:], parent)
	default:
		if !first {
			return fmt.Errorf("expected '.' or '[', got %q", frag[0])
		}
		if frag[0] == '*' && (len(frag) == 1 || frag[1] == '.' || frag[1] == '[') {
			parent.FieldAll = true
			return parseNext(frag[1:], parent)
		}
		return parseField(frag, parent)
	}
}

func parseField(frag string, parent *KPath) error {
	field, rest, err := parseKField(frag)
	if err != nil {
		return err
	}
	parent.Field = &field
	return parseNext(rest, parent)
}

func parseNext(rest string, parent *KPath) error {
	if rest == "" {
		return nil
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, false); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseKField parses an object field name from the start of frag, stopping
// at '.' or '['. Quoted fields may use single or double quotes with
// backslash escapes.
func parseKField(frag string) (field, rest string, err error) {
	if frag[0] == '\'' || frag[0] == '"' {
		n, err := quotedEnd(frag)
		if err != nil {
			return "", "", err
		}
		return unquote(frag[:n]), frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", errors.New("empty field")
	}
	return frag[:i], frag[i:], nil
}

func quotedEnd(frag string) (int, error) {
	q := frag[0]
	escaped := false
	for i := 1; i < len(frag); i++ {
		switch {
		case escaped:
			escaped = false
		case frag[i] == '\\':
			escaped = true
		case frag[i] == q:
			return i + 1, nil
		}
	}
	return 0, errors.New("unterminated quoted field")
}

func unquote(quoted string) string {
	if quoted[0] == '"' {
		if s, err := strconv.Unquote(quoted); err == nil {
			return s
		}
	}
	b := &strings.Builder{}
	body := quoted[1 : len(quoted)-1]
	escaped := false
	for _, r := range body {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
