package encode

import (
	"fmt"
	"strings"

	"github.com/signadot/yamlmerge/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	AnchorColor
)

type Colors struct {
	Map map[Colorable][]color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Map: map[Colorable][]color.Attribute{
			{Type: ir.ObjectType, Attr: FieldColor}:  {color.FgHiCyan},
			{Type: ir.StringType, Attr: ValueColor}:  {color.FgHiGreen},
			{Type: ir.NumberType, Attr: ValueColor}:  {color.FgHiMagenta},
			{Type: ir.BoolType, Attr: ValueColor}:    {color.FgHiYellow},
			{Type: ir.ObjectType, Attr: AnchorColor}: {color.FgHiBlue, color.Bold},
		},
	}
}

func (c *Colors) property(t ir.Type, a ColorAttr) printer.PrintFunc {
	attrs := c.Map[Colorable{Type: t, Attr: a}]
	if len(attrs) == 0 {
		return nil
	}
	prefix := &strings.Builder{}
	for _, attr := range attrs {
		fmt.Fprintf(prefix, "\x1b[%dm", attr)
	}
	prop := &printer.Property{
		Prefix: prefix.String(),
		Suffix: fmt.Sprintf("\x1b[%dm", color.Reset),
	}
	return func() *printer.Property { return prop }
}

func (c *Colors) colorize(d []byte) []byte {
	p := printer.Printer{
		MapKey: c.property(ir.ObjectType, FieldColor),
		Anchor: c.property(ir.ObjectType, AnchorColor),
		Alias:  c.property(ir.ObjectType, AnchorColor),
		String: c.property(ir.StringType, ValueColor),
		Number: c.property(ir.NumberType, ValueColor),
		Bool:   c.property(ir.BoolType, ValueColor),
	}
	res := p.PrintTokens(lexer.Tokenize(string(d)))
	if !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return []byte(res)
}
