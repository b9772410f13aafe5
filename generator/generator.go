// Package generator turns a parsed schema into C typedef declarations.
// Diagnostics are embedded as comments next to the offending construct, so
// the output compiles even when the schema had errors.
package generator

import (
	"bytes"
	"fmt"

	"github.com/shreejitmurthy/meta-parser/parser"
)

// DefaultHeaderComment marks the output as generated.
const DefaultHeaderComment = "/* Auto-generated code - do not edit! */"

type Generator struct {
	suffix string
	header string
	schema *parser.Schema
}

// New returns a Generator for schema. Empty suffix or headerComment fall
// back to the defaults; the suffix must match the one the parser resolved
// reference types with.
func New(suffix, headerComment string, schema *parser.Schema) *Generator {
	if suffix == "" {
		suffix = parser.DefaultSuffix
	}
	if headerComment == "" {
		headerComment = DefaultHeaderComment
	}
	return &Generator{
		suffix: suffix,
		header: headerComment,
		schema: schema,
	}
}

// Generate renders the whole output file. It never fails on schema content;
// every object is emitted, valid or not.
func (g *Generator) Generate() (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n\n", g.header)

	emitted := make(map[string]bool, len(g.schema.Objects))
	for _, obj := range g.schema.Objects {
		g.writeObject(&buf, obj, emitted)
	}

	return buf.String(), nil
}

// writeObject emits one typedef block. An object whose name collides with a
// primitive spelling gets a diagnostic and an empty commented-out skeleton
// instead of a live declaration; this is the only place object names are
// checked at all. A repeat of a name already emitted live gets the same
// skeleton treatment: both copies stay in the registry, but a second live
// definition would not be legal C.
func (g *Generator) writeObject(buf *bytes.Buffer, obj *parser.Object, emitted map[string]bool) {
	structName := obj.Name + g.suffix

	if parser.IsPrimitive(obj.Name) {
		fmt.Fprintf(buf, "// Reserved object name '%s'\n", obj.Name)
		fmt.Fprintf(buf, "// typedef struct %s {\n", structName)
		fmt.Fprintf(buf, "// } %s;\n\n", structName)
		return
	}

	if emitted[obj.Name] {
		fmt.Fprintf(buf, "// Duplicate object name '%s'\n", obj.Name)
		fmt.Fprintf(buf, "// typedef struct %s {\n", structName)
		fmt.Fprintf(buf, "// } %s;\n\n", structName)
		return
	}
	emitted[obj.Name] = true

	fmt.Fprintf(buf, "typedef struct %s {\n", structName)
	for _, f := range obj.Fields {
		switch f.Status {
		case parser.FieldBadType:
			// The original type token, not the resolved one.
			fmt.Fprintf(buf, "   // %s %s;  // Error: Unresolved or invalid type '%s'\n", f.RawType, f.Name, f.RawType)
		case parser.FieldBadName:
			fmt.Fprintf(buf, "   // %s %s;  // Error: Cannot use special characters or numbers in field names.\n", f.ResolvedType, f.Name)
		default:
			fmt.Fprintf(buf, "   %s %s;\n", f.ResolvedType, f.Name)
		}
	}
	fmt.Fprintf(buf, "} %s;\n\n", structName)
}
