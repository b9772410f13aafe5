package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// headerPrefix opens an object declaration: `obj :: Name {`.
const headerPrefix = "obj ::"

// fieldSep separates a field name from its type: `health :: int`.
const fieldSep = "::"

// maxLineBytes caps a single input line. bufio.Scanner's default 64KB token
// limit would turn one overlong line into a fatal parse error; only stream
// errors are supposed to be fatal, so allow far more than any sane schema
// line needs.
const maxLineBytes = 1 << 20

// Options configures a Parser. The zero value means defaults for everything
// and no warning sink.
type Options struct {
	Limits Limits
	// Suffix overrides DefaultSuffix for reference-type spellings. It must
	// match the suffix the generator is configured with.
	Suffix string
	Warn   WarnFunc
}

// Parser drives the line state machine. It is single-use-at-a-time: one
// Parse call runs to completion before the next starts, and the registry it
// writes to carries over between calls unless the caller resets it.
type Parser struct {
	reg    *Registry
	limits Limits
	suffix string
	warn   WarnFunc
}

// New returns a Parser resolving references against reg. A nil reg gets a
// fresh private registry.
func New(reg *Registry, opts Options) *Parser {
	if reg == nil {
		reg = NewRegistry()
	}
	limits := opts.Limits
	if limits.MaxObjects <= 0 {
		limits.MaxObjects = DefaultMaxObjects
	}
	if limits.MaxFields <= 0 {
		limits.MaxFields = DefaultMaxFields
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Parser{reg: reg, limits: limits, suffix: suffix, warn: opts.Warn}
}

// Registry returns the registry this parser resolves against.
func (p *Parser) Registry() *Registry {
	return p.reg
}

// Parse consumes schema text and returns every object opened, in source
// order. Content-level problems (bad names, unresolved types, exceeded
// limits, malformed lines) never produce an error; they are recorded on the
// model or reported through the warning sink. The only error is a failed
// read.
//
// An object still open at end of input is finalized as if closed; a missing
// trailing brace loses nothing.
func (p *Parser) Parse(r io.Reader) (*Schema, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	schema := &Schema{}
	var cur *Object
	opened := 0
	lineNum := 0

	finalize := func() {
		if cur != nil {
			schema.Objects = append(schema.Objects, cur)
			cur = nil
		}
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, headerPrefix):
			// A header both closes the previous object and opens the next;
			// it is never treated as a close even if it contains '}'.
			finalize()
			name, ok := parseObjectHeader(line)
			if !ok {
				continue
			}
			if opened >= p.limits.MaxObjects {
				p.warnf("L%d: maximum objects (%d) exceeded, skipping object '%s'", lineNum, p.limits.MaxObjects, name)
				continue
			}
			cur = &Object{Name: name, Fields: make([]Field, 0, 8)}
			p.reg.Add(cur)
			opened++

		case cur != nil && strings.Contains(line, "}"):
			finalize()

		case cur != nil:
			p.parseField(cur, line, lineNum)

		default:
			// Stray text between objects is tolerated.
		}
	}
	finalize()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return schema, nil
}

// parseObjectHeader extracts the object name from `obj :: Name {`. The name
// is the first token after the header prefix, captured exactly as written;
// it is not validated here (see Object).
func parseObjectHeader(line string) (string, bool) {
	rest := strings.TrimPrefix(line, headerPrefix)
	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[0], true
}

// parseField handles one body line: a comment, a `name :: type` pair, or
// noise. Malformed lines are dropped without any diagnostic; fields with
// invalid names or types are kept so the generator can emit them commented
// out.
func (p *Parser) parseField(obj *Object, line string, lineNum int) {
	if strings.HasPrefix(line, "#") {
		return
	}
	name, rawType, ok := splitFieldLine(line)
	if !ok {
		return
	}
	if obj.full {
		return
	}
	if len(obj.Fields) >= p.limits.MaxFields {
		obj.full = true
		p.warnf("L%d: maximum fields (%d) exceeded for object '%s', dropping the rest", lineNum, p.limits.MaxFields, obj.Name)
		return
	}

	f := Field{Name: name, RawType: rawType}
	resolved, typeOK := p.resolveType(rawType)
	f.ResolvedType = resolved
	switch {
	case !typeOK:
		f.Status = FieldBadType
		p.warnf("L%d: unresolved or invalid type '%s' for field '%s'", lineNum, rawType, name)
	case !ValidFieldName(name):
		f.Status = FieldBadName
	}
	obj.Fields = append(obj.Fields, f)
}

// splitFieldLine tokenizes `name :: type`. The name runs to the first
// whitespace, the separator may be padded with any amount of whitespace on
// either side, and anything after the type token is ignored.
func splitFieldLine(line string) (name, typ string, ok bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	name = line[:i]
	rest := strings.TrimLeft(line[i:], " \t")
	if !strings.HasPrefix(rest, fieldSep) {
		return "", "", false
	}
	tokens := strings.Fields(rest[len(fieldSep):])
	if len(tokens) == 0 {
		return "", "", false
	}
	return name, tokens[0], true
}

// resolveType maps a raw type token to its output spelling. The registry is
// consulted before the primitive table, so an object may shadow a primitive
// spelling for later references. Only objects already registered resolve;
// forward references stay invalid.
func (p *Parser) resolveType(raw string) (string, bool) {
	if obj := p.reg.Lookup(raw); obj != nil {
		return obj.Name + p.suffix, true
	}
	if IsPrimitive(raw) {
		return raw, true
	}
	return raw, false
}

func (p *Parser) warnf(format string, args ...any) {
	if p.warn != nil {
		p.warn(format, args...)
	}
}
