// Package parser reads .meta schema text line by line and builds the object
// model the generator emits C declarations from. Invalid names and types are
// recorded, not rejected: the model keeps every field so the generator can
// mirror failures inline as comments.
package parser

import "fmt"

// Default soft limits. They mirror the fixed array sizes of the original
// fixed-memory design; exceeding one is reported through the warning sink
// and further items are dropped, but the parse itself keeps going.
const (
	DefaultMaxObjects = 64
	DefaultMaxFields  = 32
)

// DefaultSuffix is appended to an object name to form the name of its
// generated struct (Player -> PlayerData). Reference-typed fields resolve to
// the same spelling.
const DefaultSuffix = "Data"

// FieldStatus classifies the outcome of resolving a single field line.
type FieldStatus int

const (
	FieldOK FieldStatus = iota
	// FieldBadType means the declared type is neither a primitive nor an
	// object already present in the registry. Takes precedence over
	// FieldBadName when both apply.
	FieldBadType
	// FieldBadName means the field name contains forbidden characters,
	// starts with a digit, or is itself a primitive type spelling.
	FieldBadName
)

func (s FieldStatus) String() string {
	switch s {
	case FieldOK:
		return "ok"
	case FieldBadType:
		return "invalid_type"
	case FieldBadName:
		return "invalid_name"
	default:
		return fmt.Sprintf("FieldStatus(%d)", int(s))
	}
}

// MarshalJSON emits the status as its code string so model dumps stay
// readable for tooling.
func (s FieldStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Field is one name/type pair inside an object. It is never mutated after
// the resolver creates it.
type Field struct {
	Name string `json:"name"`
	// RawType is the type token exactly as written in the source. The
	// generator quotes it in the diagnostic for unresolved types.
	RawType string `json:"type"`
	// ResolvedType is the output spelling: the primitive itself, or the
	// referenced object's struct name. Equal to RawType when unresolved.
	ResolvedType string      `json:"resolved_type"`
	Status       FieldStatus `json:"status"`
}

// Object is a named aggregate parsed from an `obj ::` block.
//
// Object names are deliberately not run through the field-name rules; the
// only check they ever get is the generator's reserved-primitive test. That
// asymmetry is inherited behavior, kept as-is.
type Object struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`

	full bool // field limit reached, further fields are dropped
}

// Schema is the ordered result of one parse: every object that was opened,
// in source order, duplicates included.
type Schema struct {
	Objects []*Object `json:"objects"`
}

// Limits bounds how much a single parse accumulates. Zero or negative values
// fall back to the defaults.
type Limits struct {
	MaxObjects int
	MaxFields  int
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{MaxObjects: DefaultMaxObjects, MaxFields: DefaultMaxFields}
}

// WarnFunc receives human-readable notices for unresolved types and exceeded
// limits. It is a side channel only; it never changes what gets parsed or
// emitted. A nil sink is silent.
type WarnFunc func(format string, args ...any)
