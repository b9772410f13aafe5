package parser

// primitiveTypes is the fixed catalog of built-in scalar spellings a field
// type may use without referencing another object. The line grammar only
// produces single-token types, so multi-word spellings like "unsigned int"
// cannot occur; "signed" and "unsigned" stand on their own as C allows.
var primitiveTypes = map[string]struct{}{
	"char":     {},
	"signed":   {},
	"unsigned": {},
	"short":    {},
	"int":      {},
	"long":     {},
	"float":    {},
	"double":   {},
	"bool":     {},
	"size_t":   {},
	"int8_t":   {},
	"uint8_t":  {},
	"int16_t":  {},
	"uint16_t": {},
	"int32_t":  {},
	"uint32_t": {},
	"int64_t":  {},
	"uint64_t": {},
}

// IsPrimitive reports whether name is a built-in scalar type spelling.
// Primitive spellings are reserved: they resolve as field types but may not
// be used as field names, and an object carrying one produces no live
// declaration.
func IsPrimitive(name string) bool {
	_, ok := primitiveTypes[name]
	return ok
}
