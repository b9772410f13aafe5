package parser

import "testing"

func TestValidFieldName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"health", true},
		{"_id", true},
		{"hp2", true},
		{"playerName", true},
		{"", false},
		{"!health", false},
		{"he@rt", false},
		{"gold$", false},
		{"a#b", false},
		{"pos(x)", false},
		{"9lives", false},
		{"0", false},
		{"int", false},
		{"float", false},
		{"size_t", false},
		{"uint32_t", false},
	}

	for _, tt := range tests {
		if got := ValidFieldName(tt.name); got != tt.want {
			t.Errorf("ValidFieldName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, name := range []string{"char", "short", "int", "long", "float", "double", "bool", "size_t", "unsigned", "int8_t", "uint64_t"} {
		if !IsPrimitive(name) {
			t.Errorf("IsPrimitive(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"Player", "Int", "string", "", "int *"} {
		if IsPrimitive(name) {
			t.Errorf("IsPrimitive(%q) = true, want false", name)
		}
	}
}
