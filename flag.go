package cliopts

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"unicode/utf8"
)

// ValueType classifies the value a flag carries, as far as the declaration
// reveals it. The zero value means the declaration says nothing.
type ValueType string

const (
	TypeNone    ValueType = ""
	TypeString  ValueType = "string"
	TypeBoolean ValueType = "boolean"
	TypeNumber  ValueType = "number"

	// TypeOther covers defaults that are neither string, bool, nor numeric.
	// Such flags format their default as the Go type name and take the
	// generic "arg" placeholder.
	TypeOther ValueType = "other"
)

// Default is a flag's default value together with its display form. The
// display text is resolved once, from the value's dynamic type, when the
// flag records are derived.
type Default struct {
	Value any
	Text  string
}

// Flag is one canonical flag derived from an Options declaration. Flag
// records are rebuilt on every call that needs them and hold no state beyond
// the declaration.
type Flag struct {
	Name        string
	Aliases     []string // shortest first; declaration order breaks ties
	Type        ValueType
	Description string
	Placeholder string   // display name of the value; empty for none
	Default     *Default // nil when the flag has no default
}

// Flags derives the canonical flag records from opts, help flag included.
//
// A name is canonical if it appears in any of Descriptions, Booleans,
// Strings, Placeholders, or Defaults and is not an alias of another flag.
// Records are ordered by first mention across those sources (map-sourced
// names in lexicographic order, list-sourced names in declaration order),
// with the help flag moved to the end regardless of where it was declared.
// The same opts always yields the same records in the same order.
func Flags(opts Options) []Flag {
	norm := Normalize(opts)

	aliased := make(map[string]bool)
	for _, as := range norm.Aliases {
		for _, a := range as {
			aliased[a] = true
		}
	}

	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, k := range slices.Sorted(maps.Keys(norm.Descriptions)) {
		add(k)
	}
	for _, n := range norm.Booleans {
		add(n)
	}
	for _, n := range norm.Strings {
		add(n)
	}
	for _, k := range slices.Sorted(maps.Keys(norm.Placeholders)) {
		add(k)
	}
	for _, k := range slices.Sorted(maps.Keys(norm.Defaults)) {
		add(k)
	}

	// Alias exclusion runs after the union: a name counts as an alias even
	// when it also shows up in one of the sources above. The help flag is
	// then forced to the last position no matter what.
	canonical := names[:0]
	for _, n := range names {
		if n == HelpFlag || aliased[n] {
			continue
		}
		canonical = append(canonical, n)
	}
	canonical = append(canonical, HelpFlag)

	flags := make([]Flag, 0, len(canonical))
	for _, name := range canonical {
		flags = append(flags, deriveFlag(name, norm))
	}
	return flags
}

func deriveFlag(name string, norm Options) Flag {
	f := Flag{
		Name:        name,
		Description: norm.Descriptions[name],
	}

	f.Aliases = copyList(norm.Aliases[name])
	slices.SortStableFunc(f.Aliases, func(a, b string) int {
		return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	})

	if v, ok := norm.Defaults[name]; ok && v != nil {
		f.Default = &Default{Value: v, Text: formatDefault(v)}
	}

	f.Type = inferType(name, norm, f.Default)
	f.Placeholder = inferPlaceholder(norm.Placeholders[name], f.Type)
	return f
}

// inferType resolves a flag's type: the boolean list wins, then the string
// list, then the dynamic type of its default value.
func inferType(name string, norm Options, def *Default) ValueType {
	if slices.Contains(norm.Booleans, name) {
		return TypeBoolean
	}
	if slices.Contains(norm.Strings, name) {
		return TypeString
	}
	if def == nil {
		return TypeNone
	}
	switch def.Value.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return TypeNumber
	default:
		return TypeOther
	}
}

// inferPlaceholder picks the displayed value name. Boolean flags take no
// value, so they never display one, even when a placeholder was declared.
func inferPlaceholder(explicit string, typ ValueType) string {
	if typ == TypeBoolean {
		return ""
	}
	if explicit != "" {
		return explicit
	}
	switch typ {
	case TypeString:
		return "str"
	case TypeNumber:
		return "num"
	case TypeOther:
		return "arg"
	default:
		return ""
	}
}

// formatDefault renders a default value for usage output based on its
// dynamic type: strings quoted, numbers as decimal literals, booleans as
// true/false, and everything else as its Go type name.
func formatDefault(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%T", v)
	}
}
