package cliopts

// Result holds the outcome of a successful parse: every flag that resolved
// to a value, keyed by canonical name, plus the positional arguments in
// order. Flags with neither a command-line occurrence nor a default are
// absent from the map, except booleans, which always resolve.
type Result struct {
	Flags map[string]any
	Args  []string
}

// Has reports whether the named flag resolved to a value.
func (r Result) Has(name string) bool {
	_, ok := r.Flags[name]
	return ok
}

// Bool returns the named flag's value as a bool, or false when the flag is
// absent or holds another type.
func (r Result) Bool(name string) bool {
	v, _ := r.Flags[name].(bool)
	return v
}

// String returns the named flag's value as a string, or "" when the flag is
// absent or holds another type.
func (r Result) String(name string) string {
	v, _ := r.Flags[name].(string)
	return v
}

// Number returns the named flag's value as a float64, or 0 when the flag is
// absent or holds another type. Integer defaults are widened.
func (r Result) Number(name string) float64 {
	switch v := r.Flags[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

// Help reports whether the help flag was requested.
func (r Result) Help() bool {
	return r.Bool(HelpFlag)
}
