package meta

import (
	"sort"
	"strings"
)

// Conventional annotation keys. The engine does not restrict keys to this
// set; anything else is stored and ignored by consumers.
const (
	FlagAll       = "all"       // class: reflect every field and method
	FlagFields    = "fields"    // class: reflect fields unless disabled
	FlagWhitelist = "whitelist" // class: reflect only fields marked enable
	FlagMethods   = "methods"   // class: reflect zero-argument methods
	FlagEnable    = "enable"    // field/method: opt in (whitelist classes)
	FlagDisable   = "disable"   // field/method: opt out
	PropDefault   = "default"   // field: default value literal
	PropName      = "name"      // field: display name override
)

// Metadata is the parsed form of one annotation string.
type Metadata struct {
	props map[string]string
}

// Parse splits an annotation of the form `key, key:value, key:'quoted,value'`
// into a Metadata. It never fails: unbalanced quotes fall back to a literal
// split on every comma.
func Parse(text string) Metadata {
	m := Metadata{props: make(map[string]string)}
	text = strings.TrimSpace(text)
	if text == "" {
		return m
	}

	tokens, ok := splitQuoted(text)
	if !ok {
		tokens = strings.Split(text, ",")
	}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key, value, _ := strings.Cut(tok, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		m.props[key] = unquote(strings.TrimSpace(value))
	}

	return m
}

// splitQuoted splits on commas outside of '...' or "..." runs. The second
// result is false when a quote is left open.
func splitQuoted(text string) ([]string, bool) {
	var (
		out   []string
		b     strings.Builder
		quote rune
	)
	for _, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			b.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			b.WriteRune(r)
		case r == ',':
			out = append(out, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, false
	}
	out = append(out, b.String())

	return out, true
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '\'' || first == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// GetFlag reports whether key is present, regardless of its value.
func (m Metadata) GetFlag(key string) bool {
	_, ok := m.props[key]
	return ok
}

// GetProperty returns the value for key or "" when absent.
func (m Metadata) GetProperty(key string) string {
	return m.props[key]
}

func (m Metadata) Len() int {
	return len(m.props)
}

// Keys returns the stored keys in sorted order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m.props))
	for k := range m.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the canonical annotation text (sorted keys).
func (m Metadata) String() string {
	parts := make([]string, 0, len(m.props))
	for _, k := range m.Keys() {
		v := m.props[k]
		switch {
		case v == "":
			parts = append(parts, k)
		case strings.ContainsAny(v, ",:"):
			parts = append(parts, k+":'"+v+"'")
		default:
			parts = append(parts, k+":"+v)
		}
	}
	return strings.Join(parts, ",")
}
