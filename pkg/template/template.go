// Package template implements named-placeholder substitution for prompt strings.
//
// A template is plain text with placeholders written as {name}, where name is
// a run of letters, digits, or underscores. Doubled braces ({{ and }}) produce
// literal braces. Anything else involving a brace is treated as literal text.
package template

import (
	"fmt"
	"strings"
)

// MissingVariableError is returned by Format when the template references a
// placeholder that has no entry in the variables map.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template: missing variable %q", e.Name)
}

// Template is a prompt string with {name} placeholders.
// The zero value is an empty template.
type Template struct {
	raw string
}

// New creates a Template from a raw string.
func New(raw string) Template {
	return Template{raw: raw}
}

// String returns the raw, unsubstituted template text.
func (t Template) String() string {
	return t.raw
}

// Placeholders returns the placeholder names referenced by the template, in
// order of first appearance, without duplicates.
func (t Template) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})

	t.scan(func(_ string) {}, func(name string) string {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return ""
	})

	return names
}

// Format substitutes every placeholder with its value from vars. It fails
// with a *MissingVariableError naming the first unresolved placeholder when
// vars lacks an entry. Entries in vars that the template never references are
// ignored.
func (t Template) Format(vars map[string]string) (string, error) {
	var b strings.Builder
	var missing *MissingVariableError

	t.scan(func(lit string) {
		b.WriteString(lit)
	}, func(name string) string {
		v, ok := vars[name]
		if !ok && missing == nil {
			missing = &MissingVariableError{Name: name}
		}
		return v
	})

	if missing != nil {
		return "", missing
	}

	return b.String(), nil
}

// scan walks the template once, calling lit for literal chunks and sub for
// each placeholder. The value returned by sub is appended via lit.
func (t Template) scan(lit func(string), sub func(string) string) {
	s := t.raw

	for len(s) > 0 {
		i := strings.IndexAny(s, "{}")
		if i < 0 {
			lit(s)
			return
		}

		lit(s[:i])
		s = s[i:]

		// Doubled braces escape to a single literal brace.
		if strings.HasPrefix(s, "{{") || strings.HasPrefix(s, "}}") {
			lit(s[:1])
			s = s[2:]
			continue
		}

		// A lone closing brace is literal text.
		if s[0] == '}' {
			lit("}")
			s = s[1:]
			continue
		}

		name, rest, ok := takePlaceholder(s)
		if !ok {
			lit(s[:1])
			s = s[1:]
			continue
		}

		lit(sub(name))
		s = rest
	}
}

// takePlaceholder parses a {name} at the start of s. It reports false when s
// does not start a well-formed placeholder, in which case the opening brace
// is literal.
func takePlaceholder(s string) (name, rest string, ok bool) {
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return "", "", false
	}

	name = s[1:end]
	for _, r := range name {
		if !isNameRune(r) {
			return "", "", false
		}
	}

	return name, s[end+1:], true
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
