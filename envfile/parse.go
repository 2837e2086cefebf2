package envfile

import (
	"fmt"
	"strings"
)

type DiagnosticKind int

const (
	MissingKey DiagnosticKind = iota
	InvalidKey
	MissingValue
)

func (k DiagnosticKind) String() string {
	switch k {
	case MissingKey:
		return "missing_key"
	case InvalidKey:
		return "invalid_key"
	case MissingValue:
		return "missing_value"
	default:
		return "unknown"
	}
}

// Diagnostic is a recoverable problem found on a single line. Line is 1-based.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int
	Key  string
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case MissingKey:
		return fmt.Sprintf("line %d: missing key", d.Line)
	case InvalidKey:
		return fmt.Sprintf("line %d: invalid key %q: key name must start with a letter", d.Line, d.Key)
	default:
		return fmt.Sprintf("line %d: missing value", d.Line)
	}
}

type Pair struct {
	Key   string
	Value string
}

// Result holds the pairs in file order and every diagnostic in line order.
type Result struct {
	Pairs       []Pair
	Diagnostics []Diagnostic
}

func (r Result) HasWarnings() bool {
	return len(r.Diagnostics) > 0
}

// UniqueKeys returns each key once, in order of first appearance.
func (r Result) UniqueKeys() []string {
	seen := make(map[string]bool, len(r.Pairs))
	keys := make([]string, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if !seen[p.Key] {
			seen[p.Key] = true
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// Map collapses the pairs into a map; later duplicates win.
func (r Result) Map() map[string]string {
	m := make(map[string]string, len(r.Pairs))
	for _, p := range r.Pairs {
		m[p.Key] = p.Value
	}
	return m
}

// Parse splits content on '\n' and validates every line. It never fails:
// malformed lines become diagnostics and are otherwise skipped.
func Parse(content string) Result {
	var res Result
	for i, line := range strings.Split(content, "\n") {
		if len(line) == 0 {
			continue
		}
		num := i + 1

		c := splitLine(line)
		if c.key == "" {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Kind: MissingKey, Line: num})
			continue
		}
		if !isLetter(c.key[0]) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Kind: InvalidKey, Line: num, Key: c.key})
			continue
		}

		value := unquote(c.value)
		if value == "" {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Kind: MissingValue, Line: num, Key: c.key})
			continue
		}
		res.Pairs = append(res.Pairs, Pair{Key: c.key, Value: value})
	}
	return res
}
