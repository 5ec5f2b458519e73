package transform

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// A Fragment is one transformation instruction within a transform
// descriptor, such as translate(10 20).
type Fragment struct {
	Name string
	Args []float64
}

// String renders the fragment in descriptor syntax: the name followed by
// its space-separated arguments in parentheses.
func (f Fragment) String() string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatNumber(a))
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatNumber renders a descriptor argument in its shortest form that
// round-trips, so integral values print without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List is an ordered sequence of fragments: the structured form of a
// transform descriptor. Fragments appear in application order; a new
// transformation always appends at the end.
type List []Fragment

// String renders the list as a descriptor: fragments in order, separated
// by single spaces.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, f := range l {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// AppendTransform concatenates a rendered fragment onto an existing
// descriptor: the existing descriptor is trimmed and the fragment
// appended after a single space. An empty or blank descriptor yields the
// fragment alone.
//
// This is the sole place ordering is enforced: call order equals
// left-to-right textual order equals the composition order the consuming
// renderer expects.
func AppendTransform(existing, fragment string) string {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return fragment
	}
	return existing + " " + fragment
}

// Parse parses a transform descriptor into its fragments. Arguments may
// be separated by whitespace, commas, or both, and fragments by
// whitespace or a comma, per the grammar renderers accept. An empty or
// blank descriptor parses to an empty list.
//
// Parse does not check fragment names or argument counts; that happens
// when a fragment is interpreted, see [Fragment.Matrix].
func Parse(desc string) (List, error) {
	var list List
	rest := strings.TrimSpace(desc)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return nil, fmt.Errorf("transform: missing '(' in %q", rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < open {
			return nil, fmt.Errorf("transform: unbalanced parentheses in %q", rest)
		}
		name := strings.TrimSpace(rest[:open])
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return nil, fmt.Errorf("transform: bad fragment name %q", name)
		}
		var args []float64
		for _, field := range strings.FieldsFunc(rest[open+1:end], isArgSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("transform: %s: bad argument %q", name, field)
			}
			args = append(args, v)
		}
		list = append(list, Fragment{Name: name, Args: args})
		rest = strings.TrimSpace(rest[end+1:])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))
	}
	return list, nil
}

func isArgSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
