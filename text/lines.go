package text

import (
	"slices"
	"strings"
)

// SplitLines splits s on line boundaries, accepting "\n" and "\r\n". A
// trailing newline does not produce a final empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return strings.Split(s, "\n")
}

// StripComment returns line up to its first '#'.
func StripComment(line string) string {
	before, _, _ := strings.Cut(line, "#")
	return before
}

// StripComments applies StripComment to every line.
func StripComments(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = StripComment(l)
	}
	return out
}

// RemoveComments drops lines starting with '#'.
func RemoveComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if !strings.HasPrefix(l, "#") {
			out = append(out, l)
		}
	}
	return out
}

// DiffLines returns the sorted lines of a missing from b. Comments are
// stripped and empty lines ignored before comparing.
func DiffLines(a, b string) []string {
	inB := lineSet(b)
	var out []string
	for l := range lineSet(a) {
		if _, ok := inB[l]; !ok {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}

// IntersectLines returns the sorted lines present in both a and b.
func IntersectLines(a, b string) []string {
	inB := lineSet(b)
	var out []string
	for l := range lineSet(a) {
		if _, ok := inB[l]; ok {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}

func lineSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, l := range StripComments(SplitLines(s)) {
		if l != "" {
			set[l] = struct{}{}
		}
	}
	return set
}

// LogLines calls fn for every non-empty line of every text and returns the
// number of calls.
func LogLines(fn func(string), texts ...string) int {
	n := 0
	for _, t := range texts {
		for _, l := range SplitLines(t) {
			if l == "" {
				continue
			}
			fn(l)
			n++
		}
	}
	return n
}

// Dedent removes the whitespace prefix shared by every non-blank line.
// Whitespace-only lines become empty.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	prefix := ""
	first := true
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			prefix, first = indent, false
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(l, prefix)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
