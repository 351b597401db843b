package text

import (
	"regexp"

	"github.com/lowlandresearch/larc/errors"
)

// Replacement is one regex rewrite. Replace uses regexp.Expand syntax, so
// groups are referenced as $1 or ${name}.
type Replacement struct {
	Pattern string
	Replace string
}

// RegexTransform compiles the replacements and returns a function applying
// them to its input in order.
func RegexTransform(pairs ...Replacement) (func(string) string, error) {
	compiled := make([]*regexp.Regexp, len(pairs))
	for i, p := range pairs {
		re, err := compilePattern(p.Pattern)
		if err != nil {
			return nil, err
		}
		compiled[i] = re
	}
	return func(s string) string {
		for i, re := range compiled {
			s = re.ReplaceAllString(s, pairs[i].Replace)
		}
		return s
	}, nil
}

// Grep returns a filter keeping the lines matching pattern.
func Grep(pattern string) (func([]string) []string, error) {
	return lineFilter(pattern, true)
}

// GrepV returns a filter keeping the lines not matching pattern.
func GrepV(pattern string) (func([]string) []string, error) {
	return lineFilter(pattern, false)
}

// GrepItems returns a filter keeping rows with at least one matching field.
func GrepItems(pattern string) (func([][]string) [][]string, error) {
	return rowFilter(pattern, true)
}

// GrepVItems returns a filter keeping rows with no matching field.
func GrepVItems(pattern string) (func([][]string) [][]string, error) {
	return rowFilter(pattern, false)
}

func lineFilter(pattern string, keep bool) (func([]string) []string, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return func(lines []string) []string {
		out := make([]string, 0, len(lines))
		for _, l := range lines {
			if re.MatchString(l) == keep {
				out = append(out, l)
			}
		}
		return out
	}, nil
}

func rowFilter(pattern string, keep bool) (func([][]string) [][]string, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return func(rows [][]string) [][]string {
		out := make([][]string, 0, len(rows))
		for _, row := range rows {
			if anyMatch(re, row) == keep {
				out = append(out, row)
			}
		}
		return out
	}, nil
}

func anyMatch(re *regexp.Regexp, fields []string) bool {
	for _, f := range fields {
		if re.MatchString(f) {
			return true
		}
	}
	return false
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.InvalidFormat(pattern, "regular expression").WithCause(err)
	}
	return re, nil
}
