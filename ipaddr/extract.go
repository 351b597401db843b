package ipaddr

import (
	"os"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/text"
)

// dottedQuad matches an IPv4 address not followed by further digits or
// dots, so "10.0.0.1234" and "1.2.3.4." do not yield a partial match.
var dottedQuad = regexp2.MustCompile(
	`(?:(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])\.){3}`+
		`(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(?![\d\.]+)`,
	regexp2.None,
)

// FromLines extracts every dotted-quad address from lines after stripping
// comments, keeping duplicates in order of appearance.
func FromLines(lines []string) []string {
	var out []string
	for _, line := range text.StripComments(lines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, findAll(line)...)
	}
	return out
}

// FromText extracts addresses from every line of content.
func FromText(content string) []string {
	return FromLines(text.SplitLines(content))
}

// FromFile extracts addresses from the file at path.
func FromFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO("read", path, err)
	}
	return FromText(string(raw)), nil
}

func findAll(line string) []string {
	var out []string
	m, err := dottedQuad.FindStringMatch(line)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = dottedQuad.FindNextMatch(m)
	}
	return out
}
