package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowlandresearch/larc/errors"
)

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb"))
}

func TestStripComments(t *testing.T) {
	assert.Equal(t, "10.0.0.1 ", StripComment("10.0.0.1 # gateway"))
	assert.Equal(t, "", StripComment("# whole line"))
	assert.Equal(t, "plain", StripComment("plain"))
	assert.Equal(t, []string{"a", "b "}, StripComments([]string{"a#x", "b #y"}))
}

func TestRemoveComments(t *testing.T) {
	got := RemoveComments([]string{"# header", "keep", " # indented stays"})
	assert.Equal(t, []string{"keep", " # indented stays"}, got)
}

func TestDiffLines(t *testing.T) {
	a := "c\nb\na # first\n\n# only comment\n"
	b := "b\nz\n"
	assert.Equal(t, []string{"a ", "c"}, DiffLines(a, b))
	assert.Nil(t, DiffLines(b, b))
}

func TestIntersectLines(t *testing.T) {
	assert.Equal(t, []string{"b", "c"}, IntersectLines("c\nb\na\nb\n", "b\nc\nd"))
	assert.Empty(t, IntersectLines("a", "b"))
}

func TestLogLines(t *testing.T) {
	var seen []string
	n := LogLines(func(l string) { seen = append(seen, l) }, "one\n\ntwo", "three\n")
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"one", "two", "three"}, seen)
}

func TestDedent(t *testing.T) {
	in := "    usage:\n      larc ips FILE\n  \n    done"
	assert.Equal(t, "usage:\n  larc ips FILE\n\ndone", Dedent(in))
	assert.Equal(t, "a\n b", Dedent("a\n b"))
}

func TestRegexTransform(t *testing.T) {
	rewrite, err := RegexTransform(
		Replacement{Pattern: `(\d+)\.(\d+)`, Replace: "$2.$1"},
		Replacement{Pattern: `\s+`, Replace: " "},
	)
	require.NoError(t, err)
	assert.Equal(t, "v 2.1 beta", rewrite("v   1.2\tbeta"))

	_, err = RegexTransform(Replacement{Pattern: `(`})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestGrep(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}

	grep, err := Grep(`^[ab]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, grep(lines))

	grepv, err := GrepV(`^[ab]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma"}, grepv(lines))

	_, err = Grep(`[`)
	assert.Error(t, err)
}

func TestGrepItems(t *testing.T) {
	rows := [][]string{{"10.0.0.1", "ssh"}, {"10.0.0.2", "http"}, {"10.0.0.3", "https"}}

	grep, err := GrepItems(`^http`)
	require.NoError(t, err)
	assert.Equal(t, rows[1:], grep(rows))

	grepv, err := GrepVItems(`^http`)
	require.NoError(t, err)
	assert.Equal(t, rows[:1], grepv(rows))
}
