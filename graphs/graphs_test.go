package graphs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowlandresearch/larc/errors"
)

func chain(t *testing.T) []Edge[string] {
	t.Helper()
	return []Edge[string]{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"d", "e"}, {"a", "b"},
	}
}

func TestFromEdgeList(t *testing.T) {
	g, err := FromEdgeList(chain(t), true)
	require.NoError(t, err)

	vs, err := Vertices(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, vs)

	es, err := Edges(g)
	require.NoError(t, err)
	assert.Equal(t, []Edge[string]{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"d", "e"}}, es)
}

func TestBFSTree(t *testing.T) {
	g, err := FromEdgeList(chain(t), true)
	require.NoError(t, err)

	tree, err := BFSTree(g, "a")
	require.NoError(t, err)
	es, err := Edges(tree)
	require.NoError(t, err)
	assert.Equal(t, []Edge[string]{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"d", "e"}}, es)
}

func TestBFSTreeDepthLimit(t *testing.T) {
	g, err := FromEdgeList(chain(t), true)
	require.NoError(t, err)

	tree, err := BFSTree(g, "a", WithDepthLimit(1))
	require.NoError(t, err)
	vs, err := Vertices(tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, vs)

	tree, err = BFSTree(g, "a", WithDepthLimit(0))
	require.NoError(t, err)
	vs, err = Vertices(tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, vs)
}

func TestBFSTreeReverse(t *testing.T) {
	g, err := FromEdgeList(chain(t), true)
	require.NoError(t, err)

	tree, err := BFSTree(g, "d", WithReverse())
	require.NoError(t, err)
	es, err := Edges(tree)
	require.NoError(t, err)
	assert.Equal(t, []Edge[string]{{"b", "a"}, {"d", "b"}, {"d", "c"}}, es)
}

func TestBFSTreeMissingSource(t *testing.T) {
	g, err := FromEdgeList(chain(t), true)
	require.NoError(t, err)

	_, err = BFSTree(g, "zz")
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestReachableUndirected(t *testing.T) {
	g, err := FromEdgeList([]Edge[int]{{3, 1}, {1, 2}, {4, 5}}, false)
	require.NoError(t, err)

	got, err := Reachable(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)

	got, err = Reachable(g, 2, WithReverse())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)
}

func TestWriteDOT(t *testing.T) {
	g, err := FromEdgeList([]Edge[string]{{"gw", "web"}}, true)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteDOT(g, &b))
	assert.Contains(t, b.String(), "digraph")
	assert.Contains(t, b.String(), "gw")
	assert.Contains(t, b.String(), "web")
}
