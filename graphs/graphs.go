package graphs

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	larcerrors "github.com/lowlandresearch/larc/errors"
)

// Edge is a source and target pair.
type Edge[K cmp.Ordered] [2]K

func identity[K cmp.Ordered](k K) K { return k }

// New returns an empty graph whose vertices hash to themselves.
func New[K cmp.Ordered](directed bool) graph.Graph[K, K] {
	if directed {
		return graph.New(identity[K], graph.Directed())
	}
	return graph.New(identity[K])
}

// FromEdgeList builds a graph holding every vertex and edge of edges.
// Repeated edges are kept once.
func FromEdgeList[K cmp.Ordered](edges []Edge[K], directed bool) (graph.Graph[K, K], error) {
	g := New[K](directed)
	for _, e := range edges {
		for _, v := range e {
			if err := g.AddVertex(v); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, larcerrors.Internal(err)
			}
		}
		if err := g.AddEdge(e[0], e[1]); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, larcerrors.Internal(err).WithDetail("edge", fmt.Sprintf("%v-%v", e[0], e[1]))
		}
	}
	return g, nil
}

type treeOptions struct {
	reverse    bool
	depthLimit int
}

// TreeOption configures BFSTree and Reachable.
type TreeOption func(*treeOptions)

// WithReverse follows edges from target to source.
func WithReverse() TreeOption {
	return func(o *treeOptions) { o.reverse = true }
}

// WithDepthLimit stops the search n edges away from the source. A negative
// n means no limit.
func WithDepthLimit(n int) TreeOption {
	return func(o *treeOptions) { o.depthLimit = n }
}

// BFSTree returns the directed breadth-first tree of g rooted at source.
// Each reached vertex keeps the edge through which it was first discovered.
func BFSTree[K cmp.Ordered](g graph.Graph[K, K], source K, opts ...TreeOption) (graph.Graph[K, K], error) {
	tree := New[K](true)
	err := bfs(g, source, opts, func(parent, child K, root bool) error {
		if err := tree.AddVertex(child); err != nil {
			return err
		}
		if root {
			return nil
		}
		return tree.AddEdge(parent, child)
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Reachable returns the vertices reached from source in breadth-first
// order, source first.
func Reachable[K cmp.Ordered](g graph.Graph[K, K], source K, opts ...TreeOption) ([]K, error) {
	var order []K
	err := bfs(g, source, opts, func(_, child K, _ bool) error {
		order = append(order, child)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func bfs[K cmp.Ordered](g graph.Graph[K, K], source K, opts []TreeOption, visit func(parent, child K, root bool) error) error {
	o := &treeOptions{depthLimit: -1}
	for _, opt := range opts {
		opt(o)
	}

	if _, err := g.Vertex(source); err != nil {
		return larcerrors.NotFound("vertex", fmt.Sprint(source))
	}

	neighbours, err := g.AdjacencyMap()
	if o.reverse && g.Traits().IsDirected {
		neighbours, err = g.PredecessorMap()
	}
	if err != nil {
		return larcerrors.Internal(err)
	}

	if err := visit(source, source, true); err != nil {
		return larcerrors.Internal(err)
	}
	seen := map[K]bool{source: true}
	frontier := []K{source}
	for depth := 0; len(frontier) > 0 && (o.depthLimit < 0 || depth < o.depthLimit); depth++ {
		var next []K
		for _, parent := range frontier {
			for _, child := range sortedKeys(neighbours[parent]) {
				if seen[child] {
					continue
				}
				seen[child] = true
				if err := visit(parent, child, false); err != nil {
					return larcerrors.Internal(err)
				}
				next = append(next, child)
			}
		}
		frontier = next
	}
	return nil
}

// Vertices returns the vertices of g in sorted order.
func Vertices[K cmp.Ordered](g graph.Graph[K, K]) ([]K, error) {
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, larcerrors.Internal(err)
	}
	return sortedKeys(adj), nil
}

// Edges returns the edges of g sorted by source and then target.
func Edges[K cmp.Ordered](g graph.Graph[K, K]) ([]Edge[K], error) {
	edges, err := g.Edges()
	if err != nil {
		return nil, larcerrors.Internal(err)
	}
	out := make([]Edge[K], len(edges))
	for i, e := range edges {
		out[i] = Edge[K]{e.Source, e.Target}
	}
	slices.SortFunc(out, func(a, b Edge[K]) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	return out, nil
}

// WriteDOT renders g in Graphviz DOT format.
func WriteDOT[K cmp.Ordered](g graph.Graph[K, K], w io.Writer) error {
	if err := draw.DOT(g, w); err != nil {
		return larcerrors.IO("write dot", "", err)
	}
	return nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
