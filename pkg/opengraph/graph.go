package opengraph

import (
	"maps"
	"slices"
)

// Graph is a simple undirected graph over integer node identifiers.
// Self-loops and parallel edges are not stored. The zero value is not usable;
// use [NewGraph] or [NewGraphFromEdges].
//
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	adj map[int]map[int]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// NewGraphFromEdges creates a graph containing the given edges.
// Endpoints are added as nodes automatically.
func NewGraphFromEdges(edges [][2]int) *Graph {
	g := NewGraph()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}

// AddEdge adds an undirected edge between u and v, adding either endpoint as
// a node if missing. Self-loops and duplicate edges are silently ignored.
func (g *Graph) AddEdge(u, v int) {
	g.AddNode(u)
	g.AddNode(v)
	if u == v {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether an edge between u and v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges.
func (g *Graph) Size() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Nodes returns all node identifiers in ascending order.
func (g *Graph) Nodes() []int {
	return slices.Sorted(maps.Keys(g.adj))
}

// MaxNode returns the largest node identifier and true, or 0 and false for an
// empty graph.
func (g *Graph) MaxNode() (int, bool) {
	if len(g.adj) == 0 {
		return 0, false
	}
	found := false
	var id int
	for n := range g.adj {
		if !found || n > id {
			id = n
			found = true
		}
	}
	return id, true
}

// Edges returns all edges as [u v] pairs with u < v, sorted for deterministic
// iteration.
func (g *Graph) Edges() [][2]int {
	edges := make([][2]int, 0, g.Size())
	for _, u := range g.Nodes() {
		for v := range g.adj[u] {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	slices.SortFunc(edges, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return edges
}

// Neighbors returns the neighbors of id in ascending order.
// Returns nil if id is not a node.
func (g *Graph) Neighbors(id int) []int {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(nbrs))
}

// Degree returns the number of neighbors of id, or 0 if id is not a node.
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make(map[int]map[int]struct{}, len(g.adj))}
	for id, nbrs := range g.adj {
		c.adj[id] = maps.Clone(nbrs)
	}
	return c
}

// Equal reports whether both graphs have the same node and edge sets.
func (g *Graph) Equal(other *Graph) bool {
	if g.Order() != other.Order() || g.Size() != other.Size() {
		return false
	}
	for id, nbrs := range g.adj {
		onbrs, ok := other.adj[id]
		if !ok || len(nbrs) != len(onbrs) {
			return false
		}
		for n := range nbrs {
			if _, ok := onbrs[n]; !ok {
				return false
			}
		}
	}
	return true
}

// ConnectedComponents returns the number of connected components.
func (g *Graph) ConnectedComponents() int {
	seen := make(map[int]struct{}, len(g.adj))
	count := 0
	for id := range g.adj {
		if _, ok := seen[id]; ok {
			continue
		}
		count++
		stack := []int{id}
		seen[id] = struct{}{}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for nbr := range g.adj[n] {
				if _, ok := seen[nbr]; !ok {
					seen[nbr] = struct{}{}
					stack = append(stack, nbr)
				}
			}
		}
	}
	return count
}

// DegreeSequence returns the sorted (ascending) degree sequence.
// Two isomorphic graphs have identical degree sequences, which makes this a
// cheap structural fingerprint for tests.
func (g *Graph) DegreeSequence() []int {
	seq := make([]int, 0, len(g.adj))
	for _, nbrs := range g.adj {
		seq = append(seq, len(nbrs))
	}
	slices.Sort(seq)
	return seq
}
