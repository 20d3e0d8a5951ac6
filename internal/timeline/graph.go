package timeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// Node is one vertex of a Graph: the event payload plus its ordered successors.
type Node struct {
	ID    uuid.UUID
	Event domain.Event
	Nexts []uuid.UUID
}

// Graph is an adjacency structure rebuilt from flat event records.
type Graph struct {
	nodes map[uuid.UUID]*Node
	ids   []uuid.UUID
}

// Build returns the adjacency structure of events. Successors are sorted by
// connection Order ascending, ties broken by connection id. The graph is not
// validated: successors may reference ids that are not nodes.
//
// A duplicated event id keeps its first position and its last payload.
func Build(events []domain.Event) *Graph {
	g := &Graph{
		nodes: make(map[uuid.UUID]*Node, len(events)),
		ids:   make([]uuid.UUID, 0, len(events)),
	}

	for _, e := range events {
		conns := slices.Clone(e.Nexts)
		SortConnections(conns)

		nexts := make([]uuid.UUID, len(conns))
		for i, c := range conns {
			nexts[i] = c.TargetID
		}

		if _, dup := g.nodes[e.ID]; !dup {
			g.ids = append(g.ids, e.ID)
		}
		g.nodes[e.ID] = &Node{ID: e.ID, Event: e, Nexts: nexts}
	}

	return g
}

// SortConnections orders conns in place by Order, then by id.
func SortConnections(conns []domain.Connection) {
	slices.SortStableFunc(conns, func(a, b domain.Connection) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns node ids in input order.
func (g *Graph) IDs() []uuid.UUID { return slices.Clone(g.ids) }

// Node returns the node for id.
func (g *Graph) Node(id uuid.UUID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Successors returns the ordered successor ids of id, or nil if id is not a node.
func (g *Graph) Successors(id uuid.UUID) []uuid.UUID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(n.Nexts)
}

// Reachable returns every id reachable from `from` through at least one
// successor edge. Successor ids that are not nodes are included but not expanded.
func (g *Graph) Reachable(from uuid.UUID) IDSet {
	seen := IDSet{}
	queue := g.Successors(from)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen.Has(id) {
			continue
		}
		seen.add(id)
		queue = append(queue, g.Successors(id)...)
	}

	return seen
}

// Path returns a shortest successor path from `from` to `to`, both included,
// or nil when `to` cannot be reached. Among equal-length paths the one using
// earlier successors wins.
func (g *Graph) Path(from, to uuid.UUID) []uuid.UUID {
	if _, ok := g.nodes[from]; !ok {
		return nil
	}
	if from == to {
		return []uuid.UUID{from}
	}

	parent := map[uuid.UUID]uuid.UUID{from: from}
	queue := []uuid.UUID{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.Successors(cur) {
			if _, visited := parent[next]; visited {
				continue
			}
			parent[next] = cur
			if next == to {
				return walkBack(parent, from, to)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func walkBack(parent map[uuid.UUID]uuid.UUID, from, to uuid.UUID) []uuid.UUID {
	path := []uuid.UUID{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
