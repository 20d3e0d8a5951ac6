package timeline

import (
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

func TestBuild_SuccessorOrder(t *testing.T) {
	t.Parallel()

	src := newEvent("src", domain.NoDate())
	a := newEvent("a", domain.NoDate())
	b := newEvent("b", domain.NoDate())
	c := newEvent("c", domain.NoDate())
	link(&src, a, domain.ConnectionLinear, 2)
	link(&src, b, domain.ConnectionTimeTravel, 0)
	link(&src, c, domain.ConnectionLinear, 1)

	g := Build([]domain.Event{src, a, b, c})

	want := []uuid.UUID{b.ID, c.ID, a.ID}
	if got := g.Successors(src.ID); !slices.Equal(got, want) {
		t.Fatalf("successors: got %v, want %v", got, want)
	}
	if g.Len() != 4 {
		t.Errorf("Len: got %d, want 4", g.Len())
	}
}

func TestBuild_TiesBrokenByConnectionID(t *testing.T) {
	t.Parallel()

	src := newEvent("src", domain.NoDate())
	x := newEvent("x", domain.NoDate())
	y := newEvent("y", domain.NoDate())
	cx := link(&src, x, domain.ConnectionLinear, 0)
	cy := link(&src, y, domain.ConnectionLinear, 0)

	want := []uuid.UUID{x.ID, y.ID}
	if cy.ID.String() < cx.ID.String() {
		want = []uuid.UUID{y.ID, x.ID}
	}

	for range 5 {
		if got := Build([]domain.Event{src}).Successors(src.ID); !slices.Equal(got, want) {
			t.Fatalf("successors: got %v, want %v", got, want)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	src := newEvent("src", domain.NoDate())
	a := newEvent("a", domain.NoDate())
	b := newEvent("b", domain.NoDate())
	first := link(&src, a, domain.ConnectionLinear, 5)
	link(&src, b, domain.ConnectionLinear, 0)

	Build([]domain.Event{src})

	if src.Nexts[0].ID != first.ID {
		t.Error("Build should not reorder the caller's connections")
	}
}

func TestBuild_DuplicateIDs(t *testing.T) {
	t.Parallel()

	a := newEvent("a", domain.NoDate())
	b := newEvent("b", domain.NoDate())
	a2 := a
	a2.Title = "a again"

	g := Build([]domain.Event{a, b, a2})

	if g.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", g.Len())
	}
	if ids := g.IDs(); !slices.Equal(ids, []uuid.UUID{a.ID, b.ID}) {
		t.Errorf("IDs: got %v", ids)
	}
	n, ok := g.Node(a.ID)
	if !ok {
		t.Fatal("node a missing")
	}
	if n.Event.Title != "a again" {
		t.Errorf("payload: got %q, want last occurrence", n.Event.Title)
	}
}

func TestBuild_DanglingSuccessor(t *testing.T) {
	t.Parallel()

	src := newEvent("src", domain.NoDate())
	ghost := newEvent("ghost", domain.NoDate())
	link(&src, ghost, domain.ConnectionLinear, 0)

	g := Build([]domain.Event{src})

	if got := g.Successors(src.ID); !slices.Equal(got, []uuid.UUID{ghost.ID}) {
		t.Fatalf("successors: got %v", got)
	}
	if _, ok := g.Node(ghost.ID); ok {
		t.Error("dangling target should not become a node")
	}
	if got := g.Successors(ghost.ID); got != nil {
		t.Errorf("unknown node successors: got %v, want nil", got)
	}
}

// chain builds a -> b -> c -> d with a shortcut a -> c.
func chain(t *testing.T) (*Graph, []domain.Event) {
	t.Helper()

	a := newEvent("a", domain.NoDate())
	b := newEvent("b", domain.NoDate())
	c := newEvent("c", domain.NoDate())
	d := newEvent("d", domain.NoDate())
	link(&a, b, domain.ConnectionLinear, 0)
	link(&a, c, domain.ConnectionTimeTravel, 1)
	link(&b, c, domain.ConnectionLinear, 0)
	link(&c, d, domain.ConnectionLinear, 0)

	events := []domain.Event{a, b, c, d}
	return Build(events), events
}

func TestGraph_Reachable(t *testing.T) {
	t.Parallel()

	g, ev := chain(t)
	a, b, c, d := ev[0].ID, ev[1].ID, ev[2].ID, ev[3].ID

	assertFlagged(t, g.Reachable(a), b, c, d)
	assertFlagged(t, g.Reachable(c), d)
	assertFlagged(t, g.Reachable(d))
	assertFlagged(t, g.Reachable(uuid.New()))
}

func TestGraph_ReachableWithCycle(t *testing.T) {
	t.Parallel()

	a := newEvent("a", domain.NoDate())
	b := newEvent("b", domain.NoDate())
	link(&a, b, domain.ConnectionLinear, 0)
	link(&b, a, domain.ConnectionTimeTravel, 0)

	g := Build([]domain.Event{a, b})
	assertFlagged(t, g.Reachable(a.ID), a.ID, b.ID)
}

func TestGraph_Path(t *testing.T) {
	t.Parallel()

	g, ev := chain(t)
	a, b, c, d := ev[0].ID, ev[1].ID, ev[2].ID, ev[3].ID

	tests := []struct {
		name     string
		from, to uuid.UUID
		want     []uuid.UUID
	}{
		{"shortcut wins", a, d, []uuid.UUID{a, c, d}},
		{"direct edge", b, c, []uuid.UUID{b, c}},
		{"self", a, a, []uuid.UUID{a}},
		{"unreachable", d, a, nil},
		{"unknown source", uuid.New(), a, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := g.Path(tt.from, tt.to); !slices.Equal(got, tt.want) {
				t.Errorf("Path: got %v, want %v", got, tt.want)
			}
		})
	}
}
