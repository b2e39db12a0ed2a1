package search_test

import (
	"strconv"
	"testing"

	"github.com/samyzaitoun/statesearch/search"
)

// testTable is a hand-built transition table shared by every vertex of
// one test graph: successors, goal flags, and greedy rates keyed by id.
type testTable struct {
	next map[string][]string
	end  map[string]bool
	rate map[string]float64
}

// vertex is one searchable vertex of a testTable graph. It implements
// search.Rated (vertices without a rate entry score 0).
type vertex struct {
	id string
	tt *testTable
}

func (v vertex) Key() string { return v.id }

func (v vertex) NextStates() []search.State {
	ids := v.tt.next[v.id]
	out := make([]search.State, len(ids))
	for i, id := range ids {
		out[i] = vertex{id: id, tt: v.tt}
	}

	return out
}

func (v vertex) IsEndState() bool { return v.tt.end[v.id] }

func (v vertex) AttractiveRate() float64 { return v.tt.rate[v.id] }

// start wraps the table's vertex with the given id.
func (tt *testTable) start(id string) vertex {
	return vertex{id: id, tt: tt}
}

// unrated is a two-state domain (itself → done) that deliberately does
// not implement search.Rated.
type unrated struct {
	done bool
}

func (u unrated) Key() string {
	if u.done {
		return "done"
	}

	return "pending"
}

func (u unrated) NextStates() []search.State {
	if u.done {
		return nil
	}

	return []search.State{unrated{done: true}}
}

func (u unrated) IsEndState() bool { return u.done }

// chainTable builds S → v1 → v2 → … → vn where vn is the goal.
func chainTable(n int) (*testTable, vertex) {
	tt := &testTable{
		next: make(map[string][]string, n+1),
		end:  map[string]bool{vtx(n): true},
		rate: map[string]float64{},
	}
	prev := "S"
	for i := 1; i <= n; i++ {
		tt.next[prev] = []string{vtx(i)}
		prev = vtx(i)
	}

	return tt, tt.start("S")
}

// diamondTable builds a graph with a long and a short route to the goal:
//
//	S → A → B → G   (3 transitions)
//	S → G           (1 transition)
//
// Successor order at S is [A, G], so depth-first strategies commit to
// the long route first.
func diamondTable() (*testTable, vertex) {
	tt := &testTable{
		next: map[string][]string{
			"S": {"A", "G"},
			"A": {"B"},
			"B": {"G"},
		},
		end:  map[string]bool{"G": true},
		rate: map[string]float64{},
	}

	return tt, tt.start("S")
}

// cycleTable builds a cyclic graph with a single goal:
//
//	S → A → B → S (cycle), B → G
func cycleTable() (*testTable, vertex) {
	tt := &testTable{
		next: map[string][]string{
			"S": {"A"},
			"A": {"B"},
			"B": {"S", "G"},
		},
		end:  map[string]bool{"G": true},
		rate: map[string]float64{},
	}

	return tt, tt.start("S")
}

// unsolvableTable builds a small cyclic graph with no goal anywhere.
func unsolvableTable() (*testTable, vertex) {
	tt := &testTable{
		next: map[string][]string{
			"S": {"A", "B"},
			"A": {"B"},
			"B": {"S"},
		},
		end:  map[string]bool{},
		rate: map[string]float64{},
	}

	return tt, tt.start("S")
}

// fanTable builds a root with n leaf goals l0…l(n-1), each one
// transition away.
func fanTable(n int) (*testTable, vertex) {
	tt := &testTable{
		next: map[string][]string{"S": {}},
		end:  map[string]bool{},
		rate: map[string]float64{},
	}
	for i := 0; i < n; i++ {
		id := "l" + strconv.Itoa(i)
		tt.next["S"] = append(tt.next["S"], id)
		tt.end[id] = true
	}

	return tt, tt.start("S")
}

func vtx(i int) string {
	return "v" + strconv.Itoa(i)
}

// requireValidPath asserts the path contract: starts at start, ends on
// a goal, and every consecutive pair is a real transition.
func requireValidPath(t *testing.T, start search.State, path []search.State) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0].Key() != start.Key() {
		t.Fatalf("path starts at %q, want %q", path[0].Key(), start.Key())
	}
	if !path[len(path)-1].IsEndState() {
		t.Fatalf("path ends at %q, which is not an end state", path[len(path)-1].Key())
	}
	for i := 0; i+1 < len(path); i++ {
		if !isSuccessor(path[i], path[i+1]) {
			t.Fatalf("step %d: %q is not a successor of %q", i, path[i+1].Key(), path[i].Key())
		}
		if path[i].Key() == path[i+1].Key() {
			t.Fatalf("step %d: state %q repeated in immediate succession", i, path[i].Key())
		}
	}
}

func isSuccessor(from, to search.State) bool {
	for _, s := range from.NextStates() {
		if s.Key() == to.Key() {
			return true
		}
	}

	return false
}

// keysOf projects a path onto its identity keys.
func keysOf(path []search.State) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = s.Key()
	}

	return out
}

// mustSolve runs Solve and fails the test on any error.
func mustSolve(t *testing.T, start search.State, strategy search.Strategy, opts ...search.Option) []search.State {
	t.Helper()
	g, err := search.New(start)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := g.Solve(strategy, opts...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", strategy, err)
	}

	return path
}
