package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samyzaitoun/statesearch/search"
)

func TestNode_KeyDelegatesToState(t *testing.T) {
	_, start := diamondTable()
	n := search.NewNode(start)
	assert.Equal(t, "S", n.Key())
	assert.Equal(t, start.Key(), n.State().Key())
}

func TestNode_ExpandPreservesSuccessorOrder(t *testing.T) {
	_, start := diamondTable()
	arcs := search.NewNode(start).Expand()
	keys := make([]string, len(arcs))
	for i, a := range arcs {
		keys[i] = a.Key()
	}
	assert.Equal(t, []string{"A", "G"}, keys)
}

func TestNode_ExpandEmptyForTerminalState(t *testing.T) {
	tt := &testTable{
		next: map[string][]string{},
		end:  map[string]bool{},
		rate: map[string]float64{},
	}
	assert.Empty(t, search.NewNode(tt.start("S")).Expand())
}

func TestNode_IndependentBranchesAgreeOnIdentity(t *testing.T) {
	// Two routes of the diamond both produce G; the independently
	// created Nodes must report the same key, so visited bookkeeping
	// recognizes them as one state.
	tt, _ := diamondTable()
	viaS := search.NewNode(tt.start("S")).Expand()[1]
	viaB := search.NewNode(tt.start("B")).Expand()[0]
	assert.Equal(t, viaS.Key(), viaB.Key())
}

func TestNode_ExpandRecomputes(t *testing.T) {
	// Arcs are not memoized: expanding twice yields equal keys but
	// distinct Node values.
	_, start := diamondTable()
	n := search.NewNode(start)
	first := n.Expand()
	second := n.Expand()
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
		assert.NotSame(t, first[i], second[i])
	}
}
