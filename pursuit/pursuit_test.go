package pursuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samyzaitoun/statesearch/pursuit"
	"github.com/samyzaitoun/statesearch/search"
)

func TestNew_Validation(t *testing.T) {
	target := pursuit.Pos{Row: 2, Col: 2}

	_, err := pursuit.New(0, 3, target, nil, pursuit.Pos{}, nil)
	assert.ErrorIs(t, err, pursuit.ErrBadDimensions)

	_, err = pursuit.New(3, 3, pursuit.Pos{Row: 5, Col: 0}, nil, pursuit.Pos{}, nil)
	assert.ErrorIs(t, err, pursuit.ErrTargetIllegal)

	_, err = pursuit.New(3, 3, target, []pursuit.Pos{{Row: 9, Col: 9}}, pursuit.Pos{}, nil)
	assert.ErrorIs(t, err, pursuit.ErrWallIllegal)

	_, err = pursuit.New(3, 3, target, []pursuit.Pos{{Row: 0, Col: 0}}, pursuit.Pos{}, nil)
	assert.ErrorIs(t, err, pursuit.ErrAgentIllegal)

	_, err = pursuit.New(3, 3, target, nil, pursuit.Pos{}, []pursuit.Pos{{Row: 1, Col: 5}})
	assert.ErrorIs(t, err, pursuit.ErrPursuerIllegal)

	// Agent starting on a pursuer is already captured.
	_, err = pursuit.New(3, 3, target, nil, pursuit.Pos{}, []pursuit.Pos{{}})
	assert.ErrorIs(t, err, pursuit.ErrAgentIllegal)

	// Target on a wall.
	_, err = pursuit.New(3, 3, target, []pursuit.Pos{target}, pursuit.Pos{}, nil)
	assert.ErrorIs(t, err, pursuit.ErrTargetIllegal)
}

func TestGame_NoPursuersBehavesLikeOpenGrid(t *testing.T) {
	g0, err := pursuit.New(3, 3, pursuit.Pos{Row: 2, Col: 2}, nil, pursuit.Pos{}, nil)
	require.NoError(t, err)
	g, err := search.New(g0)
	require.NoError(t, err)

	path, err := g.Solve(search.BFS)
	require.NoError(t, err)
	assert.Len(t, path, 5, "corner to corner of a 3x3 grid is 4 transitions")
}

func TestGame_PursuerResponseBlocksUnsafeMoves(t *testing.T) {
	// Agent (0,0), pursuer (2,0), target (0,2): stepping down walks
	// into the pursuer's response, so the only safe opening move is
	// right, and the agent escapes along the top row.
	g0, err := pursuit.New(3, 3, pursuit.Pos{Row: 0, Col: 2}, nil,
		pursuit.Pos{}, []pursuit.Pos{{Row: 2, Col: 0}})
	require.NoError(t, err)

	next := g0.NextStates()
	require.Len(t, next, 1, "only the move away from the pursuer is safe")

	g, err := search.New(g0)
	require.NoError(t, err)
	path, err := g.Solve(search.BFS)
	require.NoError(t, err)
	require.Len(t, path, 3)

	last := path[len(path)-1].(pursuit.Game)
	assert.Equal(t, pursuit.Pos{Row: 0, Col: 2}, last.Agent())
	assert.True(t, last.IsEndState())
}

func TestGame_CorridorBlockedByPursuer(t *testing.T) {
	// A 1×5 corridor with the pursuer between agent and target leaves
	// no legal move at all.
	g0, err := pursuit.New(1, 5, pursuit.Pos{Row: 0, Col: 4}, nil,
		pursuit.Pos{}, []pursuit.Pos{{Row: 0, Col: 2}})
	require.NoError(t, err)
	assert.Empty(t, g0.NextStates())

	g, err := search.New(g0)
	require.NoError(t, err)
	for _, strategy := range []search.Strategy{search.BFS, search.DFS, search.PDFS} {
		_, err := g.Solve(strategy)
		assert.ErrorIs(t, err, search.ErrNoSolution, strategy.String())
	}
}

func TestGame_KeyIncludesPursuers(t *testing.T) {
	// The same agent cell with differently placed pursuers is a
	// different configuration.
	target := pursuit.Pos{Row: 4, Col: 4}
	a, err := pursuit.New(5, 5, target, nil, pursuit.Pos{}, []pursuit.Pos{{Row: 4, Col: 0}})
	require.NoError(t, err)
	b, err := pursuit.New(5, 5, target, nil, pursuit.Pos{}, []pursuit.Pos{{Row: 0, Col: 4}})
	require.NoError(t, err)

	assert.NotEqual(t, a.Key(), b.Key())

	c, err := pursuit.New(5, 5, target, nil, pursuit.Pos{}, []pursuit.Pos{{Row: 4, Col: 0}})
	require.NoError(t, err)
	assert.Equal(t, a.Key(), c.Key())
}

func TestGame_WallShieldsAgent(t *testing.T) {
	// A wall row separates the pursuer from the top corridor; the
	// agent can walk to the target while the pursuer paces behind it.
	//
	//	A · · T
	//	█ █ █ ·
	//	P · · ·
	walls := []pursuit.Pos{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	g0, err := pursuit.New(3, 4, pursuit.Pos{Row: 0, Col: 3}, walls,
		pursuit.Pos{}, []pursuit.Pos{{Row: 2, Col: 0}})
	require.NoError(t, err)

	g, err := search.New(g0)
	require.NoError(t, err)
	path, err := g.Solve(search.BFS)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.True(t, path[len(path)-1].IsEndState())
	assert.Len(t, path, 4, "three steps along the top row")
}

func TestGame_AttractiveRateIgnoresPursuers(t *testing.T) {
	target := pursuit.Pos{Row: 0, Col: 3}
	a, err := pursuit.New(1, 4, target, nil, pursuit.Pos{}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/4.0, a.AttractiveRate(), 1e-12)

	done, err := pursuit.New(1, 4, target, nil, target, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, done.AttractiveRate(), 1e-12)
	assert.True(t, done.IsEndState())
}
