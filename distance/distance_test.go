package distance_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

// corridor builds a 1×n grid linked west to east.
func corridor(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(1, n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.Link(i, i+1, grid.East))
	}
	return g
}

// maze generates a rows×columns spanning tree with the given algorithm.
func maze(t *testing.T, algo generate.Algorithm, rows, columns int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, columns)
	require.NoError(t, err)
	require.NoError(t, generate.Run(g, algo, generate.WithSeed(seed)))
	return g
}

// assertPath checks the path runs origin→root with each step linked and
// exactly one closer to the root.
func assertPath(t *testing.T, g *grid.Grid, p *distance.Path, root, origin int) {
	t.Helper()
	d := p.Distances
	require.Equal(t, d.At(origin)+1, p.Len())
	first, _ := p.Origin()
	last, _ := p.Root()
	assert.Equal(t, origin, first)
	assert.Equal(t, root, last)
	for k := 0; k+1 < p.Len(); k++ {
		u, v := p.Cells[k], p.Cells[k+1]
		assert.True(t, g.Linked(u, v), "step %d→%d not linked", u, v)
		assert.Equal(t, d.At(u)-1, d.At(v), "step %d→%d", u, v)
	}
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestSingleCell covers the trivial 1×1 grid.
func TestSingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	d, err := distance.From(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, d.Dist)

	p, err := distance.Longest(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p.Cells)
}

// TestCorridor checks exact tables and paths on a straight line.
func TestCorridor(t *testing.T) {
	g := corridor(t, 5)

	d, err := distance.From(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.Dist)
	far, dist := d.Max()
	assert.Equal(t, 4, far)
	assert.Equal(t, 4, dist)

	p, err := distance.Between(g, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, p.Cells)

	// From the middle both ends are at distance 2; the lower index wins.
	mid, err := distance.From(g, 2)
	require.NoError(t, err)
	far, _ = mid.Max()
	assert.Equal(t, 0, far)

	p, err = distance.Longest(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, p.Cells)
}

// TestUnreached checks partial tables on a grid that is not yet spanned.
func TestUnreached(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1, grid.East))

	d, err := distance.From(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, distance.Unreached, distance.Unreached}, d.Dist)
	assert.False(t, d.Reached(3))
	assert.Equal(t, distance.Unreached, d.At(42))

	p, err := distance.Between(g, 0, 3)
	require.NoError(t, err, "no path is an empty result, not an error")
	assert.Zero(t, p.Len())
	_, ok := p.Origin()
	assert.False(t, ok)
	_, ok = p.Root()
	assert.False(t, ok)
}

// TestErrors covers invalid input, stale tables and corrupted tables.
func TestErrors(t *testing.T) {
	_, err := distance.From(nil, 0)
	assert.ErrorIs(t, err, distance.ErrGridNil)
	_, err = distance.Longest(nil, 0)
	assert.ErrorIs(t, err, distance.ErrGridNil)

	g := corridor(t, 3)
	_, err = distance.From(g, 3)
	assert.ErrorIs(t, err, distance.ErrCellOutOfRange)
	_, err = distance.Between(g, 0, -1)
	assert.ErrorIs(t, err, distance.ErrCellOutOfRange)
	_, err = distance.Between(g, -1, 0)
	assert.ErrorIs(t, err, distance.ErrCellOutOfRange)

	t.Run("Stale", func(t *testing.T) {
		g, err := grid.New(1, 3)
		require.NoError(t, err)
		require.NoError(t, g.Link(0, 1, grid.East))
		d, err := distance.From(g, 0)
		require.NoError(t, err)
		assert.True(t, d.Valid(g))

		require.NoError(t, g.Link(1, 2, grid.East))
		assert.False(t, d.Valid(g))
		_, err = d.PathTo(g, 1)
		assert.ErrorIs(t, err, distance.ErrStaleDistances)
	})

	t.Run("Corrupt", func(t *testing.T) {
		g := corridor(t, 3)
		d, err := distance.From(g, 0)
		require.NoError(t, err)
		d.Dist[1] = 5
		_, err = d.PathTo(g, 2)
		assert.ErrorIs(t, err, grid.ErrCorruptGraph)
	})
}

//----------------------------------------------------------------------------//
// Properties over generated mazes
//----------------------------------------------------------------------------//

// TestDistances_Properties checks root distance, full reachability and the
// ±1 rule across every link, for every generator.
func TestDistances_Properties(t *testing.T) {
	for _, algo := range generate.Algorithms() {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%s/seed%d", algo, seed), func(t *testing.T) {
				g := maze(t, algo, 7, 9, seed)
				r := rand.New(rand.NewSource(seed))
				root := g.RandomCell(r)

				d, err := distance.From(g, root)
				require.NoError(t, err)
				require.Len(t, d.Dist, g.Size())
				assert.Equal(t, 0, d.At(root))
				for _, c := range g.Cells() {
					assert.True(t, d.Reached(c.Index))
					for _, l := range c.Links {
						diff := d.At(c.Index) - d.At(l.To)
						assert.True(t, diff == 1 || diff == -1, "link %d–%d differs by %d", c.Index, l.To, diff)
					}
				}

				again, err := distance.From(g, root)
				require.NoError(t, err)
				assert.Equal(t, d.Dist, again.Dist, "From must be idempotent")
			})
		}
	}
}

// TestBetween_Properties checks shortest-path shape from many origins.
func TestBetween_Properties(t *testing.T) {
	for _, algo := range generate.Algorithms() {
		g := maze(t, algo, 8, 8, 21)
		r := rand.New(rand.NewSource(5))
		for k := 0; k < 20; k++ {
			root, origin := g.RandomCell(r), g.RandomCell(r)
			p, err := distance.Between(g, root, origin)
			require.NoError(t, err)
			assertPath(t, g, p, root, origin)
		}
	}
}

// TestBetween_Cycle checks gradient descent still yields a shortest path
// on a graph with a cycle (a fully linked 2×2 square).
func TestBetween_Cycle(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1, grid.East))
	require.NoError(t, g.Link(1, 3, grid.North))
	require.NoError(t, g.Link(3, 2, grid.West))
	require.NoError(t, g.Link(2, 0, grid.South))

	p, err := distance.Between(g, 0, 3)
	require.NoError(t, err)
	assertPath(t, g, p, 0, 3)
	assert.Equal(t, 3, p.Len())
}

// TestLongest_IsDiameter compares double BFS against brute-force
// eccentricities on small mazes.
func TestLongest_IsDiameter(t *testing.T) {
	for _, algo := range generate.Algorithms() {
		for seed := int64(1); seed <= 3; seed++ {
			g := maze(t, algo, 6, 7, seed)

			diameter := 0
			for i := 0; i < g.Size(); i++ {
				d, err := distance.From(g, i)
				require.NoError(t, err)
				if _, ecc := d.Max(); ecc > diameter {
					diameter = ecc
				}
			}

			p, err := distance.Longest(g, 0)
			require.NoError(t, err)
			assert.Equal(t, diameter+1, p.Len(), "%s seed %d", algo, seed)
			root, _ := p.Root()
			origin, _ := p.Origin()
			assertPath(t, g, p, root, origin)
		}
	}
}

//----------------------------------------------------------------------------//
// Cache
//----------------------------------------------------------------------------//

func TestCache(t *testing.T) {
	g, err := grid.New(1, 4)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1, grid.East))
	c := distance.NewCache(g)

	d1, err := c.From(0)
	require.NoError(t, err)
	d2, err := c.From(0)
	require.NoError(t, err)
	assert.Same(t, d1, d2)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, distance.Unreached, d1.At(3))

	// Relinking invalidates every cached table.
	require.NoError(t, g.Link(1, 2, grid.East))
	require.NoError(t, g.Link(2, 3, grid.East))
	d3, err := c.From(0)
	require.NoError(t, err)
	assert.NotSame(t, d1, d3)
	assert.Equal(t, []int{0, 1, 2, 3}, d3.Dist)
	assert.Equal(t, 1, c.Len())

	p, err := c.Between(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, p.Cells)

	// Farthest from 1 is 3, farthest from 3 is 0: the path runs 0→3.
	p, err = c.Longest(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Cells)
	assert.Equal(t, 3, c.Len(), "tables for roots 0, 1 and 3")

	_, err = distance.NewCache(nil).From(0)
	assert.ErrorIs(t, err, distance.ErrGridNil)
	_, err = c.Between(0, 9)
	assert.ErrorIs(t, err, distance.ErrCellOutOfRange)
}
