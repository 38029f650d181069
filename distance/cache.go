package distance

import "github.com/katalvlaran/labyrinth/grid"

// Cache memoizes distance tables of a single grid by root. Every lookup
// compares the grid's link version with the version the cached tables were
// built against and starts over when they differ, so a relinked grid never
// serves a stale table.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	g       *grid.Grid
	version uint64
	tables  map[int]*Distances
}

// NewCache returns an empty cache bound to g.
func NewCache(g *grid.Grid) *Cache {
	c := &Cache{g: g, tables: make(map[int]*Distances)}
	if g != nil {
		c.version = g.Version()
	}
	return c
}

// From returns the cached table for root, computing it on a miss.
func (c *Cache) From(root int) (*Distances, error) {
	if err := checkCell(c.g, root, "root"); err != nil {
		return nil, err
	}
	if v := c.g.Version(); v != c.version {
		clear(c.tables)
		c.version = v
	}
	if d, ok := c.tables[root]; ok {
		return d, nil
	}
	d, err := From(c.g, root)
	if err != nil {
		return nil, err
	}
	c.tables[root] = d
	return d, nil
}

// Between is the cached counterpart of the package-level Between.
func (c *Cache) Between(root, origin int) (*Path, error) {
	if err := checkCell(c.g, origin, "origin"); err != nil {
		return nil, err
	}
	d, err := c.From(root)
	if err != nil {
		return nil, err
	}
	return d.PathTo(c.g, origin)
}

// Longest is the cached counterpart of the package-level Longest.
func (c *Cache) Longest(root int) (*Path, error) {
	return longest(root, c.From, c.g)
}

// Len reports how many tables are currently cached.
func (c *Cache) Len() int {
	return len(c.tables)
}
