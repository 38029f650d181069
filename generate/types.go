package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("generate: grid is nil")
	// ErrGridNotEmpty is returned when the grid already has links.
	ErrGridNotEmpty = errors.New("generate: grid already has links")
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")
)

// Option configures a generator run.
type Option func(*config)

// config holds the resolved options of one generator run.
type config struct {
	src    grid.Source
	conn   grid.Connectivity
	onLink func(a, b int, d grid.Direction)
}

func defaultConfig() config {
	return config{
		src:    globalSource{},
		conn:   grid.Conn4,
		onLink: func(int, int, grid.Direction) {},
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRand draws every random decision from src.
// Panics on nil to surface the mistake at the call site.
func WithRand(src grid.Source) Option {
	if src == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Two runs with the
// same seed, grid shape and algorithm produce the same maze.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithConnectivity sets the neighborhood sampled by the random-walk
// generators (AldousBroder, Wilson). BinaryTree and Sidewinder ignore it.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(c *config) {
		c.conn = conn
	}
}

// WithOnLink registers a hook called after every link is carved, in carve
// order. Panics on nil.
func WithOnLink(fn func(a, b int, d grid.Direction)) Option {
	if fn == nil {
		panic("generate: WithOnLink(nil)")
	}
	return func(c *config) {
		c.onLink = fn
	}
}

// globalSource forwards to the top-level math/rand functions.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Algorithm names a maze generator.
type Algorithm string

const (
	AlgoBinaryTree   Algorithm = "binary-tree"
	AlgoSidewinder   Algorithm = "sidewinder"
	AlgoAldousBroder Algorithm = "aldous-broder"
	AlgoWilson       Algorithm = "wilson"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBinaryTree, AlgoSidewinder, AlgoAldousBroder, AlgoWilson}
}

// ParseAlgorithm resolves a name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run dispatches to the generator named by algo.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) error {
	switch algo {
	case AlgoBinaryTree:
		return BinaryTree(g, opts...)
	case AlgoSidewinder:
		return Sidewinder(g, opts...)
	case AlgoAldousBroder:
		return AldousBroder(g, opts...)
	case AlgoWilson:
		return Wilson(g, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}
