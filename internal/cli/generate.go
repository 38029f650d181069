package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/internal/render"
)

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

func (c *CLI) generateCommand() *cobra.Command {
	var configPath string
	flags := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and print it",
		Long: `Carve a perfect maze on a rows×columns grid and print it as text.

Settings are read from --config (TOML) when given; flags override the file.`,
		Example: `  mazegen generate --rows 8 --columns 16 --algorithm sidewinder --longest
  mazegen generate --config maze.toml --distances`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				c.Logger.Debug("loaded config", "path", configPath)
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runGenerate(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.IntVarP(&flags.Rows, "rows", "r", flags.Rows, "grid rows")
	f.IntVarP(&flags.Columns, "columns", "w", flags.Columns, "grid columns")
	f.StringVarP(&flags.Algorithm, "algorithm", "a", flags.Algorithm, "generator: binary-tree, sidewinder, aldous-broder, wilson")
	f.Int64VarP(&flags.Seed, "seed", "s", 0, "random seed (0 picks one and logs it)")
	f.StringVar(&flags.Connectivity, "connectivity", flags.Connectivity, "random-walk neighborhood: conn4 or conn8")
	f.BoolVarP(&flags.Longest, "longest", "l", false, "mark the longest path")
	f.BoolVarP(&flags.Distances, "distances", "d", false, "label cells with their distance")
	f.BoolVar(&flags.Color, "color", flags.Color, "highlight the marked path")

	return cmd
}

// overrideFromFlags copies every flag the user set explicitly onto cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	set := cmd.Flags().Changed
	if set("rows") {
		cfg.Rows = flags.Rows
	}
	if set("columns") {
		cfg.Columns = flags.Columns
	}
	if set("algorithm") {
		cfg.Algorithm = flags.Algorithm
	}
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	if set("connectivity") {
		cfg.Connectivity = flags.Connectivity
	}
	if set("longest") {
		cfg.Longest = flags.Longest
	}
	if set("distances") {
		cfg.Distances = flags.Distances
	}
	if set("color") {
		cfg.Color = flags.Color
	}
}

func (c *CLI) runGenerate(cmd *cobra.Command, cfg Config) error {
	algo, _ := generate.ParseAlgorithm(cfg.Algorithm)
	conn, _ := grid.ParseConnectivity(cfg.Connectivity)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := grid.New(cfg.Rows, cfg.Columns)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	carved := 0
	err = generate.Run(g, algo,
		generate.WithSeed(seed),
		generate.WithConnectivity(conn),
		generate.WithOnLink(func(int, int, grid.Direction) { carved++ }),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", algo, err)
	}
	if err := g.ValidateSpanningTree(); err != nil {
		return fmt.Errorf("%s produced an invalid maze: %w", algo, err)
	}
	prog.done("Carved maze", "algorithm", algo, "rows", cfg.Rows, "columns", cfg.Columns, "links", carved, "seed", seed)

	opts := render.Options{}
	if cfg.Color {
		opts.Style = func(s string) string { return pathStyle.Render(s) }
	}

	var dist *distance.Distances
	if cfg.Longest {
		prog = newProgress(c.Logger)
		p, err := distance.Longest(g, 0)
		if err != nil {
			return err
		}
		from, _ := p.Origin()
		to, _ := p.Root()
		prog.done("Longest path", "length", p.Len()-1, "from", g.Coordinate(from), "to", g.Coordinate(to))
		opts.Path = p.Cells
		dist = p.Distances
	}
	if cfg.Distances {
		if dist == nil {
			if dist, err = distance.From(g, 0); err != nil {
				return err
			}
		}
		_, far := dist.Max()
		c.Logger.Debug("distance map", "root", g.Coordinate(dist.Root), "max", far)
		opts.Distances = dist
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), render.Text(g, opts))
	return err
}
