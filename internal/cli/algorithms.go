package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/generate"
)

var algorithmNotes = map[generate.Algorithm]string{
	generate.AlgoBinaryTree:   "north/east coin per cell, diagonal bias",
	generate.AlgoSidewinder:   "row runs tunneling north, open top row",
	generate.AlgoAldousBroder: "random walk, uniform spanning tree",
	generate.AlgoWilson:       "loop-erased random walk, uniform spanning tree",
}

func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List maze generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range generate.Algorithms() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", a, algorithmNotes[a])
			}
			return nil
		},
	}
}
