package cmd

import (
	"fmt"

	"github.com/JPM1118/sheetcut/internal/config"
	"github.com/JPM1118/sheetcut/internal/slicer"
	"github.com/spf13/cobra"
)

// gridFlags are shared by slice and inspect. There is deliberately no
// default grid: the dimensions must come from flags or a preset.
type gridFlags struct {
	rows   int
	cols   int
	preset string
}

func (g *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&g.rows, "rows", "r", 0, "number of grid rows")
	cmd.Flags().IntVarP(&g.cols, "cols", "c", 0, "number of grid columns")
	cmd.Flags().StringVarP(&g.preset, "preset", "p", "", "named grid preset from the config file")
}

func (g *gridFlags) resolve(cfg config.Config) (slicer.Grid, error) {
	if g.preset != "" {
		p, ok := cfg.Presets[g.preset]
		if !ok {
			return slicer.Grid{}, fmt.Errorf("unknown preset %q (run `sheetcut presets`)", g.preset)
		}
		return slicer.Grid{Rows: p.Rows, Cols: p.Cols}, nil
	}
	if g.rows == 0 && g.cols == 0 {
		return slicer.Grid{}, fmt.Errorf("grid dimensions required: pass --rows and --cols, or --preset")
	}
	grid := slicer.Grid{Rows: g.rows, Cols: g.cols}
	return grid, grid.Validate()
}
