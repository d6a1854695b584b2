package cmd

import (
	"fmt"
	"image"
	"os"
	"text/tabwriter"

	"github.com/JPM1118/sheetcut/internal/batch"
	"github.com/spf13/cobra"
)

var inspectGrid gridFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <sheets|dirs|globs...>",
	Short: "Show sheet and cell geometry without slicing",
	Long: `inspect decodes only the sheet dimensions and reports the cell size a
grid would produce, including pixels the integer division would drop at
the right and bottom edges.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := inspectGrid.resolve(cfg)
		if err != nil {
			return err
		}

		sheets, err := batch.Collect(args)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SHEET\tSIZE\tCELLS\tCELL SIZE\tDROPPED")
		fmt.Fprintln(w, "─────\t────\t─────\t─────────\t───────")
		for _, sheet := range sheets {
			sw, sh, err := sheetSize(sheet)
			if err != nil {
				return err
			}
			cw, ch := grid.CellSize(sw, sh)
			rx, ry := grid.Remainder(sw, sh)
			dropped := "none"
			if rx > 0 || ry > 0 {
				dropped = fmt.Sprintf("%dpx right, %dpx bottom", rx, ry)
			}
			fmt.Fprintf(w, "%s\t%dx%d\t%dx%d\t%dx%d\t%s\n",
				sheet, sw, sh, grid.Rows, grid.Cols, cw, ch, dropped)
		}
		return w.Flush()
	},
}

func init() {
	inspectGrid.register(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

// sheetSize reads only the image header. Codecs are registered by the
// slicer package's imports.
func sheetSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	c, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return c.Width, c.Height, nil
}
