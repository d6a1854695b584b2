package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/JPM1118/sheetcut/internal/batch"
	"github.com/JPM1118/sheetcut/internal/slicer"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var (
	sliceGrid    gridFlags
	sliceOut     string
	slicePrefix  string
	sliceFormat  string
	sliceColors  int
	sliceWorkers int
)

var sliceCmd = &cobra.Command{
	Use:   "slice [flags] <sheets|dirs|globs...>",
	Short: "Slice sprite sheets into per-cell sprite files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := sliceGrid.resolve(cfg)
		if err != nil {
			return err
		}

		sheets, err := batch.Collect(args)
		if err != nil {
			return err
		}

		opts := slicer.Options{
			Prefix: orDefault(slicePrefix, cfg.Slice.Prefix),
			Format: orDefault(sliceFormat, cfg.Slice.Format),
			Colors: sliceColors,
		}
		workers := sliceWorkers
		if workers == 0 {
			workers = cfg.Slice.Workers
		}

		type report struct {
			sheet string
			dir   string
			count int
		}
		var mu sync.Mutex
		var reports []report

		err = batch.Run(sheets, workers, func(sheet string) error {
			dir := outDirFor(sheet, sliceOut, len(sheets) > 1)
			paths, err := slicer.Slice(sheet, dir, grid, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			reports = append(reports, report{sheet: sheet, dir: dir, count: len(paths)})
			mu.Unlock()
			return nil
		})
		if err != nil {
			return err
		}

		sort.Slice(reports, func(i, j int) bool { return natural.Less(reports[i].sheet, reports[j].sheet) })

		total := 0
		for _, r := range reports {
			total += r.count
			fmt.Printf("%s  %s %s\n",
				okStyle.Render(fmt.Sprintf("%4d", r.count)),
				r.sheet,
				mutedStyle.Render(r.dir))
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%d sprites from %d sheet(s)", total, len(reports))))
		return nil
	},
}

func init() {
	sliceGrid.register(sliceCmd)
	sliceCmd.Flags().StringVarP(&sliceOut, "out", "o", "", "output directory (default <sheet>_sprites next to each source)")
	sliceCmd.Flags().StringVar(&slicePrefix, "prefix", "", "sprite file name prefix (default from config)")
	sliceCmd.Flags().StringVar(&sliceFormat, "format", "", "output image format (default from config)")
	sliceCmd.Flags().IntVar(&sliceColors, "colors", 0, "quantize sprites to a shared palette of this many colors (png only)")
	sliceCmd.Flags().IntVar(&sliceWorkers, "workers", 0, "sheets to slice in parallel (default from config)")
	rootCmd.AddCommand(sliceCmd)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// outDirFor picks the destination for one sheet's sprites. Without
// --out each sheet gets <base>_sprites next to the source; with --out
// and multiple sheets each gets its own subdirectory so names cannot
// collide.
func outDirFor(sheet, out string, multi bool) string {
	base := strings.TrimSuffix(filepath.Base(sheet), filepath.Ext(sheet))
	if out == "" {
		return filepath.Join(filepath.Dir(sheet), base+"_sprites")
	}
	if multi {
		return filepath.Join(out, base)
	}
	return out
}
