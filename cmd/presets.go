package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List grid presets from the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Presets) == 0 {
			fmt.Println("No presets configured.")
			return nil
		}

		names := make([]string, 0, len(cfg.Presets))
		for name := range cfg.Presets {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tROWS\tCOLS")
		fmt.Fprintln(w, "────\t────\t────")
		for _, name := range names {
			p := cfg.Presets[name]
			fmt.Fprintf(w, "%s\t%d\t%d\n", name, p.Rows, p.Cols)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
