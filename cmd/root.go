package cmd

import (
	"fmt"
	"os"

	"github.com/JPM1118/sheetcut/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sheetcut",
	Short: "Cut sprite sheets into individual sprite files",
	Long: `sheetcut divides a sprite sheet into a fixed grid of rows and columns
and writes every cell out as its own image file.

Grid dimensions come from flags or from a named preset in the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.LoadFrom(cfgPath)
		} else {
			cfg, err = config.Load()
		}
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to an alternate config file")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
