package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/crossval/pkg/log"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crossval",
		Short: "crossval estimates model error by cross-validation",
		Long:  `A tool to partition a dataset into folds, fit a flexibility-indexed spline family on each, and report the cross-validated error curve with one-standard-error model selection`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if config.verbose {
			log.SetLevel(log.LevelDebug)
		}
	}
	rootCmd.AddCommand(versionCmd(), evaluateCmd(config), splitCmd(config))
	return rootCmd
}
