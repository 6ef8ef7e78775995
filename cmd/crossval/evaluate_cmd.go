package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/crossval/evaluation"
	"github.com/YuminosukeSato/crossval/pkg/log"
	"github.com/YuminosukeSato/crossval/preprocessing"
)

type evaluateCmdConfig struct {
	dataCmdConfig
	dfMin       int
	dfMax       int
	standardize bool
	parallel    bool
}

func evaluateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &evaluateCmdConfig{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Cross-validate a spline family over a dataset",
		Long:  `Evaluate fits one spline per fold and flexibility level, scores each on the held-out records, and prints the mean error with its standard error per level together with the one-standard-error choice`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := config.validate(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.dfMin < 1 || config.dfMax < config.dfMin {
				fmt.Fprintln(os.Stderr, "--df-min must be at least 1 and --df-max at least --df-min")
				os.Exit(1)
			}

			ds, err := config.load()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			var X mat.Matrix = ds.Features()
			if config.standardize {
				scaled, err := preprocessing.NewStandardScaler().FitTransform(X)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				X = scaled
			}

			splitter, err := config.splitter(ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			grid := make([]int, 0, config.dfMax-config.dfMin+1)
			for df := config.dfMin; df <= config.dfMax; df++ {
				grid = append(grid, df)
			}

			opts := []evaluation.Option{
				evaluation.WithLogger(log.GetLoggerWithName("crossval")),
			}
			if config.parallel {
				opts = append(opts, evaluation.WithParallel())
			}

			result, err := evaluation.Evaluate(X, ds.Targets(), splitter, grid, opts...)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}

			printResult(result)
		},
	}
	config.registerFlags(cmd.Flags())
	cmd.Flags().IntVar(&config.dfMin, "df-min", 1, "lowest degrees of freedom to evaluate")
	cmd.Flags().IntVar(&config.dfMax, "df-max", 12, "highest degrees of freedom to evaluate")
	cmd.Flags().BoolVar(&config.standardize, "standardize", false, "standardize features before fitting")
	cmd.Flags().BoolVar(&config.parallel, "parallel", false, "evaluate cells on all CPUs")
	return cmd
}

func printResult(result *evaluation.Result) {
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "df\tcv error\tstd error\t")
	for j, df := range result.Grid() {
		marker := ""
		if j == result.BestIndex() {
			marker += " <- best"
		}
		if j == result.OneSEIndex() {
			marker += " <- one-SE choice"
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%s\n",
			df, result.Test.MeanLoss(j), result.Test.StdError(j), marker)
	}
	w.Flush()

	fmt.Printf("\nbest flexibility: %d\n", result.BestFlexibility())
	fmt.Printf("one-SE flexibility: %d\n", result.OneSEFlexibility())
	if invalid := result.Test.InvalidCells(); invalid > 0 {
		fmt.Printf("excluded cells: %d\n", invalid)
	}
}
