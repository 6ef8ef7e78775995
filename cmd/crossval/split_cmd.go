package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &dataCmdConfig{}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Print the fold assignment a scheme produces",
		Long:  `Split partitions the dataset with the chosen scheme and prints each fold's train and test sizes with the test indices, without fitting anything`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := config.validate(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			ds, err := config.load()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			splitter, err := config.splitter(ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			folds, err := splitter.Split(ds.Len())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}

			fmt.Printf("%s over %d records: %d folds\n", config.scheme, ds.Len(), len(folds))
			for i, fold := range folds {
				fmt.Printf("fold %d: train %d, test %d: %v\n",
					i, len(fold.TrainIndices), len(fold.TestIndices), fold.TestIndices)
			}
		},
	}
	config.registerFlags(cmd.Flags())
	return cmd
}
