package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/YuminosukeSato/crossval/dataset"
	"github.com/YuminosukeSato/crossval/dataset/sqldataset"
	"github.com/YuminosukeSato/crossval/split"
)

// dataCmdConfig holds the input and partitioning flags shared by the
// evaluate and split commands.
type dataCmdConfig struct {
	input    string
	db       string
	table    string
	target   string
	features []string
	stratum  string

	scheme  string
	folds   int
	ratio   float64
	p       int
	seed    uint64
	shuffle bool
}

func (c *dataCmdConfig) registerFlags(cmd *pflag.FlagSet) {
	cmd.StringVar(&c.input, "input", "", "CSV file to read the dataset from")
	cmd.StringVar(&c.db, "db", "", "SQLite database file to read the dataset from (alternative to --input)")
	cmd.StringVar(&c.table, "table", "", "table to read when --db is given")
	cmd.StringVar(&c.target, "target", "", "name of the target column")
	cmd.StringSliceVar(&c.features, "features", nil, "feature columns (default: all columns except target and stratum)")
	cmd.StringVar(&c.stratum, "stratum", "", "column holding stratum labels for stratified/group schemes")
	cmd.StringVar(&c.scheme, "scheme", "kfold", "partitioning scheme: holdout, kfold, stratified, group, loo, lpo, timeseries")
	cmd.IntVar(&c.folds, "folds", 10, "number of folds (kfold, stratified, group, timeseries)")
	cmd.Float64Var(&c.ratio, "ratio", 0.8, "train fraction for holdout")
	cmd.IntVar(&c.p, "p", 2, "test-set size for leave-p-out")
	cmd.Uint64Var(&c.seed, "seed", 0, "random seed; 0 draws a fresh one")
	cmd.BoolVar(&c.shuffle, "shuffle", true, "shuffle records before dealing folds")
}

func (c *dataCmdConfig) validate() error {
	if c.input == "" && c.db == "" {
		return fmt.Errorf("either --input or --db is required")
	}
	if c.input != "" && c.db != "" {
		return fmt.Errorf("--input and --db are mutually exclusive")
	}
	if c.db != "" && c.table == "" {
		return fmt.Errorf("--table is required with --db")
	}
	if c.target == "" {
		return fmt.Errorf("--target is required")
	}
	switch c.scheme {
	case "holdout", "kfold", "stratified", "group", "loo", "lpo", "timeseries":
	default:
		return fmt.Errorf("unknown scheme %q", c.scheme)
	}
	if (c.scheme == "stratified" || c.scheme == "group") && c.stratum == "" {
		return fmt.Errorf("--stratum is required for scheme %q", c.scheme)
	}
	return nil
}

func (c *dataCmdConfig) load() (*dataset.Dataset, error) {
	if c.db != "" {
		src, err := sqldataset.Open(c.db, c.table)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Load(context.Background(), c.features, c.target, c.stratum)
	}
	return dataset.FromCSVFile(c.input, dataset.CSVOptions{
		Target:   c.target,
		Features: c.features,
		Stratum:  c.stratum,
	})
}

func (c *dataCmdConfig) splitter(ds *dataset.Dataset) (split.Splitter, error) {
	switch c.scheme {
	case "holdout":
		return split.NewHoldoutSplit(c.ratio, c.seed), nil
	case "kfold":
		return split.NewKFold(c.folds, c.shuffle, c.seed), nil
	case "stratified":
		return split.NewStratifiedKFold(c.folds, c.shuffle, c.seed, ds.Strata()), nil
	case "group":
		return split.NewGroupKFold(c.folds, c.seed, ds.Strata()), nil
	case "loo":
		return split.NewLeaveOneOut(), nil
	case "lpo":
		return split.NewLeavePOut(c.p), nil
	case "timeseries":
		return split.NewTimeSeriesSplit(c.folds), nil
	}
	return nil, fmt.Errorf("unknown scheme %q", c.scheme)
}
