// Package crossval provides cross-validation and model-selection utilities
// for Go, built on gonum and designed around a scikit-learn-like API.
//
// crossval separates the evaluation loop into small, composable pieces:
// pluggable dataset partitioning strategies, a fit/predict model family,
// loss functions, and an orchestrator that aggregates per-fold errors into
// an error matrix with mean and standard-error summaries and a
// one-standard-error model selection rule.
//
// # Quick Start
//
// Evaluate a spline regression family over a degrees-of-freedom grid with
// 10-fold cross-validation:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/crossval/dataset"
//	    "github.com/YuminosukeSato/crossval/evaluation"
//	    "github.com/YuminosukeSato/crossval/split"
//	)
//
//	func main() {
//	    ds, err := dataset.GenerateSine(200, 0.3, 42)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := evaluation.Evaluate(ds.Features(), ds.Targets(),
//	        split.NewKFold(10, true, 42),
//	        []int{2, 3, 4, 5, 6, 8, 10, 12})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("best df=%d, one-SE df=%d\n",
//	        result.BestFlexibility(), result.OneSEFlexibility())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - split: partitioning strategies (holdout, k-fold, stratified and
//     grouped k-fold, leave-one-out, leave-p-out, forward chaining)
//   - spline: the built-in model family (basis regression indexed by
//     degrees of freedom)
//   - metrics: loss functions (MSE, RMSE, MAE)
//   - evaluation: the orchestrator, error matrix and selection rules
//   - dataset: dataset container, synthetic generators, CSV loading
//   - preprocessing: feature standardization
//   - core/model: core interfaces and base types
//   - core/parallel: parallel processing utilities
//
// # Reproducibility
//
// Every stochastic component takes an explicit seed and derives its own
// generator from it; two evaluations with the same data, splitter
// configuration and flexibility grid produce identical error matrices.
//
// # License
//
// crossval is released under the MIT License.
package crossval
