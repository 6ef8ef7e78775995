// Package log defines standard attribute keys for cross-validation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in crossval. Using these standard keys enables better
// log analysis of evaluation runs: which scheme was used, how many folds, which
// flexibility levels, and what the resulting losses were.
//
// The keys follow a hierarchical naming convention (e.g., "cv.scheme",
// "data.samples") to enable structured log filtering.

package log

// Evaluation and Operation Context
// These attributes identify the partitioning scheme, component and operation
// being performed.
const (
	// SchemeKey identifies the partitioning scheme in use.
	// Examples: "holdout", "kfold", "stratified_kfold", "group_kfold",
	// "leave_one_out", "leave_p_out", "time_series"
	SchemeKey = "cv.scheme"

	// OperationKey specifies the operation being performed.
	// Standard values: "split", "fit", "predict", "score", "evaluate"
	OperationKey = "cv.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "split", "spline", "metrics", "evaluation"
	ComponentKey = "cv.component"

	// FoldsKey indicates the total number of folds in the evaluation.
	FoldsKey = "cv.folds"

	// FoldKey indicates the index of the fold currently being processed.
	FoldKey = "cv.fold"

	// FlexibilityKey indicates the flexibility (degrees of freedom) of the
	// model currently being fitted or scored.
	FlexibilityKey = "cv.flexibility"

	// GridKey records the full flexibility grid of an evaluation.
	GridKey = "cv.grid"

	// ModelNameKey identifies the model family under evaluation.
	// Examples: "SplineRegression"
	ModelNameKey = "model.name"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// TrainSizeKey indicates the number of records in a fold's train subset.
	TrainSizeKey = "data.train_size"

	// TestSizeKey indicates the number of records in a fold's test subset.
	TestSizeKey = "data.test_size"

	// StrataKey indicates the number of distinct strata in the dataset.
	StrataKey = "data.strata"
)

// Results and Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records a single loss value (one error-matrix cell).
	LossKey = "metrics.loss"

	// MeanLossKey records a per-flexibility mean loss.
	MeanLossKey = "metrics.mean_loss"

	// StdErrorKey records a per-flexibility standard error.
	StdErrorKey = "metrics.std_error"

	// BestFlexibilityKey records the flexibility minimizing mean CV loss.
	BestFlexibilityKey = "selection.best_flexibility"

	// OneSEFlexibilityKey records the flexibility chosen by the
	// one-standard-error rule.
	OneSEFlexibilityKey = "selection.one_se_flexibility"

	// InvalidCellsKey records the number of error-matrix cells excluded from
	// aggregation because their fit or score failed.
	InvalidCellsKey = "metrics.invalid_cells"
)

// Configuration
const (
	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// ParallelKey records whether fold×flexibility units ran on the worker pool.
	ParallelKey = "config.parallel"
)

// Error Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ParameterError", "InsufficientDataError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for common operations.
const (
	OperationSplit    = "split"
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationEvaluate = "evaluate"
)
