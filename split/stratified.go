package split

import (
	"sort"

	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// StratifiedKFold implements stratified k-fold cross-validation: the fold
// assignment is computed per stratum independently, so each fold's label
// proportions approximate the full dataset's.
//
// Labels must hold one stratum label per record, aligned with record order.
type StratifiedKFold struct {
	Splits  int
	Shuffle bool
	Seed    uint64
	Labels  []string
}

// NewStratifiedKFold creates a stratified k-fold splitter over the given
// per-record labels.
func NewStratifiedKFold(nSplits int, shuffle bool, seed uint64, labels []string) *StratifiedKFold {
	return &StratifiedKFold{Splits: nSplits, Shuffle: shuffle, Seed: seed, Labels: labels}
}

// NSplits returns the number of splits.
func (skf *StratifiedKFold) NSplits() int { return skf.Splits }

// Split generates stratified train/test indices for each fold.
func (skf *StratifiedKFold) Split(n int) ([]Fold, error) {
	const op = "StratifiedKFold.Split"

	if skf.Splits < 2 {
		return nil, errors.NewParameterError(op, "n_splits", "must be at least 2", skf.Splits)
	}
	if len(skf.Labels) != n {
		return nil, errors.NewDimensionError(op, n, len(skf.Labels), 0)
	}

	strata, order := groupByLabel(skf.Labels)
	for _, label := range order {
		if len(strata[label]) < skf.Splits {
			return nil, errors.NewInsufficientDataError(op,
				"stratum '"+label+"' has fewer members than n_splits",
				skf.Splits, len(strata[label]))
		}
	}

	// Shuffle indices within each stratum if requested.
	if skf.Shuffle {
		r := newRand(skf.Seed)
		for _, label := range order {
			indices := strata[label]
			r.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}
	}

	folds := make([]Fold, skf.Splits)

	// Deal each stratum across the folds so every fold receives its share.
	for _, label := range order {
		indices := strata[label]
		nStratum := len(indices)
		foldSize := nStratum / skf.Splits
		remainder := nStratum % skf.Splits

		currentIdx := 0
		for i := 0; i < skf.Splits; i++ {
			testSize := foldSize
			if i < remainder {
				testSize++
			}
			folds[i].TestIndices = append(folds[i].TestIndices, indices[currentIdx:currentIdx+testSize]...)
			currentIdx += testSize
		}
	}

	for i := range folds {
		sort.Ints(folds[i].TestIndices)
		folds[i].TrainIndices = complement(n, folds[i].TestIndices)
	}

	return folds, nil
}

// GroupKFold implements the grouped-stratum variant of k-fold: the partition
// is computed over unique stratum identifiers, so all records sharing a
// stratum land entirely in either the train or the test subset of a fold,
// never split across both.
//
// Groups must hold one stratum identifier per record, aligned with record
// order.
type GroupKFold struct {
	Splits int
	Seed   uint64
	Groups []string
}

// NewGroupKFold creates a grouped k-fold splitter over the given per-record
// stratum identifiers.
func NewGroupKFold(nSplits int, seed uint64, groups []string) *GroupKFold {
	return &GroupKFold{Splits: nSplits, Seed: seed, Groups: groups}
}

// NSplits returns the number of splits.
func (gkf *GroupKFold) NSplits() int { return gkf.Splits }

// Split partitions the unique stratum identifiers into folds, then assigns
// all member records accordingly.
func (gkf *GroupKFold) Split(n int) ([]Fold, error) {
	const op = "GroupKFold.Split"

	if gkf.Splits < 2 {
		return nil, errors.NewParameterError(op, "n_splits", "must be at least 2", gkf.Splits)
	}
	if len(gkf.Groups) != n {
		return nil, errors.NewDimensionError(op, n, len(gkf.Groups), 0)
	}

	strata, order := groupByLabel(gkf.Groups)
	if len(order) < gkf.Splits {
		return nil, errors.NewInsufficientDataError(op,
			"fewer distinct strata than n_splits", gkf.Splits, len(order))
	}

	// Partition the stratum identifiers, shuffled for an unbiased assignment.
	r := newRand(gkf.Seed)
	shuffledGroups := make([]string, len(order))
	copy(shuffledGroups, order)
	r.Shuffle(len(shuffledGroups), func(i, j int) {
		shuffledGroups[i], shuffledGroups[j] = shuffledGroups[j], shuffledGroups[i]
	})

	folds := make([]Fold, gkf.Splits)
	groupCount := len(shuffledGroups)
	foldSize := groupCount / gkf.Splits
	remainder := groupCount % gkf.Splits

	currentIdx := 0
	for i := 0; i < gkf.Splits; i++ {
		testGroups := foldSize
		if i < remainder {
			testGroups++
		}

		for _, label := range shuffledGroups[currentIdx : currentIdx+testGroups] {
			folds[i].TestIndices = append(folds[i].TestIndices, strata[label]...)
		}
		currentIdx += testGroups

		sort.Ints(folds[i].TestIndices)
		folds[i].TrainIndices = complement(n, folds[i].TestIndices)
	}

	return folds, nil
}

// groupByLabel maps each distinct label to the record indices carrying it.
// The returned order preserves first appearance so fold construction is
// deterministic for a fixed input.
func groupByLabel(labels []string) (map[string][]int, []string) {
	strata := make(map[string][]int)
	var order []string
	for i, label := range labels {
		if _, seen := strata[label]; !seen {
			order = append(order, label)
		}
		strata[label] = append(strata[label], i)
	}
	return strata, order
}
