// Package sqldataset loads datasets from a database/sql source. Column names
// drive the mapping: the caller names the feature columns, the target column,
// and optionally a stratum column.
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// sqlite3 driver for Open
	_ "github.com/mattn/go-sqlite3"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/crossval/dataset"
	"github.com/YuminosukeSato/crossval/pkg/errors"
)

// Source reads datasets out of one table of a SQL database.
type Source struct {
	db    *sql.DB
	table string
}

// Open opens an SQLite database file and returns a source over the given
// table.
func Open(path, table string) (*Source, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "crossval: opening sqlite database %s", path)
	}
	return NewSource(db, table)
}

// NewSource wraps an existing database handle. The caller keeps ownership of
// db unless Close is used.
func NewSource(db *sql.DB, table string) (*Source, error) {
	const op = "sqldataset.NewSource"
	if err := validIdentifier(op, "table", table); err != nil {
		return nil, err
	}
	return &Source{db: db, table: table}, nil
}

// Close closes the underlying database handle.
func (s *Source) Close() error {
	return s.db.Close()
}

// Load reads all rows of the source table into a dataset. featureCols and
// targetCol are required; stratumCol may be empty.
func (s *Source) Load(ctx context.Context, featureCols []string, targetCol, stratumCol string) (*dataset.Dataset, error) {
	const op = "sqldataset.Load"

	if len(featureCols) == 0 {
		return nil, errors.NewParameterError(op, "featureCols", "must not be empty", featureCols)
	}
	if err := validIdentifier(op, "targetCol", targetCol); err != nil {
		return nil, err
	}
	cols := make([]string, 0, len(featureCols)+2)
	for _, c := range featureCols {
		if err := validIdentifier(op, "featureCols", c); err != nil {
			return nil, err
		}
		cols = append(cols, quote(c))
	}
	cols = append(cols, quote(targetCol))
	if stratumCol != "" {
		if err := validIdentifier(op, "stratumCol", stratumCol); err != nil {
			return nil, err
		}
		cols = append(cols, quote(stratumCol))
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), quote(s.table))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "crossval: querying %s", s.table)
	}
	defer rows.Close()

	var (
		featureRows [][]float64
		targets     []float64
		strata      []string
	)
	for rows.Next() {
		features := make([]float64, len(featureCols))
		var target float64
		var stratum sql.NullString

		dest := make([]any, 0, len(cols))
		for i := range features {
			dest = append(dest, &features[i])
		}
		dest = append(dest, &target)
		if stratumCol != "" {
			dest = append(dest, &stratum)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "crossval: scanning row %d of %s", len(targets), s.table)
		}

		featureRows = append(featureRows, features)
		targets = append(targets, target)
		if stratumCol != "" {
			strata = append(strata, stratum.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "crossval: reading rows of %s", s.table)
	}

	n := len(targets)
	if n == 0 {
		return nil, errors.NewModelError(op, "empty table", errors.ErrEmptyData)
	}

	features := mat.NewDense(n, len(featureCols), nil)
	targetVec := mat.NewVecDense(n, targets)
	for i, row := range featureRows {
		for j, v := range row {
			features.Set(i, j, v)
		}
	}

	return dataset.New(features, targetVec, strata)
}

// validIdentifier rejects column and table names that cannot be quoted
// safely.
func validIdentifier(op, param, name string) error {
	if name == "" {
		return errors.NewParameterError(op, param, "must not be empty", name)
	}
	if strings.ContainsAny(name, `"`) {
		return errors.NewParameterError(op, param, `must not contain '"'`, name)
	}
	return nil
}

func quote(name string) string {
	return `"` + name + `"`
}
