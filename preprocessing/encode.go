// Package preprocessing prepares tabular data for statistical modeling. OneHotEncode
// expands categorical columns of a gota DataFrame into binary indicator columns.
package preprocessing

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/aouyang1/go-dstk/feature"
	"github.com/aouyang1/go-dstk/frame"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// OneHotEncode replaces each categorical feature of df with one binary indicator column
// per level named binary#<feature>_<level>, plus a binary#<feature>_nan missing-indicator
// when tracking missing values. The input DataFrame is never modified. If no options are
// provided the defaults are used.
//
// Errors raised by the DataFrame, such as a feature naming an unknown column, are
// returned unmodified.
func OneHotEncode(df dataframe.DataFrame, opt *Options) (*Encoded, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if df.Err != nil {
		return nil, df.Err
	}
	dfc := df.Copy()

	features := resolveFeatures(dfc, opt.Features)

	sources := make([]series.Series, len(features))
	var totalLevels int
	for i, name := range features {
		s, err := frame.Column(dfc, name)
		if err != nil {
			return nil, err
		}
		sources[i] = s
		totalLevels += frame.NUnique(s)
	}
	if totalLevels > opt.LevelWarnThreshold && !opt.Sparse {
		slog.Warn("categorical levels found, recommend using sparse output or feature selection",
			"levels", totalLevels,
			"features", len(features),
		)
	}

	if opt.Missing == MissingMode {
		for i, s := range sources {
			sources[i] = frame.ImputeMode(s)
		}
	}

	cols := make([]*column, 0, dfc.Ncol())
	for _, name := range dfc.Names() {
		if slices.Contains(features, name) {
			continue
		}
		cols = append(cols, passthroughColumn(dfc.Col(name)))
	}
	for i, name := range features {
		cols = append(cols, expand(name, sources[i], opt)...)
	}

	enc, err := newEncoded(dfc.Nrow(), opt.Sparse, totalLevels, cols)
	if err != nil {
		return nil, err
	}

	if opt.Missing == MissingRetain {
		for _, name := range features {
			enc.retainMissing(name)
		}
	}

	if opt.DropZeroVariance {
		enc.dropZeroVariance(opt.VarianceTolerance)
	}
	return enc, nil
}

// resolveFeatures returns the de-duplicated explicit feature list, or every categorical
// column when none is given
func resolveFeatures(df dataframe.DataFrame, features []string) []string {
	if len(features) == 0 {
		return frame.Categorical(df)
	}
	res := make([]string, 0, len(features))
	for _, f := range features {
		if slices.Contains(res, f) {
			continue
		}
		res = append(res, f)
	}
	return res
}

// expand generates the indicator columns of a single feature. Levels are ordered by first
// appearance and the first level is the reference level omitted when dropping first.
func expand(name string, s series.Series, opt *Options) []*column {
	levels := frame.Levels(s)
	if opt.DropFirst && len(levels) > 0 {
		levels = levels[1:]
	}

	n := s.Len()
	levelIdx := make(map[string]int, len(levels))
	cols := make([]*column, 0, len(levels)+1)
	for i, level := range levels {
		levelIdx[level] = i
		cols = append(cols, generatedColumn(
			feature.NewIndicator(name, level),
			newIndicatorData(n, opt.Sparse),
		))
	}

	var missingCol *column
	if opt.TrackMissing {
		missingCol = generatedColumn(feature.NewMissing(name), newIndicatorData(n, opt.Sparse))
		cols = append(cols, missingCol)
	}

	for i, missing := range frame.Missing(s) {
		if missing {
			if missingCol != nil {
				missingCol.data.Set(i, 1.0)
			}
			continue
		}
		if j, exists := levelIdx[frame.Key(s.Elem(i))]; exists {
			cols[j].data.Set(i, 1.0)
		}
	}
	return cols
}

// retainMissing marks every level indicator of a feature as missing on the rows flagged by
// its missing-indicator so a missing value is not read as the reference level.
func (e *Encoded) retainMissing(name string) {
	missing, exists := e.labels.Missing(name)
	if !exists {
		return
	}
	missingCol := e.cols[e.idx[missing.String()]]

	levelCols := make([]*column, 0)
	for _, label := range e.labels.Levels(name) {
		levelCols = append(levelCols, e.cols[e.idx[label.String()]])
	}
	if len(levelCols) == 0 {
		return
	}

	for i := 0; i < e.nrow; i++ {
		if missingCol.data.At(i) != 1.0 {
			continue
		}
		for _, c := range levelCols {
			c.data.Set(i, math.NaN())
		}
	}
}

// dropZeroVariance removes every column whose variance is defined and no greater than tol
func (e *Encoded) dropZeroVariance(tol float64) {
	kept := make([]*column, 0, len(e.cols))
	for _, c := range e.cols {
		v, defined := c.variance()
		if defined && v <= tol {
			slog.Debug("dropping zero variance column", "column", c.name, "variance", v)
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == len(e.cols) {
		return
	}
	e.setColumns(kept)
}

// newEncoded assembles the output table checking that column names are unique
func newEncoded(nrow int, isSparse bool, totalLevels int, cols []*column) (*Encoded, error) {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, exists := seen[c.name]; exists {
			return nil, fmt.Errorf("%s, %w", c.name, ErrDuplicateColumn)
		}
		seen[c.name] = struct{}{}
	}

	e := &Encoded{
		nrow:        nrow,
		sparse:      isSparse,
		totalLevels: totalLevels,
	}
	e.setColumns(cols)
	return e, nil
}
