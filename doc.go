// Package dstk is a data science toolkit for preparing tabular data for modeling.
//
// Categorical columns of a gota DataFrame are expanded into binary indicator columns
// with preprocessing.OneHotEncode. Missing values can either be retained as unknown,
// where every indicator of a feature is missing on rows where the source value was
// missing, or imputed with the most frequent level. Columns with no variance are
// dropped by default.
//
//	enc, err := preprocessing.OneHotEncode(df, preprocessing.NewDefaultOptions())
//	if err != nil {
//		return err
//	}
//	x, err := enc.Matrix()
//
// Subpackages:
//
//   - preprocessing: the encoder, its options and output table
//   - feature: naming of generated indicator columns
//   - frame: column queries over a gota DataFrame
//   - sparse: sparse storage for indicator columns
//   - stats: variance helpers
//   - mat: gonum matrix views over columns
package dstk
