// Package io reads and writes symbol interchange documents.
//
// A [Document] is the hand-off format between an external symbol encoder
// and this renderer: the raw matrix as textual rows of '0' and '1'
// characters plus the alignment region count. Documents are stored as JSON
// or TOML:
//
//	{
//	  "rows": ["10", "01"],
//	  "regions": 1
//	}
//
//	rows = ["10", "01"]
//	regions = 1
//
// [Import] dispatches on the file extension; [ReadJSON] and [ReadTOML]
// decode from a reader. [Document.Grid] materializes the matrix as a
// [grid.Grid], and [NewDocument] goes the other way so a rendered symbol
// round-trips through the same format.
package io
