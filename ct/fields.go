// Copyright 2026 go-subtle Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ct

// Field describes how to compare one field of a composite type T. A field
// table ([]Field[T]) enumerates a struct's fields in declaration order; the
// table's index is the field's position. Tables are static per type, built
// once by hand or by cmd/subtlegen, and the two operands of any comparison
// share the same table, which is what pins both to the same shape.
type Field[T any] struct {
	// Name identifies the field, for diagnostics only.
	Name string
	// Eq compares the field across the two operands in constant time.
	Eq func(a, b T) Choice
	// Gt compares the field for strict greater-than in constant time. May
	// be nil for tables only ever used with StructEq.
	Gt func(a, b T) Choice
}

// StructEq reports whether a and b are equal on every field. Each field's Eq
// runs exactly once, in order, and the results are AND-folded with no early
// exit, so the operation count depends only on len(fields). An empty table
// yields True: zero-field values are all equal.
func StructEq[T any](fields []Field[T], a, b T) Choice {
	acc := True
	for _, f := range fields {
		acc = acc.And(f.Eq(a, b))
	}
	return acc
}

// StructGt reports whether a > b under lexicographic field order: the first
// differing field decides, later fields only break ties. Two masks thread
// through the fold: tied starts True and can only fall, result starts False
// and can only rise. Both update on every field, so a decision latched
// by an early field cannot be overridden and no field is skipped. Each
// field's Gt and Eq run exactly once per call. An empty table yields False.
func StructGt[T any](fields []Field[T], a, b T) Choice {
	tied, result := True, False
	for _, f := range fields {
		result = result.Or(tied.And(f.Gt(a, b)))
		tied = tied.And(f.Eq(a, b))
	}
	return result
}

// StructLt reports whether a < b; it is StructGt with the operands swapped.
func StructLt[T any](fields []Field[T], a, b T) Choice {
	return StructGt(fields, b, a)
}
