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

// ConstantTimeEq is the capability a type offers when it can compare itself
// for equality in constant time. Composite types usually implement it by
// delegating to StructEq over a field table.
type ConstantTimeEq[T any] interface {
	// CtEq reports whether the receiver equals other without branching on
	// the contents of either.
	CtEq(other T) Choice
}

// ConstantTimeOrd extends ConstantTimeEq with a strict greater-than, enough
// to derive a full ordering.
type ConstantTimeOrd[T any] interface {
	ConstantTimeEq[T]
	// CtGt reports whether the receiver is strictly greater than other
	// without branching on the contents of either.
	CtGt(other T) Choice
}

// Equal reports in constant time whether a == b.
func Equal[T ConstantTimeEq[T]](a, b T) Choice {
	return a.CtEq(b)
}

// Greater reports in constant time whether a > b.
func Greater[T ConstantTimeOrd[T]](a, b T) Choice {
	return a.CtGt(b)
}

// Less reports in constant time whether a < b, by asking whether b > a.
func Less[T ConstantTimeOrd[T]](a, b T) Choice {
	return b.CtGt(a)
}

// AllEq folds per-field equality results into a whole-value equality with an
// unconditional AND reduction. Go evaluates every argument before the call,
// so each field comparison runs exactly once whatever the outcomes. With no
// arguments the result is True: a value with no fields equals itself.
//
//	func (k Key) CtEq(other Key) ct.Choice {
//		return ct.AllEq(
//			ct.BytesEq(k.ID[:], other.ID[:]),
//			ct.Eq(k.Counter, other.Counter),
//		)
//	}
func AllEq(fields ...Choice) Choice {
	acc := True
	for _, f := range fields {
		acc = acc.And(f)
	}
	return acc
}

// FieldOrd pairs one field's equality and strict greater-than outcomes for
// LexGt. Both sides are evaluated before composition, never conditionally.
type FieldOrd struct {
	Eq Choice
	Gt Choice
}

// LexGt folds per-field outcomes, in field order, into a whole-value strict
// greater-than under lexicographic semantics: a field can only decide the
// result if every earlier field was tied. All fields are folded regardless
// of where the tie breaks. With no arguments the result is False.
func LexGt(fields ...FieldOrd) Choice {
	tied, result := True, False
	for _, f := range fields {
		result = result.Or(tied.And(f.Gt))
		tied = tied.And(f.Eq)
	}
	return result
}
