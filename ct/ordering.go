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

// Ordering is a three-way comparison outcome. Its values match the -1/0/+1
// convention of the standard library's cmp package, so an Ordering converts
// directly to the int expected by slices.SortFunc.
type Ordering int

const (
	OrderingLess    Ordering = -1
	OrderingEqual   Ordering = 0
	OrderingGreater Ordering = 1
)

// String returns "Less", "Equal", or "Greater".
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "Less"
	case o > 0:
		return "Greater"
	default:
		return "Equal"
	}
}

// Compare derives a three-way ordering of a and b. Both CtEq and CtGt are
// evaluated unconditionally before the outcome is selected; the selection
// itself branches, which is acceptable because an Ordering is by definition
// a public decision (sorting, tree placement). Callers that must stay
// branch-free keep working with the Choice results instead.
func Compare[T ConstantTimeOrd[T]](a, b T) Ordering {
	return ordering(a.CtEq(b), a.CtGt(b))
}

// StructCompare is Compare over a field table: each field's Eq runs exactly
// twice and its Gt exactly once, independent of the operand values.
func StructCompare[T any](fields []Field[T], a, b T) Ordering {
	return ordering(StructEq(fields, a, b), StructGt(fields, a, b))
}

// CompareFunc adapts Compare for slices.SortFunc and friends.
func CompareFunc[T ConstantTimeOrd[T]]() func(a, b T) int {
	return func(a, b T) int {
		return int(Compare(a, b))
	}
}

// ordering selects the public outcome from the two carriers. By trichotomy
// exactly one of eq, gt, and "neither" holds, so checking eq then gt covers
// all three cases.
func ordering(eq, gt Choice) Ordering {
	switch {
	case eq.Bool():
		return OrderingEqual
	case gt.Bool():
		return OrderingGreater
	default:
		return OrderingLess
	}
}
