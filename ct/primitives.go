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

import "math/bits"

// This file provides the leaf comparison primitives: constant-time equality
// and ordering for single scalar values and byte slices. The struct
// composers in fields.go are generic over these via Field accessors.

// Eq reports in constant time whether x == y.
func Eq[T Integer](x, y T) Choice {
	return choiceFromNonzero(orderedBits(x) ^ orderedBits(y)).Not()
}

// Gt reports in constant time whether x > y.
func Gt[T Integer](x, y T) Choice {
	_, borrow := bits.Sub64(orderedBits(y), orderedBits(x), 0)
	return FromBit(uint8(borrow))
}

// Lt reports in constant time whether x < y.
func Lt[T Integer](x, y T) Choice {
	return Gt(y, x)
}

// Ge reports in constant time whether x >= y.
func Ge[T Integer](x, y T) Choice {
	return Gt(y, x).Not()
}

// Le reports in constant time whether x <= y.
func Le[T Integer](x, y T) Choice {
	return Gt(x, y).Not()
}

// orderedBits widens v to a uint64 whose unsigned order matches the order of
// T. Unsigned values widen directly; signed values sign-extend and then flip
// the top bit so that negative values sort below positive ones. The branch
// is on the type parameter, not on v, so it is the same for every value of a
// given instantiation.
func orderedBits[T Integer](v T) uint64 {
	if ^T(0) < T(0) {
		return uint64(int64(v)) ^ (1 << 63)
	}
	return uint64(v)
}

// BoolEq reports whether x == y for bool fields. Go booleans carry no
// ordering, so there is no BoolGt.
func BoolEq(x, y bool) Choice {
	var bx, by uint8
	if x {
		bx = 1
	}
	if y {
		by = 1
	}
	return Eq(bx, by)
}

// BytesEq reports in constant time whether x and y have identical contents.
// The slice lengths are public: mismatched lengths return False immediately,
// as length is shape, not content. Equal-length slices are compared by
// folding XOR differences with no early exit.
func BytesEq(x, y []byte) Choice {
	if len(x) != len(y) {
		return False
	}
	var v byte
	for i := range x {
		v |= x[i] ^ y[i]
	}
	return Eq(v, 0)
}

// BytesGt reports in constant time whether x > y under big-endian
// lexicographic order. Both slices must have the same (public) length;
// mismatched lengths return False. Every byte is visited regardless of where
// the slices first differ.
func BytesGt(x, y []byte) Choice {
	if len(x) != len(y) {
		return False
	}
	tied, result := True, False
	for i := range x {
		result = result.Or(tied.And(Gt(x[i], y[i])))
		tied = tied.And(Eq(x[i], y[i]))
	}
	return result
}

// BytesLt is BytesGt with the operands swapped.
func BytesLt(x, y []byte) Choice {
	return BytesGt(y, x)
}
