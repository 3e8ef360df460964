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

// Choice is a boolean carried as a byte mask: 0x00 for false, 0xFF for true.
// Every operation in this package produces and consumes only these two
// values, so Choices can be combined with bitwise operators without ever
// branching on their contents.
//
// Choice values should not be compared with == or used in conditions while a
// secret-dependent computation is still in flight; convert with Bool or
// Uint8 only once the outcome is a public decision.
type Choice uint8

const (
	// False is the all-zeros Choice.
	False Choice = 0x00
	// True is the all-ones Choice.
	True Choice = 0xFF
)

// FromBit converts the low bit of b into a Choice: 1 becomes True, 0 becomes
// False. Higher bits of b are ignored.
func FromBit(b uint8) Choice {
	return Choice(0 - (b & 1))
}

// FromBool converts a public bool into a Choice. The conversion branches on
// b, so b must not be secret-derived; it exists for seeding accumulators and
// tests, not for carrying secrets.
func FromBool(b bool) Choice {
	if b {
		return True
	}
	return False
}

// And returns c AND other without branching.
func (c Choice) And(other Choice) Choice { return c & other }

// Or returns c OR other without branching.
func (c Choice) Or(other Choice) Choice { return c | other }

// Xor returns c XOR other without branching.
func (c Choice) Xor(other Choice) Choice { return c ^ other }

// Not returns the negation of c without branching.
func (c Choice) Not() Choice { return ^c }

// Bool converts c into a bool. This is a consumption point: calling it ends
// the constant-time guarantee for the value, since the caller presumably
// branches on the result.
func (c Choice) Bool() bool { return c != 0 }

// Uint8 returns 1 if c is True and 0 if c is False, without branching.
func (c Choice) Uint8() uint8 { return uint8(c) & 1 }

// Select returns x if c is True and y if c is False, using a mask blend
// instead of a branch.
func Select[T Integer](c Choice, x, y T) T {
	m := T(int8(c)) // sign-extends 0xFF to all ones in T
	return (x & m) | (y &^ m)
}

// choiceFromMSB spreads the most significant bit of v across a full byte
// mask: True when the MSB is set, False otherwise.
func choiceFromMSB(v uint64) Choice {
	return Choice(0 - (v >> 63))
}

// choiceFromNonzero returns True iff v is nonzero. v | -v has its MSB set
// exactly when v has any bit set.
func choiceFromNonzero(v uint64) Choice {
	return choiceFromMSB(v | (0 - v))
}
