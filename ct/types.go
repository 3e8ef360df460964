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

// Package ct provides constant-time comparisons for composite (struct-like)
// values built from fields that already compare in constant time.
//
// Comparison results are carried as a Choice, an all-zeros or all-ones byte
// mask combined with bitwise operators instead of branches. Leaf primitives
// (Eq, Gt, BytesEq, ...) compare scalar values; the struct composers
// (StructEq, StructGt, StructCompare) fold per-field results into a
// whole-value result that visits every field unconditionally, so the number
// of operations depends only on the field count, never on the field contents.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-subtle/ct"
//
//	type Token struct{ Epoch uint32; Serial uint64 }
//
//	var tokenFields = []ct.Field[Token]{
//		{Name: "Epoch",
//			Eq: func(a, b Token) ct.Choice { return ct.Eq(a.Epoch, b.Epoch) },
//			Gt: func(a, b Token) ct.Choice { return ct.Gt(a.Epoch, b.Epoch) }},
//		{Name: "Serial",
//			Eq: func(a, b Token) ct.Choice { return ct.Eq(a.Serial, b.Serial) },
//			Gt: func(a, b Token) ct.Choice { return ct.Gt(a.Serial, b.Serial) }},
//	}
//
//	func (t Token) CtEq(other Token) ct.Choice { return ct.StructEq(tokenFields, t, other) }
//	func (t Token) CtGt(other Token) ct.Choice { return ct.StructGt(tokenFields, t, other) }
//
// Field tables can be written by hand or generated with cmd/subtlegen.
package ct

// Signed is a constraint for signed integer types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integer is a constraint for all integer types.
type Integer interface {
	Signed | Unsigned
}
