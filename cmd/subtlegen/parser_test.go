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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	const src = `package keys

// SessionKey identifies one epoch of a rotating key.
//
//subtle:derive ord
type SessionKey struct {
	Epoch  uint32
	Serial uint64
	Digest [32]byte
}

//subtle:derive eq
type Credential struct {
	Secret []byte
	Admin  bool
}

// Ignored carries no directive and must not be collected.
type Ignored struct {
	X int
}
`
	f, err := Parse("keys.go", src)
	require.NoError(t, err)
	assert.Equal(t, "keys", f.Package)
	require.Len(t, f.Structs, 2)

	sk := f.Structs[0]
	assert.Equal(t, "SessionKey", sk.Name)
	assert.Equal(t, ModeOrd, sk.Mode)
	require.Len(t, sk.Fields, 3)
	assert.Equal(t, StructField{Name: "Epoch", Type: "uint32", Kind: KindInteger}, sk.Fields[0])
	assert.Equal(t, StructField{Name: "Serial", Type: "uint64", Kind: KindInteger}, sk.Fields[1])
	assert.Equal(t, StructField{Name: "Digest", Type: "[32]byte", Kind: KindByteArray}, sk.Fields[2])

	cred := f.Structs[1]
	assert.Equal(t, "Credential", cred.Name)
	assert.Equal(t, ModeEq, cred.Mode)
	require.Len(t, cred.Fields, 2)
	assert.Equal(t, KindByteSlice, cred.Fields[0].Kind)
	assert.Equal(t, KindBool, cred.Fields[1].Kind)
}

func TestParseSharedFieldDeclaration(t *testing.T) {
	const src = `package p

//subtle:derive ord
type Point struct {
	X, Y, Z uint16
}
`
	f, err := Parse("p.go", src)
	require.NoError(t, err)
	require.Len(t, f.Structs, 1)
	require.Len(t, f.Structs[0].Fields, 3)
	assert.Equal(t, "X", f.Structs[0].Fields[0].Name)
	assert.Equal(t, "Y", f.Structs[0].Fields[1].Name)
	assert.Equal(t, "Z", f.Structs[0].Fields[2].Name)
}

func TestParseNamedFieldTypes(t *testing.T) {
	const src = `package p

//subtle:derive ord
type Outer struct {
	Inner Token
	Other pkg.Token
}
`
	f, err := Parse("p.go", src)
	require.NoError(t, err)
	require.Len(t, f.Structs[0].Fields, 2)
	assert.Equal(t, KindNamed, f.Structs[0].Fields[0].Kind)
	assert.Equal(t, KindNamed, f.Structs[0].Fields[1].Kind)
	assert.Equal(t, "pkg.Token", f.Structs[0].Fields[1].Type)
}

func TestParseZeroFieldStruct(t *testing.T) {
	const src = `package p

//subtle:derive eq
type Unit struct{}
`
	f, err := Parse("p.go", src)
	require.NoError(t, err)
	require.Len(t, f.Structs, 1)
	assert.Empty(t, f.Structs[0].Fields)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "bool_in_ord_mode",
			src: `package p

//subtle:derive ord
type T struct {
	Flag bool
}
`,
			wantErr: "bool fields cannot be ordered",
		},
		{
			name: "non_struct",
			src: `package p

//subtle:derive eq
type Color int
`,
			wantErr: "not a struct",
		},
		{
			name: "embedded_field",
			src: `package p

//subtle:derive eq
type T struct {
	Base
}
`,
			wantErr: "embedded fields are not supported",
		},
		{
			name: "string_field",
			src: `package p

//subtle:derive eq
type T struct {
	Name string
}
`,
			wantErr: "string fields are not supported",
		},
		{
			name: "float_field",
			src: `package p

//subtle:derive ord
type T struct {
	Score float64
}
`,
			wantErr: "no constant-time ordering",
		},
		{
			name: "pointer_field",
			src: `package p

//subtle:derive eq
type T struct {
	P *uint64
}
`,
			wantErr: "unsupported field type *uint64",
		},
		{
			name: "map_field",
			src: `package p

//subtle:derive eq
type T struct {
	M map[string]int
}
`,
			wantErr: "unsupported field type",
		},
		{
			name: "non_byte_slice",
			src: `package p

//subtle:derive eq
type T struct {
	Words []uint64
}
`,
			wantErr: "only byte arrays and slices are supported",
		},
		{
			name: "unknown_mode",
			src: `package p

//subtle:derive partial
type T struct {
	X uint8
}
`,
			wantErr: `unknown derive mode "partial"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("p.go", tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
