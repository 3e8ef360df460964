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
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"
)

const ctImportPath = "github.com/ajroetker/go-subtle/ct"

// Generate renders the field tables and comparison methods for the given
// structs into one gofmt-formatted source file.
func Generate(pkgName string, structs []DerivedStruct) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by subtlegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import %q\n", ctImportPath)

	for i := range structs {
		emitStruct(&buf, &structs[i])
	}

	out, err := imports.Process("subtle_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func emitStruct(w *bytes.Buffer, s *DerivedStruct) {
	table := tableName(s.Name)
	recv := receiver(s.Name)

	fmt.Fprintf(w, "\n// %s enumerates the fields of %s in declaration order.\n", table, s.Name)
	fmt.Fprintf(w, "var %s = []ct.Field[%s]{", table, s.Name)
	if len(s.Fields) == 0 {
		fmt.Fprintf(w, "}\n")
	} else {
		fmt.Fprintf(w, "\n")
		for _, f := range s.Fields {
			fmt.Fprintf(w, "\t{\n")
			fmt.Fprintf(w, "\t\tName: %q,\n", f.Name)
			fmt.Fprintf(w, "\t\tEq: func(a, b %s) ct.Choice {\n", s.Name)
			fmt.Fprintf(w, "\t\t\treturn %s\n\t\t},\n", compareExpr(f, "Eq"))
			if s.Mode == ModeOrd {
				fmt.Fprintf(w, "\t\tGt: func(a, b %s) ct.Choice {\n", s.Name)
				fmt.Fprintf(w, "\t\t\treturn %s\n\t\t},\n", compareExpr(f, "Gt"))
			}
			fmt.Fprintf(w, "\t},\n")
		}
		fmt.Fprintf(w, "}\n")
	}

	fmt.Fprintf(w, "\n// CtEq reports in constant time whether %s equals other.\n", recv)
	fmt.Fprintf(w, "func (%s %s) CtEq(other %s) ct.Choice {\n", recv, s.Name, s.Name)
	fmt.Fprintf(w, "\treturn ct.StructEq(%s, %s, other)\n}\n", table, recv)

	if s.Mode != ModeOrd {
		return
	}

	fmt.Fprintf(w, "\n// CtGt reports in constant time whether %s is strictly greater than other.\n", recv)
	fmt.Fprintf(w, "func (%s %s) CtGt(other %s) ct.Choice {\n", recv, s.Name, s.Name)
	fmt.Fprintf(w, "\treturn ct.StructGt(%s, %s, other)\n}\n", table, recv)

	fmt.Fprintf(w, "\n// CtLt reports in constant time whether %s is strictly less than other.\n", recv)
	fmt.Fprintf(w, "func (%s %s) CtLt(other %s) ct.Choice {\n", recv, s.Name, s.Name)
	fmt.Fprintf(w, "\treturn ct.StructLt(%s, %s, other)\n}\n", table, recv)

	fmt.Fprintf(w, "\n// Compare returns the public three-way ordering of %s and other.\n", recv)
	fmt.Fprintf(w, "func (%s %s) Compare(other %s) ct.Ordering {\n", recv, s.Name, s.Name)
	fmt.Fprintf(w, "\treturn ct.StructCompare(%s, %s, other)\n}\n", table, recv)
}

// compareExpr renders the leaf comparison for one field; op is "Eq" or "Gt".
func compareExpr(f StructField, op string) string {
	a, b := "a."+f.Name, "b."+f.Name
	switch f.Kind {
	case KindInteger:
		return fmt.Sprintf("ct.%s(%s, %s)", op, a, b)
	case KindBool:
		return fmt.Sprintf("ct.BoolEq(%s, %s)", a, b)
	case KindByteSlice:
		return fmt.Sprintf("ct.Bytes%s(%s, %s)", op, a, b)
	case KindByteArray:
		return fmt.Sprintf("ct.Bytes%s(%s[:], %s[:])", op, a, b)
	default:
		return fmt.Sprintf("%s.Ct%s(%s)", a, op, b)
	}
}

// tableName returns the package-level name of a struct's field table, e.g.
// sessionKeyFields for SessionKey.
func tableName(structName string) string {
	r := []rune(structName)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Fields"
}

// receiver returns the conventional one-letter receiver name for a type.
func receiver(structName string) string {
	return strings.ToLower(structName[:1])
}
