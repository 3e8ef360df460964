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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// derivePrefix marks a type declaration for generation, in the usual Go
// directive-comment form (no space after the slashes).
const derivePrefix = "//subtle:derive"

// Mode selects which methods are generated for a struct.
type Mode int

const (
	// ModeEq derives CtEq only.
	ModeEq Mode = iota
	// ModeOrd derives CtEq, CtGt, CtLt, and Compare.
	ModeOrd
)

// FieldKind classifies a struct field by the leaf primitive used to compare
// it. The classification is syntactic, like the rest of this tool: a named
// type is assumed to provide its own CtEq/CtGt methods, and the compiler
// rejects the generated code if it does not.
type FieldKind int

const (
	// KindInteger compares with ct.Eq / ct.Gt.
	KindInteger FieldKind = iota
	// KindBool compares with ct.BoolEq; bools carry no ordering.
	KindBool
	// KindByteSlice compares with ct.BytesEq / ct.BytesGt.
	KindByteSlice
	// KindByteArray is a [N]byte, sliced before the bytes primitives.
	KindByteArray
	// KindNamed delegates to the field type's own CtEq / CtGt methods.
	KindNamed
)

// StructField is one field of a derived struct, in declaration order.
type StructField struct {
	Name string    // field name
	Type string    // type expression as written in the source
	Kind FieldKind // which leaf primitive compares it
}

// DerivedStruct is a struct declaration annotated with a derive directive.
type DerivedStruct struct {
	Name   string
	Mode   Mode
	Fields []StructField
}

// File is the parse result for one input file.
type File struct {
	Package string
	Structs []DerivedStruct
}

// Parse reads filename (or src, if non-nil, in any form accepted by
// go/parser) and collects the structs annotated with a derive directive.
// Field order follows declaration order, which fixes the lexicographic
// significance of each field: earlier fields dominate later ones.
func Parse(filename string, src any) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	out := &File{Package: f.Name.Name}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			mode, ok, err := deriveMode(gd.Doc, ts.Doc)
			if err != nil {
				return nil, fmt.Errorf("%s: type %s: %w", fset.Position(ts.Pos()), ts.Name.Name, err)
			}
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: type %s is not a struct; variant types are not supported",
					fset.Position(ts.Pos()), ts.Name.Name)
			}
			ds, err := parseStruct(fset, ts.Name.Name, mode, st)
			if err != nil {
				return nil, err
			}
			out.Structs = append(out.Structs, *ds)
		}
	}
	return out, nil
}

// deriveMode scans the doc comments attached to a type declaration for a
// derive directive. Directive comments are excluded from CommentGroup.Text,
// so the raw comment list is inspected instead.
func deriveMode(groups ...*ast.CommentGroup) (Mode, bool, error) {
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, derivePrefix)
			if !ok {
				continue
			}
			switch strings.TrimSpace(rest) {
			case "eq":
				return ModeEq, true, nil
			case "ord":
				return ModeOrd, true, nil
			default:
				return 0, false, fmt.Errorf("unknown derive mode %q (want eq or ord)", strings.TrimSpace(rest))
			}
		}
	}
	return 0, false, nil
}

func parseStruct(fset *token.FileSet, name string, mode Mode, st *ast.StructType) (*DerivedStruct, error) {
	ds := &DerivedStruct{Name: name, Mode: mode}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%s: struct %s: embedded fields are not supported",
				fset.Position(field.Pos()), name)
		}
		kind, err := classify(field.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: struct %s, field %s: %w",
				fset.Position(field.Pos()), name, field.Names[0].Name, err)
		}
		if mode == ModeOrd && kind == KindBool {
			return nil, fmt.Errorf("%s: struct %s, field %s: bool fields cannot be ordered; use eq or change the type",
				fset.Position(field.Pos()), name, field.Names[0].Name)
		}
		for _, id := range field.Names {
			ds.Fields = append(ds.Fields, StructField{
				Name: id.Name,
				Type: typeString(field.Type),
				Kind: kind,
			})
		}
	}
	return ds, nil
}

// integerTypes are the builtin type names compared with ct.Eq / ct.Gt.
var integerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
}

func classify(expr ast.Expr) (FieldKind, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		switch {
		case integerTypes[e.Name]:
			return KindInteger, nil
		case e.Name == "bool":
			return KindBool, nil
		case e.Name == "string":
			return 0, fmt.Errorf("string fields are not supported: their length is content, not shape; use a fixed-size byte array")
		case e.Name == "float32" || e.Name == "float64":
			return 0, fmt.Errorf("float fields have no constant-time ordering")
		default:
			// A named type in the same package; it must provide CtEq (and
			// CtGt for ord mode) or the generated code will not compile.
			return KindNamed, nil
		}
	case *ast.SelectorExpr:
		return KindNamed, nil
	case *ast.ArrayType:
		if !isByteElem(e.Elt) {
			return 0, fmt.Errorf("only byte arrays and slices are supported, not %s elements", typeString(e.Elt))
		}
		if e.Len == nil {
			return KindByteSlice, nil
		}
		return KindByteArray, nil
	default:
		return 0, fmt.Errorf("unsupported field type %s", typeString(expr))
	}
}

func isByteElem(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

// typeString renders a type expression back to source form, for error
// messages and the generated table.
func typeString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return typeString(e.X) + "." + e.Sel.Name
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + typeString(e.Elt)
		}
		if lit, ok := e.Len.(*ast.BasicLit); ok {
			return "[" + lit.Value + "]" + typeString(e.Elt)
		}
		return "[?]" + typeString(e.Elt)
	case *ast.StarExpr:
		return "*" + typeString(e.X)
	case *ast.MapType:
		return "map[" + typeString(e.Key) + "]" + typeString(e.Value)
	case *ast.InterfaceType:
		return "interface{...}"
	case *ast.StructType:
		return "struct{...}"
	case *ast.FuncType:
		return "func(...)"
	case *ast.ChanType:
		return "chan " + typeString(e.Value)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
