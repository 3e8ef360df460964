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

// Command subtlegen generates constant-time comparison methods for structs.
//
// Usage:
//
//	subtlegen -input keys.go -output .
//
// Or via go:generate:
//
//	//go:generate subtlegen -input $GOFILE
//
// Structs opt in through a directive comment on their type declaration:
//
//	//subtle:derive eq     CtEq only
//	//subtle:derive ord    CtEq, CtGt, CtLt, and Compare
//
// For each annotated struct, subtlegen emits a ct.Field table enumerating
// the struct's fields in declaration order plus methods that delegate to the
// ct package composers. The output lands next to the input as
// <input>_subtle.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	inputFile  = flag.String("input", "", "Input Go source file (required)")
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "", "Output package name (default: same as input)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	parsed, err := Parse(*inputFile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(parsed.Structs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no //subtle:derive directives found in %s\n", *inputFile)
		os.Exit(1)
	}

	pkgName := parsed.Package
	if *packageOut != "" {
		pkgName = *packageOut
	}

	src, err := Generate(pkgName, parsed.Structs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(*inputFile), ".go")
	outPath := filepath.Join(*outputDir, base+"_subtle.go")
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	if *verbose {
		names := make([]string, len(parsed.Structs))
		for i, s := range parsed.Structs {
			names[i] = s.Name
		}
		fmt.Printf("subtlegen: wrote %s (%s)\n", outPath, strings.Join(names, ", "))
	}
}
