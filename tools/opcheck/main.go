/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
// opcheck verifies at build time what the packages otherwise only check
// in init: every enumeration constant has a printable name, and every DFG
// node type got exactly one FTL capability class.
//
// Usage:
//   go run ./tools/opcheck/            # check the module in the working directory
//   go run ./tools/opcheck/ -v         # also print table sizes
package main

import (
	"fmt"
	"go/ast"
	"go/types"
	"os"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

var verbose bool

type nameTable struct {
	pkg      string // import path suffix
	enum     string // named type
	table    string // composite literal keyed by the constants
	sentinel string // unexported count constant, excluded
}

var nameTables = []nameTable{
	{"/b3", "Opcode", "opcodeNames", "numOpcodes"},
	{"/dfg", "NodeType", "nodeTypeNames", "numNodeTypes"},
	{"/dfg", "UseKind", "useKindNames", "numUseKinds"},
}

// classTables are the ftl lists that together must cover dfg.NodeType once.
var classTables = []string{"loweredNodes", "disqualifyingNodes"}

// classSingles are node types classified outside the lists.
var classSingles = []string{"Identity"}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			fmt.Fprintf(os.Stderr, "usage: opcheck [-v]\n")
			os.Exit(2)
		}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, "./b3", "./dfg", "./ftl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load packages: %v\n", err)
		os.Exit(1)
	}
	byPath := map[string]*packages.Package{}
	for _, p := range pkgs {
		for _, e := range p.Errors {
			fmt.Fprintf(os.Stderr, "  %v\n", e)
		}
		if len(p.Errors) > 0 {
			os.Exit(1)
		}
		for _, nt := range nameTables {
			if strings.HasSuffix(p.PkgPath, nt.pkg) {
				byPath[nt.pkg] = p
			}
		}
		if strings.HasSuffix(p.PkgPath, "/ftl") {
			byPath["/ftl"] = p
		}
	}

	problems := 0
	for _, nt := range nameTables {
		p := byPath[nt.pkg]
		if p == nil {
			fmt.Fprintf(os.Stderr, "package %s not found\n", nt.pkg)
			os.Exit(1)
		}
		consts := enumConstants(p, nt.enum, nt.sentinel)
		keys := literalElements(p, nt.table, true)
		problems += compare(nt.enum+" names", consts, keys, false)
	}

	if ftl := byPath["/ftl"]; ftl != nil {
		consts := enumConstants(byPath["/dfg"], "NodeType", "numNodeTypes")
		var covered []*types.Const
		for _, table := range classTables {
			covered = append(covered, literalElements(ftl, table, false)...)
		}
		for _, name := range classSingles {
			if c, ok := byPath["/dfg"].Types.Scope().Lookup(name).(*types.Const); ok {
				covered = append(covered, c)
			}
		}
		problems += compare("ftl node classes", consts, covered, true)
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "%d problems\n", problems)
		os.Exit(1)
	}
}

// enumConstants lists the package level constants of the named type.
func enumConstants(p *packages.Package, typeName, sentinel string) []*types.Const {
	scope := p.Types.Scope()
	named, ok := scope.Lookup(typeName).(*types.TypeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s.%s is not a type\n", p.PkgPath, typeName)
		os.Exit(1)
	}
	var out []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || name == sentinel || !types.Identical(c.Type(), named.Type()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// literalElements resolves the constants used in the composite literal
// assigned to varName, either as keys or as plain elements.
func literalElements(p *packages.Package, varName string, keys bool) []*types.Const {
	var out []*types.Const
	for _, file := range p.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			spec, ok := n.(*ast.ValueSpec)
			if !ok || len(spec.Names) != 1 || spec.Names[0].Name != varName || len(spec.Values) != 1 {
				return true
			}
			lit, ok := spec.Values[0].(*ast.CompositeLit)
			if !ok {
				return false
			}
			for _, elt := range lit.Elts {
				expr := elt
				if kv, isKV := elt.(*ast.KeyValueExpr); isKV && keys {
					expr = kv.Key
				}
				if c := constOf(p.TypesInfo, expr); c != nil {
					out = append(out, c)
				}
			}
			return false
		})
	}
	return out
}

func constOf(info *types.Info, expr ast.Expr) *types.Const {
	var id *ast.Ident
	switch e := expr.(type) {
	case *ast.Ident:
		id = e
	case *ast.SelectorExpr:
		id = e.Sel
	default:
		return nil
	}
	c, _ := info.Uses[id].(*types.Const)
	return c
}

// compare reports constants missing from got and, if once is set,
// constants that appear more than once.
func compare(what string, want, got []*types.Const, once bool) int {
	seen := map[string]int{}
	for _, c := range got {
		seen[c.Name()]++
	}
	var missing, dup []string
	for _, c := range want {
		switch n := seen[c.Name()]; {
		case n == 0:
			missing = append(missing, c.Name())
		case n > 1 && once:
			dup = append(dup, c.Name())
		}
	}
	sort.Strings(missing)
	sort.Strings(dup)
	if verbose {
		fmt.Printf("%s: %d constants, %d entries\n", what, len(want), len(got))
	}
	for _, m := range missing {
		fmt.Printf("%s: %s is missing\n", what, m)
	}
	for _, d := range dup {
		fmt.Printf("%s: %s is listed %d times\n", what, d, seen[d])
	}
	return len(missing) + len(dup)
}
