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
package dfg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

type graphFile struct {
	CodeBlock *CodeBlock   `json:"codeBlock"`
	Blocks    []*blockFile `json:"blocks"`
}

type blockFile struct {
	CFAHasVisited *bool      `json:"cfaHasVisited"`
	Nodes         []nodeFile `json:"nodes"`
}

type nodeFile struct {
	Op       string     `json:"op"`
	Children []edgeFile `json:"children"`
}

type edgeFile struct {
	Node    *int   `json:"node"`
	UseKind string `json:"useKind"`
}

// LoadGraph decodes a JSON graph description. Edges reference nodes by their
// position across all blocks in document order; forward references are allowed.
func LoadGraph(r io.Reader) (*Graph, error) {
	var f graphFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	cb := f.CodeBlock
	if cb == nil {
		cb = &CodeBlock{Name: "<anonymous>"}
	}
	g := NewGraph(cb)

	type pending struct {
		node  *Node
		edges []edgeFile
	}
	var todo []pending
	var nodes []*Node
	for bi, bf := range f.Blocks {
		if bf == nil {
			g.Blocks = append(g.Blocks, nil)
			continue
		}
		b := g.NewBlock()
		if bf.CFAHasVisited != nil {
			b.CFAHasVisited = *bf.CFAHasVisited
		}
		for ni, nf := range bf.Nodes {
			op, ok := ParseNodeType(nf.Op)
			if !ok {
				return nil, fmt.Errorf("block %d node %d: unknown node type %q", bi, ni, nf.Op)
			}
			n := g.Append(b, op)
			nodes = append(nodes, n)
			if len(nf.Children) > 0 {
				todo = append(todo, pending{n, nf.Children})
			}
		}
	}
	for _, p := range todo {
		p.node.Children = make([]Edge, len(p.edges))
		for i, ef := range p.edges {
			if ef.Node == nil {
				continue // empty edge
			}
			if *ef.Node < 0 || *ef.Node >= len(nodes) {
				return nil, fmt.Errorf("node @%d: child %d references missing node %d", p.node.Index, i, *ef.Node)
			}
			kind := UntypedUse
			if ef.UseKind != "" {
				var ok bool
				if kind, ok = ParseUseKind(ef.UseKind); !ok {
					return nil, fmt.Errorf("node @%d: unknown use kind %q", p.node.Index, ef.UseKind)
				}
			}
			p.node.Children[i] = Use(nodes[*ef.Node], kind)
		}
	}
	return g, nil
}

// LoadGraphFile reads a graph from disk; files ending in .xz are decompressed.
func LoadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		r = xr
	}
	g, err := LoadGraph(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
