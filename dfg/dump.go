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
	"fmt"
	"io"
	"strings"
)

// Dump writes one line describing n, e.g. "    @7:ArithAdd(@3:Int32Use, @5:Int32Use)".
func (g *Graph) Dump(w io.Writer, prefix string, n *Node) {
	fmt.Fprintf(w, "%s%s\n", prefix, g.NodeString(n))
}

// NodeString renders n without a trailing newline.
func (g *Graph) NodeString(n *Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%d:%s(", n.Index, n.Op)
	first := true
	for _, e := range n.Children {
		if !e.IsSet() {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "@%d:%s", e.Node.Index, e.UseKind)
	}
	b.WriteString(")")
	return b.String()
}

// DumpAll writes every block of the graph, including removed and unvisited ones.
func (g *Graph) DumpAll(w io.Writer) {
	fmt.Fprintf(w, "Graph for %s\n", g.CodeBlock)
	for i, b := range g.Blocks {
		if b == nil {
			fmt.Fprintf(w, "Block #%d: <removed>\n", i)
			continue
		}
		visited := ""
		if !b.CFAHasVisited {
			visited = " (not visited by CFA)"
		}
		fmt.Fprintf(w, "Block #%d%s:\n", i, visited)
		for _, n := range b.Nodes {
			g.Dump(w, "    ", n)
		}
	}
}
