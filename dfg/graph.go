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

import "fmt"

// CodeBlock describes the compilation unit a graph was built from.
type CodeBlock struct {
	Name             string `json:"name"`
	Hash             string `json:"hash,omitempty"`
	BytecodeCost     uint   `json:"bytecodeCost"`
	NeverFTLOptimize bool   `json:"neverFTLOptimize"`
}

func (cb *CodeBlock) String() string {
	if cb == nil {
		return "<no code block>"
	}
	if cb.Hash == "" {
		return fmt.Sprintf("%s:[cost %d]", cb.Name, cb.BytecodeCost)
	}
	return fmt.Sprintf("%s#%s:[cost %d]", cb.Name, cb.Hash, cb.BytecodeCost)
}

// Edge is a data-flow input of a node. The zero Edge is empty and is skipped
// by every consumer.
type Edge struct {
	Node    *Node
	UseKind UseKind
}

// Use builds an edge consuming n with the given use kind.
func Use(n *Node, kind UseKind) Edge {
	return Edge{Node: n, UseKind: kind}
}

// IsSet reports whether the edge points at a node.
func (e Edge) IsSet() bool {
	return e.Node != nil
}

// Node is one operation inside a basic block.
type Node struct {
	Index    int // graph-wide, assigned at creation
	Op       NodeType
	Children []Edge
	Owner    *BasicBlock
}

// BasicBlock is a straight-line sequence of nodes.
type BasicBlock struct {
	Index int
	Nodes []*Node
	// CFAHasVisited is set by control flow analysis. Blocks it has not
	// reached are unreachable or not yet analyzed.
	CFAHasVisited bool
}

func (b *BasicBlock) Size() int {
	return len(b.Nodes)
}

func (b *BasicBlock) At(i int) *Node {
	return b.Nodes[i]
}

// Graph is a function body: an indexed set of blocks where removed blocks
// leave nil slots so indices stay stable.
type Graph struct {
	CodeBlock *CodeBlock
	Blocks    []*BasicBlock
	numNodes  int
}

func NewGraph(cb *CodeBlock) *Graph {
	return &Graph{CodeBlock: cb}
}

// NewBlock appends a block. New blocks are marked as visited by CFA since
// callers building graphs by hand almost always want them analyzed.
func (g *Graph) NewBlock() *BasicBlock {
	b := &BasicBlock{Index: len(g.Blocks), CFAHasVisited: true}
	g.Blocks = append(g.Blocks, b)
	return b
}

// KillBlock removes the block at index i, leaving a nil slot.
func (g *Graph) KillBlock(i int) {
	g.Blocks[i] = nil
}

func (g *Graph) NumBlocks() int {
	return len(g.Blocks)
}

// Block returns the block at index i or nil if it was removed.
func (g *Graph) Block(i int) *BasicBlock {
	return g.Blocks[i]
}

// NumNodes returns how many nodes were ever created in g.
func (g *Graph) NumNodes() int {
	return g.numNodes
}

// Append creates a node at the end of block b.
func (g *Graph) Append(b *BasicBlock, op NodeType, children ...Edge) *Node {
	n := &Node{Index: g.numNodes, Op: op, Children: children, Owner: b}
	g.numNodes++
	b.Nodes = append(b.Nodes, n)
	return n
}

func (g *Graph) NumChildren(n *Node) int {
	return len(n.Children)
}

func (g *Graph) Child(n *Node, i int) Edge {
	return n.Children[i]
}
