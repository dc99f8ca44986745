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
package ftl

import (
	"strings"

	"github.com/launix-de/b3jit/datalog"
	"github.com/launix-de/b3jit/dfg"
	"github.com/launix-de/b3jit/options"
)

// Options gates the analysis.
type Options struct {
	MaximumCandidateBytecodeCost uint
	VerboseFTLFailure            bool
	VerboseCompilation           bool
	// Visit, if set, sees every scanned node together with the running
	// verdict after that node.
	Visit func(n *dfg.Node, running CapabilityLevel)
}

// CurrentOptions reads the analyzer settings from the published options.
func CurrentOptions() Options {
	o := options.Current()
	return Options{
		MaximumCandidateBytecodeCost: o.MaximumFTLCandidateBytecodeCost,
		VerboseFTLFailure:            o.VerboseFTLFailure,
		VerboseCompilation:           o.VerboseCompilation,
	}
}

func (o Options) verbose() bool {
	return o.VerboseCompilation || o.VerboseFTLFailure
}

// Report is the outcome of one analysis.
type Report struct {
	Level         CapabilityLevel
	BlocksVisited int
	NodesVisited  int
	// Rejected is the node that decided a CannotCompile verdict, nil if the
	// eligibility gate already refused the graph.
	Rejected *dfg.Node
	// BadUse is set when Rejected was refused for one of its edges.
	BadUse dfg.Edge
	Reason string
}

// CanCompileGraph decides the top tier verdict for g with the current options.
func CanCompileGraph(g *dfg.Graph) CapabilityLevel {
	return Analyze(g, CurrentOptions()).Level
}

// Analyze scans g and reports its verdict. The graph is only read.
func Analyze(g *dfg.Graph, opts Options) (r Report) {
	cb := g.CodeBlock
	if cb == nil {
		datalog.If(opts.verbose(), "FTL rejecting graph without a code block.")
		r.Reason = "no code block"
		return
	}
	if cb.BytecodeCost > opts.MaximumCandidateBytecodeCost {
		datalog.If(opts.verbose(), "FTL rejecting %v because it's too big.", cb)
		r.Reason = "too big"
		return
	}
	if cb.NeverFTLOptimize {
		datalog.If(opts.verbose(), "FTL rejecting %v because it is marked as never FTL compile.", cb)
		r.Reason = "never FTL optimize"
		return
	}

	r.Level = CanCompileAndOSREnter
	for bi := g.NumBlocks() - 1; bi >= 0; bi-- {
		block := g.Block(bi)
		if block == nil || !block.CFAHasVisited {
			continue
		}
		r.BlocksVisited++
		for ni := 0; ni < block.Size(); ni++ {
			node := block.At(ni)
			r.NodesVisited++

			for ci := g.NumChildren(node) - 1; ci >= 0; ci-- {
				edge := g.Child(node, ci)
				if !edge.IsSet() || UseKindSupported(edge.UseKind) {
					continue
				}
				if opts.verbose() {
					datalog.Log().Info("FTL rejecting node in %v because of bad use kind: %v in node:\n%s",
						cb, edge.UseKind, dumpNode(g, node))
				}
				r.Level = CannotCompile
				r.Rejected = node
				r.BadUse = edge
				r.Reason = "bad use kind " + edge.UseKind.String()
				r.visit(opts, node)
				return
			}

			switch NodeLevel(node.Op) {
			case CannotCompile:
				if opts.verbose() {
					datalog.Log().Info("FTL rejecting node in %v:\n%s", cb, dumpNode(g, node))
				}
				r.Level = CannotCompile
				r.Rejected = node
				r.Reason = "unsupported node " + node.Op.String()
				r.visit(opts, node)
				return
			case CanCompile:
				if r.Level == CanCompileAndOSREnter && opts.VerboseCompilation {
					datalog.Log().Info("FTL disabling OSR entry because of node:\n%s", dumpNode(g, node))
				}
				r.Level = r.Level.Meet(CanCompile)
			case CanCompileAndOSREnter:
			}
			r.visit(opts, node)

			if node.Op == dfg.ForceOSRExit {
				break // the rest of the block never runs in optimized code
			}
		}
	}
	return
}

func (r *Report) visit(opts Options, n *dfg.Node) {
	if opts.Visit != nil {
		opts.Visit(n, r.Level)
	}
}

func dumpNode(g *dfg.Graph, n *dfg.Node) string {
	var b strings.Builder
	g.Dump(&b, "    ", n)
	return strings.TrimSuffix(b.String(), "\n")
}
