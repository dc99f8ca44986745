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
package worklist

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/launix-de/b3jit/assembler"
	"github.com/launix-de/b3jit/datalog"
	"github.com/launix-de/b3jit/dfg"
	"github.com/launix-de/b3jit/ftl"
	"github.com/launix-de/b3jit/options"
	"github.com/launix-de/b3jit/profiler"
)

// Tier is where a plan ends up being compiled.
type Tier uint8

const (
	TierBaseline Tier = iota // fall back to a lower tier
	TierFTL
	TierFTLWithOSREntry
	numTiers
)

func (t Tier) String() string {
	switch t {
	case TierBaseline:
		return "Baseline"
	case TierFTL:
		return "FTL"
	case TierFTLWithOSREntry:
		return "FTLWithOSREntry"
	}
	panic(fmt.Sprintf("worklist: unreachable tier %d", uint8(t)))
}

// SelectTier turns a capability verdict into a tier decision.
func SelectTier(level ftl.CapabilityLevel) Tier {
	switch level {
	case ftl.CannotCompile:
		return TierBaseline
	case ftl.CanCompile:
		return TierFTL
	case ftl.CanCompileAndOSREnter:
		return TierFTLWithOSREntry
	}
	panic("worklist: unreachable capability level")
}

// Generator emits code for a plan that got a top tier verdict.
type Generator func(p *Plan) (assembler.CodeRef, error)

var ErrClosed = errors.New("worklist: closed")

// Plan is one compilation request. Its result fields are valid after Wait.
type Plan struct {
	ID    uuid.UUID
	Graph *dfg.Graph

	Report ftl.Report
	Tier   Tier
	Code   assembler.CodeRef
	Err    error

	done chan struct{}
}

// Name is the symbol the plan's code is published under.
func (p *Plan) Name() string {
	return p.Graph.CodeBlock.String()
}

// Wait blocks until the plan has been processed.
func (p *Plan) Wait() *Plan {
	<-p.done
	return p
}

// Worklist compiles plans on a fixed set of OS-locked threads.
type Worklist struct {
	generator Generator
	plans     chan *Plan
	linkSlots chan struct{}
	wg        sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
	counts    [numTiers]atomic.Uint64
}

// New starts threads compiler threads. A nil generator only analyzes.
func New(threads int, generator Generator) *Worklist {
	if threads < 1 {
		threads = 1
	}
	w := &Worklist{
		generator: generator,
		plans:     make(chan *Plan, 4*threads),
		linkSlots: make(chan struct{}, linkSlotCount(threads)),
	}
	// prefill with tokens
	for i := 0; i < cap(w.linkSlots); i++ {
		w.linkSlots <- struct{}{}
	}
	w.wg.Add(threads)
	for i := 0; i < threads; i++ {
		go w.thread()
	}
	return w
}

// linkSlotCount bounds how many threads map executable memory at once.
func linkSlotCount(threads int) int {
	n := threads / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Enqueue submits g and returns its plan. After Close the plan completes
// immediately with ErrClosed.
func (w *Worklist) Enqueue(g *dfg.Graph) *Plan {
	p := &Plan{ID: uuid.New(), Graph: g, done: make(chan struct{})}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		p.Err = ErrClosed
		close(p.done)
		return p
	}
	w.plans <- p
	return p
}

// Close lets the threads finish queued plans and waits for them.
func (w *Worklist) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.plans)
	w.mu.Unlock()
	w.wg.Wait()
}

// Count returns how many plans were compiled at tier t.
func (w *Worklist) Count(t Tier) uint64 {
	return w.counts[t].Load()
}

func (w *Worklist) thread() {
	defer w.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	tid := profiler.CurrentThreadID()
	profiler.WithThreadID(tid, func() {
		for p := range w.plans {
			w.compile(p, tid)
		}
	})
}

func (w *Worklist) compile(p *Plan, tid uint32) {
	defer close(p.done)
	defer func() {
		if r := recover(); r != nil {
			p.Err = fmt.Errorf("worklist: compiling %s: %v", p.Name(), r)
			p.Tier = TierBaseline
			w.counts[p.Tier].Add(1)
			datalog.Log().Error("%v", p.Err)
		}
	}()
	trace := datalog.Trace()
	trace.Event(p.Name(), "compile", "B", int(tid))
	defer trace.Event(p.Name(), "compile", "E", int(tid))

	opts := ftl.CurrentOptions()
	p.Report = ftl.Analyze(p.Graph, opts)
	p.Tier = SelectTier(p.Report.Level)
	datalog.If(opts.VerboseCompilation, "plan %s: %s -> %v (%d nodes in %d blocks)",
		p.ID, p.Name(), p.Tier, p.Report.NodesVisited, p.Report.BlocksVisited)

	if p.Tier != TierBaseline && w.generator != nil {
		p.Code, p.Err = w.link(p, trace, tid)
		if p.Err != nil {
			p.Tier = TierBaseline
		}
	}
	w.counts[p.Tier].Add(1)
}

func (w *Worklist) link(p *Plan, trace *datalog.Tracefile, tid uint32) (code assembler.CodeRef, err error) {
	<-w.linkSlots
	defer func() { w.linkSlots <- struct{}{} }()
	trace.Duration(p.Name(), "link", int(tid), func() {
		code, err = w.generator(p)
	})
	return
}

// NewFromOptions sizes a worklist by NumberOfFTLCompilerThreads.
func NewFromOptions(generator Generator) *Worklist {
	return New(options.Current().NumberOfFTLCompilerThreads, generator)
}
