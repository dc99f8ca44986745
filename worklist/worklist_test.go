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
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/launix-de/b3jit/assembler"
	"github.com/launix-de/b3jit/datalog"
	"github.com/launix-de/b3jit/dfg"
	"github.com/launix-de/b3jit/ftl"
	"github.com/stretchr/testify/require"
)

func graphWith(name string, ops ...dfg.NodeType) *dfg.Graph {
	g := dfg.NewGraph(&dfg.CodeBlock{Name: name, BytecodeCost: 10})
	b := g.NewBlock()
	for _, op := range ops {
		g.Append(b, op)
	}
	return g
}

func TestSelectTier(t *testing.T) {
	require.Equal(t, TierBaseline, SelectTier(ftl.CannotCompile))
	require.Equal(t, TierFTL, SelectTier(ftl.CanCompile))
	require.Equal(t, TierFTLWithOSREntry, SelectTier(ftl.CanCompileAndOSREnter))
	require.Panics(t, func() { SelectTier(ftl.CapabilityLevel(9)) })
	require.Equal(t, "FTLWithOSREntry", TierFTLWithOSREntry.String())
}

func TestAnalyzeOnly(t *testing.T) {
	w := New(4, nil)
	var plans []*Plan
	for i := 0; i < 30; i++ {
		switch i % 3 {
		case 0:
			plans = append(plans, w.Enqueue(graphWith("osr", dfg.GetLocal, dfg.Return)))
		case 1:
			plans = append(plans, w.Enqueue(graphWith("identity", dfg.GetLocal, dfg.Identity)))
		case 2:
			plans = append(plans, w.Enqueue(graphWith("profiled", dfg.ProfileType)))
		}
	}
	ids := make(map[uuid.UUID]bool)
	for i, p := range plans {
		p.Wait()
		require.NoError(t, p.Err)
		require.False(t, ids[p.ID], "duplicate plan id")
		ids[p.ID] = true
		require.Equal(t, []Tier{TierFTLWithOSREntry, TierFTL, TierBaseline}[i%3], p.Tier, p.Name())
	}
	w.Close()
	require.Equal(t, uint64(10), w.Count(TierBaseline))
	require.Equal(t, uint64(10), w.Count(TierFTL))
	require.Equal(t, uint64(10), w.Count(TierFTLWithOSREntry))
}

func TestGeneratorOnlyForTopTier(t *testing.T) {
	var calls atomic.Int32
	w := New(2, func(p *Plan) (assembler.CodeRef, error) {
		calls.Add(1)
		return assembler.NewCodeRef(0x1000, []byte{0xC3}), nil
	})
	defer w.Close()
	good := w.Enqueue(graphWith("good", dfg.GetLocal)).Wait()
	bad := w.Enqueue(graphWith("bad", dfg.ArithIMul)).Wait()
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, 1, good.Code.Size())
	require.Zero(t, bad.Code.Size())
}

func TestGeneratorFailureFallsBack(t *testing.T) {
	w := New(1, func(p *Plan) (assembler.CodeRef, error) {
		if p.Graph.CodeBlock.Name == "explode" {
			panic("backend bug")
		}
		return assembler.CodeRef{}, errors.New("out of registers")
	})
	defer w.Close()
	p := w.Enqueue(graphWith("fail", dfg.GetLocal)).Wait()
	require.EqualError(t, p.Err, "out of registers")
	require.Equal(t, TierBaseline, p.Tier)

	// a panicking backend must not leak the link slot or kill the thread
	for i := 0; i < 3; i++ {
		p = w.Enqueue(graphWith("explode", dfg.GetLocal)).Wait()
		require.Error(t, p.Err)
		require.Contains(t, p.Err.Error(), "backend bug")
		require.Equal(t, TierBaseline, p.Tier)
	}
	require.Equal(t, uint64(4), w.Count(TierBaseline))
}

func TestEnqueueAfterClose(t *testing.T) {
	w := New(1, nil)
	w.Close()
	w.Close()
	p := w.Enqueue(graphWith("late", dfg.GetLocal)).Wait()
	require.ErrorIs(t, p.Err, ErrClosed)
}

func TestStubGenerator(t *testing.T) {
	w := New(2, StubGenerator)
	defer w.Close()
	p := w.Enqueue(graphWith("stub", dfg.GetLocal, dfg.GetLocal, dfg.Return)).Wait()
	if p.Err != nil {
		t.Skipf("no executable memory: %v", p.Err)
	}
	defer p.Code.Release()
	require.True(t, p.Code.Executable())
	// movabs rax, 3
	require.Equal(t, []byte{0x48, 0xB8, 3, 0, 0, 0, 0, 0, 0, 0}, p.Code.Bytes()[:10])
	require.Equal(t, byte(0xC3), p.Code.Bytes()[p.Code.Size()-1])
}

func TestTraceEvents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, datalog.SetTrace(true, dir))
	w := New(1, nil)
	w.Enqueue(graphWith("traced", dfg.GetLocal)).Wait()
	w.Close()
	require.NoError(t, datalog.SetTrace(false, ""))

	files, _ := filepath.Glob(filepath.Join(dir, "trace_*.json"))
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), `"name":"traced:[cost 10]"`))
}
