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
package perflog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/launix-de/b3jit/assembler"
	"github.com/launix-de/b3jit/options"
	"github.com/launix-de/b3jit/profiler"
	"github.com/stretchr/testify/require"
)

func pattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func readBack(t *testing.T, l *PerfLog) *Dump {
	t.Helper()
	f, err := os.Open(l.Path())
	require.NoError(t, err)
	defer f.Close()
	d, err := ReadDump(f)
	require.NoError(t, err)
	return d
}

func TestRoundTrip(t *testing.T) {
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("jit-%d.dump", os.Getpid()), filepath.Base(l.Path()))

	l.Log("fn1", assembler.NewCodeRef(0x1000, pattern(64, 1)))
	l.Log("fn2", assembler.NewCodeRef(0x2000, pattern(32, 7)))
	require.NoError(t, l.Close())

	d := readBack(t, l)
	machine, _ := ElfMachine(runtime.GOARCH)
	require.Equal(t, Magic, d.Header.Magic)
	require.Equal(t, Version, d.Header.Version)
	require.Equal(t, uint32(FileHeaderSize), d.Header.TotalSize)
	require.Equal(t, machine, d.Header.ElfMachine)
	require.Equal(t, uint32(os.Getpid()), d.Header.Pid)
	require.NotZero(t, d.Header.Timestamp)
	require.True(t, d.Closed)

	require.Len(t, d.Loads, 2)
	for i, want := range []struct {
		name string
		addr uint64
		code []byte
	}{
		{"fn1", 0x1000, pattern(64, 1)},
		{"fn2", 0x2000, pattern(32, 7)},
	} {
		got := d.Loads[i]
		require.Equal(t, uint64(i), got.CodeIndex)
		require.Equal(t, want.name, got.Name)
		require.Equal(t, want.addr, got.VMA)
		require.Equal(t, want.addr, got.CodeAddress)
		require.Equal(t, uint64(len(want.code)), got.CodeSize)
		require.Equal(t, want.code, got.Code)
		require.Equal(t, RecordSize(want.name, len(want.code)), got.Header.TotalSize)
		require.Equal(t, uint32(CodeLoadRecordSize+len(want.name)+1+len(want.code)), got.Header.TotalSize)
		require.Equal(t, uint32(os.Getpid()), got.Pid)
		require.NotZero(t, got.Tid)
	}
	require.LessOrEqual(t, d.Loads[0].Header.Timestamp, d.Loads[1].Header.Timestamp)
}

func TestFileLayout(t *testing.T) {
	l, err := Open(t.TempDir(), false)
	require.NoError(t, err)
	l.Log("f", assembler.NewCodeRef(0x10, []byte{0xC3}))
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	require.Len(t, raw, FileHeaderSize+CodeLoadRecordSize+2+1+RecordHeaderSize)
	rec := raw[FileHeaderSize:]
	require.Equal(t, uint32(JITCodeLoad), binary.NativeEndian.Uint32(rec[0:]))
	require.Equal(t, uint32(CodeLoadRecordSize+3), binary.NativeEndian.Uint32(rec[4:]))
	require.Equal(t, []byte{'f', 0, 0xC3}, rec[CodeLoadRecordSize:CodeLoadRecordSize+3])
	tail := rec[CodeLoadRecordSize+3:]
	require.Equal(t, uint32(JITCodeClose), binary.NativeEndian.Uint32(tail[0:]))
	require.Equal(t, uint32(RecordHeaderSize), binary.NativeEndian.Uint32(tail[4:]))
}

func TestZeroSizeDropped(t *testing.T) {
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	l.Log("empty", assembler.NewCodeRef(0x3000, nil))
	l.Log("real", assembler.NewCodeRef(0x4000, pattern(4, 0)))
	l.Flush()
	require.Equal(t, uint64(1), l.Records())
	require.Zero(t, l.Dropped())
	require.NoError(t, l.Close())

	d := readBack(t, l)
	require.Len(t, d.Loads, 1)
	require.Equal(t, "real", d.Loads[0].Name)
	require.Zero(t, d.Loads[0].CodeIndex)
}

func TestSubmissionOrderAcrossThreads(t *testing.T) {
	l, err := Open(t.TempDir(), false)
	require.NoError(t, err)

	const n = 50
	barrier := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			l.Log(fmt.Sprintf("a%d", i), assembler.NewCodeRef(uintptr(0x1000+i), pattern(8, 0)))
		}
		close(barrier)
	}()
	go func() {
		defer wg.Done()
		<-barrier
		for i := 0; i < n; i++ {
			l.Log(fmt.Sprintf("b%d", i), assembler.NewCodeRef(uintptr(0x8000+i), pattern(8, 0)))
		}
	}()
	wg.Wait()
	require.NoError(t, l.Close())

	d := readBack(t, l)
	require.Len(t, d.Loads, 2*n)
	for i, load := range d.Loads {
		require.Equal(t, uint64(i), load.CodeIndex)
		want := fmt.Sprintf("a%d", i)
		if i >= n {
			want = fmt.Sprintf("b%d", i-n)
		}
		require.Equal(t, want, load.Name)
	}
}

func TestCompilerThreadID(t *testing.T) {
	l, err := Open(t.TempDir(), false)
	require.NoError(t, err)
	profiler.WithThreadID(77, func() {
		l.Log("tagged", assembler.NewCodeRef(0x10, pattern(2, 0)))
	})
	require.NoError(t, l.Close())
	require.Equal(t, uint32(77), readBack(t, l).Loads[0].Tid)
}

func TestLogAfterClose(t *testing.T) {
	l, err := Open(t.TempDir(), false)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	l.Log("late", assembler.NewCodeRef(0x10, pattern(2, 0)))
	require.Equal(t, uint64(1), l.Dropped())
	require.NoError(t, l.Close())
}

func TestOpenFailure(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir"), false)
	require.Error(t, err)
}

func TestObserverIntegration(t *testing.T) {
	l, err := Open(t.TempDir(), false)
	require.NoError(t, err)
	assembler.AddObserver(l)
	defer assembler.RemoveObserver(l)

	b := assembler.NewBuffer()
	b.EmitMovImm64(assembler.RAX, 7)
	b.EmitRet()
	code, err := assembler.NewLinkBuffer(b).Finalize("seven")
	if err != nil {
		l.Close()
		t.Skipf("no executable memory: %v", err)
	}
	defer code.Release()
	require.NoError(t, l.Close())

	d := readBack(t, l)
	require.Len(t, d.Loads, 1)
	require.Equal(t, "seven", d.Loads[0].Name)
	require.Equal(t, uint64(code.Address()), d.Loads[0].CodeAddress)
	require.Equal(t, code.Bytes(), d.Loads[0].Code)
}

func TestSingleton(t *testing.T) {
	t.Cleanup(options.Reset)
	dir := t.TempDir()
	require.NoError(t, options.Set("JITDumpDirectory", dir))
	l := Singleton()
	// opened once per process, later option changes do not move it
	require.NoError(t, options.Set("JITDumpDirectory", t.TempDir()))
	require.Same(t, l, Singleton())
	require.Equal(t, l.Path(), Singleton().Path())
	require.Equal(t, fmt.Sprintf("jit-%d.dump", os.Getpid()), filepath.Base(l.Path()))
	require.NoError(t, l.Close())
}

func encode(order binary.AppendByteOrder, records ...[]byte) []byte {
	h := NewFileHeader(1, 2)
	out := h.AppendTo(nil, order)
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

func TestReadDumpBigEndian(t *testing.T) {
	rec := CodeLoadRecord{
		Header:   RecordHeader{Type: JITCodeLoad, TotalSize: RecordSize("be", 2)},
		CodeSize: 2, VMA: 0x99, CodeAddress: 0x99, CodeIndex: 5,
	}
	load := append(rec.AppendTo(nil, binary.BigEndian), 'b', 'e', 0, 0xAA, 0xBB)
	debug := RecordHeader{Type: JITCodeDebugInfo, TotalSize: RecordHeaderSize + 8}
	skipped := append(debug.AppendTo(nil, binary.BigEndian), make([]byte, 8)...)

	d, err := ReadDump(bytes.NewReader(encode(binary.BigEndian, skipped, load)))
	require.NoError(t, err)
	require.Equal(t, binary.ByteOrder(binary.BigEndian), d.Order)
	require.Equal(t, 1, d.Skipped)
	require.False(t, d.Closed)
	require.Len(t, d.Loads, 1)
	require.Equal(t, "be", d.Loads[0].Name)
	require.Equal(t, uint64(5), d.Loads[0].CodeIndex)
	require.Equal(t, []byte{0xAA, 0xBB}, d.Loads[0].Code)
}

func TestReadDumpErrors(t *testing.T) {
	rec := CodeLoadRecord{Header: RecordHeader{Type: JITCodeLoad, TotalSize: RecordSize("x", 4)}, CodeSize: 4}
	good := append(rec.AppendTo(nil, binary.LittleEndian), 'x', 0, 1, 2, 3, 4)
	full := encode(binary.LittleEndian, good)
	_, err := ReadDump(bytes.NewReader(full))
	require.NoError(t, err)

	lying := append([]byte(nil), good...)
	binary.LittleEndian.PutUint64(lying[RecordHeaderSize+24:], 9) // code size
	unterminated := append(rec.AppendTo(nil, binary.LittleEndian), 'x', 'y', 1, 2, 3, 4)
	badMagic := append([]byte(nil), full...)
	badMagic[0] = 0

	for name, data := range map[string][]byte{
		"empty":            nil,
		"short header":     full[:20],
		"truncated record": full[:len(full)-3],
		"partial header":   full[:FileHeaderSize+5],
		"bad magic":        badMagic,
		"size mismatch":    encode(binary.LittleEndian, lying),
		"unterminated":     encode(binary.LittleEndian, unterminated),
	} {
		_, err := ReadDump(bytes.NewReader(data))
		require.Error(t, err, name)
	}
}

func TestReadDumpHugeDeclaredSize(t *testing.T) {
	for _, kind := range []RecordType{JITCodeLoad, JITCodeDebugInfo} {
		h := RecordHeader{Type: kind, TotalSize: 1 << 30}
		data := encode(binary.LittleEndian, append(h.AppendTo(nil, binary.LittleEndian), make([]byte, 64)...))

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		_, err := ReadDump(bytes.NewReader(data))
		runtime.ReadMemStats(&after)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF, kind.String())
		require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), kind.String())
	}
}
