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
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/docker/go-units"
	"github.com/launix-de/b3jit/assembler"
	"github.com/launix-de/b3jit/datalog"
	"github.com/launix-de/b3jit/options"
	"github.com/launix-de/b3jit/profiler"
)

// PerfLog appends code load records to a jitdump file that `perf inject
// --jit` merges into a profile. Records are encoded and written on a
// background queue in submission order.
type PerfLog struct {
	path    string
	pid     uint32
	verbose bool
	queue   *profiler.Queue

	// mu guards the fields below; only the queue worker and Close take it
	mu        sync.Mutex
	file      *os.File
	w         *bufio.Writer
	marker    []byte
	codeIndex uint64
	err       error
	closed    bool

	dropped atomic.Uint64
}

// Open creates dir/jit-<pid>.dump and writes the file header.
func Open(dir string, verbose bool) (*PerfLog, error) {
	if dir == "" {
		dir = "/tmp"
	}
	pid := uint32(os.Getpid())
	path := filepath.Join(dir, fmt.Sprintf("jit-%d.dump", pid))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("perflog: %w", err)
	}
	l := &PerfLog{
		path:    path,
		pid:     pid,
		verbose: verbose,
		file:    f,
		w:       bufio.NewWriter(f),
	}
	// perf only picks up the dump if it sees an executable mapping of it
	if l.marker, err = mapMarker(f); err != nil {
		datalog.Log().Warning("perflog: cannot map marker for %s: %v", path, err)
	}
	header := NewFileHeader(pid, profiler.GenerateTimestamp())
	l.w.Write(header.AppendTo(make([]byte, 0, FileHeaderSize), binary.NativeEndian))
	if err := l.w.Flush(); err != nil {
		unmapMarker(l.marker)
		f.Close()
		return nil, fmt.Errorf("perflog: write header: %w", err)
	}
	l.queue = profiler.NewQueue("perflog")
	return l, nil
}

var singleton *PerfLog
var singletonOnce sync.Once

// Singleton opens the process wide log in the configured directory on first
// use. A log that cannot be opened is an environment error and panics.
func Singleton() *PerfLog {
	singletonOnce.Do(func() {
		o := options.Current()
		l, err := Open(o.JITDumpDirectory, o.VerbosePerfLog)
		if err != nil {
			panic(err)
		}
		singleton = l
	})
	return singleton
}

func (l *PerfLog) Path() string {
	return l.path
}

// Log records code under name. The code bytes are captured before Log
// returns; encoding and I/O happen later on the log's queue.
func (l *PerfLog) Log(name string, code assembler.CodeRef) {
	timestamp := profiler.GenerateTimestamp()
	tid := profiler.CurrentThreadID()
	addr := uint64(code.Address())
	if code.Size() == 0 {
		datalog.If(l.verbose, "0 size record %s %#x", name, addr)
		return
	}
	bytes := append([]byte(nil), code.Bytes()...)
	if !l.queue.Dispatch(func() { l.write(name, addr, bytes, tid, timestamp) }) {
		l.dropped.Add(1)
		datalog.Log().Error("perflog: %s logged after close, record dropped", name)
	}
}

// CodeLinked makes a PerfLog usable as an assembler.Observer.
func (l *PerfLog) CodeLinked(name string, code assembler.CodeRef) {
	l.Log(name, code)
}

func (l *PerfLog) write(name string, addr uint64, code []byte, tid uint32, timestamp uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil || l.closed {
		l.dropped.Add(1)
		return
	}
	record := CodeLoadRecord{
		Header: RecordHeader{
			Type:      JITCodeLoad,
			TotalSize: RecordSize(name, len(code)),
			Timestamp: timestamp,
		},
		Pid:         l.pid,
		Tid:         tid,
		VMA:         addr,
		CodeAddress: addr,
		CodeSize:    uint64(len(code)),
		CodeIndex:   l.codeIndex,
	}
	l.codeIndex++
	l.w.Write(record.AppendTo(make([]byte, 0, CodeLoadRecordSize), binary.NativeEndian))
	l.w.WriteString(name)
	l.w.WriteByte(0)
	l.w.Write(code)
	if err := l.w.Flush(); err != nil {
		l.fail(err)
		return
	}
	datalog.If(l.verbose, "%s [%d] %#x-%#x %s", name, record.CodeIndex, addr, addr+record.CodeSize,
		units.BytesSize(float64(record.CodeSize)))
}

// fail puts the log into the failed state. Callers hold mu.
func (l *PerfLog) fail(err error) {
	l.err = fmt.Errorf("perflog: write %s: %w", l.path, err)
	l.dropped.Add(1)
	datalog.Log().Error("%v; further records are dropped", l.err)
}

// Flush waits until every record logged so far is on disk.
func (l *PerfLog) Flush() {
	l.queue.Drain()
}

// Err returns the write error that stopped the log, if any.
func (l *PerfLog) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Dropped counts records that were not written.
func (l *PerfLog) Dropped() uint64 {
	return l.dropped.Load()
}

// Records returns how many code load records were written.
func (l *PerfLog) Records() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.codeIndex
}

// Close drains the queue, appends a close record and releases the file.
func (l *PerfLog) Close() error {
	l.queue.Stop()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return l.err
	}
	l.closed = true
	if l.err == nil {
		h := RecordHeader{Type: JITCodeClose, TotalSize: RecordHeaderSize, Timestamp: profiler.GenerateTimestamp()}
		l.w.Write(h.AppendTo(make([]byte, 0, RecordHeaderSize), binary.NativeEndian))
		if err := l.w.Flush(); err != nil {
			l.fail(err)
		}
	}
	unmapMarker(l.marker)
	l.marker = nil
	if err := l.file.Close(); err != nil && l.err == nil {
		l.err = fmt.Errorf("perflog: close %s: %w", l.path, err)
	}
	return l.err
}
