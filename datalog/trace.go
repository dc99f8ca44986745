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
package datalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Tracefile writes events in the chrome trace format (chrome://tracing, perfetto).
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	m       sync.Mutex
}

type traceEvent struct {
	Name  string `json:"name"`
	Cat   string `json:"cat"`
	Ph    string `json:"ph"`
	Ts    int64  `json:"ts"`
	Pid   int    `json:"pid"`
	Tid   int    `json:"tid"`
	Scope string `json:"s"`
}

var trace atomic.Pointer[Tracefile]
var start = time.Now()

// Trace returns the active trace or nil. All methods accept a nil receiver.
func Trace() *Tracefile {
	return trace.Load()
}

// SetTrace closes the active trace and, if on, opens dir/trace_<unix>.json.
func SetTrace(on bool, dir string) error {
	if old := trace.Swap(nil); old != nil {
		old.Close()
	}
	if !on {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("trace_%d.json", time.Now().Unix())))
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	trace.Store(NewTrace(f))
	return nil
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	return &Tracefile{isFirst: true, file: file}
}

func (t *Tracefile) Close() {
	if t == nil {
		return
	}
	t.m.Lock()
	defer t.m.Unlock()
	t.file.Write([]byte("]"))
	t.file.Close()
}

// Duration wraps f into a begin/end pair.
func (t *Tracefile) Duration(name, cat string, tid int, f func()) {
	t.Event(name, cat, "B", tid)
	defer t.Event(name, cat, "E", tid)
	f()
}

// Event records a B (begin), E (end) or i (instant) event now.
func (t *Tracefile) Event(name, cat, ph string, tid int) {
	if t == nil {
		return
	}
	t.EventFull(name, cat, ph, time.Since(start).Microseconds(), tid, os.Getpid())
}

// EventFull records an event with an explicit timestamp in microseconds.
func (t *Tracefile) EventFull(name, cat, ph string, ts int64, tid, pid int) {
	if t == nil {
		return
	}
	b, _ := json.Marshal(traceEvent{name, cat, ph, ts, pid, tid, "g"})
	t.m.Lock()
	defer t.m.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write(b)
}
