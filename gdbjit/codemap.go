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
package gdbjit

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/btree"
	"github.com/launix-de/b3jit/assembler"
)

// Entry describes one registered code region.
type Entry struct {
	Start uintptr
	Size  uintptr
	Name  string
}

func (e Entry) End() uintptr {
	return e.Start + e.Size
}

func (e Entry) Contains(pc uintptr) bool {
	return pc >= e.Start && pc < e.End()
}

func entryLess(a, b Entry) bool {
	if a.Start == b.Start {
		return a.Size < b.Size
	}
	return a.Start < b.Start
}

// CodeMap indexes linked code by address so debuggers and crash handlers
// can symbolize a pc.
type CodeMap struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[Entry]
}

func NewCodeMap() *CodeMap {
	return &CodeMap{tree: btree.NewG[Entry](16, entryLess)}
}

var singleton *CodeMap
var singletonOnce sync.Once

// Singleton returns the process wide map.
func Singleton() *CodeMap {
	singletonOnce.Do(func() {
		singleton = NewCodeMap()
	})
	return singleton
}

// Register adds a region. Registering the same range again renames it.
func (m *CodeMap) Register(name string, code assembler.CodeRef) {
	if code.Size() == 0 {
		return
	}
	m.mu.Lock()
	m.tree.ReplaceOrInsert(Entry{Start: code.Address(), Size: uintptr(code.Size()), Name: name})
	m.mu.Unlock()
}

// CodeLinked makes a CodeMap usable as an assembler.Observer.
func (m *CodeMap) CodeLinked(name string, code assembler.CodeRef) {
	m.Register(name, code)
}

// Unregister removes the region of code, reporting whether it was present.
func (m *CodeMap) Unregister(code assembler.CodeRef) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tree.Delete(Entry{Start: code.Address(), Size: uintptr(code.Size())})
	return ok
}

// Lookup finds the region containing pc. Regions never overlap, so only the
// closest region starting at or below pc is a candidate.
func (m *CodeMap) Lookup(pc uintptr) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var found Entry
	ok := false
	m.tree.DescendLessOrEqual(Entry{Start: pc, Size: ^uintptr(0)}, func(e Entry) bool {
		found, ok = e, e.Contains(pc)
		return false
	})
	return found, ok
}

func (m *CodeMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Len()
}

// Entries lists all regions in address order.
func (m *CodeMap) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, m.tree.Len())
	m.tree.Ascend(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// WritePerfMap writes the map in the /tmp/perf-<pid>.map text format:
// one "start size name" line per region, numbers in hex.
func (m *CodeMap) WritePerfMap(w io.Writer) error {
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(w, "%x %x %s\n", e.Start, e.Size, e.Name); err != nil {
			return err
		}
	}
	return nil
}
