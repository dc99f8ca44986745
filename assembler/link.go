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
package assembler

import (
	"fmt"
	"sync"
	"unsafe"
)

// CodeRef is a finished code region. The zero value is an empty region.
type CodeRef struct {
	addr       uintptr
	code       []byte
	executable bool
	release    func() error
}

// NewCodeRef wraps code that lives at addr, for regions produced outside
// this package. The slice is not copied.
func NewCodeRef(addr uintptr, code []byte) CodeRef {
	return CodeRef{addr: addr, code: code}
}

func (c CodeRef) Address() uintptr {
	return c.addr
}

func (c CodeRef) Size() int {
	return len(c.code)
}

// Bytes returns the code as it is mapped. Do not retain it past Release.
func (c CodeRef) Bytes() []byte {
	return c.code
}

// Executable reports whether the region is mapped read+execute.
func (c CodeRef) Executable() bool {
	return c.executable
}

func (c CodeRef) String() string {
	return fmt.Sprintf("%#x-%#x", c.addr, c.addr+uintptr(len(c.code)))
}

// Release unmaps a region returned by Finalize.
func (c CodeRef) Release() error {
	if c.release == nil {
		return nil
	}
	return c.release()
}

// Observer is told about every region linked by Finalize, for example to
// publish it to profilers or debuggers.
type Observer interface {
	CodeLinked(name string, code CodeRef)
}

var observersMu sync.RWMutex
var observers []Observer

func AddObserver(o Observer) {
	observersMu.Lock()
	observers = append(observers, o)
	observersMu.Unlock()
}

func RemoveObserver(o Observer) {
	observersMu.Lock()
	defer observersMu.Unlock()
	for i, x := range observers {
		if x == o {
			observers = append(observers[:i:i], observers[i+1:]...)
			return
		}
	}
}

// LinkBuffer copies a Buffer into executable memory.
type LinkBuffer struct {
	buf *Buffer
}

func NewLinkBuffer(buf *Buffer) *LinkBuffer {
	return &LinkBuffer{buf: buf}
}

// Finalize resolves fixups, maps the code read+execute and notifies observers.
func (l *LinkBuffer) Finalize(name string) (CodeRef, error) {
	l.buf.ResolveFixups()
	src := l.buf.Bytes()
	if len(src) == 0 {
		return CodeRef{}, fmt.Errorf("link %s: empty code buffer", name)
	}
	mem, err := allocExec(len(src))
	if err != nil {
		return CodeRef{}, fmt.Errorf("link %s: %w", name, err)
	}
	copy(mem, src)
	if err := makeRX(mem); err != nil {
		freeExec(mem)
		return CodeRef{}, fmt.Errorf("link %s: %w", name, err)
	}
	code := CodeRef{
		addr:       uintptr(unsafe.Pointer(&mem[0])),
		code:       mem[:len(src):len(src)],
		executable: true,
		release:    func() error { return freeExec(mem) },
	}
	observersMu.RLock()
	obs := observers
	observersMu.RUnlock()
	for _, o := range obs {
		o.CodeLinked(name, code)
	}
	return code, nil
}
