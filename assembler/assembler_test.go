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
	"bytes"
	"testing"
)

func assertBytes(t *testing.T, got, want []byte) {
	t.Helper()
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	fn()
}

func TestForwardJump(t *testing.T) {
	b := NewBuffer()
	done := b.ReserveLabel()
	b.EmitJmpRel32(done)
	b.EmitNop()
	b.EmitNop()
	b.MarkLabel(done)
	b.EmitRet()
	b.ResolveFixups()
	// target 7, field ends at 5
	assertBytes(t, b.Bytes(), []byte{0xE9, 0x02, 0x00, 0x00, 0x00, 0x90, 0x90, 0xC3})
}

func TestBackwardShortJump(t *testing.T) {
	b := NewBuffer()
	loop := b.DefineLabel()
	b.EmitNop()
	b.EmitJmpRel8(loop)
	b.ResolveFixups()
	assertBytes(t, b.Bytes(), []byte{0x90, 0xEB, 0xFD})
}

func TestAbsoluteFixup(t *testing.T) {
	b := NewBuffer()
	target := b.ReserveLabel()
	b.AddFixup(target, 4, false)
	b.EmitNop()
	b.MarkLabel(target)
	b.ResolveFixups()
	assertBytes(t, b.Bytes(), []byte{0x05, 0, 0, 0, 0x90})
	if b.LabelOffset(target) != 5 {
		t.Errorf("label at %d", b.LabelOffset(target))
	}
}

func TestFixupErrors(t *testing.T) {
	assertPanics(t, func() {
		b := NewBuffer()
		b.EmitJmpRel32(b.ReserveLabel())
		b.ResolveFixups()
	})
	assertPanics(t, func() {
		b := NewBuffer()
		far := b.ReserveLabel()
		b.EmitJmpRel8(far)
		for i := 0; i < 200; i++ {
			b.EmitNop()
		}
		b.MarkLabel(far)
		b.ResolveFixups()
	})
	assertPanics(t, func() { NewBuffer().AddFixup(0, 2, true) })
}

func TestMovImm64(t *testing.T) {
	b := NewBuffer()
	b.EmitMovImm64(RAX, 0x1122334455667788)
	b.EmitMovImm64(R9, 1)
	assertBytes(t, b.Bytes(), []byte{
		0x48, 0xB8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
		0x49, 0xB9, 1, 0, 0, 0, 0, 0, 0, 0,
	})
}

type recorder struct {
	names []string
	codes []CodeRef
}

func (r *recorder) CodeLinked(name string, code CodeRef) {
	r.names = append(r.names, name)
	r.codes = append(r.codes, code)
}

func TestFinalize(t *testing.T) {
	rec := &recorder{}
	AddObserver(rec)
	defer RemoveObserver(rec)

	b := NewBuffer()
	b.EmitMovImm64(RAX, 42)
	b.EmitRet()
	want := append([]byte(nil), b.Bytes()...)
	code, err := NewLinkBuffer(b).Finalize("answer")
	if err != nil {
		t.Skipf("no executable memory here: %v", err)
	}
	defer code.Release()

	if !code.Executable() || code.Address() == 0 || code.Size() != len(want) {
		t.Fatalf("bad code ref %v size %d", code, code.Size())
	}
	assertBytes(t, code.Bytes(), want)
	if len(rec.names) != 1 || rec.names[0] != "answer" || rec.codes[0].Address() != code.Address() {
		t.Errorf("observer saw %v", rec.names)
	}
}

func TestFinalizeEmpty(t *testing.T) {
	if _, err := NewLinkBuffer(NewBuffer()).Finalize("empty"); err == nil {
		t.Errorf("empty buffer linked")
	}
}

func TestNewCodeRef(t *testing.T) {
	c := NewCodeRef(0x1000, make([]byte, 64))
	if c.Address() != 0x1000 || c.Size() != 64 || c.Executable() {
		t.Errorf("unexpected %v", c)
	}
	if c.String() != "0x1000-0x1040" {
		t.Errorf("got %s", c.String())
	}
	if c.Release() != nil {
		t.Errorf("release of foreign code failed")
	}
}
