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

import "encoding/binary"

// Label names a code position that may be placed after it is referenced.
type Label uint16

// fixup is a forward reference patched by ResolveFixups.
type fixup struct {
	pos      int   // offset of the patched field
	label    Label // target
	size     uint8 // 1=rel8, 4=rel32/abs32
	relative bool  // pc relative to the end of the field
}

// Buffer accumulates machine code for one function. Positions are offsets
// from the start of the buffer until the code is linked.
type Buffer struct {
	code   []byte
	labels []int
	fixups []fixup
}

func NewBuffer() *Buffer {
	return &Buffer{code: make([]byte, 0, 64)}
}

// Len returns the number of bytes emitted so far.
func (b *Buffer) Len() int {
	return len(b.code)
}

// Bytes exposes the emitted code. It is only valid until the next emit.
func (b *Buffer) Bytes() []byte {
	return b.code
}

func (b *Buffer) EmitByte(v byte) {
	b.code = append(b.code, v)
}

func (b *Buffer) EmitBytes(vs ...byte) {
	b.code = append(b.code, vs...)
}

// EmitU32 appends a little-endian uint32.
func (b *Buffer) EmitU32(v uint32) {
	b.code = binary.LittleEndian.AppendUint32(b.code, v)
}

// EmitU64 appends a little-endian uint64.
func (b *Buffer) EmitU64(v uint64) {
	b.code = binary.LittleEndian.AppendUint64(b.code, v)
}

// DefineLabel allocates a label at the current position.
func (b *Buffer) DefineLabel() Label {
	id := Label(len(b.labels))
	b.labels = append(b.labels, len(b.code))
	return id
}

// ReserveLabel allocates a label for later placement via MarkLabel.
func (b *Buffer) ReserveLabel() Label {
	id := Label(len(b.labels))
	b.labels = append(b.labels, -1) // undefined until MarkLabel
	return id
}

// MarkLabel places a previously reserved label at the current position.
func (b *Buffer) MarkLabel(id Label) {
	b.labels[id] = len(b.code)
}

// LabelOffset returns the position of a placed label or -1.
func (b *Buffer) LabelOffset(id Label) int {
	return b.labels[id]
}

// AddFixup records that the next size bytes refer to label and emits a
// zero placeholder for them.
func (b *Buffer) AddFixup(label Label, size uint8, relative bool) {
	if size != 1 && size != 4 {
		panic("assembler: fixup size must be 1 or 4")
	}
	b.fixups = append(b.fixups, fixup{pos: len(b.code), label: label, size: size, relative: relative})
	for i := uint8(0); i < size; i++ {
		b.code = append(b.code, 0)
	}
}

// ResolveFixups patches every recorded reference. Labels that were never
// placed are a code generator bug and panic.
func (b *Buffer) ResolveFixups() {
	for _, f := range b.fixups {
		target := b.labels[f.label]
		if target < 0 {
			panic("assembler: undefined label")
		}
		value := target
		if f.relative {
			value = target - (f.pos + int(f.size))
		}
		switch f.size {
		case 1:
			if value < -128 || value > 127 {
				panic("assembler: rel8 out of range")
			}
			b.code[f.pos] = byte(int8(value))
		case 4:
			binary.LittleEndian.PutUint32(b.code[f.pos:], uint32(int32(value)))
		}
	}
	b.fixups = b.fixups[:0]
}
