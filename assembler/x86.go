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

// Reg is an x86-64 general purpose register number.
type Reg uint8

const (
	RAX Reg = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

func (b *Buffer) EmitRet() {
	b.EmitByte(0xC3)
}

func (b *Buffer) EmitNop() {
	b.EmitByte(0x90)
}

// EmitInt3 emits a breakpoint, used to pad after terminals.
func (b *Buffer) EmitInt3() {
	b.EmitByte(0xCC)
}

// EmitJmpRel32 emits jmp rel32 to label.
func (b *Buffer) EmitJmpRel32(target Label) {
	b.EmitByte(0xE9)
	b.AddFixup(target, 4, true)
}

// EmitJmpRel8 emits a short jmp to label.
func (b *Buffer) EmitJmpRel8(target Label) {
	b.EmitByte(0xEB)
	b.AddFixup(target, 1, true)
}

// EmitMovImm64 emits movabs reg, imm64.
func (b *Buffer) EmitMovImm64(reg Reg, v uint64) {
	rex := byte(0x48) // REX.W
	if reg >= R8 {
		rex |= 0x01 // REX.B
	}
	b.EmitBytes(rex, 0xB8+byte(reg&7))
	b.EmitU64(v)
}
