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
package b3

import "testing"

var allTypes = []Type{Int32, Int64, Float, Double, V128}

func TestOpcodeNamesExhaustive(t *testing.T) {
	seen := make(map[string]Opcode)
	for o := Opcode(0); o < numOpcodes; o++ {
		name := o.String()
		if name == "" {
			t.Fatalf("opcode %d has an empty name", o)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("opcodes %d and %d share name %q", prev, o, name)
		}
		seen[name] = o
		back, ok := ParseOpcode(name)
		if !ok || back != o {
			t.Errorf("ParseOpcode(%q) = %v, %v; want %d", name, back, ok, o)
		}
	}
	if len(seen) != NumOpcodes {
		t.Errorf("expected %d names, got %d", NumOpcodes, len(seen))
	}
}

func TestOpcodeStringPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an undefined opcode")
		}
	}()
	_ = numOpcodes.String()
}

func TestInvertedCompareInvolution(t *testing.T) {
	for _, typ := range allTypes {
		for o := Opcode(0); o < numOpcodes; o++ {
			inv, ok := InvertedCompare(o, typ)
			if !ok {
				continue
			}
			back, ok := InvertedCompare(inv, typ)
			if !ok || back != o {
				t.Errorf("%v inverted twice for %v gives %v, %v", o, typ, back, ok)
			}
		}
	}
}

func TestInvertedCompareDomain(t *testing.T) {
	signed := []struct {
		op, want Opcode
	}{
		{LessThan, GreaterEqual},
		{GreaterThan, LessEqual},
		{LessEqual, GreaterThan},
		{GreaterEqual, LessThan},
	}
	for _, c := range signed {
		for _, typ := range []Type{Int32, Int64} {
			got, ok := InvertedCompare(c.op, typ)
			if !ok || got != c.want {
				t.Errorf("InvertedCompare(%v, %v) = %v, %v; want %v", c.op, typ, got, ok, c.want)
			}
		}
		for _, typ := range []Type{Float, Double} {
			if got, ok := InvertedCompare(c.op, typ); ok {
				t.Errorf("InvertedCompare(%v, %v) = %v; want no value", c.op, typ, got)
			}
		}
	}

	unsigned := map[Opcode]Opcode{Above: BelowEqual, Below: AboveEqual, AboveEqual: Below, BelowEqual: Above}
	for op, want := range unsigned {
		for _, typ := range allTypes {
			if got, ok := InvertedCompare(op, typ); !ok || got != want {
				t.Errorf("InvertedCompare(%v, %v) = %v, %v; want %v", op, typ, got, ok, want)
			}
		}
	}

	for _, op := range []Opcode{Add, Load, EqualOrUnordered, VectorEqual, Branch} {
		if got, ok := InvertedCompare(op, Int32); ok {
			t.Errorf("%v should not be invertible, got %v", op, got)
		}
	}
}

func TestStoreOpcode(t *testing.T) {
	cases := []struct {
		bank  Bank
		width Width
		want  Opcode
	}{
		{GP, Width8, Store8},
		{GP, Width16, Store16},
		{GP, Width32, Store},
		{GP, Width64, Store},
		{GP, Width128, Store},
		{FP, Width8, Store},
		{FP, Width16, Store},
		{FP, Width32, Store},
		{FP, Width64, Store},
		{FP, Width128, Store},
	}
	for _, c := range cases {
		if got := StoreOpcode(c.bank, c.width); got != c.want {
			t.Errorf("StoreOpcode(%v, %v) = %v; want %v", c.bank, c.width, got, c.want)
		}
	}
}

func TestStoreOpcodeBadBank(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an invalid bank")
		}
	}()
	StoreOpcode(numBanks, Width32)
}

func TestStoreOpcodeForTypes(t *testing.T) {
	for _, typ := range allTypes {
		if got := StoreOpcode(typ.Bank(), typ.Width()); got != Store {
			t.Errorf("%v stores with %v", typ, got)
		}
	}
}

func TestOpcodeEffects(t *testing.T) {
	if !Add.Effects().None() {
		t.Errorf("Add should be effect free")
	}
	if e := Div.Effects(); !e.ControlDependent || e.MustExecute() {
		t.Errorf("Div effects: %+v", e)
	}
	if e := Store16.Effects(); !e.WritesMemory || !e.MustExecute() {
		t.Errorf("Store16 effects: %+v", e)
	}
	if e := Load8S.Effects(); !e.ReadsMemory || e.WritesMemory {
		t.Errorf("Load8S effects: %+v", e)
	}
	if e := AtomicXchgAdd.Effects(); !e.ReadsMemory || !e.WritesMemory {
		t.Errorf("AtomicXchgAdd effects: %+v", e)
	}
	for o := Opcode(0); o < numOpcodes; o++ {
		if o.IsTerminal() != o.Effects().Terminal {
			t.Errorf("%v: terminal mismatch", o)
		}
	}
	if !Patchpoint.Effects().Opaque {
		t.Errorf("Patchpoint effects must be opaque")
	}
}

func TestWidth(t *testing.T) {
	for _, bits := range []int{8, 16, 32, 64, 128} {
		w, ok := WidthForBits(bits)
		if !ok || w.Bits() != bits || w.Bytes()*8 != bits {
			t.Errorf("width for %d bits: %v %v", bits, w, ok)
		}
		if WidthForBytes(bits/8) != w {
			t.Errorf("WidthForBytes(%d) = %v", bits/8, WidthForBytes(bits/8))
		}
	}
	if _, ok := WidthForBits(24); ok {
		t.Errorf("24 bits is not a width")
	}
}
