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

// Effects summarizes what executing an opcode may do besides producing its
// result. Memory ranges are collapsed to booleans here; values that carry
// their own effects (CCall, Patchpoint) report Opaque.
type Effects struct {
	Terminal         bool
	ControlDependent bool
	ExitsSideways    bool
	ReadsMemory      bool
	WritesMemory     bool
	Fence            bool
	ReadsLocalState  bool
	WritesLocalState bool
	ReadsPinned      bool
	Opaque           bool
}

// None reports an empty effect set: the value may be freely moved or killed.
func (e Effects) None() bool {
	return e == (Effects{})
}

// MustExecute is true if the operation cannot be removed even when its result is unused.
func (e Effects) MustExecute() bool {
	return e.Terminal || e.ExitsSideways || e.WritesMemory || e.WritesLocalState || e.Fence || e.Opaque
}

// Effects returns the opcode-level effects. Fenced loads and stores, traps and
// heap ranges are properties of individual values and are not modelled.
func (o Opcode) Effects() (result Effects) {
	switch {
	case o.IsVector(), o.IsComparison(), o.IsConstant():
		return
	case o.IsLoad():
		result.ReadsMemory = true
		result.ControlDependent = true
		return
	case o.IsStore():
		result.WritesMemory = true
		result.ControlDependent = true
		return
	case o.IsAtomic():
		result.ReadsMemory = true
		result.WritesMemory = true
		result.ControlDependent = true
		return
	case o.IsTerminal():
		result.Terminal = true
		return
	}
	switch o {
	case Div, UDiv, Mod, UMod:
		result.ControlDependent = true
	case WasmAddress:
		result.ReadsPinned = true
	case Fence:
		result.ReadsMemory = true
		result.WritesMemory = true
		result.Fence = true
	case CCall, Patchpoint:
		result.Opaque = true
	case CheckAdd, CheckSub, CheckMul, Check:
		result.ExitsSideways = true
		result.ReadsMemory = true
	case WasmBoundsCheck:
		result.ExitsSideways = true
		result.ReadsMemory = true
		result.ReadsPinned = true
	case Upsilon, Set:
		result.WritesLocalState = true
	case Phi, Get:
		result.ReadsLocalState = true
	}
	return
}
