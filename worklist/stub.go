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
package worklist

import "github.com/launix-de/b3jit/assembler"

// StubGenerator links a placeholder function that returns the number of
// nodes in the plan's graph. It stands in for a real backend when exercising
// the linker and its observers.
func StubGenerator(p *Plan) (assembler.CodeRef, error) {
	b := assembler.NewBuffer()
	b.EmitMovImm64(assembler.RAX, uint64(p.Graph.NumNodes()))
	if p.Tier == TierFTLWithOSREntry {
		// OSR entry lands on the ret below
		entry := b.ReserveLabel()
		b.EmitJmpRel8(entry)
		b.EmitInt3()
		b.MarkLabel(entry)
	}
	b.EmitRet()
	return assembler.NewLinkBuffer(b).Finalize(p.Name())
}
