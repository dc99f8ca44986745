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
package dfg

import "github.com/launix-de/NonLockingReadMap"

// nameIndex maps printable names back to enumeration tags. The indexes are
// written once during init and read from every loader afterwards.
type nameIndex struct {
	name string
	tag  uint16
}

func (n nameIndex) GetKey() string {
	return n.name
}

func (n nameIndex) ComputeSize() uint {
	return uint(len(n.name)) + 18
}

var nodeTypesByName = NonLockingReadMap.New[nameIndex, string]()
var useKindsByName = NonLockingReadMap.New[nameIndex, string]()

func init() {
	for i, name := range nodeTypeNames {
		if name == "" {
			panic("dfg: node type without a name")
		}
		if nodeTypesByName.Set(&nameIndex{name, uint16(i)}) != nil {
			panic("dfg: duplicate node type name " + name)
		}
	}
	for i, name := range useKindNames {
		if name == "" {
			panic("dfg: use kind without a name")
		}
		if useKindsByName.Set(&nameIndex{name, uint16(i)}) != nil {
			panic("dfg: duplicate use kind name " + name)
		}
	}
}

// ParseNodeType looks up a node type by its printable name.
func ParseNodeType(name string) (NodeType, bool) {
	if e := nodeTypesByName.Get(name); e != nil {
		return NodeType(e.tag), true
	}
	return 0, false
}

// ParseUseKind looks up a use kind by its printable name.
func ParseUseKind(name string) (UseKind, bool) {
	if e := useKindsByName.Get(name); e != nil {
		return UseKind(e.tag), true
	}
	return 0, false
}
