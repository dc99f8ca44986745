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

import "fmt"

// Bank is the register class a value lives in.
type Bank uint8

const (
	GP Bank = iota // general purpose
	FP             // floating point and vector
	numBanks
)

func (b Bank) String() string {
	switch b {
	case GP:
		return "GP"
	case FP:
		return "FP"
	}
	return fmt.Sprintf("Bank(%d)", uint8(b))
}

// Width is the size of a value or memory access.
type Width uint8

const (
	Width8 Width = iota
	Width16
	Width32
	Width64
	Width128
)

// Bytes returns the number of bytes covered by w.
func (w Width) Bytes() int {
	return 1 << w
}

func (w Width) Bits() int {
	return 8 << w
}

func (w Width) String() string {
	if w > Width128 {
		return fmt.Sprintf("Width(%d)", uint8(w))
	}
	return fmt.Sprintf("%d", w.Bits())
}

// WidthForBytes maps 1, 2, 4, 8 and 16 to their width. Other sizes round up.
func WidthForBytes(n int) Width {
	switch {
	case n <= 1:
		return Width8
	case n <= 2:
		return Width16
	case n <= 4:
		return Width32
	case n <= 8:
		return Width64
	}
	return Width128
}

// WidthForBits parses the bit counts used on the command line and in tests.
func WidthForBits(bits int) (Width, bool) {
	switch bits {
	case 8:
		return Width8, true
	case 16:
		return Width16, true
	case 32:
		return Width32, true
	case 64:
		return Width64, true
	case 128:
		return Width128, true
	}
	return 0, false
}

// Type is the type of a B3 value.
type Type uint8

const (
	Void Type = iota
	Int32
	Int64
	Float
	Double
	V128
	Tuple
)

var typeNames = [...]string{
	Void:   "Void",
	Int32:  "Int32",
	Int64:  "Int64",
	Float:  "Float",
	Double: "Double",
	V128:   "V128",
	Tuple:  "Tuple",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType looks up a type by name.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

func (t Type) IsInt() bool {
	return t == Int32 || t == Int64
}

func (t Type) IsFloat() bool {
	return t == Float || t == Double
}

func (t Type) IsVector() bool {
	return t == V128
}

// IsNumeric is true for every type that fits a single register.
func (t Type) IsNumeric() bool {
	return t.IsInt() || t.IsFloat() || t.IsVector()
}

// Bank returns the register class used for values of type t.
func (t Type) Bank() Bank {
	switch t {
	case Int32, Int64:
		return GP
	case Float, Double, V128:
		return FP
	}
	panic("b3: type " + t.String() + " has no bank")
}

// Width returns the storage width of values of type t.
func (t Type) Width() Width {
	switch t {
	case Int32, Float:
		return Width32
	case Int64, Double:
		return Width64
	case V128:
		return Width128
	}
	panic("b3: type " + t.String() + " has no width")
}
