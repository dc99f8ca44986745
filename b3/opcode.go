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

// Opcode names one B3 operation. The set is closed: every tag below
// numOpcodes has an entry in opcodeNames.
type Opcode uint16

const (
	// A no-op that ensures that the value is dropped.
	Nop Opcode = iota
	// Polymorphic identity, usable with any value type.
	Identity
	Opaque
	// Constants live in the control flow like any other value.
	Const32
	Const64
	Const128
	ConstDouble
	ConstFloat
	BottomTuple
	// Get and Set on a variable; Upsilon/Phi are the SSA form of the same thing.
	Get
	Set
	SlotBase
	ArgumentReg
	FramePointer
	// Polymorphic math, usable with any value type.
	Add
	Sub
	Mul
	MulHigh
	UMulHigh
	Div
	UDiv
	Mod
	UMod
	FMin
	FMax
	Neg
	PurifyNaN
	// Integer math.
	BitAnd
	BitOr
	BitXor
	Shl
	SShr
	ZShr
	RotR
	RotL
	Clz
	Abs
	Ceil
	Floor
	FTrunc
	Sqrt
	BitwiseCast
	// Casts and such.
	SExt8
	SExt16
	SExt8To64
	SExt16To64
	SExt32
	ZExt32
	Trunc
	TruncHigh
	Stitch
	IToD
	IToF
	FloatToDouble
	DoubleToFloat
	// Polymorphic comparisons, usable with any value type. Returns int32 0 or 1.
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessEqual
	GreaterEqual
	// Integer comparisons that treat operands as unsigned. Usable with int32 and int64.
	Above
	Below
	AboveEqual
	BelowEqual
	// Unordered floating point compare: values are equal or either one is NaN.
	EqualOrUnordered
	Select
	// Memory loads. The S/Z suffix says how the loaded value is extended to 32 bits.
	Load8Z
	Load8S
	Load16Z
	Load16S
	Load
	// Stores: Store8 and Store16 write the low bits of a GP value.
	Store8
	Store16
	Store
	// Atomic memory operations. The width is a property of the value, not of the opcode.
	AtomicWeakCAS
	AtomicStrongCAS
	AtomicXchgAdd
	AtomicXchgAnd
	AtomicXchgOr
	AtomicXchgSub
	AtomicXchgXor
	AtomicXchg
	Depend
	WasmAddress
	Fence
	// Calls and stackmap-carrying operations.
	CCall
	Patchpoint
	Extract
	CheckAdd
	CheckSub
	CheckMul
	Check
	WasmBoundsCheck
	// SIMD operations on 128-bit vectors.
	VectorExtractLane
	VectorReplaceLane
	VectorDupElement
	VectorEqual
	VectorNotEqual
	VectorLessThan
	VectorLessThanOrEqual
	VectorBelow
	VectorBelowOrEqual
	VectorGreaterThan
	VectorGreaterThanOrEqual
	VectorAbove
	VectorAboveOrEqual
	VectorAdd
	VectorSub
	VectorAddSat
	VectorSubSat
	VectorMul
	VectorDotProduct
	VectorDiv
	VectorMin
	VectorMax
	VectorPmin
	VectorPmax
	VectorNarrow
	VectorNot
	VectorAnd
	VectorAndnot
	VectorOr
	VectorXor
	VectorShl
	VectorShr
	VectorAbs
	VectorNeg
	VectorPopcnt
	VectorCeil
	VectorFloor
	VectorTrunc
	VectorTruncSat
	VectorConvert
	VectorConvertLow
	VectorNearest
	VectorSqrt
	VectorExtendLow
	VectorExtendHigh
	VectorPromote
	VectorDemote
	VectorSplat
	VectorAnyTrue
	VectorAllTrue
	VectorAvgRound
	VectorBitmask
	VectorBitwiseSelect
	VectorExtaddPairwise
	VectorMulSat
	VectorSwizzle
	VectorMulByElement
	VectorShiftByVector
	VectorRelaxedSwizzle
	VectorRelaxedTruncSat
	VectorRelaxedMAdd
	VectorRelaxedNMAdd
	VectorRelaxedLaneSelect
	// SSA support.
	Upsilon
	Phi
	// Terminals. Every basic block ends with exactly one of these.
	Jump
	Branch
	Switch
	EntrySwitch
	Return
	Oops

	numOpcodes
)

// NumOpcodes is the number of defined opcodes.
const NumOpcodes = int(numOpcodes)

var opcodeNames = [numOpcodes]string{
	Nop:                      "Nop",
	Identity:                 "Identity",
	Opaque:                   "Opaque",
	Const32:                  "Const32",
	Const64:                  "Const64",
	Const128:                 "Const128",
	ConstDouble:              "ConstDouble",
	ConstFloat:               "ConstFloat",
	BottomTuple:              "BottomTuple",
	Get:                      "Get",
	Set:                      "Set",
	SlotBase:                 "SlotBase",
	ArgumentReg:              "ArgumentReg",
	FramePointer:             "FramePointer",
	Add:                      "Add",
	Sub:                      "Sub",
	Mul:                      "Mul",
	MulHigh:                  "MulHigh",
	UMulHigh:                 "UMulHigh",
	Div:                      "Div",
	UDiv:                     "UDiv",
	Mod:                      "Mod",
	UMod:                     "UMod",
	FMin:                     "FMin",
	FMax:                     "FMax",
	Neg:                      "Neg",
	PurifyNaN:                "PurifyNaN",
	BitAnd:                   "BitAnd",
	BitOr:                    "BitOr",
	BitXor:                   "BitXor",
	Shl:                      "Shl",
	SShr:                     "SShr",
	ZShr:                     "ZShr",
	RotR:                     "RotR",
	RotL:                     "RotL",
	Clz:                      "Clz",
	Abs:                      "Abs",
	Ceil:                     "Ceil",
	Floor:                    "Floor",
	FTrunc:                   "FTrunc",
	Sqrt:                     "Sqrt",
	BitwiseCast:              "BitwiseCast",
	SExt8:                    "SExt8",
	SExt16:                   "SExt16",
	SExt8To64:                "SExt8To64",
	SExt16To64:               "SExt16To64",
	SExt32:                   "SExt32",
	ZExt32:                   "ZExt32",
	Trunc:                    "Trunc",
	TruncHigh:                "TruncHigh",
	Stitch:                   "Stitch",
	IToD:                     "IToD",
	IToF:                     "IToF",
	FloatToDouble:            "FloatToDouble",
	DoubleToFloat:            "DoubleToFloat",
	Equal:                    "Equal",
	NotEqual:                 "NotEqual",
	LessThan:                 "LessThan",
	GreaterThan:              "GreaterThan",
	LessEqual:                "LessEqual",
	GreaterEqual:             "GreaterEqual",
	Above:                    "Above",
	Below:                    "Below",
	AboveEqual:               "AboveEqual",
	BelowEqual:               "BelowEqual",
	EqualOrUnordered:         "EqualOrUnordered",
	Select:                   "Select",
	Load8Z:                   "Load8Z",
	Load8S:                   "Load8S",
	Load16Z:                  "Load16Z",
	Load16S:                  "Load16S",
	Load:                     "Load",
	Store8:                   "Store8",
	Store16:                  "Store16",
	Store:                    "Store",
	AtomicWeakCAS:            "AtomicWeakCAS",
	AtomicStrongCAS:          "AtomicStrongCAS",
	AtomicXchgAdd:            "AtomicXchgAdd",
	AtomicXchgAnd:            "AtomicXchgAnd",
	AtomicXchgOr:             "AtomicXchgOr",
	AtomicXchgSub:            "AtomicXchgSub",
	AtomicXchgXor:            "AtomicXchgXor",
	AtomicXchg:               "AtomicXchg",
	Depend:                   "Depend",
	WasmAddress:              "WasmAddress",
	Fence:                    "Fence",
	CCall:                    "CCall",
	Patchpoint:               "Patchpoint",
	Extract:                  "Extract",
	CheckAdd:                 "CheckAdd",
	CheckSub:                 "CheckSub",
	CheckMul:                 "CheckMul",
	Check:                    "Check",
	WasmBoundsCheck:          "WasmBoundsCheck",
	VectorExtractLane:        "VectorExtractLane",
	VectorReplaceLane:        "VectorReplaceLane",
	VectorDupElement:         "VectorDupElement",
	VectorEqual:              "VectorEqual",
	VectorNotEqual:           "VectorNotEqual",
	VectorLessThan:           "VectorLessThan",
	VectorLessThanOrEqual:    "VectorLessThanOrEqual",
	VectorBelow:              "VectorBelow",
	VectorBelowOrEqual:       "VectorBelowOrEqual",
	VectorGreaterThan:        "VectorGreaterThan",
	VectorGreaterThanOrEqual: "VectorGreaterThanOrEqual",
	VectorAbove:              "VectorAbove",
	VectorAboveOrEqual:       "VectorAboveOrEqual",
	VectorAdd:                "VectorAdd",
	VectorSub:                "VectorSub",
	VectorAddSat:             "VectorAddSat",
	VectorSubSat:             "VectorSubSat",
	VectorMul:                "VectorMul",
	VectorDotProduct:         "VectorDotProduct",
	VectorDiv:                "VectorDiv",
	VectorMin:                "VectorMin",
	VectorMax:                "VectorMax",
	VectorPmin:               "VectorPmin",
	VectorPmax:               "VectorPmax",
	VectorNarrow:             "VectorNarrow",
	VectorNot:                "VectorNot",
	VectorAnd:                "VectorAnd",
	VectorAndnot:             "VectorAndnot",
	VectorOr:                 "VectorOr",
	VectorXor:                "VectorXor",
	VectorShl:                "VectorShl",
	VectorShr:                "VectorShr",
	VectorAbs:                "VectorAbs",
	VectorNeg:                "VectorNeg",
	VectorPopcnt:             "VectorPopcnt",
	VectorCeil:               "VectorCeil",
	VectorFloor:              "VectorFloor",
	VectorTrunc:              "VectorTrunc",
	VectorTruncSat:           "VectorTruncSat",
	VectorConvert:            "VectorConvert",
	VectorConvertLow:         "VectorConvertLow",
	VectorNearest:            "VectorNearest",
	VectorSqrt:               "VectorSqrt",
	VectorExtendLow:          "VectorExtendLow",
	VectorExtendHigh:         "VectorExtendHigh",
	VectorPromote:            "VectorPromote",
	VectorDemote:             "VectorDemote",
	VectorSplat:              "VectorSplat",
	VectorAnyTrue:            "VectorAnyTrue",
	VectorAllTrue:            "VectorAllTrue",
	VectorAvgRound:           "VectorAvgRound",
	VectorBitmask:            "VectorBitmask",
	VectorBitwiseSelect:      "VectorBitwiseSelect",
	VectorExtaddPairwise:     "VectorExtaddPairwise",
	VectorMulSat:             "VectorMulSat",
	VectorSwizzle:            "VectorSwizzle",
	VectorMulByElement:       "VectorMulByElement",
	VectorShiftByVector:      "VectorShiftByVector",
	VectorRelaxedSwizzle:     "VectorRelaxedSwizzle",
	VectorRelaxedTruncSat:    "VectorRelaxedTruncSat",
	VectorRelaxedMAdd:        "VectorRelaxedMAdd",
	VectorRelaxedNMAdd:       "VectorRelaxedNMAdd",
	VectorRelaxedLaneSelect:  "VectorRelaxedLaneSelect",
	Upsilon:                  "Upsilon",
	Phi:                      "Phi",
	Jump:                     "Jump",
	Branch:                   "Branch",
	Switch:                   "Switch",
	EntrySwitch:              "EntrySwitch",
	Return:                   "Return",
	Oops:                     "Oops",
}

// String returns the printable name of the opcode. An opcode without a
// name means the enumeration and the name table drifted apart.
func (o Opcode) String() string {
	if o >= numOpcodes || opcodeNames[o] == "" {
		panic(fmt.Sprintf("b3: unreachable opcode %d", uint16(o)))
	}
	return opcodeNames[o]
}

var opcodesByName map[string]Opcode

func init() {
	opcodesByName = make(map[string]Opcode, numOpcodes)
	for i, name := range opcodeNames {
		if name == "" {
			panic(fmt.Sprintf("b3: opcode %d has no name", i))
		}
		if _, dup := opcodesByName[name]; dup {
			panic("b3: duplicate opcode name " + name)
		}
		opcodesByName[name] = Opcode(i)
	}
}

// ParseOpcode looks up an opcode by its printable name.
func ParseOpcode(name string) (Opcode, bool) {
	o, ok := opcodesByName[name]
	return o, ok
}

// InvertedCompare returns the logical negation of a comparison. Signed
// ordering compares only invert for integer operands: with NaN around,
// !(a < b) is not a >= b.
func InvertedCompare(opcode Opcode, typ Type) (Opcode, bool) {
	switch opcode {
	case Equal:
		return NotEqual, true
	case NotEqual:
		return Equal, true
	case LessThan:
		if typ.IsInt() {
			return GreaterEqual, true
		}
		return 0, false
	case GreaterThan:
		if typ.IsInt() {
			return LessEqual, true
		}
		return 0, false
	case LessEqual:
		if typ.IsInt() {
			return GreaterThan, true
		}
		return 0, false
	case GreaterEqual:
		if typ.IsInt() {
			return LessThan, true
		}
		return 0, false
	case Above:
		return BelowEqual, true
	case Below:
		return AboveEqual, true
	case AboveEqual:
		return Below, true
	case BelowEqual:
		return Above, true
	default:
		return 0, false
	}
}

// StoreOpcode picks the narrowest store for a value of the given bank and width.
func StoreOpcode(bank Bank, width Width) Opcode {
	switch bank {
	case GP:
		switch width {
		case Width8:
			return Store8
		case Width16:
			return Store16
		default:
			return Store
		}
	case FP:
		return Store
	}
	panic(fmt.Sprintf("b3: unreachable bank %d", uint8(bank)))
}

func (o Opcode) IsConstant() bool {
	switch o {
	case Const32, Const64, Const128, ConstDouble, ConstFloat:
		return true
	}
	return false
}

func (o Opcode) IsLoad() bool {
	switch o {
	case Load8Z, Load8S, Load16Z, Load16S, Load:
		return true
	}
	return false
}

func (o Opcode) IsStore() bool {
	switch o {
	case Store8, Store16, Store:
		return true
	}
	return false
}

func (o Opcode) IsAtomic() bool {
	switch o {
	case AtomicWeakCAS, AtomicStrongCAS, AtomicXchgAdd, AtomicXchgAnd,
		AtomicXchgOr, AtomicXchgSub, AtomicXchgXor, AtomicXchg:
		return true
	}
	return false
}

// IsMemoryAccess reports loads, stores and atomics.
func (o Opcode) IsMemoryAccess() bool {
	return o.IsLoad() || o.IsStore() || o.IsAtomic()
}

// IsComparison reports scalar comparisons producing int32 0 or 1.
func (o Opcode) IsComparison() bool {
	return o >= Equal && o <= EqualOrUnordered
}

func (o Opcode) IsTerminal() bool {
	switch o {
	case Jump, Branch, Switch, EntrySwitch, Return, Oops:
		return true
	}
	return false
}

func (o Opcode) IsVector() bool {
	return o >= VectorExtractLane && o <= VectorRelaxedLaneSelect
}
