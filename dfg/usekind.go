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

import "fmt"

// UseKind is the representation or type an edge requires of its operand.
type UseKind uint8

const (
	UntypedUse UseKind = iota
	Int32Use
	KnownInt32Use
	Int52RepUse
	NumberUse
	RealNumberUse
	DoubleRepUse
	DoubleRepRealUse
	BooleanUse
	KnownBooleanUse
	CellUse
	KnownCellUse
	CellOrOtherUse
	ObjectUse
	ArrayUse
	FunctionUse
	ObjectOrOtherUse
	StringUse
	StringOrOtherUse
	KnownStringUse
	KnownPrimitiveUse
	StringObjectUse
	StringOrStringObjectUse
	SymbolUse
	AnyBigIntUse
	BigInt32Use
	HeapBigIntUse
	DateObjectUse
	MapObjectUse
	MapIteratorObjectUse
	SetObjectUse
	SetIteratorObjectUse
	WeakMapObjectUse
	WeakSetObjectUse
	DataViewObjectUse
	FinalObjectUse
	PromiseObjectUse
	RegExpObjectUse
	ProxyObjectUse
	GlobalProxyUse
	DerivedArrayUse
	NotCellUse
	NotCellNorBigIntUse
	OtherUse
	KnownOtherUse
	MiscUse
	StringIdentUse
	NotStringVarUse
	NotSymbolUse
	AnyIntUse
	DoubleRepAnyIntUse
	NotDoubleUse
	NeitherDoubleNorHeapBigIntUse
	NeitherDoubleNorHeapBigIntNorStringUse

	// Produced by earlier tiers but not lowered by the FTL backend.
	TypedArrayViewUse
	ScopeUse
	WasmRefUse

	numUseKinds
)

// NumUseKinds is the number of defined use kinds.
const NumUseKinds = int(numUseKinds)

var useKindNames = [numUseKinds]string{
	UntypedUse:                             "UntypedUse",
	Int32Use:                               "Int32Use",
	KnownInt32Use:                          "KnownInt32Use",
	Int52RepUse:                            "Int52RepUse",
	NumberUse:                              "NumberUse",
	RealNumberUse:                          "RealNumberUse",
	DoubleRepUse:                           "DoubleRepUse",
	DoubleRepRealUse:                       "DoubleRepRealUse",
	BooleanUse:                             "BooleanUse",
	KnownBooleanUse:                        "KnownBooleanUse",
	CellUse:                                "CellUse",
	KnownCellUse:                           "KnownCellUse",
	CellOrOtherUse:                         "CellOrOtherUse",
	ObjectUse:                              "ObjectUse",
	ArrayUse:                               "ArrayUse",
	FunctionUse:                            "FunctionUse",
	ObjectOrOtherUse:                       "ObjectOrOtherUse",
	StringUse:                              "StringUse",
	StringOrOtherUse:                       "StringOrOtherUse",
	KnownStringUse:                         "KnownStringUse",
	KnownPrimitiveUse:                      "KnownPrimitiveUse",
	StringObjectUse:                        "StringObjectUse",
	StringOrStringObjectUse:                "StringOrStringObjectUse",
	SymbolUse:                              "SymbolUse",
	AnyBigIntUse:                           "AnyBigIntUse",
	BigInt32Use:                            "BigInt32Use",
	HeapBigIntUse:                          "HeapBigIntUse",
	DateObjectUse:                          "DateObjectUse",
	MapObjectUse:                           "MapObjectUse",
	MapIteratorObjectUse:                   "MapIteratorObjectUse",
	SetObjectUse:                           "SetObjectUse",
	SetIteratorObjectUse:                   "SetIteratorObjectUse",
	WeakMapObjectUse:                       "WeakMapObjectUse",
	WeakSetObjectUse:                       "WeakSetObjectUse",
	DataViewObjectUse:                      "DataViewObjectUse",
	FinalObjectUse:                         "FinalObjectUse",
	PromiseObjectUse:                       "PromiseObjectUse",
	RegExpObjectUse:                        "RegExpObjectUse",
	ProxyObjectUse:                         "ProxyObjectUse",
	GlobalProxyUse:                         "GlobalProxyUse",
	DerivedArrayUse:                        "DerivedArrayUse",
	NotCellUse:                             "NotCellUse",
	NotCellNorBigIntUse:                    "NotCellNorBigIntUse",
	OtherUse:                               "OtherUse",
	KnownOtherUse:                          "KnownOtherUse",
	MiscUse:                                "MiscUse",
	StringIdentUse:                         "StringIdentUse",
	NotStringVarUse:                        "NotStringVarUse",
	NotSymbolUse:                           "NotSymbolUse",
	AnyIntUse:                              "AnyIntUse",
	DoubleRepAnyIntUse:                     "DoubleRepAnyIntUse",
	NotDoubleUse:                           "NotDoubleUse",
	NeitherDoubleNorHeapBigIntUse:          "NeitherDoubleNorHeapBigIntUse",
	NeitherDoubleNorHeapBigIntNorStringUse: "NeitherDoubleNorHeapBigIntNorStringUse",
	TypedArrayViewUse:                      "TypedArrayViewUse",
	ScopeUse:                               "ScopeUse",
	WasmRefUse:                             "WasmRefUse",
}

func (k UseKind) String() string {
	if k >= numUseKinds || useKindNames[k] == "" {
		panic(fmt.Sprintf("dfg: unreachable use kind %d", uint8(k)))
	}
	return useKindNames[k]
}

// IsDoubleRep is true for use kinds that consume an unboxed double.
func (k UseKind) IsDoubleRep() bool {
	switch k {
	case DoubleRepUse, DoubleRepRealUse, DoubleRepAnyIntUse:
		return true
	}
	return false
}

// IsCell is true for use kinds that guarantee a heap cell operand.
func (k UseKind) IsCell() bool {
	switch k {
	case CellUse, KnownCellUse, ObjectUse, ArrayUse, FunctionUse, StringUse, KnownStringUse,
		StringObjectUse, StringOrStringObjectUse, SymbolUse, HeapBigIntUse, DateObjectUse,
		MapObjectUse, MapIteratorObjectUse, SetObjectUse, SetIteratorObjectUse, WeakMapObjectUse,
		WeakSetObjectUse, DataViewObjectUse, FinalObjectUse, PromiseObjectUse, RegExpObjectUse,
		ProxyObjectUse, GlobalProxyUse, DerivedArrayUse, StringIdentUse:
		return true
	}
	return false
}
