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

// NodeType is the operation performed by a DFG node. The enumeration is
// closed; numNodeTypes bounds it and every tag has a name in nodeTypeNames.
type NodeType uint16

const (
	JSConstant NodeType = iota
	LazyJSConstant
	GetLocal
	SetLocal
	PutStack
	KillStack
	GetStack
	MovHint
	ZombieHint
	ExitOK
	Phantom
	Flush
	PhantomLocal
	ExtractFromTuple
	SetArgumentDefinitely
	SetArgumentMaybe
	Return
	ArithBitNot
	ArithBitAnd
	ArithBitOr
	ArithBitXor
	ArithBitRShift
	ArithBitLShift
	ArithBitURShift
	CheckStructure
	CheckStructureOrEmpty
	DoubleAsInt32
	Arrayify
	ArrayifyToStructure
	PutStructure
	GetButterfly
	NewObject
	NewGenerator
	NewAsyncGenerator
	NewStringObject
	NewRegExpUntyped
	NewSymbol
	NewArray
	NewArrayWithSpread
	NewInternalFieldObject
	Spread
	NewArrayBuffer
	NewTypedArray
	NewTypedArrayBuffer
	GetByOffset
	GetGetterSetterByOffset
	GetGetter
	GetSetter
	PutByOffset
	GetGlobalVar
	GetGlobalLexicalVariable
	PutGlobalVariable
	ValueBitAnd
	ValueBitXor
	ValueBitOr
	ValueBitNot
	ValueBitLShift
	ValueBitRShift
	ValueBitURShift
	ValueNegate
	ValueAdd
	ValueSub
	ValueMul
	ValueDiv
	ValueMod
	ValuePow
	Inc
	Dec
	StrCat
	ArithAdd
	ArithClz32
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
	ArithMin
	ArithMax
	ArithAbs
	ArithPow
	ArithRandom
	ArithRound
	ArithFloor
	ArithCeil
	ArithTrunc
	ArithSqrt
	ArithFRound
	ArithF16Round
	ArithNegate
	ArithUnary
	UInt32ToNumber
	Jump
	ForceOSRExit
	Phi
	Upsilon
	ExtractOSREntryLocal
	ExtractCatchLocal
	ClearCatchLocals
	LoopHint
	SkipScope
	GetGlobalObject
	GetGlobalThis
	UnwrapGlobalProxy
	CreateActivation
	PushWithScope
	NewFunction
	NewGeneratorFunction
	NewAsyncFunction
	NewAsyncGeneratorFunction
	NewBoundFunction
	GetClosureVar
	PutClosureVar
	GetInternalField
	PutInternalField
	CreateDirectArguments
	CreateScopedArguments
	CreateClonedArguments
	GetFromArguments
	PutToArguments
	GetArgument
	InvalidationPoint
	StringAt
	StringCharAt
	StringLocaleCompare
	CheckIsConstant
	CheckBadValue
	CheckNotEmpty
	AssertNotEmpty
	CheckIdent
	CheckTraps
	StringCharCodeAt
	StringCodePointAt
	StringFromCharCode
	StringIndexOf
	AllocatePropertyStorage
	ReallocatePropertyStorage
	NukeStructureAndSetButterfly
	GetTypedArrayByteOffset
	GetTypedArrayByteOffsetAsInt52
	GetPrototypeOf
	GetWebAssemblyInstanceExports
	NotifyWrite
	StoreBarrier
	FencedStoreBarrier
	Call
	DirectCall
	TailCall
	DirectTailCall
	TailCallInlinedCaller
	DirectTailCallInlinedCaller
	Construct
	DirectConstruct
	CallVarargs
	CallDirectEval
	TailCallVarargs
	TailCallVarargsInlinedCaller
	ConstructVarargs
	CallForwardVarargs
	TailCallForwardVarargs
	TailCallForwardVarargsInlinedCaller
	ConstructForwardVarargs
	CallWasm
	CallCustomAccessorGetter
	CallCustomAccessorSetter
	VarargsLength
	LoadVarargs
	ValueToInt32
	Branch
	ToBoolean
	LogicalNot
	AssertInBounds
	CheckInBounds
	CheckInBoundsInt52
	ConstantStoragePointer
	Check
	CheckVarargs
	CheckArray
	CheckArrayOrEmpty
	CheckDetached
	CountExecution
	SuperSamplerBegin
	SuperSamplerEnd
	GetExecutable
	GetScope
	GetEvalScope
	GetCallee
	SetCallee
	GetArgumentCountIncludingThis
	SetArgumentCountIncludingThis
	ToNumber
	ToNumeric
	ToString
	FunctionToString
	FunctionBind
	ToObject
	CallObjectConstructor
	CallStringConstructor
	CallNumberConstructor
	ObjectAssign
	ObjectCreate
	ObjectKeys
	ObjectGetOwnPropertyNames
	ObjectGetOwnPropertySymbols
	ObjectToString
	ReflectOwnKeys
	MakeRope
	MakeAtomString
	NewArrayWithSize
	NewArrayWithConstantSize
	NewArrayWithSpecies
	NewArrayWithSizeAndStructure
	TryGetById
	GetById
	GetByIdFlush
	GetByIdMegamorphic
	GetByIdWithThis
	GetByIdWithThisMegamorphic
	GetByIdDirect
	GetByIdDirectFlush
	ToThis
	MultiGetByOffset
	MultiPutByOffset
	MultiDeleteByOffset
	ToPrimitive
	ToPropertyKey
	ToPropertyKeyOrNumber
	Throw
	ThrowStaticError
	Unreachable
	InByVal
	InById
	InByValMegamorphic
	InByIdMegamorphic
	HasPrivateName
	HasPrivateBrand
	HasOwnProperty
	IsCellWithType
	MapHash
	NormalizeMapKey
	MapGet
	LoadMapValue
	MapIterationNext
	MapIterationEntry
	MapIterationEntryKey
	MapIterationEntryValue
	MapStorage
	MapStorageOrSentinel
	MapIteratorNext
	MapIteratorKey
	MapIteratorValue
	ExtractValueFromWeakMapGet
	SetAdd
	MapSet
	MapOrSetDelete
	WeakMapGet
	WeakSetAdd
	WeakMapSet
	IsEmpty
	IsEmptyStorage
	TypeOfIsUndefined
	TypeOfIsObject
	TypeOfIsFunction
	IsUndefinedOrNull
	IsBoolean
	IsNumber
	IsBigInt
	NumberIsInteger
	GlobalIsNaN
	NumberIsNaN
	GlobalIsFinite
	NumberIsFinite
	NumberIsSafeInteger
	IsObject
	IsCallable
	IsConstructor
	IsTypedArrayView
	CheckTypeInfoFlags
	HasStructureWithFlags
	OverridesHasInstance
	InstanceOf
	InstanceOfMegamorphic
	InstanceOfCustom
	DoubleRep
	ValueRep
	Int52Rep
	PurifyNaN
	DoubleConstant
	Int52Constant
	BooleanToNumber
	HasIndexedProperty
	GetIndexedPropertyStorage
	ResolveRope
	GetPropertyEnumerator
	EnumeratorNextUpdateIndexAndMode
	EnumeratorNextUpdatePropertyName
	EnumeratorGetByVal
	EnumeratorInByVal
	EnumeratorHasOwnProperty
	EnumeratorPutByVal
	BottomValue
	PhantomNewObject
	PhantomNewArrayWithConstantSize
	PhantomNewFunction
	PhantomNewGeneratorFunction
	PhantomNewAsyncGeneratorFunction
	PhantomNewAsyncFunction
	PhantomNewInternalFieldObject
	PhantomCreateActivation
	PhantomNewRegExp
	PutHint
	CheckStructureImmediate
	MaterializeNewObject
	MaterializeNewArrayWithConstantSize
	MaterializeCreateActivation
	MaterializeNewInternalFieldObject
	PhantomDirectArguments
	PhantomCreateRest
	PhantomSpread
	PhantomNewArrayWithSpread
	PhantomNewArrayBuffer
	PhantomClonedArguments
	GetMyArgumentByVal
	GetMyArgumentByValOutOfBounds
	ForwardVarargs
	EntrySwitch
	Switch
	TypeOf
	PutById
	PutByIdDirect
	PutByIdFlush
	PutByIdMegamorphic
	PutByIdWithThis
	PutGetterById
	PutSetterById
	PutGetterSetterById
	PutGetterByVal
	PutSetterByVal
	DeleteById
	DeleteByVal
	CreateRest
	GetRestLength
	RegExpExec
	RegExpExecNonGlobalOrSticky
	RegExpTest
	RegExpTestInline
	RegExpMatchFast
	RegExpMatchFastGlobal
	RegExpSearch
	NewRegExp
	NewMap
	NewSet
	StringReplace
	StringReplaceAll
	StringReplaceRegExp
	StringReplaceString
	GetRegExpObjectLastIndex
	SetRegExpObjectLastIndex
	RecordRegExpCachedResult
	SetFunctionName
	LogShadowChickenPrologue
	LogShadowChickenTail
	ResolveScope
	ResolveScopeForHoistingFuncDeclInEval
	GetDynamicVar
	PutDynamicVar
	CompareEq
	CompareEqPtr
	CompareLess
	CompareLessEq
	CompareGreater
	CompareGreaterEq
	CompareBelow
	CompareBelowEq
	CompareStrictEq
	SameValue
	DefineDataProperty
	DefineAccessorProperty
	StringValueOf
	StringSlice
	StringSubstring
	ToLowerCase
	NumberToStringWithRadix
	NumberToStringWithValidRadixConstant
	CheckJSCast
	CheckNotJSCast
	CallDOM
	CallDOMGetter
	ArraySlice
	ArraySplice
	ArrayIncludes
	ArrayIndexOf
	ArrayPop
	ArrayPush
	ParseInt
	ToIntegerOrInfinity
	ToLength
	AtomicsAdd
	AtomicsAnd
	AtomicsCompareExchange
	AtomicsExchange
	AtomicsLoad
	AtomicsOr
	AtomicsStore
	AtomicsSub
	AtomicsXor
	AtomicsIsLockFree
	InitializeEntrypointArguments
	CPUIntrinsic
	GetArrayLength
	GetUndetachedTypeArrayLength
	GetTypedArrayLengthAsInt52
	GetVectorLength
	GetByVal
	GetByValMegamorphic
	GetByValWithThis
	GetByValWithThisMegamorphic
	MultiGetByVal
	MultiPutByVal
	PutByVal
	PutByValAlias
	PutByValMegamorphic
	PutByValDirect
	PutByValWithThis
	PutPrivateName
	PutPrivateNameById
	GetPrivateName
	GetPrivateNameById
	CheckPrivateBrand
	SetPrivateBrand
	MatchStructure
	FilterCallLinkStatus
	FilterGetByStatus
	FilterPutByStatus
	FilterInByStatus
	FilterDeleteByStatus
	FilterCheckPrivateBrandStatus
	FilterSetPrivateBrandStatus
	CreateThis
	CreatePromise
	CreateGenerator
	CreateAsyncGenerator
	DataViewGetByteLength
	DataViewGetByteLengthAsInt52
	DataViewGetInt
	DataViewGetFloat
	DataViewSet
	DateGetInt32OrNaN
	DateGetTime
	DateSetTime
	// Value alias; always optimized away before code generation.
	Identity
	// Profiling, tier-up and arithmetic variants the top tier does not lower.
	IdentityWithProfile
	CheckTierUpInLoop
	CheckTierUpAndOSREnter
	CheckTierUpAtReturn
	FiatInt52
	ArithIMul
	ProfileType
	ProfileControlFlow

	numNodeTypes
)

// NumNodeTypes is the number of defined node types.
const NumNodeTypes = int(numNodeTypes)

var nodeTypeNames = [numNodeTypes]string{
	JSConstant:                            "JSConstant",
	LazyJSConstant:                        "LazyJSConstant",
	GetLocal:                              "GetLocal",
	SetLocal:                              "SetLocal",
	PutStack:                              "PutStack",
	KillStack:                             "KillStack",
	GetStack:                              "GetStack",
	MovHint:                               "MovHint",
	ZombieHint:                            "ZombieHint",
	ExitOK:                                "ExitOK",
	Phantom:                               "Phantom",
	Flush:                                 "Flush",
	PhantomLocal:                          "PhantomLocal",
	ExtractFromTuple:                      "ExtractFromTuple",
	SetArgumentDefinitely:                 "SetArgumentDefinitely",
	SetArgumentMaybe:                      "SetArgumentMaybe",
	Return:                                "Return",
	ArithBitNot:                           "ArithBitNot",
	ArithBitAnd:                           "ArithBitAnd",
	ArithBitOr:                            "ArithBitOr",
	ArithBitXor:                           "ArithBitXor",
	ArithBitRShift:                        "ArithBitRShift",
	ArithBitLShift:                        "ArithBitLShift",
	ArithBitURShift:                       "ArithBitURShift",
	CheckStructure:                        "CheckStructure",
	CheckStructureOrEmpty:                 "CheckStructureOrEmpty",
	DoubleAsInt32:                         "DoubleAsInt32",
	Arrayify:                              "Arrayify",
	ArrayifyToStructure:                   "ArrayifyToStructure",
	PutStructure:                          "PutStructure",
	GetButterfly:                          "GetButterfly",
	NewObject:                             "NewObject",
	NewGenerator:                          "NewGenerator",
	NewAsyncGenerator:                     "NewAsyncGenerator",
	NewStringObject:                       "NewStringObject",
	NewRegExpUntyped:                      "NewRegExpUntyped",
	NewSymbol:                             "NewSymbol",
	NewArray:                              "NewArray",
	NewArrayWithSpread:                    "NewArrayWithSpread",
	NewInternalFieldObject:                "NewInternalFieldObject",
	Spread:                                "Spread",
	NewArrayBuffer:                        "NewArrayBuffer",
	NewTypedArray:                         "NewTypedArray",
	NewTypedArrayBuffer:                   "NewTypedArrayBuffer",
	GetByOffset:                           "GetByOffset",
	GetGetterSetterByOffset:               "GetGetterSetterByOffset",
	GetGetter:                             "GetGetter",
	GetSetter:                             "GetSetter",
	PutByOffset:                           "PutByOffset",
	GetGlobalVar:                          "GetGlobalVar",
	GetGlobalLexicalVariable:              "GetGlobalLexicalVariable",
	PutGlobalVariable:                     "PutGlobalVariable",
	ValueBitAnd:                           "ValueBitAnd",
	ValueBitXor:                           "ValueBitXor",
	ValueBitOr:                            "ValueBitOr",
	ValueBitNot:                           "ValueBitNot",
	ValueBitLShift:                        "ValueBitLShift",
	ValueBitRShift:                        "ValueBitRShift",
	ValueBitURShift:                       "ValueBitURShift",
	ValueNegate:                           "ValueNegate",
	ValueAdd:                              "ValueAdd",
	ValueSub:                              "ValueSub",
	ValueMul:                              "ValueMul",
	ValueDiv:                              "ValueDiv",
	ValueMod:                              "ValueMod",
	ValuePow:                              "ValuePow",
	Inc:                                   "Inc",
	Dec:                                   "Dec",
	StrCat:                                "StrCat",
	ArithAdd:                              "ArithAdd",
	ArithClz32:                            "ArithClz32",
	ArithSub:                              "ArithSub",
	ArithMul:                              "ArithMul",
	ArithDiv:                              "ArithDiv",
	ArithMod:                              "ArithMod",
	ArithMin:                              "ArithMin",
	ArithMax:                              "ArithMax",
	ArithAbs:                              "ArithAbs",
	ArithPow:                              "ArithPow",
	ArithRandom:                           "ArithRandom",
	ArithRound:                            "ArithRound",
	ArithFloor:                            "ArithFloor",
	ArithCeil:                             "ArithCeil",
	ArithTrunc:                            "ArithTrunc",
	ArithSqrt:                             "ArithSqrt",
	ArithFRound:                           "ArithFRound",
	ArithF16Round:                         "ArithF16Round",
	ArithNegate:                           "ArithNegate",
	ArithUnary:                            "ArithUnary",
	UInt32ToNumber:                        "UInt32ToNumber",
	Jump:                                  "Jump",
	ForceOSRExit:                          "ForceOSRExit",
	Phi:                                   "Phi",
	Upsilon:                               "Upsilon",
	ExtractOSREntryLocal:                  "ExtractOSREntryLocal",
	ExtractCatchLocal:                     "ExtractCatchLocal",
	ClearCatchLocals:                      "ClearCatchLocals",
	LoopHint:                              "LoopHint",
	SkipScope:                             "SkipScope",
	GetGlobalObject:                       "GetGlobalObject",
	GetGlobalThis:                         "GetGlobalThis",
	UnwrapGlobalProxy:                     "UnwrapGlobalProxy",
	CreateActivation:                      "CreateActivation",
	PushWithScope:                         "PushWithScope",
	NewFunction:                           "NewFunction",
	NewGeneratorFunction:                  "NewGeneratorFunction",
	NewAsyncFunction:                      "NewAsyncFunction",
	NewAsyncGeneratorFunction:             "NewAsyncGeneratorFunction",
	NewBoundFunction:                      "NewBoundFunction",
	GetClosureVar:                         "GetClosureVar",
	PutClosureVar:                         "PutClosureVar",
	GetInternalField:                      "GetInternalField",
	PutInternalField:                      "PutInternalField",
	CreateDirectArguments:                 "CreateDirectArguments",
	CreateScopedArguments:                 "CreateScopedArguments",
	CreateClonedArguments:                 "CreateClonedArguments",
	GetFromArguments:                      "GetFromArguments",
	PutToArguments:                        "PutToArguments",
	GetArgument:                           "GetArgument",
	InvalidationPoint:                     "InvalidationPoint",
	StringAt:                              "StringAt",
	StringCharAt:                          "StringCharAt",
	StringLocaleCompare:                   "StringLocaleCompare",
	CheckIsConstant:                       "CheckIsConstant",
	CheckBadValue:                         "CheckBadValue",
	CheckNotEmpty:                         "CheckNotEmpty",
	AssertNotEmpty:                        "AssertNotEmpty",
	CheckIdent:                            "CheckIdent",
	CheckTraps:                            "CheckTraps",
	StringCharCodeAt:                      "StringCharCodeAt",
	StringCodePointAt:                     "StringCodePointAt",
	StringFromCharCode:                    "StringFromCharCode",
	StringIndexOf:                         "StringIndexOf",
	AllocatePropertyStorage:               "AllocatePropertyStorage",
	ReallocatePropertyStorage:             "ReallocatePropertyStorage",
	NukeStructureAndSetButterfly:          "NukeStructureAndSetButterfly",
	GetTypedArrayByteOffset:               "GetTypedArrayByteOffset",
	GetTypedArrayByteOffsetAsInt52:        "GetTypedArrayByteOffsetAsInt52",
	GetPrototypeOf:                        "GetPrototypeOf",
	GetWebAssemblyInstanceExports:         "GetWebAssemblyInstanceExports",
	NotifyWrite:                           "NotifyWrite",
	StoreBarrier:                          "StoreBarrier",
	FencedStoreBarrier:                    "FencedStoreBarrier",
	Call:                                  "Call",
	DirectCall:                            "DirectCall",
	TailCall:                              "TailCall",
	DirectTailCall:                        "DirectTailCall",
	TailCallInlinedCaller:                 "TailCallInlinedCaller",
	DirectTailCallInlinedCaller:           "DirectTailCallInlinedCaller",
	Construct:                             "Construct",
	DirectConstruct:                       "DirectConstruct",
	CallVarargs:                           "CallVarargs",
	CallDirectEval:                        "CallDirectEval",
	TailCallVarargs:                       "TailCallVarargs",
	TailCallVarargsInlinedCaller:          "TailCallVarargsInlinedCaller",
	ConstructVarargs:                      "ConstructVarargs",
	CallForwardVarargs:                    "CallForwardVarargs",
	TailCallForwardVarargs:                "TailCallForwardVarargs",
	TailCallForwardVarargsInlinedCaller:   "TailCallForwardVarargsInlinedCaller",
	ConstructForwardVarargs:               "ConstructForwardVarargs",
	CallWasm:                              "CallWasm",
	CallCustomAccessorGetter:              "CallCustomAccessorGetter",
	CallCustomAccessorSetter:              "CallCustomAccessorSetter",
	VarargsLength:                         "VarargsLength",
	LoadVarargs:                           "LoadVarargs",
	ValueToInt32:                          "ValueToInt32",
	Branch:                                "Branch",
	ToBoolean:                             "ToBoolean",
	LogicalNot:                            "LogicalNot",
	AssertInBounds:                        "AssertInBounds",
	CheckInBounds:                         "CheckInBounds",
	CheckInBoundsInt52:                    "CheckInBoundsInt52",
	ConstantStoragePointer:                "ConstantStoragePointer",
	Check:                                 "Check",
	CheckVarargs:                          "CheckVarargs",
	CheckArray:                            "CheckArray",
	CheckArrayOrEmpty:                     "CheckArrayOrEmpty",
	CheckDetached:                         "CheckDetached",
	CountExecution:                        "CountExecution",
	SuperSamplerBegin:                     "SuperSamplerBegin",
	SuperSamplerEnd:                       "SuperSamplerEnd",
	GetExecutable:                         "GetExecutable",
	GetScope:                              "GetScope",
	GetEvalScope:                          "GetEvalScope",
	GetCallee:                             "GetCallee",
	SetCallee:                             "SetCallee",
	GetArgumentCountIncludingThis:         "GetArgumentCountIncludingThis",
	SetArgumentCountIncludingThis:         "SetArgumentCountIncludingThis",
	ToNumber:                              "ToNumber",
	ToNumeric:                             "ToNumeric",
	ToString:                              "ToString",
	FunctionToString:                      "FunctionToString",
	FunctionBind:                          "FunctionBind",
	ToObject:                              "ToObject",
	CallObjectConstructor:                 "CallObjectConstructor",
	CallStringConstructor:                 "CallStringConstructor",
	CallNumberConstructor:                 "CallNumberConstructor",
	ObjectAssign:                          "ObjectAssign",
	ObjectCreate:                          "ObjectCreate",
	ObjectKeys:                            "ObjectKeys",
	ObjectGetOwnPropertyNames:             "ObjectGetOwnPropertyNames",
	ObjectGetOwnPropertySymbols:           "ObjectGetOwnPropertySymbols",
	ObjectToString:                        "ObjectToString",
	ReflectOwnKeys:                        "ReflectOwnKeys",
	MakeRope:                              "MakeRope",
	MakeAtomString:                        "MakeAtomString",
	NewArrayWithSize:                      "NewArrayWithSize",
	NewArrayWithConstantSize:              "NewArrayWithConstantSize",
	NewArrayWithSpecies:                   "NewArrayWithSpecies",
	NewArrayWithSizeAndStructure:          "NewArrayWithSizeAndStructure",
	TryGetById:                            "TryGetById",
	GetById:                               "GetById",
	GetByIdFlush:                          "GetByIdFlush",
	GetByIdMegamorphic:                    "GetByIdMegamorphic",
	GetByIdWithThis:                       "GetByIdWithThis",
	GetByIdWithThisMegamorphic:            "GetByIdWithThisMegamorphic",
	GetByIdDirect:                         "GetByIdDirect",
	GetByIdDirectFlush:                    "GetByIdDirectFlush",
	ToThis:                                "ToThis",
	MultiGetByOffset:                      "MultiGetByOffset",
	MultiPutByOffset:                      "MultiPutByOffset",
	MultiDeleteByOffset:                   "MultiDeleteByOffset",
	ToPrimitive:                           "ToPrimitive",
	ToPropertyKey:                         "ToPropertyKey",
	ToPropertyKeyOrNumber:                 "ToPropertyKeyOrNumber",
	Throw:                                 "Throw",
	ThrowStaticError:                      "ThrowStaticError",
	Unreachable:                           "Unreachable",
	InByVal:                               "InByVal",
	InById:                                "InById",
	InByValMegamorphic:                    "InByValMegamorphic",
	InByIdMegamorphic:                     "InByIdMegamorphic",
	HasPrivateName:                        "HasPrivateName",
	HasPrivateBrand:                       "HasPrivateBrand",
	HasOwnProperty:                        "HasOwnProperty",
	IsCellWithType:                        "IsCellWithType",
	MapHash:                               "MapHash",
	NormalizeMapKey:                       "NormalizeMapKey",
	MapGet:                                "MapGet",
	LoadMapValue:                          "LoadMapValue",
	MapIterationNext:                      "MapIterationNext",
	MapIterationEntry:                     "MapIterationEntry",
	MapIterationEntryKey:                  "MapIterationEntryKey",
	MapIterationEntryValue:                "MapIterationEntryValue",
	MapStorage:                            "MapStorage",
	MapStorageOrSentinel:                  "MapStorageOrSentinel",
	MapIteratorNext:                       "MapIteratorNext",
	MapIteratorKey:                        "MapIteratorKey",
	MapIteratorValue:                      "MapIteratorValue",
	ExtractValueFromWeakMapGet:            "ExtractValueFromWeakMapGet",
	SetAdd:                                "SetAdd",
	MapSet:                                "MapSet",
	MapOrSetDelete:                        "MapOrSetDelete",
	WeakMapGet:                            "WeakMapGet",
	WeakSetAdd:                            "WeakSetAdd",
	WeakMapSet:                            "WeakMapSet",
	IsEmpty:                               "IsEmpty",
	IsEmptyStorage:                        "IsEmptyStorage",
	TypeOfIsUndefined:                     "TypeOfIsUndefined",
	TypeOfIsObject:                        "TypeOfIsObject",
	TypeOfIsFunction:                      "TypeOfIsFunction",
	IsUndefinedOrNull:                     "IsUndefinedOrNull",
	IsBoolean:                             "IsBoolean",
	IsNumber:                              "IsNumber",
	IsBigInt:                              "IsBigInt",
	NumberIsInteger:                       "NumberIsInteger",
	GlobalIsNaN:                           "GlobalIsNaN",
	NumberIsNaN:                           "NumberIsNaN",
	GlobalIsFinite:                        "GlobalIsFinite",
	NumberIsFinite:                        "NumberIsFinite",
	NumberIsSafeInteger:                   "NumberIsSafeInteger",
	IsObject:                              "IsObject",
	IsCallable:                            "IsCallable",
	IsConstructor:                         "IsConstructor",
	IsTypedArrayView:                      "IsTypedArrayView",
	CheckTypeInfoFlags:                    "CheckTypeInfoFlags",
	HasStructureWithFlags:                 "HasStructureWithFlags",
	OverridesHasInstance:                  "OverridesHasInstance",
	InstanceOf:                            "InstanceOf",
	InstanceOfMegamorphic:                 "InstanceOfMegamorphic",
	InstanceOfCustom:                      "InstanceOfCustom",
	DoubleRep:                             "DoubleRep",
	ValueRep:                              "ValueRep",
	Int52Rep:                              "Int52Rep",
	PurifyNaN:                             "PurifyNaN",
	DoubleConstant:                        "DoubleConstant",
	Int52Constant:                         "Int52Constant",
	BooleanToNumber:                       "BooleanToNumber",
	HasIndexedProperty:                    "HasIndexedProperty",
	GetIndexedPropertyStorage:             "GetIndexedPropertyStorage",
	ResolveRope:                           "ResolveRope",
	GetPropertyEnumerator:                 "GetPropertyEnumerator",
	EnumeratorNextUpdateIndexAndMode:      "EnumeratorNextUpdateIndexAndMode",
	EnumeratorNextUpdatePropertyName:      "EnumeratorNextUpdatePropertyName",
	EnumeratorGetByVal:                    "EnumeratorGetByVal",
	EnumeratorInByVal:                     "EnumeratorInByVal",
	EnumeratorHasOwnProperty:              "EnumeratorHasOwnProperty",
	EnumeratorPutByVal:                    "EnumeratorPutByVal",
	BottomValue:                           "BottomValue",
	PhantomNewObject:                      "PhantomNewObject",
	PhantomNewArrayWithConstantSize:       "PhantomNewArrayWithConstantSize",
	PhantomNewFunction:                    "PhantomNewFunction",
	PhantomNewGeneratorFunction:           "PhantomNewGeneratorFunction",
	PhantomNewAsyncGeneratorFunction:      "PhantomNewAsyncGeneratorFunction",
	PhantomNewAsyncFunction:               "PhantomNewAsyncFunction",
	PhantomNewInternalFieldObject:         "PhantomNewInternalFieldObject",
	PhantomCreateActivation:               "PhantomCreateActivation",
	PhantomNewRegExp:                      "PhantomNewRegExp",
	PutHint:                               "PutHint",
	CheckStructureImmediate:               "CheckStructureImmediate",
	MaterializeNewObject:                  "MaterializeNewObject",
	MaterializeNewArrayWithConstantSize:   "MaterializeNewArrayWithConstantSize",
	MaterializeCreateActivation:           "MaterializeCreateActivation",
	MaterializeNewInternalFieldObject:     "MaterializeNewInternalFieldObject",
	PhantomDirectArguments:                "PhantomDirectArguments",
	PhantomCreateRest:                     "PhantomCreateRest",
	PhantomSpread:                         "PhantomSpread",
	PhantomNewArrayWithSpread:             "PhantomNewArrayWithSpread",
	PhantomNewArrayBuffer:                 "PhantomNewArrayBuffer",
	PhantomClonedArguments:                "PhantomClonedArguments",
	GetMyArgumentByVal:                    "GetMyArgumentByVal",
	GetMyArgumentByValOutOfBounds:         "GetMyArgumentByValOutOfBounds",
	ForwardVarargs:                        "ForwardVarargs",
	EntrySwitch:                           "EntrySwitch",
	Switch:                                "Switch",
	TypeOf:                                "TypeOf",
	PutById:                               "PutById",
	PutByIdDirect:                         "PutByIdDirect",
	PutByIdFlush:                          "PutByIdFlush",
	PutByIdMegamorphic:                    "PutByIdMegamorphic",
	PutByIdWithThis:                       "PutByIdWithThis",
	PutGetterById:                         "PutGetterById",
	PutSetterById:                         "PutSetterById",
	PutGetterSetterById:                   "PutGetterSetterById",
	PutGetterByVal:                        "PutGetterByVal",
	PutSetterByVal:                        "PutSetterByVal",
	DeleteById:                            "DeleteById",
	DeleteByVal:                           "DeleteByVal",
	CreateRest:                            "CreateRest",
	GetRestLength:                         "GetRestLength",
	RegExpExec:                            "RegExpExec",
	RegExpExecNonGlobalOrSticky:           "RegExpExecNonGlobalOrSticky",
	RegExpTest:                            "RegExpTest",
	RegExpTestInline:                      "RegExpTestInline",
	RegExpMatchFast:                       "RegExpMatchFast",
	RegExpMatchFastGlobal:                 "RegExpMatchFastGlobal",
	RegExpSearch:                          "RegExpSearch",
	NewRegExp:                             "NewRegExp",
	NewMap:                                "NewMap",
	NewSet:                                "NewSet",
	StringReplace:                         "StringReplace",
	StringReplaceAll:                      "StringReplaceAll",
	StringReplaceRegExp:                   "StringReplaceRegExp",
	StringReplaceString:                   "StringReplaceString",
	GetRegExpObjectLastIndex:              "GetRegExpObjectLastIndex",
	SetRegExpObjectLastIndex:              "SetRegExpObjectLastIndex",
	RecordRegExpCachedResult:              "RecordRegExpCachedResult",
	SetFunctionName:                       "SetFunctionName",
	LogShadowChickenPrologue:              "LogShadowChickenPrologue",
	LogShadowChickenTail:                  "LogShadowChickenTail",
	ResolveScope:                          "ResolveScope",
	ResolveScopeForHoistingFuncDeclInEval: "ResolveScopeForHoistingFuncDeclInEval",
	GetDynamicVar:                         "GetDynamicVar",
	PutDynamicVar:                         "PutDynamicVar",
	CompareEq:                             "CompareEq",
	CompareEqPtr:                          "CompareEqPtr",
	CompareLess:                           "CompareLess",
	CompareLessEq:                         "CompareLessEq",
	CompareGreater:                        "CompareGreater",
	CompareGreaterEq:                      "CompareGreaterEq",
	CompareBelow:                          "CompareBelow",
	CompareBelowEq:                        "CompareBelowEq",
	CompareStrictEq:                       "CompareStrictEq",
	SameValue:                             "SameValue",
	DefineDataProperty:                    "DefineDataProperty",
	DefineAccessorProperty:                "DefineAccessorProperty",
	StringValueOf:                         "StringValueOf",
	StringSlice:                           "StringSlice",
	StringSubstring:                       "StringSubstring",
	ToLowerCase:                           "ToLowerCase",
	NumberToStringWithRadix:               "NumberToStringWithRadix",
	NumberToStringWithValidRadixConstant:  "NumberToStringWithValidRadixConstant",
	CheckJSCast:                           "CheckJSCast",
	CheckNotJSCast:                        "CheckNotJSCast",
	CallDOM:                               "CallDOM",
	CallDOMGetter:                         "CallDOMGetter",
	ArraySlice:                            "ArraySlice",
	ArraySplice:                           "ArraySplice",
	ArrayIncludes:                         "ArrayIncludes",
	ArrayIndexOf:                          "ArrayIndexOf",
	ArrayPop:                              "ArrayPop",
	ArrayPush:                             "ArrayPush",
	ParseInt:                              "ParseInt",
	ToIntegerOrInfinity:                   "ToIntegerOrInfinity",
	ToLength:                              "ToLength",
	AtomicsAdd:                            "AtomicsAdd",
	AtomicsAnd:                            "AtomicsAnd",
	AtomicsCompareExchange:                "AtomicsCompareExchange",
	AtomicsExchange:                       "AtomicsExchange",
	AtomicsLoad:                           "AtomicsLoad",
	AtomicsOr:                             "AtomicsOr",
	AtomicsStore:                          "AtomicsStore",
	AtomicsSub:                            "AtomicsSub",
	AtomicsXor:                            "AtomicsXor",
	AtomicsIsLockFree:                     "AtomicsIsLockFree",
	InitializeEntrypointArguments:         "InitializeEntrypointArguments",
	CPUIntrinsic:                          "CPUIntrinsic",
	GetArrayLength:                        "GetArrayLength",
	GetUndetachedTypeArrayLength:          "GetUndetachedTypeArrayLength",
	GetTypedArrayLengthAsInt52:            "GetTypedArrayLengthAsInt52",
	GetVectorLength:                       "GetVectorLength",
	GetByVal:                              "GetByVal",
	GetByValMegamorphic:                   "GetByValMegamorphic",
	GetByValWithThis:                      "GetByValWithThis",
	GetByValWithThisMegamorphic:           "GetByValWithThisMegamorphic",
	MultiGetByVal:                         "MultiGetByVal",
	MultiPutByVal:                         "MultiPutByVal",
	PutByVal:                              "PutByVal",
	PutByValAlias:                         "PutByValAlias",
	PutByValMegamorphic:                   "PutByValMegamorphic",
	PutByValDirect:                        "PutByValDirect",
	PutByValWithThis:                      "PutByValWithThis",
	PutPrivateName:                        "PutPrivateName",
	PutPrivateNameById:                    "PutPrivateNameById",
	GetPrivateName:                        "GetPrivateName",
	GetPrivateNameById:                    "GetPrivateNameById",
	CheckPrivateBrand:                     "CheckPrivateBrand",
	SetPrivateBrand:                       "SetPrivateBrand",
	MatchStructure:                        "MatchStructure",
	FilterCallLinkStatus:                  "FilterCallLinkStatus",
	FilterGetByStatus:                     "FilterGetByStatus",
	FilterPutByStatus:                     "FilterPutByStatus",
	FilterInByStatus:                      "FilterInByStatus",
	FilterDeleteByStatus:                  "FilterDeleteByStatus",
	FilterCheckPrivateBrandStatus:         "FilterCheckPrivateBrandStatus",
	FilterSetPrivateBrandStatus:           "FilterSetPrivateBrandStatus",
	CreateThis:                            "CreateThis",
	CreatePromise:                         "CreatePromise",
	CreateGenerator:                       "CreateGenerator",
	CreateAsyncGenerator:                  "CreateAsyncGenerator",
	DataViewGetByteLength:                 "DataViewGetByteLength",
	DataViewGetByteLengthAsInt52:          "DataViewGetByteLengthAsInt52",
	DataViewGetInt:                        "DataViewGetInt",
	DataViewGetFloat:                      "DataViewGetFloat",
	DataViewSet:                           "DataViewSet",
	DateGetInt32OrNaN:                     "DateGetInt32OrNaN",
	DateGetTime:                           "DateGetTime",
	DateSetTime:                           "DateSetTime",
	Identity:                              "Identity",
	IdentityWithProfile:                   "IdentityWithProfile",
	CheckTierUpInLoop:                     "CheckTierUpInLoop",
	CheckTierUpAndOSREnter:                "CheckTierUpAndOSREnter",
	CheckTierUpAtReturn:                   "CheckTierUpAtReturn",
	FiatInt52:                             "FiatInt52",
	ArithIMul:                             "ArithIMul",
	ProfileType:                           "ProfileType",
	ProfileControlFlow:                    "ProfileControlFlow",
}

func (t NodeType) String() string {
	if t >= numNodeTypes || nodeTypeNames[t] == "" {
		panic(fmt.Sprintf("dfg: unreachable node type %d", uint16(t)))
	}
	return nodeTypeNames[t]
}
