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
package ftl

import (
	"fmt"

	"github.com/launix-de/b3jit/dfg"
)

// CapabilityLevel says how far the top tier can take a graph. Levels are
// ordered; a graph gets the weakest level of any node it contains.
type CapabilityLevel uint8

const (
	CannotCompile CapabilityLevel = iota
	CanCompile
	CanCompileAndOSREnter
)

func (l CapabilityLevel) String() string {
	switch l {
	case CannotCompile:
		return "CannotCompile"
	case CanCompile:
		return "CanCompile"
	case CanCompileAndOSREnter:
		return "CanCompileAndOSREnter"
	}
	panic(fmt.Sprintf("ftl: unreachable capability level %d", uint8(l)))
}

// Meet combines two levels into the weaker one.
func (l CapabilityLevel) Meet(other CapabilityLevel) CapabilityLevel {
	if other < l {
		return other
	}
	return l
}

type nodeClass uint8

const (
	unclassified nodeClass = iota
	lowered
	noOSREntry // compiles, but blocks OSR entry
	disqualifying
)

var nodeClasses [dfg.NumNodeTypes]nodeClass
var allowedUseKinds [dfg.NumUseKinds]bool

// loweredNodes are the node types the backend has a lowering for.
var loweredNodes = [...]dfg.NodeType{
	dfg.JSConstant, dfg.LazyJSConstant, dfg.GetLocal, dfg.SetLocal, dfg.PutStack, dfg.KillStack,
	dfg.GetStack, dfg.MovHint, dfg.ZombieHint, dfg.ExitOK, dfg.Phantom, dfg.Flush, dfg.PhantomLocal,
	dfg.ExtractFromTuple, dfg.SetArgumentDefinitely, dfg.SetArgumentMaybe, dfg.Return,
	dfg.ArithBitNot, dfg.ArithBitAnd, dfg.ArithBitOr, dfg.ArithBitXor, dfg.ArithBitRShift,
	dfg.ArithBitLShift, dfg.ArithBitURShift, dfg.CheckStructure, dfg.CheckStructureOrEmpty,
	dfg.DoubleAsInt32, dfg.Arrayify, dfg.ArrayifyToStructure, dfg.PutStructure, dfg.GetButterfly,
	dfg.NewObject, dfg.NewGenerator, dfg.NewAsyncGenerator, dfg.NewStringObject, dfg.NewRegExpUntyped,
	dfg.NewSymbol, dfg.NewArray, dfg.NewArrayWithSpread, dfg.NewInternalFieldObject, dfg.Spread,
	dfg.NewArrayBuffer, dfg.NewTypedArray, dfg.NewTypedArrayBuffer, dfg.GetByOffset,
	dfg.GetGetterSetterByOffset, dfg.GetGetter, dfg.GetSetter, dfg.PutByOffset, dfg.GetGlobalVar,
	dfg.GetGlobalLexicalVariable, dfg.PutGlobalVariable, dfg.ValueBitAnd, dfg.ValueBitXor,
	dfg.ValueBitOr, dfg.ValueBitNot, dfg.ValueBitLShift, dfg.ValueBitRShift, dfg.ValueBitURShift,
	dfg.ValueNegate, dfg.ValueAdd, dfg.ValueSub, dfg.ValueMul, dfg.ValueDiv, dfg.ValueMod,
	dfg.ValuePow, dfg.Inc, dfg.Dec, dfg.StrCat, dfg.ArithAdd, dfg.ArithClz32, dfg.ArithSub,
	dfg.ArithMul, dfg.ArithDiv, dfg.ArithMod, dfg.ArithMin, dfg.ArithMax, dfg.ArithAbs, dfg.ArithPow,
	dfg.ArithRandom, dfg.ArithRound, dfg.ArithFloor, dfg.ArithCeil, dfg.ArithTrunc, dfg.ArithSqrt,
	dfg.ArithFRound, dfg.ArithF16Round, dfg.ArithNegate, dfg.ArithUnary, dfg.UInt32ToNumber, dfg.Jump,
	dfg.ForceOSRExit, dfg.Phi, dfg.Upsilon, dfg.ExtractOSREntryLocal, dfg.ExtractCatchLocal,
	dfg.ClearCatchLocals, dfg.LoopHint, dfg.SkipScope, dfg.GetGlobalObject, dfg.GetGlobalThis,
	dfg.UnwrapGlobalProxy, dfg.CreateActivation, dfg.PushWithScope, dfg.NewFunction,
	dfg.NewGeneratorFunction, dfg.NewAsyncFunction, dfg.NewAsyncGeneratorFunction,
	dfg.NewBoundFunction, dfg.GetClosureVar, dfg.PutClosureVar, dfg.GetInternalField,
	dfg.PutInternalField, dfg.CreateDirectArguments, dfg.CreateScopedArguments,
	dfg.CreateClonedArguments, dfg.GetFromArguments, dfg.PutToArguments, dfg.GetArgument,
	dfg.InvalidationPoint, dfg.StringAt, dfg.StringCharAt, dfg.StringLocaleCompare,
	dfg.CheckIsConstant, dfg.CheckBadValue, dfg.CheckNotEmpty, dfg.AssertNotEmpty, dfg.CheckIdent,
	dfg.CheckTraps, dfg.StringCharCodeAt, dfg.StringCodePointAt, dfg.StringFromCharCode,
	dfg.StringIndexOf, dfg.AllocatePropertyStorage, dfg.ReallocatePropertyStorage,
	dfg.NukeStructureAndSetButterfly, dfg.GetTypedArrayByteOffset, dfg.GetTypedArrayByteOffsetAsInt52,
	dfg.GetPrototypeOf, dfg.GetWebAssemblyInstanceExports, dfg.NotifyWrite, dfg.StoreBarrier,
	dfg.FencedStoreBarrier, dfg.Call, dfg.DirectCall, dfg.TailCall, dfg.DirectTailCall,
	dfg.TailCallInlinedCaller, dfg.DirectTailCallInlinedCaller, dfg.Construct, dfg.DirectConstruct,
	dfg.CallVarargs, dfg.CallDirectEval, dfg.TailCallVarargs, dfg.TailCallVarargsInlinedCaller,
	dfg.ConstructVarargs, dfg.CallForwardVarargs, dfg.TailCallForwardVarargs,
	dfg.TailCallForwardVarargsInlinedCaller, dfg.ConstructForwardVarargs, dfg.CallWasm,
	dfg.CallCustomAccessorGetter, dfg.CallCustomAccessorSetter, dfg.VarargsLength, dfg.LoadVarargs,
	dfg.ValueToInt32, dfg.Branch, dfg.ToBoolean, dfg.LogicalNot, dfg.AssertInBounds,
	dfg.CheckInBounds, dfg.CheckInBoundsInt52, dfg.ConstantStoragePointer, dfg.Check,
	dfg.CheckVarargs, dfg.CheckArray, dfg.CheckArrayOrEmpty, dfg.CheckDetached, dfg.CountExecution,
	dfg.SuperSamplerBegin, dfg.SuperSamplerEnd, dfg.GetExecutable, dfg.GetScope, dfg.GetEvalScope,
	dfg.GetCallee, dfg.SetCallee, dfg.GetArgumentCountIncludingThis,
	dfg.SetArgumentCountIncludingThis, dfg.ToNumber, dfg.ToNumeric, dfg.ToString,
	dfg.FunctionToString, dfg.FunctionBind, dfg.ToObject, dfg.CallObjectConstructor,
	dfg.CallStringConstructor, dfg.CallNumberConstructor, dfg.ObjectAssign, dfg.ObjectCreate,
	dfg.ObjectKeys, dfg.ObjectGetOwnPropertyNames, dfg.ObjectGetOwnPropertySymbols,
	dfg.ObjectToString, dfg.ReflectOwnKeys, dfg.MakeRope, dfg.MakeAtomString, dfg.NewArrayWithSize,
	dfg.NewArrayWithConstantSize, dfg.NewArrayWithSpecies, dfg.NewArrayWithSizeAndStructure,
	dfg.TryGetById, dfg.GetById, dfg.GetByIdFlush, dfg.GetByIdMegamorphic, dfg.GetByIdWithThis,
	dfg.GetByIdWithThisMegamorphic, dfg.GetByIdDirect, dfg.GetByIdDirectFlush, dfg.ToThis,
	dfg.MultiGetByOffset, dfg.MultiPutByOffset, dfg.MultiDeleteByOffset, dfg.ToPrimitive,
	dfg.ToPropertyKey, dfg.ToPropertyKeyOrNumber, dfg.Throw, dfg.ThrowStaticError, dfg.Unreachable,
	dfg.InByVal, dfg.InById, dfg.InByValMegamorphic, dfg.InByIdMegamorphic, dfg.HasPrivateName,
	dfg.HasPrivateBrand, dfg.HasOwnProperty, dfg.IsCellWithType, dfg.MapHash, dfg.NormalizeMapKey,
	dfg.MapGet, dfg.LoadMapValue, dfg.MapIterationNext, dfg.MapIterationEntry,
	dfg.MapIterationEntryKey, dfg.MapIterationEntryValue, dfg.MapStorage, dfg.MapStorageOrSentinel,
	dfg.MapIteratorNext, dfg.MapIteratorKey, dfg.MapIteratorValue, dfg.ExtractValueFromWeakMapGet,
	dfg.SetAdd, dfg.MapSet, dfg.MapOrSetDelete, dfg.WeakMapGet, dfg.WeakSetAdd, dfg.WeakMapSet,
	dfg.IsEmpty, dfg.IsEmptyStorage, dfg.TypeOfIsUndefined, dfg.TypeOfIsObject, dfg.TypeOfIsFunction,
	dfg.IsUndefinedOrNull, dfg.IsBoolean, dfg.IsNumber, dfg.IsBigInt, dfg.NumberIsInteger,
	dfg.GlobalIsNaN, dfg.NumberIsNaN, dfg.GlobalIsFinite, dfg.NumberIsFinite, dfg.NumberIsSafeInteger,
	dfg.IsObject, dfg.IsCallable, dfg.IsConstructor, dfg.IsTypedArrayView, dfg.CheckTypeInfoFlags,
	dfg.HasStructureWithFlags, dfg.OverridesHasInstance, dfg.InstanceOf, dfg.InstanceOfMegamorphic,
	dfg.InstanceOfCustom, dfg.DoubleRep, dfg.ValueRep, dfg.Int52Rep, dfg.PurifyNaN,
	dfg.DoubleConstant, dfg.Int52Constant, dfg.BooleanToNumber, dfg.HasIndexedProperty,
	dfg.GetIndexedPropertyStorage, dfg.ResolveRope, dfg.GetPropertyEnumerator,
	dfg.EnumeratorNextUpdateIndexAndMode, dfg.EnumeratorNextUpdatePropertyName,
	dfg.EnumeratorGetByVal, dfg.EnumeratorInByVal, dfg.EnumeratorHasOwnProperty,
	dfg.EnumeratorPutByVal, dfg.BottomValue, dfg.PhantomNewObject,
	dfg.PhantomNewArrayWithConstantSize, dfg.PhantomNewFunction, dfg.PhantomNewGeneratorFunction,
	dfg.PhantomNewAsyncGeneratorFunction, dfg.PhantomNewAsyncFunction,
	dfg.PhantomNewInternalFieldObject, dfg.PhantomCreateActivation, dfg.PhantomNewRegExp, dfg.PutHint,
	dfg.CheckStructureImmediate, dfg.MaterializeNewObject, dfg.MaterializeNewArrayWithConstantSize,
	dfg.MaterializeCreateActivation, dfg.MaterializeNewInternalFieldObject,
	dfg.PhantomDirectArguments, dfg.PhantomCreateRest, dfg.PhantomSpread,
	dfg.PhantomNewArrayWithSpread, dfg.PhantomNewArrayBuffer, dfg.PhantomClonedArguments,
	dfg.GetMyArgumentByVal, dfg.GetMyArgumentByValOutOfBounds, dfg.ForwardVarargs, dfg.EntrySwitch,
	dfg.Switch, dfg.TypeOf, dfg.PutById, dfg.PutByIdDirect, dfg.PutByIdFlush, dfg.PutByIdMegamorphic,
	dfg.PutByIdWithThis, dfg.PutGetterById, dfg.PutSetterById, dfg.PutGetterSetterById,
	dfg.PutGetterByVal, dfg.PutSetterByVal, dfg.DeleteById, dfg.DeleteByVal, dfg.CreateRest,
	dfg.GetRestLength, dfg.RegExpExec, dfg.RegExpExecNonGlobalOrSticky, dfg.RegExpTest,
	dfg.RegExpTestInline, dfg.RegExpMatchFast, dfg.RegExpMatchFastGlobal, dfg.RegExpSearch,
	dfg.NewRegExp, dfg.NewMap, dfg.NewSet, dfg.StringReplace, dfg.StringReplaceAll,
	dfg.StringReplaceRegExp, dfg.StringReplaceString, dfg.GetRegExpObjectLastIndex,
	dfg.SetRegExpObjectLastIndex, dfg.RecordRegExpCachedResult, dfg.SetFunctionName,
	dfg.LogShadowChickenPrologue, dfg.LogShadowChickenTail, dfg.ResolveScope,
	dfg.ResolveScopeForHoistingFuncDeclInEval, dfg.GetDynamicVar, dfg.PutDynamicVar, dfg.CompareEq,
	dfg.CompareEqPtr, dfg.CompareLess, dfg.CompareLessEq, dfg.CompareGreater, dfg.CompareGreaterEq,
	dfg.CompareBelow, dfg.CompareBelowEq, dfg.CompareStrictEq, dfg.SameValue, dfg.DefineDataProperty,
	dfg.DefineAccessorProperty, dfg.StringValueOf, dfg.StringSlice, dfg.StringSubstring,
	dfg.ToLowerCase, dfg.NumberToStringWithRadix, dfg.NumberToStringWithValidRadixConstant,
	dfg.CheckJSCast, dfg.CheckNotJSCast, dfg.CallDOM, dfg.CallDOMGetter, dfg.ArraySlice,
	dfg.ArraySplice, dfg.ArrayIncludes, dfg.ArrayIndexOf, dfg.ArrayPop, dfg.ArrayPush, dfg.ParseInt,
	dfg.ToIntegerOrInfinity, dfg.ToLength, dfg.AtomicsAdd, dfg.AtomicsAnd, dfg.AtomicsCompareExchange,
	dfg.AtomicsExchange, dfg.AtomicsLoad, dfg.AtomicsOr, dfg.AtomicsStore, dfg.AtomicsSub,
	dfg.AtomicsXor, dfg.AtomicsIsLockFree, dfg.InitializeEntrypointArguments, dfg.CPUIntrinsic,
	dfg.GetArrayLength, dfg.GetUndetachedTypeArrayLength, dfg.GetTypedArrayLengthAsInt52,
	dfg.GetVectorLength, dfg.GetByVal, dfg.GetByValMegamorphic, dfg.GetByValWithThis,
	dfg.GetByValWithThisMegamorphic, dfg.MultiGetByVal, dfg.MultiPutByVal, dfg.PutByVal,
	dfg.PutByValAlias, dfg.PutByValMegamorphic, dfg.PutByValDirect, dfg.PutByValWithThis,
	dfg.PutPrivateName, dfg.PutPrivateNameById, dfg.GetPrivateName, dfg.GetPrivateNameById,
	dfg.CheckPrivateBrand, dfg.SetPrivateBrand, dfg.MatchStructure, dfg.FilterCallLinkStatus,
	dfg.FilterGetByStatus, dfg.FilterPutByStatus, dfg.FilterInByStatus, dfg.FilterDeleteByStatus,
	dfg.FilterCheckPrivateBrandStatus, dfg.FilterSetPrivateBrandStatus, dfg.CreateThis,
	dfg.CreatePromise, dfg.CreateGenerator, dfg.CreateAsyncGenerator, dfg.DataViewGetByteLength,
	dfg.DataViewGetByteLengthAsInt52, dfg.DataViewGetInt, dfg.DataViewGetFloat, dfg.DataViewSet,
	dfg.DateGetInt32OrNaN, dfg.DateGetTime, dfg.DateSetTime,
}

var disqualifyingNodes = [...]dfg.NodeType{
	dfg.IdentityWithProfile, dfg.CheckTierUpInLoop, dfg.CheckTierUpAndOSREnter, dfg.CheckTierUpAtReturn,
	dfg.FiatInt52, dfg.ArithIMul, dfg.ProfileType, dfg.ProfileControlFlow,
}

var loweredUseKinds = [...]dfg.UseKind{
	dfg.UntypedUse, dfg.Int32Use, dfg.KnownInt32Use, dfg.Int52RepUse, dfg.NumberUse, dfg.RealNumberUse,
	dfg.DoubleRepUse, dfg.DoubleRepRealUse, dfg.BooleanUse, dfg.KnownBooleanUse, dfg.CellUse,
	dfg.KnownCellUse, dfg.CellOrOtherUse, dfg.ObjectUse, dfg.ArrayUse, dfg.FunctionUse,
	dfg.ObjectOrOtherUse, dfg.StringUse, dfg.StringOrOtherUse, dfg.KnownStringUse,
	dfg.KnownPrimitiveUse, dfg.StringObjectUse, dfg.StringOrStringObjectUse, dfg.SymbolUse,
	dfg.AnyBigIntUse, dfg.BigInt32Use, dfg.HeapBigIntUse, dfg.DateObjectUse, dfg.MapObjectUse,
	dfg.MapIteratorObjectUse, dfg.SetObjectUse, dfg.SetIteratorObjectUse, dfg.WeakMapObjectUse,
	dfg.WeakSetObjectUse, dfg.DataViewObjectUse, dfg.FinalObjectUse, dfg.PromiseObjectUse,
	dfg.RegExpObjectUse, dfg.ProxyObjectUse, dfg.GlobalProxyUse, dfg.DerivedArrayUse, dfg.NotCellUse,
	dfg.NotCellNorBigIntUse, dfg.OtherUse, dfg.KnownOtherUse, dfg.MiscUse, dfg.StringIdentUse,
	dfg.NotStringVarUse, dfg.NotSymbolUse, dfg.AnyIntUse, dfg.DoubleRepAnyIntUse, dfg.NotDoubleUse,
	dfg.NeitherDoubleNorHeapBigIntUse, dfg.NeitherDoubleNorHeapBigIntNorStringUse,
}

func classify(op dfg.NodeType, c nodeClass) {
	if nodeClasses[op] != unclassified {
		panic("ftl: node type classified twice: " + op.String())
	}
	nodeClasses[op] = c
}

func init() {
	for _, op := range loweredNodes {
		classify(op, lowered)
	}
	classify(dfg.Identity, noOSREntry)
	for _, op := range disqualifyingNodes {
		classify(op, disqualifying)
	}
	for op, c := range nodeClasses {
		if c == unclassified {
			panic("ftl: node type without capability class: " + dfg.NodeType(op).String())
		}
	}
	for _, k := range loweredUseKinds {
		allowedUseKinds[k] = true
	}
}

// NodeLevel classifies a single node type, ignoring its edges.
func NodeLevel(op dfg.NodeType) CapabilityLevel {
	switch nodeClasses[op] {
	case lowered:
		return CanCompileAndOSREnter
	case noOSREntry:
		return CanCompile
	case disqualifying:
		return CannotCompile
	}
	panic("ftl: unreachable node class for " + op.String())
}

// UseKindSupported reports whether the backend can lower an edge of kind k.
func UseKindSupported(k dfg.UseKind) bool {
	return allowedUseKinds[k]
}
