package evaluator

import (
	"math/big"
	"testing"

	"github.com/vellum-lang/vellum/internal/ast"
)

func applyAll(fn Val, args ...Val) Val {
	v := fn
	for _, a := range args {
		v = ApplyVal(nil, v, a)
	}
	return v
}

func TestNaturalFoldCountsUpSuccessor(t *testing.T) {
	succ := &VHLam{Info: Typed{Name: "x", Type: natTypeVal}, Fn: func(x Val) Val {
		return &VNatural{Value: new(big.Int).Add(x.(*VNatural).Value, bigOne)}
	}}
	v := applyAll(&VBuiltin{Name: "Natural/fold"}, &VNatural{Value: big.NewInt(3)}, natTypeVal, succ, &VNatural{Value: big.NewInt(0)})
	n, ok := v.(*VNatural)
	if !ok || n.Value.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Natural/fold 3 Natural succ 0 = %#v, want VNatural(3)", v)
	}
}

func TestNaturalBuildFuseWithFold(t *testing.T) {
	// Natural/build (Natural/fold 7) fuses to 7 directly, without ever
	// invoking succ/zero.
	fold := applyAll(&VBuiltin{Name: "Natural/fold"}, &VNatural{Value: big.NewInt(7)})
	v := ApplyVal(nil, &VBuiltin{Name: "Natural/build"}, fold)
	n, ok := v.(*VNatural)
	if !ok || n.Value.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("Natural/build (Natural/fold 7) = %#v, want VNatural(7) via fusion", v)
	}
}

func TestNaturalSubtractRules(t *testing.T) {
	zero := &VNatural{Value: big.NewInt(0)}
	stuckVar := &VVar{Name: "n", Index: 0}

	// 0 - n = n (identity)
	if got := reduceNaturalSubtract(nil, []Val{zero, stuckVar}); got != stuckVar {
		t.Errorf("Natural/subtract 0 n = %#v, want n unchanged", got)
	}
	// n - n = 0 (convertible arguments)
	got := reduceNaturalSubtract(nil, []Val{stuckVar, stuckVar})
	n, ok := got.(*VNatural)
	if !ok || n.Value.Sign() != 0 {
		t.Errorf("Natural/subtract n n = %#v, want VNatural(0)", got)
	}
	// literal subtraction floors at 0
	got = reduceNaturalSubtract(nil, []Val{&VNatural{Value: big.NewInt(10)}, &VNatural{Value: big.NewInt(3)}})
	n, ok = got.(*VNatural)
	if !ok || n.Value.Sign() != 0 {
		t.Errorf("Natural/subtract 10 3 = %#v, want VNatural(0) (floored, since subtrahend > minuend)", got)
	}
}

func TestListBuildFuseWithFold(t *testing.T) {
	elemT := natTypeVal
	xs := &VList{Type: elemT, Elems: []Val{&VNatural{Value: big.NewInt(1)}, &VNatural{Value: big.NewInt(2)}}}
	fold := applyAll(&VBuiltin{Name: "List/fold"}, elemT, xs)
	v := ApplyVal(nil, &VBuiltin{Name: "List/build"}, elemT)
	v = ApplyVal(nil, v, fold)
	lst, ok := v.(*VList)
	if !ok || len(lst.Elems) != 2 {
		t.Errorf("List/build elemT (List/fold elemT xs) = %#v, want xs back via fusion", v)
	}
}

func TestListLengthHeadLast(t *testing.T) {
	elemT := natTypeVal
	xs := &VList{Type: elemT, Elems: []Val{&VNatural{Value: big.NewInt(1)}, &VNatural{Value: big.NewInt(2)}}}

	if got := reduceListLength(nil, []Val{elemT, xs}); got.(*VNatural).Value.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("List/length = %#v, want 2", got)
	}
	head := reduceListHead(nil, []Val{elemT, xs})
	some, ok := head.(*VSome)
	if !ok || some.Value.(*VNatural).Value.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("List/head = %#v, want Some(1)", head)
	}
	last := reduceListLast(nil, []Val{elemT, xs})
	some, ok = last.(*VSome)
	if !ok || some.Value.(*VNatural).Value.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("List/last = %#v, want Some(2)", last)
	}

	empty := &VList{Type: elemT, Elems: nil}
	if _, ok := reduceListHead(nil, []Val{elemT, empty}).(*VNone); !ok {
		t.Errorf("List/head [] should be None")
	}
}

func TestListReverse(t *testing.T) {
	elemT := natTypeVal
	xs := &VList{Type: elemT, Elems: []Val{&VNatural{Value: big.NewInt(1)}, &VNatural{Value: big.NewInt(2)}, &VNatural{Value: big.NewInt(3)}}}
	got := reduceListReverse(nil, []Val{elemT, xs}).(*VList)
	want := []int64{3, 2, 1}
	for i, w := range want {
		if got.Elems[i].(*VNatural).Value.Cmp(big.NewInt(w)) != 0 {
			t.Errorf("List/reverse[%d] = %v, want %d", i, got.Elems[i], w)
		}
	}
}

func TestOptionalFoldBothBranches(t *testing.T) {
	just := &VHLam{Info: Typed{Name: "x", Type: natTypeVal}, Fn: func(x Val) Val { return x }}
	nothing := &VNatural{Value: big.NewInt(0)}

	got := reduceOptionalFold(nil, []Val{natTypeVal, &VSome{Value: &VNatural{Value: big.NewInt(5)}}, natTypeVal, just, nothing})
	if n, ok := got.(*VNatural); !ok || n.Value.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("Optional/fold (Some 5) = %#v, want VNatural(5)", got)
	}

	got = reduceOptionalFold(nil, []Val{natTypeVal, &VNone{Type: natTypeVal}, natTypeVal, just, nothing})
	if got != nothing {
		t.Errorf("Optional/fold None = %#v, want the nothing branch unchanged", got)
	}
}

func TestCombineMergesDisjointRecordsRecursively(t *testing.T) {
	l := &VRecordLit{Fields: NewFieldMap([]Field{
		{Label: "a", Value: &VNatural{Value: big.NewInt(1)}},
		{Label: "nested", Value: &VRecordLit{Fields: NewFieldMap([]Field{{Label: "x", Value: &VBool{Value: true}}})}},
	})}
	r := &VRecordLit{Fields: NewFieldMap([]Field{
		{Label: "b", Value: &VNatural{Value: big.NewInt(2)}},
		{Label: "nested", Value: &VRecordLit{Fields: NewFieldMap([]Field{{Label: "y", Value: &VBool{Value: false}}})}},
	})}
	got := reduceCombine(l, r)
	rec, ok := got.(*VRecordLit)
	if !ok || len(rec.Fields) != 3 {
		t.Fatalf("reduceCombine = %#v, want a 3-field record", got)
	}
	nested, ok := rec.Fields.Get("nested")
	if !ok {
		t.Fatal("missing merged \"nested\" field")
	}
	nrec := nested.(*VRecordLit)
	if len(nrec.Fields) != 2 {
		t.Errorf("nested merge = %#v, want both x and y", nrec)
	}
}

func TestPreferRightBiasedOnConflict(t *testing.T) {
	l := &VRecordLit{Fields: NewFieldMap([]Field{{Label: "a", Value: &VNatural{Value: big.NewInt(1)}}})}
	r := &VRecordLit{Fields: NewFieldMap([]Field{{Label: "a", Value: &VNatural{Value: big.NewInt(2)}}})}
	got := reducePrefer(nil, l, r).(*VRecordLit)
	v, _ := got.Fields.Get("a")
	if v.(*VNatural).Value.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("Prefer favors l's value %v, want r's value 2", v)
	}
}

func TestFieldAccessOnUnionTypeBuildsInjector(t *testing.T) {
	ut := &VUnionType{Alts: NewFieldMap([]Field{{Label: "A"}, {Label: "B", Value: natTypeVal}})}
	nullary := reduceField(nil, ut, "A")
	inj, ok := nullary.(*VInject)
	if !ok || inj.Label != "A" || inj.Value != nil {
		t.Errorf("Field(UnionType, A) = %#v, want nullary VInject{A}", nullary)
	}

	ctor := reduceField(nil, ut, "B")
	hlam, ok := ctor.(*VHLam)
	if !ok {
		t.Fatalf("Field(UnionType, B) = %#v, want *VHLam constructor", ctor)
	}
	applied := hlam.Fn(&VNatural{Value: big.NewInt(9)})
	injB, ok := applied.(*VInject)
	if !ok || injB.Label != "B" || injB.Value.(*VNatural).Value.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("applying B's constructor = %#v, want VInject{B, 9}", applied)
	}
}

func TestMergeDispatchesOnInjectionLabel(t *testing.T) {
	union := &VInject{
		Alts:  NewFieldMap([]Field{{Label: "A"}, {Label: "B", Value: natTypeVal}}),
		Label: "B",
		Value: &VNatural{Value: big.NewInt(4)},
	}
	handlers := &VRecordLit{Fields: NewFieldMap([]Field{
		{Label: "A", Value: &VNatural{Value: big.NewInt(0)}},
		{Label: "B", Value: &VHLam{Info: Typed{Name: "x", Type: natTypeVal}, Fn: func(x Val) Val {
			return reduceNaturalBinop(ast.NaturalPlus, x, &VNatural{Value: big.NewInt(1)})
		}}},
	})}
	got := reduceMerge(nil, handlers, union)
	n, ok := got.(*VNatural)
	if !ok || n.Value.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("merge { B = \\x -> x+1, ... } (B 4) = %#v, want VNatural(5)", got)
	}
}

func TestMergeDispatchesOverOptional(t *testing.T) {
	// spec.md §8 concrete scenario 3: merge { Some = \x -> x, None = 0 } (Some 5) = 5
	handlers := &VRecordLit{Fields: NewFieldMap([]Field{
		{Label: "Some", Value: &VHLam{Info: Typed{Name: "x", Type: natTypeVal}, Fn: func(x Val) Val { return x }}},
		{Label: "None", Value: &VNatural{Value: big.NewInt(0)}},
	})}

	got := reduceMerge(nil, handlers, &VSome{Value: &VNatural{Value: big.NewInt(5)}})
	if n, ok := got.(*VNatural); !ok || n.Value.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("merge {Some,None} (Some 5) = %#v, want VNatural(5)", got)
	}

	got = reduceMerge(nil, handlers, &VNone{Type: natTypeVal})
	if n, ok := got.(*VNatural); !ok || n.Value.Sign() != 0 {
		t.Errorf("merge {Some,None} None = %#v, want VNatural(0)", got)
	}
}

func TestToMapSortsByLabel(t *testing.T) {
	rec := &VRecordLit{Fields: NewFieldMap([]Field{
		{Label: "z", Value: &VNatural{Value: big.NewInt(1)}},
		{Label: "a", Value: &VNatural{Value: big.NewInt(2)}},
	})}
	got := reduceToMap(rec, nil).(*VList)
	if len(got.Elems) != 2 {
		t.Fatalf("toMap produced %d entries, want 2", len(got.Elems))
	}
	first := got.Elems[0].(*VRecordLit)
	key, _ := first.Fields.Get("mapKey")
	if key.(*VTextLit).Suffix != "a" {
		t.Errorf("toMap first entry key = %v, want \"a\" (FieldMap is label-sorted)", key)
	}
}
