package evaluator

import "sort"

// NewFieldMap builds a FieldMap from unsorted fields, sorting by label so
// invariant 3 (the evaluated form of a record/union is always sorted) holds
// regardless of the source order the caller assembled fields in.
func NewFieldMap(fields []Field) FieldMap {
	fm := make(FieldMap, len(fields))
	copy(fm, fields)
	sort.Slice(fm, func(i, j int) bool { return fm[i].Label < fm[j].Label })
	return fm
}

// Get returns the value for label via binary search, since FieldMap is
// always kept sorted.
func (fm FieldMap) Get(label string) (Val, bool) {
	i := sort.Search(len(fm), func(i int) bool { return fm[i].Label >= label })
	if i < len(fm) && fm[i].Label == label {
		return fm[i].Value, true
	}
	return nil, false
}

// Has reports whether label is present.
func (fm FieldMap) Has(label string) bool {
	_, ok := fm.Get(label)
	return ok
}

// Merge combines two sorted FieldMaps with a conflict resolver applied to
// labels present in both; it is the shared core of ∧/⩓/⫽ on records, each of
// which differs only in how conflicts are resolved (record.go).
func (fm FieldMap) Merge(other FieldMap, onConflict func(l, r Val) Val) FieldMap {
	out := make(FieldMap, 0, len(fm)+len(other))
	i, j := 0, 0
	for i < len(fm) && j < len(other) {
		switch {
		case fm[i].Label < other[j].Label:
			out = append(out, fm[i])
			i++
		case fm[i].Label > other[j].Label:
			out = append(out, other[j])
			j++
		default:
			out = append(out, Field{Label: fm[i].Label, Value: onConflict(fm[i].Value, other[j].Value)})
			i++
			j++
		}
	}
	out = append(out, fm[i:]...)
	out = append(out, other[j:]...)
	return out
}
