package evaluator

// Env is the evaluation environment: a snoc-list of frames, nil representing
// Empty. Extend frames bind a name to a value; Skip frames reserve a slot
// for a name without giving it a value yet, used while quoting/converting
// under a binder whose variable has no value of its own (see Skip below).
type Env struct {
	parent *Env
	name   string
	value  Val // nil for a Skip frame
	skip   bool
}

// Extend returns a new environment that additionally binds name to v.
func Extend(env *Env, name string, v Val) *Env {
	return &Env{parent: env, name: name, value: v}
}

// Skip returns a new environment that reserves a binding for name with no
// value — used when descending under a binder during quoting/conversion,
// where the bound variable becomes a rigid VVar rather than a concrete
// value.
func Skip(env *Env, name string) *Env {
	return &Env{parent: env, name: name, skip: true}
}

// Lookup resolves a count-based reference (name, index): the index-th
// enclosing binder of name, counting outward from the innermost (0-based).
// A reference that escapes every frame is a free variable — tolerated
// rather than rejected (spec.md §4.2), represented as a rigid variable at
// negative level -index-1 so it round-trips through quoting without
// colliding with any binder the evaluator did resolve.
func Lookup(env *Env, name string, index int) Val {
	for f := env; f != nil; f = f.parent {
		if f.name != name {
			continue
		}
		if index == 0 {
			if f.skip {
				return &VVar{Name: name, Index: CountEnv(f.parent, name)}
			}
			return f.value
		}
		index--
	}
	return &VVar{Name: name, Index: -index - 1}
}

// Instantiate evaluates a closure's body under its captured environment
// extended by one more binding of the closure's name to v.
func Instantiate(cl *Closure, v Val) Val {
	return Eval(Extend(cl.Env, cl.Name, v), cl.Body)
}

// CountEnv returns the number of Extend/Skip frames already bound to name in
// env — the count a freshly introduced binder of the same name must use so
// its rigid variable doesn't collide with an outer one of the same name.
func CountEnv(env *Env, name string) int {
	n := 0
	for f := env; f != nil; f = f.parent {
		if f.name == name {
			n++
		}
	}
	return n
}
