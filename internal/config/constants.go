// Package config holds constants shared across the vellum core, its CLI,
// and its domain-stack components — in the style of funvibe-funxy's own
// internal/config/constants.go, which is a plain constants package with no
// config-file library behind it (the pack has no example of one; vellum's
// CLI is flag-only, see cmd/vellum).
package config

// Version is the current vellum version.
var Version = "0.1.0"

// BuiltinInfo describes one entry of the fixed builtin surface from
// spec.md §6: its arity (how many arguments must be supplied before a
// reduction rule fires) and whether it denotes a primitive type rather than
// a function.
type BuiltinInfo struct {
	Arity     int
	IsPrimTyp bool
}

// Builtins is the exact set spec.md §6 requires the core to recognize.
// Universe constants (Type, Kind, Sort) and Some are not here: they are
// their own ast node kinds (ast.Const, ast.Some), not name-dispatched
// builtins.
var Builtins = map[string]BuiltinInfo{
	"Bool":     {Arity: 0, IsPrimTyp: true},
	"Natural":  {Arity: 0, IsPrimTyp: true},
	"Integer":  {Arity: 0, IsPrimTyp: true},
	"Double":   {Arity: 0, IsPrimTyp: true},
	"Text":     {Arity: 0, IsPrimTyp: true},
	"List":     {Arity: 0, IsPrimTyp: true},
	"Optional": {Arity: 0, IsPrimTyp: true},

	"None": {Arity: 1},

	"Natural/fold":      {Arity: 4},
	"Natural/build":     {Arity: 1},
	"Natural/isZero":    {Arity: 1},
	"Natural/even":      {Arity: 1},
	"Natural/odd":       {Arity: 1},
	"Natural/toInteger": {Arity: 1},
	"Natural/show":      {Arity: 1},
	"Natural/subtract":  {Arity: 2},
	"Integer/show":      {Arity: 1},
	"Integer/toDouble":  {Arity: 1},
	"Double/show":       {Arity: 1},
	"Text/show":         {Arity: 1},
	"List/build":        {Arity: 2},
	"List/fold":         {Arity: 5},
	"List/length":       {Arity: 2},
	"List/head":         {Arity: 2},
	"List/last":         {Arity: 2},
	"List/indexed":      {Arity: 2},
	"List/reverse":      {Arity: 2},
	"Optional/fold":     {Arity: 5},
	"Optional/build":    {Arity: 2},
}

// DefaultCachePath is the content-addressed normal-form cache database
// (internal/cache) that `vellum cache` and cmd/vellumd open when the caller
// doesn't override it with -cache. `vellum serve` uses no cache unless
// -cache is given, and `vellum normalize` never uses one.
const DefaultCachePath = "vellum-cache.db"

// DefaultRPCAddr is the address `vellum serve`/`cmd/vellumd` bind to by
// default.
const DefaultRPCAddr = "127.0.0.1:7824"

// InternalErrorMessage is the fixed, human-readable text every
// InternalInconsistency surfaces with (spec.md §7): a compiler bug, not a
// caller mistake.
const InternalErrorMessage = "internal error: the evaluator hit a shape a well-typed expression cannot produce; this is a vellum bug, please report it"
