// Package value implements the dynamic, tagged-union data model that a
// compiled matcher tree is built from and evaluated against: scalars,
// ordered arrays, ordered maps, opaque regex handles, and opaque host
// pointers resolved through a converter hook.
package value

import (
	"fmt"
	"strings"
)

// Kind discriminates the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindMap
	KindRegex
	KindPointer
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindRegex:
		return "regex"
	case KindPointer:
		return "pointer"
	default:
		return "unsupported"
	}
}

// RegexHandle is satisfied by whatever the registered regex adapter uses to
// represent a compiled pattern. mongory-go never inspects it directly; it
// is only ever handed back to the regex adapter's match/stringify hooks.
type RegexHandle any

// Value is a tagged union over every shape a query condition or a host
// record field can take. It is a struct rather than an interface so that
// scalars never need boxing, matching the "sealed sum type, matched in one
// place" shape recommended over one-interface-per-variant.
type Value struct {
	Kind Kind

	b       bool
	i       int64
	d       float64
	s       string
	a       *Array
	m       *Map
	re      RegexHandle
	ptr     any
	missing bool
}

func Null() *Value                 { return &Value{Kind: KindNull} }

// Missing is the sentinel a field lookup returns when a key or index is
// absent, distinct from an explicit Null value so $exists/$present can tell
// "the field isn't there" apart from "the field is there and holds null".
// It still compares as Null everywhere else, matching the original's
// treatment of an absent field as null for every operator but existence
// checks; String() renders it as "<missing>" rather than "null".
func Missing() *Value              { return &Value{Kind: KindNull, missing: true} }
func Bool(b bool) *Value           { return &Value{Kind: KindBool, b: b} }
func Int(i int64) *Value           { return &Value{Kind: KindInt, i: i} }
func Double(d float64) *Value      { return &Value{Kind: KindDouble, d: d} }
func String(s string) *Value       { return &Value{Kind: KindString, s: s} }
func FromArray(a *Array) *Value    { return &Value{Kind: KindArray, a: a} }
func FromMap(m *Map) *Value        { return &Value{Kind: KindMap, m: m} }
func Regex(h RegexHandle) *Value   { return &Value{Kind: KindRegex, re: h} }
func Pointer(p any) *Value         { return &Value{Kind: KindPointer, ptr: p} }
func Unsupported(p any) *Value     { return &Value{Kind: KindUnsupported, ptr: p} }

func (v *Value) IsNull() bool { return v == nil || v.Kind == KindNull }

// IsMissing reports whether v is the sentinel a field lookup returns for an
// absent key or index, as opposed to a present field that holds an explicit
// null. Every other Value, including a plain Null(), reports false.
func (v *Value) IsMissing() bool { return v != nil && v.Kind == KindNull && v.missing }

func (v *Value) Bool() bool { return v.b }
func (v *Value) Int() int64 { return v.i }

// Double returns the numeric value as a float64, promoting Int values so
// callers doing numeric comparisons never need a separate Int branch.
func (v *Value) Double() float64 {
	if v.Kind == KindInt {
		return float64(v.i)
	}
	return v.d
}
func (v *Value) Str() string     { return v.s }
func (v *Value) Array() *Array   { return v.a }
func (v *Value) Map() *Map       { return v.m }
func (v *Value) RegexHandle() RegexHandle { return v.re }
func (v *Value) Ptr() any        { return v.ptr }

func (v *Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindDouble }

// Ordering is the result of comparing two Values.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
	Incomparable
)

// Compare implements the comparison table: numeric cross-comparison between
// Int and Double, lexicographic String/String, size-then-elementwise
// Array/Array with Null ordered below any non-null element, Bool/Bool with
// false < true, and Incomparable for every other type combination.
func (v *Value) Compare(other *Value) Ordering {
	if v.IsNull() && other.IsNull() {
		return Equal
	}
	if v.IsNull() || other.IsNull() {
		return Incomparable
	}

	switch {
	case v.IsNumeric() && other.IsNumeric():
		return compareFloat(v.Double(), other.Double())
	case v.Kind == KindString && other.Kind == KindString:
		return compareString(v.s, other.s)
	case v.Kind == KindBool && other.Kind == KindBool:
		return compareBool(v.b, other.b)
	case v.Kind == KindArray && other.Kind == KindArray:
		return compareArray(v.a, other.a)
	default:
		return Incomparable
	}
}

func compareFloat(a, b float64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareString(a, b string) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareBool(a, b bool) Ordering {
	switch {
	case a == b:
		return Equal
	case !a && b:
		return Less
	default:
		return Greater
	}
}

func compareArray(a, b *Array) Ordering {
	if a.Len() != b.Len() {
		if a.Len() < b.Len() {
			return Less
		}
		return Greater
	}
	for i := 0; i < a.Len(); i++ {
		x, y := a.Get(i), b.Get(i)
		if x.IsNull() != y.IsNull() {
			if x.IsNull() {
				return Less
			}
			return Greater
		}
		if ord := x.Compare(y); ord != Equal {
			return ord
		}
	}
	return Equal
}

// Equal reports whether two Values compare Equal, treating Incomparable as
// not-equal (mirrors the $eq leaf's behavior on cross-type conditions).
func (v *Value) Equal(other *Value) bool {
	return v.Compare(other) == Equal
}

// String renders a Value the way the tracer/explainer formats condition
// and record text.
func (v *Value) String() string {
	if v.IsMissing() {
		return "<missing>"
	}
	if v.IsNull() {
		return "null"
	}
	switch v.Kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindDouble:
		return fmt.Sprintf("%g", v.d)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		parts := make([]string, 0, v.a.Len())
		for i := 0; i < v.a.Len(); i++ {
			parts = append(parts, v.a.Get(i).String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, 0, v.m.Len())
		v.m.Each(func(k string, val *Value) {
			parts = append(parts, fmt.Sprintf("%s: %s", k, val.String()))
		})
		return "{" + strings.Join(parts, ", ") + "}"
	case KindRegex:
		return fmt.Sprintf("/%v/", v.re)
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}
