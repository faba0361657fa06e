package seqs

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Kind classifies a value for flattening.
type Kind int

const (
	KindScalar   Kind = iota // yielded as-is
	KindText                 // strings: a leaf unless expanded per rune
	KindSequence             // slices, arrays, sequences, channels, Ranger
	KindMapping              // maps: contribute their values (or keys)
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// Ranger is implemented by replayable containers such as *regen.Regenerator[any].
// Containers whose All method returns a typed sequence are recognized through reflection.
type Ranger interface {
	All() iter.Seq[any]
}

// KindOf classifies v. Typed sequences (func(func(X) bool)), receive channels and values with
// an All method returning a sequence are all KindSequence. Nil funcs, channels and pointers
// are scalars.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindScalar
	case string:
		return KindText
	case iter.Seq[any], func(func(any) bool), Ranger:
		return KindSequence
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	case reflect.Func:
		if !rv.IsNil() && isSeqFunc(rv.Type()) {
			return KindSequence
		}
	case reflect.Chan:
		if !rv.IsNil() && rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return KindSequence
		}
	}
	if _, ok := allMethod(rv); ok {
		return KindSequence
	}
	return KindScalar
}

// isSeqFunc reports whether t has the shape of an iter.Seq: func(func(X) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool && !y.IsVariadic()
}

// allMethod returns the bound All method of rv when it takes nothing and returns a sequence.
func allMethod(rv reflect.Value) (reflect.Value, bool) {
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return reflect.Value{}, false
	}
	m := rv.MethodByName("All")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 || !isSeqFunc(t.Out(0)) {
		return reflect.Value{}, false
	}
	return m, true
}

// rangeFunc ranges a sequence-shaped func value, boxing every element.
func rangeFunc(fn reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		yt := fn.Type().In(0)
		y := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface())).Convert(yt.Out(0))}
		})
		fn.Call([]reflect.Value{y})
	}
}

// elements yields the children of a KindSequence value.
func elements(v any) iter.Seq[any] {
	switch s := v.(type) {
	case iter.Seq[any]:
		return s
	case func(func(any) bool):
		return s
	case Ranger:
		return s.All()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}
	case reflect.Func:
		return rangeFunc(rv)
	case reflect.Chan:
		return func(yield func(any) bool) {
			for {
				x, ok := rv.Recv()
				if !ok || !yield(x.Interface()) {
					return
				}
			}
		}
	}
	m, _ := allMethod(rv)
	return func(yield func(any) bool) {
		rangeFunc(m.Call(nil)[0])(yield)
	}
}

// entries yields the keys or values of a KindMapping value, ordered by key.
func entries(v any, keys bool) iter.Seq[any] {
	rv := reflect.ValueOf(v)
	ks := rv.MapKeys()
	slices.SortFunc(ks, compareKeys)
	return func(yield func(any) bool) {
		for _, k := range ks {
			e := k
			if !keys {
				e = rv.MapIndex(k)
			}
			if !yield(e.Interface()) {
				return
			}
		}
	}
}

func compareKeys(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanFloat() && b.CanFloat():
		return cmp.Compare(a.Float(), b.Float())
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}

// Flatten removes one level of nesting: sequences are unrolled, strings are split into
// one-rune strings, maps contribute their keys, and everything else passes through.
//
//	Flatten(slices.Values([]any{1, []int{2, 3}, 4})) // 1 2 3 4
func Flatten(seq iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range seq {
			var inner iter.Seq[any]
			switch KindOf(v) {
			case KindSequence:
				inner = elements(v)
			case KindText:
				inner = Map(Chars(text(v)), func(s string) any { return s })
			case KindMapping:
				inner = entries(v, true)
			default:
				if !yield(v) {
					return
				}
				continue
			}
			for e := range inner {
				if !yield(e) {
					return
				}
			}
		}
	}
}

type flatConfig struct {
	keys       bool
	expandText bool
}

// FlatOption configures Flat.
type FlatOption func(*flatConfig)

// WithKeys makes maps contribute their keys instead of their values.
func WithKeys() FlatOption {
	return func(c *flatConfig) { c.keys = true }
}

// WithExpandText yields strings rune by rune instead of whole.
func WithExpandText() FlatOption {
	return func(c *flatConfig) { c.expandText = true }
}

// Flat flattens v completely. Sequences are descended into recursively, maps contribute their
// values (or keys, see WithKeys) recursively, strings are leaves unless WithExpandText is given,
// and anything else is yielded as-is.
//
//	Flat([]any{1, []any{2, []int{3}}, map[string]int{"a": 4}}) // 1 2 3 4
func Flat(v any, opts ...FlatOption) iter.Seq[any] {
	var cfg flatConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(yield func(any) bool) {
		flat(v, &cfg, yield)
	}
}

func flat(v any, cfg *flatConfig, yield func(any) bool) bool {
	var inner iter.Seq[any]
	switch KindOf(v) {
	case KindText:
		if !cfg.expandText {
			return yield(v)
		}
		for c := range Chars(text(v)) {
			if !yield(c) {
				return false
			}
		}
		return true
	case KindMapping:
		inner = entries(v, cfg.keys)
	case KindSequence:
		inner = elements(v)
	default:
		return yield(v)
	}
	for e := range inner {
		if !flat(e, cfg, yield) {
			return false
		}
	}
	return true
}
