package lang

import (
	"iter"
	"maps"
	"slices"
)

// Namespace is an ordered mapping of keys to resolved values.
//
// Keys keep the position of their first assignment; assigning an existing
// key replaces its value in place. The zero value is an empty Namespace
// ready for use, and a nil *Namespace behaves as an empty, read-only one.
type Namespace struct {
	keys   []string
	values map[string]string
}

// NewNamespace returns a Namespace holding the given pairs in order.
func NewNamespace(pairs ...Pair) *Namespace {
	ns := &Namespace{}
	for _, p := range pairs {
		ns.Set(p.Key, p.Value)
	}

	return ns
}

// Set assigns value to key.
func (ns *Namespace) Set(key, value string) {
	if ns.values == nil {
		ns.values = make(map[string]string)
	}

	if _, ok := ns.values[key]; !ok {
		ns.keys = append(ns.keys, key)
	}

	ns.values[key] = value
}

// Lookup returns the value of key and whether it is defined.
func (ns *Namespace) Lookup(key string) (string, bool) {
	if ns == nil {
		return "", false
	}

	value, ok := ns.values[key]

	return value, ok
}

// Len returns the number of keys.
func (ns *Namespace) Len() int {
	if ns == nil {
		return 0
	}

	return len(ns.keys)
}

// Keys returns the keys in order of first assignment.
func (ns *Namespace) Keys() []string {
	if ns == nil {
		return nil
	}

	return slices.Clone(ns.keys)
}

// All returns an iterator over key/value pairs in order.
func (ns *Namespace) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if ns == nil {
			return
		}

		for _, key := range ns.keys {
			if !yield(key, ns.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the namespace as a map.
func (ns *Namespace) Map() map[string]string {
	if ns == nil {
		return map[string]string{}
	}

	return maps.Clone(ns.values)
}

// Environ returns the namespace as "KEY=VALUE" strings in order, the form
// used by os.Environ and exec.Cmd.Env.
func (ns *Namespace) Environ() []string {
	env := make([]string, 0, ns.Len())
	for key, value := range ns.All() {
		env = append(env, key+"="+value)
	}

	return env
}

// Clone returns an independent copy of the namespace.
func (ns *Namespace) Clone() *Namespace {
	if ns == nil {
		return &Namespace{}
	}

	return &Namespace{
		keys:   slices.Clone(ns.keys),
		values: maps.Clone(ns.values),
	}
}

// Filter returns a new namespace with only the keys for which keep returns
// true, in the same order.
func (ns *Namespace) Filter(keep func(key, value string) bool) *Namespace {
	out := &Namespace{}
	for key, value := range ns.All() {
		if keep(key, value) {
			out.Set(key, value)
		}
	}

	return out
}
