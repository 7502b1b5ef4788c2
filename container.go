// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package container

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// Pair is a single key/value entry of a Container
type Pair struct {
	Key   any
	Value any
}

// Container is a generic mapping that preserves key order by insertion.
// Keys are unique; setting an existing key updates its value in place
// without changing its position. Keys may be any comparable value,
// conventionally strings. Values are unconstrained and may include nested
// Container and ListContainer values.
//
// A string key starting with an underscore is private: it is excluded from
// Equal and from default display rendering, but is always reachable through
// Get and always included in snapshots.
//
// All access goes through the keyed methods. There is no field-style
// access, so keys named after the container's own operations (Copy, Clear,
// Items, Keys, Values, Search, SearchAll, Merge, Delete, and so on) need no
// special handling.
type Container struct {
	keys   []any
	values map[any]any
	// renderLock marks an instance currently being rendered, so a cyclic
	// reference renders as a placeholder even when the cycle passes
	// through a foreign value that re-enters via fmt
	renderLock bool
}

// NewContainer returns an empty Container
func NewContainer() *Container {
	return &Container{
		values: make(map[any]any),
	}
}

// NewContainerFromPairs returns a Container populated from the given pairs
// in order. A repeated key keeps its first position with the last value.
func NewContainerFromPairs(pairs []Pair) *Container {
	c := NewContainer()
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// Get returns the value stored under the given key. It returns an error
// wrapping ErrKeyNotFound when the key is not present.
func (c *Container) Get(key any) (any, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Set stores a value under the given key. An unseen key is appended at the
// end of the key order. Like a Go map, Set panics on a non-comparable key.
func (c *Container) Set(key any, value any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Has returns true if the given key is present
func (c *Container) Has(key any) bool {
	_, ok := c.values[key]
	return ok
}

// Delete removes the given key and its value. It returns an error wrapping
// ErrKeyNotFound when the key is not present.
func (c *Container) Delete(key any) error {
	if _, ok := c.values[key]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return nil
}

// MoveToEnd moves an existing key to the end of the key order
func (c *Container) MoveToEnd(key any) error {
	if _, ok := c.values[key]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	c.keys = append(c.keys, key)
	return nil
}

// Clear removes all entries
func (c *Container) Clear() {
	c.keys = nil
	clear(c.values)
}

// Len returns the number of entries
func (c *Container) Len() int {
	return len(c.keys)
}

// Keys returns the keys in insertion order
func (c *Container) Keys() []any {
	ret := make([]any, len(c.keys))
	copy(ret, c.keys)
	return ret
}

// Values returns the values in key order
func (c *Container) Values() []any {
	ret := make([]any, 0, len(c.keys))
	for _, k := range c.keys {
		ret = append(ret, c.values[k])
	}
	return ret
}

// Items returns the entries in key order
func (c *Container) Items() []Pair {
	ret := make([]Pair, 0, len(c.keys))
	for _, k := range c.keys {
		ret = append(ret, Pair{Key: k, Value: c.values[k]})
	}
	return ret
}

// Merge sets every entry of the other container on this one, in the other's
// key order
func (c *Container) Merge(other *Container) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		c.Set(k, other.values[k])
	}
}

// Copy returns a new Container with the same key order and the same values.
// Values are not deep-copied; use DeepCopy for a fully independent copy.
func (c *Container) Copy() *Container {
	ret := NewContainer()
	for _, k := range c.keys {
		ret.Set(k, c.values[k])
	}
	return ret
}

// Equal reports whether two containers hold equal values under the same
// non-private keys. Key order is not considered, and private keys are
// ignored on both sides. Numeric values and numeric slices are compared by
// value rather than by exact Go type, since decoding tends to widen
// integer types. Cyclic structures are the caller's responsibility.
func (c *Container) Equal(other *Container) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	// Both directions are checked explicitly so that a key present on only
	// one side always fails the comparison
	for _, k := range c.keys {
		if isPrivateKey(k) {
			continue
		}
		ov, ok := other.values[k]
		if !ok || !valueEqual(c.values[k], ov) {
			return false
		}
	}
	for _, k := range other.keys {
		if isPrivateKey(k) {
			continue
		}
		v, ok := c.values[k]
		if !ok || !valueEqual(v, other.values[k]) {
			return false
		}
	}
	return true
}

func (c *Container) flagsEnum() bool {
	v, ok := c.values[FlagsEnumKey]
	return ok && !isFalsy(v)
}

func isPrivateKey(key any) bool {
	switch k := key.(type) {
	case string:
		return strings.HasPrefix(k, "_")
	case ByteString:
		return strings.HasPrefix(k.data, "_")
	}
	return false
}

// EqualFunc reports value equality for types the built-in comparison does
// not understand. Returning handled=false defers to the next strategy.
type EqualFunc func(a any, b any) (equal bool, handled bool)

var equalFuncs []EqualFunc

// RegisterEqualFunc adds an equality strategy consulted by Container.Equal
// and ListContainer.Equal before the built-in comparison. Strategies are
// consulted in registration order.
func RegisterEqualFunc(fn EqualFunc) {
	equalFuncs = append(equalFuncs, fn)
}

func valueEqual(a any, b any) bool {
	for _, fn := range equalFuncs {
		if eq, handled := fn(a, b); handled {
			return eq
		}
	}
	switch av := a.(type) {
	case *Container:
		bv, ok := b.(*Container)
		return ok && av.Equal(bv)
	case *ListContainer:
		bv, ok := b.(*ListContainer)
		return ok && av.Equal(bv)
	case ByteString:
		switch bv := b.(type) {
		case ByteString:
			return av == bv
		case []byte:
			return bytes.Equal(av.Bytes(), bv)
		}
		return false
	case []byte:
		switch bv := b.(type) {
		case ByteString:
			return bytes.Equal(av, bv.Bytes())
		case []byte:
			return bytes.Equal(av, bv)
		}
		return false
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() {
		if isNumericKind(ra.Kind()) && isNumericKind(rb.Kind()) {
			return numericEqual(ra, rb)
		}
		if ra.Kind() == reflect.Slice && rb.Kind() == reflect.Slice &&
			isNumericKind(ra.Type().Elem().Kind()) &&
			isNumericKind(rb.Type().Elem().Kind()) {
			if ra.Len() != rb.Len() {
				return false
			}
			for i := 0; i < ra.Len(); i++ {
				if !numericEqual(ra.Index(i), rb.Index(i)) {
					return false
				}
			}
			return true
		}
	}
	return reflect.DeepEqual(a, b)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func numericEqual(a reflect.Value, b reflect.Value) bool {
	switch {
	case isFloatKind(a.Kind()) || isFloatKind(b.Kind()):
		return numericFloat(a) == numericFloat(b)
	case isUintKind(a.Kind()) && isUintKind(b.Kind()):
		return a.Uint() == b.Uint()
	case isUintKind(a.Kind()):
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	case isUintKind(b.Kind()):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return a.Int() == b.Int()
	}
}

func numericFloat(v reflect.Value) float64 {
	switch {
	case isFloatKind(v.Kind()):
		return v.Float()
	case isUintKind(v.Kind()):
		return float64(v.Uint())
	default:
		return float64(v.Int())
	}
}
