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
	"reflect"

	"github.com/jinzhu/copier"
)

// DeepCopy returns a fully independent copy: nested Container and
// ListContainer values are copied structurally, and other composite values
// are deep-copied. Cyclic structures are the caller's responsibility.
func (c *Container) DeepCopy() (*Container, error) {
	ret := NewContainer()
	for _, k := range c.keys {
		v, err := deepCopyValue(c.values[k])
		if err != nil {
			return nil, err
		}
		ret.Set(k, v)
	}
	return ret, nil
}

// DeepCopy returns a fully independent copy of the sequence. Cyclic
// structures are the caller's responsibility.
func (l *ListContainer) DeepCopy() (*ListContainer, error) {
	ret := NewListContainer()
	for _, item := range l.items {
		v, err := deepCopyValue(item)
		if err != nil {
			return nil, err
		}
		ret.Append(v)
	}
	return ret, nil
}

func deepCopyValue(v any) (any, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case *Container:
		return tv.DeepCopy()
	case *ListContainer:
		return tv.DeepCopy()
	case []byte:
		ret := make([]byte, len(tv))
		copy(ret, tv)
		return ret, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Struct:
		ret := reflect.New(rv.Type())
		err := copier.CopyWithOption(
			ret.Interface(),
			v,
			copier.Option{DeepCopy: true},
		)
		if err != nil {
			return nil, err
		}
		return ret.Elem().Interface(), nil
	default:
		// Scalars and arrays copy by value
		return v, nil
	}
}
