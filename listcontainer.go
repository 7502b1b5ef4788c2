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

import "fmt"

// ListContainer is an ordered, 0-indexed, growable sequence of values with
// the same rendering and searching behavior as Container. Elements are
// unconstrained and may include nested Container and ListContainer values.
type ListContainer struct {
	items []any
	// renderLock marks an instance currently being rendered, so a cyclic
	// reference renders as a placeholder even when the cycle passes
	// through a foreign value that re-enters via fmt
	renderLock bool
}

// NewListContainer returns a ListContainer holding the given items
func NewListContainer(items ...any) *ListContainer {
	l := &ListContainer{}
	l.items = append(l.items, items...)
	return l
}

// Append adds values at the end of the sequence
func (l *ListContainer) Append(values ...any) {
	l.items = append(l.items, values...)
}

// Extend appends every element of the other sequence
func (l *ListContainer) Extend(other *ListContainer) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// Get returns the element at the given index. It returns an error wrapping
// ErrIndexOutOfRange when the index is out of bounds.
func (l *ListContainer) Get(index int) (any, error) {
	if index < 0 || index >= len(l.items) {
		return nil, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	return l.items[index], nil
}

// Set replaces the element at the given index
func (l *ListContainer) Set(index int, value any) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items[index] = value
	return nil
}

// Remove deletes the element at the given index
func (l *ListContainer) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Len returns the number of elements
func (l *ListContainer) Len() int {
	return len(l.items)
}

// Items returns the elements in order
func (l *ListContainer) Items() []any {
	ret := make([]any, len(l.items))
	copy(ret, l.items)
	return ret
}

// Slice returns a new ListContainer holding the elements in [start, end)
func (l *ListContainer) Slice(start int, end int) (*ListContainer, error) {
	if start < 0 || end > len(l.items) || start > end {
		return nil, fmt.Errorf(
			"%w: [%d:%d] (length %d)",
			ErrIndexOutOfRange,
			start,
			end,
			len(l.items),
		)
	}
	return NewListContainer(l.items[start:end]...), nil
}

// Copy returns a new ListContainer with the same elements. Elements are not
// deep-copied; use DeepCopy for a fully independent copy.
func (l *ListContainer) Copy() *ListContainer {
	return NewListContainer(l.items...)
}

// Equal reports element-wise, order-sensitive equality. Numeric elements
// are compared by value rather than by exact Go type.
func (l *ListContainer) Equal(other *ListContainer) bool {
	if l == other {
		return true
	}
	if other == nil || len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !valueEqual(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}
