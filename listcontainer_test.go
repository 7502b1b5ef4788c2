// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContainerAppendGet(t *testing.T) {
	l := NewListContainer(1, 2)
	l.Append(3)
	if l.Len() != 3 {
		t.Fatalf("expected length 3 but got %d", l.Len())
	}
	v, err := l.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v != 3 {
		t.Errorf("expected 3 but got %v", v)
	}
}

func TestListContainerOutOfRange(t *testing.T) {
	l := NewListContainer(1, 2)
	_, err := l.Get(2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange but got %v", err)
	}
	_, err = l.Get(-1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange but got %v", err)
	}
	err = l.Set(5, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = l.Remove(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListContainerRemove(t *testing.T) {
	l := NewListContainer("a", "b", "c")
	require.NoError(t, l.Remove(1))
	assert.Equal(t, []any{"a", "c"}, l.Items())
}

func TestListContainerExtend(t *testing.T) {
	l := NewListContainer(1)
	l.Extend(NewListContainer(2, 3))
	assert.Equal(t, []any{1, 2, 3}, l.Items())
}

func TestListContainerSlice(t *testing.T) {
	l := NewListContainer(1, 2, 3, 4)
	sub, err := l.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, sub.Items())
	_, err = l.Slice(2, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListContainerCopy(t *testing.T) {
	l := NewListContainer(1, 2)
	dup := l.Copy()
	if dup == l {
		t.Fatal("expected copy to be a distinct instance")
	}
	assert.True(t, l.Equal(dup))
	dup.Append(3)
	assert.Equal(t, 2, l.Len())
}

func TestListContainerEqual(t *testing.T) {
	assert.True(t, NewListContainer(1, 2).Equal(NewListContainer(1, 2)))
	// Order matters
	assert.False(t, NewListContainer(1, 2).Equal(NewListContainer(2, 1)))
	assert.False(t, NewListContainer(1).Equal(NewListContainer(1, 2)))
	// Numeric values compare across Go types
	assert.True(
		t,
		NewListContainer(uint64(1), uint64(2)).Equal(NewListContainer(1, 2)),
	)
}
