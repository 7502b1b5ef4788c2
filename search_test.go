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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSimple(t *testing.T) {
	c := NewContainer()
	c.Set("x", 1)
	c.Set("y", 2)
	match, found, err := c.Search("^x$")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, match)
	_, found, err = c.Search("^z$")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchMatchesKeyPrefix(t *testing.T) {
	c := NewContainer()
	c.Set("xyz", 1)
	// The pattern is matched at the start of the key
	match, found, err := c.Search("x")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, match)
	_, found, err = c.Search("y")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchDepthFirst(t *testing.T) {
	inner := NewContainer()
	inner.Set("x", 5)
	c := NewContainer()
	c.Set("a", NewListContainer(inner))
	c.Set("x", 9)
	// The nested match is found before the top-level key is considered
	match, found, err := c.Search("^x$")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, match)
}

func TestSearchSkipsContainerValuedKeys(t *testing.T) {
	inner := NewContainer()
	inner.Set("y", 1)
	c := NewContainer()
	c.Set("sub", inner)
	// An entry holding a nested container is recursed into, never matched
	// by its own key
	_, found, err := c.Search("^sub$")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchNonStringKeys(t *testing.T) {
	c := NewContainer()
	c.Set(42, "answer")
	c.Set("q", "question")
	match, found, err := c.Search("^q$")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "question", match)
	// Non-string keys never match
	_, found, err = c.Search("42")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchAll(t *testing.T) {
	c1 := NewContainer()
	c1.Set("x", 1)
	c2 := NewContainer()
	c2.Set("x", 2)
	c3 := NewContainer()
	c3.Set("y", 3)
	l := NewListContainer(c1, c2, c3)
	matches, err := l.SearchAll("^x$")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, matches)
}

func TestSearchAllHeterogeneousNesting(t *testing.T) {
	leaf := NewContainer()
	leaf.Set("x", 3)
	mid := NewListContainer("not a container", leaf)
	c := NewContainer()
	c.Set("x", 1)
	c.Set("nested", mid)
	c.Set("xx", 2)
	matches, err := c.SearchAll("^x")
	require.NoError(t, err)
	// Discovery order: top-level x, then the nested one, then xx
	assert.Equal(t, []any{1, 3, 2}, matches)
}

func TestSearchListNonContainerElements(t *testing.T) {
	l := NewListContainer(1, "x", []byte("x"))
	_, found, err := l.Search("^x$")
	require.NoError(t, err)
	// Elements that are not containers never match
	assert.False(t, found)
}

func TestSearchBadPattern(t *testing.T) {
	c := NewContainer()
	c.Set("x", 1)
	_, _, err := c.Search("[")
	assert.Error(t, err)
	_, err = c.SearchAll("[")
	assert.Error(t, err)
}

func TestSearchCyclicStructure(t *testing.T) {
	c := NewContainer()
	c.Set("self", c)
	c.Set("x", 1)
	match, found, err := c.Search("^x$")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, match)
	matches, err := c.SearchAll("^x$")
	require.NoError(t, err)
	assert.Equal(t, []any{1}, matches)
}
