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
	"fmt"
	"regexp"
)

// Search scans entries in insertion order for the first value whose key
// matches the pattern, recursing depth-first into nested Container and
// ListContainer values. The pattern is matched at the start of the key, and
// only string keys are matched; an entry holding a nested container is
// recursed into rather than matched by its own key. The second return value
// is false when nothing matches. A malformed pattern is reported as an
// error.
func (c *Container) Search(pattern string) (any, bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false, fmt.Errorf("compile search pattern: %w", err)
	}
	match, found := c.searchIn(re, false, map[any]struct{}{}, nil)
	return match, found, nil
}

// SearchAll collects every match across the whole recursive structure, in
// discovery order
func (c *Container) SearchAll(pattern string) ([]any, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile search pattern: %w", err)
	}
	var results []any
	c.searchIn(re, true, map[any]struct{}{}, &results)
	return results, nil
}

// Search scans elements in order, recursing into nested Container and
// ListContainer elements. An element that is not a container never matches.
func (l *ListContainer) Search(pattern string) (any, bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false, fmt.Errorf("compile search pattern: %w", err)
	}
	match, found := l.searchIn(re, false, map[any]struct{}{}, nil)
	return match, found, nil
}

// SearchAll collects every match across the whole recursive structure, in
// discovery order
func (l *ListContainer) SearchAll(pattern string) ([]any, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile search pattern: %w", err)
	}
	var results []any
	l.searchIn(re, true, map[any]struct{}{}, &results)
	return results, nil
}

func (c *Container) searchIn(
	re *regexp.Regexp,
	all bool,
	seen map[any]struct{},
	results *[]any,
) (any, bool) {
	// A container already on the current path is treated as exhausted
	// rather than recursed into again
	if _, ok := seen[c]; ok {
		return nil, false
	}
	seen[c] = struct{}{}
	defer delete(seen, c)
	for _, k := range c.keys {
		if match, found := searchEntry(re, k, c.values[k], all, seen, results); found {
			return match, true
		}
	}
	return nil, false
}

func (l *ListContainer) searchIn(
	re *regexp.Regexp,
	all bool,
	seen map[any]struct{},
	results *[]any,
) (any, bool) {
	if _, ok := seen[l]; ok {
		return nil, false
	}
	seen[l] = struct{}{}
	defer delete(seen, l)
	for _, item := range l.items {
		if match, found := searchEntry(re, nil, item, all, seen, results); found {
			return match, true
		}
	}
	return nil, false
}

// searchEntry probes a single entry. A failure while probing (such as a
// panic from a misbehaving value) counts as no match so the scan continues.
func searchEntry(
	re *regexp.Regexp,
	key any,
	value any,
	all bool,
	seen map[any]struct{},
	results *[]any,
) (match any, found bool) {
	defer func() {
		if r := recover(); r != nil {
			match, found = nil, false
		}
	}()
	switch cv := value.(type) {
	case *Container:
		return cv.searchIn(re, all, seen, results)
	case *ListContainer:
		return cv.searchIn(re, all, seen, results)
	}
	ks, ok := key.(string)
	if !ok {
		return nil, false
	}
	// Match anchored at the start of the key
	loc := re.FindStringIndex(ks)
	if loc == nil || loc[0] != 0 {
		return nil, false
	}
	if all {
		*results = append(*results, value)
		return nil, false
	}
	return value, true
}
