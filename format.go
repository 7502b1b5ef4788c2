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
	"reflect"
	"strconv"
	"strings"
)

const (
	// recursionPlaceholder is emitted in place of a container already being
	// rendered by the current call
	recursionPlaceholder = "<recursion detected>"

	displayIndent = "\n    "

	bytesPrintCap  = 16
	stringPrintCap = 32
)

// The recursion guard is a per-instance flag rather than state threaded
// through the render call: rendering may delegate opaque values to fmt,
// and a cycle passing through such a value re-enters through String or
// GoString rather than through the internal render functions. The flag is
// cleared on every exit path.

// String returns the multi-line display rendering using the process-wide
// print settings
func (c *Container) String() string {
	return c.Render(GlobalPrintSettings())
}

// Render returns the multi-line display rendering, one entry per line as
// "key = value". Private keys are hidden unless settings.PrivateEntries is
// set. For flags-style containers, false values are hidden unless
// settings.FalseFlags is set. Byte and text strings are truncated per
// settings.FullStrings. A cyclic reference renders as a placeholder.
func (c *Container) Render(settings PrintSettings) string {
	if c.renderLock {
		return recursionPlaceholder
	}
	c.renderLock = true
	defer func() {
		c.renderLock = false
	}()
	var sb strings.Builder
	sb.WriteString("Container: ")
	isFlags := c.flagsEnum()
	for _, k := range c.keys {
		if isPrivateKey(k) && !settings.PrivateEntries {
			continue
		}
		v := c.values[k]
		if isFlags && !settings.FalseFlags && isFalsy(v) {
			continue
		}
		sb.WriteString(displayIndent)
		fmt.Fprintf(&sb, "%v = ", k)
		sb.WriteString(displayValue(v, settings))
	}
	return sb.String()
}

// GoString returns the single-line debug rendering
// "Container(k1=v1, k2=v2)". Private keys are always omitted. A cyclic
// reference renders as a placeholder.
func (c *Container) GoString() string {
	if c.renderLock {
		return recursionPlaceholder
	}
	c.renderLock = true
	defer func() {
		c.renderLock = false
	}()
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		if isPrivateKey(k) {
			continue
		}
		parts = append(
			parts,
			fmt.Sprintf("%v=%s", k, debugValue(c.values[k])),
		)
	}
	return "Container(" + strings.Join(parts, ", ") + ")"
}

// String returns the multi-line display rendering using the process-wide
// print settings
func (l *ListContainer) String() string {
	return l.Render(GlobalPrintSettings())
}

// Render returns the multi-line display rendering, one element per line.
// A cyclic reference renders as a placeholder.
func (l *ListContainer) Render(settings PrintSettings) string {
	if l.renderLock {
		return recursionPlaceholder
	}
	l.renderLock = true
	defer func() {
		l.renderLock = false
	}()
	var sb strings.Builder
	sb.WriteString("ListContainer: ")
	for _, item := range l.items {
		sb.WriteString(displayIndent)
		sb.WriteString(displayValue(item, settings))
	}
	return sb.String()
}

// GoString returns the single-line debug rendering
// "ListContainer([e1, e2])". A cyclic reference renders as a placeholder.
func (l *ListContainer) GoString() string {
	if l.renderLock {
		return recursionPlaceholder
	}
	l.renderLock = true
	defer func() {
		l.renderLock = false
	}()
	parts := make([]string, 0, len(l.items))
	for _, item := range l.items {
		parts = append(parts, debugValue(item))
	}
	return "ListContainer([" + strings.Join(parts, ", ") + "])"
}

// displayValue renders a single value for display output. Multi-line
// renderings (nested containers, hex dumps) are re-indented so each of
// their lines aligns under the parent entry.
func displayValue(v any, settings PrintSettings) string {
	switch tv := v.(type) {
	case EnumValue:
		return tv.String()
	case HexBytes:
		return reindent(tv.String())
	case HexDump:
		return reindent(tv.String())
	case ByteString:
		return displayBytes(tv.Bytes(), settings)
	case []byte:
		return displayBytes(tv, settings)
	case string:
		return displayString(tv, settings)
	case *Container:
		return reindent(tv.Render(settings))
	case *ListContainer:
		return reindent(tv.Render(settings))
	default:
		return reindent(fmt.Sprintf("%v", v))
	}
}

func debugValue(v any) string {
	switch tv := v.(type) {
	case string:
		return strconv.Quote(tv)
	case []byte:
		return fmt.Sprintf("%q", tv)
	case ByteString:
		return fmt.Sprintf("%q", tv.Bytes())
	case *Container:
		return tv.GoString()
	case *ListContainer:
		return tv.GoString()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func displayBytes(v []byte, settings PrintSettings) string {
	if len(v) <= bytesPrintCap || settings.FullStrings {
		return fmt.Sprintf("%q (total %d)", v, len(v))
	}
	return fmt.Sprintf(
		"%q... (truncated, total %d)",
		v[:bytesPrintCap],
		len(v),
	)
}

func displayString(v string, settings PrintSettings) string {
	runes := []rune(v)
	if len(runes) <= stringPrintCap || settings.FullStrings {
		return fmt.Sprintf("%s (total %d)", strconv.Quote(v), len(runes))
	}
	return fmt.Sprintf(
		"%s... (truncated, total %d)",
		strconv.Quote(string(runes[:stringPrintCap])),
		len(runes),
	)
}

func reindent(s string) string {
	return strings.ReplaceAll(s, "\n", displayIndent)
}

// isFalsy mirrors truthiness for flags-style display: nil, false, zero
// numerics, and empty strings or collections are falsy
func isFalsy(v any) bool {
	switch tv := v.(type) {
	case nil:
		return true
	case bool:
		return !tv
	case string:
		return tv == ""
	case []byte:
		return len(tv) == 0
	case ByteString:
		return tv.Len() == 0
	case *Container:
		return tv == nil || tv.Len() == 0
	case *ListContainer:
		return tv == nil || tv.Len() == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return rv.IsZero()
}
