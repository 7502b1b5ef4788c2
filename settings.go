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

// FlagsEnumKey is the private key set by flags-style decoders to mark a
// container whose values are booleans. Display rendering of a marked
// container hides false entries unless PrintSettings.FalseFlags is enabled.
const FlagsEnumKey = "_flagsenum"

// PrintSettings controls the display rendering of containers. Rendering is
// a pure function of the value and the settings, so tests can construct
// their own settings without touching the process-wide defaults.
type PrintSettings struct {
	// FullStrings renders byte and text strings uncapped. When disabled,
	// output is truncated to 16 bytes or 32 characters.
	FullStrings bool
	// FalseFlags renders false entries of flags-style containers
	FalseFlags bool
	// PrivateEntries renders private (underscore-prefixed) keys
	PrivateEntries bool
}

var globalPrintSettings PrintSettings

// GlobalPrintSettings returns the current process-wide print settings,
// used by the String method of both container types
func GlobalPrintSettings() PrintSettings {
	return globalPrintSettings
}

// SetGlobalPrintFullStrings enables printing the full content of byte and
// text strings. By default output is truncated (16 bytes and 32 characters).
func SetGlobalPrintFullStrings(enabled bool) {
	globalPrintSettings.FullStrings = enabled
}

// SetGlobalPrintFalseFlags enables printing all values of a container
// produced by a flags-style decode. By default only true values are printed.
func SetGlobalPrintFalseFlags(enabled bool) {
	globalPrintSettings.FalseFlags = enabled
}

// SetGlobalPrintPrivateEntries enables printing keys like _io or _index in
// display rendering. Debug rendering never shows private entries.
func SetGlobalPrintPrivateEntries(enabled bool) {
	globalPrintSettings.PrivateEntries = enabled
}
