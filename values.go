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
	"encoding/hex"
	"fmt"
	"strings"

	_cbor "github.com/fxamacker/cbor/v2"
)

// ByteString wraps a binary string in a comparable value, which allows it
// to be used as a Container key. Decoded byte strings are stored as
// ByteString rather than []byte for the same reason.
type ByteString struct {
	// A string keeps the type comparable; []byte would not be
	data string
}

// NewByteString wraps the given bytes
func NewByteString(data []byte) ByteString {
	return ByteString{
		data: string(data),
	}
}

// Bytes returns the wrapped bytes
func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

// Len returns the number of wrapped bytes
func (bs ByteString) Len() int {
	return len(bs.data)
}

// String returns the wrapped bytes as a hex string
func (bs ByteString) String() string {
	return hex.EncodeToString([]byte(bs.data))
}

// MarshalJSON encodes the wrapped bytes as a hex JSON string
func (bs ByteString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + bs.String() + `"`), nil
}

// MarshalCBOR encodes the wrapped bytes as a CBOR byte string
func (bs ByteString) MarshalCBOR() ([]byte, error) {
	return cborEncode(bs.Bytes())
}

// UnmarshalCBOR decodes a CBOR byte string
func (bs *ByteString) UnmarshalCBOR(data []byte) error {
	tmpValue := []byte{}
	if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
		return err
	}
	bs.data = string(tmpValue)
	return nil
}

// EnumValue represents a decoded enumerated value together with its symbol
// name, when the numeric value maps to a known member
type EnumValue struct {
	Name  string
	Value int64
	Known bool
}

// NewEnumValue returns an EnumValue for a known named member
func NewEnumValue(name string, value int64) EnumValue {
	return EnumValue{
		Name:  name,
		Value: value,
		Known: true,
	}
}

// NewUnknownEnumValue returns an EnumValue for an integer with no named
// member
func NewUnknownEnumValue(value int64) EnumValue {
	return EnumValue{
		Value: value,
	}
}

func (ev EnumValue) String() string {
	if !ev.Known {
		return fmt.Sprintf("(enum) (unknown) %d", ev.Value)
	}
	return fmt.Sprintf("(enum) %s %d", ev.Name, ev.Value)
}

// HexBytes is a byte slice displayed as a single hex string
type HexBytes []byte

func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

// HexDump is a byte slice displayed as a multi-line canonical hex dump
type HexDump []byte

func (h HexDump) String() string {
	return strings.TrimRight(hex.Dump(h), "\n")
}
