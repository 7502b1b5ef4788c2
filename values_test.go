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
	"encoding/json"
	"strings"
	"testing"
)

// Test the String method to ensure it properly converts ByteString to hex
func TestByteStringString(t *testing.T) {
	bs := NewByteString([]byte("blinklabs"))
	expected := "626c696e6b6c616273"
	if bs.String() != expected {
		t.Errorf("expected %s but got %s", expected, bs.String())
	}
}

func TestByteStringBytes(t *testing.T) {
	bs := NewByteString([]byte{0x41, 0x42, 0x43})
	if string(bs.Bytes()) != "ABC" {
		t.Errorf("expected ABC but got %s", string(bs.Bytes()))
	}
	if bs.Len() != 3 {
		t.Errorf("expected length 3 but got %d", bs.Len())
	}
}

func TestByteStringMarshalJSON(t *testing.T) {
	bs := NewByteString([]byte("blinklabs"))
	jsonData, err := json.Marshal(bs)
	if err != nil {
		t.Fatalf("failed to marshal ByteString: %v", err)
	}
	expectedJSON := `"626c696e6b6c616273"`
	if string(jsonData) != expectedJSON {
		t.Errorf("expected %s but got %s", expectedJSON, string(jsonData))
	}
}

// ByteString exists so binary strings can be used as container keys
func TestByteStringAsContainerKey(t *testing.T) {
	c := NewContainer()
	key := NewByteString([]byte{0xde, 0xad})
	c.Set(key, "value")
	if !c.Has(NewByteString([]byte{0xde, 0xad})) {
		t.Error("expected ByteString key to be usable for lookup")
	}
	v, err := c.Get(key)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v != "value" {
		t.Errorf("expected value but got %v", v)
	}
}

func TestByteStringPrivateKey(t *testing.T) {
	c := NewContainer()
	c.Set(NewByteString([]byte("_meta")), 1)
	c.Set("a", 2)
	other := NewContainer()
	other.Set("a", 2)
	if !c.Equal(other) {
		t.Error("expected underscore-prefixed ByteString key to be ignored by Equal")
	}
}

func TestEnumValueString(t *testing.T) {
	known := NewEnumValue("ARP", 2054)
	if known.String() != "(enum) ARP 2054" {
		t.Errorf("unexpected rendering: %s", known.String())
	}
	unknown := NewUnknownEnumValue(9999)
	if unknown.String() != "(enum) (unknown) 9999" {
		t.Errorf("unexpected rendering: %s", unknown.String())
	}
}

func TestHexBytesString(t *testing.T) {
	h := HexBytes([]byte{0x01, 0xab})
	if h.String() != "01ab" {
		t.Errorf("expected 01ab but got %s", h.String())
	}
}

func TestHexDumpString(t *testing.T) {
	h := HexDump([]byte("0123456789abcdef0123"))
	out := h.String()
	if !strings.Contains(out, "00000010") {
		t.Error("expected a second offset line for 20 bytes")
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline to be trimmed")
	}
}
