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
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	cborTypeByteString uint8 = 0x40
	cborTypeTextString uint8 = 0x60
	cborTypeArray      uint8 = 0x80
	cborTypeMap        uint8 = 0xa0
	cborTypeTag        uint8 = 0xc0

	// Only the top 3 bits specify the type
	cborTypeMask uint8 = 0xe0

	// Ordered map represented as an array of alternating keys and values,
	// from the CBOR notable-tags registry. Used for container snapshots so
	// key order survives a round trip.
	cborTagOrderedMap uint64 = 272
)

// Snapshot captures the current entries in key order, including private
// keys
func (c *Container) Snapshot() []Pair {
	return c.Items()
}

// Restore clears existing content and replaces it with the supplied pairs
// in the given order
func (c *Container) Restore(pairs []Pair) {
	c.Clear()
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
}

func cborEncode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := _cbor.EncOptions{
		Sort: _cbor.SortCoreDeterministic,
	}.EncMode()
	if err != nil {
		return nil, err
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

// MarshalCBOR encodes the container snapshot as a tagged array of
// alternating keys and values, preserving key order and private keys
func (c *Container) MarshalCBOR() ([]byte, error) {
	items := make([]any, 0, len(c.keys)*2)
	for _, k := range c.keys {
		items = append(items, k, c.values[k])
	}
	tmpTag := _cbor.Tag{
		Number:  cborTagOrderedMap,
		Content: items,
	}
	return cborEncode(&tmpTag)
}

// UnmarshalCBOR restores the container from a snapshot produced by
// MarshalCBOR, replacing any existing content
func (c *Container) UnmarshalCBOR(data []byte) (err error) {
	// A snapshot key of a type Go cannot hash panics on insertion. We
	// recover from a possible panic and return an error instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(
				"restore failure, probably due to key type unsupported by Go: %v",
				r,
			)
		}
	}()
	var tmpTag _cbor.RawTag
	if err := _cbor.Unmarshal(data, &tmpTag); err != nil {
		return err
	}
	if tmpTag.Number != cborTagOrderedMap {
		return fmt.Errorf(
			"unexpected tag for container snapshot: %d",
			tmpTag.Number,
		)
	}
	var items []decodedValue
	if err := _cbor.Unmarshal(tmpTag.Content, &items); err != nil {
		return err
	}
	if len(items)%2 != 0 {
		return errors.New("container snapshot has odd item count")
	}
	c.Clear()
	for i := 0; i < len(items); i += 2 {
		c.Set(items[i].value, items[i+1].value)
	}
	return nil
}

// MarshalCBOR encodes the sequence as a CBOR array
func (l *ListContainer) MarshalCBOR() ([]byte, error) {
	items := l.items
	if items == nil {
		items = []any{}
	}
	return cborEncode(items)
}

// UnmarshalCBOR restores the sequence from a CBOR array, replacing any
// existing content
func (l *ListContainer) UnmarshalCBOR(data []byte) error {
	var items []decodedValue
	if err := _cbor.Unmarshal(data, &items); err != nil {
		return err
	}
	l.items = nil
	for _, item := range items {
		l.items = append(l.items, item.value)
	}
	return nil
}

// DecodeCbor parses arbitrary CBOR data into container values: maps and
// tagged snapshots become Container, arrays become ListContainer, byte
// strings become ByteString. Since CBOR map key order is not observable
// through the decoder, plain map keys are sorted for deterministic output.
func DecodeCbor(data []byte) (any, error) {
	var tmpValue decodedValue
	if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
		return nil, err
	}
	return tmpValue.value, nil
}

// decodedValue is a wrapper for parsing arbitrary CBOR data which may
// contain types that cannot be easily represented in Go (such as maps with
// bytestring keys)
type decodedValue struct {
	value any
}

func (v *decodedValue) UnmarshalCBOR(data []byte) (err error) {
	if len(data) == 0 {
		return errors.New("empty CBOR data")
	}
	switch data[0] & cborTypeMask {
	case cborTypeTag:
		var tmpTag _cbor.RawTag
		if err := _cbor.Unmarshal(data, &tmpTag); err != nil {
			return err
		}
		if tmpTag.Number == cborTagOrderedMap {
			tmpContainer := NewContainer()
			if err := tmpContainer.UnmarshalCBOR(data); err != nil {
				return err
			}
			v.value = tmpContainer
			return nil
		}
		var tmpContent decodedValue
		if err := _cbor.Unmarshal(tmpTag.Content, &tmpContent); err != nil {
			return err
		}
		v.value = _cbor.Tag{
			Number:  tmpTag.Number,
			Content: tmpContent.value,
		}
	case cborTypeMap:
		// Certain types are valid CBOR map keys but cannot be used as map
		// keys in Go, which panics during decoding. We recover from a
		// possible panic and return an error instead.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf(
					"decode failure, probably due to type unsupported by Go: %v",
					r,
				)
			}
		}()
		tmpValue := map[decodedValue]decodedValue{}
		if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		pairs := make([]Pair, 0, len(tmpValue))
		for key, val := range tmpValue {
			pairs = append(pairs, Pair{Key: key.value, Value: val.value})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return fmt.Sprintf("%v", pairs[i].Key) <
				fmt.Sprintf("%v", pairs[j].Key)
		})
		v.value = NewContainerFromPairs(pairs)
	case cborTypeArray:
		tmpValue := []decodedValue{}
		if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		newValue := NewListContainer()
		for _, item := range tmpValue {
			newValue.Append(item.value)
		}
		v.value = newValue
	case cborTypeByteString:
		var tmpValue []byte
		if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		v.value = NewByteString(tmpValue)
	case cborTypeTextString:
		var tmpValue string
		if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		v.value = tmpValue
	default:
		var tmpValue any
		if err := _cbor.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		v.value = tmpValue
	}
	return nil
}

// MarshalJSON encodes the container as a JSON object in key order,
// including private keys. Non-string keys are rendered to strings.
func (c *Container) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyStr, ok := k.(string)
		if !ok {
			keyStr = fmt.Sprintf("%v", k)
		}
		keyData, err := json.Marshal(keyStr)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valData, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valData)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the sequence as a JSON array
func (l *ListContainer) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}
