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

// Package container provides ordered container types used as the in-memory
// representation of parsed binary data.
//
// Container is an insertion-ordered mapping with regex searching and
// size-bounded pretty-printing. ListContainer is the matching ordered
// sequence type. Both render safely in the presence of cyclic references
// and can be captured to and restored from CBOR snapshots that preserve
// key order.
//
// None of the types in this package are safe for concurrent use. Callers
// sharing a container or mutating the global print settings across
// goroutines must provide their own locking.
package container
