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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/container"
)

type dumpFlags struct {
	flagset     *flag.FlagSet
	file        string
	hexData     string
	fullStrings bool
	showPrivate bool
	showFalse   bool
}

func newDumpFlags() *dumpFlags {
	f := &dumpFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(&f.file, "file", "", "file containing CBOR data to dump")
	f.flagset.StringVar(&f.hexData, "hex", "", "hex string of CBOR data to dump")
	f.flagset.BoolVar(&f.fullStrings, "full-strings", false, "print full content of byte and text strings")
	f.flagset.BoolVar(&f.showPrivate, "show-private", false, "print private (underscore-prefixed) entries")
	f.flagset.BoolVar(&f.showFalse, "show-false-flags", false, "print false entries of flags-style containers")
	return f
}

func main() {
	f := newDumpFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse commandline: %s\n", err)
		os.Exit(1)
	}
	var data []byte
	var err error
	switch {
	case f.file != "":
		data, err = os.ReadFile(f.file)
	case f.hexData != "":
		data, err = hex.DecodeString(strings.TrimSpace(f.hexData))
	default:
		fmt.Println("you must specify one of -file or -hex")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	container.SetGlobalPrintFullStrings(f.fullStrings)
	container.SetGlobalPrintPrivateEntries(f.showPrivate)
	container.SetGlobalPrintFalseFlags(f.showFalse)
	value, err := container.DecodeCbor(data)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%v\n", value)
}
