// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package native

// Library names tried by Load("") in order. Homebrew installs the versioned
// dylib alongside the bare name.
var defaultLibraryNames = []string{
	"libcec.dylib",
	"libcec.6.dylib",
	"libcec.4.dylib",
}
