// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package native

// Sonames tried by Load("") in order, newest first.
var defaultLibraryNames = []string{
	"libcec.so.6",
	"libcec.so.4",
	"libcec.so",
}
