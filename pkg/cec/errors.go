// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"errors"
	"fmt"
)

// Connection lifecycle errors. Every bus operation reports failure as
// ErrTransmitFailed, matchable with errors.Is.
var (
	// ErrInitFailed means the native library refused to allocate a
	// connection for the supplied configuration.
	ErrInitFailed = errors.New("cec: library initialisation failed")

	// ErrNoAdapterFound means autodetection ran and found zero adapters.
	ErrNoAdapterFound = errors.New("cec: no adapter found")

	// ErrAdapterOpenFailed means the adapter port could not be opened
	// within the configured timeout.
	ErrAdapterOpenFailed = errors.New("cec: failed to open adapter")

	// ErrCallbackRegistrationFailed means the native library rejected the
	// callback table.
	ErrCallbackRegistrationFailed = errors.New("cec: callback registration failed")

	// ErrTransmitFailed means the native library reported failure for a
	// bus operation.
	ErrTransmitFailed = errors.New("cec: transmit failed")

	// ErrPortMissing means no port was configured and autodetection was
	// not requested.
	ErrPortMissing = errors.New("cec: no port configured")

	// ErrLogMessageNotUTF8 means a native log message was not valid UTF-8.
	ErrLogMessageNotUTF8 = errors.New("cec: log message is not valid UTF-8")
)

// DecodeError reports a native value with no domain representation, such as
// an unknown opcode or an out-of-range logical address.
type DecodeError struct {
	Field string
	Value int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cec: cannot decode %s value %#x", e.Field, e.Value)
}

// PacketSizeError reports a payload that does not fit a data packet.
type PacketSizeError struct {
	Size int
}

func (e *PacketSizeError) Error() string {
	return fmt.Sprintf("cec: %d byte payload exceeds the %d byte packet capacity", e.Size, maxDataPacketLen)
}

// UninitializedFieldError reports a required builder field that was never
// set before Connect.
type UninitializedFieldError struct {
	Field string
}

func (e *UninitializedFieldError) Error() string {
	return fmt.Sprintf("cec: required configuration field %s is not set", e.Field)
}
