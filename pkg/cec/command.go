// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"time"

	"github.com/Thermoquad/cinder/pkg/cec/native"
)

// Command is one CEC frame. OpcodeSet distinguishes an opcode-less polling
// frame from a frame whose opcode happens to be zero.
type Command struct {
	Initiator       LogicalAddress
	Destination     LogicalAddress
	Ack             bool
	EOM             bool
	Opcode          Opcode
	OpcodeSet       bool
	Parameters      DataPacket
	TransmitTimeout time.Duration
}

// NewCommand builds a frame with the opcode set and the default transmit
// timeout of one second.
func NewCommand(initiator, destination LogicalAddress, opcode Opcode, parameters DataPacket) Command {
	return Command{
		Initiator:       initiator,
		Destination:     destination,
		Opcode:          opcode,
		OpcodeSet:       true,
		Parameters:      parameters,
		TransmitTimeout: time.Second,
	}
}

// Keypress is a remote key event. Duration is zero for the key-down half of
// a press and the held time for the release half.
type Keypress struct {
	Code     UserControlCode
	Duration time.Duration
}

// LogMessage is a diagnostic message from the native library. Time is the
// offset since the connection was opened.
type LogMessage struct {
	Message string
	Level   LogLevel
	Time    time.Duration
}

// DeviceTypeList holds the device roles a connection announces, bounded at
// the native table size of five. Construct with NewDeviceTypeList; the first
// entry decides the preferred logical address.
type DeviceTypeList struct {
	types [native.DeviceTypeCount]DeviceType
	size  uint8
}

// NewDeviceTypeList returns a list holding only primary.
func NewDeviceTypeList(primary DeviceType) DeviceTypeList {
	var l DeviceTypeList
	l.types[0] = primary
	l.size = 1
	return l
}

// Append returns the list with t added. Reports false when the list is
// already full.
func (l DeviceTypeList) Append(t DeviceType) (DeviceTypeList, bool) {
	if int(l.size) >= len(l.types) {
		return l, false
	}
	l.types[l.size] = t
	l.size++
	return l, true
}

// Types returns the occupied entries.
func (l DeviceTypeList) Types() []DeviceType {
	out := make([]DeviceType, l.size)
	copy(out, l.types[:l.size])
	return out
}
