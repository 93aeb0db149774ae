// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import "github.com/Thermoquad/cinder/pkg/cec/native"

// maxDataPacketLen is the payload capacity of one CEC frame.
const maxDataPacketLen = native.DatapacketSize

// DataPacket is a command payload of at most 64 bytes. The zero value is an
// empty packet. Construct non-empty packets with NewDataPacket so the bound
// holds by construction.
type DataPacket struct {
	data [maxDataPacketLen]byte
	size uint8
}

// NewDataPacket copies payload into a packet. Returns a PacketSizeError when
// payload exceeds the packet capacity.
func NewDataPacket(payload []byte) (DataPacket, error) {
	if len(payload) > maxDataPacketLen {
		return DataPacket{}, &PacketSizeError{Size: len(payload)}
	}
	var p DataPacket
	copy(p.data[:], payload)
	p.size = uint8(len(payload))
	return p, nil
}

// Bytes returns a copy of the occupied payload.
func (p DataPacket) Bytes() []byte {
	out := make([]byte, p.size)
	copy(out, p.data[:p.size])
	return out
}

// Len returns the occupied payload length.
func (p DataPacket) Len() int {
	return int(p.size)
}
