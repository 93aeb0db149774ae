// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewDataPacket_Bounds(t *testing.T) {
	for _, size := range []int{0, 1, 14, 63, 64} {
		payload := bytes.Repeat([]byte{0xAB}, size)
		p, err := NewDataPacket(payload)
		if err != nil {
			t.Fatalf("size %d should fit: %v", size, err)
		}
		if p.Len() != size {
			t.Errorf("size %d: Len reports %d", size, p.Len())
		}
		if !bytes.Equal(p.Bytes(), payload) {
			t.Errorf("size %d: payload corrupted", size)
		}
	}

	_, err := NewDataPacket(make([]byte, 65))
	var sizeErr *PacketSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected PacketSizeError for 65 bytes, got %v", err)
	}
	if sizeErr.Size != 65 {
		t.Errorf("error should carry the offending size, got %d", sizeErr.Size)
	}
}

func TestDataPacket_BytesIsACopy(t *testing.T) {
	p, _ := NewDataPacket([]byte{1, 2, 3})
	b := p.Bytes()
	b[0] = 99
	if p.Bytes()[0] != 1 {
		t.Error("mutating the returned slice must not reach the packet")
	}
}

func TestDataPacket_NativeRoundTrip(t *testing.T) {
	p, _ := NewDataPacket([]byte{0x04, 0x10, 0x00})
	back := decodeDataPacket(encodeDataPacket(p))
	if !bytes.Equal(back.Bytes(), p.Bytes()) {
		t.Errorf("round trip corrupted payload: %v != %v", back.Bytes(), p.Bytes())
	}
}

func TestDeviceTypeList_Bounds(t *testing.T) {
	l := NewDeviceTypeList(DeviceTypeTuner)
	if got := l.Types(); len(got) != 1 || got[0] != DeviceTypeTuner {
		t.Fatalf("unexpected initial list: %v", got)
	}

	var ok bool
	for _, dt := range []DeviceType{
		DeviceTypeTV, DeviceTypeRecordingDevice, DeviceTypePlaybackDevice, DeviceTypeAudioSystem,
	} {
		l, ok = l.Append(dt)
		if !ok {
			t.Fatalf("append of %v should fit", dt)
		}
	}
	if _, ok = l.Append(DeviceTypeReserved); ok {
		t.Error("sixth entry must be rejected")
	}
	if len(l.Types()) != 5 {
		t.Errorf("expected 5 entries, got %d", len(l.Types()))
	}
}
