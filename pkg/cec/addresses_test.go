// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import "testing"

func TestNewKnownLogicalAddress(t *testing.T) {
	if _, ok := NewKnownLogicalAddress(DeviceUnknown); ok {
		t.Error("the no-address marker is not a known address")
	}
	if _, ok := NewKnownLogicalAddress(16); ok {
		t.Error("16 is outside the address range")
	}
	k, ok := NewKnownLogicalAddress(DeviceUnregistered)
	if !ok || k.Address() != DeviceUnregistered {
		t.Error("unregistered is a known address")
	}
}

func TestNewRegisteredLogicalAddress(t *testing.T) {
	if _, ok := NewRegisteredLogicalAddress(DeviceUnregistered); ok {
		t.Error("unregistered is not a registered address")
	}
	if _, ok := NewRegisteredLogicalAddress(DeviceUnknown); ok {
		t.Error("the no-address marker is not a registered address")
	}
	r, ok := NewRegisteredLogicalAddress(DeviceAudioSystem)
	if !ok || r.Address() != DeviceAudioSystem {
		t.Error("audio system is a registered address")
	}
}

func TestOnlyPrimary(t *testing.T) {
	primary, _ := NewKnownLogicalAddress(DeviceTuner1)
	la := OnlyPrimary(primary)
	if la.Primary() != DeviceTuner1 {
		t.Errorf("primary mismatch: %v", la.Primary())
	}
	if got := la.Addresses(); len(got) != 1 || got[0] != DeviceTuner1 {
		t.Errorf("set should hold only the primary, got %v", got)
	}
}

func TestWithPrimaryAndAddresses(t *testing.T) {
	primary, _ := NewKnownLogicalAddress(DevicePlaybackDevice1)
	second, _ := NewRegisteredLogicalAddress(DevicePlaybackDevice2)
	audio, _ := NewRegisteredLogicalAddress(DeviceAudioSystem)

	la, ok := WithPrimaryAndAddresses(primary, []RegisteredLogicalAddress{second, audio})
	if !ok {
		t.Fatal("construction should succeed")
	}
	if la.Primary() != DevicePlaybackDevice1 {
		t.Errorf("primary mismatch: %v", la.Primary())
	}
	// The native mask must carry bits 4, 8 and 5, and nothing else.
	enc := encodeLogicalAddresses(la)
	for i, bit := range enc.Addresses {
		want := int32(0)
		if i == 4 || i == 5 || i == 8 {
			want = 1
		}
		if bit != want {
			t.Errorf("mask slot %d: expected %d, got %d", i, want, bit)
		}
	}
	if enc.Primary != int32(DevicePlaybackDevice1) {
		t.Errorf("native primary mismatch: %d", enc.Primary)
	}
}

func TestWithPrimaryAndAddresses_UnregisteredPrimary(t *testing.T) {
	unregistered, _ := NewKnownLogicalAddress(DeviceUnregistered)
	second, _ := NewRegisteredLogicalAddress(DeviceTV)

	if _, ok := WithPrimaryAndAddresses(unregistered, []RegisteredLogicalAddress{second}); ok {
		t.Error("an unregistered primary cannot carry secondaries")
	}

	la, ok := WithPrimaryAndAddresses(unregistered, nil)
	if !ok {
		t.Fatal("an unregistered primary with no secondaries is the default set")
	}
	if la.Primary() != DeviceUnregistered {
		t.Errorf("primary mismatch: %v", la.Primary())
	}
	if len(la.Addresses()) != 0 {
		t.Errorf("default set must be empty, got %v", la.Addresses())
	}
}

func TestLogicalAddresses_ZeroValue(t *testing.T) {
	var la LogicalAddresses
	if la.Primary() != DeviceUnregistered {
		t.Errorf("zero value primary must be unregistered, got %v", la.Primary())
	}
	if la.Contains(DeviceTV) || len(la.Addresses()) != 0 {
		t.Error("zero value set must be empty")
	}
}

func TestLogicalAddresses_NativeRoundTrip(t *testing.T) {
	primary, _ := NewKnownLogicalAddress(DeviceRecordingDevice1)
	tuner, _ := NewRegisteredLogicalAddress(DeviceTuner2)
	la, _ := WithPrimaryAndAddresses(primary, []RegisteredLogicalAddress{tuner})

	back, err := decodeLogicalAddresses(encodeLogicalAddresses(la))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if back.Primary() != la.Primary() {
		t.Errorf("primary mismatch after round trip: %v", back.Primary())
	}
	for _, a := range la.Addresses() {
		if !back.Contains(a) {
			t.Errorf("address %v lost in round trip", a)
		}
	}
}
