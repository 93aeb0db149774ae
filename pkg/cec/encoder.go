// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import "github.com/Thermoquad/cinder/pkg/cec/native"

// Domain to native conversions. These are total: every value the domain
// types can hold has a native representation.

func encodeDataPacket(p DataPacket) native.Datapacket {
	return native.Datapacket{Data: p.data, Size: p.size}
}

func encodeCommand(c Command) native.Command {
	return native.Command{
		Initiator:       int32(c.Initiator),
		Destination:     int32(c.Destination),
		Ack:             boolToInt8(c.Ack),
		Eom:             boolToInt8(c.EOM),
		Opcode:          int32(c.Opcode),
		Parameters:      encodeDataPacket(c.Parameters),
		OpcodeSet:       boolToInt8(c.OpcodeSet),
		TransmitTimeout: int32(c.TransmitTimeout.Milliseconds()),
	}
}

func encodeLogicalAddresses(l LogicalAddresses) native.LogicalAddresses {
	out := native.LogicalAddresses{Primary: int32(l.Primary())}
	for _, a := range l.Addresses() {
		out.Addresses[a] = 1
	}
	return out
}

func encodeDeviceTypeList(l DeviceTypeList) native.DeviceTypeList {
	var out native.DeviceTypeList
	for i := range out.Types {
		out.Types[i] = int32(DeviceTypeReserved)
	}
	for i, t := range l.Types() {
		out.Types[i] = int32(t)
	}
	return out
}

// fillString copies s into dst, truncating at the buffer size. Shorter
// strings leave the remainder NUL so the native side sees a terminated
// string.
func fillString(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, s)
}

func encodeConfiguration(cfg *Config) native.Configuration {
	out := native.Configuration{
		ClientVersion: native.VersionCurrent,
		DeviceTypes:   encodeDeviceTypeList(cfg.DeviceTypes),
	}
	fillString(out.DeviceName[:], cfg.DeviceName)
	if cfg.PhysicalAddress != nil {
		out.PhysicalAddress = *cfg.PhysicalAddress
	}
	if cfg.BaseDevice != nil {
		out.BaseDevice = int32(*cfg.BaseDevice)
	}
	if cfg.HDMIPort != nil {
		out.HDMIPort = *cfg.HDMIPort
	}
	if cfg.TVVendor != nil {
		out.TvVendor = uint32(*cfg.TVVendor)
	}
	if cfg.WakeDevices != nil {
		out.WakeDevices = encodeLogicalAddresses(*cfg.WakeDevices)
	}
	if cfg.PowerOffDevices != nil {
		out.PowerOffDevices = encodeLogicalAddresses(*cfg.PowerOffDevices)
	}
	if cfg.GetSettingsFromROM != nil {
		out.GetSettingsFromROM = boolToUint8(*cfg.GetSettingsFromROM)
	}
	if cfg.ActivateSource != nil {
		out.ActivateSource = boolToUint8(*cfg.ActivateSource)
	}
	if cfg.PowerOffOnStandby != nil {
		out.PowerOffOnStandby = boolToUint8(*cfg.PowerOffOnStandby)
	}
	if cfg.DeviceLanguage != "" {
		fillString(out.DeviceLanguage[:], cfg.DeviceLanguage)
	}
	if cfg.MonitorOnly != nil {
		out.MonitorOnly = boolToUint8(*cfg.MonitorOnly)
	}
	if cfg.AdapterType != nil {
		out.AdapterType = int32(*cfg.AdapterType)
	}
	if cfg.ComboKey != nil {
		out.ComboKey = int32(*cfg.ComboKey)
	}
	if cfg.ComboKeyTimeout != nil {
		out.ComboKeyTimeoutMs = uint32(cfg.ComboKeyTimeout.Milliseconds())
	}
	if cfg.ButtonRepeatRate != nil {
		out.ButtonRepeatRateMs = uint32(cfg.ButtonRepeatRate.Milliseconds())
	}
	if cfg.ButtonReleaseDelay != nil {
		out.ButtonReleaseDelayMs = uint32(cfg.ButtonReleaseDelay.Milliseconds())
	}
	if cfg.DoubleTapTimeout != nil {
		out.DoubleTapTimeoutMs = uint32(cfg.DoubleTapTimeout.Milliseconds())
	}
	if cfg.AutoWakeAVR != nil {
		out.AutoWakeAVR = boolToUint8(*cfg.AutoWakeAVR)
	}
	return out
}

func boolToInt8(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
