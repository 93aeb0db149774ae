// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"time"
	"unicode/utf8"
	"unsafe"

	"github.com/Thermoquad/cinder/pkg/cec/native"
)

// Native to domain conversions. Enum constructors are fallible and report
// false for discriminants outside the enumeration; the struct decoders wrap
// the offending field in a DecodeError.

// LogicalAddressFromNative decodes a native logical address discriminant.
func LogicalAddressFromNative(v int32) (LogicalAddress, bool) {
	a := LogicalAddress(v)
	_, ok := logicalAddressNames[a]
	return a, ok
}

// OpcodeFromNative decodes a native opcode discriminant.
func OpcodeFromNative(v int32) (Opcode, bool) {
	o := Opcode(v)
	_, ok := opcodeNames[o]
	return o, ok
}

// UserControlCodeFromNative decodes a native key code discriminant.
func UserControlCodeFromNative(v int32) (UserControlCode, bool) {
	c := UserControlCode(v)
	_, ok := userControlCodeNames[c]
	return c, ok
}

// PowerStatusFromNative decodes a native power status discriminant.
func PowerStatusFromNative(v int32) (PowerStatus, bool) {
	s := PowerStatus(v)
	_, ok := powerStatusNames[s]
	return s, ok
}

// LogLevelFromNative decodes a native log level discriminant.
func LogLevelFromNative(v int32) (LogLevel, bool) {
	l := LogLevel(v)
	_, ok := logLevelNames[l]
	return l, ok
}

// DeviceTypeFromNative decodes a native device type discriminant.
func DeviceTypeFromNative(v int32) (DeviceType, bool) {
	t := DeviceType(v)
	_, ok := deviceTypeNames[t]
	return t, ok
}

// AdapterTypeFromNative decodes a native adapter type discriminant.
func AdapterTypeFromNative(v int32) (AdapterType, bool) {
	t := AdapterType(v)
	_, ok := adapterTypeNames[t]
	return t, ok
}

// CECVersionFromNative decodes a native protocol version discriminant.
func CECVersionFromNative(v int32) (CECVersion, bool) {
	c := CECVersion(v)
	_, ok := cecVersionNames[c]
	return c, ok
}

// VendorIDFromNative decodes a vendor OUI. Unknown OUIs map to
// VendorUnknown rather than failing; the bus can carry any vendor.
func VendorIDFromNative(v uint32) VendorID {
	id := VendorID(v)
	if _, ok := vendorNames[id]; ok {
		return id
	}
	return VendorUnknown
}

// AlertFromNative decodes a native alert discriminant.
func AlertFromNative(v int32) (Alert, bool) {
	a := Alert(v)
	_, ok := alertNames[a]
	return a, ok
}

// BusDeviceStatusFromNative decodes a native bus device status discriminant.
func BusDeviceStatusFromNative(v int32) (BusDeviceStatus, bool) {
	s := BusDeviceStatus(v)
	_, ok := busDeviceStatusNames[s]
	return s, ok
}

// AbortReasonFromNative decodes a native abort reason discriminant.
func AbortReasonFromNative(v int32) (AbortReason, bool) {
	r := AbortReason(v)
	return r, r >= AbortReasonUnrecognizedOpcode && r <= AbortReasonRefused
}

// AnalogueBroadcastTypeFromNative decodes a native broadcast type.
func AnalogueBroadcastTypeFromNative(v int32) (AnalogueBroadcastType, bool) {
	t := AnalogueBroadcastType(v)
	return t, t >= AnalogueBroadcastTypeCable && t <= AnalogueBroadcastTypeTerrestial
}

// AudioRateFromNative decodes a native audio rate discriminant.
func AudioRateFromNative(v int32) (AudioRate, bool) {
	r := AudioRate(v)
	return r, r >= AudioRateControlOff && r <= AudioRateSlowRateMin999
}

// DeckControlModeFromNative decodes a native deck control mode.
func DeckControlModeFromNative(v int32) (DeckControlMode, bool) {
	m := DeckControlMode(v)
	return m, m >= DeckControlModeSkipForwardWind && m <= DeckControlModeEject
}

// DeckInfoFromNative decodes a native deck info discriminant.
func DeckInfoFromNative(v int32) (DeckInfo, bool) {
	d := DeckInfo(v)
	return d, d >= DeckInfoPlay && d <= DeckInfoOtherStatusLG
}

// DisplayControlFromNative decodes a native display control discriminant.
func DisplayControlFromNative(v int32) (DisplayControl, bool) {
	d := DisplayControl(v)
	switch d {
	case DisplayControlDisplayForDefaultTime, DisplayControlDisplayUntilCleared,
		DisplayControlClearPreviousMessage, DisplayControlReservedForFutureUse:
		return d, true
	}
	return d, false
}

// ExternalSourceSpecifierFromNative decodes a native source specifier.
func ExternalSourceSpecifierFromNative(v int32) (ExternalSourceSpecifier, bool) {
	s := ExternalSourceSpecifier(v)
	return s, s == ExternalSourceSpecifierPlug || s == ExternalSourceSpecifierPhysicalAddress
}

// MenuRequestTypeFromNative decodes a native menu request type.
func MenuRequestTypeFromNative(v int32) (MenuRequestType, bool) {
	t := MenuRequestType(v)
	return t, t >= MenuRequestTypeActivate && t <= MenuRequestTypeQuery
}

// MenuStateFromNative decodes a native menu state.
func MenuStateFromNative(v int32) (MenuState, bool) {
	s := MenuState(v)
	return s, s == MenuStateActivated || s == MenuStateDeactivated
}

// PlayModeFromNative decodes a native play mode discriminant.
func PlayModeFromNative(v int32) (PlayMode, bool) {
	m := PlayMode(v)
	switch m {
	case PlayModePlayForward, PlayModePlayReverse, PlayModePlayStill,
		PlayModeFastForwardMinSpeed, PlayModeFastForwardMediumSpeed, PlayModeFastForwardMaxSpeed,
		PlayModeFastReverseMinSpeed, PlayModeFastReverseMediumSpeed, PlayModeFastReverseMaxSpeed,
		PlayModeSlowForwardMinSpeed, PlayModeSlowForwardMediumSpeed, PlayModeSlowForwardMaxSpeed,
		PlayModeSlowReverseMinSpeed, PlayModeSlowReverseMediumSpeed, PlayModeSlowReverseMaxSpeed:
		return m, true
	}
	return m, false
}

// RecordSourceTypeFromNative decodes a native record source type.
func RecordSourceTypeFromNative(v int32) (RecordSourceType, bool) {
	t := RecordSourceType(v)
	return t, t >= RecordSourceTypeOwnSource && t <= RecordSourceTypeExternalPhysicalAddress
}

// RecordStatusInfoFromNative decodes a native record status discriminant.
func RecordStatusInfoFromNative(v int32) (RecordStatusInfo, bool) {
	s := RecordStatusInfo(v)
	switch {
	case s >= RecordStatusInfoRecordingCurrentlySelectedSource && s <= RecordStatusInfoNoRecordingUnableToSelectRequiredService:
		return s, true
	case s >= RecordStatusInfoNoRecordingInvalidExternalPlugNumber && s <= RecordStatusInfoNoRecordingNoFurtherCopiesAllowed:
		return s, true
	case s >= RecordStatusInfoNoRecordingNoMedia && s <= RecordStatusInfoNoRecordingParentalLockOn:
		return s, true
	case s == RecordStatusInfoRecordingTerminatedNormally, s == RecordStatusInfoRecordingHasAlreadyTerminated:
		return s, true
	case s == RecordStatusInfoNoRecordingOtherReason:
		return s, true
	}
	return s, false
}

// RecordingSequenceFromNative decodes a native recording sequence value.
func RecordingSequenceFromNative(v int32) (RecordingSequence, bool) {
	s := RecordingSequence(v)
	switch s {
	case RecordingSequenceOnceOnly, RecordingSequenceSunday, RecordingSequenceMonday,
		RecordingSequenceTuesday, RecordingSequenceWednesday, RecordingSequenceThursday,
		RecordingSequenceFriday, RecordingSequenceSaturday:
		return s, true
	}
	return s, false
}

// StatusRequestFromNative decodes a native status request value.
func StatusRequestFromNative(v int32) (StatusRequest, bool) {
	r := StatusRequest(v)
	return r, r >= StatusRequestOn && r <= StatusRequestOnce
}

// SystemAudioStatusFromNative decodes a native system audio status.
func SystemAudioStatusFromNative(v int32) (SystemAudioStatus, bool) {
	s := SystemAudioStatus(v)
	return s, s == SystemAudioStatusOff || s == SystemAudioStatusOn
}

// TimerClearedStatusDataFromNative decodes a native timer cleared status.
func TimerClearedStatusDataFromNative(v int32) (TimerClearedStatusData, bool) {
	s := TimerClearedStatusData(v)
	switch s {
	case TimerClearedStatusDataNotClearedRecording, TimerClearedStatusDataNotClearedNoMatching,
		TimerClearedStatusDataNotClearedNoInfoAvailable, TimerClearedStatusDataCleared:
		return s, true
	}
	return s, false
}

// TimerOverlapWarningFromNative decodes a native overlap warning.
func TimerOverlapWarningFromNative(v int32) (TimerOverlapWarning, bool) {
	w := TimerOverlapWarning(v)
	return w, w == TimerOverlapWarningNoOverlap || w == TimerOverlapWarningTimerBlocksOverlap
}

// MediaInfoFromNative decodes a native media info value.
func MediaInfoFromNative(v int32) (MediaInfo, bool) {
	m := MediaInfo(v)
	return m, m >= MediaInfoPresentAndNotProtected && m <= MediaInfoFutureUse
}

// ProgrammedIndicatorFromNative decodes a native programmed indicator.
func ProgrammedIndicatorFromNative(v int32) (ProgrammedIndicator, bool) {
	i := ProgrammedIndicator(v)
	return i, i == ProgrammedIndicatorNotProgrammed || i == ProgrammedIndicatorProgrammed
}

// ProgrammedInfoFromNative decodes a native programmed info value.
func ProgrammedInfoFromNative(v int32) (ProgrammedInfo, bool) {
	i := ProgrammedInfo(v)
	switch i {
	case ProgrammedInfoFutureUse, ProgrammedInfoEnoughSpaceAvailableForRecording,
		ProgrammedInfoNotEnoughSpaceAvailableForRecording, ProgrammedInfoNoMediaInfoAvailable,
		ProgrammedInfoMayNotBeEnoughSpaceAvailable:
		return i, true
	}
	return i, false
}

// NotProgrammedErrorInfoFromNative decodes a native not-programmed error.
func NotProgrammedErrorInfoFromNative(v int32) (NotProgrammedErrorInfo, bool) {
	i := NotProgrammedErrorInfo(v)
	switch {
	case i >= NotProgrammedErrorInfoFutureUse && i <= NotProgrammedErrorInfoReservedForFutureUseEnd:
		return i, true
	case i == NotProgrammedErrorInfoDuplicateAlreadyProgrammed:
		return i, true
	}
	return i, false
}

// RecordingFlagFromNative decodes a native recording flag.
func RecordingFlagFromNative(v int32) (RecordingFlag, bool) {
	f := RecordingFlag(v)
	return f, f == RecordingFlagNotBeingUsedForRecording || f == RecordingFlagBeingUsedForRecording
}

// TunerDisplayInfoFromNative decodes a native tuner display info value.
func TunerDisplayInfoFromNative(v int32) (TunerDisplayInfo, bool) {
	i := TunerDisplayInfo(v)
	return i, i >= TunerDisplayInfoDisplayingDigitalTuner && i <= TunerDisplayInfoDisplayingAnalogueTuner
}

// BroadcastSystemFromNative decodes a native broadcast system discriminant.
func BroadcastSystemFromNative(v int32) (BroadcastSystem, bool) {
	s := BroadcastSystem(v)
	if s >= BroadcastSystemPalBG && s <= BroadcastSystemPalDK {
		return s, true
	}
	return s, s == BroadcastSystemOtherSystem
}

// ParameterTypeFromNative decodes a native parameter type discriminant.
func ParameterTypeFromNative(v int32) (ParameterType, bool) {
	t := ParameterType(v)
	return t, t == ParameterTypeString || t == ParameterTypeUnknown
}

func decodeDataPacket(p native.Datapacket) DataPacket {
	size := p.Size
	if int(size) > maxDataPacketLen {
		size = maxDataPacketLen
	}
	return DataPacket{data: p.Data, size: size}
}

func decodeCommand(c *native.Command) (Command, error) {
	initiator, ok := LogicalAddressFromNative(c.Initiator)
	if !ok {
		return Command{}, &DecodeError{Field: "command initiator", Value: int64(c.Initiator)}
	}
	destination, ok := LogicalAddressFromNative(c.Destination)
	if !ok {
		return Command{}, &DecodeError{Field: "command destination", Value: int64(c.Destination)}
	}
	opcode, ok := OpcodeFromNative(c.Opcode)
	if !ok {
		return Command{}, &DecodeError{Field: "command opcode", Value: int64(c.Opcode)}
	}
	timeout := c.TransmitTimeout
	if timeout < 0 {
		timeout = 0
	}
	return Command{
		Initiator:       initiator,
		Destination:     destination,
		Ack:             c.Ack != 0,
		EOM:             c.Eom != 0,
		Opcode:          opcode,
		OpcodeSet:       c.OpcodeSet != 0,
		Parameters:      decodeDataPacket(c.Parameters),
		TransmitTimeout: time.Duration(timeout) * time.Millisecond,
	}, nil
}

func decodeKeypress(k *native.Keypress) (Keypress, error) {
	code, ok := UserControlCodeFromNative(k.Keycode)
	if !ok {
		return Keypress{}, &DecodeError{Field: "keypress keycode", Value: int64(k.Keycode)}
	}
	return Keypress{
		Code:     code,
		Duration: time.Duration(k.Duration) * time.Millisecond,
	}, nil
}

func decodeLogMessage(m *native.LogMessage) (LogMessage, error) {
	message := goString(m.Message)
	if !utf8.ValidString(message) {
		return LogMessage{}, ErrLogMessageNotUTF8
	}
	level, ok := LogLevelFromNative(m.Level)
	if !ok {
		return LogMessage{}, &DecodeError{Field: "log level", Value: int64(m.Level)}
	}
	if m.Time < 0 {
		return LogMessage{}, &DecodeError{Field: "log timestamp", Value: m.Time}
	}
	return LogMessage{
		Message: message,
		Level:   level,
		Time:    time.Duration(m.Time) * time.Millisecond,
	}, nil
}

func decodeLogicalAddresses(l native.LogicalAddresses) (LogicalAddresses, error) {
	primary, ok := LogicalAddressFromNative(l.Primary)
	if !ok {
		return LogicalAddresses{}, &DecodeError{Field: "primary address", Value: int64(l.Primary)}
	}
	if primary == DeviceUnknown {
		return LogicalAddresses{}, &DecodeError{Field: "primary address", Value: int64(l.Primary)}
	}
	set := make(map[LogicalAddress]bool, len(l.Addresses))
	set[primary] = true
	for i, present := range l.Addresses {
		if present != 0 {
			set[LogicalAddress(i)] = true
		}
	}
	return LogicalAddresses{primary: primary, set: set}, nil
}

// goString copies the NUL-terminated buffer at p into a Go string. The
// buffer is only borrowed; callbacks free it after we return.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// cArrayString reads a NUL-terminated string out of a fixed native buffer.
func cArrayString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
