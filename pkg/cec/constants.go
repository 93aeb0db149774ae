// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package cec provides a safe access layer for HDMI-CEC adapters driven by a
// libcec-class native library.
//
// The native interface is C-shaped: enums arrive as possibly out-of-range
// integers, payloads as fixed buffers with separate length fields, address
// sets as bit-mask arrays, and events through callbacks carrying a raw
// user-data pointer. This package converts all of that into a domain model
// where illegal states are unrepresentable: closed enumerations with fallible
// decoding, capacity-bounded packets, address sets that enforce their own
// invariants, and closures dispatched from an owned callback block.
//
// A connection is opened through the ConfigBuilder and released with Close:
//
//	conn, err := cec.NewConfigBuilder().
//		DeviceName("cinder").
//		DeviceTypes(cec.NewDeviceTypeList(cec.DeviceTypeRecordingDevice)).
//		DetectPort(true).
//		Connect()
//
// Every value in this file is a native discriminant from the CEC
// specification as exposed by libcec; do not renumber.
package cec

// LogicalAddress identifies a participant on the CEC bus.
type LogicalAddress int32

// Logical addresses. DeviceUnknown is the library's "no address" marker;
// DeviceUnregistered doubles as the broadcast address.
const (
	DeviceUnknown          LogicalAddress = -1
	DeviceTV               LogicalAddress = 0
	DeviceRecordingDevice1 LogicalAddress = 1
	DeviceRecordingDevice2 LogicalAddress = 2
	DeviceTuner1           LogicalAddress = 3
	DevicePlaybackDevice1  LogicalAddress = 4
	DeviceAudioSystem      LogicalAddress = 5
	DeviceTuner2           LogicalAddress = 6
	DeviceTuner3           LogicalAddress = 7
	DevicePlaybackDevice2  LogicalAddress = 8
	DeviceRecordingDevice3 LogicalAddress = 9
	DeviceTuner4           LogicalAddress = 10
	DevicePlaybackDevice3  LogicalAddress = 11
	DeviceReserved1        LogicalAddress = 12
	DeviceReserved2        LogicalAddress = 13
	DeviceFreeUse          LogicalAddress = 14
	DeviceUnregistered     LogicalAddress = 15
)

// Opcode identifies the purpose of a command frame.
type Opcode int32

// Opcodes.
const (
	OpcodeFeatureAbort                 Opcode = 0x00
	OpcodeImageViewOn                  Opcode = 0x04
	OpcodeTunerStepIncrement           Opcode = 0x05
	OpcodeTunerStepDecrement           Opcode = 0x06
	OpcodeTunerDeviceStatus            Opcode = 0x07
	OpcodeGiveTunerDeviceStatus        Opcode = 0x08
	OpcodeRecordOn                     Opcode = 0x09
	OpcodeRecordStatus                 Opcode = 0x0A
	OpcodeRecordOff                    Opcode = 0x0B
	OpcodeTextViewOn                   Opcode = 0x0D
	OpcodeRecordTVScreen               Opcode = 0x0F
	OpcodeGiveDeckStatus               Opcode = 0x1A
	OpcodeDeckStatus                   Opcode = 0x1B
	OpcodeSetMenuLanguage              Opcode = 0x32
	OpcodeClearAnalogueTimer           Opcode = 0x33
	OpcodeSetAnalogueTimer             Opcode = 0x34
	OpcodeTimerStatus                  Opcode = 0x35
	OpcodeStandby                      Opcode = 0x36
	OpcodePlay                         Opcode = 0x41
	OpcodeDeckControl                  Opcode = 0x42
	OpcodeTimerClearedStatus           Opcode = 0x43
	OpcodeUserControlPressed           Opcode = 0x44
	OpcodeUserControlRelease           Opcode = 0x45
	OpcodeGiveOSDName                  Opcode = 0x46
	OpcodeSetOSDName                   Opcode = 0x47
	OpcodeSetOSDString                 Opcode = 0x64
	OpcodeSetTimerProgramTitle         Opcode = 0x67
	OpcodeSystemAudioModeRequest       Opcode = 0x70
	OpcodeGiveAudioStatus              Opcode = 0x71
	OpcodeSetSystemAudioMode           Opcode = 0x72
	OpcodeReportAudioStatus            Opcode = 0x7A
	OpcodeGiveSystemAudioModeStatus    Opcode = 0x7D
	OpcodeSystemAudioModeStatus        Opcode = 0x7E
	OpcodeRoutingChange                Opcode = 0x80
	OpcodeRoutingInformation           Opcode = 0x81
	OpcodeActiveSource                 Opcode = 0x82
	OpcodeGivePhysicalAddress          Opcode = 0x83
	OpcodeReportPhysicalAddress        Opcode = 0x84
	OpcodeRequestActiveSource          Opcode = 0x85
	OpcodeSetStreamPath                Opcode = 0x86
	OpcodeDeviceVendorID               Opcode = 0x87
	OpcodeVendorCommand                Opcode = 0x89
	OpcodeVendorRemoteButtonDown       Opcode = 0x8A
	OpcodeVendorRemoteButtonUp         Opcode = 0x8B
	OpcodeGiveDeviceVendorID           Opcode = 0x8C
	OpcodeMenuRequest                  Opcode = 0x8D
	OpcodeMenuStatus                   Opcode = 0x8E
	OpcodeGiveDevicePowerStatus        Opcode = 0x8F
	OpcodeReportPowerStatus            Opcode = 0x90
	OpcodeGetMenuLanguage              Opcode = 0x91
	OpcodeSelectAnalogueService        Opcode = 0x92
	OpcodeSelectDigitalService         Opcode = 0x93
	OpcodeSetDigitalTimer              Opcode = 0x97
	OpcodeClearDigitalTimer            Opcode = 0x99
	OpcodeSetAudioRate                 Opcode = 0x9A
	OpcodeInactiveSource               Opcode = 0x9D
	OpcodeCECVersion                   Opcode = 0x9E
	OpcodeGetCECVersion                Opcode = 0x9F
	OpcodeVendorCommandWithID          Opcode = 0xA0
	OpcodeClearExternalTimer           Opcode = 0xA1
	OpcodeSetExternalTimer             Opcode = 0xA2
	OpcodeReportShortAudioDescriptors  Opcode = 0xA3
	OpcodeRequestShortAudioDescriptors Opcode = 0xA4
	OpcodeStartARC                     Opcode = 0xC0
	OpcodeReportARCStarted             Opcode = 0xC1
	OpcodeReportARCEnded               Opcode = 0xC2
	OpcodeRequestARCStart              Opcode = 0xC3
	OpcodeRequestARCEnd                Opcode = 0xC4
	OpcodeEndARC                       Opcode = 0xC5
	OpcodeCDC                          Opcode = 0xF8
	OpcodeNone                         Opcode = 0xFD
	OpcodeAbort                        Opcode = 0xFF
)

// PowerStatus reports a device's power state.
type PowerStatus int32

// Power status values.
const (
	PowerStatusOn                      PowerStatus = 0x00
	PowerStatusStandby                 PowerStatus = 0x01
	PowerStatusInTransitionStandbyToOn PowerStatus = 0x02
	PowerStatusInTransitionOnToStandby PowerStatus = 0x03
	PowerStatusUnknown                 PowerStatus = 0x99
)

// LogLevel is the severity of a native diagnostic message. Levels are bit
// flags; LogLevelAll is the mask of every level.
type LogLevel int32

// Log levels.
const (
	LogLevelError   LogLevel = 1
	LogLevelWarning LogLevel = 2
	LogLevelNotice  LogLevel = 4
	LogLevelTraffic LogLevel = 8
	LogLevelDebug   LogLevel = 16
	LogLevelAll     LogLevel = 31
)

// UserControlCode is a remote-control key code.
type UserControlCode int32

// User control (remote key) codes.
const (
	KeySelect                   UserControlCode = 0x00
	KeyUp                       UserControlCode = 0x01
	KeyDown                     UserControlCode = 0x02
	KeyLeft                     UserControlCode = 0x03
	KeyRight                    UserControlCode = 0x04
	KeyRightUp                  UserControlCode = 0x05
	KeyRightDown                UserControlCode = 0x06
	KeyLeftUp                   UserControlCode = 0x07
	KeyLeftDown                 UserControlCode = 0x08
	KeyRootMenu                 UserControlCode = 0x09
	KeySetupMenu                UserControlCode = 0x0A
	KeyContentsMenu             UserControlCode = 0x0B
	KeyFavoriteMenu             UserControlCode = 0x0C
	KeyExit                     UserControlCode = 0x0D
	KeyTopMenu                  UserControlCode = 0x10
	KeyDVDMenu                  UserControlCode = 0x11
	KeyNumberEntryMode          UserControlCode = 0x1D
	KeyNumber11                 UserControlCode = 0x1E
	KeyNumber12                 UserControlCode = 0x1F
	KeyNumber0                  UserControlCode = 0x20
	KeyNumber1                  UserControlCode = 0x21
	KeyNumber2                  UserControlCode = 0x22
	KeyNumber3                  UserControlCode = 0x23
	KeyNumber4                  UserControlCode = 0x24
	KeyNumber5                  UserControlCode = 0x25
	KeyNumber6                  UserControlCode = 0x26
	KeyNumber7                  UserControlCode = 0x27
	KeyNumber8                  UserControlCode = 0x28
	KeyNumber9                  UserControlCode = 0x29
	KeyDot                      UserControlCode = 0x2A
	KeyEnter                    UserControlCode = 0x2B
	KeyClear                    UserControlCode = 0x2C
	KeyNextFavorite             UserControlCode = 0x2F
	KeyChannelUp                UserControlCode = 0x30
	KeyChannelDown              UserControlCode = 0x31
	KeyPreviousChannel          UserControlCode = 0x32
	KeySoundSelect              UserControlCode = 0x33
	KeyInputSelect              UserControlCode = 0x34
	KeyDisplayInformation       UserControlCode = 0x35
	KeyHelp                     UserControlCode = 0x36
	KeyPageUp                   UserControlCode = 0x37
	KeyPageDown                 UserControlCode = 0x38
	KeyPower                    UserControlCode = 0x40
	KeyVolumeUp                 UserControlCode = 0x41
	KeyVolumeDown               UserControlCode = 0x42
	KeyMute                     UserControlCode = 0x43
	KeyPlay                     UserControlCode = 0x44
	KeyStop                     UserControlCode = 0x45
	KeyPause                    UserControlCode = 0x46
	KeyRecord                   UserControlCode = 0x47
	KeyRewind                   UserControlCode = 0x48
	KeyFastForward              UserControlCode = 0x49
	KeyEject                    UserControlCode = 0x4A
	KeyForward                  UserControlCode = 0x4B
	KeyBackward                 UserControlCode = 0x4C
	KeyStopRecord               UserControlCode = 0x4D
	KeyPauseRecord              UserControlCode = 0x4E
	KeyAngle                    UserControlCode = 0x50
	KeySubPicture               UserControlCode = 0x51
	KeyVideoOnDemand            UserControlCode = 0x52
	KeyElectronicProgramGuide   UserControlCode = 0x53
	KeyTimerProgramming         UserControlCode = 0x54
	KeyInitialConfiguration     UserControlCode = 0x55
	KeySelectBroadcastType      UserControlCode = 0x56
	KeySelectSoundPresentation  UserControlCode = 0x57
	KeyPlayFunction             UserControlCode = 0x60
	KeyPausePlayFunction        UserControlCode = 0x61
	KeyRecordFunction           UserControlCode = 0x62
	KeyPauseRecordFunction      UserControlCode = 0x63
	KeyStopFunction             UserControlCode = 0x64
	KeyMuteFunction             UserControlCode = 0x65
	KeyRestoreVolumeFunction    UserControlCode = 0x66
	KeyTuneFunction             UserControlCode = 0x67
	KeySelectMediaFunction      UserControlCode = 0x68
	KeySelectAVInputFunction    UserControlCode = 0x69
	KeySelectAudioInputFunction UserControlCode = 0x6A
	KeyPowerToggleFunction      UserControlCode = 0x6B
	KeyPowerOffFunction         UserControlCode = 0x6C
	KeyPowerOnFunction          UserControlCode = 0x6D
	KeyF1Blue                   UserControlCode = 0x71
	KeyF2Red                    UserControlCode = 0x72
	KeyF3Green                  UserControlCode = 0x73
	KeyF4Yellow                 UserControlCode = 0x74
	KeyF5                       UserControlCode = 0x75
	KeyData                     UserControlCode = 0x76
	KeyANReturn                 UserControlCode = 0x91
	KeyANChannelsList           UserControlCode = 0x96
	KeyUnknown                  UserControlCode = 0xFF
)

// DeviceType is a device role on the bus.
type DeviceType int32

// Device types.
const (
	DeviceTypeTV              DeviceType = 0
	DeviceTypeRecordingDevice DeviceType = 1
	DeviceTypeReserved        DeviceType = 2
	DeviceTypeTuner           DeviceType = 3
	DeviceTypePlaybackDevice  DeviceType = 4
	DeviceTypeAudioSystem     DeviceType = 5
)

// AdapterType identifies the kind of CEC adapter hardware.
type AdapterType int32

// Adapter types.
const (
	AdapterTypeUnknown         AdapterType = 0x0
	AdapterTypeP8External      AdapterType = 0x1
	AdapterTypeP8Daughterboard AdapterType = 0x2
	AdapterTypeRPI             AdapterType = 0x100
	AdapterTypeTDA995x         AdapterType = 0x200
	AdapterTypeExynos          AdapterType = 0x300
	AdapterTypeLinux           AdapterType = 0x400
	AdapterTypeAOCEC           AdapterType = 0x500
	AdapterTypeIMX             AdapterType = 0x600
)

// VendorID is an IEEE OUI identifying a device vendor.
type VendorID uint32

// Vendor IDs.
const (
	VendorToshiba       VendorID = 0x000039
	VendorSamsung       VendorID = 0x0000F0
	VendorDenon         VendorID = 0x0005CD
	VendorMarantz       VendorID = 0x000678
	VendorLoewe         VendorID = 0x000982
	VendorOnkyo         VendorID = 0x0009B0
	VendorMedion        VendorID = 0x000CB8
	VendorToshiba2      VendorID = 0x000CE7
	VendorApple         VendorID = 0x0010FA
	VendorPulseEight    VendorID = 0x001582
	VendorHarmanKardon2 VendorID = 0x001950
	VendorGoogle        VendorID = 0x001A11
	VendorAkai          VendorID = 0x0020C7
	VendorAOC           VendorID = 0x002467
	VendorPanasonic     VendorID = 0x008045
	VendorPhilips       VendorID = 0x00903E
	VendorDaewoo        VendorID = 0x009053
	VendorYamaha        VendorID = 0x00A0DE
	VendorGrundig       VendorID = 0x00D0D5
	VendorPioneer       VendorID = 0x00E036
	VendorLG            VendorID = 0x00E091
	VendorSharp         VendorID = 0x08001F
	VendorSony          VendorID = 0x080046
	VendorBroadcom      VendorID = 0x18C086
	VendorSharp2        VendorID = 0x534850
	VendorVizio         VendorID = 0x6B746D
	VendorBenq          VendorID = 0x8065E9
	VendorHarmanKardon  VendorID = 0x9C645E
	VendorUnknown       VendorID = 0
)

// Alert is a library-level warning raised through the alert callback.
type Alert int32

// Alert kinds.
const (
	AlertServiceDevice        Alert = 0
	AlertConnectionLost       Alert = 1
	AlertPermissionError      Alert = 2
	AlertPortBusy             Alert = 3
	AlertPhysicalAddressError Alert = 4
	AlertTVPollFailed         Alert = 5
)

// CECVersion is the protocol version spoken by a device.
type CECVersion int32

// CEC versions.
const (
	VersionUnknown CECVersion = 0x00
	Version12      CECVersion = 0x01
	Version12A     CECVersion = 0x02
	Version13      CECVersion = 0x03
	Version13A     CECVersion = 0x04
	Version14      CECVersion = 0x05
	Version20      CECVersion = 0x06
)

// BusDeviceStatus reports whether a device is present on the bus.
type BusDeviceStatus int32

// Bus device status values.
const (
	BusDeviceStatusUnknown         BusDeviceStatus = 0
	BusDeviceStatusPresent         BusDeviceStatus = 1
	BusDeviceStatusNotPresent      BusDeviceStatus = 2
	BusDeviceStatusHandledByLibCEC BusDeviceStatus = 3
)

// AbortReason explains a FEATURE_ABORT response.
type AbortReason int32

// Abort reasons.
const (
	AbortReasonUnrecognizedOpcode        AbortReason = 0
	AbortReasonNotInCorrectModeToRespond AbortReason = 1
	AbortReasonCannotProvideSource       AbortReason = 2
	AbortReasonInvalidOperand            AbortReason = 3
	AbortReasonRefused                   AbortReason = 4
)

// AnalogueBroadcastType selects an analogue broadcast source.
type AnalogueBroadcastType int32

// Analogue broadcast types.
const (
	AnalogueBroadcastTypeCable      AnalogueBroadcastType = 0
	AnalogueBroadcastTypeSatellite  AnalogueBroadcastType = 1
	AnalogueBroadcastTypeTerrestial AnalogueBroadcastType = 2
)

// AudioRate controls audio rate negotiation.
type AudioRate int32

// Audio rates.
const (
	AudioRateControlOff       AudioRate = 0
	AudioRateStandardRate100  AudioRate = 1
	AudioRateFastRateMax101   AudioRate = 2
	AudioRateSlowRateMin99    AudioRate = 3
	AudioRateStandardRate1000 AudioRate = 4
	AudioRateFastRateMax1001  AudioRate = 5
	AudioRateSlowRateMin999   AudioRate = 6
)

// AudioStatus carries the audio system's volume/mute status byte. The values
// here are the masks and bounds the protocol defines for that byte.
type AudioStatus int32

// Audio status masks and bounds.
const (
	AudioStatusMuteStatusMask   AudioStatus = 0x80
	AudioStatusVolumeStatusMask AudioStatus = 0x7F
	AudioStatusVolumeMin        AudioStatus = 0x00
	AudioStatusVolumeMax        AudioStatus = 0x64
)

// DeckControlMode is a deck transport control request.
type DeckControlMode int32

// Deck control modes.
const (
	DeckControlModeSkipForwardWind   DeckControlMode = 1
	DeckControlModeSkipReverseRewind DeckControlMode = 2
	DeckControlModeStop              DeckControlMode = 3
	DeckControlModeEject             DeckControlMode = 4
)

// DeckInfo reports deck transport state.
type DeckInfo int32

// Deck info values.
const (
	DeckInfoPlay               DeckInfo = 0x11
	DeckInfoRecord             DeckInfo = 0x12
	DeckInfoPlayReverse        DeckInfo = 0x13
	DeckInfoStill              DeckInfo = 0x14
	DeckInfoSlow               DeckInfo = 0x15
	DeckInfoSlowReverse        DeckInfo = 0x16
	DeckInfoFastForward        DeckInfo = 0x17
	DeckInfoFastReverse        DeckInfo = 0x18
	DeckInfoNoMedia            DeckInfo = 0x19
	DeckInfoStop               DeckInfo = 0x1A
	DeckInfoSkipForwardWind    DeckInfo = 0x1B
	DeckInfoSkipReverseRewind  DeckInfo = 0x1C
	DeckInfoIndexSearchForward DeckInfo = 0x1D
	DeckInfoIndexSearchReverse DeckInfo = 0x1E
	DeckInfoOtherStatus        DeckInfo = 0x1F
	DeckInfoOtherStatusLG      DeckInfo = 0x20
)

// DisplayControl selects how an on-screen string is displayed.
type DisplayControl int32

// Display control values.
const (
	DisplayControlDisplayForDefaultTime DisplayControl = 0x00
	DisplayControlDisplayUntilCleared   DisplayControl = 0x40
	DisplayControlClearPreviousMessage  DisplayControl = 0x80
	DisplayControlReservedForFutureUse  DisplayControl = 0xC0
)

// ExternalSourceSpecifier selects how an external source is identified.
type ExternalSourceSpecifier int32

// External source specifiers.
const (
	ExternalSourceSpecifierPlug            ExternalSourceSpecifier = 4
	ExternalSourceSpecifierPhysicalAddress ExternalSourceSpecifier = 5
)

// MenuRequestType is a device menu control request.
type MenuRequestType int32

// Menu request types.
const (
	MenuRequestTypeActivate   MenuRequestType = 0
	MenuRequestTypeDeactivate MenuRequestType = 1
	MenuRequestTypeQuery      MenuRequestType = 2
)

// MenuState reports whether a device menu is active.
type MenuState int32

// Menu states.
const (
	MenuStateActivated   MenuState = 0
	MenuStateDeactivated MenuState = 1
)

// PlayMode is a PLAY command's transport mode.
type PlayMode int32

// Play modes.
const (
	PlayModePlayForward            PlayMode = 0x24
	PlayModePlayReverse            PlayMode = 0x20
	PlayModePlayStill              PlayMode = 0x25
	PlayModeFastForwardMinSpeed    PlayMode = 0x05
	PlayModeFastForwardMediumSpeed PlayMode = 0x06
	PlayModeFastForwardMaxSpeed    PlayMode = 0x07
	PlayModeFastReverseMinSpeed    PlayMode = 0x09
	PlayModeFastReverseMediumSpeed PlayMode = 0x0A
	PlayModeFastReverseMaxSpeed    PlayMode = 0x0B
	PlayModeSlowForwardMinSpeed    PlayMode = 0x15
	PlayModeSlowForwardMediumSpeed PlayMode = 0x16
	PlayModeSlowForwardMaxSpeed    PlayMode = 0x17
	PlayModeSlowReverseMinSpeed    PlayMode = 0x19
	PlayModeSlowReverseMediumSpeed PlayMode = 0x1A
	PlayModeSlowReverseMaxSpeed    PlayMode = 0x1B
)

// RecordSourceType selects what a recording device should record.
type RecordSourceType int32

// Record source types.
const (
	RecordSourceTypeOwnSource               RecordSourceType = 1
	RecordSourceTypeDigitalService          RecordSourceType = 2
	RecordSourceTypeAnalogueService         RecordSourceType = 3
	RecordSourceTypeExternalPlus            RecordSourceType = 4
	RecordSourceTypeExternalPhysicalAddress RecordSourceType = 5
)

// RecordStatusInfo reports the outcome of a record request.
type RecordStatusInfo int32

// Record status values.
const (
	RecordStatusInfoRecordingCurrentlySelectedSource         RecordStatusInfo = 0x01
	RecordStatusInfoRecordingDigitalService                  RecordStatusInfo = 0x02
	RecordStatusInfoRecordingAnalogueService                 RecordStatusInfo = 0x03
	RecordStatusInfoRecordingExternalInput                   RecordStatusInfo = 0x04
	RecordStatusInfoNoRecordingUnableToRecordDigitalService  RecordStatusInfo = 0x05
	RecordStatusInfoNoRecordingUnableToRecordAnalogueService RecordStatusInfo = 0x06
	RecordStatusInfoNoRecordingUnableToSelectRequiredService RecordStatusInfo = 0x07
	RecordStatusInfoNoRecordingInvalidExternalPlugNumber     RecordStatusInfo = 0x09
	RecordStatusInfoNoRecordingInvalidExternalAddress        RecordStatusInfo = 0x0A
	RecordStatusInfoNoRecordingCASystemNotSupported          RecordStatusInfo = 0x0B
	RecordStatusInfoNoRecordingNoOrInsufficientEntitlements  RecordStatusInfo = 0x0C
	RecordStatusInfoNoRecordingNotAllowedToCopySource        RecordStatusInfo = 0x0D
	RecordStatusInfoNoRecordingNoFurtherCopiesAllowed        RecordStatusInfo = 0x0E
	RecordStatusInfoNoRecordingNoMedia                       RecordStatusInfo = 0x10
	RecordStatusInfoNoRecordingPlaying                       RecordStatusInfo = 0x11
	RecordStatusInfoNoRecordingAlreadyRecording              RecordStatusInfo = 0x12
	RecordStatusInfoNoRecordingMediaProtected                RecordStatusInfo = 0x13
	RecordStatusInfoNoRecordingNoSourceSignal                RecordStatusInfo = 0x14
	RecordStatusInfoNoRecordingMediaProblem                  RecordStatusInfo = 0x15
	RecordStatusInfoNoRecordingNotEnoughSpaceAvailable       RecordStatusInfo = 0x16
	RecordStatusInfoNoRecordingParentalLockOn                RecordStatusInfo = 0x17
	RecordStatusInfoRecordingTerminatedNormally              RecordStatusInfo = 0x1A
	RecordStatusInfoRecordingHasAlreadyTerminated            RecordStatusInfo = 0x1B
	RecordStatusInfoNoRecordingOtherReason                   RecordStatusInfo = 0x1F
)

// RecordingSequence is a bit mask of weekdays for a timer recording.
type RecordingSequence int32

// Recording sequence values.
const (
	RecordingSequenceOnceOnly  RecordingSequence = 0x00
	RecordingSequenceSunday    RecordingSequence = 0x01
	RecordingSequenceMonday    RecordingSequence = 0x02
	RecordingSequenceTuesday   RecordingSequence = 0x04
	RecordingSequenceWednesday RecordingSequence = 0x08
	RecordingSequenceThursday  RecordingSequence = 0x10
	RecordingSequenceFriday    RecordingSequence = 0x20
	RecordingSequenceSaturday  RecordingSequence = 0x40
)

// StatusRequest selects one-shot versus continuous status reporting.
type StatusRequest int32

// Status request values.
const (
	StatusRequestOn   StatusRequest = 1
	StatusRequestOff  StatusRequest = 2
	StatusRequestOnce StatusRequest = 3
)

// SystemAudioStatus reports whether system audio mode is on.
type SystemAudioStatus int32

// System audio status values.
const (
	SystemAudioStatusOff SystemAudioStatus = 0
	SystemAudioStatusOn  SystemAudioStatus = 1
)

// TimerClearedStatusData reports the outcome of clearing a timer.
type TimerClearedStatusData int32

// Timer cleared status values.
const (
	TimerClearedStatusDataNotClearedRecording       TimerClearedStatusData = 0x00
	TimerClearedStatusDataNotClearedNoMatching      TimerClearedStatusData = 0x01
	TimerClearedStatusDataNotClearedNoInfoAvailable TimerClearedStatusData = 0x02
	TimerClearedStatusDataCleared                   TimerClearedStatusData = 0x80
)

// TimerOverlapWarning reports whether timer blocks overlap.
type TimerOverlapWarning int32

// Timer overlap values.
const (
	TimerOverlapWarningNoOverlap          TimerOverlapWarning = 0
	TimerOverlapWarningTimerBlocksOverlap TimerOverlapWarning = 1
)

// MediaInfo reports the state of recording media.
type MediaInfo int32

// Media info values.
const (
	MediaInfoPresentAndNotProtected MediaInfo = 0x00
	MediaInfoPresentButProtected    MediaInfo = 0x01
	MediaInfoNotPresent             MediaInfo = 0x02
	MediaInfoFutureUse              MediaInfo = 0x03
)

// ProgrammedIndicator reports whether a timer was programmed.
type ProgrammedIndicator int32

// Programmed indicator values.
const (
	ProgrammedIndicatorNotProgrammed ProgrammedIndicator = 0
	ProgrammedIndicatorProgrammed    ProgrammedIndicator = 1
)

// ProgrammedInfo details a successful timer programming.
type ProgrammedInfo int32

// Programmed info values.
const (
	ProgrammedInfoFutureUse                           ProgrammedInfo = 0x0
	ProgrammedInfoEnoughSpaceAvailableForRecording    ProgrammedInfo = 0x8
	ProgrammedInfoNotEnoughSpaceAvailableForRecording ProgrammedInfo = 0x9
	ProgrammedInfoNoMediaInfoAvailable                ProgrammedInfo = 0xA
	ProgrammedInfoMayNotBeEnoughSpaceAvailable        ProgrammedInfo = 0xB
)

// NotProgrammedErrorInfo details a failed timer programming.
type NotProgrammedErrorInfo int32

// Not-programmed error values.
const (
	NotProgrammedErrorInfoFutureUse                      NotProgrammedErrorInfo = 0x0
	NotProgrammedErrorInfoNoFreeTimerAvailable           NotProgrammedErrorInfo = 0x1
	NotProgrammedErrorInfoDateOutOfRange                 NotProgrammedErrorInfo = 0x2
	NotProgrammedErrorInfoRecordingSequenceError         NotProgrammedErrorInfo = 0x3
	NotProgrammedErrorInfoInvalidExternalPlugNumber      NotProgrammedErrorInfo = 0x4
	NotProgrammedErrorInfoInvalidExternalPhysicalAddress NotProgrammedErrorInfo = 0x5
	NotProgrammedErrorInfoCASystemNotSupported           NotProgrammedErrorInfo = 0x6
	NotProgrammedErrorInfoNoOrInsufficientCAEntitlements NotProgrammedErrorInfo = 0x7
	NotProgrammedErrorInfoDoesNotSupportResolution       NotProgrammedErrorInfo = 0x8
	NotProgrammedErrorInfoParentalLockOn                 NotProgrammedErrorInfo = 0x9
	NotProgrammedErrorInfoClockFailure                   NotProgrammedErrorInfo = 0xA
	NotProgrammedErrorInfoReservedForFutureUseStart      NotProgrammedErrorInfo = 0xB
	NotProgrammedErrorInfoReservedForFutureUseEnd        NotProgrammedErrorInfo = 0xD
	NotProgrammedErrorInfoDuplicateAlreadyProgrammed     NotProgrammedErrorInfo = 0xE
)

// RecordingFlag reports whether a device is being used for recording.
type RecordingFlag int32

// Recording flag values.
const (
	RecordingFlagNotBeingUsedForRecording RecordingFlag = 0
	RecordingFlagBeingUsedForRecording    RecordingFlag = 1
)

// TunerDisplayInfo reports what a tuner is displaying.
type TunerDisplayInfo int32

// Tuner display info values.
const (
	TunerDisplayInfoDisplayingDigitalTuner  TunerDisplayInfo = 0x00
	TunerDisplayInfoNotDisplayingTuner      TunerDisplayInfo = 0x01
	TunerDisplayInfoDisplayingAnalogueTuner TunerDisplayInfo = 0x02
)

// BroadcastSystem identifies an analogue broadcast standard.
type BroadcastSystem int32

// Broadcast systems.
const (
	BroadcastSystemPalBG       BroadcastSystem = 0
	BroadcastSystemSecamL1     BroadcastSystem = 1
	BroadcastSystemPalM        BroadcastSystem = 2
	BroadcastSystemNtscM       BroadcastSystem = 3
	BroadcastSystemPalI        BroadcastSystem = 4
	BroadcastSystemSecamDK     BroadcastSystem = 5
	BroadcastSystemSecamBG     BroadcastSystem = 6
	BroadcastSystemSecamL2     BroadcastSystem = 7
	BroadcastSystemPalDK       BroadcastSystem = 8
	BroadcastSystemOtherSystem BroadcastSystem = 31
)

// ChannelIdentifier carries channel-number format masks.
type ChannelIdentifier uint32

// Channel identifier masks and formats.
const (
	ChannelNumberFormatMask  ChannelIdentifier = 0xFC000000
	ChannelNumberFormat1Part ChannelIdentifier = 0x04000000
	ChannelNumberFormat2Part ChannelIdentifier = 0x08000000
	MajorChannelNumberMask   ChannelIdentifier = 0x03FF0000
	MinorChannelNumberMask   ChannelIdentifier = 0x0000FFFF
)

// ParameterType tags the payload of a parameterised alert.
type ParameterType int32

// Parameter types.
const (
	ParameterTypeString  ParameterType = 0
	ParameterTypeUnknown ParameterType = 1
)

// LibraryVersion is a native library version triple packed as
// (major<<16 | minor<<8 | patch).
type LibraryVersion uint32

// Library versions.
const (
	LibraryVersionUnknown LibraryVersion = 0
	LibraryVersionCurrent LibraryVersion = 0x040004
)
