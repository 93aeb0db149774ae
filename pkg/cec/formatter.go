// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import "fmt"

// Name tables for the larger enumerations. These double as the validity
// tables for the FromNative constructors in decoder.go, so every legal
// discriminant must have an entry.

var logicalAddressNames = map[LogicalAddress]string{
	DeviceUnknown:          "UNKNOWN",
	DeviceTV:               "TV",
	DeviceRecordingDevice1: "RECORDING_DEVICE_1",
	DeviceRecordingDevice2: "RECORDING_DEVICE_2",
	DeviceTuner1:           "TUNER_1",
	DevicePlaybackDevice1:  "PLAYBACK_DEVICE_1",
	DeviceAudioSystem:      "AUDIO_SYSTEM",
	DeviceTuner2:           "TUNER_2",
	DeviceTuner3:           "TUNER_3",
	DevicePlaybackDevice2:  "PLAYBACK_DEVICE_2",
	DeviceRecordingDevice3: "RECORDING_DEVICE_3",
	DeviceTuner4:           "TUNER_4",
	DevicePlaybackDevice3:  "PLAYBACK_DEVICE_3",
	DeviceReserved1:        "RESERVED_1",
	DeviceReserved2:        "RESERVED_2",
	DeviceFreeUse:          "FREE_USE",
	DeviceUnregistered:     "UNREGISTERED",
}

var opcodeNames = map[Opcode]string{
	OpcodeFeatureAbort:                 "FEATURE_ABORT",
	OpcodeImageViewOn:                  "IMAGE_VIEW_ON",
	OpcodeTunerStepIncrement:           "TUNER_STEP_INCREMENT",
	OpcodeTunerStepDecrement:           "TUNER_STEP_DECREMENT",
	OpcodeTunerDeviceStatus:            "TUNER_DEVICE_STATUS",
	OpcodeGiveTunerDeviceStatus:        "GIVE_TUNER_DEVICE_STATUS",
	OpcodeRecordOn:                     "RECORD_ON",
	OpcodeRecordStatus:                 "RECORD_STATUS",
	OpcodeRecordOff:                    "RECORD_OFF",
	OpcodeTextViewOn:                   "TEXT_VIEW_ON",
	OpcodeRecordTVScreen:               "RECORD_TV_SCREEN",
	OpcodeGiveDeckStatus:               "GIVE_DECK_STATUS",
	OpcodeDeckStatus:                   "DECK_STATUS",
	OpcodeSetMenuLanguage:              "SET_MENU_LANGUAGE",
	OpcodeClearAnalogueTimer:           "CLEAR_ANALOGUE_TIMER",
	OpcodeSetAnalogueTimer:             "SET_ANALOGUE_TIMER",
	OpcodeTimerStatus:                  "TIMER_STATUS",
	OpcodeStandby:                      "STANDBY",
	OpcodePlay:                         "PLAY",
	OpcodeDeckControl:                  "DECK_CONTROL",
	OpcodeTimerClearedStatus:           "TIMER_CLEARED_STATUS",
	OpcodeUserControlPressed:           "USER_CONTROL_PRESSED",
	OpcodeUserControlRelease:           "USER_CONTROL_RELEASE",
	OpcodeGiveOSDName:                  "GIVE_OSD_NAME",
	OpcodeSetOSDName:                   "SET_OSD_NAME",
	OpcodeSetOSDString:                 "SET_OSD_STRING",
	OpcodeSetTimerProgramTitle:         "SET_TIMER_PROGRAM_TITLE",
	OpcodeSystemAudioModeRequest:       "SYSTEM_AUDIO_MODE_REQUEST",
	OpcodeGiveAudioStatus:              "GIVE_AUDIO_STATUS",
	OpcodeSetSystemAudioMode:           "SET_SYSTEM_AUDIO_MODE",
	OpcodeReportAudioStatus:            "REPORT_AUDIO_STATUS",
	OpcodeGiveSystemAudioModeStatus:    "GIVE_SYSTEM_AUDIO_MODE_STATUS",
	OpcodeSystemAudioModeStatus:        "SYSTEM_AUDIO_MODE_STATUS",
	OpcodeRoutingChange:                "ROUTING_CHANGE",
	OpcodeRoutingInformation:           "ROUTING_INFORMATION",
	OpcodeActiveSource:                 "ACTIVE_SOURCE",
	OpcodeGivePhysicalAddress:          "GIVE_PHYSICAL_ADDRESS",
	OpcodeReportPhysicalAddress:        "REPORT_PHYSICAL_ADDRESS",
	OpcodeRequestActiveSource:          "REQUEST_ACTIVE_SOURCE",
	OpcodeSetStreamPath:                "SET_STREAM_PATH",
	OpcodeDeviceVendorID:               "DEVICE_VENDOR_ID",
	OpcodeVendorCommand:                "VENDOR_COMMAND",
	OpcodeVendorRemoteButtonDown:       "VENDOR_REMOTE_BUTTON_DOWN",
	OpcodeVendorRemoteButtonUp:         "VENDOR_REMOTE_BUTTON_UP",
	OpcodeGiveDeviceVendorID:           "GIVE_DEVICE_VENDOR_ID",
	OpcodeMenuRequest:                  "MENU_REQUEST",
	OpcodeMenuStatus:                   "MENU_STATUS",
	OpcodeGiveDevicePowerStatus:        "GIVE_DEVICE_POWER_STATUS",
	OpcodeReportPowerStatus:            "REPORT_POWER_STATUS",
	OpcodeGetMenuLanguage:              "GET_MENU_LANGUAGE",
	OpcodeSelectAnalogueService:        "SELECT_ANALOGUE_SERVICE",
	OpcodeSelectDigitalService:         "SELECT_DIGITAL_SERVICE",
	OpcodeSetDigitalTimer:              "SET_DIGITAL_TIMER",
	OpcodeClearDigitalTimer:            "CLEAR_DIGITAL_TIMER",
	OpcodeSetAudioRate:                 "SET_AUDIO_RATE",
	OpcodeInactiveSource:               "INACTIVE_SOURCE",
	OpcodeCECVersion:                   "CEC_VERSION",
	OpcodeGetCECVersion:                "GET_CEC_VERSION",
	OpcodeVendorCommandWithID:          "VENDOR_COMMAND_WITH_ID",
	OpcodeClearExternalTimer:           "CLEAR_EXTERNAL_TIMER",
	OpcodeSetExternalTimer:             "SET_EXTERNAL_TIMER",
	OpcodeReportShortAudioDescriptors:  "REPORT_SHORT_AUDIO_DESCRIPTORS",
	OpcodeRequestShortAudioDescriptors: "REQUEST_SHORT_AUDIO_DESCRIPTORS",
	OpcodeStartARC:                     "START_ARC",
	OpcodeReportARCStarted:             "REPORT_ARC_STARTED",
	OpcodeReportARCEnded:               "REPORT_ARC_ENDED",
	OpcodeRequestARCStart:              "REQUEST_ARC_START",
	OpcodeRequestARCEnd:                "REQUEST_ARC_END",
	OpcodeEndARC:                       "END_ARC",
	OpcodeCDC:                          "CDC",
	OpcodeNone:                         "NONE",
	OpcodeAbort:                        "ABORT",
}

var userControlCodeNames = map[UserControlCode]string{
	KeySelect:                   "SELECT",
	KeyUp:                       "UP",
	KeyDown:                     "DOWN",
	KeyLeft:                     "LEFT",
	KeyRight:                    "RIGHT",
	KeyRightUp:                  "RIGHT_UP",
	KeyRightDown:                "RIGHT_DOWN",
	KeyLeftUp:                   "LEFT_UP",
	KeyLeftDown:                 "LEFT_DOWN",
	KeyRootMenu:                 "ROOT_MENU",
	KeySetupMenu:                "SETUP_MENU",
	KeyContentsMenu:             "CONTENTS_MENU",
	KeyFavoriteMenu:             "FAVORITE_MENU",
	KeyExit:                     "EXIT",
	KeyTopMenu:                  "TOP_MENU",
	KeyDVDMenu:                  "DVD_MENU",
	KeyNumberEntryMode:          "NUMBER_ENTRY_MODE",
	KeyNumber11:                 "NUMBER_11",
	KeyNumber12:                 "NUMBER_12",
	KeyNumber0:                  "NUMBER_0",
	KeyNumber1:                  "NUMBER_1",
	KeyNumber2:                  "NUMBER_2",
	KeyNumber3:                  "NUMBER_3",
	KeyNumber4:                  "NUMBER_4",
	KeyNumber5:                  "NUMBER_5",
	KeyNumber6:                  "NUMBER_6",
	KeyNumber7:                  "NUMBER_7",
	KeyNumber8:                  "NUMBER_8",
	KeyNumber9:                  "NUMBER_9",
	KeyDot:                      "DOT",
	KeyEnter:                    "ENTER",
	KeyClear:                    "CLEAR",
	KeyNextFavorite:             "NEXT_FAVORITE",
	KeyChannelUp:                "CHANNEL_UP",
	KeyChannelDown:              "CHANNEL_DOWN",
	KeyPreviousChannel:          "PREVIOUS_CHANNEL",
	KeySoundSelect:              "SOUND_SELECT",
	KeyInputSelect:              "INPUT_SELECT",
	KeyDisplayInformation:       "DISPLAY_INFORMATION",
	KeyHelp:                     "HELP",
	KeyPageUp:                   "PAGE_UP",
	KeyPageDown:                 "PAGE_DOWN",
	KeyPower:                    "POWER",
	KeyVolumeUp:                 "VOLUME_UP",
	KeyVolumeDown:               "VOLUME_DOWN",
	KeyMute:                     "MUTE",
	KeyPlay:                     "PLAY",
	KeyStop:                     "STOP",
	KeyPause:                    "PAUSE",
	KeyRecord:                   "RECORD",
	KeyRewind:                   "REWIND",
	KeyFastForward:              "FAST_FORWARD",
	KeyEject:                    "EJECT",
	KeyForward:                  "FORWARD",
	KeyBackward:                 "BACKWARD",
	KeyStopRecord:               "STOP_RECORD",
	KeyPauseRecord:              "PAUSE_RECORD",
	KeyAngle:                    "ANGLE",
	KeySubPicture:               "SUB_PICTURE",
	KeyVideoOnDemand:            "VIDEO_ON_DEMAND",
	KeyElectronicProgramGuide:   "ELECTRONIC_PROGRAM_GUIDE",
	KeyTimerProgramming:         "TIMER_PROGRAMMING",
	KeyInitialConfiguration:     "INITIAL_CONFIGURATION",
	KeySelectBroadcastType:      "SELECT_BROADCAST_TYPE",
	KeySelectSoundPresentation:  "SELECT_SOUND_PRESENTATION",
	KeyPlayFunction:             "PLAY_FUNCTION",
	KeyPausePlayFunction:        "PAUSE_PLAY_FUNCTION",
	KeyRecordFunction:           "RECORD_FUNCTION",
	KeyPauseRecordFunction:      "PAUSE_RECORD_FUNCTION",
	KeyStopFunction:             "STOP_FUNCTION",
	KeyMuteFunction:             "MUTE_FUNCTION",
	KeyRestoreVolumeFunction:    "RESTORE_VOLUME_FUNCTION",
	KeyTuneFunction:             "TUNE_FUNCTION",
	KeySelectMediaFunction:      "SELECT_MEDIA_FUNCTION",
	KeySelectAVInputFunction:    "SELECT_AV_INPUT_FUNCTION",
	KeySelectAudioInputFunction: "SELECT_AUDIO_INPUT_FUNCTION",
	KeyPowerToggleFunction:      "POWER_TOGGLE_FUNCTION",
	KeyPowerOffFunction:         "POWER_OFF_FUNCTION",
	KeyPowerOnFunction:          "POWER_ON_FUNCTION",
	KeyF1Blue:                   "F1_BLUE",
	KeyF2Red:                    "F2_RED",
	KeyF3Green:                  "F3_GREEN",
	KeyF4Yellow:                 "F4_YELLOW",
	KeyF5:                       "F5",
	KeyData:                     "DATA",
	KeyANReturn:                 "AN_RETURN",
	KeyANChannelsList:           "AN_CHANNELS_LIST",
	KeyUnknown:                  "UNKNOWN",
}

var powerStatusNames = map[PowerStatus]string{
	PowerStatusOn:                      "ON",
	PowerStatusStandby:                 "STANDBY",
	PowerStatusInTransitionStandbyToOn: "IN_TRANSITION_STANDBY_TO_ON",
	PowerStatusInTransitionOnToStandby: "IN_TRANSITION_ON_TO_STANDBY",
	PowerStatusUnknown:                 "UNKNOWN",
}

var logLevelNames = map[LogLevel]string{
	LogLevelError:   "ERROR",
	LogLevelWarning: "WARNING",
	LogLevelNotice:  "NOTICE",
	LogLevelTraffic: "TRAFFIC",
	LogLevelDebug:   "DEBUG",
	LogLevelAll:     "ALL",
}

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeTV:              "TV",
	DeviceTypeRecordingDevice: "RECORDING_DEVICE",
	DeviceTypeReserved:        "RESERVED",
	DeviceTypeTuner:           "TUNER",
	DeviceTypePlaybackDevice:  "PLAYBACK_DEVICE",
	DeviceTypeAudioSystem:     "AUDIO_SYSTEM",
}

var adapterTypeNames = map[AdapterType]string{
	AdapterTypeUnknown:         "UNKNOWN",
	AdapterTypeP8External:      "P8_EXTERNAL",
	AdapterTypeP8Daughterboard: "P8_DAUGHTERBOARD",
	AdapterTypeRPI:             "RPI",
	AdapterTypeTDA995x:         "TDA995X",
	AdapterTypeExynos:          "EXYNOS",
	AdapterTypeLinux:           "LINUX",
	AdapterTypeAOCEC:           "AOCEC",
	AdapterTypeIMX:             "IMX",
}

var cecVersionNames = map[CECVersion]string{
	VersionUnknown: "UNKNOWN",
	Version12:      "1.2",
	Version12A:     "1.2a",
	Version13:      "1.3",
	Version13A:     "1.3a",
	Version14:      "1.4",
	Version20:      "2.0",
}

var vendorNames = map[VendorID]string{
	VendorToshiba:       "Toshiba",
	VendorSamsung:       "Samsung",
	VendorDenon:         "Denon",
	VendorMarantz:       "Marantz",
	VendorLoewe:         "Loewe",
	VendorOnkyo:         "Onkyo",
	VendorMedion:        "Medion",
	VendorToshiba2:      "Toshiba",
	VendorApple:         "Apple",
	VendorPulseEight:    "Pulse-Eight",
	VendorHarmanKardon2: "Harman/Kardon",
	VendorGoogle:        "Google",
	VendorAkai:          "Akai",
	VendorAOC:           "AOC",
	VendorPanasonic:     "Panasonic",
	VendorPhilips:       "Philips",
	VendorDaewoo:        "Daewoo",
	VendorYamaha:        "Yamaha",
	VendorGrundig:       "Grundig",
	VendorPioneer:       "Pioneer",
	VendorLG:            "LG",
	VendorSharp:         "Sharp",
	VendorSony:          "Sony",
	VendorBroadcom:      "Broadcom",
	VendorSharp2:        "Sharp",
	VendorVizio:         "Vizio",
	VendorBenq:          "Benq",
	VendorHarmanKardon:  "Harman/Kardon",
	VendorUnknown:       "Unknown",
}

var alertNames = map[Alert]string{
	AlertServiceDevice:        "SERVICE_DEVICE",
	AlertConnectionLost:       "CONNECTION_LOST",
	AlertPermissionError:      "PERMISSION_ERROR",
	AlertPortBusy:             "PORT_BUSY",
	AlertPhysicalAddressError: "PHYSICAL_ADDRESS_ERROR",
	AlertTVPollFailed:         "TV_POLL_FAILED",
}

var busDeviceStatusNames = map[BusDeviceStatus]string{
	BusDeviceStatusUnknown:         "UNKNOWN",
	BusDeviceStatusPresent:         "PRESENT",
	BusDeviceStatusNotPresent:      "NOT_PRESENT",
	BusDeviceStatusHandledByLibCEC: "HANDLED_BY_LIBCEC",
}

func (a LogicalAddress) String() string {
	if name, ok := logicalAddressNames[a]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(a))
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(o))
}

func (c UserControlCode) String() string {
	if name, ok := userControlCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(c))
}

func (s PowerStatus) String() string {
	if name, ok := powerStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(s))
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(l))
}

func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(t))
}

func (t AdapterType) String() string {
	if name, ok := adapterTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(t))
}

func (v CECVersion) String() string {
	if name, ok := cecVersionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(v))
}

// String returns the vendor's trade name, or "Unknown (0x......)" for an
// OUI that is not in the table.
func (v VendorID) String() string {
	if name, ok := vendorNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%06X)", uint32(v))
}

func (a Alert) String() string {
	if name, ok := alertNames[a]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(a))
}

func (s BusDeviceStatus) String() string {
	if name, ok := busDeviceStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", int32(s))
}

// String unpacks the version triple, e.g. "4.0.4".
func (v LibraryVersion) String() string {
	if v == LibraryVersionUnknown {
		return "UNKNOWN"
	}
	return fmt.Sprintf("%d.%d.%d", v>>16, (v>>8)&0xFF, v&0xFF)
}
