// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package native declares the raw ABI surface of the libcec C library: the
// C-compatible record layouts, the integer discriminants, and the narrow call
// contract the rest of cinder depends on.
//
// Everything in this package is deliberately C-shaped. Enums are bare int32
// values that may be out of range, buffers carry separate length fields, and
// success is an int where zero means failure. The safe layer in pkg/cec owns
// the job of upgrading these into types where illegal states cannot be
// represented.
package native

// Buffer and table sizes dictated by the libcec ABI.
const (
	OSDNameSize      = 13   // strDeviceName buffer, bytes
	LanguageSize     = 3    // strDeviceLanguage buffer, bytes (ISO 639-2)
	DatapacketSize   = 64   // cec_datapacket data buffer, bytes
	DeviceTypeCount  = 5    // cec_device_type_list slots
	AddressCount     = 16   // cec_logical_addresses presence-mask slots
	AdapterPathSize  = 1024 // cec_adapter_descriptor strComPath, bytes
	AdapterNameSize  = 1024 // cec_adapter_descriptor strComName, bytes
	MaxDetectDevices = 10   // upper bound for one DetectAdapters scan
)

// VersionCurrent is the libcec client version negotiated through
// Configuration.ClientVersion, encoded as (major<<16 | minor<<8 | patch).
const VersionCurrent uint32 = 0x040004 // libcec 4.0.4

// Handle is an opaque libcec connection handle. The zero value is the null
// handle returned by a failed Initialise.
type Handle uintptr

// Datapacket mirrors cec_datapacket: a fixed buffer plus an occupied length.
// Only the first Size bytes of Data are meaningful.
type Datapacket struct {
	Data [DatapacketSize]byte
	Size uint8
}

// Command mirrors cec_command. Field order matches the C declaration and
// must not be changed.
type Command struct {
	Initiator       int32
	Destination     int32
	Ack             int8
	Eom             int8
	Opcode          int32
	Parameters      Datapacket
	OpcodeSet       int8
	TransmitTimeout int32 // milliseconds, may be negative
}

// Keypress mirrors cec_keypress.
type Keypress struct {
	Keycode  int32
	Duration uint32 // milliseconds
}

// LogMessage mirrors cec_log_message. Message points at a NUL-terminated
// buffer owned by libcec; it is only valid for the duration of the callback.
type LogMessage struct {
	Message *byte
	Level   int32
	Time    int64 // milliseconds since the connection was opened
}

// LogicalAddresses mirrors cec_logical_addresses: a scalar primary plus a
// presence mask. Addresses[x] != 0 means logical address x is in the set.
type LogicalAddresses struct {
	Primary   int32
	Addresses [AddressCount]int32
}

// DeviceTypeList mirrors cec_device_type_list. Unused slots hold the
// reserved device type.
type DeviceTypeList struct {
	Types [DeviceTypeCount]int32
}

// AdapterDescriptor mirrors cec_adapter_descriptor, as filled in by
// DetectAdapters. ComName is the port to hand to Open.
type AdapterDescriptor struct {
	ComPath     [AdapterPathSize]byte
	ComName     [AdapterNameSize]byte
	VendorID    uint16
	ProductID   uint16
	AdapterType int32
}

// Configuration mirrors libcec_configuration (version 4 layout). The struct
// is handed to Initialise by pointer and must match the C layout
// byte-for-byte. Fields marked read-only are filled in by libcec.
type Configuration struct {
	ClientVersion        uint32
	DeviceName           [OSDNameSize]byte
	DeviceTypes          DeviceTypeList
	AutodetectAddress    uint8 // read-only
	PhysicalAddress      uint16
	BaseDevice           int32
	HDMIPort             uint8
	TvVendor             uint32
	WakeDevices          LogicalAddresses
	PowerOffDevices      LogicalAddresses
	ServerVersion        uint32 // read-only
	GetSettingsFromROM   uint8
	ActivateSource       uint8
	PowerOffOnStandby    uint8
	CallbackParam        uintptr
	Callbacks            uintptr
	LogicalAddresses     LogicalAddresses // read-only
	FirmwareVersion      uint16           // read-only
	DeviceLanguage       [LanguageSize]byte
	FirmwareBuildDate    uint32 // read-only
	MonitorOnly          uint8
	CECVersion           int32 // read-only
	AdapterType          int32 // read-only
	ComboKey             int32
	ComboKeyTimeoutMs    uint32
	ButtonRepeatRateMs   uint32
	ButtonReleaseDelayMs uint32
	DoubleTapTimeoutMs   uint32
	AutoWakeAVR          uint8
}

// CallbackHandlers is the set of event entry points registered with libcec.
// The table is registered at most once per process; all per-connection state
// travels through the opaque param value that libcec stores and hands back
// unmodified on every invocation. Handlers must tolerate nil event pointers.
type CallbackHandlers struct {
	KeyPress        func(param uintptr, keypress *Keypress)
	CommandReceived func(param uintptr, command *Command)
	LogMessage      func(param uintptr, message *LogMessage)
}

// API is the call contract cinder depends on, one method per libcec entry
// point in use. Success flags keep their C convention: zero means failure.
//
// Implementations: Library (the real shared library, loaded at runtime) and
// the in-memory fake used by the pkg/cec tests.
type API interface {
	// Initialise allocates library state for cfg. Returns the null handle
	// on fatal initialisation failure.
	Initialise(cfg *Configuration) Handle
	// Open connects to the adapter on the named port, bounded by timeoutMs.
	Open(h Handle, port string, timeoutMs uint32) int
	// EnableCallbacks registers the handler table and the opaque param that
	// future invocations will carry.
	EnableCallbacks(h Handle, handlers *CallbackHandlers, param uintptr) int
	// Close and Destroy tear a connection down. Always called together, in
	// that order, exactly once per handle.
	Close(h Handle)
	Destroy(h Handle)
	// DetectAdapters scans for attached adapters, filling at most len(buf)
	// descriptors. Returns the number found, or a negative value on error.
	DetectAdapters(h Handle, buf []AdapterDescriptor, path string, quickScan bool) int

	Transmit(h Handle, command *Command) int
	PowerOnDevices(h Handle, address int32) int
	StandbyDevices(h Handle, address int32) int
	SetActiveSource(h Handle, deviceType int32) int
	GetActiveSource(h Handle) int32
	IsActiveSource(h Handle, address int32) int
	GetDevicePowerStatus(h Handle, address int32) int32
	SendKeypress(h Handle, address, keycode int32, wait bool) int
	SendKeyRelease(h Handle, address int32, wait bool) int
	VolumeUp(h Handle, sendRelease bool) int
	VolumeDown(h Handle, sendRelease bool) int
	MuteAudio(h Handle, sendRelease bool) int
	AudioToggleMute(h Handle) int
	AudioMute(h Handle) int
	AudioUnmute(h Handle) int
	AudioGetStatus(h Handle) int
	SetInactiveView(h Handle) int
	SetLogicalAddress(h Handle, address int32) int
	SwitchMonitoring(h Handle, enable bool) int
	GetLogicalAddresses(h Handle) LogicalAddresses
}
