// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"log/slog"
	"time"
)

// defaultOpenTimeout bounds the adapter open handshake when the builder does
// not override it.
const defaultOpenTimeout = 5 * time.Second

// Config is a complete connection configuration as assembled by
// ConfigBuilder. Nil pointer fields keep the native library's defaults.
type Config struct {
	// Port is the adapter port to open. Empty means autodetect when
	// DetectPort is set, otherwise Connect fails with ErrPortMissing.
	Port string
	// DetectPort asks Connect to scan for an adapter when Port is empty.
	DetectPort bool
	// LibraryPath overrides the shared object Connect loads. Empty tries
	// the platform's conventional names.
	LibraryPath string
	// OpenTimeout bounds the adapter open handshake.
	OpenTimeout time.Duration

	DeviceName  string
	DeviceTypes DeviceTypeList

	PhysicalAddress    *uint16
	BaseDevice         *LogicalAddress
	HDMIPort           *uint8
	TVVendor           *VendorID
	WakeDevices        *LogicalAddresses
	PowerOffDevices    *LogicalAddresses
	GetSettingsFromROM *bool
	ActivateSource     *bool
	PowerOffOnStandby  *bool
	DeviceLanguage     string
	MonitorOnly        *bool
	AdapterType        *AdapterType
	ComboKey           *UserControlCode
	ComboKeyTimeout    *time.Duration
	ButtonRepeatRate   *time.Duration
	ButtonReleaseDelay *time.Duration
	DoubleTapTimeout   *time.Duration
	AutoWakeAVR        *bool

	// Event closures, invoked from the native callback thread. A nil
	// closure drops that event class.
	KeyPressCallback        func(Keypress)
	CommandReceivedCallback func(Command)
	LogMessageCallback      func(LogMessage)

	// Logger, when set, receives diagnostics about dropped events and the
	// connection lifecycle.
	Logger *slog.Logger
}

// ConfigBuilder assembles a Config one field at a time and opens the
// connection with Connect. A builder is single use.
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder returns a builder with the open timeout defaulted.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: Config{OpenTimeout: defaultOpenTimeout}}
}

// Port sets the adapter port to open.
func (b *ConfigBuilder) Port(port string) *ConfigBuilder {
	b.cfg.Port = port
	return b
}

// DetectPort enables adapter autodetection when no port is set.
func (b *ConfigBuilder) DetectPort(detect bool) *ConfigBuilder {
	b.cfg.DetectPort = detect
	return b
}

// LibraryPath overrides the shared object loaded at Connect.
func (b *ConfigBuilder) LibraryPath(path string) *ConfigBuilder {
	b.cfg.LibraryPath = path
	return b
}

// OpenTimeout bounds the adapter open handshake.
func (b *ConfigBuilder) OpenTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.OpenTimeout = d
	return b
}

// DeviceName sets the OSD name announced on the bus. Names longer than the
// native 13 byte buffer are truncated.
func (b *ConfigBuilder) DeviceName(name string) *ConfigBuilder {
	b.cfg.DeviceName = name
	return b
}

// DeviceTypes sets the device roles announced on the bus.
func (b *ConfigBuilder) DeviceTypes(types DeviceTypeList) *ConfigBuilder {
	b.cfg.DeviceTypes = types
	return b
}

// PhysicalAddress overrides the autodetected physical address.
func (b *ConfigBuilder) PhysicalAddress(addr uint16) *ConfigBuilder {
	b.cfg.PhysicalAddress = &addr
	return b
}

// BaseDevice sets the device the adapter is plugged into.
func (b *ConfigBuilder) BaseDevice(device LogicalAddress) *ConfigBuilder {
	b.cfg.BaseDevice = &device
	return b
}

// HDMIPort sets the HDMI port of the base device the adapter is plugged
// into.
func (b *ConfigBuilder) HDMIPort(port uint8) *ConfigBuilder {
	b.cfg.HDMIPort = &port
	return b
}

// TVVendor overrides the detected TV vendor.
func (b *ConfigBuilder) TVVendor(vendor VendorID) *ConfigBuilder {
	b.cfg.TVVendor = &vendor
	return b
}

// WakeDevices sets the devices to power on when activating a source.
func (b *ConfigBuilder) WakeDevices(addresses LogicalAddresses) *ConfigBuilder {
	b.cfg.WakeDevices = &addresses
	return b
}

// PowerOffDevices sets the devices to put in standby on Close.
func (b *ConfigBuilder) PowerOffDevices(addresses LogicalAddresses) *ConfigBuilder {
	b.cfg.PowerOffDevices = &addresses
	return b
}

// GetSettingsFromROM makes the adapter boot with the settings persisted in
// its ROM.
func (b *ConfigBuilder) GetSettingsFromROM(v bool) *ConfigBuilder {
	b.cfg.GetSettingsFromROM = &v
	return b
}

// ActivateSource makes the connection announce itself as the active source
// once opened.
func (b *ConfigBuilder) ActivateSource(v bool) *ConfigBuilder {
	b.cfg.ActivateSource = &v
	return b
}

// PowerOffOnStandby puts the PC in standby when the TV powers off.
func (b *ConfigBuilder) PowerOffOnStandby(v bool) *ConfigBuilder {
	b.cfg.PowerOffOnStandby = &v
	return b
}

// DeviceLanguage sets the ISO 639-2 menu language code.
func (b *ConfigBuilder) DeviceLanguage(language string) *ConfigBuilder {
	b.cfg.DeviceLanguage = language
	return b
}

// MonitorOnly opens the connection as a passive bus listener.
func (b *ConfigBuilder) MonitorOnly(v bool) *ConfigBuilder {
	b.cfg.MonitorOnly = &v
	return b
}

// AdapterType forces a specific adapter kind.
func (b *ConfigBuilder) AdapterType(t AdapterType) *ConfigBuilder {
	b.cfg.AdapterType = &t
	return b
}

// ComboKey sets the key that triggers combo key handling.
func (b *ConfigBuilder) ComboKey(key UserControlCode) *ConfigBuilder {
	b.cfg.ComboKey = &key
	return b
}

// ComboKeyTimeout sets how long the combo key must be held.
func (b *ConfigBuilder) ComboKeyTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.ComboKeyTimeout = &d
	return b
}

// ButtonRepeatRate sets the key repeat interval. Zero disables repeats.
func (b *ConfigBuilder) ButtonRepeatRate(d time.Duration) *ConfigBuilder {
	b.cfg.ButtonRepeatRate = &d
	return b
}

// ButtonReleaseDelay sets the delay before a key release is sent.
func (b *ConfigBuilder) ButtonReleaseDelay(d time.Duration) *ConfigBuilder {
	b.cfg.ButtonReleaseDelay = &d
	return b
}

// DoubleTapTimeout sets the dead time between identical key presses.
func (b *ConfigBuilder) DoubleTapTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.DoubleTapTimeout = &d
	return b
}

// AutoWakeAVR wakes the audio system when activating a source.
func (b *ConfigBuilder) AutoWakeAVR(v bool) *ConfigBuilder {
	b.cfg.AutoWakeAVR = &v
	return b
}

// KeyPress registers the closure invoked for remote key events.
func (b *ConfigBuilder) KeyPress(fn func(Keypress)) *ConfigBuilder {
	b.cfg.KeyPressCallback = fn
	return b
}

// CommandReceived registers the closure invoked for received frames.
func (b *ConfigBuilder) CommandReceived(fn func(Command)) *ConfigBuilder {
	b.cfg.CommandReceivedCallback = fn
	return b
}

// LogMessage registers the closure invoked for native diagnostics.
func (b *ConfigBuilder) LogMessage(fn func(LogMessage)) *ConfigBuilder {
	b.cfg.LogMessageCallback = fn
	return b
}

// Logger sets the structured logger for connection diagnostics.
func (b *ConfigBuilder) Logger(logger *slog.Logger) *ConfigBuilder {
	b.cfg.Logger = logger
	return b
}

// Connect validates the configuration and opens the connection.
func (b *ConfigBuilder) Connect() (*Connection, error) {
	cfg := b.cfg
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return connect(&cfg)
}

func (c *Config) validate() error {
	if c.DeviceName == "" {
		return &UninitializedFieldError{Field: "device_name"}
	}
	if len(c.DeviceTypes.Types()) == 0 {
		return &UninitializedFieldError{Field: "device_types"}
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	return nil
}
