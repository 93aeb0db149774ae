// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"fmt"
	"runtime/cgo"
	"sync"

	"github.com/Thermoquad/cinder/pkg/cec/native"
)

// Adapter describes one detected CEC adapter.
type Adapter struct {
	// Path is the adapter's device path.
	Path string
	// Port is the com port to hand to ConfigBuilder.Port.
	Port string
	// VendorID and ProductID identify the USB device.
	VendorID  uint16
	ProductID uint16
	// Type is the adapter hardware kind.
	Type AdapterType
}

// Connection is an open session with a CEC adapter. Connections are built
// through ConfigBuilder.Connect and must be released with Close; every other
// method is safe for concurrent use.
type Connection struct {
	api      native.API
	handle   native.Handle
	cfg      Config
	cb       *callbacks
	cbHandle cgo.Handle

	closeOnce sync.Once
}

func connect(cfg *Config) (*Connection, error) {
	lib, err := native.Load(cfg.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInitFailed, err)
	}
	return connectWith(lib, cfg)
}

// connectWith drives the open state machine against an arbitrary native
// implementation. Any failure after Initialise tears the partial connection
// down before returning, so a failed connect leaks nothing.
func connectWith(api native.API, cfg *Config) (*Connection, error) {
	if cfg.Port == "" && !cfg.DetectPort {
		return nil, ErrPortMissing
	}

	nativeCfg := encodeConfiguration(cfg)
	cb := newCallbacks(cfg)
	cbHandle := cgo.NewHandle(cb)
	nativeCfg.CallbackParam = uintptr(cbHandle)

	handle := api.Initialise(&nativeCfg)
	if handle == 0 {
		cbHandle.Delete()
		return nil, ErrInitFailed
	}

	fail := func(err error) (*Connection, error) {
		api.Close(handle)
		api.Destroy(handle)
		cbHandle.Delete()
		return nil, err
	}

	port := cfg.Port
	if port == "" {
		detected, err := detectPort(api, handle)
		if err != nil {
			return fail(err)
		}
		port = detected
	}

	if api.Open(handle, port, uint32(cfg.OpenTimeout.Milliseconds())) == 0 {
		return fail(ErrAdapterOpenFailed)
	}
	if api.EnableCallbacks(handle, &handlerTable, uintptr(cbHandle)) == 0 {
		return fail(ErrCallbackRegistrationFailed)
	}

	conn := &Connection{
		api:      api,
		handle:   handle,
		cfg:      *cfg,
		cb:       cb,
		cbHandle: cbHandle,
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("connection opened", "port", port, "device_name", cfg.DeviceName)
	}
	return conn, nil
}

// detectPort scans for adapters and returns the com port of the first one.
func detectPort(api native.API, handle native.Handle) (string, error) {
	buf := make([]native.AdapterDescriptor, native.MaxDetectDevices)
	n := api.DetectAdapters(handle, buf, "", true)
	if n <= 0 {
		return "", ErrNoAdapterFound
	}
	return cArrayString(buf[0].ComName[:]), nil
}

// Close releases the connection. Safe to call more than once; only the
// first call reaches the native library.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.api.Close(c.handle)
		c.api.Destroy(c.handle)
		c.cbHandle.Delete()
		if c.cfg.Logger != nil {
			c.cfg.Logger.Info("connection closed", "device_name", c.cfg.DeviceName)
		}
	})
}

// Config returns a copy of the configuration the connection was opened with.
func (c *Connection) Config() Config {
	return c.cfg
}

// DroppedEvents reports how many native events were discarded because they
// could not be decoded.
func (c *Connection) DroppedEvents() uint64 {
	return c.cb.dropped.Load()
}

// Adapters scans for attached adapters without opening any of them.
func (c *Connection) Adapters() ([]Adapter, error) {
	buf := make([]native.AdapterDescriptor, native.MaxDetectDevices)
	n := c.api.DetectAdapters(c.handle, buf, "", true)
	if n < 0 {
		return nil, ErrNoAdapterFound
	}
	out := make([]Adapter, 0, n)
	for _, d := range buf[:n] {
		adapterType, _ := AdapterTypeFromNative(d.AdapterType)
		out = append(out, Adapter{
			Path:      cArrayString(d.ComPath[:]),
			Port:      cArrayString(d.ComName[:]),
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Type:      adapterType,
		})
	}
	return out, nil
}

// Transmit sends a frame on the bus.
func (c *Connection) Transmit(command Command) error {
	nc := encodeCommand(command)
	if c.api.Transmit(c.handle, &nc) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SendPowerOnDevices powers on the addressed device. DeviceUnregistered
// broadcasts to the whole bus.
func (c *Connection) SendPowerOnDevices(address LogicalAddress) error {
	if c.api.PowerOnDevices(c.handle, int32(address)) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SendStandbyDevices puts the addressed device in standby.
// DeviceUnregistered broadcasts to the whole bus.
func (c *Connection) SendStandbyDevices(address LogicalAddress) error {
	if c.api.StandbyDevices(c.handle, int32(address)) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SetActiveSource announces this connection as the active source, acting as
// the given device type.
func (c *Connection) SetActiveSource(deviceType DeviceType) error {
	if c.api.SetActiveSource(c.handle, int32(deviceType)) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// GetActiveSource returns the logical address of the current active source.
func (c *Connection) GetActiveSource() (LogicalAddress, error) {
	v := c.api.GetActiveSource(c.handle)
	address, ok := LogicalAddressFromNative(v)
	if !ok {
		return DeviceUnknown, &DecodeError{Field: "active source", Value: int64(v)}
	}
	return address, nil
}

// IsActiveSource reports whether the addressed device is the active source.
func (c *Connection) IsActiveSource(address LogicalAddress) bool {
	return c.api.IsActiveSource(c.handle, int32(address)) != 0
}

// GetDevicePowerStatus queries the power state of the addressed device.
func (c *Connection) GetDevicePowerStatus(address LogicalAddress) (PowerStatus, error) {
	v := c.api.GetDevicePowerStatus(c.handle, int32(address))
	status, ok := PowerStatusFromNative(v)
	if !ok {
		return PowerStatusUnknown, &DecodeError{Field: "power status", Value: int64(v)}
	}
	return status, nil
}

// SendKeypress sends a key press to the addressed device. When wait is set
// the call blocks until the device acknowledges.
func (c *Connection) SendKeypress(address LogicalAddress, key UserControlCode, wait bool) error {
	if c.api.SendKeypress(c.handle, int32(address), int32(key), wait) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SendKeyRelease sends the release half of a key press.
func (c *Connection) SendKeyRelease(address LogicalAddress, wait bool) error {
	if c.api.SendKeyRelease(c.handle, int32(address), wait) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// VolumeUp sends a volume up press to the audio system, with the release
// half when sendRelease is set.
func (c *Connection) VolumeUp(sendRelease bool) error {
	if c.api.VolumeUp(c.handle, sendRelease) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// VolumeDown sends a volume down press to the audio system.
func (c *Connection) VolumeDown(sendRelease bool) error {
	if c.api.VolumeDown(c.handle, sendRelease) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// MuteAudio sends a mute toggle press to the audio system.
func (c *Connection) MuteAudio(sendRelease bool) error {
	if c.api.MuteAudio(c.handle, sendRelease) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// AudioToggleMute toggles the audio system's mute state.
func (c *Connection) AudioToggleMute() error {
	if c.api.AudioToggleMute(c.handle) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// AudioMute mutes the audio system.
func (c *Connection) AudioMute() error {
	if c.api.AudioMute(c.handle) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// AudioUnmute unmutes the audio system.
func (c *Connection) AudioUnmute() error {
	if c.api.AudioUnmute(c.handle) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// AudioGetStatus returns the audio system's raw status byte. Mask with the
// AudioStatus constants to extract mute state and volume.
func (c *Connection) AudioGetStatus() AudioStatus {
	return AudioStatus(c.api.AudioGetStatus(c.handle))
}

// SetInactiveView marks this connection as no longer the active source.
func (c *Connection) SetInactiveView() error {
	if c.api.SetInactiveView(c.handle) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SetLogicalAddress changes the primary logical address of the connection.
func (c *Connection) SetLogicalAddress(address LogicalAddress) error {
	if c.api.SetLogicalAddress(c.handle, int32(address)) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// SwitchMonitoring toggles passive monitoring mode. While enabled the
// connection only observes the bus.
func (c *Connection) SwitchMonitoring(enable bool) error {
	if c.api.SwitchMonitoring(c.handle, enable) == 0 {
		return ErrTransmitFailed
	}
	return nil
}

// GetLogicalAddresses returns the addresses held by this connection.
func (c *Connection) GetLogicalAddresses() (LogicalAddresses, error) {
	return decodeLogicalAddresses(c.api.GetLogicalAddresses(c.handle))
}
