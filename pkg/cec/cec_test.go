// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"errors"
	"testing"

	"github.com/Thermoquad/cinder/pkg/cec/native"
)

// ============================================================
// Fake Native API
// ============================================================

// fakeAPI is an in-memory stand-in for the native library. It records every
// lifecycle transition so tests can assert allocate/release balance.
type fakeAPI struct {
	failInitialise bool
	failOpen       bool
	failCallbacks  bool
	failTransmit   bool

	adapters []native.AdapterDescriptor

	initialised int
	closed      int
	destroyed   int
	openedPorts []string

	lastConfig native.Configuration
	handlers   *native.CallbackHandlers
	param      uintptr
	transmits  []native.Command

	activeSource     int32
	powerStatus      int32
	logicalAddresses native.LogicalAddresses
}

func newFakeAPI() *fakeAPI {
	adapter := native.AdapterDescriptor{VendorID: 0x2548, ProductID: 0x1001}
	copy(adapter.ComName[:], "/dev/ttyACM0")
	copy(adapter.ComPath[:], "usb-2548-1001")
	return &fakeAPI{
		adapters:     []native.AdapterDescriptor{adapter},
		activeSource: int32(DevicePlaybackDevice1),
		powerStatus:  int32(PowerStatusOn),
		logicalAddresses: native.LogicalAddresses{
			Primary: int32(DeviceRecordingDevice1),
			Addresses: func() (a [native.AddressCount]int32) {
				a[DeviceRecordingDevice1] = 1
				return
			}(),
		},
	}
}

func (f *fakeAPI) Initialise(cfg *native.Configuration) native.Handle {
	if f.failInitialise {
		return 0
	}
	f.initialised++
	f.lastConfig = *cfg
	return native.Handle(f.initialised)
}

func (f *fakeAPI) Open(h native.Handle, port string, timeoutMs uint32) int {
	if f.failOpen {
		return 0
	}
	f.openedPorts = append(f.openedPorts, port)
	return 1
}

func (f *fakeAPI) EnableCallbacks(h native.Handle, handlers *native.CallbackHandlers, param uintptr) int {
	if f.failCallbacks {
		return 0
	}
	f.handlers = handlers
	f.param = param
	return 1
}

func (f *fakeAPI) Close(h native.Handle) { f.closed++ }

func (f *fakeAPI) Destroy(h native.Handle) { f.destroyed++ }

func (f *fakeAPI) DetectAdapters(h native.Handle, buf []native.AdapterDescriptor, path string, quickScan bool) int {
	n := copy(buf, f.adapters)
	return n
}

func (f *fakeAPI) Transmit(h native.Handle, command *native.Command) int {
	if f.failTransmit {
		return 0
	}
	f.transmits = append(f.transmits, *command)
	return 1
}

func (f *fakeAPI) result() int {
	if f.failTransmit {
		return 0
	}
	return 1
}

func (f *fakeAPI) PowerOnDevices(h native.Handle, address int32) int { return f.result() }

func (f *fakeAPI) StandbyDevices(h native.Handle, address int32) int { return f.result() }

func (f *fakeAPI) SetActiveSource(h native.Handle, deviceType int32) int { return f.result() }

func (f *fakeAPI) GetActiveSource(h native.Handle) int32 { return f.activeSource }

func (f *fakeAPI) IsActiveSource(h native.Handle, address int32) int {
	if address == f.activeSource {
		return 1
	}
	return 0
}

func (f *fakeAPI) GetDevicePowerStatus(h native.Handle, address int32) int32 { return f.powerStatus }

func (f *fakeAPI) SendKeypress(h native.Handle, address, keycode int32, wait bool) int {
	return f.result()
}

func (f *fakeAPI) SendKeyRelease(h native.Handle, address int32, wait bool) int { return f.result() }

func (f *fakeAPI) VolumeUp(h native.Handle, sendRelease bool) int { return f.result() }

func (f *fakeAPI) VolumeDown(h native.Handle, sendRelease bool) int { return f.result() }

func (f *fakeAPI) MuteAudio(h native.Handle, sendRelease bool) int { return f.result() }

func (f *fakeAPI) AudioToggleMute(h native.Handle) int { return f.result() }

func (f *fakeAPI) AudioMute(h native.Handle) int { return f.result() }

func (f *fakeAPI) AudioUnmute(h native.Handle) int { return f.result() }

func (f *fakeAPI) AudioGetStatus(h native.Handle) int { return 0x32 }

func (f *fakeAPI) SetInactiveView(h native.Handle) int { return f.result() }

func (f *fakeAPI) SetLogicalAddress(h native.Handle, address int32) int { return f.result() }

func (f *fakeAPI) SwitchMonitoring(h native.Handle, enable bool) int { return f.result() }

func (f *fakeAPI) GetLogicalAddresses(h native.Handle) native.LogicalAddresses {
	return f.logicalAddresses
}

// testConnect runs the builder's configuration through the open state
// machine against a fake.
func testConnect(t *testing.T, api native.API, b *ConfigBuilder) (*Connection, error) {
	t.Helper()
	cfg := b.cfg
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return connectWith(api, &cfg)
}

func testBuilder() *ConfigBuilder {
	return NewConfigBuilder().
		DeviceName("cinder").
		DeviceTypes(NewDeviceTypeList(DeviceTypeRecordingDevice))
}

// ============================================================
// Connect State Machine
// ============================================================

func TestConnect_PortMissing(t *testing.T) {
	api := newFakeAPI()
	_, err := testConnect(t, api, testBuilder())
	if !errors.Is(err, ErrPortMissing) {
		t.Fatalf("expected ErrPortMissing, got %v", err)
	}
	if api.initialised != 0 {
		t.Errorf("native library should not be touched, got %d initialise calls", api.initialised)
	}
}

func TestConnect_RequiredFields(t *testing.T) {
	api := newFakeAPI()

	_, err := testConnect(t, api, NewConfigBuilder().Port("/dev/ttyACM0"))
	var uninit *UninitializedFieldError
	if !errors.As(err, &uninit) || uninit.Field != "device_name" {
		t.Fatalf("expected device_name UninitializedFieldError, got %v", err)
	}

	_, err = testConnect(t, api, NewConfigBuilder().Port("/dev/ttyACM0").DeviceName("cinder"))
	if !errors.As(err, &uninit) || uninit.Field != "device_types" {
		t.Fatalf("expected device_types UninitializedFieldError, got %v", err)
	}
}

func TestConnect_InitFailed(t *testing.T) {
	api := newFakeAPI()
	api.failInitialise = true
	_, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
	if api.closed != 0 || api.destroyed != 0 {
		t.Errorf("nothing was allocated, nothing should be released: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
}

func TestConnect_OpenFailedReleasesHandle(t *testing.T) {
	api := newFakeAPI()
	api.failOpen = true
	_, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if !errors.Is(err, ErrAdapterOpenFailed) {
		t.Fatalf("expected ErrAdapterOpenFailed, got %v", err)
	}
	if api.closed != 1 || api.destroyed != 1 {
		t.Errorf("partial connection must be torn down: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
}

func TestConnect_CallbackRegistrationFailedReleasesHandle(t *testing.T) {
	api := newFakeAPI()
	api.failCallbacks = true
	_, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if !errors.Is(err, ErrCallbackRegistrationFailed) {
		t.Fatalf("expected ErrCallbackRegistrationFailed, got %v", err)
	}
	if api.closed != 1 || api.destroyed != 1 {
		t.Errorf("partial connection must be torn down: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
}

func TestConnect_AutodetectNoAdapters(t *testing.T) {
	api := newFakeAPI()
	api.adapters = nil
	_, err := testConnect(t, api, testBuilder().DetectPort(true))
	if !errors.Is(err, ErrNoAdapterFound) {
		t.Fatalf("expected ErrNoAdapterFound, got %v", err)
	}
	if api.closed != 1 || api.destroyed != 1 {
		t.Errorf("partial connection must be torn down: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
	if len(api.openedPorts) != 0 {
		t.Errorf("open must not be attempted without an adapter, got %v", api.openedPorts)
	}
}

func TestConnect_AutodetectUsesFirstAdapter(t *testing.T) {
	api := newFakeAPI()
	second := native.AdapterDescriptor{}
	copy(second.ComName[:], "/dev/ttyACM1")
	api.adapters = append(api.adapters, second)

	conn, err := testConnect(t, api, testBuilder().DetectPort(true))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	if len(api.openedPorts) != 1 || api.openedPorts[0] != "/dev/ttyACM0" {
		t.Errorf("expected first detected port to be opened, got %v", api.openedPorts)
	}
}

func TestConnect_ExplicitPortSkipsDetection(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/cec0").DetectPort(true))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	if len(api.openedPorts) != 1 || api.openedPorts[0] != "/dev/cec0" {
		t.Errorf("expected configured port to be opened, got %v", api.openedPorts)
	}
}

// ============================================================
// Close Semantics
// ============================================================

func TestClose_ExactlyOnce(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	conn.Close()
	conn.Close()
	conn.Close()

	if api.closed != 1 || api.destroyed != 1 {
		t.Errorf("close must reach the native library exactly once: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
}

func TestLifecycle_AllocateReleaseBalance(t *testing.T) {
	api := newFakeAPI()
	for i := 0; i < 5; i++ {
		conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
		if err != nil {
			t.Fatalf("connect %d failed: %v", i, err)
		}
		conn.Close()
	}
	api.failOpen = true
	for i := 0; i < 3; i++ {
		if _, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0")); err == nil {
			t.Fatal("expected open failure")
		}
	}

	if api.initialised != api.destroyed {
		t.Errorf("every initialise needs a destroy: initialised=%d destroyed=%d",
			api.initialised, api.destroyed)
	}
	if api.closed != api.destroyed {
		t.Errorf("close and destroy must pair up: closed=%d destroyed=%d",
			api.closed, api.destroyed)
	}
}

// ============================================================
// Configuration Encoding at Connect
// ============================================================

func TestConnect_EncodesConfiguration(t *testing.T) {
	api := newFakeAPI()
	types, _ := NewDeviceTypeList(DeviceTypeRecordingDevice).Append(DeviceTypeAudioSystem)
	b := NewConfigBuilder().
		Port("/dev/ttyACM0").
		DeviceName("livingroom-pi-extra-long").
		DeviceTypes(types).
		PhysicalAddress(0x1100).
		HDMIPort(2).
		ActivateSource(true).
		DeviceLanguage("eng")

	conn, err := testConnect(t, api, b)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	cfg := api.lastConfig
	if cfg.ClientVersion != native.VersionCurrent {
		t.Errorf("client version: expected %#x, got %#x", native.VersionCurrent, cfg.ClientVersion)
	}
	if got := cArrayString(cfg.DeviceName[:]); got != "livingroom-pi" {
		t.Errorf("device name must truncate to the native buffer, got %q", got)
	}
	if cfg.DeviceTypes.Types[0] != int32(DeviceTypeRecordingDevice) ||
		cfg.DeviceTypes.Types[1] != int32(DeviceTypeAudioSystem) {
		t.Errorf("device types mismatch: %v", cfg.DeviceTypes.Types)
	}
	for _, slot := range cfg.DeviceTypes.Types[2:] {
		if slot != int32(DeviceTypeReserved) {
			t.Errorf("unused device type slots must hold the reserved type, got %v", cfg.DeviceTypes.Types)
		}
	}
	if cfg.PhysicalAddress != 0x1100 {
		t.Errorf("physical address: expected 0x1100, got %#x", cfg.PhysicalAddress)
	}
	if cfg.HDMIPort != 2 {
		t.Errorf("hdmi port: expected 2, got %d", cfg.HDMIPort)
	}
	if cfg.ActivateSource != 1 {
		t.Errorf("activate source flag not set")
	}
	if got := cArrayString(cfg.DeviceLanguage[:]); got != "eng" {
		t.Errorf("device language: expected eng, got %q", got)
	}
	if cfg.CallbackParam == 0 {
		t.Error("callback param must carry the dispatch block handle")
	}
}

// ============================================================
// Bus Operations
// ============================================================

func TestTransmit(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	params, _ := NewDataPacket([]byte{0x10, 0x00})
	cmd := NewCommand(DeviceRecordingDevice1, DeviceTV, OpcodeActiveSource, params)
	if err := conn.Transmit(cmd); err != nil {
		t.Fatalf("transmit failed: %v", err)
	}

	if len(api.transmits) != 1 {
		t.Fatalf("expected 1 transmitted frame, got %d", len(api.transmits))
	}
	sent := api.transmits[0]
	if sent.Initiator != int32(DeviceRecordingDevice1) || sent.Destination != int32(DeviceTV) {
		t.Errorf("addressing mismatch: %d -> %d", sent.Initiator, sent.Destination)
	}
	if sent.Opcode != int32(OpcodeActiveSource) || sent.OpcodeSet != 1 {
		t.Errorf("opcode mismatch: %#x set=%d", sent.Opcode, sent.OpcodeSet)
	}
	if sent.Parameters.Size != 2 || sent.Parameters.Data[0] != 0x10 {
		t.Errorf("payload mismatch: size=%d data=%v", sent.Parameters.Size, sent.Parameters.Data[:2])
	}

	api.failTransmit = true
	if err := conn.Transmit(cmd); !errors.Is(err, ErrTransmitFailed) {
		t.Fatalf("expected ErrTransmitFailed, got %v", err)
	}
}

func TestOps_UniformTransmitError(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()
	api.failTransmit = true

	ops := map[string]func() error{
		"SendPowerOnDevices": func() error { return conn.SendPowerOnDevices(DeviceTV) },
		"SendStandbyDevices": func() error { return conn.SendStandbyDevices(DeviceUnregistered) },
		"SetActiveSource":    func() error { return conn.SetActiveSource(DeviceTypePlaybackDevice) },
		"SendKeypress":       func() error { return conn.SendKeypress(DeviceTV, KeySelect, true) },
		"SendKeyRelease":     func() error { return conn.SendKeyRelease(DeviceTV, true) },
		"VolumeUp":           func() error { return conn.VolumeUp(true) },
		"VolumeDown":         func() error { return conn.VolumeDown(true) },
		"MuteAudio":          func() error { return conn.MuteAudio(true) },
		"AudioToggleMute":    conn.AudioToggleMute,
		"AudioMute":          conn.AudioMute,
		"AudioUnmute":        conn.AudioUnmute,
		"SetInactiveView":    conn.SetInactiveView,
		"SetLogicalAddress":  func() error { return conn.SetLogicalAddress(DeviceFreeUse) },
		"SwitchMonitoring":   func() error { return conn.SwitchMonitoring(true) },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrTransmitFailed) {
			t.Errorf("%s: expected ErrTransmitFailed, got %v", name, err)
		}
	}
}

func TestGetActiveSource(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	source, err := conn.GetActiveSource()
	if err != nil {
		t.Fatalf("get active source: %v", err)
	}
	if source != DevicePlaybackDevice1 {
		t.Errorf("expected PLAYBACK_DEVICE_1, got %v", source)
	}

	api.activeSource = 99
	if _, err := conn.GetActiveSource(); err == nil {
		t.Error("expected decode error for out-of-range active source")
	}
}

func TestGetDevicePowerStatus(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	status, err := conn.GetDevicePowerStatus(DeviceTV)
	if err != nil {
		t.Fatalf("get power status: %v", err)
	}
	if status != PowerStatusOn {
		t.Errorf("expected ON, got %v", status)
	}

	api.powerStatus = 0x42
	if _, err := conn.GetDevicePowerStatus(DeviceTV); err == nil {
		t.Error("expected decode error for out-of-range power status")
	}
	var decodeErr *DecodeError
	_, err = conn.GetDevicePowerStatus(DeviceTV)
	if !errors.As(err, &decodeErr) || decodeErr.Value != 0x42 {
		t.Errorf("expected DecodeError carrying the raw value, got %v", err)
	}
}

func TestGetLogicalAddresses(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	addresses, err := conn.GetLogicalAddresses()
	if err != nil {
		t.Fatalf("get logical addresses: %v", err)
	}
	if addresses.Primary() != DeviceRecordingDevice1 {
		t.Errorf("expected RECORDING_DEVICE_1 primary, got %v", addresses.Primary())
	}
	if !addresses.Contains(DeviceRecordingDevice1) {
		t.Error("set must contain the primary")
	}
}

func TestAudioGetStatus(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.AudioGetStatus()
	if status&AudioStatusMuteStatusMask != 0 {
		t.Error("fake reports unmuted audio")
	}
	if status&AudioStatusVolumeStatusMask != 0x32 {
		t.Errorf("expected volume 0x32, got %#x", status&AudioStatusVolumeStatusMask)
	}
}

func TestAdapters(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	adapters, err := conn.Adapters()
	if err != nil {
		t.Fatalf("adapters: %v", err)
	}
	if len(adapters) != 1 {
		t.Fatalf("expected 1 adapter, got %d", len(adapters))
	}
	if adapters[0].Port != "/dev/ttyACM0" || adapters[0].VendorID != 0x2548 {
		t.Errorf("adapter mismatch: %+v", adapters[0])
	}
}

// ============================================================
// Event Dispatch
// ============================================================

func TestCallbacks_Dispatch(t *testing.T) {
	api := newFakeAPI()

	var keys []Keypress
	var commands []Command
	var logs []LogMessage
	b := testBuilder().
		Port("/dev/ttyACM0").
		KeyPress(func(k Keypress) { keys = append(keys, k) }).
		CommandReceived(func(c Command) { commands = append(commands, c) }).
		LogMessage(func(m LogMessage) { logs = append(logs, m) })

	conn, err := testConnect(t, api, b)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	if api.handlers == nil || api.param == 0 {
		t.Fatal("callbacks were not registered")
	}

	api.handlers.KeyPress(api.param, &native.Keypress{Keycode: int32(KeyPlay), Duration: 150})
	api.handlers.CommandReceived(api.param, &native.Command{
		Initiator:   int32(DeviceTV),
		Destination: int32(DeviceRecordingDevice1),
		Opcode:      int32(OpcodeStandby),
		OpcodeSet:   1,
	})
	msg := append([]byte("POLL: TV -> Recorder 1"), 0)
	api.handlers.LogMessage(api.param, &native.LogMessage{
		Message: &msg[0],
		Level:   int32(LogLevelTraffic),
		Time:    2500,
	})

	if len(keys) != 1 || keys[0].Code != KeyPlay || keys[0].Duration.Milliseconds() != 150 {
		t.Errorf("keypress not delivered: %+v", keys)
	}
	if len(commands) != 1 || commands[0].Opcode != OpcodeStandby || !commands[0].OpcodeSet {
		t.Errorf("command not delivered: %+v", commands)
	}
	if len(logs) != 1 || logs[0].Level != LogLevelTraffic || logs[0].Message != "POLL: TV -> Recorder 1" {
		t.Errorf("log message not delivered: %+v", logs)
	}
	if conn.DroppedEvents() != 0 {
		t.Errorf("no events should be dropped, got %d", conn.DroppedEvents())
	}
}

func TestCallbacks_UndecodableEventsDropped(t *testing.T) {
	api := newFakeAPI()

	var keys []Keypress
	b := testBuilder().
		Port("/dev/ttyACM0").
		KeyPress(func(k Keypress) { keys = append(keys, k) })

	conn, err := testConnect(t, api, b)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	api.handlers.KeyPress(api.param, &native.Keypress{Keycode: 666})
	api.handlers.CommandReceived(api.param, &native.Command{
		Initiator:   77,
		Destination: int32(DeviceTV),
	})

	if len(keys) != 0 {
		t.Errorf("undecodable keypress must not be delivered: %+v", keys)
	}
	if conn.DroppedEvents() != 2 {
		t.Errorf("expected 2 dropped events, got %d", conn.DroppedEvents())
	}
}

func TestCallbacks_NilEventPointers(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0"))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	// Must not panic.
	api.handlers.KeyPress(api.param, nil)
	api.handlers.CommandReceived(api.param, nil)
	api.handlers.LogMessage(api.param, nil)
	api.handlers.KeyPress(0, &native.Keypress{Keycode: int32(KeySelect)})
}

func TestConnection_ConfigCopy(t *testing.T) {
	api := newFakeAPI()
	conn, err := testConnect(t, api, testBuilder().Port("/dev/ttyACM0").OpenTimeout(defaultOpenTimeout))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer conn.Close()

	cfg := conn.Config()
	if cfg.DeviceName != "cinder" || cfg.Port != "/dev/ttyACM0" {
		t.Errorf("config mismatch: %+v", cfg)
	}
	if cfg.OpenTimeout != defaultOpenTimeout {
		t.Errorf("expected default open timeout, got %v", cfg.OpenTimeout)
	}
}
