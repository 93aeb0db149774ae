// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

//go:build linux || darwin

package native

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// iCECCallbacks mirrors the ICECCallbacks function-pointer table. Slots we
// do not handle stay zero, which libcec treats as "not registered".
type iCECCallbacks struct {
	logMessage           uintptr
	keyPress             uintptr
	commandReceived      uintptr
	configurationChanged uintptr
	alert                uintptr
	menuStateChanged     uintptr
	sourceActivated      uintptr
}

// The trampoline table is a package variable so its address never changes for
// the lifetime of the process; libcec keeps a pointer to it after
// EnableCallbacks. Per-connection state travels exclusively through the
// opaque param, so one table serves every connection.
var (
	trampolineOnce sync.Once
	callbackTable  iCECCallbacks

	handlersMu      sync.RWMutex
	currentHandlers *CallbackHandlers
)

func installTrampolines() {
	trampolineOnce.Do(func() {
		callbackTable.keyPress = purego.NewCallback(func(param, keypress uintptr) uintptr {
			if h := loadHandlers(); h != nil && h.KeyPress != nil {
				h.KeyPress(param, (*Keypress)(unsafe.Pointer(keypress)))
			}
			return 0
		})
		callbackTable.commandReceived = purego.NewCallback(func(param, command uintptr) uintptr {
			if h := loadHandlers(); h != nil && h.CommandReceived != nil {
				h.CommandReceived(param, (*Command)(unsafe.Pointer(command)))
			}
			return 0
		})
		callbackTable.logMessage = purego.NewCallback(func(param, message uintptr) uintptr {
			if h := loadHandlers(); h != nil && h.LogMessage != nil {
				h.LogMessage(param, (*LogMessage)(unsafe.Pointer(message)))
			}
			return 0
		})
	})
}

func loadHandlers() *CallbackHandlers {
	handlersMu.RLock()
	defer handlersMu.RUnlock()
	return currentHandlers
}

// Library calls into a libcec shared object loaded at runtime. It implements
// the API contract; all safety upgrades happen in pkg/cec.
type Library struct {
	initialise           func(cfg *Configuration) uintptr
	open                 func(h uintptr, port string, timeoutMs uint32) int32
	setCallbacks         func(h uintptr, callbacks *iCECCallbacks, param uintptr) int32
	close                func(h uintptr)
	destroy              func(h uintptr)
	detectAdapters       func(h uintptr, buf *AdapterDescriptor, bufSize uint8, path *byte, quickScan int32) int8
	transmit             func(h uintptr, command *Command) int32
	powerOnDevices       func(h uintptr, address int32) int32
	standbyDevices       func(h uintptr, address int32) int32
	setActiveSource      func(h uintptr, deviceType int32) int32
	getActiveSource      func(h uintptr) int32
	isActiveSource       func(h uintptr, address int32) int32
	getDevicePowerStatus func(h uintptr, address int32) int32
	sendKeypress         func(h uintptr, address, keycode int32, wait int32) int32
	sendKeyRelease       func(h uintptr, address int32, wait int32) int32
	volumeUp             func(h uintptr, sendRelease int32) int32
	volumeDown           func(h uintptr, sendRelease int32) int32
	muteAudio            func(h uintptr, sendRelease int32) int32
	audioToggleMute      func(h uintptr) int32
	audioMute            func(h uintptr) int32
	audioUnmute          func(h uintptr) int32
	audioGetStatus       func(h uintptr) int32
	setInactiveView      func(h uintptr) int32
	setLogicalAddress    func(h uintptr, address int32) int32
	switchMonitoring     func(h uintptr, enable int32) int32
	getLogicalAddresses  func(h uintptr) LogicalAddresses
}

// Load opens the shared object at path and resolves every entry point in the
// API contract. An empty path tries the conventional library names for the
// platform.
func Load(path string) (*Library, error) {
	names := []string{path}
	if path == "" {
		names = defaultLibraryNames
	}

	var (
		so      uintptr
		lastErr error
	)
	for _, name := range names {
		var err error
		so, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("native: failed to load libcec: %w", lastErr)
	}

	l := &Library{}
	purego.RegisterLibFunc(&l.initialise, so, "libcec_initialise")
	purego.RegisterLibFunc(&l.open, so, "libcec_open")
	purego.RegisterLibFunc(&l.setCallbacks, so, "libcec_set_callbacks")
	purego.RegisterLibFunc(&l.close, so, "libcec_close")
	purego.RegisterLibFunc(&l.destroy, so, "libcec_destroy")
	purego.RegisterLibFunc(&l.detectAdapters, so, "libcec_detect_adapters")
	purego.RegisterLibFunc(&l.transmit, so, "libcec_transmit")
	purego.RegisterLibFunc(&l.powerOnDevices, so, "libcec_power_on_devices")
	purego.RegisterLibFunc(&l.standbyDevices, so, "libcec_standby_devices")
	purego.RegisterLibFunc(&l.setActiveSource, so, "libcec_set_active_source")
	purego.RegisterLibFunc(&l.getActiveSource, so, "libcec_get_active_source")
	purego.RegisterLibFunc(&l.isActiveSource, so, "libcec_is_active_source")
	purego.RegisterLibFunc(&l.getDevicePowerStatus, so, "libcec_get_device_power_status")
	purego.RegisterLibFunc(&l.sendKeypress, so, "libcec_send_keypress")
	purego.RegisterLibFunc(&l.sendKeyRelease, so, "libcec_send_key_release")
	purego.RegisterLibFunc(&l.volumeUp, so, "libcec_volume_up")
	purego.RegisterLibFunc(&l.volumeDown, so, "libcec_volume_down")
	purego.RegisterLibFunc(&l.muteAudio, so, "libcec_mute_audio")
	purego.RegisterLibFunc(&l.audioToggleMute, so, "libcec_audio_toggle_mute")
	purego.RegisterLibFunc(&l.audioMute, so, "libcec_audio_mute")
	purego.RegisterLibFunc(&l.audioUnmute, so, "libcec_audio_unmute")
	purego.RegisterLibFunc(&l.audioGetStatus, so, "libcec_audio_get_status")
	purego.RegisterLibFunc(&l.setInactiveView, so, "libcec_set_inactive_view")
	purego.RegisterLibFunc(&l.setLogicalAddress, so, "libcec_set_logical_address")
	purego.RegisterLibFunc(&l.switchMonitoring, so, "libcec_switch_monitoring")
	purego.RegisterLibFunc(&l.getLogicalAddresses, so, "libcec_get_logical_addresses")
	return l, nil
}

func (l *Library) Initialise(cfg *Configuration) Handle {
	return Handle(l.initialise(cfg))
}

func (l *Library) Open(h Handle, port string, timeoutMs uint32) int {
	return int(l.open(uintptr(h), port, timeoutMs))
}

func (l *Library) EnableCallbacks(h Handle, handlers *CallbackHandlers, param uintptr) int {
	installTrampolines()
	handlersMu.Lock()
	currentHandlers = handlers
	handlersMu.Unlock()
	return int(l.setCallbacks(uintptr(h), &callbackTable, param))
}

func (l *Library) Close(h Handle) {
	l.close(uintptr(h))
}

func (l *Library) Destroy(h Handle) {
	l.destroy(uintptr(h))
}

func (l *Library) DetectAdapters(h Handle, buf []AdapterDescriptor, path string, quickScan bool) int {
	if len(buf) == 0 {
		return 0
	}
	var pathPtr *byte
	if path != "" {
		b := append([]byte(path), 0)
		pathPtr = &b[0]
	}
	return int(l.detectAdapters(uintptr(h), &buf[0], uint8(len(buf)), pathPtr, boolToInt32(quickScan)))
}

func (l *Library) Transmit(h Handle, command *Command) int {
	return int(l.transmit(uintptr(h), command))
}

func (l *Library) PowerOnDevices(h Handle, address int32) int {
	return int(l.powerOnDevices(uintptr(h), address))
}

func (l *Library) StandbyDevices(h Handle, address int32) int {
	return int(l.standbyDevices(uintptr(h), address))
}

func (l *Library) SetActiveSource(h Handle, deviceType int32) int {
	return int(l.setActiveSource(uintptr(h), deviceType))
}

func (l *Library) GetActiveSource(h Handle) int32 {
	return l.getActiveSource(uintptr(h))
}

func (l *Library) IsActiveSource(h Handle, address int32) int {
	return int(l.isActiveSource(uintptr(h), address))
}

func (l *Library) GetDevicePowerStatus(h Handle, address int32) int32 {
	return l.getDevicePowerStatus(uintptr(h), address)
}

func (l *Library) SendKeypress(h Handle, address, keycode int32, wait bool) int {
	return int(l.sendKeypress(uintptr(h), address, keycode, boolToInt32(wait)))
}

func (l *Library) SendKeyRelease(h Handle, address int32, wait bool) int {
	return int(l.sendKeyRelease(uintptr(h), address, boolToInt32(wait)))
}

func (l *Library) VolumeUp(h Handle, sendRelease bool) int {
	return int(l.volumeUp(uintptr(h), boolToInt32(sendRelease)))
}

func (l *Library) VolumeDown(h Handle, sendRelease bool) int {
	return int(l.volumeDown(uintptr(h), boolToInt32(sendRelease)))
}

func (l *Library) MuteAudio(h Handle, sendRelease bool) int {
	return int(l.muteAudio(uintptr(h), boolToInt32(sendRelease)))
}

func (l *Library) AudioToggleMute(h Handle) int {
	return int(l.audioToggleMute(uintptr(h)))
}

func (l *Library) AudioMute(h Handle) int {
	return int(l.audioMute(uintptr(h)))
}

func (l *Library) AudioUnmute(h Handle) int {
	return int(l.audioUnmute(uintptr(h)))
}

func (l *Library) AudioGetStatus(h Handle) int {
	return int(l.audioGetStatus(uintptr(h)))
}

func (l *Library) SetInactiveView(h Handle) int {
	return int(l.setInactiveView(uintptr(h)))
}

func (l *Library) SetLogicalAddress(h Handle, address int32) int {
	return int(l.setLogicalAddress(uintptr(h), address))
}

func (l *Library) SwitchMonitoring(h Handle, enable bool) int {
	return int(l.switchMonitoring(uintptr(h), boolToInt32(enable)))
}

func (l *Library) GetLogicalAddresses(h Handle) LogicalAddresses {
	return l.getLogicalAddresses(uintptr(h))
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
