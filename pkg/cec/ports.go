// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"strconv"

	"go.bug.st/serial/enumerator"
)

// Pulse-Eight's USB vendor ID, used to shortlist candidate adapter ports.
const pulseEightUSBVendorID = 0x2548

// SerialPort describes a serial port that looks like a CEC adapter.
type SerialPort struct {
	Name      string
	VendorID  uint16
	ProductID uint16
	Serial    string
}

// DetectSerialPorts lists serial ports whose USB vendor matches a known CEC
// adapter, without loading the native library. The returned names are
// suitable for ConfigBuilder.Port. An empty list is not an error; machines
// with kernel CEC adapters expose no serial port at all.
func DetectSerialPorts() ([]SerialPort, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	return filterPorts(ports), nil
}

func filterPorts(ports []*enumerator.PortDetails) []SerialPort {
	var out []SerialPort
	for _, p := range ports {
		if !p.IsUSB {
			continue
		}
		vid, err := strconv.ParseUint(p.VID, 16, 16)
		if err != nil || vid != pulseEightUSBVendorID {
			continue
		}
		pid, _ := strconv.ParseUint(p.PID, 16, 16)
		out = append(out, SerialPort{
			Name:      p.Name,
			VendorID:  uint16(vid),
			ProductID: uint16(pid),
			Serial:    p.SerialNumber,
		})
	}
	return out
}
