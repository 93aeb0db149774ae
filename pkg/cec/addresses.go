// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

// KnownLogicalAddress is a logical address that is not the "no address"
// marker. The zero value is TV; use NewKnownLogicalAddress to narrow an
// arbitrary LogicalAddress.
type KnownLogicalAddress struct {
	address LogicalAddress
}

// NewKnownLogicalAddress narrows address, rejecting DeviceUnknown and values
// outside the address range.
func NewKnownLogicalAddress(address LogicalAddress) (KnownLogicalAddress, bool) {
	if address < DeviceTV || address > DeviceUnregistered {
		return KnownLogicalAddress{}, false
	}
	return KnownLogicalAddress{address: address}, true
}

// Address returns the wrapped logical address.
func (k KnownLogicalAddress) Address() LogicalAddress {
	return k.address
}

// RegisteredLogicalAddress is a logical address belonging to an addressable
// device: neither the "no address" marker nor the unregistered/broadcast
// address.
type RegisteredLogicalAddress struct {
	address LogicalAddress
}

// NewRegisteredLogicalAddress narrows address, rejecting DeviceUnknown and
// DeviceUnregistered.
func NewRegisteredLogicalAddress(address LogicalAddress) (RegisteredLogicalAddress, bool) {
	if address < DeviceTV || address >= DeviceUnregistered {
		return RegisteredLogicalAddress{}, false
	}
	return RegisteredLogicalAddress{address: address}, true
}

// Address returns the wrapped logical address.
func (r RegisteredLogicalAddress) Address() LogicalAddress {
	return r.address
}

// LogicalAddresses is a primary address plus a membership set, mirroring the
// native primary-and-mask pair. The zero value has an unregistered primary
// and an empty set, which is the native default. Constructors keep the pair
// coherent; there is no way to build a set whose primary is absent.
type LogicalAddresses struct {
	primary LogicalAddress
	set     map[LogicalAddress]bool
}

// OnlyPrimary returns a set holding just the primary address.
func OnlyPrimary(primary KnownLogicalAddress) LogicalAddresses {
	return LogicalAddresses{
		primary: primary.Address(),
		set:     map[LogicalAddress]bool{primary.Address(): true},
	}
}

// WithPrimaryAndAddresses returns a set holding the primary address and every
// address in addresses. An unregistered primary is only coherent with an
// empty secondary list; that combination yields the default set, and any
// other unregistered combination reports false.
func WithPrimaryAndAddresses(primary KnownLogicalAddress, addresses []RegisteredLogicalAddress) (LogicalAddresses, bool) {
	if primary.Address() == DeviceUnregistered {
		if len(addresses) > 0 {
			return LogicalAddresses{}, false
		}
		return LogicalAddresses{}, true
	}
	set := make(map[LogicalAddress]bool, len(addresses)+1)
	set[primary.Address()] = true
	for _, a := range addresses {
		set[a.Address()] = true
	}
	return LogicalAddresses{primary: primary.Address(), set: set}, true
}

// Primary returns the primary address. The zero value reports
// DeviceUnregistered.
func (l LogicalAddresses) Primary() LogicalAddress {
	if l.set == nil {
		return DeviceUnregistered
	}
	return l.primary
}

// Contains reports whether address is in the set.
func (l LogicalAddresses) Contains(address LogicalAddress) bool {
	return l.set[address]
}

// Addresses returns the members of the set in ascending address order.
func (l LogicalAddresses) Addresses() []LogicalAddress {
	out := make([]LogicalAddress, 0, len(l.set))
	for a := DeviceTV; a <= DeviceUnregistered; a++ {
		if l.set[a] {
			out = append(out, a)
		}
	}
	return out
}
