// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"log/slog"
	"runtime/cgo"
	"sync/atomic"

	"github.com/Thermoquad/cinder/pkg/cec/native"
)

// callbacks is the event dispatch block for one connection. The native
// library holds a cgo.Handle to it as the opaque callback param for the
// whole connection lifetime, so the block stays reachable until Close
// deletes the handle.
type callbacks struct {
	keyPress        func(Keypress)
	commandReceived func(Command)
	logMessage      func(LogMessage)
	logger          *slog.Logger
	dropped         atomic.Uint64
}

func newCallbacks(cfg *Config) *callbacks {
	return &callbacks{
		keyPress:        cfg.KeyPressCallback,
		commandReceived: cfg.CommandReceivedCallback,
		logMessage:      cfg.LogMessageCallback,
		logger:          cfg.Logger,
	}
}

// drop records an event that could not be decoded. Undecodable events are
// counted and reported through the logger, never delivered.
func (c *callbacks) drop(kind string, err error) {
	c.dropped.Add(1)
	if c.logger != nil {
		c.logger.Debug("dropped undecodable event", "kind", kind, "error", err)
	}
}

// handlerTable is registered once per connection with the native library.
// Dispatch resolves the owning connection from the opaque param.
var handlerTable = native.CallbackHandlers{
	KeyPress:        dispatchKeyPress,
	CommandReceived: dispatchCommandReceived,
	LogMessage:      dispatchLogMessage,
}

func callbacksFromParam(param uintptr) *callbacks {
	if param == 0 {
		return nil
	}
	cb, _ := cgo.Handle(param).Value().(*callbacks)
	return cb
}

func dispatchKeyPress(param uintptr, keypress *native.Keypress) {
	cb := callbacksFromParam(param)
	if cb == nil || keypress == nil {
		return
	}
	ev, err := decodeKeypress(keypress)
	if err != nil {
		cb.drop("keypress", err)
		return
	}
	if cb.keyPress != nil {
		cb.keyPress(ev)
	}
}

func dispatchCommandReceived(param uintptr, command *native.Command) {
	cb := callbacksFromParam(param)
	if cb == nil || command == nil {
		return
	}
	ev, err := decodeCommand(command)
	if err != nil {
		cb.drop("command", err)
		return
	}
	if cb.commandReceived != nil {
		cb.commandReceived(ev)
	}
}

func dispatchLogMessage(param uintptr, message *native.LogMessage) {
	cb := callbacksFromParam(param)
	if cb == nil || message == nil {
		return
	}
	ev, err := decodeLogMessage(message)
	if err != nil {
		cb.drop("log message", err)
		return
	}
	if cb.logMessage != nil {
		cb.logMessage(ev)
	}
}
