// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cec

import (
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// TraceRecord is one captured bus event, CBOR-encoded by Tracer. Only the
// fields for the record's kind are populated.
type TraceRecord struct {
	Timestamp time.Time `cbor:"ts"`
	Kind      string    `cbor:"kind"`

	// Command fields.
	Initiator   int32  `cbor:"init,omitempty"`
	Destination int32  `cbor:"dest,omitempty"`
	Opcode      int32  `cbor:"op,omitempty"`
	Payload     []byte `cbor:"data,omitempty"`

	// Keypress fields.
	Key        int32 `cbor:"key,omitempty"`
	DurationMs int64 `cbor:"dur,omitempty"`

	// Log fields.
	Level   int32  `cbor:"level,omitempty"`
	Message string `cbor:"msg,omitempty"`
}

// Record kinds.
const (
	TraceKindCommand  = "command"
	TraceKindKeypress = "keypress"
	TraceKindLog      = "log"
)

// Tracer appends bus events to a writer as a CBOR sequence. Its On methods
// match the ConfigBuilder callback signatures, so a connection is traced by
// registering them:
//
//	t := cec.NewTracer(f)
//	builder.CommandReceived(t.OnCommand).KeyPress(t.OnKeypress)
//
// Tracer is safe for use from the native callback thread.
type Tracer struct {
	mu  sync.Mutex
	enc *cbor.Encoder
	now func() time.Time
}

// NewTracer returns a tracer appending to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{enc: cbor.NewEncoder(w), now: time.Now}
}

// OnCommand records a received frame.
func (t *Tracer) OnCommand(c Command) {
	t.write(TraceRecord{
		Timestamp:   t.now(),
		Kind:        TraceKindCommand,
		Initiator:   int32(c.Initiator),
		Destination: int32(c.Destination),
		Opcode:      int32(c.Opcode),
		Payload:     c.Parameters.Bytes(),
	})
}

// OnKeypress records a remote key event.
func (t *Tracer) OnKeypress(k Keypress) {
	t.write(TraceRecord{
		Timestamp:  t.now(),
		Kind:       TraceKindKeypress,
		Key:        int32(k.Code),
		DurationMs: k.Duration.Milliseconds(),
	})
}

// OnLogMessage records a native diagnostic.
func (t *Tracer) OnLogMessage(m LogMessage) {
	t.write(TraceRecord{
		Timestamp:  t.now(),
		Kind:       TraceKindLog,
		Level:      int32(m.Level),
		DurationMs: m.Time.Milliseconds(),
		Message:    m.Message,
	})
}

func (t *Tracer) write(rec TraceRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Encode errors are swallowed; tracing must never disturb dispatch.
	_ = t.enc.Encode(rec)
}

// ReadTrace decodes every record from a CBOR sequence written by Tracer.
func ReadTrace(r io.Reader) ([]TraceRecord, error) {
	dec := cbor.NewDecoder(r)
	var out []TraceRecord
	for {
		var rec TraceRecord
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
		out = append(out, rec)
	}
}
