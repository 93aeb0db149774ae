// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package monitor streams CEC bus events to WebSocket subscribers.
//
// A Server's On methods match the cec.ConfigBuilder callback signatures, so
// wiring a connection into a monitor is one registration per event class.
// Subscribers receive each event as a binary WebSocket message holding one
// CBOR-encoded cec.TraceRecord.
package monitor

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/gorilla/websocket"

	"github.com/Thermoquad/cinder/pkg/cec"
)

const (
	writeTimeout = 10 * time.Second
	// sendBuffer is the per-subscriber queue. Subscribers that fall this
	// far behind are disconnected rather than blocking the bus callbacks.
	sendBuffer = 64
)

// Server fans bus events out to WebSocket subscribers.
type Server struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	subs   map[*subscriber]bool
	closed bool
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer returns a server with no subscribers. A nil logger disables
// diagnostics.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		subs: make(map[*subscriber]bool),
	}
}

// Handler upgrades requests to WebSocket and subscribes them to the event
// stream until the client disconnects or the server closes.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.subs[sub] = true
		s.mu.Unlock()
		s.log.Info("subscriber connected", "remote", r.RemoteAddr)

		go s.writePump(sub)
		s.readPump(sub)
	})
}

// SubscriberCount reports the number of connected subscribers.
func (s *Server) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// OnCommand broadcasts a received frame.
func (s *Server) OnCommand(c cec.Command) {
	s.broadcast(cec.TraceRecord{
		Timestamp:   time.Now(),
		Kind:        cec.TraceKindCommand,
		Initiator:   int32(c.Initiator),
		Destination: int32(c.Destination),
		Opcode:      int32(c.Opcode),
		Payload:     c.Parameters.Bytes(),
	})
}

// OnKeypress broadcasts a remote key event.
func (s *Server) OnKeypress(k cec.Keypress) {
	s.broadcast(cec.TraceRecord{
		Timestamp:  time.Now(),
		Kind:       cec.TraceKindKeypress,
		Key:        int32(k.Code),
		DurationMs: k.Duration.Milliseconds(),
	})
}

// OnLogMessage broadcasts a native diagnostic.
func (s *Server) OnLogMessage(m cec.LogMessage) {
	s.broadcast(cec.TraceRecord{
		Timestamp:  time.Now(),
		Kind:       cec.TraceKindLog,
		Level:      int32(m.Level),
		DurationMs: m.Time.Milliseconds(),
		Message:    m.Message,
	})
}

func (s *Server) broadcast(rec cec.TraceRecord) {
	data, err := cbor.Marshal(rec)
	if err != nil {
		s.log.Warn("failed to encode event", "kind", rec.Kind, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		select {
		case sub.send <- data:
		default:
			// Subscriber is not draining its queue; cut it loose.
			delete(s.subs, sub)
			close(sub.send)
			s.log.Warn("dropped slow subscriber", "remote", sub.conn.RemoteAddr())
		}
	}
}

// Close disconnects every subscriber. The server accepts no new subscribers
// afterwards.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for sub := range s.subs {
		delete(s.subs, sub)
		close(sub.send)
	}
	return nil
}

func (s *Server) writePump(sub *subscriber) {
	defer sub.conn.Close()
	for data := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			s.unsubscribe(sub)
			return
		}
	}
	sub.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

func (s *Server) readPump(sub *subscriber) {
	// Subscribers are read-only; drain control frames until disconnect.
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			s.unsubscribe(sub)
			return
		}
	}
}

func (s *Server) unsubscribe(sub *subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[sub] {
		delete(s.subs, sub)
		close(sub.send)
	}
}
