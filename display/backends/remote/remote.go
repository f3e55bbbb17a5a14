// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package remote provides a display surface that streams scenes to
// WebSocket clients.
//
// Every change to the active scene is published as a JSON message:
//
//	{"type":"scene","frame":"<uuid>","version":3,"shapes":[{"kind":"rect",...}]}
//
// Clearing the canvas starts a new frame with a fresh id; shapes appended
// to the same scene keep the frame id and bump the version. Clients get
// the current message as soon as they connect.
//
// The registered "remote" factory listens on Options.Addr when it is set
// and advertises the service over mDNS. Without an address, mount Handler
// on your own server.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service type advertised by Advertise.
const ServiceType = "_sketch._tcp"

const writeWait = 5 * time.Second

func init() {
	display.Register("remote", func(opts display.Options) (display.Surface, error) {
		s := New(opts)
		if opts.Addr == "" {
			return s, nil
		}
		ln, err := net.Listen("tcp", opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("remote: %w", err)
		}
		go func() {
			if err := s.serve(context.Background(), ln); err != nil {
				sketch.Logger().Error("remote: serve failed", "addr", ln.Addr().String(), "err", err)
			}
		}()
		sketch.Logger().Info("remote: listening", "addr", ln.Addr().String())

		if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
			if err := s.Advertise(tcp.Port); err != nil {
				sketch.Logger().Warn("remote: mDNS advertisement failed", "err", err)
			}
		}
		return s, nil
	})
}

// Message is the JSON document sent to clients.
type Message struct {
	Type    string           `json:"type"`
	Frame   string           `json:"frame"`
	Version uint64           `json:"version"`
	Shapes  sketch.ShapeList `json:"shapes"`
}

// Surface publishes the active scene to connected clients.
type Surface struct {
	opts     display.Options
	upgrader websocket.Upgrader

	mu      sync.Mutex
	scene   *sketch.Scene
	current Message
	payload []byte
	clients map[string]*websocket.Conn
	servers []*http.Server
	zone    *mdns.Server
	closed  bool
}

var (
	_ display.Surface  = (*Surface)(nil)
	_ sketch.Refresher = (*Surface)(nil)
	_ http.Handler     = (*Surface)(nil)
)

// New creates a surface with an empty scene and no listeners.
func New(opts display.Options) *Surface {
	s := &Surface{
		opts:    opts,
		scene:   sketch.NewScene(),
		clients: make(map[string]*websocket.Conn),
	}
	s.current.Frame = uuid.NewString()
	s.publishLocked()
	return s
}

// SetScene makes sc the active scene. A different scene starts a new frame.
func (s *Surface) SetScene(sc *sketch.Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return display.ErrClosed
	}
	if sc != s.scene {
		s.scene = sc
		s.current.Frame = uuid.NewString()
	}
	s.publishLocked()
	return nil
}

// Refresh publishes the active scene again after it grew.
func (s *Surface) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return display.ErrClosed
	}
	if s.scene.Version() == s.current.Version {
		return nil
	}
	s.publishLocked()
	return nil
}

// Snapshot returns the message most recently published.
func (s *Surface) Snapshot() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.current
	m.Shapes = append(sketch.ShapeList(nil), m.Shapes...)
	return m
}

// Clients returns the number of connected clients.
func (s *Surface) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// publishLocked snapshots the scene and sends it to every client.
// Clients that cannot keep up are dropped.
func (s *Surface) publishLocked() {
	s.current.Type = "scene"
	s.current.Version = s.scene.Version()
	s.current.Shapes = s.scene.Shapes()

	data, err := json.Marshal(s.current)
	if err != nil {
		sketch.Logger().Error("remote: encode frame", "err", err)
		return
	}
	s.payload = data

	for id, conn := range s.clients {
		if err := send(conn, data); err != nil {
			sketch.Logger().Debug("remote: dropping client", "client", id, "err", err)
			conn.Close()
			delete(s.clients, id)
		}
	}
}

func send(conn *websocket.Conn, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// Handler returns the WebSocket endpoint.
func (s *Surface) Handler() http.Handler {
	return s
}

// ServeHTTP upgrades the request and streams frames until the client
// disconnects or the surface closes.
func (s *Surface) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		sketch.Logger().Debug("remote: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	id := uuid.NewString()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	if err := send(conn, s.payload); err != nil {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.clients[id] = conn
	s.mu.Unlock()
	sketch.Logger().Info("remote: client connected", "client", id, "remote", r.RemoteAddr)

	// Incoming messages are ignored; reading keeps control frames flowing
	// and detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	if s.clients[id] == conn {
		delete(s.clients, id)
	}
	s.mu.Unlock()
	conn.Close()
	sketch.Logger().Info("remote: client disconnected", "client", id)
}

// Serve listens on addr and serves clients until ctx is done or the
// surface closes.
func (s *Surface) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	return s.serve(ctx, ln)
}

func (s *Surface) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return display.ErrClosed
	}
	s.servers = append(s.servers, srv)
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { srv.Close() })
	defer stop()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("remote: %w", err)
	}
	return nil
}

// Advertise announces the service on the local network over mDNS.
func (s *Surface) Advertise(port int) error {
	host, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("remote: hostname: %w", err)
	}
	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, []string{s.opts.Title})
	if err != nil {
		return fmt.Errorf("remote: mDNS service: %w", err)
	}
	zone, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return fmt.Errorf("remote: mDNS server: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.zone != nil {
		s.zone.Shutdown()
	}
	s.zone = zone
	return nil
}

// Close disconnects all clients, stops the servers started by Serve and
// withdraws the mDNS advertisement. Later calls are no-ops.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for id, conn := range s.clients {
		conn.Close()
		delete(s.clients, id)
	}
	for _, srv := range s.servers {
		if err := srv.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.zone != nil {
		if err := s.zone.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
