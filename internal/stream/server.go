// Package stream pushes per-tick board snapshots to websocket
// spectators. It is a pure consumer of the core's observer hook.
package stream

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"hobbit_sim/internal/sim"
)

type cellFrame struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Symbol string `json:"symbol"`
}

type frame struct {
	Tick    int         `json:"tick"`
	MapID   string      `json:"map_id"`
	MapName string      `json:"map_name"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Hobbits int         `json:"hobbits"`
	Escaped int         `json:"escaped"`
	Cells   []cellFrame `json:"cells"`
}

// Server fans world snapshots out to connected spectators.
type Server struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    *frame
}

func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// HandleSpectator upgrades the request and registers the connection.
// New spectators immediately receive the latest frame.
func (s *Server) HandleSpectator(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}

	// Catch the spectator up before registering it for broadcasts, so
	// no two writers ever share the connection.
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last != nil {
		if err := conn.WriteJSON(last); err != nil {
			conn.Close()
			return
		}
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Spectators send nothing; the read loop only detects closes.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Broadcast sends the snapshot to every spectator, dropping
// connections that fail to keep up.
func (s *Server) Broadcast(w sim.World) {
	f := frameFrom(w)

	s.mu.Lock()
	s.last = &f
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(f); err != nil {
			s.drop(c)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.clients[conn]
	delete(s.clients, conn)
	s.mu.Unlock()
	if ok {
		conn.Close()
	}
}

func frameFrom(w sim.World) frame {
	cells := w.Cells()
	out := make([]cellFrame, len(cells))
	for i, c := range cells {
		out[i] = cellFrame{X: c.Pos.X, Y: c.Pos.Y, Symbol: string(c.Symbol)}
	}
	return frame{
		Tick:    w.Tick,
		MapID:   w.MapID,
		MapName: w.MapName,
		Width:   w.Dims.Width,
		Height:  w.Dims.Height,
		Hobbits: len(w.Hobbits),
		Escaped: w.EscapedCount(),
		Cells:   out,
	}
}
