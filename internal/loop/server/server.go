package server

import (
	"sort"
	"sync"
	"time"
)

// GameServer is the interface clients use to communicate with the host server.
// Decouples the Client from the concrete Server implementation, enabling testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	Players() int
}

// Server tracks the connected terminal sessions. Every session plays its own
// independent game; the server only knows who is connected and relays
// host-wide events such as shutdown.
type Server struct {
	clients      map[int]*ClientHandle
	nextClientID int
	shuttingDown bool
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID          int
	Username    string           // Display name for this client
	ConnectedAt time.Time        // Registration time
	EventsCh    chan ClientEvent // Events sent to client (shutdown, etc.)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates an empty server.
func NewServer() *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
// Clients joining during shutdown are told so immediately.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:          s.nextClientID,
		Username:    username,
		ConnectedAt: time.Now(),
		EventsCh:    make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle

	if s.shuttingDown {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
// Unknown IDs are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Usernames returns the connected usernames in connection order.
func (s *Server) Usernames() []string {
	s.mu.RLock()
	handles := make([]*ClientHandle, 0, len(s.clients))
	for _, h := range s.clients {
		handles = append(handles, h)
	}
	s.mu.RUnlock()

	sort.Slice(handles, func(i, j int) bool { return handles[i].ID < handles[j].ID })
	names := make([]string, len(handles))
	for i, h := range handles {
		names[i] = h.Username
	}
	return names
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// Reports whether every client left before the timeout.
func (s *Server) Shutdown(timeout time.Duration) bool {
	// Notify all connected clients about the shutdown
	s.mu.Lock()
	s.shuttingDown = true
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return true
		}
		select {
		case <-deadline:
			return false
		case <-ticker.C:
		}
	}
}
