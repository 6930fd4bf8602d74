package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/editor"
)

// writeTimeout bounds each client write; a client that cannot keep up with
// patch fan-out is dropped rather than allowed to stall the editor.
const writeTimeout = 3 * time.Second

type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     *zap.Logger
}

func newHub(log *zap.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast sends a message to every connected client, dropping any client
// whose write fails or times out.
func (h *hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
			h.log.Debug("dropped slow websocket client", zap.Error(err))
		}
	}
	h.mu.Unlock()
}

// hello is the first message on every websocket connection: the full
// session snapshot, so the client can render before any patch arrives.
type hello struct {
	Type    string          `json:"type"`
	Payload editor.Snapshot `json:"payload"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Warn("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	// Register before the hello so no patch slips through the gap; the
	// snapshot's seq lets the client drop any patch it predates.
	s.hub.add(conn)
	defer s.hub.remove(conn)

	greeting, err := json.Marshal(hello{Type: "hello", Payload: s.session.Snapshot()})
	if err != nil {
		s.log.Error("marshaling snapshot", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	err = conn.Write(ctx, websocket.MessageText, greeting)
	cancel()
	if err != nil {
		return
	}
	s.log.Debug("websocket client connected", zap.String("remote", r.RemoteAddr))

	// The editor protocol is push-only; read until the client goes away.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}
