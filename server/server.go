package server

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lazharichir/blackjack/cli"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/server/connection"
	serverevents "github.com/lazharichir/blackjack/server/events"
	"github.com/lazharichir/blackjack/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// session is one client's running game. Commands routed from the
// websocket are written into input; done stops transcript writes once
// the client is gone.
type session struct {
	input *io.PipeWriter
	done  chan struct{}
	once  sync.Once
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		s.input.CloseWithError(io.ErrClosedPipe)
	})
}

// Server hosts one blackjack session per websocket client: transcript
// lines and event envelopes flow out, commands flow in.
type Server struct {
	cfg       *config.Config
	store     events.EventStore
	connMgr   *connection.Manager
	cmdRouter *handlers.CommandRouter

	mutex    sync.RWMutex
	sessions map[string]*session
}

// NewServer creates a new blackjack WebSocket server. The store may be
// nil; when set it records every round played by every client.
func NewServer(cfg *config.Config, store events.EventStore) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		connMgr:  connection.NewManager(),
		sessions: make(map[string]*session),
	}
	s.cmdRouter = handlers.NewCommandRouter(s)
	return s
}

// PushInput implements handlers.SessionInput: it feeds one token of
// player input into the client's game.
func (s *Server) PushInput(clientID string, token string) error {
	s.mutex.RLock()
	sess, ok := s.sessions[clientID]
	s.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("no session for client %s", clientID)
	}
	if _, err := sess.input.Write([]byte(token)); err != nil {
		return fmt.Errorf("session input for client %s closed: %w", clientID, err)
	}
	return nil
}

// Start begins the server on the specified port
func (s *Server) Start(port string) error {
	// Start connection manager in its own goroutine
	go s.connMgr.Start()

	http.HandleFunc("/ws", s.handleWebSocket)

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe("0.0.0.0:"+port, nil)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	clientID := uuid.NewString()
	log.Printf("New client connected: %s with ID: %s", r.RemoteAddr, clientID)

	client := &connection.Client{
		ID:   clientID,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	s.connMgr.Register <- client

	go s.readPump(client)
	go s.writePump(client)
	go s.runSession(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.closeSession(client.ID)
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error: %v", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			log.Printf("Error handling command: %v", err)
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			// Channel closed
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
}

// runSession plays the client's game until they quit or disconnect.
func (s *Server) runSession(client *connection.Client) {
	pr, pw := io.Pipe()
	sess := &session{input: pw, done: make(chan struct{})}

	s.mutex.Lock()
	s.sessions[client.ID] = sess
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		delete(s.sessions, client.ID)
		s.mutex.Unlock()
		sess.close()
	}()

	out := &clientWriter{client: client, done: sess.done}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dispatcher := serverevents.NewDispatcher(s.connMgr, client.ID)

	term := cli.NewSession(s.cfg, pr, out, rng, s.store)
	term.AddEventHandler(dispatcher.HandleEvent)

	if err := term.Run(); err != nil {
		log.Printf("Session for client %s ended: %v", client.ID, err)
	}
}

func (s *Server) closeSession(clientID string) {
	s.mutex.RLock()
	sess, ok := s.sessions[clientID]
	s.mutex.RUnlock()
	if ok {
		sess.close()
	}
}

// clientWriter adapts a client's send channel to io.Writer so the game
// transcript streams to the client as text frames.
type clientWriter struct {
	client *connection.Client
	done   chan struct{}
}

func (w *clientWriter) Write(p []byte) (int, error) {
	select {
	case <-w.done:
		return 0, io.ErrClosedPipe
	default:
	}

	buf := make([]byte, len(p))
	copy(buf, p)

	select {
	case w.client.Send <- buf:
		return len(p), nil
	case <-w.done:
		return 0, io.ErrClosedPipe
	}
}
