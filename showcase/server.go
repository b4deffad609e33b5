package showcase

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Server ties the GitHub client, the hub, and the HTTP surface together:
// a JSON snapshot endpoint, a websocket upgrade, and a background refresher.
type Server struct {
	client   *Client
	hub      *Hub
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewServer creates a showcase server around the given client.
//
// Parameters:
//   - client: the GitHub client
//   - refreshInterval: how often the snapshot is refreshed; minimum 10s
//
// Returns:
//   - *Server: the server
func NewServer(client *Client, refreshInterval time.Duration) *Server {
	if client == nil {
		panic("client is required")
	}
	if refreshInterval < 10*time.Second {
		refreshInterval = 10 * time.Second
	}
	return &Server{
		client:   client,
		hub:      NewHub(),
		interval: refreshInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Hub returns the server's hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Refresh fetches the repositories once and pushes them through the hub.
//
// Parameters:
//   - ctx: the request context
//
// Returns:
//   - error: error if the fetch fails
func (s *Server) Refresh(ctx context.Context) error {
	repos, err := s.client.Fetch(ctx)
	if err != nil {
		return err
	}
	s.hub.Update(repos)
	log.Printf("[Showcase] Snapshot refreshed: %d repositories", len(repos))
	return nil
}

// RunRefresher refreshes immediately and then on the configured interval
// until the context is cancelled. Blocks the calling goroutine.
//
// Parameters:
//   - ctx: the lifetime context
func (s *Server) RunRefresher(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		log.Printf("[Showcase] Initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				log.Printf("[Showcase] Refresh failed: %v", err)
			}
		}
	}
}

// Handler returns the HTTP mux: GET /api/repos for the JSON snapshot and
// GET /ws for the websocket subscription.
//
// Returns:
//   - http.Handler: the mux
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/repos", s.handleRepos)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	repos, updatedAt := s.hub.Snapshot()
	payload := struct {
		Repos     []Repo    `json:"repos"`
		UpdatedAt time.Time `json:"updatedAt"`
	}{Repos: repos, UpdatedAt: updatedAt}

	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Showcase] Upgrade failed: %v", err)
		return
	}

	id, err := s.hub.Subscribe(conn)
	if err != nil {
		log.Printf("[Showcase] Subscribe failed: %v", err)
		return
	}

	// Drain reads until the client goes away, then unsubscribe.
	go func() {
		defer s.hub.Unsubscribe(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
