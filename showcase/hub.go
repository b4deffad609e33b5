package showcase

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// snapshotMessage is the wire format pushed to websocket subscribers.
type snapshotMessage struct {
	Type       string `json:"type"`
	Repos      []Repo `json:"repos"`
	ServerTime int64  `json:"serverTime"`
}

// Hub owns the current repository snapshot and the live websocket
// subscribers it is pushed to.
type Hub struct {
	mu          sync.Mutex
	repos       []Repo
	updatedAt   time.Time
	subscribers map[string]*subscriber
	nextID      atomic.Uint64
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewHub creates a hub with an empty snapshot.
//
// Returns:
//   - *Hub: the hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
	}
}

// Snapshot returns the current repositories and when they were last updated.
//
// Returns:
//   - []Repo: the repositories
//   - time.Time: the last update time, zero if never updated
func (h *Hub) Snapshot() ([]Repo, time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Repo(nil), h.repos...), h.updatedAt
}

// Update replaces the snapshot and broadcasts it to all subscribers.
//
// Parameters:
//   - repos: the new repository snapshot
func (h *Hub) Update(repos []Repo) {
	h.mu.Lock()
	h.repos = append([]Repo(nil), repos...)
	h.updatedAt = time.Now()
	h.mu.Unlock()

	h.broadcast()
}

// Subscribe registers a websocket connection and sends it the current
// snapshot immediately.
//
// Parameters:
//   - conn: the upgraded websocket connection
//
// Returns:
//   - string: the subscriber id, for Unsubscribe
//   - error: error if the initial snapshot cannot be sent
func (h *Hub) Subscribe(conn *websocket.Conn) (string, error) {
	id := fmt.Sprintf("sub-%d", h.nextID.Add(1))
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	repos := append([]Repo(nil), h.repos...)
	h.mu.Unlock()

	if err := sub.send(repos); err != nil {
		h.Unsubscribe(id)
		return "", fmt.Errorf("send initial snapshot: %w", err)
	}
	return id, nil
}

// Unsubscribe removes a subscriber and closes its connection.
//
// Parameters:
//   - id: the subscriber id returned by Subscribe
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	if ok {
		sub.conn.Close()
	}
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// broadcast pushes the current snapshot to every subscriber, dropping any
// whose connection fails.
func (h *Hub) broadcast() {
	h.mu.Lock()
	repos := append([]Repo(nil), h.repos...)
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.send(repos); err != nil {
			log.Printf("[Showcase] Dropping subscriber %s: %v", id, err)
			h.Unsubscribe(id)
		}
	}
}

// send writes one snapshot message under the subscriber's write lock.
func (s *subscriber) send(repos []Repo) error {
	msg := snapshotMessage{
		Type:       "repos",
		Repos:      repos,
		ServerTime: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}
