package showcase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const reposPayload = `[
	{"name": "small", "stargazers_count": 2, "fork": false},
	{"name": "forked", "stargazers_count": 99, "fork": true},
	{"name": "big", "stargazers_count": 40, "fork": false},
	{"name": "mid", "stargazers_count": 7, "fork": false}
]`

func fakeGitHub(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/users/someone/repos") {
			http.NotFound(w, r)
			return
		}
		hits++
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposPayload))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchFiltersAndSorts(t *testing.T) {
	srv, _ := fakeGitHub(t)
	client := NewClient("someone", WithAPIBase(srv.URL))

	repos, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(repos) != 3 {
		t.Fatalf("expected 3 repos after fork filter, got %d", len(repos))
	}
	want := []string{"big", "mid", "small"}
	for i, name := range want {
		if repos[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, repos[i].Name)
		}
	}
}

func TestFetchServesCacheOn304(t *testing.T) {
	srv, hits := fakeGitHub(t)
	client := NewClient("someone", WithAPIBase(srv.URL))

	first, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("first Fetch failed: %v", err)
	}
	second, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("second Fetch failed: %v", err)
	}

	if *hits != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", *hits)
	}
	if len(second) != len(first) {
		t.Fatalf("cached snapshot differs: %d vs %d repos", len(second), len(first))
	}
	if len(client.Cached()) != 3 {
		t.Errorf("expected 3 cached repos, got %d", len(client.Cached()))
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("someone", WithAPIBase(srv.URL))
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 403 response")
	}
}

func TestReposEndpoint(t *testing.T) {
	gh, _ := fakeGitHub(t)
	server := NewServer(NewClient("someone", WithAPIBase(gh.URL)), time.Minute)
	if err := server.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/repos")
	if err != nil {
		t.Fatalf("GET /api/repos failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload struct {
		Repos []Repo `json:"repos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(payload.Repos) != 3 {
		t.Errorf("expected 3 repos, got %d", len(payload.Repos))
	}
}

func TestWebsocketReceivesSnapshots(t *testing.T) {
	gh, _ := fakeGitHub(t)
	server := NewServer(NewClient("someone", WithAPIBase(gh.URL)), time.Minute)

	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Initial snapshot arrives on subscribe, empty before the first refresh.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var initial snapshotMessage
	if err := conn.ReadJSON(&initial); err != nil {
		t.Fatalf("read initial snapshot: %v", err)
	}
	if initial.Type != "repos" || len(initial.Repos) != 0 {
		t.Fatalf("unexpected initial snapshot: %+v", initial)
	}

	if err := server.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update snapshotMessage
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if len(update.Repos) != 3 {
		t.Errorf("expected 3 repos in update, got %d", len(update.Repos))
	}
	if update.Repos[0].Name != "big" {
		t.Errorf("expected star-sorted snapshot, first repo %s", update.Repos[0].Name)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	gh, _ := fakeGitHub(t)
	server := NewServer(NewClient("someone", WithAPIBase(gh.URL)), time.Minute)

	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for server.Hub().SubscriberCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for server.Hub().SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never removed after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
