package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	gorilla "github.com/gorilla/websocket"
)

// dialTestConn upgrades against a throwaway server that drains everything
// the client sends, and returns the wrapped client side.
func dialTestConn(t *testing.T) (*Conn, func()) {
	t.Helper()

	upgrader := gorilla.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	raw, _, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}

	return NewConn(raw), func() {
		raw.Close()
		srv.Close()
	}
}

// The schedule stream writes from two goroutines: the pub/sub relay and the
// read loop answering pings. gorilla allows only one writer at a time, so
// interleaved sends must serialize instead of panicking.
func TestConnConcurrentWrites(t *testing.T) {
	sock, cleanup := dialTestConn(t)
	defer cleanup()

	const writers = 8
	const messages = 50

	var wg sync.WaitGroup
	errCh := make(chan error, writers*messages)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < messages; j++ {
				var err error
				if n%2 == 0 {
					err = sock.WriteRaw([]byte(`{"event":"schedule_changed","active":"Default"}`))
				} else {
					err = sock.WriteTyped(PongResponse{Event: EventPong})
				}
				if err != nil {
					errCh <- err
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent write: %v", err)
	}
}

func TestConnWriteError(t *testing.T) {
	sock, cleanup := dialTestConn(t)
	defer cleanup()

	if err := sock.WriteError("unknown action: nope"); err != nil {
		t.Fatalf("WriteError: %v", err)
	}
}
