package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Clients() == n }, 2*time.Second, 5*time.Millisecond)
}

func readSnapshot(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var s Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	h := NewHub()
	defer h.Close()
	a, b := dial(t, h), dial(t, h)
	waitForClients(t, h, 2)

	sent := Snapshot{Tick: 7, Objects: []ObjectState{{Index: 0, Shape: "box", Position: [3]float32{1, 2, 3}}}}
	require.NoError(t, h.Broadcast(sent))

	assert.Equal(t, sent, readSnapshot(t, a))
	assert.Equal(t, sent, readSnapshot(t, b))
}

func TestBroadcastEncodeError(t *testing.T) {
	h := NewHub()
	assert.Error(t, h.Broadcast(make(chan int)))
}

func TestClientDisconnectUnregisters(t *testing.T) {
	h := NewHub()
	defer h.Close()
	conn := dial(t, h)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestSlowClientIsDropped(t *testing.T) {
	h := NewHub()
	defer h.Close()
	dial(t, h) // never reads
	waitForClients(t, h, 1)

	big := strings.Repeat("x", 1<<20)
	for i := 0; i < sendBuffer*8 && h.Clients() > 0; i++ {
		require.NoError(t, h.Broadcast(big))
	}
	assert.Equal(t, 0, h.Clients())
}

func TestRunBroadcastsUntilCancelled(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)
	waitForClients(t, h, 1)

	var tick atomic.Uint64
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx, 5*time.Millisecond, func() any {
			return Snapshot{Tick: tick.Add(1)}
		})
		close(done)
	}()

	first := readSnapshot(t, conn)
	second := readSnapshot(t, conn)
	assert.Greater(t, second.Tick, first.Tick)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 0, h.Clients())

	// The hub is closed: the client sees a close frame after any queued snapshots
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func TestClosedHubRefusesClients(t *testing.T) {
	h := NewHub()
	h.Close()

	conn := dial(t, h)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, h.Clients())
}
