package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

type chanHandler struct {
	connected    chan string
	disconnected chan string
}

func newChanHandler() *chanHandler {
	return &chanHandler{
		connected:    make(chan string, 4),
		disconnected: make(chan string, 4),
	}
}

func (h *chanHandler) Connect(connID, _ string)        { h.connected <- connID }
func (h *chanHandler) Disconnect(connID, _ string)     { h.disconnected <- connID }
func (h *chanHandler) HandleMessage(string, WSMessage) {}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func TestHubBroadcastDoesNotBlockOnFullBuffer(t *testing.T) {
	h := NewHub()
	slow := &Client{hub: h, id: "slow", send: make(chan []byte, 1)}
	fast := &Client{hub: h, id: "fast", send: make(chan []byte, 8)}
	h.clients[slow.id] = slow
	h.clients[fast.id] = fast

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			h.Broadcast(Outbound{Type: MsgUpdateGame, Data: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full client buffer")
	}
	if len(slow.send) != 1 {
		t.Errorf("slow client buffered %d messages, want 1", len(slow.send))
	}
	if len(fast.send) != 5 {
		t.Errorf("fast client buffered %d messages, want 5", len(fast.send))
	}
}

func TestHubSendToTargetsOneClient(t *testing.T) {
	h := NewHub()
	a := &Client{hub: h, id: "a", send: make(chan []byte, 4)}
	b := &Client{hub: h, id: "b", send: make(chan []byte, 4)}
	h.clients[a.id] = a
	h.clients[b.id] = b

	h.SendTo("a", assignPlayer("player1"))
	h.SendTo("missing", gameFull())

	if len(a.send) != 1 || len(b.send) != 0 {
		t.Fatalf("a=%d b=%d, want 1 and 0", len(a.send), len(b.send))
	}
	var got struct {
		Type string           `json:"type"`
		Data AssignPlayerData `json:"data"`
	}
	if err := json.Unmarshal(<-a.send, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != MsgAssignPlayer || got.Data.Player != "player1" {
		t.Errorf("frame = %+v", got)
	}
}

func TestHubRegisterAndUnregister(t *testing.T) {
	h := NewHub()
	handler := newChanHandler()
	h.SetHandler(handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := &Client{hub: h, id: "c1", send: make(chan []byte, 4)}
	h.register <- c
	waitFor(t, handler.connected, "c1")
	if h.Count() != 1 {
		t.Errorf("Count() = %d, want 1", h.Count())
	}

	h.unregister <- c
	waitFor(t, handler.disconnected, "c1")
	if h.Count() != 0 {
		t.Errorf("Count() = %d, want 0", h.Count())
	}
	if _, ok := <-c.send; ok {
		t.Errorf("send channel still open after unregister")
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	h := NewHub()
	handler := newChanHandler()
	h.SetHandler(handler)

	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	c := &Client{hub: h, id: "c1", send: make(chan []byte, 4)}
	h.register <- c
	waitFor(t, handler.connected, "c1")

	cancel()
	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	if _, ok := <-c.send; ok {
		t.Errorf("send channel still open after shutdown")
	}
}
