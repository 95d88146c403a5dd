package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 65536
)

// ConnHandler receives connection lifecycle and inbound messages.
type ConnHandler interface {
	Connect(connID, remoteAddr string)
	Disconnect(connID, remoteAddr string)
	HandleMessage(connID string, msg WSMessage)
}

// Client represents a connected WebSocket client
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	id         string
	remoteAddr string
	send       chan []byte
}

// Hub maintains the set of active clients
type Hub struct {
	clients    map[string]*Client // connection ID -> Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	handler    ConnHandler
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// SetHandler wires the handler notified on connect, disconnect and message.
// It must be called before Run.
func (h *Hub) SetHandler(handler ConnHandler) {
	h.handler = handler
}

// Run processes registrations until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			log.Println("[WS] hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			size := len(h.clients)
			h.mu.Unlock()

			log.Printf("[WS] connection %s from %s registered (clients=%d)", client.id, client.remoteAddr, size)
			if h.handler != nil {
				h.handler.Connect(client.id, client.remoteAddr)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			cur, ok := h.clients[client.id]
			if ok && cur == client {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()

			if ok && cur == client {
				log.Printf("[WS] connection %s disconnected", client.id)
				if h.handler != nil {
					h.handler.Disconnect(client.id, client.remoteAddr)
				}
			}
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every connected client
func (h *Hub) Broadcast(msg Outbound) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WS] error marshaling %s: %v", msg.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		client.deliver(data)
	}
}

// SendTo sends a message to a single connection
func (h *Hub) SendTo(connID string, msg Outbound) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WS] error marshaling %s: %v", msg.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if client, exists := h.clients[connID]; exists {
		client.deliver(data)
	} else {
		log.Printf("[WS] SendTo no client for connection %s", connID)
	}
}

// deliver queues data without blocking; a full buffer drops the message.
// Callers hold h.mu so send cannot be closed concurrently.
func (c *Client) deliver(data []byte) {
	select {
	case c.send <- data:
	default:
		log.Printf("[WS] send buffer full for connection %s, dropping message", c.id)
	}
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel. Best-effort close frame.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] write error for connection %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for connection %s: %v", c.id, err)
				return
			}
		}
	}
}

// readPump reads frames until the connection fails, then unregisters.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] unexpected close for connection %s: %v", c.id, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("[WS] invalid frame from connection %s: %v", c.id, err)
			continue
		}

		if c.hub.handler != nil {
			c.hub.handler.HandleMessage(c.id, msg)
		}
	}
}
