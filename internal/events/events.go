package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/playpong/backend/internal/game"
	"github.com/redis/go-redis/v9"
)

// Type names a match event on the bus.
type Type string

const (
	PlayerJoined   Type = "player_joined"
	PlayerRejected Type = "player_rejected"
	PlayerLeft     Type = "player_left"
	PlayerScored   Type = "player_scored"
	GameRestarted  Type = "game_restarted"
)

// Event is the JSON payload published on the events channel.
type Event struct {
	Type         Type         `json:"type"`
	Player       game.Slot    `json:"player,omitempty"`
	ConnectionID string       `json:"connection_id,omitempty"`
	Scores       *game.Scores `json:"scores,omitempty"`
	At           int64        `json:"at"`
}

// New stamps an event with the current time.
func New(t Type, player game.Slot, connectionID string) Event {
	return Event{Type: t, Player: player, ConnectionID: connectionID, At: time.Now().Unix()}
}

// Scored builds a PlayerScored event carrying the new scores.
func Scored(player game.Slot, scores game.Scores) Event {
	ev := New(PlayerScored, player, "")
	ev.Scores = &scores
	return ev
}

// Publisher sends match events somewhere. Publish must not block the caller.
type Publisher interface {
	Publish(ev Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

// RedisPublisher publishes events with PUBLISH on a single channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	timeout time.Duration
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel, timeout: 2 * time.Second}
}

// Publish is fire-and-forget; failures are only logged.
func (p *RedisPublisher) Publish(ev Event) {
	b, err := jsonPayload(ev)
	if err != nil {
		log.Printf("[EVENTS] failed to marshal %s event: %v", ev.Type, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
			log.Printf("[EVENTS] publish %s failed: %v", ev.Type, err)
		}
	}()
}

func jsonPayload(ev Event) (string, error) {
	b, err := json.Marshal(ev)
	return string(b), err
}

// Decode parses a payload received from the events channel.
func Decode(payload string) (Event, error) {
	var ev Event
	err := json.Unmarshal([]byte(payload), &ev)
	return ev, err
}
