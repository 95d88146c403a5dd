package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/playpong/backend/internal/audit"
	"github.com/playpong/backend/internal/events"
	"github.com/playpong/backend/internal/game"
	"github.com/playpong/backend/internal/models"
)

var errMissingPosition = errors.New("move_paddle requires a numeric position")

// Sender delivers outbound frames. Hub is the production implementation.
type Sender interface {
	SendTo(connID string, msg Outbound)
	Broadcast(msg Outbound)
}

// Dispatcher translates transport events into match operations and match
// state into outbound frames.
type Dispatcher struct {
	match     *game.Match
	out       Sender
	publisher events.Publisher
	recorder  audit.Recorder
}

func NewDispatcher(match *game.Match, out Sender, publisher events.Publisher, recorder audit.Recorder) *Dispatcher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Dispatcher{match: match, out: out, publisher: publisher, recorder: recorder}
}

// Connect assigns a slot to the new connection, or marks it as a spectator
// when the game is full, then sends it the current state.
func (d *Dispatcher) Connect(connID, remoteAddr string) {
	slot, err := d.match.Join(connID)
	switch {
	case errors.Is(err, game.ErrGameFull):
		d.out.SendTo(connID, gameFull())
		d.publisher.Publish(events.New(events.PlayerRejected, "", connID))
		d.recorder.Record(audit.NewEvent(connID, models.ActionRejected, "", remoteAddr))
	case err != nil:
		log.Printf("[WS] join failed for connection %s: %v", connID, err)
	default:
		d.out.SendTo(connID, assignPlayer(slot))
		d.publisher.Publish(events.New(events.PlayerJoined, slot, connID))
		d.recorder.Record(audit.NewEvent(connID, models.ActionJoined, string(slot), remoteAddr))
	}

	d.out.SendTo(connID, updateGame(d.match.Snapshot()))
}

// Disconnect frees the connection's slot, if it held one.
func (d *Dispatcher) Disconnect(connID, remoteAddr string) {
	slot, ok := d.match.Leave(connID)
	if !ok {
		return
	}
	d.publisher.Publish(events.New(events.PlayerLeft, slot, connID))
	d.recorder.Record(audit.NewEvent(connID, models.ActionLeft, string(slot), remoteAddr))
}

// HandleMessage routes one inbound frame.
func (d *Dispatcher) HandleMessage(connID string, msg WSMessage) {
	switch msg.Type {
	case MsgMovePaddle:
		position, err := decodeMove(msg.Data)
		if err != nil {
			log.Printf("[WS] rejected move_paddle from %s: %v", connID, err)
			d.out.SendTo(connID, errorMessage(err.Error()))
			return
		}
		d.movePaddle(connID, position)

	case MsgRestartGame:
		snapshot := d.match.Restart()
		log.Printf("[WS] game restarted by connection %s", connID)
		d.publisher.Publish(events.New(events.GameRestarted, "", connID))
		d.out.Broadcast(updateGame(snapshot))

	default:
		d.out.SendTo(connID, errorMessage("Unknown message type"))
	}
}

func (d *Dispatcher) movePaddle(connID string, position float64) {
	snapshot, _, err := d.match.MovePaddle(connID, position)
	if errors.Is(err, game.ErrNoSlot) {
		// spectators cannot move paddles; ignored without reply
		return
	}
	if err != nil {
		log.Printf("[WS] move_paddle from %s failed: %v", connID, err)
		return
	}
	d.out.Broadcast(updateGame(snapshot))
}

// Tick is the game loop callback: broadcast the new state and announce points.
func (d *Dispatcher) Tick(snapshot game.State, res game.TickResult) {
	d.out.Broadcast(updateGame(snapshot))
	if res.Scored != "" {
		d.publisher.Publish(events.Scored(res.Scored, snapshot.Scores))
	}
}

func decodeMove(data json.RawMessage) (float64, error) {
	if len(data) == 0 {
		return 0, errMissingPosition
	}
	var payload MovePaddleData
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("invalid move_paddle payload: %w", err)
	}
	if payload.Position == nil {
		return 0, errMissingPosition
	}
	return *payload.Position, nil
}
