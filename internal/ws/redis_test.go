package ws

import (
	"testing"

	"github.com/playpong/backend/internal/events"
	"github.com/playpong/backend/internal/game"
)

func TestRelayEventBroadcastsPublicEvents(t *testing.T) {
	out := newFakeSender()
	payload := `{"type":"player_joined","player":"player2","connection_id":"secret-conn-id","at":1}`

	relayEvent(out, payload)

	b := out.broadcasts()
	if len(b) != 1 || b[0].Type != MsgMatchEvent {
		t.Fatalf("broadcasts = %+v, want one match_event", b)
	}
	got := b[0].Data.(events.Event)
	if got.Player != game.SlotPlayer2 {
		t.Errorf("player = %q", got.Player)
	}
	if got.ConnectionID != "" {
		t.Errorf("connection id leaked to clients: %q", got.ConnectionID)
	}
}

func TestRelayEventSkipsRejectedAndGarbage(t *testing.T) {
	out := newFakeSender()

	relayEvent(out, `{"type":"player_rejected","connection_id":"x"}`)
	relayEvent(out, `{"type":"something_else"}`)
	relayEvent(out, `not json`)

	if n := len(out.broadcasts()); n != 0 {
		t.Errorf("broadcasts = %d, want 0", n)
	}
}
