package events

import (
	"testing"

	"github.com/playpong/backend/internal/game"
)

func TestScoredEventCarriesScores(t *testing.T) {
	ev := Scored(game.SlotPlayer1, game.Scores{Player1: 4, Player2: 2})

	b, err := jsonPayload(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type != PlayerScored || got.Player != game.SlotPlayer1 {
		t.Errorf("decoded %+v", got)
	}
	if got.Scores == nil || *got.Scores != (game.Scores{Player1: 4, Player2: 2}) {
		t.Errorf("scores = %+v", got.Scores)
	}
	if got.At == 0 {
		t.Errorf("timestamp missing")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not json"); err == nil {
		t.Error("expected error for invalid payload")
	}
}
