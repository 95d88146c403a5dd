package ws

import (
	"context"
	"log"

	"github.com/playpong/backend/internal/events"
	"github.com/redis/go-redis/v9"
)

// StartEventSubscriber subscribes to the match events channel and relays
// public events to every connected client as match_event frames.
func StartEventSubscriber(ctx context.Context, rdb *redis.Client, channel string, out Sender) {
	if rdb == nil {
		log.Println("[WS] Redis client not set; event subscriber not started")
		return
	}

	pubsub := rdb.Subscribe(ctx, channel)
	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		log.Printf("[WS] %s subscriber started", channel)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[WS] %s subscriber stopping", channel)
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				relayEvent(out, msg.Payload)
			}
		}
	}()
}

func relayEvent(out Sender, payload string) {
	ev, err := events.Decode(payload)
	if err != nil {
		log.Printf("[WS] invalid event payload: %v", err)
		return
	}

	switch ev.Type {
	case events.PlayerJoined, events.PlayerLeft, events.PlayerScored, events.GameRestarted:
		// connection ids stay server-side
		ev.ConnectionID = ""
		out.Broadcast(Outbound{Type: MsgMatchEvent, Data: ev})
	case events.PlayerRejected:
		// spectators are not announced
	default:
		log.Printf("[WS] unknown event type: %s", ev.Type)
	}
}
