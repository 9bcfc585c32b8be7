package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel carries key-change events between processes.
const Channel = "wantosing:storage"

type envelope struct {
	Origin string          `json:"origin"`
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// Bridge relays store events over Redis pub/sub so observers in other
// processes see writes without polling, the way a second browser tab sees
// native storage events. Delivery is best-effort: when Redis is down the
// local observers still work and remote ones catch up on their next read.
type Bridge struct {
	store  *Store
	client *redis.Client
	origin string
}

func NewBridge(s *Store, client *redis.Client) *Bridge {
	b := &Bridge{
		store:  s,
		client: client,
		origin: uuid.New().String(),
	}
	s.Subscribe("", b.publish)
	return b
}

func (b *Bridge) publish(ev Event) {
	if ev.Remote() {
		// The event came in over the channel; don't echo it back out.
		return
	}

	env := envelope{Origin: b.origin, Key: ev.Key, Value: ev.Value}
	payload, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := b.client.Publish(context.Background(), Channel, payload).Err(); err != nil {
		log.Printf("WARN: storage bridge publish failed: %v", err)
	}
}

// Run blocks consuming remote events until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("WARN: storage bridge dropped malformed event: %v", err)
				continue
			}
			if env.Origin == b.origin {
				continue
			}
			b.store.Relay(Event{Key: env.Key, Value: env.Value})
		}
	}
}
