package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisNotifier_PublishDeliversToSubscriber(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	boardID := uuid.New()
	topic := BoardTopic(boardID)

	sub := client.Subscribe(ctx, topic)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n := NewRedisNotifier(client, zap.NewNop())
	actorID := uuid.New()
	n.Publish(ctx, topic, NewEvent(EventCardMoved, actorID, map[string]string{"card_id": uuid.NewString()}))

	select {
	case msg := <-sub.Channel():
		var event Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, EventCardMoved, event.Type)
		assert.Equal(t, actorID, event.ActorID)
		assert.NotEmpty(t, event.OccurredAt)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestRedisNotifier_PublishSurvivesBrokenConnection(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	n := NewRedisNotifier(client, zap.NewNop())
	// Must not panic or propagate the failure
	n.Publish(context.Background(), BoardTopic(uuid.New()), NewEvent(EventListCreated, uuid.New(), nil))
}

func TestTopicNames(t *testing.T) {
	boardID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	cardID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t, "board/11111111-1111-1111-1111-111111111111", BoardTopic(boardID))
	assert.Equal(t,
		"board/11111111-1111-1111-1111-111111111111/card/22222222-2222-2222-2222-222222222222",
		CardTopic(boardID, cardID))
	assert.Equal(t, "workspace/11111111-1111-1111-1111-111111111111", WorkspaceTopic(boardID))
	assert.Equal(t, "user/22222222-2222-2222-2222-222222222222/queue", UserQueueTopic(cardID))
}
