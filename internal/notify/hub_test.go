package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func startHub(t *testing.T, buffer int) (*Hub, context.CancelFunc) {
	t.Helper()

	hub := NewHub(buffer, testutil.MakeNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return hub, cancel
}

func receive(t *testing.T, ch <-chan model.Message) (model.Message, bool) {
	t.Helper()

	select {
	case msg, ok := <-ch:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return model.Message{}, false
	}
}

func TestHub_DeliversToReceiver(t *testing.T) {
	hub, _ := startHub(t, 4)

	alice, unsubAlice := hub.Subscribe("alice")
	defer unsubAlice()
	bobby, unsubBobby := hub.Subscribe("bobby")
	defer unsubBobby()

	hub.NotifyMessage(model.Message{MsgID: "M1", Sender: "bobby", Receiver: "alice"})

	msg, ok := receive(t, alice)
	require.True(t, ok)
	assert.Equal(t, "M1", msg.MsgID)

	select {
	case msg := <-bobby:
		t.Fatalf("sender got its own message %s", msg.MsgID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub, _ := startHub(t, 4)

	ch, unsub := hub.Subscribe("alice")
	unsub()
	unsub()

	_, ok := receive(t, ch)
	assert.False(t, ok)
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	hub, _ := startHub(t, 1)

	ch, unsub := hub.Subscribe("alice")
	defer unsub()

	hub.NotifyMessage(model.Message{MsgID: "M1", Receiver: "alice"})
	hub.NotifyMessage(model.Message{MsgID: "M2", Receiver: "alice"})
	// The loop finishes a fan-out before it accepts the next message.
	hub.NotifyMessage(model.Message{MsgID: "M3", Receiver: "nobody"})

	msg, ok := receive(t, ch)
	require.True(t, ok)
	assert.Equal(t, "M1", msg.MsgID)

	_, ok = receive(t, ch)
	assert.False(t, ok)
}

func TestHub_StopClosesSubscribers(t *testing.T) {
	hub, cancel := startHub(t, 4)

	ch, unsub := hub.Subscribe("alice")
	cancel()

	_, ok := receive(t, ch)
	assert.False(t, ok)

	unsub()
	hub.NotifyMessage(model.Message{Receiver: "alice"})

	late, _ := hub.Subscribe("bobby")
	_, ok = receive(t, late)
	assert.False(t, ok)
}
