package nats

import (
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) string {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)
	return srv.ClientURL()
}

func TestClient_PublishSubscribe(t *testing.T) {
	client, err := NewClient(runServer(t))
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	received := make(chan *nats.Msg, 1)
	_, err = client.QueueSubscribe("loads.*", "q", func(msg *nats.Msg) { received <- msg })
	require.NoError(t, err)

	require.NoError(t, client.Publish("loads.posted", []byte(`{"type":"posted"}`)))

	select {
	case msg := <-received:
		assert.Equal(t, "loads.posted", msg.Subject)
		assert.JSONEq(t, `{"type":"posted"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("did not receive message")
	}
}

func TestNewClient_Unreachable(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", nats.Timeout(200*time.Millisecond))
	assert.Error(t, err)
	assert.Nil(t, client)
}
