package nats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/loadboard/internal/pkg/models"
	natspkg "github.com/piresc/loadboard/internal/pkg/nats"
	"github.com/piresc/loadboard/services/loads/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventPayload(t *testing.T, eventType models.LoadEventType, loadID uuid.UUID) []byte {
	t.Helper()
	data, err := json.Marshal(models.LoadEvent{Type: eventType, LoadID: loadID, Status: models.LoadStatusAvailable})
	require.NoError(t, err)
	return data
}

func TestHandleLoadEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC, nil)
	loadID := uuid.New()

	mockUC.EXPECT().SyncAvailability(gomock.Any(), loadID).Return(nil)
	assert.NoError(t, handler.HandleLoadEvent(eventPayload(t, models.LoadEventPosted, loadID)))

	mockUC.EXPECT().SyncAvailability(gomock.Any(), loadID).Return(errors.New("redis down"))
	assert.Error(t, handler.HandleLoadEvent(eventPayload(t, models.LoadEventReleased, loadID)))

	assert.Error(t, handler.HandleLoadEvent([]byte("not json")))
}

func TestInitNATSConsumers_SyncsOnEvent(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC, client)
	loadID := uuid.New()

	synced := make(chan uuid.UUID, 1)
	mockUC.EXPECT().SyncAvailability(gomock.Any(), loadID).
		DoAndReturn(func(_ interface{}, id uuid.UUID) error {
			synced <- id
			return nil
		})

	require.NoError(t, handler.InitNATSConsumers())
	defer handler.Close()
	require.NoError(t, client.GetConn().Flush())

	require.NoError(t, client.Publish("loads.accepted", eventPayload(t, models.LoadEventAccepted, loadID)))

	select {
	case id := <-synced:
		assert.Equal(t, loadID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("load event was not consumed")
	}
}
