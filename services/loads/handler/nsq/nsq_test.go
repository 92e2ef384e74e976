package nsq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/loads/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLoadEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC, "localhost:4150")
	loadID := uuid.New()

	body, err := json.Marshal(models.LoadEvent{Type: models.LoadEventDeleted, LoadID: loadID})
	require.NoError(t, err)

	mockUC.EXPECT().SyncAvailability(gomock.Any(), loadID).Return(nil)
	assert.NoError(t, handler.HandleLoadEvent(body))

	mockUC.EXPECT().SyncAvailability(gomock.Any(), loadID).Return(errors.New("redis down"))
	assert.Error(t, handler.HandleLoadEvent(body), "sync failures are requeued")
}

func TestHandleLoadEvent_DropsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLoadHandler(mocks.NewMockLoadUC(ctrl), "localhost:4150")

	assert.NoError(t, handler.HandleLoadEvent([]byte("{")))
}

func TestStop_WithoutConsumer(t *testing.T) {
	handler := NewLoadHandler(nil, "localhost:4150")
	assert.NotPanics(t, handler.Stop)
}
