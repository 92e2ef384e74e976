package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/fleet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, rec
}

func TestCreateTruck_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	handler := NewFleetHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	mockUC.EXPECT().
		CreateTruck(gomock.Any(), actor, &models.CreateTruckRequest{
			PlateNumber: "ABC 1234",
			Brand:       "Volvo",
			ModelYear:   2021,
			TruckType:   models.TruckTypeTrella,
			Capacity:    "25",
		}).
		Return(&models.Truck{ID: uuid.New(), DriverID: actor.ID}, nil)

	body := `{"plate_number":"ABC 1234","brand":"Volvo","model_year":2021,"truck_type":"trella","capacity":25}`
	c, rec := newContext(http.MethodPost, body, &actor)

	require.NoError(t, handler.CreateTruck(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTruck_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	handler := NewFleetHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	mockUC.EXPECT().CreateTruck(gomock.Any(), actor, gomock.Any()).
		Return(nil, models.NewValidationError("model_year", "must be between 1950 and 2026"))

	c, rec := newContext(http.MethodPost, `{"model_year":1900}`, &actor)

	require.NoError(t, handler.CreateTruck(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "model_year")
}

func TestDeleteTruck_Handler(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	tests := []struct {
		name   string
		param  string
		setup  func(m *mocks.MockFleetUC, id uuid.UUID)
		status int
	}{
		{
			name:  "deleted",
			param: uuid.NewString(),
			setup: func(m *mocks.MockFleetUC, id uuid.UUID) {
				m.EXPECT().DeleteTruck(gomock.Any(), actor, id).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:  "not found",
			param: uuid.NewString(),
			setup: func(m *mocks.MockFleetUC, id uuid.UUID) {
				m.EXPECT().DeleteTruck(gomock.Any(), actor, id).Return(models.ErrTruckNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:  "repository failure",
			param: uuid.NewString(),
			setup: func(m *mocks.MockFleetUC, id uuid.UUID) {
				m.EXPECT().DeleteTruck(gomock.Any(), actor, id).Return(errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "bad id",
			param:  "truck-1",
			setup:  func(m *mocks.MockFleetUC, id uuid.UUID) {},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockFleetUC(ctrl)
			id, _ := uuid.Parse(tt.param)
			tt.setup(mockUC, id)

			c, rec := newContext(http.MethodDelete, "", &actor)
			c.SetParamNames("truckID")
			c.SetParamValues(tt.param)

			require.NoError(t, NewFleetHandler(mockUC).DeleteTruck(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSubDriverHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	handler := NewFleetHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	mockUC.EXPECT().
		CreateSubDriver(gomock.Any(), actor, &models.CreateSubDriverRequest{FullName: "Saeed", Phone: "0551112222"}).
		Return(&models.SubDriver{ID: uuid.New(), DriverID: actor.ID, FullName: "Saeed"}, nil)
	c, rec := newContext(http.MethodPost, `{"full_name":"Saeed","phone":"0551112222"}`, &actor)
	require.NoError(t, handler.CreateSubDriver(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	mockUC.EXPECT().ListSubDrivers(gomock.Any(), actor).Return([]*models.SubDriver{}, nil)
	c, rec = newContext(http.MethodGet, "", &actor)
	require.NoError(t, handler.ListSubDrivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "", nil)
	require.NoError(t, handler.ListTrucks(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
