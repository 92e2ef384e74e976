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
	"github.com/piresc/loadboard/services/loads/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string, actor *models.Actor, loadID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if loadID != "" {
		c.SetParamNames("loadID")
		c.SetParamValues(loadID)
	}
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestPostLoad_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleShipper}

	body := `{
		"origin": "Riyadh",
		"destination": "Jeddah",
		"weight": 10,
		"price": "1000",
		"pickup_date": "2099-01-01",
		"receiver_name": "Khalid",
		"receiver_phone": "0555555555"
	}`

	mockUC.EXPECT().
		PostLoad(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, req *models.PostLoadRequest) (*models.Load, error) {
			assert.Equal(t, models.NumericInput("10"), req.Weight)
			assert.Equal(t, models.NumericInput("1000"), req.Price)
			return &models.Load{ID: uuid.New(), OwnerID: actor.ID, Status: models.LoadStatusAvailable}, nil
		})

	c, rec := newRequest(http.MethodPost, "/api/v1/loads", body, &actor, "")

	require.NoError(t, handler.PostLoad(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, "Load posted successfully", response["message"])
}

func TestPostLoad_ValidationIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleShipper}

	mockUC.EXPECT().PostLoad(gomock.Any(), actor, gomock.Any()).
		Return(nil, models.NewValidationError("receiver_phone", "must be 10 digits starting with 05"))

	c, rec := newRequest(http.MethodPost, "/api/v1/loads", `{"receiver_phone":"1234567890"}`, &actor, "")

	require.NoError(t, handler.PostLoad(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "receiver_phone")
}

func TestAcceptLoad_Handler(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	loadID := uuid.New()
	body := `{"driver_name":"Ahmed","driver_phone":"0501234567"}`

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"accepted", nil, http.StatusOK},
		{"already taken", models.ErrLoadAlreadyTaken, http.StatusConflict},
		{"not found", models.ErrLoadNotFound, http.StatusNotFound},
		{"persistence failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLoadUC(ctrl)
			handler := NewLoadHandler(mockUC)

			var load *models.Load
			if tt.err == nil {
				load = &models.Load{ID: loadID, DriverID: &actor.ID, Status: models.LoadStatusInProgress}
			}
			mockUC.EXPECT().
				AcceptLoad(gomock.Any(), actor, loadID, &models.AcceptLoadRequest{DriverName: "Ahmed", DriverPhone: "0501234567"}).
				Return(load, tt.err)

			c, rec := newRequest(http.MethodPost, "/api/v1/loads/"+loadID.String()+"/accept", body, &actor, loadID.String())

			require.NoError(t, handler.AcceptLoad(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAcceptLoad_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLoadHandler(mocks.NewMockLoadUC(ctrl))
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}

	c, rec := newRequest(http.MethodPost, "/api/v1/loads/nope/accept", `{}`, &actor, "nope")
	require.NoError(t, handler.AcceptLoad(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newRequest(http.MethodPost, "/api/v1/loads/x/accept", `{}`, nil, uuid.NewString())
	require.NoError(t, handler.AcceptLoad(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompleteLoad_InvalidStateIs409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	loadID := uuid.New()

	mockUC.EXPECT().CompleteLoad(gomock.Any(), actor, loadID, gomock.Any()).Return(nil, models.ErrInvalidStateTransition)

	c, rec := newRequest(http.MethodPost, "/", "", &actor, loadID.String())

	require.NoError(t, handler.CompleteLoad(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteLoad_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleShipper}
	loadID := uuid.New()

	mockUC.EXPECT().DeleteLoad(gomock.Any(), actor, loadID).Return(models.ErrForbidden)

	c, rec := newRequest(http.MethodDelete, "/", "", &actor, loadID.String())

	require.NoError(t, handler.DeleteLoad(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReleaseAndCancel_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleShipper}
	loadID := uuid.New()

	mockUC.EXPECT().CancelLoadAssignment(gomock.Any(), actor, loadID).
		Return(&models.Load{ID: loadID, Status: models.LoadStatusAvailable}, nil)
	c, rec := newRequest(http.MethodPost, "/", "", &actor, loadID.String())
	require.NoError(t, handler.ReleaseLoad(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	mockUC.EXPECT().CancelLoad(gomock.Any(), actor, loadID).
		Return(&models.Load{ID: loadID, Status: models.LoadStatusCancelled}, nil)
	c, rec = newRequest(http.MethodPost, "/", "", &actor, loadID.String())
	require.NoError(t, handler.CancelLoad(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "cancelled", data["status"])
}

func TestListNearbyLoads_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	mockUC.EXPECT().
		ListNearbyLoads(gomock.Any(), models.NearbyQuery{Latitude: 24.7, Longitude: 46.7, RadiusKm: 25}).
		Return([]*models.Load{}, nil)

	c, rec := newRequest(http.MethodGet, "/api/v1/loads/nearby?lat=24.7&lng=46.7&radius_km=25", "", nil, "")
	require.NoError(t, handler.ListNearbyLoads(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/v1/loads/nearby?lat=24.7", "", nil, "")
	require.NoError(t, handler.ListNearbyLoads(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAvailableLoads_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)

	mockUC.EXPECT().
		ListAvailableLoads(gomock.Any(), models.LoadFilter{Region: "th3", BodyType: models.BodyTypeFlatbed}).
		Return([]*models.Load{{ID: uuid.New()}}, nil)

	c, rec := newRequest(http.MethodGet, "/api/v1/loads?region=th3&body_type=flatbed", "", nil, "")

	require.NoError(t, handler.ListAvailableLoads(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"], 1)
}

func TestSubmitBid_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLoadUC(ctrl)
	handler := NewLoadHandler(mockUC)
	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	loadID := uuid.New()

	mockUC.EXPECT().
		SubmitBid(gomock.Any(), actor, loadID, &models.SubmitBidRequest{Price: "1500", Message: "tomorrow"}).
		Return(&models.Bid{ID: uuid.New(), LoadID: loadID, DriverID: actor.ID, Price: 1500}, nil)

	c, rec := newRequest(http.MethodPost, "/", `{"price":1500,"message":"tomorrow"}`, &actor, loadID.String())

	require.NoError(t, handler.SubmitBid(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
