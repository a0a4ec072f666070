package create_ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ticketModels "github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
	createTicket "github.com/m04kA/SMC-ParkingService/internal/usecase/create_ticket"
)

type fakeUseCase struct {
	resp *createTicket.Response
	err  error
	got  *createTicket.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createTicket.Request) (*createTicket.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createTicket.Response{
		ID:            10,
		StartTime:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		PaymentStatus: domain.StatusPending,
		Meter:         domain.MeterSnapshot{ID: 1},
		Vehicle:       domain.VehicleSnapshot{ID: 2, LicensePlate: "ABC1234"},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tickets",
		strings.NewReader(`{"vehicleId":2,"parkingMeterId":1}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), uc.got.VehicleID)
	assert.Equal(t, int64(1), uc.got.MeterID)

	var body ticketModels.TicketResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "PENDING", body.PaymentStatus)
	assert.Equal(t, "ABC1234", body.Vehicle.LicensePlate)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{createTicket.ErrInvalidInput, http.StatusBadRequest},
		{createTicket.ErrVehicleNotFound, http.StatusNotFound},
		{createTicket.ErrMeterNotFound, http.StatusNotFound},
		{createTicket.ErrMeterClosed, http.StatusUnprocessableEntity},
		{createTicket.ErrVehicleAlreadyParked, http.StatusConflict},
		{createTicket.ErrMeterFull, http.StatusConflict},
		{createTicket.ErrConcurrentCreation, http.StatusConflict},
		{createTicket.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tickets",
			strings.NewReader(`{"vehicleId":2,"parkingMeterId":1}`)))

		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(`{"vehicleId":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
