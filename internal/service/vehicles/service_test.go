package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ownerRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/owner"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

type fakeVehicles struct {
	byPlate map[string]*domain.Vehicle
}

func (f *fakeVehicles) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if _, ok := f.byPlate[v.LicensePlate]; ok {
		return nil, vehicleRepo.ErrDuplicateLicensePlate
	}
	v.ID = int64(len(f.byPlate) + 1)
	f.byPlate[v.LicensePlate] = v
	return v, nil
}

func (f *fakeVehicles) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	for _, v := range f.byPlate {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, vehicleRepo.ErrVehicleNotFound
}

type fakeOwners map[int64]*domain.Owner

func (f fakeOwners) GetByID(_ context.Context, id int64) (*domain.Owner, error) {
	o, ok := f[id]
	if !ok {
		return nil, ownerRepo.ErrOwnerNotFound
	}
	return o, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(
		&fakeVehicles{byPlate: map[string]*domain.Vehicle{}},
		fakeOwners{1: {ID: 1, Name: "Maria"}},
		nopLogger{},
	)
}

func TestCreate_Success(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		LicensePlate: " abc1d23 ", Model: "Onix", Color: "Prata", OwnerID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", resp.LicensePlate)
	assert.Equal(t, int64(1), resp.OwnerID)

	got, err := svc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Onix", got.Model)
}

func TestCreate_OwnerMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{LicensePlate: "ABC1D23", OwnerID: 9})

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_DuplicatePlate(t *testing.T) {
	svc := newTestService()
	req := &models.CreateVehicleRequest{LicensePlate: "ABC1D23", OwnerID: 1}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.CreateVehicleRequest{LicensePlate: "abc1d23", OwnerID: 1})
	assert.ErrorIs(t, err, ErrDuplicateLicensePlate)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateVehicleRequest{OwnerID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateVehicleRequest{LicensePlate: "ABC1D23"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	_, err := newTestService().GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
