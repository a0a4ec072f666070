package parkingmeters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type fakeRepo struct {
	meters     map[int64]*domain.ParkingMeter
	nextID     int64
	lastPage   *domain.Page
	updateErr  error
	existsErr  error
	createdCnt int
}

func newFakeRepo(meters ...*domain.ParkingMeter) *fakeRepo {
	r := &fakeRepo{meters: map[int64]*domain.ParkingMeter{}, nextID: 100}
	for _, m := range meters {
		r.meters[m.ID] = m
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error) {
	r.createdCnt++
	m.ID = r.nextID
	m.Version = 1
	r.nextID++
	cp := *m
	r.meters[m.ID] = &cp
	return m, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.ParkingMeter, error) {
	m, ok := r.meters[id]
	if !ok {
		return nil, meterRepo.ErrMeterNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeRepo) ExistsByZipCode(_ context.Context, zipCode string, excludeID *int64) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for id, m := range r.meters {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if m.Address.ZipCode == zipCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) Update(_ context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	current, ok := r.meters[m.ID]
	if !ok {
		return nil, meterRepo.ErrMeterNotFound
	}
	if current.Version != m.Version {
		return nil, meterRepo.ErrVersionConflict
	}
	m.Version++
	cp := *m
	r.meters[m.ID] = &cp
	return m, nil
}

func (r *fakeRepo) GetByLocality(_ context.Context, filter domain.LocalityFilter, page *domain.Page) ([]*domain.ParkingMeter, error) {
	r.lastPage = page
	out := make([]*domain.ParkingMeter, 0)
	for _, m := range r.meters {
		if filter.City != nil && m.Address.City != *filter.City {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeAddressClient struct {
	addresses map[string]*addressservice.Address
	err       error
	calls     int
}

func (c *fakeAddressClient) GetAddress(_ context.Context, zipCode string) (*addressservice.Address, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	a, ok := c.addresses[zipCode]
	if !ok {
		return nil, addressservice.ErrZipCodeNotFound
	}
	return a, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newAddressClient() *fakeAddressClient {
	return &fakeAddressClient{addresses: map[string]*addressservice.Address{
		"01001000": {ZipCode: "01001-000", Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo", State: "SP"},
		"01310100": {ZipCode: "01310-100", Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"},
	}}
}

func validCreateRequest() *models.CreateMeterRequest {
	return &models.CreateMeterRequest{
		StartTime:          "08:00",
		EndTime:            "18:00",
		FirstHourRate:      5,
		AdditionalHourRate: 10,
		TotalSpaces:        20,
		ZipCode:            "01001-000",
		Number:             "100",
	}
}

func existingMeter() *domain.ParkingMeter {
	return &domain.ParkingMeter{
		ID:             1,
		OperatingHours: domain.OperatingHours{Start: types.TimeString("08:00"), End: types.TimeString("18:00")},
		Rate:           domain.Rate{FirstHour: 5, AdditionalHour: 10},
		TotalSpaces:    20,
		Address: domain.Address{
			ZipCode: "01001000", Street: "Praça da Sé", Number: "100",
			Neighborhood: "Sé", City: "São Paulo", State: "SP",
		},
		Version: 3,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newAddressClient(), nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "01001000", resp.Address.ZipCode)
	assert.Equal(t, "Praça da Sé", resp.Address.Street)
	assert.Equal(t, "100", resp.Address.Number)
	assert.Equal(t, "São Paulo", resp.Address.City)
	assert.Equal(t, "08:00", resp.StartTime)
	assert.Equal(t, int64(1), resp.Version)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.CreateMeterRequest)
	}{
		{"bad hours format", func(r *models.CreateMeterRequest) { r.StartTime = "8h" }},
		{"start after end", func(r *models.CreateMeterRequest) { r.StartTime, r.EndTime = "19:00", "18:00" }},
		{"zero first hour rate", func(r *models.CreateMeterRequest) { r.FirstHourRate = 0 }},
		{"negative additional rate", func(r *models.CreateMeterRequest) { r.AdditionalHourRate = -1 }},
		{"no spaces", func(r *models.CreateMeterRequest) { r.TotalSpaces = 0 }},
		{"empty zip", func(r *models.CreateMeterRequest) { r.ZipCode = "--" }},
		{"empty number", func(r *models.CreateMeterRequest) { r.Number = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, newAddressClient(), nopLogger{})
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, repo.createdCnt)
		})
	}
}

func TestCreate_DuplicateZipCode(t *testing.T) {
	client := newAddressClient()
	svc := NewService(newFakeRepo(existingMeter()), client, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrDuplicateZipCode)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, client.calls)
}

func TestCreate_ZipCodeUnknown(t *testing.T) {
	svc := NewService(newFakeRepo(), newAddressClient(), nopLogger{})
	req := validCreateRequest()
	req.ZipCode = "99999999"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrZipCodeNotFound)
}

func TestCreate_AddressServiceDown(t *testing.T) {
	client := newAddressClient()
	client.err = addressservice.ErrInternal
	svc := NewService(newFakeRepo(), client, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrAddressLookupFailed)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestUpdate_SameZipKeepsResolvedAddress(t *testing.T) {
	client := newAddressClient()
	repo := newFakeRepo(existingMeter())
	svc := NewService(repo, client, nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 3}
	req.TotalSpaces = 30
	req.Number = "200"

	resp, err := svc.Update(context.Background(), 1, req)

	require.NoError(t, err)
	assert.Equal(t, 30, resp.TotalSpaces)
	assert.Equal(t, "200", resp.Address.Number)
	assert.Equal(t, "Praça da Sé", resp.Address.Street)
	assert.Equal(t, int64(4), resp.Version)
	assert.Zero(t, client.calls)
}

func TestUpdate_NewZipResolvesAddress(t *testing.T) {
	svc := NewService(newFakeRepo(existingMeter()), newAddressClient(), nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 3}
	req.ZipCode = "01310100"

	resp, err := svc.Update(context.Background(), 1, req)

	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", resp.Address.Street)
	assert.Equal(t, "Bela Vista", resp.Address.Neighborhood)
}

func TestUpdate_StaleVersion(t *testing.T) {
	svc := NewService(newFakeRepo(existingMeter()), newAddressClient(), nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 2}

	_, err := svc.Update(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), newAddressClient(), nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 1}

	_, err := svc.Update(context.Background(), 7, req)

	assert.ErrorIs(t, err, ErrMeterNotFound)
}

func TestUpdate_ZipTakenByAnotherMeter(t *testing.T) {
	other := existingMeter()
	other.ID = 2
	other.Address.ZipCode = "01310100"
	svc := NewService(newFakeRepo(existingMeter(), other), newAddressClient(), nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 3}
	req.ZipCode = "01310100"

	_, err := svc.Update(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrDuplicateZipCode)
}

func TestUpdate_RepositoryError(t *testing.T) {
	repo := newFakeRepo(existingMeter())
	repo.updateErr = errors.New("db down")
	svc := NewService(repo, newAddressClient(), nopLogger{})

	req := &models.UpdateMeterRequest{CreateMeterRequest: *validCreateRequest(), Version: 3}

	_, err := svc.Update(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(existingMeter()), newAddressClient(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Version)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByLocality(t *testing.T) {
	repo := newFakeRepo(existingMeter())
	svc := NewService(repo, newAddressClient(), nopLogger{})

	_, err := svc.ListByLocality(context.Background(), models.LocalityRequest{}, domain.NewPage(0, 10))
	assert.ErrorIs(t, err, ErrMissingFilter)

	resp, err := svc.ListByLocality(context.Background(),
		models.LocalityRequest{City: ptr.Ptr("São Paulo")}, domain.NewPage(0, 10))

	require.NoError(t, err)
	require.Len(t, resp.Meters, 1)
	require.NotNil(t, repo.lastPage)
	assert.Equal(t, 10, repo.lastPage.Size)
}
