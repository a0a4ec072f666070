package get_daily_earnings_ranking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
)

type fakeService struct {
	err   error
	begin time.Time
	end   *time.Time
}

func (f *fakeService) RankByEarningsPerDay(_ context.Context, begin time.Time, end *time.Time, page domain.Page) (*models.DailyRankingListResponse, error) {
	f.begin, f.end = begin, end
	if f.err != nil {
		return nil, f.err
	}
	return &models.DailyRankingListResponse{Days: []models.DailyRankingResponse{}, Page: page.Number, Size: page.Size}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{"ok", "?startDate=2024-05-01&endDate=2024-05-03", nil, http.StatusOK},
		{"missing start", "", nil, http.StatusBadRequest},
		{"bad date", "?startDate=01/05/2024", nil, http.StatusBadRequest},
		{"reversed range", "?startDate=2024-05-03&endDate=2024-05-01", domain.ErrInvalidRange, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/earnings/ranking/daily"+tt.query, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_PassesDates(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/earnings/ranking/daily?startDate=2024-05-01&endDate=2024-05-03", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-05-01", svc.begin.Format(domain.DateFormat))
	require.NotNil(t, svc.end)
	assert.Equal(t, "2024-05-03", svc.end.Format(domain.DateFormat))
}
