package get_earnings_ranking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	msgInvalidPage  = "некорректные параметры пагинации"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStart = "startDate обязателен"
	msgInvalidRange = "startDate позже endDate"
)

type Handler struct {
	service EarningsService
	logger  Logger
}

func NewHandler(service EarningsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/earnings/ranking
// Query params: startDate (обязателен), endDate, page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	begin, hasBegin, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if !hasBegin {
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	var end *time.Time
	if t, ok, err := handlers.QueryDate(r, "endDate"); err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	} else if ok {
		end = &t
	}

	result, err := h.service.RankByEarnings(r.Context(), begin, end, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /earnings/ranking - Failed: error=%v", err)
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("GET /earnings/ranking - meters on page: %d", len(result.Ranking))
	handlers.RespondJSON(w, http.StatusOK, result)
}
