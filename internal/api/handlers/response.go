package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	msgInternalError    = "внутренняя ошибка сервера"
	msgNotFound         = "ресурс не найден"
	msgConflict         = "конфликт с текущим состоянием ресурса"
	msgInvalidInput     = "некорректные входные данные"
	msgInvalidState     = "операция недопустима в текущем состоянии"
	msgVersionConflict  = "ресурс был изменён, обновите данные и повторите запрос"
	msgUpstreamFailure  = "внешний сервис недоступен"
	maxRequestBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON читает тело запроса в v, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ со статусом code
func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку со статусом code
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, ErrorResponse{Code: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFromError определяет HTTP статус по категории доменной ошибки
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondServiceError отвечает общим сообщением для категории ошибки.
// Используется, когда у обработчика нет более точного сообщения.
func RespondServiceError(w http.ResponseWriter, err error) {
	code := StatusFromError(err)
	switch code {
	case http.StatusNotFound:
		RespondError(w, code, msgNotFound)
	case http.StatusConflict:
		if errors.Is(err, domain.ErrVersionConflict) {
			RespondError(w, code, msgVersionConflict)
			return
		}
		RespondError(w, code, msgConflict)
	case http.StatusBadRequest:
		RespondError(w, code, msgInvalidInput)
	case http.StatusUnprocessableEntity:
		RespondError(w, code, msgInvalidState)
	case http.StatusBadGateway:
		RespondError(w, code, msgUpstreamFailure)
	default:
		RespondInternalError(w)
	}
}
