package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PathInt64 читает положительный числовой параметр пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid path parameter %s=%q", name, raw)
	}
	return id, nil
}

// QueryPage читает page и size, отсутствующие значения заменяются значениями по умолчанию
func QueryPage(r *http.Request) (domain.Page, error) {
	q := r.URL.Query()

	number, err := queryInt(q.Get("page"), 0)
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid page: %w", err)
	}
	size, err := queryInt(q.Get("size"), domain.DefaultPageSize)
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid size: %w", err)
	}

	return domain.NewPage(number, size), nil
}

// QueryDate читает дату YYYY-MM-DD. ok == false, если параметр не передан.
func QueryDate(r *http.Request, name string) (t time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid %s=%q, expected YYYY-MM-DD", name, raw)
	}
	return t, true, nil
}

// QueryDateTime читает момент времени в RFC3339 или дату YYYY-MM-DD (полночь в loc)
func QueryDateTime(r *http.Request, name string, loc *time.Location) (t time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, true, nil
	}
	if t, err = time.ParseInLocation(domain.DateFormat, raw, loc); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid %s=%q, expected RFC3339 or YYYY-MM-DD", name, raw)
}

// QueryString возвращает nil для отсутствующего или пустого параметра
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
