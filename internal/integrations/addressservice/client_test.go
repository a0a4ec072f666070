package addressservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nopLogger{})
}

func TestGetAddress_OK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01001000/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","complemento":"lado ímpar","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
	})

	address, err := client.GetAddress(context.Background(), "01001-000")

	require.NoError(t, err)
	assert.Equal(t, "01001-000", address.ZipCode)
	assert.Equal(t, "Praça da Sé", address.Street)
	assert.Equal(t, "Sé", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestGetAddress_Erro(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"erro": true}`))
	})

	_, err := client.GetAddress(context.Background(), "99999999")

	assert.ErrorIs(t, err, ErrZipCodeNotFound)
}

func TestGetAddress_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetAddress(context.Background(), "99999999")

	assert.ErrorIs(t, err, ErrZipCodeNotFound)
}

func TestGetAddress_BadGateway(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetAddress(context.Background(), "01001000")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetAddress_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetAddress(context.Background(), "01001000")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetAddress_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, 200*time.Millisecond, nopLogger{})

	_, err := client.GetAddress(context.Background(), "01001000")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetAddress_InvalidZip(t *testing.T) {
	client := NewClient("http://localhost", time.Second, nopLogger{})

	_, err := client.GetAddress(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrInvalidZipCode)
}

func TestNormalizeZipCode(t *testing.T) {
	assert.Equal(t, "01001000", NormalizeZipCode("01001-000"))
	assert.Equal(t, "", NormalizeZipCode(" - "))
}
