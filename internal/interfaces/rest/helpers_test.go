package rest_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1", "X-Real-IP": "10.0.0.2"}, "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.1"}, "198.51.100.1"},
		{"empty forwarded", map[string]string{"X-Forwarded-For": " ", "X-Real-IP": "198.51.100.1"}, "198.51.100.1"},
		{"nothing", nil, "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, rest.ClientIP(req))
		})
	}
}

func TestWriteError_UnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	rest.WriteError(rec, errors.New("pq: password authentication failed"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, application.ErrCodeInternal, body.Error)
	assert.Equal(t, application.MessageInternal, body.Message)
	assert.Nil(t, body.Debug)
}

func TestWriteErrorWithDebug_MalformedPayloadKeptAsText(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &application.ProviderError{
		Kind:       application.ProviderMalformed,
		Operation:  "create checkout",
		StatusCode: http.StatusOK,
		Message:    application.MessageMalformed,
		Raw:        []byte("<html>oops</html>"),
	}
	rest.WriteErrorWithDebug(rec, err, slog.New(slog.NewTextHandler(io.Discard, nil)), "sandbox")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"upstreamResponse":"<html>oops</html>"`), rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name  string `json:"name" validate:"required"`
		Count int    `json:"count" validate:"omitempty,min=1,max=12"`
	}
	v := rest.NewValidator()

	decode := func(raw string) (body, error) {
		var b body
		err := rest.DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw)), v, &b)
		return b, err
	}

	b, err := decode(`{"name":"x","count":3}`)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Count)

	_, err = decode(``)
	assert.Equal(t, application.ErrCodeValidation, application.ToErrorCode(err))

	_, err = decode(`{"count":3}`)
	assert.Equal(t, application.ErrCodeValidation, application.ToErrorCode(err))
	assert.Contains(t, err.Error(), "name")

	_, err = decode(`{"name":"x","count":20}`)
	assert.Contains(t, err.Error(), "count")
}
