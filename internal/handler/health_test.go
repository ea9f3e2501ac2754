package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePool struct {
	err error
}

func (p fakePool) Ping(ctx context.Context) error { return p.err }

func (p fakePool) Close() {}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pool           fakePool
		expectedStatus int
		expectedBody   string
	}{
		{"ready", fakePool{}, http.StatusOK, `{"status":"ok"}`},
		{"store down", fakePool{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, `{"status":"unavailable","message":"database connection failed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleReadyz(tt.pool)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion()(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var info VersionInfo
	decodeBody(t, rec, &info)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
