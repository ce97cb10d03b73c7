package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/stretchr/testify/assert"
)

type fakeDB struct {
	pingErr error
}

func (f *fakeDB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeDB) Ping(context.Context) error {
	return f.pingErr
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "database reachable",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name:     "database down",
			pingErr:  errors.New("dial tcp: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"error":{"message":"Database not available"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine()
			r.GET("/health", NewHealthHandler(&fakeDB{pingErr: tt.pingErr}, logger.NewNoopLogger()).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
