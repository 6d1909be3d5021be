package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gobidev/ems-api/internal/api/shared"
	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/store"
)

// withPathID attaches a chi route parameter the way the router would.
func withPathID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// captureLogs swaps the default logger for one writing to the returned buffer
// for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("delete succeeds and records the authenticated actor", func(t *testing.T) {
		logs := captureLogs(t)

		svc := new(mockEmployeeService)
		svc.On("Delete", mock.Anything, 3).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/3", nil)
		req = withPathID(req, "3")
		req = req.WithContext(context.WithValue(
			req.Context(), shared.EmployeeEmailContextKey, "admin@example.com"))
		rec := httptest.NewRecorder()

		NewEmployeeHandler(svc).Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, logs.String(), "actor=admin@example.com")
		svc.AssertExpectations(t)
	})

	t.Run("missing employee returns 404", func(t *testing.T) {
		svc := new(mockEmployeeService)
		svc.On("Delete", mock.Anything, 3).Return(store.ErrEmployeeNotFound)

		req := withPathID(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/3", nil), "3")
		rec := httptest.NewRecorder()

		NewEmployeeHandler(svc).Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		svc := new(mockEmployeeService)

		req := withPathID(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/abc", nil), "abc")
		rec := httptest.NewRecorder()

		NewEmployeeHandler(svc).Delete(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("update succeeds and records the authenticated actor", func(t *testing.T) {
		logs := captureLogs(t)

		svc := new(mockEmployeeService)
		svc.On("Update", mock.Anything, mock.AnythingOfType("*domain.Employee")).
			Return(&domain.Employee{ID: 3, Email: "jane@example.com", Name: "Jane"}, nil)

		payload, err := json.Marshal(EmployeeRequest{
			ID:    3,
			Name:  "Jane",
			Email: "jane@example.com",
			Type:  "EMPLOYEE",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(
			http.MethodPut, "/api/v1/employees", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(context.WithValue(
			req.Context(), shared.EmployeeEmailContextKey, "admin@example.com"))
		rec := httptest.NewRecorder()

		NewEmployeeHandler(svc).Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, logs.String(), "actor=admin@example.com")
		svc.AssertExpectations(t)
	})
}
