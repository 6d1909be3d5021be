package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gobidev/ems-api/internal/api/shared"
	"github.com/gobidev/ems-api/internal/service/auth"
)

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	newRequest := func(header string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/1", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return req
	}

	t.Run("valid token passes and exposes the email", func(t *testing.T) {
		jwtService := new(mockJWTService)
		jwtService.On("ValidateToken", mock.Anything, "good-token").
			Return(&auth.Claims{Email: "jane@example.com"}, nil)

		var seenEmail string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenEmail, _ = shared.GetEmployeeEmail(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		NewAuthMiddleware(jwtService).Authenticate(next).
			ServeHTTP(rec, newRequest("Bearer good-token"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jane@example.com", seenEmail)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuthMiddleware(new(mockJWTService)).
			Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})).
			ServeHTTP(rec, newRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuthMiddleware(new(mockJWTService)).
			Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})).
			ServeHTTP(rec, newRequest("Token abc"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		jwtService := new(mockJWTService)
		jwtService.On("ValidateToken", mock.Anything, "stale").
			Return(nil, auth.ErrExpiredToken)

		rec := httptest.NewRecorder()
		NewAuthMiddleware(jwtService).
			Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})).
			ServeHTTP(rec, newRequest("Bearer stale"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		jwtService := new(mockJWTService)
		jwtService.On("ValidateToken", mock.Anything, "garbage").
			Return(nil, auth.ErrInvalidToken)

		rec := httptest.NewRecorder()
		NewAuthMiddleware(jwtService).
			Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})).
			ServeHTTP(rec, newRequest("Bearer garbage"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
