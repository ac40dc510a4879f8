package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"
	"printshop/internal/errors"
	mockService "printshop/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, header string, chain ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, *entity.Actor) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/1", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Actor
	handler := echo.HandlerFunc(func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if ok {
			seen = &actor
		}

		return c.NoContent(http.StatusOK)
	})
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	require.NoError(t, handler(c))

	return rec, seen
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		header     string
		setup      func(verifier *mockService.MockTokenVerifier)
		wantStatus int
		wantActor  *entity.Actor
	}{
		{
			name:       "missing header",
			setup:      func(*mockService.MockTokenVerifier) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setup:      func(*mockService.MockTokenVerifier) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(verifier *mockService.MockTokenVerifier) {
				verifier.EXPECT().VerifyAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token without identity",
			header: "Bearer anonymous",
			setup: func(verifier *mockService.MockTokenVerifier) {
				verifier.EXPECT().VerifyAccessToken("anonymous").Return(&service.Claims{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "customer token",
			header: "Bearer good",
			setup: func(verifier *mockService.MockTokenVerifier) {
				verifier.EXPECT().VerifyAccessToken("good").Return(&service.Claims{
					Subject: 7,
					Kind:    entity.ActorCustomer,
					Roles:   entity.Roles{entity.RoleCustomer},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  &entity.Actor{Kind: entity.ActorCustomer, ID: 7, Roles: entity.Roles{entity.RoleCustomer}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockService.NewMockTokenVerifier(t)
			tt.setup(verifier)
			m := NewAuthMiddleware(verifier, logger)

			rec, actor := runAuthenticated(t, tt.header, m.Authenticate)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantActor, actor)
		})
	}
}

func TestAuthMiddleware_RequireStaff(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		claims     *service.Claims
		wantStatus int
	}{
		{
			name:       "customer",
			claims:     &service.Claims{Subject: 7, Kind: entity.ActorCustomer, Roles: entity.Roles{entity.RoleCustomer}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "employee without staff role",
			claims:     &service.Claims{Subject: 3, Kind: entity.ActorEmployee, Roles: entity.Roles{entity.RoleCustomer}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "employee",
			claims:     &service.Claims{Subject: 3, Kind: entity.ActorEmployee, Roles: entity.Roles{entity.RoleEmployee}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin",
			claims:     &service.Claims{Subject: 1, Kind: entity.ActorEmployee, Roles: entity.Roles{entity.RoleAdmin}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockService.NewMockTokenVerifier(t)
			verifier.EXPECT().VerifyAccessToken("token").Return(tt.claims, nil)
			m := NewAuthMiddleware(verifier, logger)

			rec, _ := runAuthenticated(t, "Bearer token", m.Authenticate, m.RequireStaff)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
