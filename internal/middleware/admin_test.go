package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

type mockRoleLookup struct {
	mock.Mock
}

func (m *mockRoleLookup) GetUserRole(ctx context.Context, userID string) (domain.UserRole, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserRole), args.Error(1)
}

// withUser injects a user ID the way AuthMiddleware does, so AdminRequired
// can be exercised in isolation.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func runAdminRequest(t *testing.T, roles RoleLookup, pre ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	grp := r.Group("/", pre...)
	grp.GET("/admin-only", AdminRequired(roles), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest(http.MethodGet, "/admin-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequired_AllowsAdmin(t *testing.T) {
	roles := new(mockRoleLookup)
	roles.On("GetUserRole", mock.Anything, "user-1").Return(domain.RoleAdmin, nil).Once()

	w := runAdminRequest(t, roles, withUser("user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	roles.AssertExpectations(t)
}

func TestAdminRequired_RejectsNonAdmin(t *testing.T) {
	roles := new(mockRoleLookup)
	roles.On("GetUserRole", mock.Anything, "user-2").Return(domain.RoleUser, nil).Once()

	w := runAdminRequest(t, roles, withUser("user-2"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	roles.AssertExpectations(t)
}

func TestAdminRequired_RejectsWhenLookupFails(t *testing.T) {
	roles := new(mockRoleLookup)
	roles.On("GetUserRole", mock.Anything, "user-3").Return(domain.UserRole(""), errors.New("db down")).Once()

	w := runAdminRequest(t, roles, withUser("user-3"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	roles.AssertExpectations(t)
}

func TestAdminRequired_RejectsUnauthenticated(t *testing.T) {
	roles := new(mockRoleLookup)

	w := runAdminRequest(t, roles)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	roles.AssertNotCalled(t, "GetUserRole")
}
