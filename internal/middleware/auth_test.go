package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCtx(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetClaims_NilWithoutAuthentication(t *testing.T) {
	c := testCtx(t)
	assert.Nil(t, GetClaims(c))
}

func TestGetClaims_ReturnsStoredClaims(t *testing.T) {
	c := testCtx(t)
	claims := &JWTClaims{UserID: "u1", Username: "cashier1", Role: "cashier"}
	c.Set(ClaimsKey, claims)
	assert.Same(t, claims, GetClaims(c))
}

func TestGuardFrom_FailsClosedWithoutClaims(t *testing.T) {
	g := GuardFrom(testCtx(t))
	assert.Equal(t, rbac.RoleCashier, g.Role())
	assert.False(t, g.Can(rbac.PermManageUsers))
}

func TestGuardFrom_FailsClosedOnUnknownRole(t *testing.T) {
	c := testCtx(t)
	c.Set(ClaimsKey, &JWTClaims{UserID: "u1", Role: "root"})

	g := GuardFrom(c)
	assert.Equal(t, rbac.RoleCashier, g.Role())
	assert.False(t, g.Can(rbac.PermManageUsers))
	assert.True(t, g.Can(rbac.PermCreateSale))
}

func TestGuardFrom_ResolvesValidRole(t *testing.T) {
	c := testCtx(t)
	c.Set(ClaimsKey, &JWTClaims{UserID: "u1", Role: "admin"})

	g := GuardFrom(c)
	assert.Equal(t, rbac.RoleAdmin, g.Role())
	assert.True(t, g.Can(rbac.PermManageUsers))
}
