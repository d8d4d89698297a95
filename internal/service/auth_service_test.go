package service_test

import (
	"context"
	"testing"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/config"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    72,
	}
}

func userWithPassword(t *testing.T, username, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           uuid.New(),
		Username:     username,
		FullName:     "Test " + username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	u := userWithPassword(t, "cashier1", "secret123", "cashier")
	svc := service.NewAuthService(newStubUserRepo(u), testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "cashier1",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "cashier", resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	u := userWithPassword(t, "cashier1", "secret123", "cashier")
	svc := service.NewAuthService(newStubUserRepo(u), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "cashier1",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	u := userWithPassword(t, "cashier1", "secret123", "cashier")
	u.IsActive = false
	svc := service.NewAuthService(newStubUserRepo(u), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "cashier1",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestRefresh_RoundTrip(t *testing.T) {
	u := userWithPassword(t, "cashier1", "secret123", "cashier")
	svc := service.NewAuthService(newStubUserRepo(u), testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "cashier1",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, u.ID.String(), refreshed.User.ID)
}

func TestRefresh_GarbageTokenRejected(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), testConfig())

	_, err := svc.Refresh(context.Background(), "not.a.jwt")
	require.Error(t, err)
}
