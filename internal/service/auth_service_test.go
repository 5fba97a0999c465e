package service_test

import (
	"context"
	"testing"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/config"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	userRepo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	// nil redis: the revocation check is skipped, everything else works
	return service.NewAuthService(userRepo, nil, cfg), userRepo
}

func seedLoginUser(repo *stubUserRepo, email, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	repo.users[u.ID] = u
	return u
}

func TestLogin(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleSeller)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@shop.local", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleSeller, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleSeller)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@shop.local", Password: "nope"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestLogin_DeactivatedUser(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedLoginUser(userRepo, "ex@shop.local", "s3cret", model.RoleSeller)
	u.Active = false

	// FindByEmail only resolves active accounts
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ex@shop.local", Password: "s3cret"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleAdmin)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@shop.local", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Refresh(context.Background(), "not.a.jwt")
	require.Error(t, err)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleSeller)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@shop.local", Password: "s3cret"})
	require.NoError(t, err)

	u.Active = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleSeller)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "ana@shop.local",
		Name:     "Ana Clone",
		Password: "whatever1",
		Role:     model.RoleSeller,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
}

func TestDeactivateThenReactivateUser(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedLoginUser(userRepo, "ana@shop.local", "s3cret", model.RoleSeller)

	require.NoError(t, svc.DeactivateUser(context.Background(), u.ID))
	assert.False(t, userRepo.users[u.ID].Active)

	require.NoError(t, svc.ReactivateUser(context.Background(), u.ID))
	assert.True(t, userRepo.users[u.ID].Active)
}

func TestUpdateUser_ChangesRole(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedLoginUser(userRepo, "jorge@shop.local", "s3cret", model.RoleSeller)

	resp, err := svc.UpdateUser(context.Background(), u.ID, dto.UpdateUserRequest{Role: model.RoleTechnician})
	require.NoError(t, err)
	assert.Equal(t, model.RoleTechnician, resp.Role)
}
