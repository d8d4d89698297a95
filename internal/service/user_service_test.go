package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/rbac"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo(users ...*model.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.IsActive = false
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.IsActive = true
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func staffUser(role string) *model.User {
	return &model.User{
		ID:       uuid.New(),
		Username: "staff-" + role,
		FullName: "Staff " + role,
		Role:     role,
		IsActive: true,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestUserCreate_AdminCannotCreateAdmin(t *testing.T) {
	svc := service.NewUserService(newStubUserRepo())

	_, err := svc.Create(context.Background(), rbac.RoleAdmin, dto.CreateUserRequest{
		Username: "newadmin",
		FullName: "New Admin",
		Password: "password123",
		Role:     "admin",
	})
	require.Error(t, err)
}

func TestUserCreate_AdminCreatesCashier(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewUserService(repo)

	resp, err := svc.Create(context.Background(), rbac.RoleAdmin, dto.CreateUserRequest{
		Username: "newcashier",
		FullName: "New Cashier",
		Password: "password123",
		Role:     "cashier",
	})
	require.NoError(t, err)
	assert.Equal(t, "cashier", resp.Role)
	assert.True(t, resp.IsActive)
	require.Len(t, repo.users, 1)
}

func TestUserCreate_CashierCreatesNobody(t *testing.T) {
	svc := service.NewUserService(newStubUserRepo())

	for _, role := range []string{"super_admin", "admin", "manager", "pharmacist", "cashier"} {
		_, err := svc.Create(context.Background(), rbac.RoleCashier, dto.CreateUserRequest{
			Username: "u-" + role,
			FullName: "U " + role,
			Password: "password123",
			Role:     role,
		})
		assert.Error(t, err, "cashier must not create a %s", role)
	}
}

func TestUserUpdate_RoleChangeNeedsBothSides(t *testing.T) {
	target := staffUser("cashier")
	svc := service.NewUserService(newStubUserRepo(target))

	// admin may manage a cashier but may not grant admin
	_, err := svc.Update(context.Background(), rbac.RoleAdmin, target.ID, dto.UpdateUserRequest{
		Role: "admin",
	})
	require.Error(t, err)
	assert.Equal(t, "cashier", target.Role)

	// granting manager is within reach
	resp, err := svc.Update(context.Background(), rbac.RoleAdmin, target.ID, dto.UpdateUserRequest{
		Role: "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
}

func TestUserUpdate_AdminCannotTouchAdmin(t *testing.T) {
	target := staffUser("admin")
	svc := service.NewUserService(newStubUserRepo(target))

	_, err := svc.Update(context.Background(), rbac.RoleAdmin, target.ID, dto.UpdateUserRequest{
		FullName: "Renamed",
	})
	require.Error(t, err)
	assert.Equal(t, "Staff admin", target.FullName)
}

func TestUserUpdate_SuperAdminPromotesCashierToAdmin(t *testing.T) {
	target := staffUser("cashier")
	svc := service.NewUserService(newStubUserRepo(target))

	resp, err := svc.Update(context.Background(), rbac.RoleSuperAdmin, target.ID, dto.UpdateUserRequest{
		Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestUserDeactivate_HierarchyEnforced(t *testing.T) {
	admin := staffUser("admin")
	cashier := staffUser("cashier")
	repo := newStubUserRepo(admin, cashier)
	svc := service.NewUserService(repo)

	require.Error(t, svc.Deactivate(context.Background(), rbac.RoleAdmin, admin.ID))
	assert.True(t, admin.IsActive)

	require.NoError(t, svc.Deactivate(context.Background(), rbac.RoleAdmin, cashier.ID))
	assert.False(t, cashier.IsActive)

	require.NoError(t, svc.Reactivate(context.Background(), rbac.RoleAdmin, cashier.ID))
	assert.True(t, cashier.IsActive)
}

func TestAssignableRoles_MatchesHierarchy(t *testing.T) {
	svc := service.NewUserService(newStubUserRepo())

	all := svc.AssignableRoles(rbac.RoleSuperAdmin)
	require.Len(t, all, len(rbac.AllRoles()))

	adminRoles := svc.AssignableRoles(rbac.RoleAdmin)
	for _, r := range adminRoles {
		assert.NotEqual(t, "super_admin", r.Role)
		assert.NotEqual(t, "admin", r.Role)
	}

	assert.Empty(t, svc.AssignableRoles(rbac.RoleCashier))
	assert.Empty(t, svc.AssignableRoles(rbac.Role("ghost")))
}
