package service

import (
	"context"
	"errors"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/rbac"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role-hierarchy violations are validation rejections, surfaced verbatim to
// the operator. No state is mutated on refusal.
var (
	errRoleNotAssignable = errors.New("you are not allowed to assign this role")
	errUserNotManageable = errors.New("you are not allowed to manage this user")
)

// UserService is the staff-management surface. Every mutation is checked
// against the role hierarchy of the acting user before it touches the store.
type UserService interface {
	Create(ctx context.Context, actorRole rbac.Role, req dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.UserResponse, error)
	Update(ctx context.Context, actorRole rbac.Role, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, actorRole rbac.Role, id uuid.UUID) error
	Reactivate(ctx context.Context, actorRole rbac.Role, id uuid.UUID) error
	AssignableRoles(actorRole rbac.Role) []dto.RoleResponse
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, actorRole rbac.Role, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	newRole, ok := rbac.ParseRole(req.Role)
	if !ok || !rbac.CanCreateUserWithRole(actorRole, newRole) {
		return nil, errRoleNotAssignable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         string(newRole),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) List(ctx context.Context, includeInactive bool) ([]dto.UserResponse, error) {
	var users []model.User
	var err error
	if includeInactive {
		users, err = s.repo.ListAll(ctx)
	} else {
		users, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = *userToResponse(&users[i])
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, actorRole rbac.Role, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}

	// Editing an account at all requires management rights over its current
	// role — an unrecognized stored role fails closed here.
	currentRole, _ := rbac.ParseRole(user.Role)
	if !rbac.CanManageRole(actorRole, currentRole) {
		return nil, errUserNotManageable
	}

	if req.Role != "" && req.Role != user.Role {
		newRole, ok := rbac.ParseRole(req.Role)
		// A role change needs rights over BOTH sides: the role being taken
		// away and the role being granted.
		if !ok || !rbac.CanChangeUserRole(actorRole, currentRole, newRole) {
			return nil, errRoleNotAssignable
		}
		user.Role = string(newRole)
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Deactivate(ctx context.Context, actorRole rbac.Role, id uuid.UUID) error {
	if err := s.requireManageable(ctx, actorRole, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *userService) Reactivate(ctx context.Context, actorRole rbac.Role, id uuid.UUID) error {
	if err := s.requireManageable(ctx, actorRole, id); err != nil {
		return err
	}
	return s.repo.Reactivate(ctx, id)
}

// AssignableRoles is the sole source of truth for role pickers: the handler
// must never expose the full role enumeration instead.
func (s *userService) AssignableRoles(actorRole rbac.Role) []dto.RoleResponse {
	roles := rbac.AssignableRoles(actorRole)
	resp := make([]dto.RoleResponse, len(roles))
	for i, r := range roles {
		info := r.Info()
		resp[i] = dto.RoleResponse{Role: string(r), Name: info.Name, Description: info.Description}
	}
	return resp
}

func (s *userService) requireManageable(ctx context.Context, actorRole rbac.Role, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("user not found")
	}
	currentRole, _ := rbac.ParseRole(user.Role)
	if !rbac.CanManageRole(actorRole, currentRole) {
		return errUserNotManageable
	}
	return nil
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
