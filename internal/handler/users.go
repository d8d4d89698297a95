package handler

import (
	"net/http"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/apierror"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/middleware"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/rbac"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

func actorRole(c *gin.Context) rbac.Role {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return rbac.Role("")
	}
	return rbac.Role(claims.Role)
}

// Create godoc
// @Summary Create a user
// @Description The caller may only assign roles below their own reach.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), actorRole(c), req)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsersHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	resp, err := h.svc.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list users"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a user
// @Description Role changes require authority over both the current and the new role.
// @Tags users
// @Security BearerAuth
// @Param id path string true "User UUID"
// @Param body body dto.UpdateUserRequest true "Changes"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/users/{id} [patch]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actorRole(c), id, req)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), actorRole(c), id); err != nil {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsersHandler) Reactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), actorRole(c), id); err != nil {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignableRoles godoc
// @Summary Roles the caller may assign
// @Description Role pickers must be populated from this endpoint only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RoleResponse
// @Router /v1/users/assignable-roles [get]
func (h *UsersHandler) AssignableRoles(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AssignableRoles(actorRole(c)))
}
