package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1/request"
	"github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1/response"
	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID, nickname, phoneNumber string) (domain.User, error)
	SetNeighbors(ctx context.Context, userID string, neighborIDs []string) (domain.User, error)
	ToggleNeighbor(ctx context.Context, userID, neighborID string) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path      string  true  "user ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleUpdateMe godoc
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Produce      json
// @Param        request   body      request.UpdateProfileRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProfile(ctx.Request.Context(), user.ID, req.Nickname, req.PhoneNumber)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateMe -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleSetNeighbors godoc
// @Summary      Replace the authenticated user's neighbor list
// @Tags         users
// @Produce      json
// @Param        request   body      request.SetNeighborsRequest true "request body"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me/neighbors [put]
// @Security BearerAuth
func (h *UserHandler) HandleSetNeighbors(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SetNeighborsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.SetNeighbors(ctx.Request.Context(), user.ID, req.NeighborIDs)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleSetNeighbors -> h.svc.SetNeighbors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleToggleNeighbor godoc
// @Summary      Add or remove a single neighbor
// @Tags         users
// @Produce      json
// @Param        neighborID   path      string  true  "neighbor user ID"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me/neighbors/{neighborID} [post]
// @Security BearerAuth
func (h *UserHandler) HandleToggleNeighbor(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	neighborID := ctx.Param("neighborID")

	updated, err := h.svc.ToggleNeighbor(ctx.Request.Context(), user.ID, neighborID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", neighborID))
			return
		}

		err = fmt.Errorf("v1.HandleToggleNeighbor -> h.svc.ToggleNeighbor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
