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

type AdminService interface {
	Stats(ctx context.Context) (service.PlatformStats, error)
}

// AdminPartyService is the admin-only slice of the party lifecycle.
type AdminPartyService interface {
	AddParty(ctx context.Context, party domain.Party, admin domain.User) (domain.Party, error)
	UpdateApproval(ctx context.Context, partyID string, newStatus domain.PartyStatus) (domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) (domain.Party, error)
	DeleteParty(ctx context.Context, id string) error
	GetParty(ctx context.Context, id string) (domain.Party, error)
}

type AdminItemService interface {
	ListAllItems(ctx context.Context) ([]domain.ClothingItem, error)
}

type AdminHandler struct {
	svc     AdminService
	parties AdminPartyService
	items   AdminItemService
	uSvc    UserService
}

func NewAdminHandler(svc AdminService, parties AdminPartyService, items AdminItemService, uSvc UserService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		parties: parties,
		items:   items,
		uSvc:    uSvc,
	}
}

// requireAdmin resolves the authenticated user and rejects non-admins.
func (h *AdminHandler) requireAdmin(ctx *gin.Context) (domain.User, bool) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, false
	}
	if !user.IsAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return domain.User{}, false
	}

	return user, true
}

// HandleGetStats godoc
// @Summary      Get platform statistics (admin only)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.PlatformStats
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/stats [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetStats(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleAddParty godoc
// @Summary      Create a party directly as UPCOMING (admin only)
// @Tags         admin
// @Produce      json
// @Param        request   body      request.HostPartyRequest true "request body"
// @Success      201  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/parties [post]
// @Security BearerAuth
func (h *AdminHandler) HandleAddParty(ctx *gin.Context) {
	user, ok := h.requireAdmin(ctx)
	if !ok {
		return
	}

	var req request.HostPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	party, err := h.parties.AddParty(ctx.Request.Context(), domain.Party{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Details:     req.Details,
		KitDetails: &domain.KitDetails{
			Participants:   req.Participants,
			ItemsPerPerson: req.ItemsPerPerson,
		},
	}, user)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddParty -> h.parties.AddParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, party)
}

// HandlePartyApproval godoc
// @Summary      Approve or reject a pending party (admin only)
// @Tags         admin
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        request   body      request.PartyApprovalRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/parties/{partyID}/approval [post]
// @Security BearerAuth
func (h *AdminHandler) HandlePartyApproval(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.PartyApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")

	party, err := h.parties.UpdateApproval(ctx.Request.Context(), partyID, domain.PartyStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrIllegalPartyTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandlePartyApproval -> h.parties.UpdateApproval -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleUpdateParty godoc
// @Summary      Edit a party's details (admin only)
// @Tags         admin
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        request   body      request.HostPartyRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/parties/{partyID} [put]
// @Security BearerAuth
func (h *AdminHandler) HandleUpdateParty(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	var req request.HostPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")
	current, err := h.parties.GetParty(ctx.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, service.ErrPartyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateParty -> h.parties.GetParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	current.Title = req.Title
	current.Description = req.Description
	current.Date = req.Date
	current.Location = req.Location
	current.ImageURL = req.ImageURL
	current.Details = req.Details
	if current.KitDetails != nil {
		current.KitDetails.Participants = req.Participants
		current.KitDetails.ItemsPerPerson = req.ItemsPerPerson
	}

	party, err := h.parties.UpdateParty(ctx.Request.Context(), current)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateParty -> h.parties.UpdateParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleDeleteParty godoc
// @Summary      Delete a party (admin only)
// @Tags         admin
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/parties/{partyID} [delete]
// @Security BearerAuth
func (h *AdminHandler) HandleDeleteParty(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	partyID := ctx.Param("partyID")

	if err := h.parties.DeleteParty(ctx.Request.Context(), partyID); err != nil {
		if errors.Is(err, service.ErrPartyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteParty -> h.parties.DeleteParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListAllItems godoc
// @Summary      List every registered item (admin only)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.ClothingItem
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/items [get]
// @Security BearerAuth
func (h *AdminHandler) HandleListAllItems(ctx *gin.Context) {
	if _, ok := h.requireAdmin(ctx); !ok {
		return
	}

	items, err := h.items.ListAllItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllItems -> h.items.ListAllItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
