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

type PartyService interface {
	GetParty(ctx context.Context, id string) (domain.Party, error)
	ListParties(ctx context.Context, status domain.PartyStatus, search string) ([]domain.Party, error)
	ListPartiesForUser(ctx context.Context, userID string) ([]domain.Party, error)
	HostParty(ctx context.Context, party domain.Party, host domain.User) (domain.Party, error)
	Join(ctx context.Context, partyID, invitationCode string, user domain.User) (domain.Party, error)
	Participants(ctx context.Context, partyID string, actor domain.User) ([]domain.PartyParticipant, error)
	UpdateParticipantStatus(ctx context.Context, partyID, userID string, newStatus domain.ParticipantStatus, actor domain.User) (domain.Party, error)
	RemoveParticipant(ctx context.Context, partyID, userID string, actor domain.User) error
	CheckIn(ctx context.Context, partyID string, payload service.CheckInPayload, actor domain.User) (domain.PartyParticipant, error)
	Complete(ctx context.Context, partyID string, finalParticipants, finalItemsExchanged int, actor domain.User) (domain.Party, error)
	EstimateKit(participants, itemsPerPerson int) service.KitEstimate
}

type PartyHandler struct {
	svc  PartyService
	uSvc UserService
}

func NewPartyHandler(svc PartyService, uSvc UserService) *PartyHandler {
	return &PartyHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListParties godoc
// @Summary      List parties
// @Tags         parties
// @Produce      json
// @Param        status   query     string  false  "filter by status"
// @Param        search   query     string  false  "search in title and description"
// @Success      200  {array}   domain.Party
// @Failure      500  {object}  response.Err
// @Router       /parties [get]
// @Security BearerAuth
func (h *PartyHandler) HandleListParties(ctx *gin.Context) {
	parties, err := h.svc.ListParties(ctx.Request.Context(), domain.PartyStatus(ctx.Query("status")), ctx.Query("search"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListParties -> h.svc.ListParties -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, parties)
}

// HandleListMyParties godoc
// @Summary      List parties the authenticated user hosts or participates in
// @Tags         parties
// @Produce      json
// @Success      200  {array}   domain.Party
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/my [get]
// @Security BearerAuth
func (h *PartyHandler) HandleListMyParties(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	parties, err := h.svc.ListPartiesForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyParties -> h.svc.ListPartiesForUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, parties)
}

// HandleGetParty godoc
// @Summary      Get a party by ID
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Success      200  {object}  domain.Party
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID} [get]
// @Security BearerAuth
func (h *PartyHandler) HandleGetParty(ctx *gin.Context) {
	partyID := ctx.Param("partyID")

	party, err := h.svc.GetParty(ctx.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, service.ErrPartyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
			return
		}

		err = fmt.Errorf("v1.HandleGetParty -> h.svc.GetParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleHostParty godoc
// @Summary      Request to host a new party
// @Tags         parties
// @Produce      json
// @Param        request   body      request.HostPartyRequest true "request body"
// @Success      201  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties [post]
// @Security BearerAuth
func (h *PartyHandler) HandleHostParty(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
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

	party, err := h.svc.HostParty(ctx.Request.Context(), domain.Party{
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
		err = fmt.Errorf("v1.HandleHostParty -> h.svc.HostParty -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, party)
}

// HandleJoinParty godoc
// @Summary      Apply to a party with its invitation code
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        request   body      request.JoinPartyRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/join [post]
// @Security BearerAuth
func (h *PartyHandler) HandleJoinParty(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.JoinPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")

	party, err := h.svc.Join(ctx.Request.Context(), partyID, req.InvitationCode, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrWrongInvitationCode):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrAlreadyApplied):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleJoinParty -> h.svc.Join -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleJoinByCode godoc
// @Summary      Apply to a party identified only by its invitation code
// @Tags         parties
// @Produce      json
// @Param        request   body      request.JoinPartyRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/join [post]
// @Security BearerAuth
func (h *PartyHandler) HandleJoinByCode(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.JoinPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	party, err := h.svc.Join(ctx.Request.Context(), "", req.InvitationCode, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "invitation code", req.InvitationCode))
		case errors.Is(err, service.ErrAlreadyApplied):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleJoinByCode -> h.svc.Join -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleListParticipants godoc
// @Summary      List a party's participants (host or admin only)
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Success      200  {array}   domain.PartyParticipant
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/participants [get]
// @Security BearerAuth
func (h *PartyHandler) HandleListParticipants(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	partyID := ctx.Param("partyID")

	participants, err := h.svc.Participants(ctx.Request.Context(), partyID, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleListParticipants -> h.svc.Participants -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleUpdateParticipantStatus godoc
// @Summary      Update a participant's status (host or admin only)
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        userID    path      string  true  "participant user ID"
// @Param        request   body      request.UpdateParticipantStatusRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/participants/{userID} [patch]
// @Security BearerAuth
func (h *PartyHandler) HandleUpdateParticipantStatus(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateParticipantStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")
	participantID := ctx.Param("userID")

	party, err := h.svc.UpdateParticipantStatus(ctx.Request.Context(), partyID, participantID, domain.ParticipantStatus(req.Status), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "userID", participantID))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrIllegalParticipantTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateParticipantStatus -> h.svc.UpdateParticipantStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleRemoveParticipant godoc
// @Summary      Remove a participant from a party (host or admin only)
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        userID    path      string  true  "participant user ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/participants/{userID} [delete]
// @Security BearerAuth
func (h *PartyHandler) HandleRemoveParticipant(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	partyID := ctx.Param("partyID")
	participantID := ctx.Param("userID")

	err := h.svc.RemoveParticipant(ctx.Request.Context(), partyID, participantID, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "userID", participantID))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrCannotRemoveHost):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleRemoveParticipant -> h.svc.RemoveParticipant -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCheckIn godoc
// @Summary      Check in a participant from a scanned ticket
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        request   body      request.CheckInRequest true "decoded ticket payload"
// @Success      200  {object}  domain.PartyParticipant
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/checkin [post]
// @Security BearerAuth
func (h *PartyHandler) HandleCheckIn(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")

	participant, err := h.svc.CheckIn(ctx.Request.Context(), partyID, service.CheckInPayload{
		Party:     req.Party,
		User:      req.User,
		Timestamp: req.Timestamp,
	}, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrCheckInNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "nickname", req.User))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrCheckInWrongParty),
			errors.Is(err, service.ErrCheckInAlreadyDone),
			errors.Is(err, service.ErrCheckInNotAccepted),
			errors.Is(err, service.ErrInvalidCheckInPayload):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCheckIn -> h.svc.CheckIn -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleCompleteParty godoc
// @Summary      Submit the final report and complete a party
// @Tags         parties
// @Produce      json
// @Param        partyID   path      string  true  "party ID"
// @Param        request   body      request.CompletePartyRequest true "request body"
// @Success      200  {object}  domain.Party
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parties/{partyID}/completion [post]
// @Security BearerAuth
func (h *PartyHandler) HandleCompleteParty(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CompletePartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partyID := ctx.Param("partyID")

	party, err := h.svc.Complete(ctx.Request.Context(), partyID, req.FinalParticipants, req.FinalItemsExchanged, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", partyID))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrPartyNotCompletable):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCompleteParty -> h.svc.Complete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, party)
}

// HandleKitEstimate godoc
// @Summary      Estimate the party kit contents and cost
// @Tags         parties
// @Produce      json
// @Param        participants        query     int  true  "expected participants"
// @Param        items_per_person    query     int  true  "items per person"
// @Success      200  {object}  service.KitEstimate
// @Failure      400  {object}  response.Err
// @Router       /parties/kit-estimate [get]
// @Security BearerAuth
func (h *PartyHandler) HandleKitEstimate(ctx *gin.Context) {
	var query struct {
		Participants   int `form:"participants"`
		ItemsPerPerson int `form:"items_per_person"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, h.svc.EstimateKit(query.Participants, query.ItemsPerPerson))
}
