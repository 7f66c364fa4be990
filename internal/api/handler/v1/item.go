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
	"github.com/MuchYouth/otgil-Re-Thread/internal/pkg/classifier"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

type ItemService interface {
	RegisterItem(ctx context.Context, item domain.ClothingItem, owner domain.User, submitPartyID string) (domain.ClothingItem, error)
	GetItem(ctx context.Context, id string) (domain.ClothingItem, error)
	ListMyItems(ctx context.Context, userID string) ([]domain.ClothingItem, error)
	Browse(ctx context.Context, partyID string) ([]domain.ClothingItem, error)
	UpdateItem(ctx context.Context, item domain.ClothingItem, actorID string) (domain.ClothingItem, error)
	ToggleListing(ctx context.Context, itemID, actorID string) (domain.ClothingItem, error)
	SubmitToParty(ctx context.Context, itemID, partyID, actorID string) (domain.ClothingItem, error)
	CancelSubmission(ctx context.Context, itemID, actorID string) (domain.ClothingItem, error)
	ReviewSubmission(ctx context.Context, itemID string, status domain.SubmissionStatus, actor domain.User) (domain.ClothingItem, error)
	PersonalImpact(ctx context.Context, userID string) (domain.ImpactStats, error)
}

type ImageAnalyzer interface {
	Analyze(ctx context.Context, imageBase64 string) (classifier.Suggestion, error)
}

type ItemHandler struct {
	svc      ItemService
	uSvc     UserService
	analyzer ImageAnalyzer
}

func NewItemHandler(svc ItemService, uSvc UserService, analyzer ImageAnalyzer) *ItemHandler {
	return &ItemHandler{
		svc:      svc,
		uSvc:     uSvc,
		analyzer: analyzer,
	}
}

// HandleCreateItem godoc
// @Summary      Register a clothing item
// @Tags         items
// @Produce      json
// @Param        request   body      request.CreateItemRequest true "request body"
// @Success      201  {object}  domain.ClothingItem
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.RegisterItem(ctx.Request.Context(), domain.ClothingItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    domain.ClothingCategory(req.Category),
		Size:        req.Size,
		ImageURL:    req.ImageURL,
		Tag:         req.Tag(),
	}, user, req.SubmitPartyID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", req.SubmitPartyID))
		case errors.Is(err, service.ErrItemNotSubmittable),
			errors.Is(err, service.ErrNotAcceptedForParty),
			errors.Is(err, service.ErrPartyNotOpen):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateItem -> h.svc.RegisterItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleBrowseItems godoc
// @Summary      Browse exchangeable items
// @Description  Without party_id, returns items listed for general exchange. With party_id, returns that party's approved lineup.
// @Tags         items
// @Produce      json
// @Param        party_id   query     string  false  "party ID"
// @Success      200  {array}   domain.ClothingItem
// @Failure      500  {object}  response.Err
// @Router       /items [get]
// @Security BearerAuth
func (h *ItemHandler) HandleBrowseItems(ctx *gin.Context) {
	items, err := h.svc.Browse(ctx.Request.Context(), ctx.Query("party_id"))
	if err != nil {
		err = fmt.Errorf("v1.HandleBrowseItems -> h.svc.Browse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleListMyItems godoc
// @Summary      List the authenticated user's closet
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.ClothingItem
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/my [get]
// @Security BearerAuth
func (h *ItemHandler) HandleListMyItems(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.ListMyItems(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyItems -> h.svc.ListMyItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get a clothing item by ID
// @Tags         items
// @Produce      json
// @Param        itemID   path      string  true  "item ID"
// @Success      200  {object}  domain.ClothingItem
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [get]
// @Security BearerAuth
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}

		err = fmt.Errorf("v1.HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleUpdateItem godoc
// @Summary      Update an owned item's details
// @Tags         items
// @Produce      json
// @Param        itemID    path      string  true  "item ID"
// @Param        request   body      request.UpdateItemRequest true "request body"
// @Success      200  {object}  domain.ClothingItem
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [patch]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	itemID := ctx.Param("itemID")
	current, err := h.svc.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	current.Name = req.Name
	current.Description = req.Description
	current.Category = domain.ClothingCategory(req.Category)
	current.Size = req.Size
	current.ImageURL = req.ImageURL

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), current, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotItemOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleToggleListing godoc
// @Summary      Toggle an item's general-exchange listing
// @Tags         items
// @Produce      json
// @Param        itemID   path      string  true  "item ID"
// @Success      200  {object}  domain.ClothingItem
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID}/listing [post]
// @Security BearerAuth
func (h *ItemHandler) HandleToggleListing(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID := ctx.Param("itemID")

	item, err := h.svc.ToggleListing(ctx.Request.Context(), itemID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
		case errors.Is(err, service.ErrNotItemOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleToggleListing -> h.svc.ToggleListing -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleSubmitItem godoc
// @Summary      Submit an item to a party lineup
// @Tags         items
// @Produce      json
// @Param        itemID    path      string  true  "item ID"
// @Param        request   body      request.SubmitItemRequest true "request body"
// @Success      200  {object}  domain.ClothingItem
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID}/submission [post]
// @Security BearerAuth
func (h *ItemHandler) HandleSubmitItem(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SubmitItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	itemID := ctx.Param("itemID")

	item, err := h.svc.SubmitToParty(ctx.Request.Context(), itemID, req.PartyID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
		case errors.Is(err, service.ErrPartyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("party", "ID", req.PartyID))
		case errors.Is(err, service.ErrNotItemOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrItemNotSubmittable),
			errors.Is(err, service.ErrNotAcceptedForParty),
			errors.Is(err, service.ErrPartyNotOpen):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSubmitItem -> h.svc.SubmitToParty -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleCancelSubmission godoc
// @Summary      Withdraw a pending or rejected submission
// @Tags         items
// @Produce      json
// @Param        itemID   path      string  true  "item ID"
// @Success      200  {object}  domain.ClothingItem
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID}/submission [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleCancelSubmission(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID := ctx.Param("itemID")

	item, err := h.svc.CancelSubmission(ctx.Request.Context(), itemID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
		case errors.Is(err, service.ErrNotItemOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrSubmissionNotRevocable):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCancelSubmission -> h.svc.CancelSubmission -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleReviewSubmission godoc
// @Summary      Approve or reject a submitted item
// @Tags         items
// @Produce      json
// @Param        itemID    path      string  true  "item ID"
// @Param        request   body      request.ReviewSubmissionRequest true "request body"
// @Success      200  {object}  domain.ClothingItem
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/items/{itemID}/review [post]
// @Security BearerAuth
func (h *ItemHandler) HandleReviewSubmission(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReviewSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	itemID := ctx.Param("itemID")

	item, err := h.svc.ReviewSubmission(ctx.Request.Context(), itemID, domain.SubmissionStatus(req.Status), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
		case errors.Is(err, service.ErrNotPartyHost):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleReviewSubmission -> h.svc.ReviewSubmission -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandlePersonalImpact godoc
// @Summary      Get the authenticated user's environmental impact
// @Tags         items
// @Produce      json
// @Success      200  {object}  domain.ImpactStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me/impact [get]
// @Security BearerAuth
func (h *ItemHandler) HandlePersonalImpact(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	impact, err := h.svc.PersonalImpact(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandlePersonalImpact -> h.svc.PersonalImpact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, impact)
}

// HandleUserImpact godoc
// @Summary      Get another user's environmental impact
// @Tags         items
// @Produce      json
// @Param        userID   path      string  true  "user ID"
// @Success      200  {object}  domain.ImpactStats
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{userID}/impact [get]
// @Security BearerAuth
func (h *ItemHandler) HandleUserImpact(ctx *gin.Context) {
	userID := ctx.Param("userID")

	if _, err := h.uSvc.GetUser(ctx.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleUserImpact -> h.uSvc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	impact, err := h.svc.PersonalImpact(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleUserImpact -> h.svc.PersonalImpact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, impact)
}

// HandleAnalyzeImage godoc
// @Summary      Analyze a clothing photo to prefill item details
// @Tags         items
// @Produce      json
// @Param        request   body      request.AnalyzeItemRequest true "request body"
// @Success      200  {object}  classifier.Suggestion
// @Failure      400  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /items/analysis [post]
// @Security BearerAuth
func (h *ItemHandler) HandleAnalyzeImage(ctx *gin.Context) {
	var req request.AnalyzeItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	suggestion, err := h.analyzer.Analyze(ctx.Request.Context(), req.ImageBase64)
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) || errors.Is(err, classifier.ErrAnalysisFailed) {
			response.RenderErr(ctx, &response.Err{
				StatusCode: http.StatusBadGateway,
				ErrorMsg:   err.Error(),
			})
			return
		}

		err = fmt.Errorf("v1.HandleAnalyzeImage -> h.analyzer.Analyze -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, suggestion)
}
