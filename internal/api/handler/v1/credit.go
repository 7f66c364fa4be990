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

type CreditService interface {
	Balance(ctx context.Context, userID string) (int, error)
	History(ctx context.Context, userID string) ([]domain.Credit, error)
}

// CreditCatalogService groups the operations that spend credits against
// the reward and maker catalogs.
type CreditCatalogService interface {
	ListRewards(ctx context.Context) ([]domain.Reward, error)
	RedeemReward(ctx context.Context, rewardID, userID string) (domain.Credit, error)
	OffsetCredits(ctx context.Context, userID string, amount int) (domain.Credit, error)
}

type CreditHandler struct {
	svc     CreditService
	catalog CreditCatalogService
	uSvc    UserService
}

func NewCreditHandler(svc CreditService, catalog CreditCatalogService, uSvc UserService) *CreditHandler {
	return &CreditHandler{
		svc:     svc,
		catalog: catalog,
		uSvc:    uSvc,
	}
}

// HandleGetBalance godoc
// @Summary      Get the authenticated user's credit balance
// @Tags         credits
// @Produce      json
// @Success      200  {object}  response.BalanceResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /credits/balance [get]
// @Security BearerAuth
func (h *CreditHandler) HandleGetBalance(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	balance, err := h.svc.Balance(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBalance -> h.svc.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.BalanceResponse{Balance: balance})
}

// HandleGetHistory godoc
// @Summary      Get the authenticated user's credit ledger
// @Tags         credits
// @Produce      json
// @Success      200  {array}   domain.Credit
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /credits/history [get]
// @Security BearerAuth
func (h *CreditHandler) HandleGetHistory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	credits, err := h.svc.History(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetHistory -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, credits)
}

// HandleOffsetCredits godoc
// @Summary      Retire credits toward community environmental funds
// @Tags         credits
// @Produce      json
// @Param        request   body      request.OffsetCreditsRequest true "request body"
// @Success      200  {object}  response.SpendResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /credits/offset [post]
// @Security BearerAuth
func (h *CreditHandler) HandleOffsetCredits(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.OffsetCreditsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	credit, err := h.catalog.OffsetCredits(ctx.Request.Context(), user.ID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBalance) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientBalance))
			return
		}

		err = fmt.Errorf("v1.HandleOffsetCredits -> h.catalog.OffsetCredits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	balance, err := h.svc.Balance(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleOffsetCredits -> h.svc.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SpendResponse{Credit: credit, Balance: balance})
}

// HandleListRewards godoc
// @Summary      List redeemable rewards
// @Tags         credits
// @Produce      json
// @Success      200  {array}   domain.Reward
// @Failure      500  {object}  response.Err
// @Router       /rewards [get]
// @Security BearerAuth
func (h *CreditHandler) HandleListRewards(ctx *gin.Context) {
	rewards, err := h.catalog.ListRewards(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRewards -> h.catalog.ListRewards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rewards)
}

// HandleRedeemReward godoc
// @Summary      Redeem a reward with credits
// @Tags         credits
// @Produce      json
// @Param        rewardID   path      string  true  "reward ID"
// @Success      200  {object}  response.SpendResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /rewards/{rewardID}/redemption [post]
// @Security BearerAuth
func (h *CreditHandler) HandleRedeemReward(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	rewardID := ctx.Param("rewardID")

	credit, err := h.catalog.RedeemReward(ctx.Request.Context(), rewardID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRewardNotFound):
			response.RenderErr(ctx, response.ErrNotFound("reward", "ID", rewardID))
		case errors.Is(err, service.ErrInsufficientBalance):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientBalance))
		default:
			err = fmt.Errorf("v1.HandleRedeemReward -> h.catalog.RedeemReward -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	balance, err := h.svc.Balance(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleRedeemReward -> h.svc.Balance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SpendResponse{Credit: credit, Balance: balance})
}
