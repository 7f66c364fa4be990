package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1/response"
	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

type MakerService interface {
	ListMakers(ctx context.Context) ([]domain.Maker, error)
	GetMaker(ctx context.Context, id string) (domain.Maker, error)
	ListProducts(ctx context.Context, makerID string) ([]domain.MakerProduct, error)
	PurchaseProduct(ctx context.Context, productID, userID string) (domain.Credit, error)
}

type MakerHandler struct {
	svc  MakerService
	uSvc UserService
}

func NewMakerHandler(svc MakerService, uSvc UserService) *MakerHandler {
	return &MakerHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListMakers godoc
// @Summary      List upcycling makers
// @Tags         makers
// @Produce      json
// @Success      200  {array}   domain.Maker
// @Failure      500  {object}  response.Err
// @Router       /makers [get]
// @Security BearerAuth
func (h *MakerHandler) HandleListMakers(ctx *gin.Context) {
	makers, err := h.svc.ListMakers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMakers -> h.svc.ListMakers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, makers)
}

// HandleGetMaker godoc
// @Summary      Get a maker by ID
// @Tags         makers
// @Produce      json
// @Param        makerID   path      string  true  "maker ID"
// @Success      200  {object}  domain.Maker
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /makers/{makerID} [get]
// @Security BearerAuth
func (h *MakerHandler) HandleGetMaker(ctx *gin.Context) {
	makerID := ctx.Param("makerID")

	maker, err := h.svc.GetMaker(ctx.Request.Context(), makerID)
	if err != nil {
		if errors.Is(err, service.ErrMakerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("maker", "ID", makerID))
			return
		}

		err = fmt.Errorf("v1.HandleGetMaker -> h.svc.GetMaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, maker)
}

// HandleListProducts godoc
// @Summary      List maker products
// @Tags         makers
// @Produce      json
// @Param        maker_id   query     string  false  "filter by maker"
// @Success      200  {array}   domain.MakerProduct
// @Failure      500  {object}  response.Err
// @Router       /maker-products [get]
// @Security BearerAuth
func (h *MakerHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context(), ctx.Query("maker_id"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleListMakerProducts godoc
// @Summary      List a maker's products
// @Tags         makers
// @Produce      json
// @Param        makerID   path      string  true  "maker ID"
// @Success      200  {array}   domain.MakerProduct
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /makers/{makerID}/products [get]
// @Security BearerAuth
func (h *MakerHandler) HandleListMakerProducts(ctx *gin.Context) {
	makerID := ctx.Param("makerID")

	if _, err := h.svc.GetMaker(ctx.Request.Context(), makerID); err != nil {
		if errors.Is(err, service.ErrMakerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("maker", "ID", makerID))
			return
		}

		err = fmt.Errorf("v1.HandleListMakerProducts -> h.svc.GetMaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	products, err := h.svc.ListProducts(ctx.Request.Context(), makerID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMakerProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandlePurchaseProduct godoc
// @Summary      Purchase a maker product with credits
// @Tags         makers
// @Produce      json
// @Param        productID   path      string  true  "product ID"
// @Success      200  {object}  domain.Credit
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /maker-products/{productID}/purchase [post]
// @Security BearerAuth
func (h *MakerHandler) HandlePurchaseProduct(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	productID := ctx.Param("productID")

	credit, err := h.svc.PurchaseProduct(ctx.Request.Context(), productID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
		case errors.Is(err, service.ErrInsufficientBalance):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientBalance))
		default:
			err = fmt.Errorf("v1.HandlePurchaseProduct -> h.svc.PurchaseProduct -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, credit)
}
