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

type CommunityService interface {
	CreateStory(ctx context.Context, story domain.Story, author domain.User) (domain.Story, error)
	GetStory(ctx context.Context, id string) (domain.Story, error)
	ListStories(ctx context.Context) ([]domain.Story, error)
	UpdateStory(ctx context.Context, story domain.Story, actor domain.User) (domain.Story, error)
	DeleteStory(ctx context.Context, id string, actor domain.User) error
	ToggleLike(ctx context.Context, storyID, userID string) (domain.Story, error)
	AddComment(ctx context.Context, storyID, text string, author domain.User) (domain.Comment, error)
	ListComments(ctx context.Context, storyID string) ([]domain.Comment, error)
	PublishReport(ctx context.Context, report domain.PerformanceReport) (domain.PerformanceReport, error)
	ListReports(ctx context.Context) ([]domain.PerformanceReport, error)
}

type CommunityHandler struct {
	svc  CommunityService
	uSvc UserService
}

func NewCommunityHandler(svc CommunityService, uSvc UserService) *CommunityHandler {
	return &CommunityHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListStories godoc
// @Summary      List community stories
// @Tags         community
// @Produce      json
// @Success      200  {array}   domain.Story
// @Failure      500  {object}  response.Err
// @Router       /stories [get]
// @Security BearerAuth
func (h *CommunityHandler) HandleListStories(ctx *gin.Context) {
	stories, err := h.svc.ListStories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStories -> h.svc.ListStories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stories)
}

// HandleGetStory godoc
// @Summary      Get a story with its comments
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Success      200  {object}  response.StoryDetailResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID} [get]
// @Security BearerAuth
func (h *CommunityHandler) HandleGetStory(ctx *gin.Context) {
	storyID := ctx.Param("storyID")

	story, err := h.svc.GetStory(ctx.Request.Context(), storyID)
	if err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStory -> h.svc.GetStory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	comments, err := h.svc.ListComments(ctx.Request.Context(), storyID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStory -> h.svc.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StoryDetailResponse{
		Story:    story,
		Comments: comments,
	})
}

// HandleCreateStory godoc
// @Summary      Publish a community story
// @Tags         community
// @Produce      json
// @Param        request   body      request.CreateStoryRequest true "request body"
// @Success      201  {object}  domain.Story
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories [post]
// @Security BearerAuth
func (h *CommunityHandler) HandleCreateStory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	story, err := h.svc.CreateStory(ctx.Request.Context(), domain.Story{
		Title:    req.Title,
		PartyID:  req.PartyID,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	}, user)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStory -> h.svc.CreateStory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, story)
}

// HandleUpdateStory godoc
// @Summary      Edit a story (author or admin only)
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Param        request   body      request.UpdateStoryRequest true "request body"
// @Success      200  {object}  domain.Story
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID} [put]
// @Security BearerAuth
func (h *CommunityHandler) HandleUpdateStory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	storyID := ctx.Param("storyID")

	story, err := h.svc.UpdateStory(ctx.Request.Context(), domain.Story{
		ID:       storyID,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	}, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
		case errors.Is(err, service.ErrNotStoryAuthor):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateStory -> h.svc.UpdateStory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, story)
}

// HandleDeleteStory godoc
// @Summary      Delete a story (author or admin only)
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID} [delete]
// @Security BearerAuth
func (h *CommunityHandler) HandleDeleteStory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	storyID := ctx.Param("storyID")

	if err := h.svc.DeleteStory(ctx.Request.Context(), storyID, user); err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
		case errors.Is(err, service.ErrNotStoryAuthor):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleDeleteStory -> h.svc.DeleteStory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleToggleLike godoc
// @Summary      Like or unlike a story
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Success      200  {object}  domain.Story
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID}/like [post]
// @Security BearerAuth
func (h *CommunityHandler) HandleToggleLike(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	storyID := ctx.Param("storyID")

	story, err := h.svc.ToggleLike(ctx.Request.Context(), storyID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
			return
		}

		err = fmt.Errorf("v1.HandleToggleLike -> h.svc.ToggleLike -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, story)
}

// HandleListComments godoc
// @Summary      List a story's comments
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Success      200  {array}   domain.Comment
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID}/comments [get]
// @Security BearerAuth
func (h *CommunityHandler) HandleListComments(ctx *gin.Context) {
	comments, err := h.svc.ListComments(ctx.Request.Context(), ctx.Param("storyID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListComments -> h.svc.ListComments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// HandleAddComment godoc
// @Summary      Comment on a story
// @Tags         community
// @Produce      json
// @Param        storyID   path      string  true  "story ID"
// @Param        request   body      request.CreateCommentRequest true "request body"
// @Success      201  {object}  domain.Comment
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stories/{storyID}/comments [post]
// @Security BearerAuth
func (h *CommunityHandler) HandleAddComment(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	storyID := ctx.Param("storyID")

	comment, err := h.svc.AddComment(ctx.Request.Context(), storyID, req.Text, user)
	if err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
			return
		}

		err = fmt.Errorf("v1.HandleAddComment -> h.svc.AddComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// HandleListReports godoc
// @Summary      List community performance reports
// @Tags         community
// @Produce      json
// @Success      200  {array}   domain.PerformanceReport
// @Failure      500  {object}  response.Err
// @Router       /reports [get]
// @Security BearerAuth
func (h *CommunityHandler) HandleListReports(ctx *gin.Context) {
	reports, err := h.svc.ListReports(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListReports -> h.svc.ListReports -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// HandlePublishReport godoc
// @Summary      Publish a performance report (admin only)
// @Tags         community
// @Produce      json
// @Param        request   body      request.CreateReportRequest true "request body"
// @Success      201  {object}  domain.PerformanceReport
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reports [post]
// @Security BearerAuth
func (h *CommunityHandler) HandlePublishReport(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !user.IsAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var req request.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.PublishReport(ctx.Request.Context(), domain.PerformanceReport{
		Title:   req.Title,
		Date:    req.Date,
		Excerpt: req.Excerpt,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandlePublishReport -> h.svc.PublishReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, report)
}
