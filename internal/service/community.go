package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
)

var (
	ErrStoryNotFound  = repository.ErrStoryNotFound
	ErrNotStoryAuthor = errors.New("only the story author may perform this action")
)

type CommunityRepository interface {
	CreateStory(ctx context.Context, story domain.Story) (domain.Story, error)
	FindStoryByID(ctx context.Context, id string) (domain.Story, error)
	ListStories(ctx context.Context) ([]domain.Story, error)
	UpdateStory(ctx context.Context, story domain.Story) (domain.Story, error)
	DeleteStory(ctx context.Context, id string) error
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	ListCommentsByStory(ctx context.Context, storyID string) ([]domain.Comment, error)
	CreateReport(ctx context.Context, report domain.PerformanceReport) (domain.PerformanceReport, error)
	ListReports(ctx context.Context) ([]domain.PerformanceReport, error)
}

type CommunityService struct {
	repo CommunityRepository
}

func NewCommunityService(repo CommunityRepository) *CommunityService {
	return &CommunityService{
		repo: repo,
	}
}

func (s *CommunityService) CreateStory(ctx context.Context, story domain.Story, author domain.User) (domain.Story, error) {
	story.UserID = author.ID
	story.Author = author.Nickname
	story.Likes = 0
	story.LikedBy = []string{}

	created, err := s.repo.CreateStory(ctx, story)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.CreateStory -> %w", err)
	}

	zap.L().Info("story published",
		zap.String("storyID", created.ID),
		zap.String("userID", author.ID))

	return created, nil
}

func (s *CommunityService) GetStory(ctx context.Context, id string) (domain.Story, error) {
	story, err := s.repo.FindStoryByID(ctx, id)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.FindStoryByID -> %w", err)
	}

	return story, nil
}

func (s *CommunityService) ListStories(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.repo.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListStories -> %w", err)
	}

	return stories, nil
}

// UpdateStory edits the narrative fields. Authorship, like counters and
// the liked-by set survive the edit untouched.
func (s *CommunityService) UpdateStory(ctx context.Context, story domain.Story, actor domain.User) (domain.Story, error) {
	current, err := s.repo.FindStoryByID(ctx, story.ID)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.FindStoryByID -> %w", err)
	}
	if current.UserID != actor.ID && !actor.IsAdmin {
		return domain.Story{}, ErrNotStoryAuthor
	}

	story.UserID = current.UserID
	story.Author = current.Author
	story.Likes = current.Likes
	story.LikedBy = current.LikedBy

	updated, err := s.repo.UpdateStory(ctx, story)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.UpdateStory -> %w", err)
	}

	return updated, nil
}

func (s *CommunityService) DeleteStory(ctx context.Context, id string, actor domain.User) error {
	story, err := s.repo.FindStoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindStoryByID -> %w", err)
	}
	if story.UserID != actor.ID && !actor.IsAdmin {
		return ErrNotStoryAuthor
	}

	if err := s.repo.DeleteStory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteStory -> %w", err)
	}

	return nil
}

// ToggleLike likes the story for the user, or unlikes it if already
// liked. The counter always equals len(LikedBy).
func (s *CommunityService) ToggleLike(ctx context.Context, storyID, userID string) (domain.Story, error) {
	story, err := s.repo.FindStoryByID(ctx, storyID)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.FindStoryByID -> %w", err)
	}

	likedBy := make([]string, 0, len(story.LikedBy)+1)
	removed := false
	for _, id := range story.LikedBy {
		if id == userID {
			removed = true
			continue
		}
		likedBy = append(likedBy, id)
	}
	if !removed {
		likedBy = append(likedBy, userID)
	}

	story.LikedBy = likedBy
	story.Likes = len(likedBy)

	updated, err := s.repo.UpdateStory(ctx, story)
	if err != nil {
		return domain.Story{}, fmt.Errorf("s.repo.UpdateStory -> %w", err)
	}

	return updated, nil
}

func (s *CommunityService) AddComment(ctx context.Context, storyID, text string, author domain.User) (domain.Comment, error) {
	if _, err := s.repo.FindStoryByID(ctx, storyID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.FindStoryByID -> %w", err)
	}

	comment, err := s.repo.CreateComment(ctx, domain.Comment{
		StoryID:        storyID,
		UserID:         author.ID,
		AuthorNickname: author.Nickname,
		Text:           text,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.CreateComment -> %w", err)
	}

	return comment, nil
}

func (s *CommunityService) ListComments(ctx context.Context, storyID string) ([]domain.Comment, error) {
	comments, err := s.repo.ListCommentsByStory(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCommentsByStory -> %w", err)
	}

	return comments, nil
}

func (s *CommunityService) PublishReport(ctx context.Context, report domain.PerformanceReport) (domain.PerformanceReport, error) {
	created, err := s.repo.CreateReport(ctx, report)
	if err != nil {
		return domain.PerformanceReport{}, fmt.Errorf("s.repo.CreateReport -> %w", err)
	}

	return created, nil
}

func (s *CommunityService) ListReports(ctx context.Context) ([]domain.PerformanceReport, error) {
	reports, err := s.repo.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListReports -> %w", err)
	}

	return reports, nil
}
