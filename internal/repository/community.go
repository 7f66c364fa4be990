package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

var ErrStoryNotFound = errors.New("story not found")

type CommunityRepository struct {
	store *store.Store
}

func NewCommunityRepository(st *store.Store) *CommunityRepository {
	return &CommunityRepository{
		store: st,
	}
}

func (r *CommunityRepository) CreateStory(ctx context.Context, story domain.Story) (domain.Story, error) {
	err := r.store.Update(func(st *store.State) error {
		if story.ID == "" {
			story.ID = store.NewID()
		}
		if story.LikedBy == nil {
			story.LikedBy = []string{}
		}

		// Newest first.
		st.Stories = append([]domain.Story{story}, st.Stories...)

		return nil
	})
	if err != nil {
		return domain.Story{}, err
	}

	return story, nil
}

func (r *CommunityRepository) FindStoryByID(ctx context.Context, id string) (domain.Story, error) {
	var (
		found bool
		story domain.Story
	)
	r.store.View(func(st *store.State) {
		for i := range st.Stories {
			if st.Stories[i].ID == id {
				story = copyStory(st.Stories[i])
				found = true
				return
			}
		}
	})
	if !found {
		return domain.Story{}, ErrStoryNotFound
	}

	return story, nil
}

func (r *CommunityRepository) ListStories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	r.store.View(func(st *store.State) {
		for i := range st.Stories {
			stories = append(stories, copyStory(st.Stories[i]))
		}
	})

	return stories, nil
}

func (r *CommunityRepository) UpdateStory(ctx context.Context, story domain.Story) (domain.Story, error) {
	err := r.store.Update(func(st *store.State) error {
		for i := range st.Stories {
			if st.Stories[i].ID == story.ID {
				st.Stories[i] = story
				return nil
			}
		}

		return ErrStoryNotFound
	})
	if err != nil {
		return domain.Story{}, err
	}

	return story, nil
}

func (r *CommunityRepository) DeleteStory(ctx context.Context, id string) error {
	return r.store.Update(func(st *store.State) error {
		for i := range st.Stories {
			if st.Stories[i].ID == id {
				st.Stories = append(st.Stories[:i], st.Stories[i+1:]...)
				return nil
			}
		}

		return ErrStoryNotFound
	})
}

func (r *CommunityRepository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	err := r.store.Update(func(st *store.State) error {
		if comment.ID == "" {
			comment.ID = store.NewID()
		}
		if comment.Timestamp.IsZero() {
			comment.Timestamp = time.Now()
		}

		st.Comments = append(st.Comments, comment)

		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

func (r *CommunityRepository) ListCommentsByStory(ctx context.Context, storyID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	r.store.View(func(st *store.State) {
		for i := range st.Comments {
			if st.Comments[i].StoryID == storyID {
				comments = append(comments, st.Comments[i])
			}
		}
	})

	return comments, nil
}

func (r *CommunityRepository) CreateReport(ctx context.Context, report domain.PerformanceReport) (domain.PerformanceReport, error) {
	err := r.store.Update(func(st *store.State) error {
		if report.ID == "" {
			report.ID = store.NewID()
		}

		st.Reports = append(st.Reports, report)
		sort.SliceStable(st.Reports, func(i, j int) bool {
			return st.Reports[i].Date > st.Reports[j].Date
		})

		return nil
	})
	if err != nil {
		return domain.PerformanceReport{}, err
	}

	return report, nil
}

func (r *CommunityRepository) ListReports(ctx context.Context) ([]domain.PerformanceReport, error) {
	var reports []domain.PerformanceReport
	r.store.View(func(st *store.State) {
		reports = append(reports, st.Reports...)
	})

	return reports, nil
}

func copyStory(s domain.Story) domain.Story {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	out.LikedBy = append([]string(nil), s.LikedBy...)

	return out
}
