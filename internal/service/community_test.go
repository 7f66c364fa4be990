package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

func newCommunityService() *service.CommunityService {
	return service.NewCommunityService(repository.NewCommunityRepository(store.New()))
}

var (
	storyAuthor = domain.User{ID: "u1", Nickname: "Storyteller"}
	otherUser   = domain.User{ID: "u2", Nickname: "Reader"}
	adminUser   = domain.User{ID: "a1", Nickname: "Admin", IsAdmin: true}
)

func TestCommunityService_CreateStorySnapshotsAuthor(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, domain.Story{
		Title:   "My first exchange",
		Content: "It was lovely.",
	}, storyAuthor)
	require.NoError(t, err)
	assert.Equal(t, storyAuthor.ID, story.UserID)
	assert.Equal(t, "Storyteller", story.Author)
	assert.Equal(t, 0, story.Likes)
	assert.NotNil(t, story.LikedBy)
}

func TestCommunityService_UpdateStoryGuards(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, domain.Story{Title: "Mine", Content: "..."}, storyAuthor)
	require.NoError(t, err)

	story.Title = "Hijacked"
	_, err = svc.UpdateStory(ctx, story, otherUser)
	assert.ErrorIs(t, err, service.ErrNotStoryAuthor)

	story.Title = "Edited"
	updated, err := svc.UpdateStory(ctx, story, storyAuthor)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, storyAuthor.ID, updated.UserID)

	// Admins may moderate any story.
	story.Title = "Moderated"
	_, err = svc.UpdateStory(ctx, story, adminUser)
	assert.NoError(t, err)
}

func TestCommunityService_DeleteStoryGuards(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, domain.Story{Title: "Mine", Content: "..."}, storyAuthor)
	require.NoError(t, err)

	err = svc.DeleteStory(ctx, story.ID, otherUser)
	assert.ErrorIs(t, err, service.ErrNotStoryAuthor)

	err = svc.DeleteStory(ctx, story.ID, storyAuthor)
	require.NoError(t, err)

	_, err = svc.GetStory(ctx, story.ID)
	assert.ErrorIs(t, err, service.ErrStoryNotFound)
}

func TestCommunityService_ToggleLike(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, domain.Story{Title: "Likeable", Content: "..."}, storyAuthor)
	require.NoError(t, err)

	liked, err := svc.ToggleLike(ctx, story.ID, otherUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.True(t, liked.LikedByUser(otherUser.ID))

	// Toggling twice is a no-op overall.
	unliked, err := svc.ToggleLike(ctx, story.ID, otherUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Likes)
	assert.False(t, unliked.LikedByUser(otherUser.ID))
}

func TestCommunityService_CommentsSnapshotNickname(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, domain.Story{Title: "Discussed", Content: "..."}, storyAuthor)
	require.NoError(t, err)

	comment, err := svc.AddComment(ctx, story.ID, "Great story!", otherUser)
	require.NoError(t, err)
	assert.Equal(t, "Reader", comment.AuthorNickname)
	assert.False(t, comment.Timestamp.IsZero())

	comments, err := svc.ListComments(ctx, story.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	_, err = svc.AddComment(ctx, "missing-story", "hello?", otherUser)
	assert.ErrorIs(t, err, service.ErrStoryNotFound)
}

func TestCommunityService_ReportsSortNewestFirst(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	_, err := svc.PublishReport(ctx, domain.PerformanceReport{Title: "May", Date: "2026-05-31"})
	require.NoError(t, err)
	_, err = svc.PublishReport(ctx, domain.PerformanceReport{Title: "July", Date: "2026-07-31"})
	require.NoError(t, err)
	_, err = svc.PublishReport(ctx, domain.PerformanceReport{Title: "June", Date: "2026-06-30"})
	require.NoError(t, err)

	reports, err := svc.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "July", reports[0].Title)
	assert.Equal(t, "June", reports[1].Title)
	assert.Equal(t, "May", reports[2].Title)
}
