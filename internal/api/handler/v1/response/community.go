package response

import "github.com/MuchYouth/otgil-Re-Thread/internal/domain"

type StoryDetailResponse struct {
	domain.Story
	Comments []domain.Comment `json:"comments"`
}
