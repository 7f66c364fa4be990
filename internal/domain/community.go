package domain

import "time"

type Story struct {
	ID       string   `json:"id"`
	UserID   string   `json:"user_id"`
	PartyID  string   `json:"party_id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"` // nickname snapshot
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
	Likes    int      `json:"likes"`
	LikedBy  []string `json:"liked_by"` // presence = liked
}

func (s *Story) LikedByUser(userID string) bool {
	for _, id := range s.LikedBy {
		if id == userID {
			return true
		}
	}

	return false
}

type Comment struct {
	ID             string    `json:"id"`
	StoryID        string    `json:"story_id"`
	UserID         string    `json:"user_id"`
	AuthorNickname string    `json:"author_nickname"` // snapshot, not a live join
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}

// PerformanceReport is a monthly community newsletter entry.
type PerformanceReport struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"` // YYYY-MM-DD
	Excerpt string `json:"excerpt"`
}
