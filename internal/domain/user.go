package domain

import "time"

type User struct {
	ID          string    `json:"id"`
	Nickname    string    `json:"nickname"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	Neighbors   []string  `json:"neighbors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasNeighbor reports whether the given user id is on this user's
// neighbor list. Neighbor lists are one-directional: each user owns
// their own list and no mutual consistency is enforced.
func (u *User) HasNeighbor(userID string) bool {
	for _, id := range u.Neighbors {
		if id == userID {
			return true
		}
	}

	return false
}
