package response

import "github.com/MuchYouth/otgil-Re-Thread/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
