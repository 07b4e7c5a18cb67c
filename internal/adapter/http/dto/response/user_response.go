package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	NationalID  string    `json:"national_id,omitempty"`
	NIDVerified bool      `json:"nid_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromUser(u entities.UserProfile) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		NationalID:  u.NationalID,
		NIDVerified: u.NIDVerified,
		CreatedAt:   u.CreatedAt,
	}
}
