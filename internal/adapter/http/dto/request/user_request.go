package request

type RegisterUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Role       string `json:"role" binding:"required"`
	NationalID string `json:"national_id"`
}
