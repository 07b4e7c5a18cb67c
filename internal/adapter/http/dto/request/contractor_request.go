package request

// RegisterContractorRequest creates a contractor account tied to a user.
type RegisterContractorRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	YearsOfExperience int    `json:"years_of_experience"`
	SkillLevel        string `json:"skill_level"`
}
