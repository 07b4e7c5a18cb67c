package request

import "time"

type AddCertificateRequest struct {
	Name             string     `json:"name" binding:"required"`
	IssuingAuthority string     `json:"issuing_authority"`
	IssueDate        *time.Time `json:"issue_date"`
	ExpiryDate       *time.Time `json:"expiry_date"`
}

type AddSkillRequest struct {
	SkillName        string `json:"skill_name" binding:"required"`
	ProficiencyLevel string `json:"proficiency_level"`
	YearsOfPractice  int    `json:"years_of_practice"`
}
