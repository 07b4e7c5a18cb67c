package response

import (
	"time"

	"fundtracker/internal/domain/entities"
)

type CertificateResponse struct {
	ID               string     `json:"id"`
	ContractorID     string     `json:"contractor_id"`
	Name             string     `json:"name"`
	IssuingAuthority string     `json:"issuing_authority,omitempty"`
	IssueDate        *time.Time `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	Verified         bool       `json:"verified"`
	VerifiedBy       string     `json:"verified_by,omitempty"`
	IsValid          bool       `json:"is_valid"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromCertificate(c entities.ContractorCertificate, now time.Time) CertificateResponse {
	return CertificateResponse{
		ID:               c.ID,
		ContractorID:     c.ContractorID,
		Name:             c.Name,
		IssuingAuthority: c.IssuingAuthority,
		IssueDate:        c.IssueDate,
		ExpiryDate:       c.ExpiryDate,
		Verified:         c.Verified,
		VerifiedBy:       c.VerifiedBy,
		IsValid:          c.IsValid(now),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCertificates(cs []entities.ContractorCertificate, now time.Time) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCertificate(c, now))
	}
	return out
}

type SkillResponse struct {
	ID               string    `json:"id"`
	ContractorID     string    `json:"contractor_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel string    `json:"proficiency_level,omitempty"`
	YearsOfPractice  int       `json:"years_of_practice"`
	Verified         bool      `json:"verified"`
	VerifiedBy       string    `json:"verified_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromSkill(s entities.ContractorSkill) SkillResponse {
	return SkillResponse{
		ID:               s.ID,
		ContractorID:     s.ContractorID,
		SkillName:        s.SkillName,
		ProficiencyLevel: s.ProficiencyLevel,
		YearsOfPractice:  s.YearsOfPractice,
		Verified:         s.Verified,
		VerifiedBy:       s.VerifiedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromSkills(ss []entities.ContractorSkill) []SkillResponse {
	out := make([]SkillResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSkill(s))
	}
	return out
}
