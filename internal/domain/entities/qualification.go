package entities

import "time"

// ContractorCertificate is a credential filed by a contractor. Verified is
// set only through the government verification action, never at creation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contractor_id-index): contractor_id

type ContractorCertificate struct {
	ID               string     `json:"id"`
	ContractorID     string     `json:"contractor_id"`
	Name             string     `json:"name"`
	IssuingAuthority string     `json:"issuing_authority,omitempty"`
	IssueDate        *time.Time `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	Verified         bool       `json:"verified"`
	VerifiedBy       string     `json:"verified_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsValid reports whether the certificate has not expired at the given
// instant. Certificates without an expiry date never expire.
func (c ContractorCertificate) IsValid(now time.Time) bool {
	return c.ExpiryDate == nil || c.ExpiryDate.After(now)
}

// ContractorSkill is a self-declared competency on a contractor's profile,
// subject to the same government verification as certificates.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contractor_id-index): contractor_id

type ContractorSkill struct {
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
