package entities

import "time"

// Role gates who may perform review, forgiveness and penalty actions.

type Role string

const (
	RoleGovernment Role = "GOVERNMENT"
	RoleContractor Role = "CONTRACTOR"
	RoleAuditor    Role = "AUDITOR"
	RoleCitizen    Role = "CITIZEN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleGovernment, RoleContractor, RoleAuditor, RoleCitizen:
		return true
	}
	return false
}

// UserProfile backs the identity resolver: an opaque actor id mapped to a
// role. NationalID gets a format check at registration; NIDVerified stays
// false because registry verification is out of scope.
//
// Storage model (DynamoDB):
//   - PK: id

type UserProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        Role      `json:"role"`
	NationalID  string    `json:"national_id,omitempty"`
	NIDVerified bool      `json:"nid_verified"`
	CreatedAt   time.Time `json:"created_at"`
}
