package entity

// Role represents a user role in the system. A user's role is assigned at
// registration and never changes afterwards.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants (seeded by the initial migration)
const (
	RoleIDDonor     = 1
	RoleIDBloodBank = 2
	RoleIDPatient   = 3
)

// Role name constants
const (
	RoleDonor     = "donor"
	RoleBloodBank = "bloodbank"
	RolePatient   = "patient"
)

// RoleNameByID maps role IDs to names for the closed role set.
var RoleNameByID = map[int]string{
	RoleIDDonor:     RoleDonor,
	RoleIDBloodBank: RoleBloodBank,
	RoleIDPatient:   RolePatient,
}

// RoleIDByName is the inverse of RoleNameByID.
var RoleIDByName = map[string]int{
	RoleDonor:     RoleIDDonor,
	RoleBloodBank: RoleIDBloodBank,
	RolePatient:   RoleIDPatient,
}

// DashboardPathByRoleID maps each role to its dashboard destination.
// Role-mismatched requests are redirected here instead of being handled.
var DashboardPathByRoleID = map[int]string{
	RoleIDDonor:     "/api/v1/donors/dashboard",
	RoleIDBloodBank: "/api/v1/blood-banks/dashboard",
	RoleIDPatient:   "/api/v1/patients/dashboard",
}
