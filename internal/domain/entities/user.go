package entities

import "time"

// UserRole is the role of a staff account inside its garage.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"

	// RoleSuperAdmin marks platform operators. Staff accounts never carry it.
	RoleSuperAdmin = "super-admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}

// User is a staff login that belongs to one garage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//   - GSI2 (garage_id-index): garage_id
type User struct {
	ID           string    `json:"id"`
	GarageID     string    `json:"garage_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the identity carried by the user's token.
func (u User) Actor() Actor {
	return Actor{Kind: ActorKindUser, ID: u.ID, GarageID: u.GarageID, Role: string(u.Role)}
}
