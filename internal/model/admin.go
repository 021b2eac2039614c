package model

// RoleAdmin is the only role the console knows about.
const RoleAdmin = "admin"

// Admin is the profile stored alongside an identity-provider user,
// keyed admin:<userID>.
type Admin struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
