package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleMod   = "mod"
	RoleUser  = "user"
)

// Account is the credential side of an identity. Profile rows share its ID.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is a trainer identity. Created inactive at signup and unlocked by
// staff.
type Profile struct {
	ID          string    `json:"id"`
	TrainerName string    `json:"trainer_name"`
	TrainerCode string    `json:"trainer_code"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsStaff reports whether the profile may reach the admin view.
func (p Profile) IsStaff() bool {
	return p.Role == RoleAdmin || p.Role == RoleMod
}

// NavigationLinks tells the client which album views to offer. Advisory
// only; the route guards are the actual boundary.
type NavigationLinks struct {
	ShowAdminLink bool `json:"show_admin_link"`
	ShowAlbumLink bool `json:"show_album_link"`
}
