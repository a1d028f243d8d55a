package users

import (
	"github.com/jrsteele09/greenos-console/apiclient"
)

type Permission struct {
	ID          string `json:"id"`
	Codename    string `json:"codename"`
	Description string `json:"description,omitempty"`
}

type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// User is the profile returned by /auth/me. It is read-only on the client.
type User struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	FullName    string         `json:"full_name,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	IsActive    bool           `json:"is_active"`
	IsSuperuser bool           `json:"is_superuser"`
	RoleID      string         `json:"role_id,omitempty"`
	Role        *Role          `json:"role,omitempty"`
	CreatedAt   apiclient.Time `json:"created_at"`
	UpdatedAt   apiclient.Time `json:"updated_at,omitempty"`
}

// DisplayName prefers the full name and falls back to the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// RoleName returns the role name, or "superuser"/"member" when no role is attached.
func (u *User) RoleName() string {
	switch {
	case u == nil:
		return ""
	case u.Role != nil && u.Role.Name != "":
		return u.Role.Name
	case u.IsSuperuser:
		return "superuser"
	default:
		return "member"
	}
}

// HasPermission reports whether the user's role grants codename. Superusers hold every permission.
func (u *User) HasPermission(codename string) bool {
	if u == nil {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	if u.Role == nil {
		return false
	}
	for _, p := range u.Role.Permissions {
		if p.Codename == codename {
			return true
		}
	}
	return false
}
