package domain

import "time"

// Privilege is the coarse access tier stored on a user account.
type Privilege string

const (
	PrivilegeRead        Privilege = "Read"
	PrivilegeReadWrite   Privilege = "Read and Write"
	PrivilegeFullControl Privilege = "Full Control"
)

// Valid reports whether p is one of the known privilege tiers.
func (p Privilege) Valid() bool {
	switch p {
	case PrivilegeRead, PrivilegeReadWrite, PrivilegeFullControl:
		return true
	}
	return false
}

// Scopes maps a privilege tier to the token scopes it grants. Every account
// may read and write its own tasks; FullControl additionally carries the
// reserved catalog administration scope.
func (p Privilege) Scopes() []string {
	scopes := []string{"tasks:read", "tasks:write"}
	if p == PrivilegeFullControl {
		scopes = append(scopes, "catalog:admin")
	}
	return scopes
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	Privilege    Privilege
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
