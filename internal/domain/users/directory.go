package users

import (
	"strings"

	"github.com/Spok95/uniformhub/internal/domain/access"
)

// Directory is the read-only set of known staff identities.
type Directory struct {
	byEmail map[string]User
}

// NewDirectory indexes users by lower-cased email; later duplicates win.
func NewDirectory(list []User) *Directory {
	d := &Directory{byEmail: make(map[string]User, len(list))}
	for _, u := range list {
		d.byEmail[strings.ToLower(u.Email)] = u
	}
	return d
}

// DefaultDirectory holds the reference staff accounts.
func DefaultDirectory() *Directory {
	return NewDirectory([]User{
		{ID: "U001", Name: "Rajesh Kumar", Email: "rajesh@uniformhub.com", Role: access.RoleAdmin, Branch: "Downtown Central"},
		{ID: "U002", Name: "Priya Sharma", Email: "priya@uniformhub.com", Role: access.RoleManager, Branch: "Bandra West"},
		{ID: "U003", Name: "Arun Mehta", Email: "arun@uniformhub.com", Role: access.RoleSales, Branch: "Downtown Central"},
	})
}

// FindByEmail returns nil when nobody is registered under email.
func (d *Directory) FindByEmail(email string) *User {
	if d == nil {
		return nil
	}
	u, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil
	}
	return &u
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byEmail)
}
