// Package session tracks who is signed in and what they may open.
//
// Login is demo-grade: any non-empty email is accepted and the password is
// never checked. It is not an authentication boundary and must not be exposed
// as one outside a demo deployment.
package session

import (
	"errors"
	"strings"

	"github.com/Spok95/uniformhub/internal/domain/access"
	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/users"
)

var ErrNoSession = errors.New("session: not signed in")

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// syntheticID is assigned to identities that are not in the directory.
const syntheticID = "U999"

// Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	dir  *users.Directory
	user *users.User
}

func New(dir *users.Directory) *Session {
	return &Session{dir: dir}
}

func (s *Session) State() State {
	if s.user == nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

func (s *Session) Authenticated() bool { return s.user != nil }

// Login signs in as email with the requested role. Known identities keep their
// stored name and branch; unknown ones get a synthetic identity. The requested
// role always wins over the stored one. It fails only on an empty email or an
// unknown role; password is ignored.
func (s *Session) Login(email, password string, role access.Role) bool {
	_ = password
	email = strings.TrimSpace(email)
	if email == "" || !role.Valid() {
		return false
	}

	var u users.User
	if found := s.dir.FindByEmail(email); found != nil {
		u = *found
	} else {
		name, _, _ := strings.Cut(email, "@")
		u = users.User{
			ID:     syntheticID,
			Name:   name,
			Email:  email,
			Branch: catalog.DefaultBranch,
		}
	}
	u.Role = role
	s.user = &u
	return true
}

func (s *Session) Logout() { s.user = nil }

// SwitchRole reassigns the role in place without signing in again.
func (s *Session) SwitchRole(role access.Role) error {
	if s.user == nil {
		return ErrNoSession
	}
	if !role.Valid() {
		return access.ErrUnknownRole
	}
	s.user.Role = role
	return nil
}

// HasPermission is false whenever nobody is signed in.
func (s *Session) HasPermission(screen string) bool {
	if s.user == nil {
		return false
	}
	return access.HasPermission(s.user.Role, screen)
}

// Current returns a copy of the signed-in identity.
func (s *Session) Current() (users.User, bool) {
	if s.user == nil {
		return users.User{}, false
	}
	return *s.user, true
}

// Nav is the sidebar for the current role; empty when signed out.
func (s *Session) Nav() []access.NavEntry {
	if s.user == nil {
		return []access.NavEntry{}
	}
	return access.FilterNav(s.user.Role, access.DefaultNav)
}
