package http

import (
	"net/http"

	"github.com/Spok95/uniformhub/internal/domain/access"
	"github.com/Spok95/uniformhub/internal/domain/users"
	"github.com/Spok95/uniformhub/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type sessionView struct {
	Token   string            `json:"token,omitempty"`
	State   session.State     `json:"state"`
	User    *users.User       `json:"user,omitempty"`
	Title   string            `json:"title,omitempty"`
	Screens []string          `json:"screens"`
	Nav     []access.NavEntry `json:"nav"`
}

func viewOf(ws *session.Workspace) sessionView {
	v := sessionView{
		State:   ws.Session.State(),
		Screens: []string{},
		Nav:     ws.Session.Nav(),
	}
	if u, ok := ws.Session.Current(); ok {
		v.User = &u
		v.Title = u.Role.Title()
		v.Screens = access.Screens(u.Role)
	}
	return v
}

// login opens a fresh workspace per sign-in; a failed attempt leaves nothing behind.
func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	role := access.Role(req.Role)
	ws := a.sessions.Open()
	ws.Lock()
	defer ws.Unlock()

	if !ws.Session.Login(req.Email, req.Password, role) {
		a.sessions.Close(ws.Token)
		label := string(role)
		if !role.Valid() {
			label = "unknown"
		}
		a.metrics.Logins.WithLabelValues(label, "failed").Inc()
		a.log.Info("login failed", "role", label)
		writeError(w, http.StatusUnauthorized, "email and a known role are required")
		return
	}

	a.metrics.Logins.WithLabelValues(string(role), "ok").Inc()
	a.metrics.Sessions.Set(float64(a.sessions.Len()))
	u, _ := ws.Session.Current()
	a.log.Info("login", "user_id", u.ID, "role", u.Role, "branch", u.Branch)

	v := viewOf(ws)
	v.Token = ws.Token
	writeJSON(w, http.StatusOK, v)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ws, ok := a.workspace(w, r)
	if !ok {
		return
	}
	ws.Session.Logout()
	ws.Cart.Clear()
	ws.Unlock()

	a.sessions.Close(ws.Token)
	a.metrics.Sessions.Set(float64(a.sessions.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) switchRole(w http.ResponseWriter, r *http.Request) {
	ws, ok := a.workspace(w, r)
	if !ok {
		return
	}
	defer ws.Unlock()

	var req roleRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := ws.Session.SwitchRole(role); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	a.log.Info("role switched", "role", role)
	writeJSON(w, http.StatusOK, viewOf(ws))
}

func (a *API) currentSession(w http.ResponseWriter, r *http.Request) {
	ws, ok := a.workspace(w, r)
	if !ok {
		return
	}
	defer ws.Unlock()
	writeJSON(w, http.StatusOK, viewOf(ws))
}
