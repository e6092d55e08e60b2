package access

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSales   Role = "sales"
)

// Roles in descending order of reach.
var Roles = []Role{RoleAdmin, RoleManager, RoleSales}

var ErrUnknownRole = errors.New("access: unknown role")

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSales:
		return true
	}
	return false
}

// Title is the display name used on the security screen.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleManager:
		return "Branch Manager"
	case RoleSales:
		return "Sales Associate"
	}
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Screen names double as permission tags.
const (
	ScreenDashboard = "Dashboard"
	ScreenPOS       = "POS"
	ScreenInventory = "Inventory"
	ScreenBranches  = "Branch Management"
	ScreenReports   = "Reports"
	ScreenSecurity  = "Security & Roles"
	ScreenSettings  = "Settings"
)

// AllScreens is the full screen set in canonical order.
var AllScreens = []string{
	ScreenDashboard,
	ScreenPOS,
	ScreenInventory,
	ScreenBranches,
	ScreenReports,
	ScreenSecurity,
	ScreenSettings,
}

type NavEntry struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	Permission string `json:"permission"`
}

// DefaultNav is the sidebar in display order.
var DefaultNav = []NavEntry{
	{Label: "Dashboard", Path: "/dashboard", Permission: ScreenDashboard},
	{Label: "POS", Path: "/pos", Permission: ScreenPOS},
	{Label: "Inventory", Path: "/inventory", Permission: ScreenInventory},
	{Label: "Branches", Path: "/branches", Permission: ScreenBranches},
	{Label: "Reports", Path: "/reports", Permission: ScreenReports},
	{Label: "Security", Path: "/security", Permission: ScreenSecurity},
}
