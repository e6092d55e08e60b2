package access

import (
	"errors"
	"reflect"
	"testing"
)

func TestAdminSeesEverything(t *testing.T) {
	for _, s := range AllScreens {
		if !HasPermission(RoleAdmin, s) {
			t.Fatalf("admin denied %q", s)
		}
	}
	if !reflect.DeepEqual(Screens(RoleAdmin), AllScreens) {
		t.Fatalf("admin screens %v", Screens(RoleAdmin))
	}
}

func TestPermissionMatrix(t *testing.T) {
	cases := []struct {
		role   Role
		screen string
		want   bool
	}{
		{RoleSales, ScreenPOS, true},
		{RoleSales, ScreenSecurity, false},
		{RoleSales, ScreenInventory, false},
		{RoleSales, ScreenDashboard, false},
		{RoleManager, ScreenInventory, true},
		{RoleManager, ScreenReports, true},
		{RoleManager, ScreenBranches, false},
		{RoleManager, ScreenSecurity, false},
		{RoleManager, ScreenSettings, false},
		{RoleAdmin, "Payroll", false},
		{Role("owner"), ScreenPOS, false},
		{Role(""), ScreenPOS, false},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.screen); got != tc.want {
			t.Fatalf("%s/%s: expected %v, got %v", tc.role, tc.screen, tc.want, got)
		}
	}
}

func TestScreensNested(t *testing.T) {
	if !reflect.DeepEqual(Screens(RoleSales), []string{ScreenPOS}) {
		t.Fatalf("sales screens %v", Screens(RoleSales))
	}
	// every screen a narrower role sees, a wider role sees too
	for i := 1; i < len(Roles); i++ {
		for _, s := range Screens(Roles[i]) {
			if !HasPermission(Roles[i-1], s) {
				t.Fatalf("%s sees %q but %s does not", Roles[i], s, Roles[i-1])
			}
		}
	}
}

func TestFilterNav(t *testing.T) {
	labels := func(es []NavEntry) []string {
		out := []string{}
		for _, e := range es {
			out = append(out, e.Label)
		}
		return out
	}
	cases := []struct {
		role Role
		want []string
	}{
		{RoleAdmin, []string{"Dashboard", "POS", "Inventory", "Branches", "Reports", "Security"}},
		{RoleManager, []string{"Dashboard", "POS", "Inventory", "Reports"}},
		{RoleSales, []string{"POS"}},
		{Role("ghost"), []string{}},
	}
	for _, tc := range cases {
		if got := labels(FilterNav(tc.role, DefaultNav)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Manager "); err != nil || r != RoleManager {
		t.Fatalf("unexpected %v %v", r, err)
	}
	if _, err := ParseRole("root"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if RoleSales.Title() != "Sales Associate" {
		t.Fatalf("unexpected title %q", RoleSales.Title())
	}
}
