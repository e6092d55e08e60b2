package access

// table is static configuration; nothing mutates it after init.
var table = map[Role]map[string]struct{}{
	RoleAdmin: setOf(AllScreens...),
	RoleManager: setOf(
		ScreenDashboard,
		ScreenPOS,
		ScreenInventory,
		ScreenReports,
	),
	RoleSales: setOf(ScreenPOS),
}

func setOf(screens ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(screens))
	for _, s := range screens {
		m[s] = struct{}{}
	}
	return m
}

// HasPermission is fail-closed: unknown roles and screens are denied.
func HasPermission(role Role, screen string) bool {
	allowed, ok := table[role]
	if !ok {
		return false
	}
	_, ok = allowed[screen]
	return ok
}

// Screens lists what role may open, in canonical order.
func Screens(role Role) []string {
	var out []string
	for _, s := range AllScreens {
		if HasPermission(role, s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterNav keeps the entries role may see, preserving order.
func FilterNav(role Role, entries []NavEntry) []NavEntry {
	out := make([]NavEntry, 0, len(entries))
	for _, e := range entries {
		if HasPermission(role, e.Permission) {
			out = append(out, e)
		}
	}
	return out
}
