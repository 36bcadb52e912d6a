package ports

import "github.com/woodline/warehouse-system/internal/core/domain"

// MenuService filters the static navigation tree by role.
type MenuService interface {
	// VisibleEntries returns the entries (with filtered submenus) the given
	// role may see. An unknown or empty role yields no entries.
	VisibleEntries(role string) []domain.MenuEntry
	// ActivePath returns the ID of the entry or sub-entry whose canonical
	// path matches the given route path, or "" when none matches.
	ActivePath(role, path string) string
}
