package service

import (
	"github.com/woodline/warehouse-system/internal/core/domain"
)

// MenuService filters the static navigation tree by role. The tree itself is
// immutable configuration; filtering happens per request.
type MenuService struct {
	entries []domain.MenuEntry
}

// NewMenuService builds a MenuService over the given tree. Pass
// domain.DefaultMenu for the production configuration.
func NewMenuService(entries []domain.MenuEntry) *MenuService {
	return &MenuService{entries: entries}
}

// VisibleEntries returns the entries visible to role. While the role is
// unknown the navigation fails closed and shows nothing.
func (s *MenuService) VisibleEntries(role string) []domain.MenuEntry {
	if !domain.ValidRole(role) {
		return nil
	}

	out := make([]domain.MenuEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if !roleAllowed(entry.Roles, role) {
			continue
		}
		visible := entry
		visible.Submenu = nil
		for _, sub := range entry.Submenu {
			if roleAllowed(sub.Roles, role) {
				visible.Submenu = append(visible.Submenu, sub)
			}
		}
		out = append(out, visible)
	}
	return out
}

// ActivePath returns the ID of the visible entry whose path matches the
// current route. Sub-entries win over their parent on exact match.
func (s *MenuService) ActivePath(role, path string) string {
	for _, entry := range s.VisibleEntries(role) {
		for _, sub := range entry.Submenu {
			if sub.Path == path {
				return sub.ID
			}
		}
		if entry.Path == path {
			return entry.ID
		}
	}
	return ""
}

func roleAllowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
