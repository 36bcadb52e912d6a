package service

import (
	"testing"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

func entryIDs(entries []domain.MenuEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func TestMenuService_AdminSeesEverything(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	entries := svc.VisibleEntries(domain.RoleAdmin)
	if len(entries) != len(domain.DefaultMenu) {
		t.Fatalf("expected %d entries for ADMIN, got %v", len(domain.DefaultMenu), entryIDs(entries))
	}
}

func TestMenuService_UserSeesOnlyDashboard(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	entries := svc.VisibleEntries(domain.RoleUser)
	if len(entries) != 1 || entries[0].ID != "dashboard" {
		t.Fatalf("expected only dashboard for USER, got %v", entryIDs(entries))
	}
}

func TestMenuService_WarehouseSubmenuFiltered(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	entries := svc.VisibleEntries(domain.RoleWarehouse)
	for _, entry := range entries {
		if entry.ID != "warehouse" {
			continue
		}
		for _, sub := range entry.Submenu {
			if sub.ID == "shelves" {
				t.Fatalf("shelves must stay hidden from WAREHOUSE")
			}
		}
		return
	}
	t.Fatalf("warehouse entry missing for WAREHOUSE role: %v", entryIDs(entries))
}

func TestMenuService_SellerSeesSales(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	entries := svc.VisibleEntries(domain.RoleSeller)
	ids := entryIDs(entries)
	if len(ids) != 2 || ids[0] != "dashboard" || ids[1] != "sales" {
		t.Fatalf("expected [dashboard sales] for SELLER, got %v", ids)
	}
}

func TestMenuService_UnknownRoleFailsClosed(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	if entries := svc.VisibleEntries("SUPERADMIN"); entries != nil {
		t.Fatalf("unknown role must see nothing, got %v", entryIDs(entries))
	}
	if entries := svc.VisibleEntries(""); entries != nil {
		t.Fatalf("empty role must see nothing, got %v", entryIDs(entries))
	}
}

func TestMenuService_ActivePath(t *testing.T) {
	svc := NewMenuService(domain.DefaultMenu)

	if got := svc.ActivePath(domain.RoleAdmin, "/warehouse/items"); got != "items" {
		t.Fatalf("expected sub-entry to win, got %q", got)
	}
	if got := svc.ActivePath(domain.RoleAdmin, "/sales"); got != "sales" {
		t.Fatalf("expected top entry, got %q", got)
	}
	if got := svc.ActivePath(domain.RoleUser, "/users"); got != "" {
		t.Fatalf("hidden entry must never be active, got %q", got)
	}
	if got := svc.ActivePath(domain.RoleAdmin, "/nowhere"); got != "" {
		t.Fatalf("unknown path must resolve to nothing, got %q", got)
	}
}
